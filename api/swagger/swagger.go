package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "BrainBridge Catalog Gateway",
        "description": "BFF for the course catalog: view sessions, filters, pagination and bookmarks",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Catalog", "description": "Catalog view sessions"},
        {"name": "Bookmarks", "description": "Course bookmark toggles"},
        {"name": "Account", "description": "Student account pass-through"},
        {"name": "Contact", "description": "Contact form pass-through"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/catalog/views": {
            "post": {
                "tags": ["Catalog"],
                "summary": "Create a catalog view session",
                "parameters": [
                    {"name": "payload", "in": "body", "required": false, "schema": {"$ref": "#/definitions/CreateViewRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catalog/views/{id}": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Get the current snapshot of a view",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Catalog"],
                "summary": "Discard a view session",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/catalog/views/{id}/search": {
            "post": {
                "tags": ["Catalog"],
                "summary": "Update the search query",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SearchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catalog/views/{id}/category": {
            "post": {
                "tags": ["Catalog"],
                "summary": "Activate a category tab",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CategoryRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catalog/views/{id}/filters": {
            "post": {
                "tags": ["Catalog"],
                "summary": "Toggle one filter flag",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FilterToggleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Catalog"],
                "summary": "Reset all filter flags",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catalog/views/{id}/page": {
            "post": {
                "tags": ["Catalog"],
                "summary": "Move the pagination cursor",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catalog/views/{id}/page/next": {
            "post": {
                "tags": ["Catalog"],
                "summary": "Advance to the next page",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catalog/views/{id}/page/previous": {
            "post": {
                "tags": ["Catalog"],
                "summary": "Move to the previous page",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catalog/views/{id}/bookmarks/{courseId}": {
            "post": {
                "tags": ["Bookmarks"],
                "summary": "Toggle a bookmark for a course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "courseId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catalog/views/{id}/notification": {
            "delete": {
                "tags": ["Catalog"],
                "summary": "Dismiss the active notification",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/profile": {
            "get": {
                "tags": ["Account"],
                "summary": "Fetch the authenticated student's profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/contacts": {
            "post": {
                "tags": ["Contact"],
                "summary": "Submit a contact-form message",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ContactRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "Course": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "instructor": {"type": "string"},
                "instructorAvatar": {"type": "string"},
                "category": {"type": "string"},
                "level": {"type": "string"},
                "duration": {"type": "number"},
                "rating": {"type": "number"},
                "ratingCount": {"type": "integer"},
                "studentCount": {"type": "integer"},
                "price": {"type": "number"},
                "discountPrice": {"type": "number"},
                "language": {"type": "string"},
                "thumbnail": {"type": "string"}
            }
        },
        "CategoryTab": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "count": {"type": "integer"}
            }
        },
        "PageInfo": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "pageSize": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "totalCount": {"type": "integer"}
            }
        },
        "Notification": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "kind": {"type": "string"}
            }
        },
        "Redirect": {
            "type": "object",
            "properties": {
                "to": {"type": "string"},
                "afterMs": {"type": "integer"}
            }
        },
        "ViewSnapshot": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "source": {"type": "string"},
                "error": {"type": "string"},
                "courses": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/Course"}
                },
                "categories": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/CategoryTab"}
                },
                "activeCategory": {"type": "string"},
                "searchQuery": {"type": "string"},
                "filters": {"type": "object"},
                "page": {"$ref": "#/definitions/PageInfo"},
                "bookmarks": {
                    "type": "array",
                    "items": {"type": "string"}
                },
                "notification": {"$ref": "#/definitions/Notification"},
                "redirect": {"$ref": "#/definitions/Redirect"},
                "scrollTop": {"type": "boolean"}
            }
        },
        "CreateViewRequest": {
            "type": "object",
            "properties": {
                "source": {"type": "string", "enum": ["all", "trending"]}
            }
        },
        "SearchRequest": {
            "type": "object",
            "properties": {
                "query": {"type": "string"}
            }
        },
        "CategoryRequest": {
            "type": "object",
            "properties": {
                "category": {"type": "string"}
            },
            "required": ["category"]
        },
        "FilterToggleRequest": {
            "type": "object",
            "properties": {
                "group": {"type": "string", "enum": ["price", "level", "duration", "rating", "language"]},
                "key": {"type": "string"}
            },
            "required": ["group", "key"]
        },
        "PageRequest": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"}
            },
            "required": ["page"]
        },
        "ContactRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "subject": {"type": "string"},
                "query": {"type": "string"},
                "type": {"type": "string"}
            },
            "required": ["name", "email", "query"]
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"type": "object"},
                "message": {"type": "string"},
                "code": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
