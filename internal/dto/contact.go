package dto

// ContactRequest is the contact-form payload forwarded to the platform.
// Subject mirrors Type; the platform accepts both fields.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"omitempty,max=200"`
	Query   string `json:"query" validate:"required,max=2000"`
	Type    string `json:"type" validate:"omitempty,max=200"`
}
