package models

// CategoryTab is a filter dimension derived from the distinct category
// values present in the loaded catalog, in order of first appearance.
type CategoryTab struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CategoryAll is the fixed tab that matches every course.
const CategoryAll = "all"

// PageInfo describes the pagination cursor of a view.
type PageInfo struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
	TotalCount int `json:"totalCount"`
}

// Notification kinds.
const (
	NotifySuccess = "success"
	NotifyError   = "error"
)

// Notification is the single-slot, auto-expiring message surface.
type Notification struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

// Redirect instructs the frontend to navigate after the given delay.
// The gateway clears the view's token immediately; honouring the delay
// is the caller's concern.
type Redirect struct {
	To      string `json:"to"`
	AfterMs int64  `json:"afterMs"`
}

// ViewSnapshot is the rendered state of one catalog view: the visible
// page of filtered courses plus everything the frontend needs to draw
// tabs, filters, pagination and the notification slot.
type ViewSnapshot struct {
	ID             string        `json:"id"`
	Source         string        `json:"source"`
	Error          string        `json:"error,omitempty"`
	Courses        []Course      `json:"courses"`
	Categories     []CategoryTab `json:"categories"`
	ActiveCategory string        `json:"activeCategory"`
	SearchQuery    string        `json:"searchQuery"`
	Filters        FilterState   `json:"filters"`
	Page           PageInfo      `json:"page"`
	Bookmarks      []string      `json:"bookmarks"`
	Notification   *Notification `json:"notification,omitempty"`
	Redirect       *Redirect     `json:"redirect,omitempty"`
	ScrollTop      bool          `json:"scrollTop,omitempty"`
}
