package types

import "encoding/json"

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: pagination instance not registered: users
	Error string `json:"error" example:"pagination instance not registered: users"`
	// HTTP status code.
	// example: 404
	Code int `json:"code" example:"404"`
}

// BindRequest registers a pagination instance for POST /instances.
type BindRequest struct {
	// Optional instance id. When empty the id comes from the expression, then the server default.
	// example: users
	ID string `json:"id,omitempty" example:"users"`
	// Repeat expression carrying the itemsPerPage filter.
	// example: user in users | itemsPerPage: 20
	Expression string `json:"expression" example:"user in users | itemsPerPage: 20"`
	// Server-side total for async mode. When set, slices are passed through unchanged.
	// example: 1440
	TotalItems *int `json:"total_items,omitempty" example:"1440"`
	// Share the page storage of an existing instance.
	// example: accounts
	SharePageWith string `json:"share_page_with,omitempty" example:"accounts"`
	// Per-instance controls settings; zero values use the server defaults.
	Controls *ControlsOptions `json:"controls,omitempty"`
}

// ControlsOptions overrides the server's controls defaults for one instance.
type ControlsOptions struct {
	// example: 7
	MaxSize        int   `json:"max_size,omitempty" example:"7"`
	AutoHide       *bool `json:"auto_hide,omitempty"`
	DirectionLinks *bool `json:"direction_links,omitempty"`
	BoundaryLinks  *bool `json:"boundary_links,omitempty"`
	// Template reference used instead of the configured path.
	// example: users.controls.template
	TemplateURL string `json:"template_url,omitempty" example:"users.controls.template"`
}

// LengthRequest reports a new collection length. Setting TotalItems instead
// switches the instance to async mode with that server-side total.
type LengthRequest struct {
	// example: 144
	Length *int `json:"length,omitempty" example:"144"`
	// example: 1440
	TotalItems *int `json:"total_items,omitempty" example:"1440"`
}

// PageRequest navigates an instance. Page may be a number or a string label.
type PageRequest struct {
	// example: 3
	Page json.RawMessage `json:"page" swaggertype:"string" example:"3"`
}

// PageResponse reports the outcome of a navigation request. Invalid page
// numbers are ignored and reported with Accepted false.
type PageResponse struct {
	// example: true
	Accepted bool `json:"accepted" example:"true"`
	// example: 3
	Current int `json:"current" example:"3"`
	// example: 8
	Last int `json:"last" example:"8"`
}

// SliceRequest asks for the current page of a JSON collection.
type SliceRequest struct {
	// JSON array or object. Object keys keep their order.
	Items json.RawMessage `json:"items" swaggertype:"object"`
	// Page size as a number or string. Empty uses the expression's page size.
	// example: 20
	ItemsPerPage any `json:"items_per_page,omitempty" swaggertype:"string" example:"20"`
}

// SliceResponse carries the sliced collection.
type SliceResponse struct {
	// example: users
	ID    string `json:"id" example:"users"`
	Items any    `json:"items" swaggertype:"object"`
	// example: 3
	Page int `json:"page" example:"3"`
	// example: 20
	ItemsPerPage int `json:"items_per_page" example:"20"`
}

// PagesResponse is returned by GET /pages.
type PagesResponse struct {
	// Page numbers and "..." markers.
	// example: [1,2,3,4,5,6,7,"...",10]
	Pages []any `json:"pages" swaggertype:"array,string"`
	// example: 10
	TotalPages int   `json:"total_pages" example:"10"`
	Range      Range `json:"range"`
}

// InstancesResponse is returned by GET /instances.
type InstancesResponse struct {
	Instances []Instance `json:"instances"`
}
