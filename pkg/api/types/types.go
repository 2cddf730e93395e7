package types

import (
	"time"

	"github.com/urmzd/homeview/pkg/entity"
	"github.com/urmzd/homeview/pkg/route"
)

// --- Request DTOs ---

// PutEntityRequest is the request body for PUT /{collection}/:id
type PutEntityRequest struct {
	Name       string             `json:"name"`
	Attributes []entity.Attribute `json:"attributes"`
}

// --- Response DTOs ---

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned from GET /health
type HealthResponse struct {
	Status    string    `json:"status"`
	Storage   string    `json:"storage"`
	Timestamp time.Time `json:"timestamp"`
}

// AttributeView is one attribute with its extracted value
type AttributeView struct {
	Name  string       `json:"name"`
	Value entity.Value `json:"value" swaggertype:"string"`
}

// EntityView is an entity as shown in views and API responses
type EntityView struct {
	Kind       entity.Kind     `json:"kind"`
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Href       string          `json:"href,omitempty"`
	Attributes []AttributeView `json:"attributes"`
	UpdatedAt  time.Time       `json:"updated_at,omitzero"`
}

// ListEntitiesResponse is returned from GET /{collection}
type ListEntitiesResponse struct {
	Entities []EntityView `json:"entities"`
	Count    int          `json:"count"`
}

// EntityResponse is returned from GET/PUT /{collection}/:id
type EntityResponse struct {
	Entity EntityView `json:"entity"`
}

// AttributeResponse is returned from GET /{collection}/:id/attributes/:name
type AttributeResponse struct {
	Kind      entity.Kind  `json:"kind"`
	ID        string       `json:"id"`
	Attribute string       `json:"attribute"`
	Value     entity.Value `json:"value" swaggertype:"string"`
}

// RoutesResponse is returned from GET /routes
type RoutesResponse struct {
	BasePath string        `json:"base_path"`
	Routes   []route.Route `json:"routes"`
}

// --- Page view models ---

// Page is the view model returned for every navigable route
type Page struct {
	View   string            `json:"view"`
	Chain  []string          `json:"chain"`
	Path   string            `json:"path"`
	Params map[string]string `json:"params,omitempty"`
	Data   any               `json:"data,omitempty"`
	Error  *ErrorResponse    `json:"error,omitempty"`
}

// Link points at a named route
type Link struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// HomeData is the data of the Home view
type HomeData struct {
	Profile  string         `json:"profile"`
	Timezone string         `json:"timezone"`
	Counts   map[string]int `json:"counts"`
	Links    []Link         `json:"links"`
}

// CollectionData is the data of a collection view
type CollectionData struct {
	Kind  entity.Kind  `json:"kind"`
	Items []EntityView `json:"items"`
	Count int          `json:"count"`
}

// DetailData is the data of a detail view, rendered inside its collection
type DetailData struct {
	Collection CollectionData `json:"collection"`
	Entity     *EntityView    `json:"entity"`
}
