package mcp

import (
	"github.com/urmzd/homeview/pkg/entity"
	"github.com/urmzd/homeview/pkg/route"
)

// GetHealthOutput is the output for the get_health tool
type GetHealthOutput struct {
	Status    string `json:"status" jsonschema:"description=Overall health status (healthy or unhealthy)"`
	Storage   string `json:"storage" jsonschema:"description=Entity storage connection status"`
	Timestamp string `json:"timestamp" jsonschema:"description=ISO8601 timestamp"`
}

// RouteInfo is one flattened route
type RouteInfo struct {
	Name     string `json:"name,omitempty" jsonschema:"description=Symbolic route name"`
	Path     string `json:"path" jsonschema:"description=Full path pattern"`
	Parent   string `json:"parent,omitempty" jsonschema:"description=Enclosing route name"`
	Redirect string `json:"redirect,omitempty" jsonschema:"description=Redirect target"`
}

// ListRoutesOutput is the output for the list_routes tool
type ListRoutesOutput struct {
	BasePath string      `json:"base_path" jsonschema:"description=Path the routes are mounted under"`
	Routes   []RouteInfo `json:"routes" jsonschema:"description=Routes in evaluation order"`
}

// AttributeInfo is an attribute with its extracted value
type AttributeInfo struct {
	Name  string       `json:"name" jsonschema:"description=Attribute name"`
	Value entity.Value `json:"value" jsonschema:"description=String, boolean, number or Unknown"`
}

// EntityInfo represents an entity in tool outputs
type EntityInfo struct {
	Kind       entity.Kind     `json:"kind" jsonschema:"description=Entity kind"`
	ID         string          `json:"id" jsonschema:"description=Entity ID"`
	Name       string          `json:"name" jsonschema:"description=Display name"`
	Href       string          `json:"href,omitempty" jsonschema:"description=Detail page path"`
	Attributes []AttributeInfo `json:"attributes" jsonschema:"description=Attribute values"`
}

// ListEntitiesOutput is the output for the list_entities tool
type ListEntitiesOutput struct {
	Entities []EntityInfo `json:"entities"`
	Count    int          `json:"count"`
}

// GetEntityOutput is the output for the get_entity tool
type GetEntityOutput struct {
	Entity EntityInfo `json:"entity"`
}

// GetAttributeOutput is the output for the get_attribute tool
type GetAttributeOutput struct {
	Kind      entity.Kind  `json:"kind"`
	ID        string       `json:"id"`
	Attribute string       `json:"attribute"`
	Value     entity.Value `json:"value"`
}

// flattenRoutes lists routes depth-first with full paths.
func flattenRoutes(routes []route.Route, prefix, parent string) []RouteInfo {
	var out []RouteInfo
	for _, r := range routes {
		full := r.Path
		if prefix != "" {
			full = prefix + "/" + r.Path
		}
		out = append(out, RouteInfo{Name: r.Name, Path: full, Parent: parent, Redirect: r.Redirect})
		out = append(out, flattenRoutes(r.Children, full, r.Name)...)
	}
	return out
}
