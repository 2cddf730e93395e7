// Package route declares the navigable page surface and mounts it onto gin.
package route

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
)

// Route names used for programmatic navigation.
const (
	NameHome          = "Home"
	NameDevices       = "Devices"
	NameDeviceDetail  = "DeviceDetail"
	NameGroups        = "Groups"
	NameGroupDetail   = "GroupDetail"
	NameAdapters      = "Adapters"
	NameAdapterDetail = "AdapterDetail"
	NameNotFound      = "NotFound"
)

// CatchAll is the path pattern matching any otherwise unmatched path.
const CatchAll = "/*"

// Route is one navigable path. Child paths are relative to their parent.
type Route struct {
	Path     string  `json:"path"`
	Name     string  `json:"name,omitempty"`
	Redirect string  `json:"redirect,omitempty"`
	Children []Route `json:"children,omitempty"`
}

// IsCatchAll reports whether the route matches everything left unmatched.
func (r Route) IsCatchAll() bool { return r.Path == CatchAll }

// Table returns the application route table in evaluation order. Each call
// returns a fresh copy.
func Table() []Route {
	return []Route{
		{Path: "/", Redirect: "/home"},
		{Path: "/home", Name: NameHome},
		{
			Path: "/devices",
			Name: NameDevices,
			Children: []Route{
				{Path: ":id", Name: NameDeviceDetail},
			},
		},
		{
			Path: "/groups",
			Name: NameGroups,
			Children: []Route{
				{Path: ":id", Name: NameGroupDetail},
			},
		},
		{
			Path: "/adapters",
			Name: NameAdapters,
			Children: []Route{
				{Path: ":id", Name: NameAdapterDetail},
			},
		},
		{Path: CatchAll, Name: NameNotFound},
	}
}

var (
	// ErrUnknownRoute indicates no route carries the requested name
	ErrUnknownRoute = errors.New("unknown route")

	// ErrMissingParam indicates a dynamic segment had no value
	ErrMissingParam = errors.New("missing route parameter")
)

// Validate checks that names are unique, that non-redirect routes are named,
// and that a catch-all, if present, is the last top-level entry.
func Validate(routes []Route) error {
	seen := make(map[string]bool)
	for i, r := range routes {
		if r.IsCatchAll() && i != len(routes)-1 {
			return fmt.Errorf("catch-all route %q must be last", r.Name)
		}
		if err := validate(r, seen); err != nil {
			return err
		}
	}
	return nil
}

func validate(r Route, seen map[string]bool) error {
	if r.Path == "" {
		return fmt.Errorf("route %q has an empty path", r.Name)
	}
	if r.Redirect != "" {
		if len(r.Children) > 0 {
			return fmt.Errorf("redirect route %q cannot have children", r.Path)
		}
		return nil
	}
	if r.Name == "" {
		return fmt.Errorf("route %q has no name", r.Path)
	}
	if seen[r.Name] {
		return fmt.Errorf("duplicate route name %q", r.Name)
	}
	seen[r.Name] = true
	for _, c := range r.Children {
		if c.IsCatchAll() {
			return fmt.Errorf("route %q: nested catch-all is not supported", r.Name)
		}
		if err := validate(c, seen); err != nil {
			return err
		}
	}
	return nil
}

// Lookup finds a route by name and returns it with its full path.
func Lookup(routes []Route, name string) (Route, string, bool) {
	return lookup(routes, "", name)
}

func lookup(routes []Route, prefix, name string) (Route, string, bool) {
	for _, r := range routes {
		full := joinPath(prefix, r.Path)
		if r.Name == name {
			return r, full, true
		}
		if found, p, ok := lookup(r.Children, full, name); ok {
			return found, p, true
		}
	}
	return Route{}, "", false
}

// Href builds the URL of a named route under base, substituting dynamic
// segments from params.
func Href(routes []Route, base, name string, params map[string]string) (string, error) {
	r, full, ok := Lookup(routes, name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}
	if r.IsCatchAll() {
		return "", fmt.Errorf("route %q has no fixed path", name)
	}

	segments := strings.Split(full, "/")
	for i, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		v, ok := params[seg[1:]]
		if !ok || v == "" {
			return "", fmt.Errorf("%w: %s for route %s", ErrMissingParam, seg[1:], name)
		}
		segments[i] = url.PathEscape(v)
	}
	return joinPath(base, strings.Join(segments, "/")), nil
}

// joinPath joins a base and a relative path, always yielding an absolute path.
func joinPath(base, rel string) string {
	if base == "" {
		base = "/"
	}
	return path.Join("/", base, rel)
}
