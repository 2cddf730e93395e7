package route

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Match describes the route a request resolved to.
type Match struct {
	Name   string            `json:"name"`
	Chain  []string          `json:"chain"` // route names from outermost to matched
	Params map[string]string `json:"params,omitempty"`
	Path   string            `json:"path"`
}

// View renders a matched route.
type View func(c *gin.Context, m Match)

// Views maps route names to their views.
type Views map[string]View

// Mount registers routes on engine under basePath for GET and HEAD. Gin does
// the path matching; redirects answer 302 before any view runs and the
// catch-all becomes the engine's NoRoute handler.
func Mount(engine *gin.Engine, basePath string, routes []Route, views Views) error {
	if err := Validate(routes); err != nil {
		return err
	}

	group := engine.Group(joinPath(basePath, "/"))
	for _, r := range routes {
		if r.IsCatchAll() {
			view, ok := views[r.Name]
			if !ok {
				return fmt.Errorf("route %q: no view registered", r.Name)
			}
			engine.NoRoute(catchAllHandler(view, r.Name))
			continue
		}
		if err := mount(group, basePath, r, nil, views); err != nil {
			return err
		}
	}
	return nil
}

func mount(g *gin.RouterGroup, basePath string, r Route, chain []string, views Views) error {
	if r.Redirect != "" {
		target := joinPath(basePath, r.Redirect)
		redirect := func(c *gin.Context) {
			c.Redirect(http.StatusFound, target)
		}
		g.GET(r.Path, redirect)
		g.HEAD(r.Path, redirect)
		return nil
	}

	view, ok := views[r.Name]
	if !ok {
		return fmt.Errorf("route %q: no view registered", r.Name)
	}

	chain = append(chain[:len(chain):len(chain)], r.Name)
	sub := g.Group(r.Path)
	h := handler(view, r.Name, chain)
	sub.GET("", h)
	sub.HEAD("", h)

	for _, child := range r.Children {
		if err := mount(sub, basePath, child, chain, views); err != nil {
			return err
		}
	}
	return nil
}

func handler(view View, name string, chain []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		m := Match{
			Name:  name,
			Chain: chain,
			Path:  c.Request.URL.Path,
		}
		if len(c.Params) > 0 {
			m.Params = make(map[string]string, len(c.Params))
			for _, p := range c.Params {
				m.Params[p.Key] = p.Value
			}
		}
		view(c, m)
	}
}

// catchAllHandler serves the catch-all view. The params gin collected while
// failing to match belong to other routes and are dropped.
func catchAllHandler(view View, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		view(c, Match{
			Name:  name,
			Chain: []string{name},
			Path:  c.Request.URL.Path,
		})
	}
}
