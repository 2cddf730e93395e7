package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/urmzd/homeview/pkg/api/types"
	"github.com/urmzd/homeview/pkg/entity"
	"github.com/urmzd/homeview/pkg/route"
)

// Site describes the installation shown on the Home view.
type Site struct {
	Profile  string
	Timezone string
}

// PagesHandler serves the view model of every route in the route table.
type PagesHandler struct {
	source entity.Source
	site   Site
	links  linker
}

// NewPagesHandler creates a new pages handler
func NewPagesHandler(source entity.Source, routes []route.Route, basePath string, site Site) *PagesHandler {
	return &PagesHandler{
		source: source,
		site:   site,
		links:  linker{routes: routes, basePath: basePath},
	}
}

// Views returns the view for every named route.
func (h *PagesHandler) Views() route.Views {
	views := route.Views{
		route.NameHome:     h.Home,
		route.NameNotFound: h.NotFound,
	}
	for _, col := range collections {
		views[col.ListName] = h.collectionView(col)
		views[col.DetailName] = h.detailView(col)
	}
	return views
}

// Home shows the profile, entity counts and links to each collection. A
// collection whose count fails is left out of Counts but still linked.
func (h *PagesHandler) Home(c *gin.Context, m route.Match) {
	ctx := c.Request.Context()

	data := types.HomeData{
		Profile:  h.site.Profile,
		Timezone: h.site.Timezone,
		Counts:   make(map[string]int, len(collections)),
	}
	for _, col := range collections {
		data.Links = append(data.Links, types.Link{Name: col.ListName, Href: h.links.href(col.ListName, nil)})

		n, err := h.source.Count(ctx, col.Kind)
		if err != nil {
			log.Warn().Err(err).Str("kind", string(col.Kind)).Msg("Failed to count entities")
			continue
		}
		data.Counts[col.Segment] = n
	}

	c.JSON(http.StatusOK, page(m, data))
}

// NotFound is the catch-all view.
func (h *PagesHandler) NotFound(c *gin.Context, m route.Match) {
	p := page(m, types.Link{Name: route.NameHome, Href: h.links.href(route.NameHome, nil)})
	p.Error = &types.ErrorResponse{
		Error:   "not_found",
		Message: fmt.Sprintf("No page at %s", m.Path),
	}
	c.JSON(http.StatusNotFound, p)
}

func (h *PagesHandler) collectionView(col collection) route.View {
	return func(c *gin.Context, m route.Match) {
		data, err := h.collection(c, col)
		if err != nil {
			h.fail(c, m, err)
			return
		}
		c.JSON(http.StatusOK, page(m, data))
	}
}

// detailView renders the selected entity nested inside its collection.
func (h *PagesHandler) detailView(col collection) route.View {
	return func(c *gin.Context, m route.Match) {
		list, err := h.collection(c, col)
		if err != nil {
			h.fail(c, m, err)
			return
		}
		data := types.DetailData{Collection: list}

		id := m.Params["id"]
		e, err := h.source.Get(c.Request.Context(), col.Kind, id)
		if err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				p := page(m, data)
				p.Error = &types.ErrorResponse{
					Error:   "not_found",
					Message: fmt.Sprintf("No %s with id %q", col.Kind, id),
				}
				c.JSON(http.StatusNotFound, p)
				return
			}
			h.fail(c, m, err)
			return
		}

		v := h.links.entityView(e)
		data.Entity = &v
		c.JSON(http.StatusOK, page(m, data))
	}
}

func (h *PagesHandler) collection(c *gin.Context, col collection) (types.CollectionData, error) {
	entities, err := h.source.List(c.Request.Context(), col.Kind)
	if err != nil {
		return types.CollectionData{}, err
	}
	items := h.links.entityViews(entities)
	return types.CollectionData{Kind: col.Kind, Items: items, Count: len(items)}, nil
}

func (h *PagesHandler) fail(c *gin.Context, m route.Match, err error) {
	status, body := errorStatus(err, "Not found")
	log.Error().Err(err).Str("view", m.Name).Msg("Failed to load view")
	p := page(m, nil)
	p.Error = &body
	c.JSON(status, p)
}

func page(m route.Match, data any) types.Page {
	return types.Page{
		View:   m.Name,
		Chain:  m.Chain,
		Path:   m.Path,
		Params: m.Params,
		Data:   data,
	}
}
