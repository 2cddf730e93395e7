package handlers

import (
	"github.com/rs/zerolog/log"

	"github.com/urmzd/homeview/pkg/api/types"
	"github.com/urmzd/homeview/pkg/entity"
	"github.com/urmzd/homeview/pkg/route"
)

// linker builds hrefs for named routes under a base path.
type linker struct {
	routes   []route.Route
	basePath string
}

func (l linker) href(name string, params map[string]string) string {
	h, err := route.Href(l.routes, l.basePath, name, params)
	if err != nil {
		log.Debug().Err(err).Str("route", name).Msg("Cannot build href")
		return ""
	}
	return h
}

// entityView lists every attribute with the value Extract reads for it.
func (l linker) entityView(e *entity.Entity) types.EntityView {
	v := types.EntityView{
		Kind:       e.Kind,
		ID:         e.ID,
		Name:       e.Name,
		UpdatedAt:  e.UpdatedAt,
		Attributes: []types.AttributeView{},
	}
	if detail := collectionByKind(e.Kind).DetailName; detail != "" {
		v.Href = l.href(detail, map[string]string{"id": e.ID})
	}
	for _, name := range e.AttributeNames() {
		v.Attributes = append(v.Attributes, types.AttributeView{
			Name:  name,
			Value: entity.Extract(e, name),
		})
	}
	return v
}

func (l linker) entityViews(entities []entity.Entity) []types.EntityView {
	views := make([]types.EntityView, 0, len(entities))
	for i := range entities {
		views = append(views, l.entityView(&entities[i]))
	}
	return views
}
