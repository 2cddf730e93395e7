package handlers

import (
	"github.com/urmzd/homeview/pkg/entity"
	"github.com/urmzd/homeview/pkg/route"
)

// collection ties an entity kind to its URL segment and page routes.
type collection struct {
	Kind       entity.Kind
	Segment    string
	ListName   string
	DetailName string
}

var collections = []collection{
	{entity.KindDevice, "devices", route.NameDevices, route.NameDeviceDetail},
	{entity.KindGroup, "groups", route.NameGroups, route.NameGroupDetail},
	{entity.KindAdapter, "adapters", route.NameAdapters, route.NameAdapterDetail},
}

func collectionBySegment(segment string) (collection, bool) {
	for _, c := range collections {
		if c.Segment == segment {
			return c, true
		}
	}
	return collection{}, false
}

func collectionByKind(kind entity.Kind) collection {
	for _, c := range collections {
		if c.Kind == kind {
			return c
		}
	}
	return collection{Kind: kind}
}
