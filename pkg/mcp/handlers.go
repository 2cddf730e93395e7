package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/urmzd/homeview/pkg/entity"
	"github.com/urmzd/homeview/pkg/route"
)

func (s *Server) handleGetHealth(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out := GetHealthOutput{
		Status:    "healthy",
		Storage:   "connected",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.source.Ping(ctx); err != nil {
		out.Status, out.Storage = "unhealthy", "disconnected"
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListRoutes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out := ListRoutesOutput{
		BasePath: s.basePath,
		Routes:   flattenRoutes(s.routes, "", ""),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListEntities(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, err := requiredKind(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	entities, err := s.source.List(ctx, kind)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list %ss: %s", kind, err)), nil
	}

	infos := make([]EntityInfo, 0, len(entities))
	for i := range entities {
		infos = append(infos, s.entityInfo(&entities[i]))
	}

	out := ListEntitiesOutput{Entities: infos, Count: len(infos)}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetEntity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, err := requiredKind(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	e, err := s.source.Get(ctx, kind, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%s %q: %s", kind, id, err)), nil
	}

	out := GetEntityOutput{Entity: s.entityInfo(e)}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetAttribute(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, err := requiredKind(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name, err := requiredString(request, "name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	e, err := s.source.Get(ctx, kind, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%s %q: %s", kind, id, err)), nil
	}

	out := GetAttributeOutput{
		Kind:      kind,
		ID:        id,
		Attribute: name,
		Value:     entity.Extract(e, name),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) entityInfo(e *entity.Entity) EntityInfo {
	info := EntityInfo{
		Kind:       e.Kind,
		ID:         e.ID,
		Name:       e.Name,
		Attributes: []AttributeInfo{},
	}
	if detail, ok := detailRoutes[e.Kind]; ok {
		info.Href, _ = route.Href(s.routes, s.basePath, detail, map[string]string{"id": e.ID})
	}
	for _, name := range e.AttributeNames() {
		info.Attributes = append(info.Attributes, AttributeInfo{Name: name, Value: entity.Extract(e, name)})
	}
	return info
}

var detailRoutes = map[entity.Kind]string{
	entity.KindDevice:  route.NameDeviceDetail,
	entity.KindGroup:   route.NameGroupDetail,
	entity.KindAdapter: route.NameAdapterDetail,
}

// --- helpers ---

func requiredString(request mcp.CallToolRequest, key string) (string, error) {
	args := request.GetArguments()
	v, ok := args[key]
	if !ok || v == nil {
		return "", fmt.Errorf("required parameter %q is missing", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("parameter %q must be a non-empty string", key)
	}
	return s, nil
}

func requiredKind(request mcp.CallToolRequest) (entity.Kind, error) {
	s, err := requiredString(request, "kind")
	if err != nil {
		return "", err
	}
	return entity.ParseKind(s)
}

func formatJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal response: %s"}`, err)
	}
	return string(b)
}
