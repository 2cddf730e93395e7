package mcp

import "github.com/mark3labs/mcp-go/mcp"

const collectionDescription = "Entity collection: device, group or adapter"

// registerTools registers all MCP tools with the server
func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("get_health",
			mcp.WithDescription("Check whether entity storage is reachable"),
		),
		s.handleGetHealth,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("list_routes",
			mcp.WithDescription("List the navigable page routes with their names and paths"),
		),
		s.handleListRoutes,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("list_entities",
			mcp.WithDescription("List the entities of a collection with their current attribute values"),
			mcp.WithString("kind",
				mcp.Required(),
				mcp.Description(collectionDescription),
				mcp.Enum("device", "group", "adapter"),
			),
		),
		s.handleListEntities,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get_entity",
			mcp.WithDescription("Get one entity with every attribute value"),
			mcp.WithString("kind",
				mcp.Required(),
				mcp.Description(collectionDescription),
				mcp.Enum("device", "group", "adapter"),
			),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Entity ID"),
			),
		),
		s.handleGetEntity,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get_attribute",
			mcp.WithDescription("Read the current value of a named attribute. Returns \"Unknown\" when no value is available."),
			mcp.WithString("kind",
				mcp.Required(),
				mcp.Description(collectionDescription),
				mcp.Enum("device", "group", "adapter"),
			),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Entity ID"),
			),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Attribute name (case-sensitive)"),
			),
		),
		s.handleGetAttribute,
	)
}
