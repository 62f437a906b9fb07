package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("GoGym", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("GoGym training data server. Query workout records, exercise history, body-part groupings, and gym listings. All data is scoped to the service account's user."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetWorkoutRecord, Handler: h.getWorkoutRecord},
		server.ServerTool{Tool: toolGetLastExerciseRecord, Handler: h.getLastExerciseRecord},
		server.ServerTool{Tool: toolListWorkoutParts, Handler: h.listWorkoutParts},
		server.ServerTool{Tool: toolSearchGyms, Handler: h.searchGyms},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resWorkoutParts, Handler: h.workoutPartsResource},
		server.ServerResource{Resource: resRecommendedGyms, Handler: h.recommendedGymsResource},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resWorkoutParts = mcp.NewResource(
	"gogym://workout_parts",
	"Workout Parts",
	mcp.WithResourceDescription("Body-part groupings with their exercise catalogs"),
	mcp.WithMIMEType("application/json"),
)

var resRecommendedGyms = mcp.NewResource(
	"gogym://recommended_gyms",
	"Recommended Gyms",
	mcp.WithResourceDescription("Gyms featured on the top page"),
	mcp.WithMIMEType("application/json"),
)
