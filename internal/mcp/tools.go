package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/gogym/internal/dates"
)

// dayOrToday parses a yyyy-MM-dd argument, defaulting to today when empty.
func dayOrToday(s string) (dates.Day, error) {
	if s == "" {
		return dates.Today(time.Now()), nil
	}
	return dates.ParseDay(s)
}

// --- Tool definitions ---

var toolGetWorkoutRecord = mcp.NewTool("get_workout_record",
	mcp.WithDescription("Retrieve the workout record for one day: exercises, sets with weight/reps, gym, condition, and notes."),
	mcp.WithString("date", mcp.Description("Date (yyyy-MM-dd). Defaults to today.")),
)

var toolGetLastExerciseRecord = mcp.NewTool("get_last_exercise_record",
	mcp.WithDescription("Retrieve the most recent saved sets for a catalog exercise, useful as a baseline for the next session."),
	mcp.WithNumber("exercise_id", mcp.Required(), mcp.Description("Catalog exercise ID")),
)

var toolListWorkoutParts = mcp.NewTool("list_workout_parts",
	mcp.WithDescription("List the body-part groupings (e.g. chest, back, legs) with their exercise catalogs."),
)

var toolSearchGyms = mcp.NewTool("search_gyms",
	mcp.WithDescription("Free-text search over gym listings. Returns name, address, and rating."),
	mcp.WithString("q", mcp.Required(), mcp.Description("Search query")),
)

// --- Tool handlers ---

func (h *handlers) getWorkoutRecord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := dayOrToday(req.GetString("date", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	record, err := h.ds.GetWorkoutRecord(ctx, day)
	if err != nil {
		h.log.Error("mcp get_workout_record", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if record == nil {
		return mcp.NewToolResultText("no workout recorded on " + day.String()), nil
	}

	result, err := mcp.NewToolResultJSON(record)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getLastExerciseRecord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("exercise_id")
	if err != nil {
		return mcp.NewToolResultError("exercise_id parameter is required"), nil
	}

	row, err := h.ds.GetLastExerciseRecord(ctx, int64(id))
	if err != nil {
		h.log.Error("mcp get_last_exercise_record", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if row == nil {
		return mcp.NewToolResultText("no past record for this exercise"), nil
	}

	result, err := mcp.NewToolResultJSON(row)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listWorkoutParts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	parts, err := h.ds.GetWorkoutParts(ctx)
	if err != nil {
		h.log.Error("mcp list_workout_parts", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(parts)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) searchGyms(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("q")
	if err != nil {
		return mcp.NewToolResultError("q parameter is required"), nil
	}

	gyms, err := h.ds.SearchGyms(ctx, query)
	if err != nil {
		h.log.Error("mcp search_gyms", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(gyms)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
