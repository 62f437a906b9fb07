package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) workoutPartsResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	parts, err := h.ds.GetWorkoutParts(ctx)
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, parts)
}

func (h *handlers) recommendedGymsResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	gyms, err := h.ds.RecommendedGyms(ctx)
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, gyms)
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
