package mcp

import (
	"context"

	"github.com/claude/gogym/internal/dates"
	"github.com/claude/gogym/internal/models"
	"github.com/claude/gogym/internal/upstream"
)

// DataSource abstracts the data layer for MCP tools. The production
// implementation proxies the upstream REST API with a service token.
type DataSource interface {
	GetWorkoutRecord(ctx context.Context, day dates.Day) (*models.WorkoutForm, error)
	GetLastExerciseRecord(ctx context.Context, exerciseID int64) (*models.ExerciseRow, error)
	GetWorkoutParts(ctx context.Context) ([]models.WorkoutPart, error)
	SearchGyms(ctx context.Context, query string) ([]models.Gym, error)
	RecommendedGyms(ctx context.Context) ([]models.Gym, error)
}

// UpstreamSource adapts upstream.Client to DataSource, attaching a fixed
// service token to every call.
type UpstreamSource struct {
	api   *upstream.Client
	token string
}

func NewUpstreamSource(api *upstream.Client, serviceToken string) *UpstreamSource {
	return &UpstreamSource{api: api, token: serviceToken}
}

func (u *UpstreamSource) GetWorkoutRecord(ctx context.Context, day dates.Day) (*models.WorkoutForm, error) {
	return u.api.GetWorkoutRecord(ctx, u.token, day)
}

func (u *UpstreamSource) GetLastExerciseRecord(ctx context.Context, exerciseID int64) (*models.ExerciseRow, error) {
	return u.api.GetLastExerciseRecord(ctx, u.token, exerciseID)
}

func (u *UpstreamSource) GetWorkoutParts(ctx context.Context) ([]models.WorkoutPart, error) {
	return u.api.GetWorkoutParts(ctx, u.token)
}

func (u *UpstreamSource) SearchGyms(ctx context.Context, query string) ([]models.Gym, error) {
	return u.api.SearchGyms(ctx, u.token, query)
}

func (u *UpstreamSource) RecommendedGyms(ctx context.Context) ([]models.Gym, error) {
	return u.api.RecommendedGyms(ctx, u.token)
}

// Compile-time check: *UpstreamSource satisfies DataSource.
var _ DataSource = (*UpstreamSource)(nil)
