package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/claude/gogym/internal/dates"
	"github.com/claude/gogym/internal/models"
)

// GetWorkoutRecord fetches the record for one day. Returns (nil, nil) when
// no record exists for that day.
func (c *Client) GetWorkoutRecord(ctx context.Context, token string, day dates.Day) (*models.WorkoutForm, error) {
	params := url.Values{}
	params.Set("date", day.String())

	var form models.WorkoutForm
	err := c.do(ctx, http.MethodGet, "/workouts/records", token, params, nil, &form)
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &form, nil
}

// CreateWorkoutRecord persists a new record and returns it as saved
// (IDs assigned, pending exercises resolved).
func (c *Client) CreateWorkoutRecord(ctx context.Context, token string, sub models.WorkoutSubmission) (*models.WorkoutForm, error) {
	var form models.WorkoutForm
	if err := c.do(ctx, http.MethodPost, "/workouts/records", token, nil, sub, &form); err != nil {
		return nil, err
	}
	return &form, nil
}

// UpdateWorkoutRecord replaces an existing record.
func (c *Client) UpdateWorkoutRecord(ctx context.Context, token string, id int64, sub models.WorkoutSubmission) (*models.WorkoutForm, error) {
	var form models.WorkoutForm
	path := fmt.Sprintf("/workouts/records/%d", id)
	if err := c.do(ctx, http.MethodPut, path, token, nil, sub, &form); err != nil {
		return nil, err
	}
	return &form, nil
}

// GetWorkoutParts lists the user's body-part groupings with their exercise
// catalogs.
func (c *Client) GetWorkoutParts(ctx context.Context, token string) ([]models.WorkoutPart, error) {
	var parts []models.WorkoutPart
	if err := c.do(ctx, http.MethodGet, "/workouts/parts", token, nil, nil, &parts); err != nil {
		return nil, err
	}
	return parts, nil
}

// SeedWorkoutParts creates the default part set for a new user and returns
// the seeded parts.
func (c *Client) SeedWorkoutParts(ctx context.Context, token string) ([]models.WorkoutPart, error) {
	var parts []models.WorkoutPart
	if err := c.do(ctx, http.MethodPost, "/workouts/seed", token, nil, nil, &parts); err != nil {
		return nil, err
	}
	return parts, nil
}

// UpsertWorkoutExercises creates or renames catalog exercises.
func (c *Client) UpsertWorkoutExercises(ctx context.Context, token string, rows []models.CatalogUpsert) ([]models.CatalogExercise, error) {
	payload := map[string]any{"exercises": rows}
	var out []models.CatalogExercise
	if err := c.do(ctx, http.MethodPost, "/workouts/exercises", token, nil, payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteWorkoutExercise removes a catalog exercise.
func (c *Client) DeleteWorkoutExercise(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/workouts/exercises/%d", id), token, nil, nil, nil)
}

// GetLastExerciseRecord fetches the most recent saved sets for an exercise.
// Returns (nil, nil) when the exercise has never been recorded.
func (c *Client) GetLastExerciseRecord(ctx context.Context, token string, exerciseID int64) (*models.ExerciseRow, error) {
	var row models.ExerciseRow
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/workouts/exercises/%d/last", exerciseID), token, nil, nil, &row)
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
