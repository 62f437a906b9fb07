// Package models holds the transit DTOs exchanged with the upstream GoGym
// API and the frontend. These are wire shapes, not a persisted schema —
// persistence lives upstream.
package models

// WorkoutForm is one day's workout record as edited in the UI.
// A nil ID means the record has not been persisted yet (create semantics);
// once saved the ID is set and subsequent submits become updates.
// The editor keeps at least one exercise row at all times.
type WorkoutForm struct {
	ID             *int64        `json:"id"`
	PerformedDate  string        `json:"performed_date"`
	StartedAt      *string       `json:"started_at"`
	EndedAt        *string       `json:"ended_at"`
	GymID          *int64        `json:"gym_id"`
	GymName        *string       `json:"gym_name"`
	Note           *string       `json:"note"`
	ConditionLevel *int          `json:"condition_level"`
	Exercises      []ExerciseRow `json:"exercises"`
}

// ExerciseRow is one exercise within a workout record. A nil ID marks
// user-entered free text not yet matched to a catalog exercise; it is
// created upstream at submit.
type ExerciseRow struct {
	ID            *int64   `json:"id"`
	Name          string   `json:"name"`
	WorkoutPartID *int64   `json:"workout_part_id"`
	Sets          []SetRow `json:"sets"`
}

// SetRow is one set of an exercise. SetNumber is 1-based and dense: after
// any mutation it matches the array position + 1. Weight and reps stay as
// typed (FlexNumber) until submission.
type SetRow struct {
	ID        *int64     `json:"id"`
	SetNumber int        `json:"set_number"`
	WeightKg  FlexNumber `json:"weight_kg"`
	Reps      FlexNumber `json:"reps"`
	Note      *string    `json:"note"`
}

// WorkoutPart is a body-part grouping (e.g. 胸/chest) used to scope which
// exercises are offered and displayed.
type WorkoutPart struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	Exercises []CatalogExercise `json:"exercises,omitempty"`
}

// CatalogExercise is a catalog entry an exercise row resolves against.
type CatalogExercise struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	WorkoutPartID int64  `json:"workout_part_id"`
}

// CatalogUpsert creates or renames a catalog exercise. A nil ID creates.
type CatalogUpsert struct {
	ID            *int64 `json:"id"`
	Name          string `json:"name"`
	WorkoutPartID int64  `json:"workout_part_id"`
}

// WorkoutSubmission is the normalized create/update payload: all-empty sets
// dropped, weight/reps coerced to number-or-null, set numbers renumbered.
type WorkoutSubmission struct {
	ID             *int64            `json:"id,omitempty"`
	PerformedDate  string            `json:"performed_date"`
	StartedAt      *string           `json:"started_at"`
	EndedAt        *string           `json:"ended_at"`
	GymID          *int64            `json:"gym_id"`
	GymName        *string           `json:"gym_name"`
	Note           *string           `json:"note"`
	ConditionLevel *int              `json:"condition_level"`
	Exercises      []ExercisePayload `json:"exercises"`
}

// ExercisePayload is an exercise as submitted upstream.
type ExercisePayload struct {
	ID            *int64       `json:"id"`
	Name          string       `json:"name"`
	WorkoutPartID *int64       `json:"workout_part_id"`
	Sets          []SetPayload `json:"sets"`
}

// SetPayload is a set as submitted upstream. Weight and reps are
// number-or-null, never the empty string.
type SetPayload struct {
	ID        *int64   `json:"id"`
	SetNumber int      `json:"set_number"`
	WeightKg  *float64 `json:"weight_kg"`
	Reps      *float64 `json:"reps"`
	Note      *string  `json:"note"`
}
