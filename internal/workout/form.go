package workout

import (
	"github.com/claude/gogym/internal/dates"
	"github.com/claude/gogym/internal/models"
)

const (
	// MinSets is the floor: an exercise always keeps at least one set row.
	MinSets = 1
	// MaxSets is the cap on set rows per exercise.
	MaxSets = 5
)

// NewEmptySet returns an untouched set row with the given 1-based number.
func NewEmptySet(number int) models.SetRow {
	return models.SetRow{SetNumber: number}
}

// NewEmptyExercise returns a placeholder exercise row for the given part,
// pre-filled with MaxSets empty sets the way a fresh editor shows them.
func NewEmptyExercise(partID *int64) models.ExerciseRow {
	sets := make([]models.SetRow, 0, MaxSets)
	for i := 1; i <= MaxSets; i++ {
		sets = append(sets, NewEmptySet(i))
	}
	return models.ExerciseRow{WorkoutPartID: partID, Sets: sets}
}

// NewEmptyForm returns the default form for a day with no saved record:
// one placeholder exercise for the given part, nothing else filled in.
func NewEmptyForm(day dates.Day, partID *int64) models.WorkoutForm {
	return models.WorkoutForm{
		PerformedDate: day.String(),
		Exercises:     []models.ExerciseRow{NewEmptyExercise(partID)},
	}
}

// Renumber rewrites set numbers densely, 1-based, matching array position.
func Renumber(sets []models.SetRow) {
	for i := range sets {
		sets[i].SetNumber = i + 1
	}
}

// emptyStr treats nil and "" as no value, returning nil for both.
func emptyStr(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// NormalizeForSubmit converts an edited form into the upstream payload:
// sets with neither weight nor reps are dropped, surviving weight/reps are
// coerced to number-or-null, set numbers are renumbered densely, and
// placeholder exercises that were never named or filled in are dropped.
// Normalizing an already-normalized form yields the same payload.
func NormalizeForSubmit(form models.WorkoutForm) models.WorkoutSubmission {
	sub := models.WorkoutSubmission{
		ID:             form.ID,
		PerformedDate:  form.PerformedDate,
		StartedAt:      emptyStr(form.StartedAt),
		EndedAt:        emptyStr(form.EndedAt),
		GymID:          form.GymID,
		GymName:        emptyStr(form.GymName),
		Note:           emptyStr(form.Note),
		ConditionLevel: form.ConditionLevel,
		Exercises:      []models.ExercisePayload{},
	}

	for _, ex := range form.Exercises {
		sets := make([]models.SetPayload, 0, len(ex.Sets))
		for _, set := range ex.Sets {
			weight := set.WeightKg.Float()
			reps := set.Reps.Float()
			if weight == nil && reps == nil {
				continue
			}
			sets = append(sets, models.SetPayload{
				ID:        set.ID,
				SetNumber: len(sets) + 1,
				WeightKg:  weight,
				Reps:      reps,
				Note:      emptyStr(set.Note),
			})
		}

		if len(sets) == 0 && ex.Name == "" {
			continue
		}
		sub.Exercises = append(sub.Exercises, models.ExercisePayload{
			ID:            ex.ID,
			Name:          ex.Name,
			WorkoutPartID: ex.WorkoutPartID,
			Sets:          sets,
		})
	}

	return sub
}
