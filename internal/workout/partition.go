// Package workout implements the workout-record editing state machine:
// the displayed-exercise partition, per-set mutations with their cap/floor
// rules, catalog name resolution, and the submission-time normalization.
package workout

import "github.com/claude/gogym/internal/models"

// samePart compares an exercise's part against the selected part, treating
// two nils as equal (unassigned rows group together).
func samePart(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Displayed returns the exercises belonging to the selected part. When none
// match it synthesizes exactly one empty row so the editor always has
// something to edit.
func Displayed(all []models.ExerciseRow, partID *int64) []models.ExerciseRow {
	var out []models.ExerciseRow
	for _, ex := range all {
		if samePart(ex.WorkoutPartID, partID) {
			out = append(out, ex)
		}
	}
	if len(out) == 0 {
		out = append(out, NewEmptyExercise(partID))
	}
	return out
}

// ReplacePartition splices an updated displayed subset back into the full
// exercise list: rows of other parts keep their relative order, the updated
// subset replaces every row that matched the selected part.
func ReplacePartition(all []models.ExerciseRow, partID *int64, updated []models.ExerciseRow) []models.ExerciseRow {
	out := make([]models.ExerciseRow, 0, len(all)+len(updated))
	for _, ex := range all {
		if !samePart(ex.WorkoutPartID, partID) {
			out = append(out, ex)
		}
	}
	return append(out, updated...)
}
