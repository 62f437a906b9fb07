package workout

import "github.com/claude/gogym/internal/models"

// SetField names the per-set input a cell update targets.
type SetField int

const (
	FieldWeight SetField = iota
	FieldReps
)

// Editor is the editing state for one day's workout record: the form, the
// available parts, and the current part selection. It replaces the UI-side
// provider/context with an explicit struct; all mutations go through its
// methods so the set cap/floor and renumbering invariants hold.
type Editor struct {
	Form           models.WorkoutForm
	AvailableParts []models.WorkoutPart
	SelectedPartID *int64
}

// NewEditor builds editing state around a loaded form. The part selection
// starts from the first exercise's part.
func NewEditor(form models.WorkoutForm, parts []models.WorkoutPart) *Editor {
	e := &Editor{AvailableParts: parts}
	e.Load(form)
	return e
}

// Load replaces the form with freshly fetched data, discarding any unsaved
// edits (server wins on navigation), and resyncs the part selection.
func (e *Editor) Load(form models.WorkoutForm) {
	if len(form.Exercises) == 0 {
		form.Exercises = []models.ExerciseRow{NewEmptyExercise(nil)}
	}
	e.Form = form
	e.SelectedPartID = form.Exercises[0].WorkoutPartID
}

// IsUpdate reports whether submitting will update an existing record.
func (e *Editor) IsUpdate() bool {
	return e.Form.ID != nil
}

// SelectPart switches the displayed part.
func (e *Editor) SelectPart(partID int64) {
	e.SelectedPartID = &partID
}

// Displayed returns the exercises of the selected part, with a synthesized
// empty row when the part has none yet.
func (e *Editor) Displayed() []models.ExerciseRow {
	return Displayed(e.Form.Exercises, e.SelectedPartID)
}

// mutate runs fn over the displayed subset and splices the result back into
// the full exercise list. fn returns false to signal a refused operation,
// leaving the form untouched.
func (e *Editor) mutate(fn func(displayed []models.ExerciseRow) ([]models.ExerciseRow, bool)) bool {
	updated, ok := fn(e.Displayed())
	if !ok {
		return false
	}
	e.Form.Exercises = ReplacePartition(e.Form.Exercises, e.SelectedPartID, updated)
	return true
}

// UpdateCell sets a single weight/reps input on one set, keeping the value
// as typed so partial numeric entry round-trips.
func (e *Editor) UpdateCell(exIdx, setIdx int, field SetField, value string) bool {
	return e.mutate(func(displayed []models.ExerciseRow) ([]models.ExerciseRow, bool) {
		if exIdx < 0 || exIdx >= len(displayed) {
			return nil, false
		}
		sets := displayed[exIdx].Sets
		if setIdx < 0 || setIdx >= len(sets) {
			return nil, false
		}
		switch field {
		case FieldWeight:
			sets[setIdx].WeightKg = models.FlexNumber(value)
		case FieldReps:
			sets[setIdx].Reps = models.FlexNumber(value)
		}
		return displayed, true
	})
}

// AddSet appends an empty set to an exercise. Refused at the MaxSets cap.
func (e *Editor) AddSet(exIdx int) bool {
	return e.mutate(func(displayed []models.ExerciseRow) ([]models.ExerciseRow, bool) {
		if exIdx < 0 || exIdx >= len(displayed) {
			return nil, false
		}
		ex := &displayed[exIdx]
		if len(ex.Sets) >= MaxSets {
			return nil, false
		}
		ex.Sets = append(ex.Sets, NewEmptySet(0))
		Renumber(ex.Sets)
		return displayed, true
	})
}

// RemoveSet deletes one set. Refused when it would leave fewer than MinSets.
func (e *Editor) RemoveSet(exIdx, setIdx int) bool {
	return e.mutate(func(displayed []models.ExerciseRow) ([]models.ExerciseRow, bool) {
		if exIdx < 0 || exIdx >= len(displayed) {
			return nil, false
		}
		ex := &displayed[exIdx]
		if setIdx < 0 || setIdx >= len(ex.Sets) || len(ex.Sets) <= MinSets {
			return nil, false
		}
		ex.Sets = append(ex.Sets[:setIdx], ex.Sets[setIdx+1:]...)
		Renumber(ex.Sets)
		return displayed, true
	})
}

// CopySetBelow duplicates a set's weight/reps/note immediately after it.
// Refused at the MaxSets cap.
func (e *Editor) CopySetBelow(exIdx, setIdx int) bool {
	return e.mutate(func(displayed []models.ExerciseRow) ([]models.ExerciseRow, bool) {
		if exIdx < 0 || exIdx >= len(displayed) {
			return nil, false
		}
		ex := &displayed[exIdx]
		if setIdx < 0 || setIdx >= len(ex.Sets) || len(ex.Sets) >= MaxSets {
			return nil, false
		}
		src := ex.Sets[setIdx]
		dup := models.SetRow{WeightKg: src.WeightKg, Reps: src.Reps, Note: src.Note}
		ex.Sets = append(ex.Sets[:setIdx+1], append([]models.SetRow{dup}, ex.Sets[setIdx+1:]...)...)
		Renumber(ex.Sets)
		return displayed, true
	})
}

// CopyLastRecord replaces an exercise's sets with the previous record's
// sets, renumbered. Set IDs are cleared: they belong to the old record.
func (e *Editor) CopyLastRecord(exIdx int, last models.ExerciseRow) bool {
	return e.mutate(func(displayed []models.ExerciseRow) ([]models.ExerciseRow, bool) {
		if exIdx < 0 || exIdx >= len(displayed) || len(last.Sets) == 0 {
			return nil, false
		}
		sets := make([]models.SetRow, 0, len(last.Sets))
		for _, s := range last.Sets {
			sets = append(sets, models.SetRow{WeightKg: s.WeightKg, Reps: s.Reps, Note: s.Note})
		}
		Renumber(sets)
		displayed[exIdx].Sets = sets
		return displayed, true
	})
}

// ChangeExerciseName resolves a typed or selected name against the current
// part's catalog. A match adopts the catalog ID and part; unmatched text is
// kept with a nil ID as a pending new exercise, created upstream on submit.
func (e *Editor) ChangeExerciseName(exIdx int, name string) bool {
	return e.mutate(func(displayed []models.ExerciseRow) ([]models.ExerciseRow, bool) {
		if exIdx < 0 || exIdx >= len(displayed) {
			return nil, false
		}
		ex := &displayed[exIdx]
		ex.Name = name
		ex.ID = nil
		ex.WorkoutPartID = e.SelectedPartID
		if match := e.findCatalogExercise(name); match != nil {
			id := match.ID
			partID := match.WorkoutPartID
			ex.ID = &id
			ex.WorkoutPartID = &partID
		}
		return displayed, true
	})
}

// findCatalogExercise looks the name up in the selected part's catalog.
func (e *Editor) findCatalogExercise(name string) *models.CatalogExercise {
	if e.SelectedPartID == nil || name == "" {
		return nil
	}
	for _, part := range e.AvailableParts {
		if part.ID != *e.SelectedPartID {
			continue
		}
		for _, ce := range part.Exercises {
			if ce.Name == name {
				return &ce
			}
		}
	}
	return nil
}
