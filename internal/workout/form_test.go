package workout

import (
	"testing"

	"github.com/claude/gogym/internal/dates"
	"github.com/claude/gogym/internal/models"
)

func ptr[T any](v T) *T { return &v }

// TestNormalizeForSubmitDropsEmptySets verifies that sets with neither
// weight nor reps are dropped and the survivors carry numbers, never "".
func TestNormalizeForSubmitDropsEmptySets(t *testing.T) {
	form := NewEmptyForm(dates.Day{Year: 2025, Month: 6, Day: 1}, ptr(int64(3)))
	form.Exercises[0].Name = "ベンチプレス"
	form.Exercises[0].Sets[0].WeightKg = "60"
	form.Exercises[0].Sets[0].Reps = "10"

	sub := NormalizeForSubmit(form)

	if sub.PerformedDate != "2025-06-01" {
		t.Errorf("performed_date = %q, want 2025-06-01", sub.PerformedDate)
	}
	if len(sub.Exercises) != 1 {
		t.Fatalf("exercises = %d, want 1", len(sub.Exercises))
	}
	sets := sub.Exercises[0].Sets
	if len(sets) != 1 {
		t.Fatalf("sets = %d, want 1 (empty sets 2-5 dropped)", len(sets))
	}
	if sets[0].SetNumber != 1 {
		t.Errorf("set_number = %d, want 1", sets[0].SetNumber)
	}
	if sets[0].WeightKg == nil || *sets[0].WeightKg != 60 {
		t.Errorf("weight_kg = %v, want 60", sets[0].WeightKg)
	}
	if sets[0].Reps == nil || *sets[0].Reps != 10 {
		t.Errorf("reps = %v, want 10", sets[0].Reps)
	}
}

// TestNormalizeForSubmitHalfFilledSet verifies that a set with only one of
// weight/reps entered survives, the missing side as null.
func TestNormalizeForSubmitHalfFilledSet(t *testing.T) {
	form := NewEmptyForm(dates.Day{Year: 2025, Month: 6, Day: 1}, nil)
	form.Exercises[0].Name = "スクワット"
	form.Exercises[0].Sets[1].Reps = "12"

	sub := NormalizeForSubmit(form)

	sets := sub.Exercises[0].Sets
	if len(sets) != 1 {
		t.Fatalf("sets = %d, want 1", len(sets))
	}
	if sets[0].WeightKg != nil {
		t.Errorf("weight_kg = %v, want nil", *sets[0].WeightKg)
	}
	if sets[0].Reps == nil || *sets[0].Reps != 12 {
		t.Errorf("reps = %v, want 12", sets[0].Reps)
	}
	if sets[0].SetNumber != 1 {
		t.Errorf("set_number = %d, want 1 after renumbering", sets[0].SetNumber)
	}
}

// TestNormalizeForSubmitDropsUntouchedPlaceholder verifies that the
// synthesized unnamed placeholder exercise is not submitted.
func TestNormalizeForSubmitDropsUntouchedPlaceholder(t *testing.T) {
	form := NewEmptyForm(dates.Day{Year: 2025, Month: 6, Day: 1}, ptr(int64(1)))

	sub := NormalizeForSubmit(form)

	if len(sub.Exercises) != 0 {
		t.Errorf("exercises = %d, want 0 for an untouched form", len(sub.Exercises))
	}
}

// TestNormalizeForSubmitEmptyStrings verifies that empty optional string
// fields are submitted as null, not "".
func TestNormalizeForSubmitEmptyStrings(t *testing.T) {
	form := NewEmptyForm(dates.Day{Year: 2025, Month: 6, Day: 1}, nil)
	form.StartedAt = ptr("")
	form.EndedAt = ptr("19:30")
	form.Note = ptr("")

	sub := NormalizeForSubmit(form)

	if sub.StartedAt != nil {
		t.Errorf("started_at = %q, want nil", *sub.StartedAt)
	}
	if sub.EndedAt == nil || *sub.EndedAt != "19:30" {
		t.Errorf("ended_at = %v, want 19:30", sub.EndedAt)
	}
	if sub.Note != nil {
		t.Errorf("note = %q, want nil", *sub.Note)
	}
}

// TestNormalizeForSubmitIdempotent verifies that re-normalizing a payload
// whose numbers were re-parsed as strings yields the same filtered sets.
func TestNormalizeForSubmitIdempotent(t *testing.T) {
	form := NewEmptyForm(dates.Day{Year: 2025, Month: 6, Day: 1}, ptr(int64(3)))
	form.Exercises[0].Name = "デッドリフト"
	form.Exercises[0].Sets[0].WeightKg = "100"
	form.Exercises[0].Sets[0].Reps = "5"
	form.Exercises[0].Sets[2].WeightKg = "80"

	first := NormalizeForSubmit(form)

	// Rebuild a form from the payload, numbers rendered back into strings.
	again := models.WorkoutForm{
		ID:            first.ID,
		PerformedDate: first.PerformedDate,
	}
	for _, ex := range first.Exercises {
		row := models.ExerciseRow{ID: ex.ID, Name: ex.Name, WorkoutPartID: ex.WorkoutPartID}
		for _, s := range ex.Sets {
			set := models.SetRow{ID: s.ID, SetNumber: s.SetNumber, Note: s.Note}
			if s.WeightKg != nil {
				set.WeightKg = models.Number(*s.WeightKg)
			}
			if s.Reps != nil {
				set.Reps = models.Number(*s.Reps)
			}
			row.Sets = append(row.Sets, set)
		}
		again.Exercises = append(again.Exercises, row)
	}

	second := NormalizeForSubmit(again)

	if len(second.Exercises) != len(first.Exercises) {
		t.Fatalf("exercises = %d, want %d", len(second.Exercises), len(first.Exercises))
	}
	for i := range first.Exercises {
		fs, ss := first.Exercises[i].Sets, second.Exercises[i].Sets
		if len(ss) != len(fs) {
			t.Fatalf("exercise %d: sets = %d, want %d", i, len(ss), len(fs))
		}
		for j := range fs {
			if fs[j].SetNumber != ss[j].SetNumber {
				t.Errorf("set %d: number %d != %d", j, ss[j].SetNumber, fs[j].SetNumber)
			}
			if (fs[j].WeightKg == nil) != (ss[j].WeightKg == nil) ||
				(fs[j].WeightKg != nil && *fs[j].WeightKg != *ss[j].WeightKg) {
				t.Errorf("set %d: weight mismatch", j)
			}
			if (fs[j].Reps == nil) != (ss[j].Reps == nil) ||
				(fs[j].Reps != nil && *fs[j].Reps != *ss[j].Reps) {
				t.Errorf("set %d: reps mismatch", j)
			}
		}
	}
}

// TestNewEmptyForm verifies the synthesized default state: one placeholder
// exercise with five empty sets, numbered densely.
func TestNewEmptyForm(t *testing.T) {
	form := NewEmptyForm(dates.Day{Year: 2025, Month: 6, Day: 1}, ptr(int64(2)))

	if form.ID != nil {
		t.Errorf("id = %v, want nil (create semantics)", *form.ID)
	}
	if len(form.Exercises) != 1 {
		t.Fatalf("exercises = %d, want 1", len(form.Exercises))
	}
	ex := form.Exercises[0]
	if ex.WorkoutPartID == nil || *ex.WorkoutPartID != 2 {
		t.Errorf("workout_part_id = %v, want 2", ex.WorkoutPartID)
	}
	if len(ex.Sets) != MaxSets {
		t.Fatalf("sets = %d, want %d", len(ex.Sets), MaxSets)
	}
	for i, s := range ex.Sets {
		if s.SetNumber != i+1 {
			t.Errorf("set %d: number = %d, want %d", i, s.SetNumber, i+1)
		}
		if !s.WeightKg.IsEmpty() || !s.Reps.IsEmpty() {
			t.Errorf("set %d: expected empty weight/reps", i)
		}
	}
}
