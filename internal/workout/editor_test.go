package workout

import (
	"testing"

	"github.com/claude/gogym/internal/dates"
	"github.com/claude/gogym/internal/models"
)

func testParts() []models.WorkoutPart {
	return []models.WorkoutPart{
		{ID: 1, Name: "胸", Exercises: []models.CatalogExercise{
			{ID: 10, Name: "ベンチプレス", WorkoutPartID: 1},
			{ID: 11, Name: "ダンベルフライ", WorkoutPartID: 1},
		}},
		{ID: 2, Name: "脚", Exercises: []models.CatalogExercise{
			{ID: 20, Name: "スクワット", WorkoutPartID: 2},
		}},
	}
}

func testEditor() *Editor {
	form := NewEmptyForm(dates.Day{Year: 2025, Month: 6, Day: 1}, ptr(int64(1)))
	return NewEditor(form, testParts())
}

// singleExercise returns the editor's one displayed exercise, failing the
// test if the displayed count is not exactly one.
func singleExercise(t *testing.T, e *Editor) models.ExerciseRow {
	t.Helper()
	displayed := e.Displayed()
	if len(displayed) != 1 {
		t.Fatalf("displayed = %d exercises, want 1", len(displayed))
	}
	return displayed[0]
}

// TestEditorSelectionFromLoadedForm verifies that the part selection is
// initialized from the first exercise and resynced on every load.
func TestEditorSelectionFromLoadedForm(t *testing.T) {
	e := testEditor()
	if e.SelectedPartID == nil || *e.SelectedPartID != 1 {
		t.Fatalf("selected part = %v, want 1", e.SelectedPartID)
	}

	next := NewEmptyForm(dates.Day{Year: 2025, Month: 6, Day: 2}, ptr(int64(2)))
	e.Load(next)
	if e.SelectedPartID == nil || *e.SelectedPartID != 2 {
		t.Errorf("selected part after load = %v, want 2", e.SelectedPartID)
	}
	if e.Form.PerformedDate != "2025-06-02" {
		t.Errorf("form date = %q, want 2025-06-02 (server wins)", e.Form.PerformedDate)
	}
}

// TestEditorUpdateCellKeepsRawValue verifies that cell updates store the
// string as typed, permitting partial numeric entry.
func TestEditorUpdateCellKeepsRawValue(t *testing.T) {
	e := testEditor()

	if !e.UpdateCell(0, 0, FieldWeight, "62.") {
		t.Fatal("UpdateCell refused a valid index")
	}
	if !e.UpdateCell(0, 0, FieldReps, "10") {
		t.Fatal("UpdateCell refused a valid index")
	}

	ex := singleExercise(t, e)
	if ex.Sets[0].WeightKg != "62." {
		t.Errorf("weight = %q, want raw \"62.\"", ex.Sets[0].WeightKg)
	}
	if ex.Sets[0].Reps != "10" {
		t.Errorf("reps = %q, want \"10\"", ex.Sets[0].Reps)
	}

	if e.UpdateCell(5, 0, FieldWeight, "1") {
		t.Error("UpdateCell out-of-range exercise index not refused")
	}
	if e.UpdateCell(0, 9, FieldReps, "1") {
		t.Error("UpdateCell out-of-range set index not refused")
	}
}

// TestEditorSetCapAndFloor verifies the [1,5] bounds: adds refused at the
// cap, removals refused at the floor, numbering dense throughout.
func TestEditorSetCapAndFloor(t *testing.T) {
	e := testEditor()

	// Trim the default five sets down to one.
	for i := 0; i < 4; i++ {
		if !e.RemoveSet(0, 0) {
			t.Fatalf("RemoveSet %d refused above the floor", i)
		}
	}
	if got := len(singleExercise(t, e).Sets); got != 1 {
		t.Fatalf("sets = %d, want 1", got)
	}
	if e.RemoveSet(0, 0) {
		t.Error("RemoveSet below the floor not refused")
	}

	// Grow back to the cap.
	for i := 0; i < 4; i++ {
		if !e.AddSet(0) {
			t.Fatalf("AddSet %d refused below the cap", i)
		}
	}
	ex := singleExercise(t, e)
	if len(ex.Sets) != MaxSets {
		t.Fatalf("sets = %d, want %d", len(ex.Sets), MaxSets)
	}
	if e.AddSet(0) {
		t.Error("AddSet at the cap not refused")
	}
	for i, s := range ex.Sets {
		if s.SetNumber != i+1 {
			t.Errorf("set %d: number = %d, want %d", i, s.SetNumber, i+1)
		}
	}
}

// TestEditorCopySetBelow verifies duplication directly below the source set
// with dense renumbering, and refusal at the cap.
func TestEditorCopySetBelow(t *testing.T) {
	e := testEditor()
	for i := 0; i < 3; i++ {
		e.RemoveSet(0, 0)
	}
	e.UpdateCell(0, 0, FieldWeight, "60")
	e.UpdateCell(0, 0, FieldReps, "10")
	e.UpdateCell(0, 1, FieldWeight, "80")

	if !e.CopySetBelow(0, 0) {
		t.Fatal("CopySetBelow refused")
	}

	ex := singleExercise(t, e)
	if len(ex.Sets) != 3 {
		t.Fatalf("sets = %d, want 3", len(ex.Sets))
	}
	if ex.Sets[1].WeightKg != "60" || ex.Sets[1].Reps != "10" {
		t.Errorf("copied set = %q/%q, want 60/10", ex.Sets[1].WeightKg, ex.Sets[1].Reps)
	}
	if ex.Sets[2].WeightKg != "80" {
		t.Errorf("tail set weight = %q, want 80", ex.Sets[2].WeightKg)
	}
	for i, s := range ex.Sets {
		if s.SetNumber != i+1 {
			t.Errorf("set %d: number = %d, want %d", i, s.SetNumber, i+1)
		}
	}

	e.CopySetBelow(0, 0)
	e.CopySetBelow(0, 0)
	if e.CopySetBelow(0, 0) {
		t.Error("CopySetBelow at the cap not refused")
	}
}

// TestEditorCopyLastRecord verifies that the previous record's sets replace
// the current ones, with old set IDs cleared.
func TestEditorCopyLastRecord(t *testing.T) {
	e := testEditor()
	last := models.ExerciseRow{
		ID:   ptr(int64(10)),
		Name: "ベンチプレス",
		Sets: []models.SetRow{
			{ID: ptr(int64(100)), SetNumber: 1, WeightKg: "60", Reps: "10"},
			{ID: ptr(int64(101)), SetNumber: 2, WeightKg: "62.5", Reps: "8"},
		},
	}

	if !e.CopyLastRecord(0, last) {
		t.Fatal("CopyLastRecord refused")
	}

	ex := singleExercise(t, e)
	if len(ex.Sets) != 2 {
		t.Fatalf("sets = %d, want 2", len(ex.Sets))
	}
	for i, s := range ex.Sets {
		if s.ID != nil {
			t.Errorf("set %d: id = %v, want nil (belongs to the old record)", i, *s.ID)
		}
		if s.SetNumber != i+1 {
			t.Errorf("set %d: number = %d, want %d", i, s.SetNumber, i+1)
		}
	}
	if ex.Sets[1].WeightKg != "62.5" {
		t.Errorf("set 2 weight = %q, want 62.5", ex.Sets[1].WeightKg)
	}

	if e.CopyLastRecord(0, models.ExerciseRow{}) {
		t.Error("CopyLastRecord with no previous sets not refused")
	}
}

// TestEditorChangeExerciseName verifies catalog resolution: a match adopts
// the catalog ID and part, unmatched text stays pending with a nil ID.
func TestEditorChangeExerciseName(t *testing.T) {
	e := testEditor()

	if !e.ChangeExerciseName(0, "ベンチプレス") {
		t.Fatal("ChangeExerciseName refused")
	}
	ex := singleExercise(t, e)
	if ex.ID == nil || *ex.ID != 10 {
		t.Errorf("id = %v, want 10 (catalog match)", ex.ID)
	}
	if ex.WorkoutPartID == nil || *ex.WorkoutPartID != 1 {
		t.Errorf("part = %v, want 1", ex.WorkoutPartID)
	}

	if !e.ChangeExerciseName(0, "インクラインプレス") {
		t.Fatal("ChangeExerciseName refused")
	}
	ex = singleExercise(t, e)
	if ex.ID != nil {
		t.Errorf("id = %v, want nil (pending new exercise)", *ex.ID)
	}
	if ex.Name != "インクラインプレス" {
		t.Errorf("name = %q, want the typed text", ex.Name)
	}
	if ex.WorkoutPartID == nil || *ex.WorkoutPartID != 1 {
		t.Errorf("part = %v, want selected part 1", ex.WorkoutPartID)
	}
}

// TestEditorPartSwitchKeepsOtherPartEdits verifies the filter/recombine
// lens end to end: edits in one part survive switching to another.
func TestEditorPartSwitchKeepsOtherPartEdits(t *testing.T) {
	e := testEditor()
	e.ChangeExerciseName(0, "ベンチプレス")
	e.UpdateCell(0, 0, FieldWeight, "60")

	e.SelectPart(2)
	e.ChangeExerciseName(0, "スクワット")
	e.UpdateCell(0, 0, FieldWeight, "100")

	if got := len(e.Form.Exercises); got != 2 {
		t.Fatalf("form exercises = %d, want 2", got)
	}

	e.SelectPart(1)
	ex := singleExercise(t, e)
	if ex.Name != "ベンチプレス" || ex.Sets[0].WeightKg != "60" {
		t.Errorf("part 1 edits lost: name=%q weight=%q", ex.Name, ex.Sets[0].WeightKg)
	}
}
