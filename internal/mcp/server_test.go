package mcp

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/gogym/internal/dates"
	"github.com/claude/gogym/internal/models"
)

// fakeSource is an in-memory DataSource for handler tests.
type fakeSource struct {
	record *models.WorkoutForm
	last   *models.ExerciseRow
	parts  []models.WorkoutPart
	gyms   []models.Gym
	err    error
}

func (f *fakeSource) GetWorkoutRecord(_ context.Context, _ dates.Day) (*models.WorkoutForm, error) {
	return f.record, f.err
}

func (f *fakeSource) GetLastExerciseRecord(_ context.Context, _ int64) (*models.ExerciseRow, error) {
	return f.last, f.err
}

func (f *fakeSource) GetWorkoutParts(_ context.Context) ([]models.WorkoutPart, error) {
	return f.parts, f.err
}

func (f *fakeSource) SearchGyms(_ context.Context, _ string) ([]models.Gym, error) {
	return f.gyms, f.err
}

func (f *fakeSource) RecommendedGyms(_ context.Context) ([]models.Gym, error) {
	return f.gyms, f.err
}

func newTestHandlers(ds DataSource) *handlers {
	return &handlers{ds: ds, log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func toolRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := mcp.AsTextContent(res.Content[0])
	if !ok {
		t.Fatalf("content is %T, want text", res.Content[0])
	}
	return text.Text
}

// TestDayOrToday verifies date parsing and the today default.
func TestDayOrToday(t *testing.T) {
	day, err := dayOrToday("2026-03-09")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day.String() != "2026-03-09" {
		t.Errorf("day = %s, want 2026-03-09", day)
	}

	day, err = dayOrToday("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := dates.Today(time.Now()); day != want {
		t.Errorf("empty date = %s, want today %s", day, want)
	}

	if _, err := dayOrToday("03/09/2026"); err == nil {
		t.Error("expected error for slash date")
	}
}

// TestGetWorkoutRecordTool verifies the recorded day is returned as JSON.
func TestGetWorkoutRecordTool(t *testing.T) {
	id := int64(42)
	h := newTestHandlers(&fakeSource{record: &models.WorkoutForm{ID: &id, PerformedDate: "2026-03-09"}})

	res, err := h.getWorkoutRecord(context.Background(), toolRequest(map[string]any{"date": "2026-03-09"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("tool returned error: %s", resultText(t, res))
	}
	if got := resultText(t, res); !strings.Contains(got, `"performed_date":"2026-03-09"`) {
		t.Errorf("result = %s, want performed_date present", got)
	}
}

// TestGetWorkoutRecordToolEmptyDay verifies an unrecorded day yields a
// human-readable message rather than an error.
func TestGetWorkoutRecordToolEmptyDay(t *testing.T) {
	h := newTestHandlers(&fakeSource{})

	res, err := h.getWorkoutRecord(context.Background(), toolRequest(map[string]any{"date": "2026-03-10"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatal("empty day reported as tool error")
	}
	if got := resultText(t, res); !strings.Contains(got, "2026-03-10") {
		t.Errorf("result = %s, want the date mentioned", got)
	}
}

// TestGetWorkoutRecordToolBadDate verifies malformed dates become tool
// errors, not transport errors.
func TestGetWorkoutRecordToolBadDate(t *testing.T) {
	h := newTestHandlers(&fakeSource{})

	res, err := h.getWorkoutRecord(context.Background(), toolRequest(map[string]any{"date": "yesterday"}))
	if err != nil {
		t.Fatalf("unexpected transport error: %v", err)
	}
	if !res.IsError {
		t.Error("malformed date not reported as tool error")
	}
}

// TestGetLastExerciseRecordTool verifies the required ID and the
// no-history message.
func TestGetLastExerciseRecordTool(t *testing.T) {
	h := newTestHandlers(&fakeSource{last: &models.ExerciseRow{Name: "ベンチプレス"}})

	res, err := h.getLastExerciseRecord(context.Background(), toolRequest(map[string]any{"exercise_id": 3}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resultText(t, res); !strings.Contains(got, "ベンチプレス") {
		t.Errorf("result = %s, want exercise name", got)
	}

	res, _ = h.getLastExerciseRecord(context.Background(), toolRequest(nil))
	if !res.IsError {
		t.Error("missing exercise_id not reported as tool error")
	}

	h = newTestHandlers(&fakeSource{})
	res, _ = h.getLastExerciseRecord(context.Background(), toolRequest(map[string]any{"exercise_id": 3}))
	if res.IsError {
		t.Error("missing history reported as tool error")
	}
}

// TestSearchGymsTool verifies query requirement and upstream failure
// surfacing.
func TestSearchGymsTool(t *testing.T) {
	h := newTestHandlers(&fakeSource{gyms: []models.Gym{{ID: 1, Name: "Gym A"}}})

	res, err := h.searchGyms(context.Background(), toolRequest(map[string]any{"q": "A"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resultText(t, res); !strings.Contains(got, "Gym A") {
		t.Errorf("result = %s, want gym name", got)
	}

	res, _ = h.searchGyms(context.Background(), toolRequest(nil))
	if !res.IsError {
		t.Error("missing q not reported as tool error")
	}

	h = newTestHandlers(&fakeSource{err: errors.New("upstream down")})
	res, _ = h.searchGyms(context.Background(), toolRequest(map[string]any{"q": "A"}))
	if !res.IsError {
		t.Error("upstream failure not reported as tool error")
	}
}

// TestWorkoutPartsResource verifies the resource serializes parts as JSON.
func TestWorkoutPartsResource(t *testing.T) {
	h := newTestHandlers(&fakeSource{parts: []models.WorkoutPart{{ID: 1, Name: "胸"}}})

	var req mcp.ReadResourceRequest
	req.Params.URI = "gogym://workout_parts"
	contents, err := h.workoutPartsResource(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("len(contents) = %d, want 1", len(contents))
	}
	text, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("contents[0] is %T, want TextResourceContents", contents[0])
	}
	if !strings.Contains(text.Text, "胸") {
		t.Errorf("resource text = %s, want part name", text.Text)
	}
}
