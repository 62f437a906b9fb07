package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/claude/gogym/internal/dates"
	"github.com/claude/gogym/internal/models"
	"github.com/claude/gogym/internal/upstream"
	"github.com/claude/gogym/internal/workout"
)

// handleGetRecord returns the workout record for ?date=yyyy-MM-dd, or an
// empty form when nothing is recorded yet. Unparseable dates fall back to
// today rather than erroring.
func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	token, _, ok := s.accessToken(w, r)
	if !ok {
		return
	}
	day, err := dates.ParseDay(r.URL.Query().Get("date"))
	if err != nil {
		day = dates.Today(time.Now())
	}
	record, err := s.api.GetWorkoutRecord(r.Context(), token, day)
	if err != nil {
		writeError(w, upstreamStatus(err), upstream.UserMessage(err))
		return
	}
	isUpdate := record != nil
	if record == nil {
		form := workout.NewEmptyForm(day, nil)
		record = &form
	}
	writeResult(w, http.StatusOK, map[string]any{
		"record":    record,
		"is_update": isUpdate,
	})
}

func (s *Server) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	token, sess, ok := s.accessToken(w, r)
	if !ok {
		return
	}
	var form models.WorkoutForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, upstream.MsgSaveFailed)
		return
	}
	sub := workout.NormalizeForSubmit(form)
	saved, err := s.api.CreateWorkoutRecord(r.Context(), token, sub)
	if err != nil {
		s.log.Error("create workout record failed", "error", err)
		writeError(w, upstreamStatus(err), upstream.MsgSaveFailed)
		return
	}
	s.afterSave(r, sess.ID)
	writeResult(w, http.StatusCreated, saved)
}

func (s *Server) handleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	token, sess, ok := s.accessToken(w, r)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, upstream.MsgSaveFailed)
		return
	}
	var form models.WorkoutForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, upstream.MsgSaveFailed)
		return
	}
	sub := workout.NormalizeForSubmit(form)
	saved, err := s.api.UpdateWorkoutRecord(r.Context(), token, id, sub)
	if err != nil {
		s.log.Error("update workout record failed", "id", id, "error", err)
		writeError(w, upstreamStatus(err), upstream.MsgSaveFailed)
		return
	}
	s.afterSave(r, sess.ID)
	writeResult(w, http.StatusOK, saved)
}

func (s *Server) handleParts(w http.ResponseWriter, r *http.Request) {
	token, _, ok := s.accessToken(w, r)
	if !ok {
		return
	}
	parts, err := s.api.GetWorkoutParts(r.Context(), token)
	if err != nil {
		writeError(w, upstreamStatus(err), upstream.UserMessage(err))
		return
	}
	writeResult(w, http.StatusOK, parts)
}

func (s *Server) handleSeedParts(w http.ResponseWriter, r *http.Request) {
	token, _, ok := s.accessToken(w, r)
	if !ok {
		return
	}
	parts, err := s.api.SeedWorkoutParts(r.Context(), token)
	if err != nil {
		writeError(w, upstreamStatus(err), upstream.UserMessage(err))
		return
	}
	writeResult(w, http.StatusOK, parts)
}

func (s *Server) handleUpsertExercises(w http.ResponseWriter, r *http.Request) {
	token, _, ok := s.accessToken(w, r)
	if !ok {
		return
	}
	var rows []models.CatalogUpsert
	if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
		writeError(w, http.StatusBadRequest, upstream.MsgSaveFailed)
		return
	}
	saved, err := s.api.UpsertWorkoutExercises(r.Context(), token, rows)
	if err != nil {
		writeError(w, upstreamStatus(err), upstream.MsgSaveFailed)
		return
	}
	writeResult(w, http.StatusOK, saved)
}

func (s *Server) handleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	token, _, ok := s.accessToken(w, r)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, upstream.MsgSaveFailed)
		return
	}
	if err := s.api.DeleteWorkoutExercise(r.Context(), token, id); err != nil {
		writeError(w, upstreamStatus(err), upstream.MsgSaveFailed)
		return
	}
	writeResult(w, http.StatusOK, nil)
}

// handleLastRecord returns the most recent saved sets for an exercise,
// serving from the per-session cache when the exercise was already looked
// up during this session.
func (s *Server) handleLastRecord(w http.ResponseWriter, r *http.Request) {
	token, sess, ok := s.accessToken(w, r)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, upstream.MsgNetworkError)
		return
	}
	cached, err := s.store.CachedLastRecord(r.Context(), sess.ID, id)
	if err != nil {
		s.log.Error("last record cache read failed", "error", err)
	}
	if cached != nil {
		writeResult(w, http.StatusOK, cached)
		return
	}
	last, err := s.api.GetLastExerciseRecord(r.Context(), token, id)
	if err != nil {
		writeError(w, upstreamStatus(err), upstream.UserMessage(err))
		return
	}
	if last != nil {
		if err := s.store.CacheLastRecord(r.Context(), sess.ID, id, *last); err != nil {
			s.log.Error("last record cache write failed", "error", err)
		}
	}
	writeResult(w, http.StatusOK, last)
}

func (s *Server) flashSaved(r *http.Request, sessionID string) {
	if err := s.store.SetFlash(r.Context(), sessionID, "success", upstream.MsgSaved); err != nil {
		s.log.Error("flash write failed", "error", err)
	}
}

// afterSave queues the saved flash and drops the session's last-record
// cache, which the save just made stale.
func (s *Server) afterSave(r *http.Request, sessionID string) {
	s.flashSaved(r, sessionID)
	if err := s.store.ClearLastRecords(r.Context(), sessionID); err != nil {
		s.log.Error("last record cache clear failed", "error", err)
	}
}
