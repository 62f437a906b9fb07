package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/claude/gogym/internal/models"
	"github.com/claude/gogym/internal/upstream"
)

func (s *Server) handleListGyms(w http.ResponseWriter, r *http.Request) {
	gyms, err := s.api.ListGyms(r.Context(), s.optionalToken(r))
	if err != nil {
		writeError(w, upstreamStatus(err), upstream.UserMessage(err))
		return
	}
	writeResult(w, http.StatusOK, gyms)
}

func (s *Server) handleRecommendedGyms(w http.ResponseWriter, r *http.Request) {
	gyms, err := s.api.RecommendedGyms(r.Context(), s.optionalToken(r))
	if err != nil {
		writeError(w, upstreamStatus(err), upstream.UserMessage(err))
		return
	}
	writeResult(w, http.StatusOK, gyms)
}

func (s *Server) handleSearchGyms(w http.ResponseWriter, r *http.Request) {
	gyms, err := s.api.SearchGyms(r.Context(), s.optionalToken(r), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, upstreamStatus(err), upstream.UserMessage(err))
		return
	}
	writeResult(w, http.StatusOK, gyms)
}

func (s *Server) handleGetGym(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, upstream.MsgNetworkError)
		return
	}
	gym, err := s.api.GetGym(r.Context(), s.optionalToken(r), id)
	if err != nil {
		writeError(w, upstreamStatus(err), upstream.UserMessage(err))
		return
	}
	writeResult(w, http.StatusOK, gym)
}

func (s *Server) handleGetGymReviews(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, upstream.MsgNetworkError)
		return
	}
	reviews, err := s.api.GetGymReviews(r.Context(), s.optionalToken(r), id)
	if err != nil {
		writeError(w, upstreamStatus(err), upstream.UserMessage(err))
		return
	}
	writeResult(w, http.StatusOK, reviews)
}

func (s *Server) handleCreateGymReview(w http.ResponseWriter, r *http.Request) {
	token, sess, ok := s.accessToken(w, r)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, upstream.MsgSaveFailed)
		return
	}
	var review models.NewGymReview
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		writeError(w, http.StatusBadRequest, upstream.MsgSaveFailed)
		return
	}
	saved, err := s.api.CreateGymReview(r.Context(), token, id, review)
	if err != nil {
		writeError(w, upstreamStatus(err), upstream.MsgSaveFailed)
		return
	}
	s.flashSaved(r, sess.ID)
	writeResult(w, http.StatusCreated, saved)
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var msg models.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeError(w, http.StatusBadRequest, upstream.MsgSaveFailed)
		return
	}
	if err := s.api.SendContact(r.Context(), msg); err != nil {
		writeError(w, upstreamStatus(err), upstream.MsgSaveFailed)
		return
	}
	writeResult(w, http.StatusOK, nil)
}
