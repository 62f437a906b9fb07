package server

import (
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/claude/gogym/internal/auth"
	"github.com/claude/gogym/internal/session"
	"github.com/claude/gogym/internal/upstream"
	"github.com/go-chi/chi/v5"
)

// CookieOptions controls the session cookie the BFF issues.
type CookieOptions struct {
	Name   string
	Secure bool
	MaxAge int
}

// Server holds dependencies for the BFF HTTP handlers.
type Server struct {
	store   *session.Store
	api     *upstream.Client
	auth    *auth.Manager
	cookie  CookieOptions
	origins []string
	log     *slog.Logger
	router  chi.Router
}

// New creates a new Server with all routes configured. allowedOrigins are
// the frontend origins granted credentialed CORS; empty means same-origin
// only.
func New(store *session.Store, api *upstream.Client, authMgr *auth.Manager, cookie CookieOptions, allowedOrigins []string, log *slog.Logger) *Server {
	s := &Server{
		store:   store,
		api:     api,
		auth:    authMgr,
		cookie:  cookie,
		origins: allowedOrigins,
		log:     log,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS(s.origins))

	s.router.Get("/api/healthz", s.handleHealthz)

	s.router.Route("/api", func(r chi.Router) {
		r.Use(s.withSession)

		// Public surface
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/signup", s.handleSignup)
		r.Get("/auth/session", s.handleSession)
		r.Post("/contact", s.handleContact)
		r.Get("/gyms", s.handleListGyms)
		r.Get("/gyms/recommended", s.handleRecommendedGyms)
		r.Get("/gyms/search", s.handleSearchGyms)
		r.Get("/gyms/{id}", s.handleGetGym)
		r.Get("/gyms/{id}/reviews", s.handleGetGymReviews)

		// Logged-in surface
		r.Group(func(pr chi.Router) {
			pr.Use(s.requireSession)
			pr.Post("/auth/logout", s.handleLogout)
			pr.Get("/flash", s.handleFlash)
			pr.Post("/gyms/{id}/reviews", s.handleCreateGymReview)

			pr.Route("/workouts", func(wr chi.Router) {
				wr.Get("/records", s.handleGetRecord)
				wr.Post("/records", s.handleCreateRecord)
				wr.Put("/records/{id}", s.handleUpdateRecord)
				wr.Get("/parts", s.handleParts)
				wr.Post("/seed", s.handleSeedParts)
				wr.Post("/exercises", s.handleUpsertExercises)
				wr.Delete("/exercises/{id}", s.handleDeleteExercise)
				wr.Get("/exercises/{id}/last", s.handleLastRecord)
			})
		})
	})
}

// SetFrontend mounts the built frontend filesystem.
// Unmatched routes serve index.html for client-side routing.
func (s *Server) SetFrontend(webFS fs.FS) {
	fileServer := http.FileServerFS(webFS)

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		// Try to serve the exact file first
		f, err := webFS.Open(r.URL.Path[1:]) // strip leading /
		if err == nil {
			f.Close()
			fileServer.ServeHTTP(w, r)
			return
		}
		// Fallback to index.html for SPA routing
		r.URL.Path = "/"
		fileServer.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// result is the uniform shape every BFF operation returns: the frontend
// branches on success and never sees a thrown error.
type result struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeResult(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, result{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, result{Success: false, Error: msg})
}

// upstreamStatus picks the response status for a failed upstream call:
// the upstream status when it was a clean API error, 502 otherwise.
func upstreamStatus(err error) int {
	if apiErr, ok := err.(*upstream.APIError); ok {
		return apiErr.Status
	}
	return http.StatusBadGateway
}
