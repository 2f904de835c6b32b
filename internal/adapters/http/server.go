// Package http exposes the Docket engine as a JSON API. Projects are
// created from declarative specs, kept in a ProjectStore between
// requests, and processed on demand.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/docket-run/docket"
	"github.com/docket-run/docket/pkg/domain"
	"github.com/docket-run/docket/pkg/manifest"
	"github.com/docket-run/docket/pkg/ports"
)

// Server wires the engine and a project store behind the JSON API.
type Server struct {
	engine *docket.Engine
	store  ports.ProjectStore
	logger *slog.Logger
}

// NewHandler creates the HTTP handler. The metrics handler is mounted on
// /metrics when non-nil (the serve command passes promhttp).
func NewHandler(engine *docket.Engine, store ports.ProjectStore, logger *slog.Logger, metrics http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{engine: engine, store: store, logger: logger}

	r := chi.NewRouter()
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	if metrics != nil {
		r.Handle("/metrics", metrics)
	}

	r.Route("/projects", func(r chi.Router) {
		r.Post("/", s.CreateProject)
		r.Get("/", s.ListProjects)
		r.Get("/{name}", s.GetProject)
		r.Delete("/{name}", s.DeleteProject)
		r.Post("/{name}/process", s.ProcessProject)
	})

	return r
}

// CreateProject handles POST /projects.
func (s *Server) CreateProject(w http.ResponseWriter, r *http.Request) {
	var spec manifest.ProjectSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("CreateProject: invalid request body", "error", err)
		return
	}

	if spec.Name == "" {
		http.Error(w, "Project name is required", http.StatusBadRequest)
		return
	}

	// The spec must build before it is accepted; this is the only place
	// action parameters get validated on the serve surface.
	p, err := spec.Build()
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid project spec: %v", err), http.StatusBadRequest)
		s.logger.Warn("CreateProject: invalid spec", "project", spec.Name, "error", err)
		return
	}

	if _, err := s.store.Load(r.Context(), spec.Name); err == nil {
		http.Error(w, fmt.Sprintf("Project %q already exists", spec.Name), http.StatusConflict)
		return
	} else if !errors.Is(err, domain.ErrProjectNotFound) {
		s.internalError(w, "CreateProject: store load failed", err)
		return
	}

	if err := s.store.Save(r.Context(), spec.Name, &spec); err != nil {
		s.internalError(w, "CreateProject: store save failed", err)
		return
	}

	s.logger.Info("project created", "project", spec.Name, "actions", len(spec.Actions))
	s.writeJSON(w, http.StatusCreated, manifest.Snapshot(p))
}

// ListProjects handles GET /projects.
func (s *Server) ListProjects(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		s.internalError(w, "ListProjects: store list failed", err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"projects": ids})
}

// GetProject handles GET /projects/{name}.
func (s *Server) GetProject(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	spec, err := s.store.Load(r.Context(), name)
	if errors.Is(err, domain.ErrProjectNotFound) {
		http.Error(w, fmt.Sprintf("Project %q not found", name), http.StatusNotFound)
		return
	}
	if err != nil {
		s.internalError(w, "GetProject: store load failed", err)
		return
	}
	s.writeJSON(w, http.StatusOK, spec)
}

// DeleteProject handles DELETE /projects/{name}.
func (s *Server) DeleteProject(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := s.store.Delete(r.Context(), name); err != nil {
		s.internalError(w, "DeleteProject: store delete failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ProcessProject handles POST /projects/{name}/process. The project is
// rebuilt from its stored spec, processed, and the mutated scalars are
// written back. Processing again re-applies deltas and re-evaluates
// gates, matching the library semantics.
func (s *Server) ProcessProject(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	spec, err := s.store.Load(r.Context(), name)
	if errors.Is(err, domain.ErrProjectNotFound) {
		http.Error(w, fmt.Sprintf("Project %q not found", name), http.StatusNotFound)
		return
	}
	if err != nil {
		s.internalError(w, "ProcessProject: store load failed", err)
		return
	}

	p, err := spec.Build()
	if err != nil {
		// A stored spec that no longer builds is a server-side problem.
		s.internalError(w, "ProcessProject: stored spec failed to build", err)
		return
	}

	s.engine.Process(r.Context(), p)
	spec.ApplyState(p)

	if err := s.store.Save(r.Context(), name, spec); err != nil {
		s.internalError(w, "ProcessProject: store save failed", err)
		return
	}

	s.logger.Info("project processed", "project", name,
		"funded", p.Funded(), "budget", p.Budget(), "completed", p.Completed())
	s.writeJSON(w, http.StatusOK, manifest.Snapshot(p))
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "docket-http",
		"version": docket.Version,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

func (s *Server) internalError(w http.ResponseWriter, msg string, err error) {
	http.Error(w, "Internal server error", http.StatusInternalServerError)
	s.logger.Error(msg, "error", err)
}
