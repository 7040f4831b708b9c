// Package server exposes the to-do service over HTTP. Routing is handled by
// gorilla/mux; handlers translate requests into service calls and service
// errors into JSON error payloads.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/eleven-am/tick/internal/logger"
	"github.com/eleven-am/tick/internal/model"
	"github.com/eleven-am/tick/internal/store"
)

const (
	welcomeMessage = "Welcome to your To-Do List App!"
	aboutMessage   = "tick is a minimal to-do list service backed by a single relational table."
	deletedMessage = "Todo item deleted successfully"
	notFoundDetail = "Item not found"
)

// TodoAPI is the service surface the server dispatches to.
type TodoAPI interface {
	Create(ctx context.Context, in model.CreateTodoInput) (*model.TodoItem, error)
	List(ctx context.Context) ([]model.TodoItem, error)
	Update(ctx context.Context, id int64, in model.UpdateTodoInput) (*model.TodoItem, error)
	Delete(ctx context.Context, id int64) error
}

// Server holds the handler dependencies.
type Server struct {
	api TodoAPI
	log *log.Logger
}

// New creates a Server dispatching to the given service.
func New(api TodoAPI) *Server {
	return &Server{
		api: api,
		log: logger.HTTP(),
	}
}

// Routes builds the router with all endpoints registered.
func (s *Server) Routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	r.HandleFunc("/about", s.handleAbout).Methods(http.MethodGet)
	r.HandleFunc("/todos/", s.handleCreate).Methods(http.MethodPost)
	r.HandleFunc("/todos/", s.handleList).Methods(http.MethodGet)
	r.HandleFunc("/todos/{todo_id}", s.handleUpdate).Methods(http.MethodPut)
	r.HandleFunc("/todos/{todo_id}", s.handleDelete).Methods(http.MethodDelete)

	return r
}

// Run serves HTTP on addr until ctx is cancelled, then shuts down gracefully
// within shutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	s.log.Info("listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": welcomeMessage})
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": aboutMessage})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var in model.CreateTodoInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if in.Content == "" {
		respondError(w, http.StatusBadRequest, "content is required")
		return
	}

	item, err := s.api.Create(r.Context(), in)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	items, err := s.api.List(r.Context())
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(w, r)
	if !ok {
		return
	}

	var in model.UpdateTodoInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := s.api.Update(r.Context(), id, in)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(w, r)
	if !ok {
		return
	}

	if err := s.api.Delete(r.Context(), id); err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": deletedMessage})
}

// todoID parses the {todo_id} path variable. On failure it writes a 400
// response and returns ok=false.
func todoID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := mux.Vars(r)["todo_id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid todo id")
		return 0, false
	}
	return id, true
}

func (s *Server) respondServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, notFoundDetail)
		return
	}
	s.log.Error("request failed", "err", err)
	respondError(w, http.StatusInternalServerError, "internal server error")
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.HTTP().Error("failed to encode response", "err", err)
	}
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}
