package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"weather-widget/form"
	"weather-widget/page"
	"weather-widget/theme"

	"github.com/gorilla/mux"
)

// Server serves the widget page and its JSON API
type Server struct {
	doc    *page.Memory
	orch   *form.Orchestrator
	theme  theme.Theme
	router *mux.Router
	server *http.Server

	mu    sync.RWMutex
	input string
}

// searchRequest is the JSON body of submit and keystroke calls
type searchRequest struct {
	Location string `json:"location"`
}

// NewServer creates a new API server. The theme is the one selected at
// startup and is reported as-is for the whole session.
func NewServer(doc *page.Memory, orch *form.Orchestrator, th theme.Theme, port int) *Server {
	router := mux.NewRouter()

	s := &Server{
		doc:    doc,
		orch:   orch,
		theme:  th,
		router: router,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}

	router.Use(RequestID, Logging)

	// Page
	router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	router.HandleFunc("/", s.handleFormSubmit).Methods(http.MethodPost)

	// JSON API
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/submit", s.handleSubmit).Methods(http.MethodPost)
	api.HandleFunc("/keystroke", s.handleKeystroke).Methods(http.MethodPost)
	api.HandleFunc("/state", s.handleState).Methods(http.MethodGet)
	api.HandleFunc("/health", s.handleHealthCheck).Methods(http.MethodGet)

	return s
}

// Router returns the HTTP handler
func (s *Server) Router() http.Handler {
	return s.router
}

// Start begins the API server
func (s *Server) Start() error {
	log.Printf("Starting widget server on %s", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown stops accepting requests and waits for active ones
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// SetInput records the current value of the search field
func (s *Server) SetInput(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = value
}

func (s *Server) currentInput() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.input
}

// handleIndex renders the page from the current document state
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	view := newPageView(s.doc.Snapshot(), s.currentInput())
	if err := pageTemplate.Execute(w, view); err != nil {
		log.Printf("Error rendering page: %v", err)
	}
}

// handleFormSubmit handles the plain HTML form post
func (s *Server) handleFormSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	value := r.FormValue("location")
	s.SetInput(value)
	s.orch.Submit(r.Context(), value)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleSubmit runs a submission from a JSON body
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSearch(w, r)
	if !ok {
		return
	}
	s.SetInput(req.Location)
	result := s.orch.Submit(r.Context(), req.Location)
	s.writeResult(w, result)
}

// handleKeystroke reports an edit of the search field
func (s *Server) handleKeystroke(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSearch(w, r)
	if !ok {
		return
	}
	s.SetInput(req.Location)
	result := s.orch.Keystroke(r.Context(), req.Location)
	s.writeResult(w, result)
}

// handleState returns the page and form state
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"state":     s.orch.State(),
		"armed":     s.orch.Armed(),
		"theme":     s.theme,
		"input":     s.currentInput(),
		"page":      s.doc.Snapshot(),
		"timestamp": time.Now(),
	})
}

// handleHealthCheck provides a simple health check endpoint
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) writeResult(w http.ResponseWriter, result form.Result) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"result": result,
		"state":  s.orch.State(),
		"page":   s.doc.Snapshot(),
	})
}

func decodeSearch(w http.ResponseWriter, r *http.Request) (searchRequest, bool) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("Invalid JSON body: %v", err),
		})
		return req, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
