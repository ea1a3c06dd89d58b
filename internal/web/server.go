package web

import (
	"log"
	"net/http"

	"github.com/ehrlich-b/locky/internal/heuristic"
	"github.com/ehrlich-b/locky/internal/solver"
	"github.com/gorilla/mux"
)

// Server exposes the locky puzzle's scramble/solve operations over
// HTTP, backed by a single shared set of pattern-database tables (and
// the MultiStage solver built from them) set up once at startup and
// reused across every request.
type Server struct {
	router     *mux.Router
	tables     *heuristic.DefaultTables
	multiStage *solver.MultiStage
}

func NewServer() *Server {
	tables := heuristic.BuildDefaultTables()
	s := &Server{
		router:     mux.NewRouter(),
		tables:     tables,
		multiStage: solver.NewMultiStageFromTables(tables),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(requestIDMiddleware)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/scramble", s.handleScramble).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
}

func (s *Server) Start(addr string) error {
	log.Printf("locky server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
