// Package web exposes the solver over HTTP for a browser-based client.
package web

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ehrlich-b/bigoptcube/internal/solver"
)

// Server wraps a mux.Router around a loaded Solver. Solver itself is
// safe for concurrent use: Solve builds a fresh search state per call
// and shares only the read-only tables across requests.
type Server struct {
	router *mux.Router
	solver *solver.Solver
}

func NewServer(s *solver.Solver) *Server {
	srv := &Server{
		router: mux.NewRouter(),
		solver: s,
	}
	srv.setupRoutes()
	return srv
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	s.router.HandleFunc("/", s.handleIndex).Methods("GET")
}

func (s *Server) Start(addr string) error {
	log.Printf("server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
