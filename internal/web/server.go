// Package web exposes the rewrite operation over HTTP as a small JSON API.
package web

import (
	"net/http"

	"github.com/ehrlich-b/cubefold/internal/logging"
	"github.com/gorilla/mux"
)

type Server struct {
	router *mux.Router
}

func NewServer() *Server {
	s := &Server{
		router: mux.NewRouter(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/rewrite", s.handleRewrite).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
}

func (s *Server) Start(addr string) error {
	logging.Log.Info().Str("addr", addr).Msg("web: listening")
	return http.ListenAndServe(addr, s.router)
}
