// Package api exposes a small read-only inspection endpoint over the
// recorded turn log.
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"study-buddy/internal/analytics"
	"study-buddy/internal/storage"
)

type Server struct {
	recorder storage.Recorder
	http     *http.Server
}

func NewServer(addr string, recorder storage.Recorder) *Server {
	s := &Server{recorder: recorder}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/health"))
	r.Get("/stats", s.handleStats)

	s.http = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// Start begins serving in the background; the bot keeps running if the
// listener fails.
func (s *Server) Start() {
	go func() {
		log.Printf("stats endpoint listening on %s", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("stats endpoint stopped: %v", err)
		}
	}()
}

func (s *Server) Shutdown() error {
	return s.http.Close()
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	events, err := s.recorder.LoadTurns()
	if err != nil {
		http.Error(w, "failed to load turns", http.StatusInternalServerError)
		return
	}
	stats := analytics.AnalyzeDailyLogs(events, time.Now().UTC())
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		log.Printf("failed to encode stats: %v", err)
	}
}
