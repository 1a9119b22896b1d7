// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/olympiad/cliparse"
	"github.com/danielhkuo/olympiad/handlers"
	"github.com/danielhkuo/olympiad/metrics"
	"github.com/danielhkuo/olympiad/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()
	m := metrics.New()

	// Initialize handlers
	registrationHandler := handlers.NewRegistrationHandler(db, cfg)
	taskHandler := handlers.NewTaskHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg, m)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.Handle("GET /metrics", m.Handler())

	// Participant registration
	register := middleware.NewEndpoint("Content-Type").
		Handle(http.MethodPost, middleware.WithLogging(registrationHandler.Register))
	mux.Handle("/register", middleware.WithMetrics(m, "/register", register))

	// Task listing (answers are never included)
	tasks := middleware.NewEndpoint("Content-Type").
		Handle(http.MethodGet, middleware.WithLogging(taskHandler.ListTasks))
	mux.Handle("/tasks", middleware.WithMetrics(m, "/tasks", tasks))

	// Result submission and retrieval
	results := middleware.NewEndpoint("Content-Type", handlers.ParticipantIDHeader).
		Handle(http.MethodPost, middleware.WithLogging(resultsHandler.SubmitResults)).
		Handle(http.MethodGet, middleware.WithLogging(resultsHandler.GetResults))
	mux.Handle("/results", middleware.WithMetrics(m, "/results", results))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("olympiad API v1"))
	})

	return middleware.Recover(middleware.CORS(mux))
}
