// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/pollsite/cliparse"
	"github.com/danielhkuo/pollsite/handlers"
	"github.com/danielhkuo/pollsite/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	questionHandler := handlers.NewQuestionHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public poll pages
	mux.HandleFunc("GET /{$}", middleware.WithLogging(questionHandler.Index))
	mux.HandleFunc("GET /{id}/{$}", middleware.WithLogging(questionHandler.Detail))
	mux.HandleFunc("GET /{id}/results/{$}", middleware.WithLogging(questionHandler.Results))
	mux.HandleFunc("POST /{id}/vote/{$}", middleware.WithLogging(questionHandler.Vote))

	return mux
}
