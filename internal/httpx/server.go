package httpx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ariefcatur/demo-backends/internal/events"
)

const requestTimeout = 15 * time.Second

type Options struct {
	Service       string
	Version       string
	Log           *slog.Logger
	Publisher     events.Publisher
	WSIdleTimeout time.Duration
}

// Resource is the entity-specific half of a service: its REST routes and
// the payload sent over /ws.
type Resource interface {
	Register(r chi.Router)
	Snapshot() (data any, records int)
}

func NewRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})
	return r
}

// NewServiceRouter wires identity, health, the resource routes and /ws.
// The websocket route sits outside the timeout group since its connection
// outlives the request deadline.
func NewServiceRouter(opt Options, res Resource) *chi.Mux {
	if opt.Publisher == nil {
		opt.Publisher = events.Discard{}
	}
	if opt.Log == nil {
		opt.Log = slog.Default()
	}
	r := NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))
		Meta{Service: opt.Service, Version: opt.Version}.Register(r)
		res.Register(r)
	})
	ws := &SnapshotHandler{
		Service:     opt.Service,
		Load:        res.Snapshot,
		Publisher:   opt.Publisher,
		Log:         opt.Log,
		IdleTimeout: opt.WSIdleTimeout,
	}
	r.Get("/ws", ws.serve)
	return r
}
