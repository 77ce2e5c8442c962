package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type identity struct {
	Service string `json:"service"`
	Status  string `json:"status"`
	Version string `json:"version"`
}

type health struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Meta serves GET / and GET /health.
type Meta struct {
	Service string
	Version string
}

func (m Meta) Register(r chi.Router) {
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, identity{Service: m.Service, Status: "running", Version: m.Version})
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, health{Status: "healthy", Service: m.Service})
	})
}
