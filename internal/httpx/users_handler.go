package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ariefcatur/demo-backends/internal/users"
)

type UsersHandler struct {
	Repo *users.Repo
}

func (h *UsersHandler) Register(r chi.Router) {
	r.Get("/users", h.listUsers)
	r.Get("/users/{id}", h.getUser)
	r.Get("/users/role/{role}", h.usersByRole)
}

func (h *UsersHandler) Snapshot() (any, int) {
	all := h.Repo.List()
	return all, len(all)
}

func (h *UsersHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Repo.List())
}

func (h *UsersHandler) getUser(w http.ResponseWriter, r *http.Request) {
	id, fits, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	if !fits {
		writeDetail(w, http.StatusNotFound, "User not found")
		return
	}
	u, err := h.Repo.Get(id)
	if err != nil {
		writeLookupError(w, err, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UsersHandler) usersByRole(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Repo.ByRole(chi.URLParam(r, "role")))
}
