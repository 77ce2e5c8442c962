package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ariefcatur/demo-backends/internal/orders"
)

type OrdersHandler struct {
	Repo *orders.Repo
}

// Register keeps the by-user and by-status filters as two separate routes.
func (h *OrdersHandler) Register(r chi.Router) {
	r.Get("/orders", h.listOrders)
	r.Get("/orders/{id}", h.getOrder)
	r.Get("/orders/user/{user_id}", h.ordersByUser)
	r.Get("/orders/status/{status}", h.ordersByStatus)
}

func (h *OrdersHandler) Snapshot() (any, int) {
	all := h.Repo.List()
	return all, len(all)
}

func (h *OrdersHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Repo.List())
}

func (h *OrdersHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, fits, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	if !fits {
		writeDetail(w, http.StatusNotFound, "Order not found")
		return
	}
	o, err := h.Repo.Get(id)
	if err != nil {
		writeLookupError(w, err, "Order not found")
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *OrdersHandler) ordersByUser(w http.ResponseWriter, r *http.Request) {
	userID, fits, ok := intParam(w, r, "user_id")
	if !ok {
		return
	}
	if !fits {
		writeJSON(w, http.StatusOK, []orders.Order{})
		return
	}
	writeJSON(w, http.StatusOK, h.Repo.ByUser(userID))
}

func (h *OrdersHandler) ordersByStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Repo.ByStatus(chi.URLParam(r, "status")))
}
