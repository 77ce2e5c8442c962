package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ariefcatur/demo-backends/internal/products"
)

type ProductsHandler struct {
	Repo *products.Repo
}

func (h *ProductsHandler) Register(r chi.Router) {
	r.Get("/products", h.listProducts)
	r.Get("/products/{id}", h.getProduct)
	r.Get("/products/category/{category}", h.productsByCategory)
}

func (h *ProductsHandler) Snapshot() (any, int) {
	all := h.Repo.List()
	return all, len(all)
}

func (h *ProductsHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Repo.List())
}

func (h *ProductsHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, fits, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	if !fits {
		writeDetail(w, http.StatusNotFound, "Product not found")
		return
	}
	p, err := h.Repo.Get(id)
	if err != nil {
		writeLookupError(w, err, "Product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductsHandler) productsByCategory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Repo.ByCategory(chi.URLParam(r, "category")))
}
