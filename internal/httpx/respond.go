package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ariefcatur/demo-backends/internal/dataset"
)

// errorBody is the only error shape the services return.
type errorBody struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, errorBody{Detail: detail})
}

// intParam parses an integer path parameter and answers 422 itself when it
// is not one, before any store is touched. A well-formed integer too large
// for int comes back with fits=false; it cannot match any record.
func intParam(w http.ResponseWriter, r *http.Request, name string) (n int, fits, ok bool) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	switch {
	case err == nil:
		return v, true, true
	case errors.Is(err, strconv.ErrRange):
		return 0, false, true
	default:
		writeDetail(w, http.StatusUnprocessableEntity, name+" must be an integer")
		return 0, false, false
	}
}

func writeLookupError(w http.ResponseWriter, err error, notFound string) {
	if errors.Is(err, dataset.ErrNotFound) {
		writeDetail(w, http.StatusNotFound, notFound)
		return
	}
	writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
}
