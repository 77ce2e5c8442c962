package httpx

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ariefcatur/demo-backends/internal/orders"
	"github.com/ariefcatur/demo-backends/internal/products"
	"github.com/ariefcatur/demo-backends/internal/users"
)

func allServices() map[string]Resource {
	return map[string]Resource{
		"users":    &UsersHandler{Repo: users.MustSeedRepo()},
		"products": &ProductsHandler{Repo: products.MustSeedRepo()},
		"orders":   &OrdersHandler{Repo: orders.MustSeedRepo()},
	}
}

func TestIdentityAndHealth(t *testing.T) {
	for name, res := range allServices() {
		t.Run(name, func(t *testing.T) {
			r := newTestRouter(t, name, res, nil)

			rr := get(t, r, "/")
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"service":"`+name+`","status":"running","version":"1.0.0"}`, rr.Body.String())

			rr = get(t, r, "/health")
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, `{"status":"healthy","service":"`+name+`"}`, rr.Body.String())
		})
	}
}

func TestUnknownRouteAndMethod(t *testing.T) {
	r := newTestRouter(t, "users", &UsersHandler{Repo: users.MustSeedRepo()}, nil)

	rr := get(t, r, "/nope")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"detail":"Not Found"}`, rr.Body.String())

	req := newRequest(http.MethodPost, "/users")
	rr = serve(r, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.JSONEq(t, `{"detail":"Method Not Allowed"}`, rr.Body.String())
}
