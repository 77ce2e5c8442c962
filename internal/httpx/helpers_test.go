package httpx

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/ariefcatur/demo-backends/internal/events"
)

type recordingPublisher struct {
	mu  sync.Mutex
	evs []events.Envelope
}

func (p *recordingPublisher) Publish(ev events.Envelope) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.evs = append(p.evs, ev)
}

func (p *recordingPublisher) published() []events.Envelope {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Envelope, len(p.evs))
	copy(out, p.evs)
	return out
}

func newTestRouter(t *testing.T, service string, res Resource, pub events.Publisher) *chi.Mux {
	t.Helper()
	return NewServiceRouter(Options{
		Service:       service,
		Version:       "1.0.0",
		Log:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		Publisher:     pub,
		WSIdleTimeout: 2 * time.Second,
	}, res)
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

func newRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func itoa(n int) string { return strconv.Itoa(n) }
