package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rogerio-castellano/storefront-tracker/internal/credstore"
	api "github.com/rogerio-castellano/storefront-tracker/internal/http"
	handler "github.com/rogerio-castellano/storefront-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/storefront-tracker/internal/repo"
	"github.com/rogerio-castellano/storefront-tracker/internal/session"
	"github.com/rogerio-castellano/storefront-tracker/internal/tracker"
	"github.com/rogerio-castellano/storefront-tracker/internal/tracker/trackertest"
)

var (
	productRepo *repo.InMemoryProductRepository
	quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func init() {
	var err error
	productRepo, err = repo.NewSeededProductRepository()
	if err != nil {
		panic(err)
	}
}

type testEnv struct {
	router  http.Handler
	session *session.Session
	store   *credstore.MemoryStore
	service *trackertest.Server
}

// newTestEnv wires the router to a fresh session backed by a fake analysis
// service.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	service := trackertest.New()
	t.Cleanup(service.Close)

	store := credstore.NewMemoryStore()
	client := tracker.New(service.URL, tracker.WithRateLimit(0, 0), tracker.WithLogger(quietLogger))
	sess := session.New(client, store, session.WithLogger(quietLogger))
	t.Cleanup(sess.Wait)

	srv := handler.NewServer(productRepo, sess, quietLogger,
		handler.WithDefaultCredentials(trackertest.DefaultUsername, trackertest.DefaultPassword))

	return &testEnv{
		router:  api.NewRouter(srv, api.RouterOptions{Logger: quietLogger}),
		session: sess,
		store:   store,
		service: service,
	}
}

func do(r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	return v
}

func login(t *testing.T, env *testEnv) handler.DashboardResponse {
	t.Helper()
	w := do(env.router, http.MethodPost, "/api/dashboard/login", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK from login, got %d: %s", w.Code, w.Body.String())
	}
	env.session.Wait()
	return decode[handler.DashboardResponse](t, w)
}

func productIDs(products []handler.ProductResponse) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}
