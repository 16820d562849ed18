package sandbox

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/pkg/models"
	"github.com/forgeworks/forge/pkg/spec"
)

const fakeToken = "sandbox-test-token"

type fakeAppOptions struct {
	auth        bool
	failCreate  bool
	mangleTitle bool
	omitToken   bool
}

// fakeApp stands in for a deployed generated app: in-memory CRUD with
// the same route shapes, status codes, and auth flow FastAPI renders.
type fakeApp struct {
	opts fakeAppOptions

	mu        sync.Mutex
	nextID    int
	items     map[string]map[string]any
	order     []string
	loginForm url.Values
	bearers   []string
}

func newFakeApp(t *testing.T, opts fakeAppOptions) (*fakeApp, *httptest.Server) {
	t.Helper()
	app := &fakeApp{opts: opts, items: make(map[string]map[string]any)}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /docs", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>Swagger UI</html>"))
	})
	mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		writeJSON(w, http.StatusCreated, map[string]any{"id": 1, "email": body["email"]})
	})
	mux.HandleFunc("POST /auth/login", app.login)

	mux.HandleFunc("POST /tasks/{$}", app.guard(app.createTask))
	mux.HandleFunc("GET /tasks/{$}", app.guard(app.listTasks))
	mux.HandleFunc("GET /tasks/{id}", app.guard(app.readTask))
	mux.HandleFunc("PUT /tasks/{id}", app.guard(app.updateTask))
	mux.HandleFunc("DELETE /tasks/{id}", app.guard(app.deleteTask))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return app, srv
}

func (a *fakeApp) login(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	a.mu.Lock()
	a.loginForm = r.PostForm
	a.mu.Unlock()

	if r.PostForm.Get("username") != verifyEmail || r.PostForm.Get("password") != verifyPassword {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Incorrect email or password"})
		return
	}
	resp := map[string]any{"token_type": "bearer"}
	if !a.opts.omitToken {
		resp["access_token"] = fakeToken
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *fakeApp) guard(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if a.opts.auth {
			got := r.Header.Get("Authorization")
			a.mu.Lock()
			a.bearers = append(a.bearers, got)
			a.mu.Unlock()
			if got != "Bearer "+fakeToken {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Not authenticated"})
				return
			}
		}
		next(w, r)
	}
}

func (a *fakeApp) createTask(w http.ResponseWriter, r *http.Request) {
	if a.opts.failCreate {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "boom"})
		return
	}
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": err.Error()})
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nextID++
	id := strconv.Itoa(a.nextID)
	item := map[string]any{"id": a.nextID}
	for k, v := range body {
		item[k] = naiveDatetime(v)
	}
	if a.opts.mangleTitle {
		item["title"] = "WRONG"
	}
	a.items[id] = item
	a.order = append(a.order, id)
	writeJSON(w, http.StatusCreated, item)
}

func (a *fakeApp) listTasks(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]any, 0, len(a.order))
	for _, id := range a.order {
		if item, ok := a.items[id]; ok {
			out = append(out, item)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *fakeApp) readTask(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	item, ok := a.items[r.PathValue("id")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found"})
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (a *fakeApp) updateTask(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": err.Error()})
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	item, ok := a.items[r.PathValue("id")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found"})
		return
	}
	for k, v := range body {
		item[k] = naiveDatetime(v)
	}
	writeJSON(w, http.StatusOK, item)
}

func (a *fakeApp) deleteTask(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := r.PathValue("id")
	if _, ok := a.items[id]; !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found"})
		return
	}
	delete(a.items, id)
	w.WriteHeader(http.StatusNoContent)
}

// naiveDatetime mimics FastAPI echoing timezone-aware inputs back
// without the zone suffix.
func naiveDatetime(v any) any {
	s, ok := v.(string)
	if !ok || !strings.HasSuffix(s, "Z") {
		return v
	}
	if _, err := time.Parse(time.RFC3339, s); err != nil {
		return v
	}
	return strings.TrimSuffix(s, "Z")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func taskEntity() spec.Entity {
	return spec.Entity{
		Name: "Task", TableName: "tasks", CRUD: true,
		Fields: []spec.Field{
			{Name: "id", Type: spec.TypeInteger, PrimaryKey: true},
			{Name: "title", Type: spec.TypeString},
			{Name: "done", Type: spec.TypeBoolean},
			{Name: "due_at", Type: spec.TypeDatetime},
		},
	}
}

func plainSpec() *spec.Spec {
	return &spec.Spec{
		ProjectName: "taskman",
		SpecVersion: "1.0",
		Auth:        spec.AuthConfig{Enabled: false},
		Entities:    []spec.Entity{taskEntity()},
	}
}

func authedSpec() *spec.Spec {
	sp := plainSpec()
	sp.Auth = spec.AuthConfig{Enabled: true, Type: "jwt"}
	sp.Entities = append([]spec.Entity{{
		Name: "User", TableName: "users", CRUD: true,
		Fields: []spec.Field{
			{Name: "id", Type: spec.TypeInteger, PrimaryKey: true},
			{Name: "email", Type: spec.TypeString, Unique: true},
		},
	}}, sp.Entities...)
	sp.Entities = append(sp.Entities, spec.Entity{
		Name: "AuditLog", TableName: "audit_logs", CRUD: false,
		Fields: []spec.Field{{Name: "id", Type: spec.TypeInteger, PrimaryKey: true}},
	})
	return sp
}

func TestProber_FullPass(t *testing.T) {
	app, srv := newFakeApp(t, fakeAppOptions{auth: true})

	p := newProber(srv.URL)
	results := p.run(context.Background(), authedSpec())

	require.Len(t, results, 14)
	for _, res := range results {
		assert.True(t, res.Passed, "%s %s %s: %s", res.Method, res.Endpoint, res.TestName, res.ErrorMessage)
	}
	assert.Empty(t, p.errors)
	assert.Equal(t, fakeToken, p.bearer)

	// The User entity rides on /auth/*; the non-crud entity has no routes.
	for _, res := range results {
		assert.NotContains(t, res.Endpoint, "/users")
		assert.NotContains(t, res.Endpoint, "/audit_logs")
	}

	app.mu.Lock()
	form, bearers := app.loginForm, append([]string(nil), app.bearers...)
	app.mu.Unlock()

	// The login form followed the OAuth2 password grant.
	assert.Equal(t, verifyEmail, form.Get("username"))
	assert.Equal(t, "password", form.Get("grant_type"))

	// Every entity request carried the bearer token.
	require.NotEmpty(t, bearers)
	for _, b := range bearers {
		assert.Equal(t, "Bearer "+fakeToken, b)
	}

	var labels []string
	for _, res := range results {
		if res.TestName != "" {
			labels = append(labels, res.TestName)
		}
	}
	assert.Equal(t, []string{
		labelDataIntegrity, labelContainsCreated,
		labelDataIntegrity, labelDataIntegrity, labelAfterDelete,
	}, labels)
}

func TestProber_CreateFailureSkipsDependentSteps(t *testing.T) {
	_, srv := newFakeApp(t, fakeAppOptions{failCreate: true})

	p := newProber(srv.URL)
	results := p.run(context.Background(), plainSpec())

	// health, docs, CREATE, LIST, then the four id-level steps skipped.
	require.Len(t, results, 8)

	create := results[2]
	assert.Equal(t, http.MethodPost, create.Method)
	assert.False(t, create.Passed)
	require.NotNil(t, create.StatusCode)
	assert.Equal(t, http.StatusInternalServerError, *create.StatusCode)

	assert.True(t, results[3].Passed, "LIST still probes after a failed CREATE")

	for _, res := range results[4:] {
		assert.False(t, res.Passed)
		assert.Equal(t, "/tasks/{id}", res.Endpoint)
		assert.Equal(t, "Skipped: CREATE failed", res.ErrorMessage)
		assert.Nil(t, res.StatusCode)
	}
	assert.Equal(t, http.MethodDelete, results[6].Method)
	assert.Equal(t, labelAfterDelete, results[7].TestName)
}

func TestProber_ReportsFieldMismatch(t *testing.T) {
	_, srv := newFakeApp(t, fakeAppOptions{mangleTitle: true})

	p := newProber(srv.URL)
	results := p.run(context.Background(), plainSpec())

	var integrity *models.EndpointResult
	for i := range results {
		if results[i].Method == http.MethodPost && results[i].TestName == labelDataIntegrity {
			integrity = &results[i]
			break
		}
	}
	require.NotNil(t, integrity)
	assert.False(t, integrity.Passed)
	assert.Contains(t, integrity.ErrorMessage, "Field mismatches: title: sent=test_title, got=WRONG")
}

func TestProber_MissingAccessToken(t *testing.T) {
	_, srv := newFakeApp(t, fakeAppOptions{auth: true, omitToken: true})
	sp := &spec.Spec{ProjectName: "taskman", Auth: spec.AuthConfig{Enabled: true}}

	p := newProber(srv.URL)
	results := p.run(context.Background(), sp)

	require.Len(t, results, 4)
	assert.Contains(t, p.errors, "Login succeeded but no access_token in response")
	assert.Empty(t, p.bearer)
}

func TestEqualValues_TimestampTolerance(t *testing.T) {
	assert.True(t, equalValues("2026-08-25T10:00:00Z", "2026-08-25T10:00:00"))
	assert.True(t, equalValues("2026-08-25T10:00:00Z", "2026-08-25T10:00:00.000000"))
	assert.False(t, equalValues("2026-08-25T10:00:00Z", "2026-08-25T10:00:01"))
	assert.True(t, equalValues(42, float64(42)))
	assert.False(t, equalValues("a", "b"))
}

func TestCreatePayload_SkipsPrimaryKey(t *testing.T) {
	e := taskEntity()
	payload := createPayload(&e)

	assert.NotContains(t, payload, "id")
	assert.Equal(t, "test_title", payload["title"])
	assert.Equal(t, false, payload["done"])
	_, ok := parseTimestamp(fmt.Sprint(payload["due_at"]))
	assert.True(t, ok)

	update := updatePayload(&e)
	assert.Equal(t, "updated_title", update["title"])
	assert.Equal(t, true, update["done"])
}
