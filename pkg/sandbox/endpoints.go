package sandbox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/forgeworks/forge/pkg/models"
	"github.com/forgeworks/forge/pkg/spec"
)

// Credentials the prober registers in the deployed app. The app's
// database is ephemeral, so fixed values are fine.
const (
	verifyEmail    = "verify@test.com"
	verifyPassword = "TestPass123!"
)

// Labels distinguishing follow-up assertions from plain status checks.
const (
	labelDataIntegrity   = "data integrity"
	labelContainsCreated = "contains created item"
	labelAfterDelete     = "after delete"
)

const probeTimeout = 10 * time.Second

// prober drives the synthetic endpoint tests against a deployed app:
// health, docs, the auth flow, then CREATE→LIST→READ→UPDATE→DELETE→
// READ-after-delete per crud entity with field-level integrity checks.
type prober struct {
	client  *http.Client
	baseURL string
	bearer  string
	results []models.EndpointResult
	errors  []string
}

func newProber(baseURL string) *prober {
	return &prober{
		client:  &http.Client{Timeout: probeTimeout},
		baseURL: baseURL,
	}
}

// run executes the full probe sequence and returns per-probe results.
func (p *prober) run(ctx context.Context, sp *spec.Spec) []models.EndpointResult {
	p.probe(ctx, http.MethodGet, "/health", "/health", "", http.StatusOK, nil, nil)
	p.probe(ctx, http.MethodGet, "/docs", "/docs", "", http.StatusOK, nil, nil)

	if sp.Auth.Enabled {
		p.probeAuth(ctx)
	}

	for i := range sp.Entities {
		e := &sp.Entities[i]
		if !e.CRUD {
			continue
		}
		// User management goes through /auth/register and /auth/login;
		// the entity has no router of its own.
		if sp.Auth.Enabled && e.Name == "User" {
			continue
		}
		p.probeEntity(ctx, e)
	}

	return p.results
}

// do issues one request. A nil status means the request never produced
// a response. The body is decoded as JSON when possible; non-JSON
// responses (the /docs HTML page) decode to nil.
func (p *prober) do(ctx context.Context, method, path string, jsonBody any, form url.Values) (*int, any, error) {
	var (
		reader      io.Reader
		contentType string
	)
	switch {
	case form != nil:
		reader = strings.NewReader(form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case jsonBody != nil:
		raw, err := json.Marshal(jsonBody)
		if err != nil {
			return nil, nil, err
		}
		reader = bytes.NewReader(raw)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reader)
	if err != nil {
		return nil, nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if p.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+p.bearer)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	var decoded any
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &decoded)
	}
	return &resp.StatusCode, decoded, nil
}

// probe issues one request and records the outcome against the expected
// status. recordPath is what lands in the result (parameterized, e.g.
// "/tasks/{id}"); path is the literal request target.
func (p *prober) probe(ctx context.Context, method, path, recordPath, label string, expected int, jsonBody any, form url.Values) (*int, any) {
	status, body, err := p.do(ctx, method, path, jsonBody, form)
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	p.record(method, recordPath, label, expected, status, errMsg)
	return status, body
}

// record appends one probe outcome. A probe passes when the observed
// status matches the expected one and no error occurred.
func (p *prober) record(method, path, label string, expected int, status *int, errMsg string) {
	passed := status != nil && *status == expected && errMsg == ""
	p.results = append(p.results, models.EndpointResult{
		TestName:     label,
		Endpoint:     path,
		Method:       method,
		Passed:       passed,
		StatusCode:   status,
		ErrorMessage: errMsg,
	})

	observed := 0
	if status != nil {
		observed = *status
	}
	slog.Debug("endpoint probe",
		"method", method, "path", path, "label", label,
		"status", observed, "expected", expected, "passed", passed)
}

// probeAuth registers a throwaway account, logs in with the OAuth2
// password grant, and threads the bearer token through the remaining
// probes.
func (p *prober) probeAuth(ctx context.Context) {
	p.probe(ctx, http.MethodPost, "/auth/register", "/auth/register", "", http.StatusCreated,
		map[string]string{"email": verifyEmail, "password": verifyPassword}, nil)

	form := url.Values{
		"username":   {verifyEmail},
		"password":   {verifyPassword},
		"grant_type": {"password"},
	}
	status, body := p.probe(ctx, http.MethodPost, "/auth/login", "/auth/login", "", http.StatusOK, nil, form)
	if status == nil || *status != http.StatusOK {
		return
	}
	if m, ok := body.(map[string]any); ok {
		if token, ok := m["access_token"].(string); ok && token != "" {
			p.bearer = token
			return
		}
	}
	p.errors = append(p.errors, "Login succeeded but no access_token in response")
}

// probeEntity runs the CRUD sequence for one entity. When CREATE fails,
// the dependent steps are recorded as skipped so the report still shows
// the full expected surface.
func (p *prober) probeEntity(ctx context.Context, e *spec.Entity) {
	prefix := "/" + e.TableName
	pkName := "id"
	if pk := e.PrimaryKey(); pk != nil {
		pkName = pk.Name
	}

	// CREATE
	payload := createPayload(e)
	status, body := p.probe(ctx, http.MethodPost, prefix+"/", prefix+"/", "", http.StatusCreated, payload, nil)

	var (
		created   map[string]any
		createdID string
	)
	if status != nil && *status == http.StatusCreated {
		created, _ = body.(map[string]any)
	}
	if created != nil {
		if v, ok := created[pkName]; ok && v != nil {
			createdID = fmt.Sprint(v)
		}
		mismatches := fieldMismatches(e, payload, created, "sent", "got", true)
		errMsg := ""
		if len(mismatches) > 0 {
			errMsg = "Field mismatches: " + strings.Join(mismatches, "; ")
		}
		p.record(http.MethodPost, prefix+"/", labelDataIntegrity, http.StatusCreated, status, errMsg)
	}

	// LIST
	status, body = p.probe(ctx, http.MethodGet, prefix+"/", prefix+"/", "", http.StatusOK, nil, nil)
	if status != nil && *status == http.StatusOK && createdID != "" {
		items, _ := body.([]any)
		found := false
		for _, it := range items {
			m, ok := it.(map[string]any)
			if !ok {
				continue
			}
			if fmt.Sprint(m[pkName]) == createdID {
				found = true
				break
			}
		}
		errMsg := ""
		if !found {
			errMsg = fmt.Sprintf("Created item %s not found in list", createdID)
		}
		p.record(http.MethodGet, prefix+"/", labelContainsCreated, http.StatusOK, status, errMsg)
	}

	recordPath := prefix + "/{id}"
	if createdID == "" {
		for _, step := range []struct {
			method, path, label string
			expected            int
		}{
			{http.MethodGet, recordPath, "", http.StatusOK},
			{http.MethodPut, recordPath, "", http.StatusOK},
			{http.MethodDelete, recordPath, "", http.StatusNoContent},
			{http.MethodGet, recordPath, labelAfterDelete, http.StatusNotFound},
		} {
			p.record(step.method, step.path, step.label, step.expected, nil, "Skipped: CREATE failed")
		}
		return
	}

	idPath := prefix + "/" + createdID

	// READ
	status, body = p.probe(ctx, http.MethodGet, idPath, recordPath, "", http.StatusOK, nil, nil)
	if status != nil && *status == http.StatusOK {
		if read, ok := body.(map[string]any); ok {
			mismatches := fieldMismatches(e, created, read, "created", "read", false)
			errMsg := ""
			if len(mismatches) > 0 {
				errMsg = "Read mismatch: " + strings.Join(mismatches, "; ")
			}
			p.record(http.MethodGet, recordPath, labelDataIntegrity, http.StatusOK, status, errMsg)
		}
	}

	// UPDATE
	update := updatePayload(e)
	status, body = p.probe(ctx, http.MethodPut, idPath, recordPath, "", http.StatusOK, update, nil)
	if status != nil && *status == http.StatusOK {
		if updated, ok := body.(map[string]any); ok {
			mismatches := fieldMismatches(e, update, updated, "expected", "got", true)
			errMsg := ""
			if len(mismatches) > 0 {
				errMsg = "Update mismatch: " + strings.Join(mismatches, "; ")
			}
			p.record(http.MethodPut, recordPath, labelDataIntegrity, http.StatusOK, status, errMsg)
		}
	}

	// DELETE
	p.probe(ctx, http.MethodDelete, idPath, recordPath, "", http.StatusNoContent, nil, nil)

	// READ after delete
	p.probe(ctx, http.MethodGet, idPath, recordPath, labelAfterDelete, http.StatusNotFound, nil, nil)
}

// fieldMismatches compares the non-PK fields of want against got and
// returns one "name: wantLabel=…, gotLabel=…" entry per difference.
// skipNil ignores fields absent on either side. Values compare as
// strings with timestamp tolerance: FastAPI returns datetimes without
// the zone suffix the probe sent.
func fieldMismatches(e *spec.Entity, want, got map[string]any, wantLabel, gotLabel string, skipNil bool) []string {
	var mismatches []string
	for _, f := range e.Fields {
		if f.PrimaryKey {
			continue
		}
		w, g := want[f.Name], got[f.Name]
		if skipNil && (w == nil || g == nil) {
			continue
		}
		if !equalValues(w, g) {
			mismatches = append(mismatches,
				fmt.Sprintf("%s: %s=%v, %s=%v", f.Name, wantLabel, w, gotLabel, g))
		}
	}
	return mismatches
}

// equalValues compares two payload values as strings, with a second
// chance for timestamps that differ only in zone spelling.
func equalValues(a, b any) bool {
	as, bs := fmt.Sprint(a), fmt.Sprint(b)
	if as == bs {
		return true
	}
	at, aok := parseTimestamp(as)
	bt, bok := parseTimestamp(bs)
	return aok && bok && at.Equal(bt)
}

// parseTimestamp accepts RFC 3339 and the zone-less ISO form FastAPI
// emits for timezone-aware columns read back as naive UTC.
func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// createPayload builds a CREATE body with a type-appropriate value for
// every non-PK field. Primary keys are server-generated.
func createPayload(e *spec.Entity) map[string]any {
	payload := make(map[string]any)
	for _, f := range e.Fields {
		if f.PrimaryKey {
			continue
		}
		payload[f.Name] = testValue(f.Type, f.Name)
	}
	return payload
}

// updatePayload builds an UPDATE body with values distinct from the
// create payload so the update is observable.
func updatePayload(e *spec.Entity) map[string]any {
	payload := make(map[string]any)
	for _, f := range e.Fields {
		if f.PrimaryKey {
			continue
		}
		payload[f.Name] = updateValue(f.Type, f.Name)
	}
	return payload
}

func testValue(fieldType, fieldName string) any {
	switch fieldType {
	case spec.TypeString:
		return "test_" + fieldName
	case spec.TypeText:
		return "Test text content for " + fieldName
	case spec.TypeInteger:
		return 42
	case spec.TypeFloat:
		return 3.14
	case spec.TypeBoolean:
		return false
	case spec.TypeDatetime:
		return probeTimestamp()
	case spec.TypeUUID:
		return uuid.NewString()
	default:
		return "test_value"
	}
}

func updateValue(fieldType, fieldName string) any {
	switch fieldType {
	case spec.TypeString:
		return "updated_" + fieldName
	case spec.TypeText:
		return "Updated text content for " + fieldName
	case spec.TypeInteger:
		return 99
	case spec.TypeFloat:
		return 6.28
	case spec.TypeBoolean:
		return true
	case spec.TypeDatetime:
		return probeTimestamp()
	case spec.TypeUUID:
		return uuid.NewString()
	default:
		return "updated_value"
	}
}

// probeTimestamp is second-granular so the value survives a round trip
// through drivers that drop sub-second precision.
func probeTimestamp() string {
	return time.Now().UTC().Truncate(time.Second).Format(time.RFC3339)
}
