package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/verificationrun"
)

const testPassword = "e2e-password-123"

// deref unwraps nillable text columns for assertions.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// TodoSpecJSON is the canned spec response for a simple todo prompt.
const TodoSpecJSON = `{
  "project_name": "todo-api",
  "description": "A todo API with tasks",
  "spec_version": "1.0",
  "database": {"type": "postgres", "version": "15"},
  "auth": {"enabled": false, "type": "jwt", "access_token_expiry_minutes": 30},
  "entities": [
    {
      "name": "Task",
      "table_name": "tasks",
      "crud": true,
      "fields": [
        {"name": "id", "type": "uuid", "primary_key": true, "nullable": false, "unique": true},
        {"name": "title", "type": "string", "nullable": false},
        {"name": "done", "type": "boolean", "nullable": false}
      ]
    }
  ]
}`

// TodoSpecWithPriorityJSON is the refined variant of TodoSpecJSON with
// an added priority field.
const TodoSpecWithPriorityJSON = `{
  "project_name": "todo-api",
  "description": "A todo API with tasks and priorities",
  "spec_version": "1.0",
  "database": {"type": "postgres", "version": "15"},
  "auth": {"enabled": false, "type": "jwt", "access_token_expiry_minutes": 30},
  "entities": [
    {
      "name": "Task",
      "table_name": "tasks",
      "crud": true,
      "fields": [
        {"name": "id", "type": "uuid", "primary_key": true, "nullable": false, "unique": true},
        {"name": "title", "type": "string", "nullable": false},
        {"name": "done", "type": "boolean", "nullable": false},
        {"name": "priority", "type": "integer", "nullable": true}
      ]
    }
  ]
}`

// RegisterUser creates an account and returns its bearer token.
func (app *TestApp) RegisterUser(t *testing.T, email string) string {
	t.Helper()
	app.postJSON(t, "", "/api/v1/auth/register",
		map[string]string{"email": email, "password": testPassword}, http.StatusCreated)

	form := url.Values{"username": {email}, "password": {testPassword}}
	resp, err := http.Post(app.BaseURL+"/api/v1/auth/token",
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.AccessToken)
	return body.AccessToken
}

// GenerateFromPrompt drives POST /api/v1/generate-from-prompt and
// returns the decoded response body.
func (app *TestApp) GenerateFromPrompt(t *testing.T, token, prompt string, skipVerify bool) map[string]interface{} {
	t.Helper()
	return app.postJSONAs(t, token, "/api/v1/generate-from-prompt",
		map[string]interface{}{"prompt": prompt, "skip_verify": skipVerify}, http.StatusCreated)
}

func (app *TestApp) postJSON(t *testing.T, token, path string, body interface{}, expectedStatus int) map[string]interface{} {
	t.Helper()
	return app.postJSONAs(t, token, path, body, expectedStatus)
}

func (app *TestApp) postJSONAs(t *testing.T, token, path string, body interface{}, expectedStatus int) map[string]interface{} {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, app.BaseURL+path, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return app.do(t, req, expectedStatus)
}

func (app *TestApp) postRaw(t *testing.T, token, path string, body []byte, expectedStatus int) map[string]interface{} {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, app.BaseURL+path, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return app.do(t, req, expectedStatus)
}

func (app *TestApp) getJSON(t *testing.T, token, path string, expectedStatus int) map[string]interface{} {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, app.BaseURL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return app.do(t, req, expectedStatus)
}

func (app *TestApp) delete(t *testing.T, token, path string, expectedStatus int) {
	t.Helper()
	req, err := http.NewRequest(http.MethodDelete, app.BaseURL+path, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, expectedStatus, resp.StatusCode)
}

func (app *TestApp) do(t *testing.T, req *http.Request, expectedStatus int) map[string]interface{} {
	t.Helper()
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, expectedStatus, resp.StatusCode,
		"%s %s: %s", req.Method, req.URL.Path, string(raw))

	if len(raw) == 0 {
		return nil
	}
	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		// Some endpoints answer with arrays; wrap them for callers.
		var arr []interface{}
		require.NoError(t, json.Unmarshal(raw, &arr))
		return map[string]interface{}{"items": arr}
	}
	return body
}

// UploadDocument posts one multipart file and returns the decoded
// response body.
func (app *TestApp) UploadDocument(t *testing.T, token, filename string, content []byte, expectedStatus int) map[string]interface{} {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, app.BaseURL+"/api/v1/documents", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return app.do(t, req, expectedStatus)
}

// DownloadArchive fetches the project zip and returns its bytes.
func (app *TestApp) DownloadArchive(t *testing.T, token, projectID string) []byte {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet,
		app.BaseURL+"/api/v1/projects/"+projectID+"/download", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return raw
}

// QueryProject reads the project row directly.
func (app *TestApp) QueryProject(t *testing.T, projectID string) *ent.Project {
	t.Helper()
	p, err := app.EntClient.Project.Get(context.Background(), projectID)
	require.NoError(t, err)
	return p
}

// WaitForProjectStatus polls the project row until its status is one of
// the expected values, failing the test after 15s.
func (app *TestApp) WaitForProjectStatus(t *testing.T, projectID string, expected ...string) string {
	t.Helper()
	return app.await(t, fmt.Sprintf("project %s status %v", projectID, expected), func() (string, bool) {
		p, err := app.EntClient.Project.Get(context.Background(), projectID)
		if err != nil {
			return "", false
		}
		for _, want := range expected {
			if string(p.Status) == want {
				return want, true
			}
		}
		return string(p.Status), false
	})
}

// WaitForRunStatus polls a verification run until it reaches one of the
// expected statuses.
func (app *TestApp) WaitForRunStatus(t *testing.T, runID string, expected ...string) string {
	t.Helper()
	return app.await(t, fmt.Sprintf("run %s status %v", runID, expected), func() (string, bool) {
		r, err := app.EntClient.VerificationRun.Get(context.Background(), runID)
		if err != nil {
			return "", false
		}
		for _, want := range expected {
			if string(r.Status) == want {
				return want, true
			}
		}
		return string(r.Status), false
	})
}

// QueryRun reads a verification run row directly.
func (app *TestApp) QueryRun(t *testing.T, runID string) *ent.VerificationRun {
	t.Helper()
	r, err := app.EntClient.VerificationRun.Get(context.Background(), runID)
	require.NoError(t, err)
	return r
}

// RunsForProject lists a project's runs oldest-first.
func (app *TestApp) RunsForProject(t *testing.T, projectID string) []*ent.VerificationRun {
	t.Helper()
	runs, err := app.EntClient.VerificationRun.Query().
		Where(verificationrun.ProjectID(projectID)).
		Order(ent.Asc(verificationrun.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return runs
}

func (app *TestApp) await(t *testing.T, what string, probe func() (string, bool)) string {
	t.Helper()
	deadline := time.After(15 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	last := ""
	for {
		select {
		case <-deadline:
			t.Fatalf("timeout waiting for %s (last: %q)", what, last)
			return last
		case <-tick.C:
			got, done := probe()
			last = got
			if done {
				return got
			}
		}
	}
}
