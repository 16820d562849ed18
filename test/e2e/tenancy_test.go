package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTenantIsolation verifies that every project-scoped surface
// answers 404 for another user's resources, indistinguishable from a
// missing id.
func TestTenantIsolation(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddForModel("gemini-2.0-flash", ScriptEntry{Response: TodoSpecJSON})
	owner := app.RegisterUser(t, "owner@example.com")
	intruder := app.RegisterUser(t, "intruder@example.com")

	resp := app.GenerateFromPrompt(t, owner, "Build a todo API with tasks", true)
	projectID := resp["project_id"].(string)
	threadID := app.firstThreadID(t, owner, projectID)

	paths := []string{
		"/api/v1/projects/" + projectID,
		"/api/v1/projects/" + projectID + "/threads",
		"/api/v1/projects/" + projectID + "/threads/" + threadID,
		"/api/v1/projects/" + projectID + "/runs/latest",
	}
	for _, path := range paths {
		out := app.getJSON(t, intruder, path, http.StatusNotFound)
		assert.NotContains(t, out["error"], projectID, "error must not leak the resource")
	}

	// Mutating surfaces are gated the same way.
	app.postJSON(t, intruder, "/api/v1/projects/"+projectID+"/threads/"+threadID+"/chat",
		map[string]string{"message": "where is my project?"}, http.StatusNotFound)
	app.postJSON(t, intruder, "/api/v1/projects/"+projectID+"/verify-report",
		map[string]interface{}{
			"passed":  true,
			"results": []map[string]interface{}{{"endpoint": "/tasks/", "method": "GET", "passed": true}},
		}, http.StatusNotFound)
	app.postJSON(t, intruder, "/api/v1/projects/"+projectID+"/verify", nil, http.StatusNotFound)
	app.delete(t, intruder, "/api/v1/projects/"+projectID, http.StatusNotFound)

	// Download too: the archive belongs to the owner.
	req, err := http.NewRequest(http.MethodGet, app.BaseURL+"/api/v1/projects/"+projectID+"/download", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+intruder)
	dlResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	dlResp.Body.Close()
	assert.Equal(t, http.StatusNotFound, dlResp.StatusCode)

	// The owner's view is intact afterwards.
	detail := app.getJSON(t, owner, "/api/v1/projects/"+projectID, http.StatusOK)
	assert.Equal(t, "todo-api", detail["project_name"])
}

// TestProjectListScopedToUser checks that listings never mix tenants.
func TestProjectListScopedToUser(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddForModel("gemini-2.0-flash", ScriptEntry{Response: TodoSpecJSON})
	alice := app.RegisterUser(t, "alice@example.com")
	bob := app.RegisterUser(t, "bob@example.com")

	app.GenerateFromPrompt(t, alice, "Build a todo API with tasks", true)

	aliceList := app.getJSON(t, alice, "/api/v1/projects", http.StatusOK)
	assert.Equal(t, float64(1), aliceList["total_count"])

	bobList := app.getJSON(t, bob, "/api/v1/projects", http.StatusOK)
	assert.Equal(t, float64(0), bobList["total_count"])
}

// TestRunAccessScopedToUser checks the run status surface: a run id is
// only readable by the project owner.
func TestRunAccessScopedToUser(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddForModel("gemini-2.0-flash", ScriptEntry{Response: TodoSpecJSON})
	app.Verifier.AddReport(PassingReport())
	owner := app.RegisterUser(t, "run-owner@example.com")
	intruder := app.RegisterUser(t, "run-intruder@example.com")

	resp := app.GenerateFromPrompt(t, owner, "Build a todo API with tasks", false)
	projectID := resp["project_id"].(string)
	app.WaitForProjectStatus(t, projectID, "completed", "failed")

	runs := app.RunsForProject(t, projectID)
	require.Len(t, runs, 1)

	app.getJSON(t, owner, "/api/v1/runs/"+runs[0].ID, http.StatusOK)
	app.getJSON(t, intruder, "/api/v1/runs/"+runs[0].ID, http.StatusNotFound)
}

// TestUnauthenticatedRejected checks the auth gate on a sample of
// protected routes.
func TestUnauthenticatedRejected(t *testing.T) {
	app := NewTestApp(t)

	app.getJSON(t, "", "/api/v1/projects", http.StatusUnauthorized)
	app.postJSON(t, "", "/api/v1/generate-from-prompt",
		map[string]string{"prompt": "Build a todo API"}, http.StatusUnauthorized)
	app.getJSON(t, "", "/api/v1/documents", http.StatusUnauthorized)
}
