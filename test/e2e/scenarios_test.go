package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/ent"
)

// TestGenerateFromPrompt covers the prompt-to-archive happy path with
// verification skipped: one spec-agent call, a stored archive, a seeded
// conversation thread, and a project left awaiting verification.
func TestGenerateFromPrompt(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddForModel("gemini-2.0-flash", ScriptEntry{Response: TodoSpecJSON})
	token := app.RegisterUser(t, "gen@example.com")

	resp := app.GenerateFromPrompt(t, token, "Build a todo API with tasks", true)
	projectID := resp["project_id"].(string)
	require.NotEmpty(t, projectID)
	assert.Equal(t, "todo-api", resp["project_name"])
	assert.Equal(t, "awaiting_verification", resp["status"])
	assert.Contains(t, resp["download_url"], projectID)

	proj := app.QueryProject(t, projectID)
	assert.Equal(t, "awaiting_verification", string(proj.Status))
	assert.Equal(t, "gemini-2.0-flash", deref(proj.ModelUsed))
	assert.NotEmpty(t, deref(proj.ZipPath))
	assert.Contains(t, deref(proj.SpecJSON), `"Task"`)
	assert.NotEmpty(t, deref(proj.ValidationJSON))

	// Exactly one completion served the whole run.
	assert.Equal(t, 1, app.LLM.CallCount())

	// The archive downloads and is a zip.
	data := app.DownloadArchive(t, token, projectID)
	require.True(t, len(data) > 4)
	assert.Equal(t, "PK", string(data[:2]))

	// The initial thread carries the prompt and the agent's reply.
	threads := app.getJSON(t, token, "/api/v1/projects/"+projectID+"/threads", http.StatusOK)
	require.Len(t, threads["items"], 1)
}

// TestGenerateQueuesVerification runs the same flow without skip_verify:
// the queued sandbox run consumes the scripted passing report and lands
// the project verdict.
func TestGenerateQueuesVerification(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddForModel("gemini-2.0-flash", ScriptEntry{Response: TodoSpecJSON})
	app.Verifier.AddReport(PassingReport())
	token := app.RegisterUser(t, "verify@example.com")

	resp := app.GenerateFromPrompt(t, token, "Build a todo API with tasks", false)
	projectID := resp["project_id"].(string)

	status := app.WaitForProjectStatus(t, projectID, "completed", "failed")
	assert.Equal(t, "completed", status)

	runs := app.RunsForProject(t, projectID)
	require.Len(t, runs, 1)
	assert.Equal(t, "verify", string(runs[0].Kind))
	assert.Equal(t, "completed", string(runs[0].Status))
	assert.Contains(t, deref(runs[0].ReportJSON), `"deployed": true`)

	proj := app.QueryProject(t, projectID)
	assert.NotEmpty(t, deref(proj.VerificationJSON))

	require.Len(t, app.Verifier.Calls(), 1)
	assert.Equal(t, "todo-api", app.Verifier.Calls()[0].Spec.ProjectName)
}

// TestGenerateFailedVerification exercises the docker-less outcome: the
// verifier (script exhausted) answers with a skipped report, the run
// fails, and the project stays awaiting client-side verification.
func TestGenerateFailedVerification(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddForModel("gemini-2.0-flash", ScriptEntry{Response: TodoSpecJSON})
	token := app.RegisterUser(t, "skipped@example.com")

	resp := app.GenerateFromPrompt(t, token, "Build a todo API with tasks", false)
	projectID := resp["project_id"].(string)

	runs := waitForRuns(t, app, projectID, 1)
	app.WaitForRunStatus(t, runs[0].ID, "failed")

	proj := app.QueryProject(t, projectID)
	assert.Equal(t, "awaiting_verification", string(proj.Status))
}

// TestFallbackOnQuota scripts quota exhaustion on the default model and
// asserts the chain advances to its fallback: one call per model, and
// the project records the model that actually served.
func TestFallbackOnQuota(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddForModel("gemini-2.0-flash", ScriptEntry{Err: QuotaError("gemini-2.0-flash")})
	app.LLM.AddForModel("gemini-2.5-flash", ScriptEntry{Response: TodoSpecJSON})
	token := app.RegisterUser(t, "fallback@example.com")

	resp := app.GenerateFromPrompt(t, token, "Build a todo API with tasks", true)
	projectID := resp["project_id"].(string)

	proj := app.QueryProject(t, projectID)
	assert.Equal(t, "awaiting_verification", string(proj.Status))
	assert.Equal(t, "gemini-2.5-flash", deref(proj.ModelUsed))

	assert.Equal(t, 1, app.LLM.CallsForModel("gemini-2.0-flash"))
	assert.Equal(t, 1, app.LLM.CallsForModel("gemini-2.5-flash"))
}

// TestChainExhausted scripts quota on every model in the chain. The
// request fails at the spec stage and the project row records the fault.
func TestChainExhausted(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddForModel("gemini-2.0-flash", ScriptEntry{Err: QuotaError("gemini-2.0-flash")})
	app.LLM.AddForModel("gemini-2.5-flash", ScriptEntry{Err: QuotaError("gemini-2.5-flash")})
	token := app.RegisterUser(t, "exhausted@example.com")

	resp := app.postJSON(t, token, "/api/v1/generate-from-prompt",
		map[string]interface{}{"prompt": "Build a todo API", "skip_verify": true},
		http.StatusUnprocessableEntity)
	assert.Equal(t, "spec", resp["stage"])
	require.NotEmpty(t, resp["errors"])

	projectID := resp["project_id"].(string)
	proj := app.QueryProject(t, projectID)
	assert.Equal(t, "failed", string(proj.Status))
	assert.NotEmpty(t, deref(proj.ErrorMessage))
}

// TestUnknownModelRejected covers the catalog gate before any pipeline
// work starts.
func TestUnknownModelRejected(t *testing.T) {
	app := NewTestApp(t)
	token := app.RegisterUser(t, "unknown-model@example.com")

	resp := app.postJSON(t, token, "/api/v1/generate-from-prompt",
		map[string]interface{}{"prompt": "Build a todo API", "model": "gpt-99"},
		http.StatusBadRequest)
	assert.Contains(t, resp["error"], "unknown model")
	assert.Equal(t, 0, app.LLM.CallCount())
}

// TestGenerateFromSpec submits a complete spec document: no agent call,
// straight to validation and packaging.
func TestGenerateFromSpec(t *testing.T) {
	app := NewTestApp(t)
	token := app.RegisterUser(t, "spec@example.com")

	resp := app.postRaw(t, token, "/api/v1/generate", []byte(TodoSpecJSON), http.StatusCreated)
	projectID := resp["project_id"].(string)

	proj := app.QueryProject(t, projectID)
	assert.Equal(t, "awaiting_verification", string(proj.Status))
	assert.Empty(t, deref(proj.ModelUsed))
	assert.Equal(t, 0, app.LLM.CallCount())
}

// TestChatRetrieve asks for the existing artifact in a follow-up turn.
// The classifier must answer from state, with no model round-trip.
func TestChatRetrieve(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddForModel("gemini-2.0-flash", ScriptEntry{Response: TodoSpecJSON})
	token := app.RegisterUser(t, "retrieve@example.com")

	resp := app.GenerateFromPrompt(t, token, "Build a todo API with tasks", true)
	projectID := resp["project_id"].(string)
	threadID := app.firstThreadID(t, token, projectID)
	callsBefore := app.LLM.CallCount()

	chat := app.postJSON(t, token,
		"/api/v1/projects/"+projectID+"/threads/"+threadID+"/chat",
		map[string]string{"message": "where is my project?"}, http.StatusOK)

	assert.Equal(t, "retrieve", chat["intent"])
	assert.Equal(t, projectID, chat["project_id"])
	assert.Contains(t, chat["download_url"], projectID)
	assert.Equal(t, callsBefore, app.LLM.CallCount())
}

// TestChatRefine continues the conversation with a modification request.
// The same project is rebuilt and the reworked spec carries the addition.
func TestChatRefine(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddForModel("gemini-2.0-flash", ScriptEntry{Response: TodoSpecJSON})
	app.LLM.AddForModel("gemini-2.0-flash", ScriptEntry{Response: TodoSpecWithPriorityJSON})
	token := app.RegisterUser(t, "refine@example.com")

	resp := app.GenerateFromPrompt(t, token, "Build a todo API with tasks", true)
	projectID := resp["project_id"].(string)
	threadID := app.firstThreadID(t, token, projectID)

	chat := app.postJSON(t, token,
		"/api/v1/projects/"+projectID+"/threads/"+threadID+"/chat",
		map[string]string{"message": "also add a priority integer field to tasks"},
		http.StatusOK)

	assert.Equal(t, "refine", chat["intent"])
	assert.Equal(t, projectID, chat["project_id"], "refine must rework the existing project")

	proj := app.QueryProject(t, projectID)
	assert.Contains(t, deref(proj.SpecJSON), `"priority"`)
	assert.Equal(t, "awaiting_verification", string(proj.Status))

	// The refinement turn saw the full thread as history.
	calls := app.LLM.Calls()
	require.Len(t, calls, 2)
	assert.Contains(t, calls[1].Request.User, "priority")
}

// TestVerifyReport posts a client-side verification outcome, which
// lands the verdict without any queued run.
func TestVerifyReport(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddForModel("gemini-2.0-flash", ScriptEntry{Response: TodoSpecJSON})
	token := app.RegisterUser(t, "report@example.com")

	resp := app.GenerateFromPrompt(t, token, "Build a todo API with tasks", true)
	projectID := resp["project_id"].(string)

	report := map[string]interface{}{
		"passed": true,
		"results": []map[string]interface{}{
			{"endpoint": "/tasks/", "method": "POST", "passed": true},
			{"endpoint": "/tasks/", "method": "GET", "passed": true},
		},
	}
	out := app.postJSON(t, token, "/api/v1/projects/"+projectID+"/verify-report",
		report, http.StatusOK)
	assert.Equal(t, "completed", out["status"])

	proj := app.QueryProject(t, projectID)
	assert.Equal(t, "completed", string(proj.Status))
	assert.Contains(t, deref(proj.VerificationJSON), `"passed": true`)
}

// TestProjectListing checks the paged listing and the detail view.
func TestProjectListing(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddForModel("gemini-2.0-flash", ScriptEntry{Response: TodoSpecJSON})
	token := app.RegisterUser(t, "list@example.com")

	resp := app.GenerateFromPrompt(t, token, "Build a todo API with tasks", true)
	projectID := resp["project_id"].(string)

	list := app.getJSON(t, token, "/api/v1/projects", http.StatusOK)
	assert.Equal(t, float64(1), list["total_count"])
	projects := list["projects"].([]interface{})
	require.Len(t, projects, 1)
	assert.Equal(t, projectID, projects[0].(map[string]interface{})["id"])

	detail := app.getJSON(t, token, "/api/v1/projects/"+projectID, http.StatusOK)
	assert.Equal(t, "todo-api", detail["project_name"])
	assert.Equal(t, "gemini-2.0-flash", detail["model_used"])
	require.NotNil(t, detail["spec"])
}

// firstThreadID returns the id of the project's only thread.
func (app *TestApp) firstThreadID(t *testing.T, token, projectID string) string {
	t.Helper()
	threads := app.getJSON(t, token, "/api/v1/projects/"+projectID+"/threads", http.StatusOK)
	items := threads["items"].([]interface{})
	require.NotEmpty(t, items)
	first := items[0].(map[string]interface{})
	id, ok := first["id"].(string)
	require.True(t, ok, "thread id missing: %v", first)
	return id
}

// waitForRuns polls until the project has at least n verification runs.
func waitForRuns(t *testing.T, app *TestApp, projectID string, n int) []*ent.VerificationRun {
	t.Helper()
	var runs []*ent.VerificationRun
	app.await(t, "runs to appear", func() (string, bool) {
		runs = app.RunsForProject(t, projectID)
		if len(runs) >= n {
			return "ok", true
		}
		return "waiting", false
	})
	return runs
}
