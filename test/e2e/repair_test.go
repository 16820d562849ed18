package e2e

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/pkg/sandbox"
)

const fixedModelsPy = `from sqlmodel import SQLModel, Field
import uuid

class Task(SQLModel, table=True):
    __tablename__ = "tasks"
    id: uuid.UUID = Field(default_factory=uuid.uuid4, primary_key=True)
    title: str
    done: bool = False
`

// fixJSONReplacing builds a fix-agent response that overwrites one file.
func fixJSONReplacing(file, content string) string {
	out, _ := json.Marshal(map[string]interface{}{
		"analysis": "Root cause identified in " + file,
		"fixes": []map[string]string{
			{"file": file, "reason": "replace broken file", "changes": content},
		},
	})
	return string(out)
}

// failingTracebackReport simulates a deploy that crashed on import: the
// container came up, the app did not.
func failingTracebackReport() *sandbox.Report {
	return &sandbox.Report{
		Deployed:         true,
		Healthy:          false,
		TracebackFile:    "app/models.py",
		TracebackLine:    4,
		TracebackSummary: "NameError: name 'Field' is not defined",
		Output: "Traceback (most recent call last):\n" +
			"  File \"/app/app/models.py\", line 4, in <module>\n" +
			"NameError: name 'Field' is not defined",
	}
}

// TestRepairLoopRecovers drives the full verify → patch → redeploy
// cycle: attempt one crashes with a traceback, the fix agent patches
// the named file, attempt two passes.
func TestRepairLoopRecovers(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddSequential(ScriptEntry{Response: TodoSpecJSON})
	app.LLM.AddSequential(ScriptEntry{Response: fixJSONReplacing("app/models.py", fixedModelsPy)})
	app.Verifier.AddReport(failingTracebackReport())
	app.Verifier.AddReport(PassingReport())
	token := app.RegisterUser(t, "repair@example.com")

	resp := app.GenerateFromPrompt(t, token, "Build a todo API with tasks", false)
	projectID := resp["project_id"].(string)

	status := app.WaitForProjectStatus(t, projectID, "completed", "failed")
	assert.Equal(t, "completed", status)

	runs := app.RunsForProject(t, projectID)
	require.Len(t, runs, 1)
	assert.Equal(t, "completed", string(runs[0].Status))
	report := deref(runs[0].ReportJSON)
	assert.Contains(t, report, `"attempts": 2`)
	assert.Contains(t, report, `"repaired": true`)
	assert.Contains(t, report, `"passed": true`)

	// One spec call, one fix call.
	assert.Equal(t, 2, app.LLM.CallCount())

	// The second deploy saw the patched file.
	calls := app.Verifier.Calls()
	require.Len(t, calls, 2)
	assert.Contains(t, calls[0].Files["app/models.py"], "class Task")
	assert.Equal(t, fixedModelsPy, calls[1].Files["app/models.py"])
}

// TestRepairStopsWithoutProgress ends the loop when the fix agent
// proposes nothing: the verdict lands as failed instead of burning the
// remaining attempts.
func TestRepairStopsWithoutProgress(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddSequential(ScriptEntry{Response: TodoSpecJSON})
	app.LLM.AddSequential(ScriptEntry{Response: `{"analysis": "nothing actionable", "fixes": []}`})
	app.Verifier.AddReport(failingTracebackReport())
	token := app.RegisterUser(t, "no-progress@example.com")

	resp := app.GenerateFromPrompt(t, token, "Build a todo API with tasks", false)
	projectID := resp["project_id"].(string)

	status := app.WaitForProjectStatus(t, projectID, "completed", "failed")
	assert.Equal(t, "failed", status)

	runs := app.RunsForProject(t, projectID)
	require.Len(t, runs, 1)
	assert.Equal(t, "completed", string(runs[0].Status), "a delivered verdict completes the run even when it failed")
	report := deref(runs[0].ReportJSON)
	assert.Contains(t, report, `"attempts": 1`)
	assert.Contains(t, report, `"passed": false`)
	require.Len(t, app.Verifier.Calls(), 1)
}

// TestClientReportedFix covers the explicit repair entry point: a failed
// project plus client-reported endpoint failures become a seeded repair
// run that redeploys clean.
func TestClientReportedFix(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddSequential(ScriptEntry{Response: TodoSpecJSON})
	app.LLM.AddSequential(ScriptEntry{Response: fixJSONReplacing("app/routers/tasks.py", "# fixed router\n")})
	app.Verifier.AddReport(PassingReport())
	token := app.RegisterUser(t, "client-fix@example.com")

	resp := app.GenerateFromPrompt(t, token, "Build a todo API with tasks", true)
	projectID := resp["project_id"].(string)

	// The client verified locally and reports a failure.
	app.postJSON(t, token, "/api/v1/projects/"+projectID+"/verify-report", map[string]interface{}{
		"passed": false,
		"results": []map[string]interface{}{
			{"endpoint": "/tasks/", "method": "POST", "passed": false, "error_message": "500 Internal Server Error"},
		},
	}, http.StatusOK)
	require.Equal(t, "failed", string(app.QueryProject(t, projectID).Status))

	fix := app.postJSON(t, token, "/api/v1/projects/"+projectID+"/fix", map[string]interface{}{
		"attempt_number": 1,
		"failed_tests": []map[string]interface{}{
			{"method": "POST", "endpoint": "/tasks/", "error_message": "500 Internal Server Error"},
		},
	}, http.StatusAccepted)
	assert.Equal(t, "repair", fix["kind"])

	status := app.WaitForProjectStatus(t, projectID, "completed", "failed")
	assert.Equal(t, "completed", status)

	runID := fix["run_id"].(string)
	assert.Equal(t, "completed", app.WaitForRunStatus(t, runID, "completed", "failed"))

	// The seed fix pass rewrote the router before the deploy.
	calls := app.Verifier.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "# fixed router\n", calls[0].Files["app/routers/tasks.py"])
}

// TestFixRejectedUnlessFailed guards the repair entry point: only a
// failed project can request auto-fix.
func TestFixRejectedUnlessFailed(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddSequential(ScriptEntry{Response: TodoSpecJSON})
	token := app.RegisterUser(t, "fix-guard@example.com")

	resp := app.GenerateFromPrompt(t, token, "Build a todo API with tasks", true)
	projectID := resp["project_id"].(string)

	out := app.postJSON(t, token, "/api/v1/projects/"+projectID+"/fix", map[string]interface{}{
		"attempt_number": 1,
		"failed_tests": []map[string]interface{}{
			{"method": "GET", "endpoint": "/tasks/", "error_message": "timeout"},
		},
	}, http.StatusBadRequest)
	assert.Contains(t, out["error"], "failed projects")
}

// TestReviewScoreNeverDrops runs post-sandbox review across two
// iterations where the model tries to lower its score: the recorded
// verdict keeps the floor.
func TestReviewScoreNeverDrops(t *testing.T) {
	cfg := DefaultTestConfig(t)
	cfg.Sandbox.ReviewPosition = "post_sandbox"
	app := NewTestApp(t, WithConfig(cfg))

	review1 := `{"issues":[{"severity":"medium","file_path":"app/main.py","description":"CORS allows any origin"}],` +
		`"suggestions":[],"security_score":5,"approved":false,"affected_files":["app/main.py"],` +
		`"patch_requests":[{"file":"app/main.py","reason":"tighten CORS","instructions":"Restrict origins"}]}`
	review2 := `{"issues":[],"suggestions":[],"security_score":4,"approved":false,` +
		`"affected_files":[],"patch_requests":[]}`

	app.LLM.AddSequential(ScriptEntry{Response: TodoSpecJSON})
	app.LLM.AddSequential(ScriptEntry{Response: review1})
	app.LLM.AddSequential(ScriptEntry{Response: fixJSONReplacing("app/main.py", "# hardened entry point\n")})
	app.LLM.AddSequential(ScriptEntry{Response: review2})
	app.Verifier.AddReport(PassingReport())
	token := app.RegisterUser(t, "review@example.com")

	resp := app.GenerateFromPrompt(t, token, "Build a todo API with tasks", false)
	projectID := resp["project_id"].(string)

	status := app.WaitForProjectStatus(t, projectID, "completed", "failed")
	assert.Equal(t, "completed", status)

	runs := app.RunsForProject(t, projectID)
	require.Len(t, runs, 1)
	report := deref(runs[0].ReportJSON)
	assert.Contains(t, report, `"security_score": 5`, "re-review may not lower the recorded score")
	assert.Contains(t, report, `"repaired": true`)

	assert.Equal(t, 4, app.LLM.CallCount())
}
