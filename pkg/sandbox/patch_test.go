package sandbox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/pkg/models"
)

func TestBuildPatchRequests_Traceback(t *testing.T) {
	r := &Report{
		Deployed:         true,
		Healthy:          false,
		Output:           "Traceback (most recent call last):\n  ...",
		TracebackFile:    "app/models.py",
		TracebackLine:    4,
		TracebackSummary: "NameError: name 'Field' is not defined",
	}

	requests := BuildPatchRequests(r)
	require.Len(t, requests, 2)

	assert.Equal(t, "app/models.py", requests[0].File)
	assert.Equal(t, "Sandbox runtime error: NameError: name 'Field' is not defined", requests[0].Reason)
	assert.Contains(t, requests[0].Instructions, "Fix the runtime error in this file that prevents the API from starting.")
	assert.Contains(t, requests[0].Instructions, "Error: NameError: name 'Field' is not defined")
	assert.Contains(t, requests[0].Instructions, "import them explicitly")

	// The health failure still targets the entry point since the
	// traceback pointed elsewhere.
	assert.Equal(t, "app/main.py", requests[1].File)
	assert.Equal(t, "Sandbox health check failed — API did not start", requests[1].Reason)
}

func TestBuildPatchRequests_TracebackWithoutSummary(t *testing.T) {
	r := &Report{TracebackFile: "app/database.py", Healthy: true}

	requests := BuildPatchRequests(r)
	require.Len(t, requests, 1)
	assert.Equal(t, "Sandbox runtime error: unknown error", requests[0].Reason)
	assert.Contains(t, requests[0].Instructions, "Error: See full output below")
}

func TestBuildPatchRequests_TracebackInEntryPoint(t *testing.T) {
	r := &Report{
		Healthy:          false,
		TracebackFile:    "app/main.py",
		TracebackSummary: "ImportError: cannot import name 'Task'",
	}

	requests := BuildPatchRequests(r)
	require.Len(t, requests, 1)
	assert.Equal(t, "app/main.py", requests[0].File)
	assert.Contains(t, requests[0].Reason, "Sandbox runtime error")
}

func TestBuildPatchRequests_HealthFailure(t *testing.T) {
	r := &Report{
		Deployed: true,
		Healthy:  false,
		Output:   "uvicorn exited immediately",
	}

	requests := BuildPatchRequests(r)
	require.Len(t, requests, 1)
	assert.Equal(t, "app/main.py", requests[0].File)
	assert.Equal(t, "Sandbox health check failed — API did not start", requests[0].Reason)
	assert.Contains(t, requests[0].Instructions, "prevent uvicorn from starting")
	assert.Contains(t, requests[0].Instructions, "Sandbox error output: uvicorn exited immediately")
}

func TestBuildPatchRequests_TestFailures(t *testing.T) {
	r := &Report{
		Deployed:    true,
		Healthy:     true,
		TestsFailed: 2,
		TestsPassed: 5,
		Output:      "short test log",
		Failures: []string{
			"FAILED tests/test_smoke.py::test_create_task - assert 500 == 201",
			"ERROR app/routers/tasks.py - ImportError while importing",
		},
	}

	requests := BuildPatchRequests(r)
	require.Len(t, requests, 1)
	assert.Equal(t, "app/routers/tasks.py", requests[0].File)
	assert.Equal(t, "Sandbox tests failed — 2 test(s) failing", requests[0].Reason)
	assert.Contains(t, requests[0].Instructions, "Failing tests: FAILED tests/test_smoke.py::test_create_task")
	assert.Contains(t, requests[0].Instructions, "Test output snippet: short test log")
}

func TestFailingAppFiles_OrderAndDedup(t *testing.T) {
	failures := []string{
		"error in app/routers/users.py during setup",
		"error in app/routers/items.py during setup",
		"error in app/routers/users.py again",
		"FAILED tests/test_smoke.py::test_health - app/routers/orders.py",
		"error in app/models.py",
	}

	files := failingAppFiles(failures, "app/models.py")
	assert.Equal(t, []string{"app/routers/users.py", "app/routers/items.py"}, files)
}

func TestBuildPatchRequests_CatchAllFromEndpoints(t *testing.T) {
	status := func(n int) *int { return &n }
	r := &Report{
		Deployed: true,
		Healthy:  true,
		Endpoints: []models.EndpointResult{
			{Method: "GET", Endpoint: "/health", Passed: true, StatusCode: status(200)},
			{Method: "POST", Endpoint: "/tasks/", Passed: false, ErrorMessage: "connection refused"},
			{Method: "GET", Endpoint: "/tasks/", Passed: false, StatusCode: status(500)},
		},
	}

	requests := BuildPatchRequests(r)
	require.Len(t, requests, 1)
	assert.Equal(t, "app/main.py", requests[0].File)
	assert.Equal(t, "Sandbox deployment failed", requests[0].Reason)
	assert.Contains(t, requests[0].Instructions, "Review and fix the main application entry point.")
	assert.Contains(t, requests[0].Instructions, "POST /tasks/: connection refused; GET /tasks/: unexpected status 500")
}

func TestBuildPatchRequests_CatchAllPrefersReportErrors(t *testing.T) {
	r := &Report{
		Deployed: true,
		Healthy:  true,
		Errors:   []string{"Login succeeded but no access_token in response"},
	}

	requests := BuildPatchRequests(r)
	require.Len(t, requests, 1)
	assert.Equal(t, "Sandbox deployment failed", requests[0].Reason)
	assert.Contains(t, requests[0].Instructions, "Error: Login succeeded but no access_token in response")
}

func TestBuildPatchRequests_OutputHeadCapped(t *testing.T) {
	r := &Report{
		Healthy:          false,
		TracebackFile:    "app/models.py",
		TracebackSummary: "TypeError: bad arg",
		Output:           strings.Repeat("x", 600),
	}

	requests := BuildPatchRequests(r)
	require.NotEmpty(t, requests)
	assert.Contains(t, requests[0].Instructions, "Sandbox output: "+strings.Repeat("x", 500))
	assert.NotContains(t, requests[0].Instructions, strings.Repeat("x", 501))
}
