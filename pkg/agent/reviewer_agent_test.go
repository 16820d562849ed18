package agent

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reviewReportJSON = `{
  "issues": [
    {"severity": "high", "file_path": "app/routers/tasks.py", "description": "Raw SQL built from request input"}
  ],
  "suggestions": ["Use parameterized queries everywhere"],
  "security_score": 5,
  "approved": false,
  "affected_files": ["app/routers/tasks.py"],
  "patch_requests": [
    {"file": "app/routers/tasks.py", "reason": "SQL injection in list endpoint", "instructions": "Replace string formatting with bound parameters."}
  ]
}`

const approvedReportJSON = `{
  "issues": [],
  "suggestions": [],
  "security_score": 9,
  "approved": true,
  "affected_files": [],
  "patch_requests": []
}`

func TestCodeReviewerReview(t *testing.T) {
	ctx := context.Background()
	files := map[string]string{
		"app/main.py":          "app = FastAPI()",
		"app/routers/tasks.py": "def list_tasks(): ...",
	}

	t.Run("parses the verdict and tags patch requests", func(t *testing.T) {
		router := newFakeRouter("gemini-2.0-flash")
		router.script("gemini-2.0-flash", reviewReportJSON, nil)
		reviewer := NewCodeReviewer(router, "")

		report, err := reviewer.Review(ctx, files, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, 5, report.SecurityScore)
		assert.False(t, report.Approved)
		require.Len(t, report.Issues, 1)
		assert.Equal(t, "high", report.Issues[0].Severity)
		require.Len(t, report.PatchRequests, 1)
		assert.Equal(t, "reviewer flagged: SQL injection in list endpoint", report.PatchRequests[0].Reason)
		assert.Equal(t, "app/routers/tasks.py", report.PatchRequests[0].File)

		require.Len(t, router.calls, 1)
		req := router.calls[0].Req
		assert.True(t, req.JSONMode)
		assert.InDelta(t, 0.2, req.Temperature, 0.001)
		assert.Contains(t, req.System, "senior security engineer")
		assert.True(t, strings.HasPrefix(req.User, "Files to Review:\n"))
		assert.Contains(t, req.User, "\n--- app/main.py ---\napp = FastAPI()\n")
		assert.Contains(t, req.User, "\n--- app/routers/tasks.py ---\n")
	})

	t.Run("missing reason becomes the bare tag", func(t *testing.T) {
		router := newFakeRouter("gemini-2.0-flash")
		router.script("gemini-2.0-flash", `{"security_score": 6, "approved": false, "patch_requests": [{"file": "app/main.py"}]}`, nil)
		reviewer := NewCodeReviewer(router, "")

		report, err := reviewer.Review(ctx, files, nil, nil)

		require.NoError(t, err)
		require.Len(t, report.PatchRequests, 1)
		assert.Equal(t, "reviewer flagged", report.PatchRequests[0].Reason)
	})

	t.Run("sandbox evidence renders in the prompt", func(t *testing.T) {
		router := newFakeRouter("gemini-2.0-flash")
		router.script("gemini-2.0-flash", reviewReportJSON, nil)
		reviewer := NewCodeReviewer(router, "")

		evidence := &SandboxEvidence{
			Deployed:    true,
			HealthOK:    false,
			TestsTotal:  5,
			TestsPassed: 3,
			TestsFailed: 2,
			Failures:    []string{"POST /tasks/: expected 201, got 500", "GET /tasks/{id}: expected 200, got 404"},
			TestOutput:  "E   sqlalchemy.exc.OperationalError",
		}
		_, err := reviewer.Review(ctx, files, evidence, nil)

		require.NoError(t, err)
		user := router.calls[0].Req.User
		assert.Contains(t, user, "## Sandbox Test Results")
		assert.Contains(t, user, "- Deployed: ✅")
		assert.Contains(t, user, "- Health check: ❌")
		assert.Contains(t, user, "- Tests: 3/5 passed, 2 failed")
		assert.Contains(t, user, "Failed tests:\n  - POST /tasks/: expected 201, got 500")
		assert.Contains(t, user, "Pytest output (truncated):\n```\nE   sqlalchemy.exc.OperationalError\n```")
		assert.Contains(t, user, "Weight these real test results heavily in your security_score.")
	})

	t.Run("evidence budget caps failures and output", func(t *testing.T) {
		router := newFakeRouter("gemini-2.0-flash")
		router.script("gemini-2.0-flash", reviewReportJSON, nil)
		reviewer := NewCodeReviewer(router, "")

		var failures []string
		for i := range 12 {
			failures = append(failures, fmt.Sprintf("GET /tasks/: failure-%02d", i))
		}
		evidence := &SandboxEvidence{
			Deployed: true, HealthOK: true,
			TestsTotal: 12, TestsFailed: 12,
			Failures:   failures,
			TestOutput: strings.Repeat("x", 1200),
		}
		_, err := reviewer.Review(ctx, files, evidence, nil)

		require.NoError(t, err)
		user := router.calls[0].Req.User
		assert.Contains(t, user, "failure-09")
		assert.NotContains(t, user, "failure-10")
		assert.NotContains(t, user, "failure-11")
		assert.Contains(t, user, strings.Repeat("x", 1000))
		assert.NotContains(t, user, strings.Repeat("x", 1001))
	})

	t.Run("re-review never lowers the score", func(t *testing.T) {
		router := newFakeRouter("gemini-2.0-flash")
		lowered := strings.Replace(reviewReportJSON, `"security_score": 5`, `"security_score": 4`, 1)
		router.script("gemini-2.0-flash", lowered, nil)
		reviewer := NewCodeReviewer(router, "")

		prev := &ReviewReport{
			SecurityScore: 6,
			Issues: []Issue{
				{Severity: "high", FilePath: "app/routers/tasks.py", Description: "Raw SQL built from request input"},
			},
		}
		report, err := reviewer.Review(ctx, files, nil, prev)

		require.NoError(t, err)
		assert.Equal(t, 6, report.SecurityScore)

		user := router.calls[0].Req.User
		assert.Contains(t, user, "This is a RE-REVIEW after targeted fixes.")
		assert.Contains(t, user, "Previous security score: 6/10.")
		assert.Contains(t, user, "only re-flag if still present and unresolved")
		assert.Contains(t, user, "- [high] app/routers/tasks.py: Raw SQL built from request input")
	})

	t.Run("re-review keeps an improved score", func(t *testing.T) {
		router := newFakeRouter("gemini-2.0-flash")
		router.script("gemini-2.0-flash", approvedReportJSON, nil)
		reviewer := NewCodeReviewer(router, "")

		report, err := reviewer.Review(ctx, files, nil, &ReviewReport{SecurityScore: 6})

		require.NoError(t, err)
		assert.Equal(t, 9, report.SecurityScore)
		assert.True(t, report.Approved)
		assert.Empty(t, report.PatchRequests)
	})

	t.Run("quota on the primary walks the chain", func(t *testing.T) {
		router := newFakeRouter("gemini-2.0-flash", "gemini-2.5-flash")
		router.script("gemini-2.0-flash", "", quotaErr("gemini-2.0-flash"))
		router.script("gemini-2.5-flash", approvedReportJSON, nil)
		reviewer := NewCodeReviewer(router, "")

		report, err := reviewer.Review(ctx, files, nil, nil)

		require.NoError(t, err)
		assert.True(t, report.Approved)
		assert.Equal(t, []string{"gemini-2.0-flash", "gemini-2.5-flash"}, router.models())
	})

	t.Run("non-json verdict is an error", func(t *testing.T) {
		router := newFakeRouter("gemini-2.0-flash")
		router.script("gemini-2.0-flash", "Looks good to me!", nil)
		reviewer := NewCodeReviewer(router, "")

		_, err := reviewer.Review(ctx, files, nil, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid JSON")
	})
}
