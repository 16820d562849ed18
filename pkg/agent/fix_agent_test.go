package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/pkg/spec"
)

const fixResultJSON = `{
  "analysis": "The tasks router references a schema that was never imported.",
  "fixes": [
    {
      "file": "app/routers/tasks.py",
      "reason": "Missing import for TaskCreate",
      "changes": "from app.schemas import TaskCreate\n"
    }
  ]
}`

func testSpec(t *testing.T) *spec.Spec {
	t.Helper()
	sp, err := spec.Parse(validSpecJSON)
	require.NoError(t, err)
	sp.Normalize()
	require.NoError(t, sp.Validate())
	return sp
}

func TestFixAgentProposeFixes(t *testing.T) {
	ctx := context.Background()
	requests := []PatchRequest{{
		File:         "app/routers/tasks.py",
		Reason:       "traceback: NameError: name 'TaskCreate' is not defined",
		Instructions: "Import the missing schema.",
	}}

	t.Run("proposes fixes from patch requests", func(t *testing.T) {
		router := newFakeRouter("gemini-2.0-flash")
		router.script("gemini-2.0-flash", fixResultJSON, nil)
		agent := NewFixAgent(router, "")

		files := map[string]string{
			"app/routers/tasks.py": "def list_tasks(): ...",
			"app/models.py":        strings.Repeat("x", 1200),
			"tests/test_smoke.py":  "def test_health(): ...",
			"requirements.txt":     "fastapi",
		}
		result, err := agent.ProposeFixes(ctx, testSpec(t), files, requests)

		require.NoError(t, err)
		assert.Contains(t, result.Analysis, "never imported")
		require.Len(t, result.Fixes, 1)
		assert.Equal(t, "app/routers/tasks.py", result.Fixes[0].File)
		assert.Contains(t, result.Fixes[0].Changes, "from app.schemas import TaskCreate")

		require.Len(t, router.calls, 1)
		req := router.calls[0].Req
		assert.True(t, req.JSONMode)
		assert.InDelta(t, 0.2, req.Temperature, 0.001)
		assert.Equal(t, 8192, req.MaxTokens)
		assert.Contains(t, req.System, "backend debugging agent")

		user := req.User
		assert.Contains(t, user, "BACKEND SPECIFICATION:")
		assert.Contains(t, user, `"project_name": "task-api"`)
		assert.Contains(t, user, "PATCH REQUESTS:\n- app/routers/tasks.py: traceback: NameError")
		assert.Contains(t, user, "  Import the missing schema.")
		assert.Contains(t, user, "FILE: app/routers/tasks.py\n```python\ndef list_tasks(): ...\n```")
		assert.Contains(t, user, "Please analyze these failures and provide fixes.")
		assert.NotContains(t, user, "tests/test_smoke.py")
		assert.NotContains(t, user, "requirements.txt")
	})

	t.Run("long files are truncated", func(t *testing.T) {
		router := newFakeRouter("gemini-2.0-flash")
		router.script("gemini-2.0-flash", fixResultJSON, nil)
		agent := NewFixAgent(router, "")

		files := map[string]string{"app/routers/tasks.py": strings.Repeat("x", 1200)}
		_, err := agent.ProposeFixes(ctx, testSpec(t), files, requests)

		require.NoError(t, err)
		user := router.calls[0].Req.User
		assert.Contains(t, user, strings.Repeat("x", 1000)+"...")
		assert.NotContains(t, user, strings.Repeat("x", 1001))
	})

	t.Run("quota exhaustion switches to the groq model", func(t *testing.T) {
		router := newFakeRouter("gemini-2.0-flash")
		router.script("gemini-2.0-flash", "", quotaErr("gemini-2.0-flash"))
		router.script("llama-3.3-70b-versatile", fixResultJSON, nil)
		agent := NewFixAgent(router, "")

		result, err := agent.ProposeFixes(ctx, testSpec(t), map[string]string{}, requests)

		require.NoError(t, err)
		assert.Len(t, result.Fixes, 1)
		assert.Equal(t, []string{"gemini-2.0-flash", "llama-3.3-70b-versatile"}, router.models())
		assert.Equal(t, router.calls[0].Req.User, router.calls[1].Req.User)
	})

	t.Run("terminal errors do not switch providers", func(t *testing.T) {
		router := newFakeRouter("gemini-2.0-flash")
		router.script("gemini-2.0-flash", "", terminalErr("gemini-2.0-flash"))
		agent := NewFixAgent(router, "")

		_, err := agent.ProposeFixes(ctx, testSpec(t), map[string]string{}, requests)

		require.Error(t, err)
		assert.Equal(t, []string{"gemini-2.0-flash"}, router.models())
	})

	t.Run("fenced response is accepted", func(t *testing.T) {
		router := newFakeRouter("gemini-2.0-flash")
		router.script("gemini-2.0-flash", "```json\n"+fixResultJSON+"\n```", nil)
		agent := NewFixAgent(router, "")

		result, err := agent.ProposeFixes(ctx, testSpec(t), map[string]string{}, requests)

		require.NoError(t, err)
		assert.Len(t, result.Fixes, 1)
	})

	t.Run("non-json response is an error", func(t *testing.T) {
		router := newFakeRouter("gemini-2.0-flash")
		router.script("gemini-2.0-flash", "I fixed it for you!", nil)
		agent := NewFixAgent(router, "")

		_, err := agent.ProposeFixes(ctx, testSpec(t), map[string]string{}, requests)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid JSON")
	})

	t.Run("no patch requests is an error", func(t *testing.T) {
		router := newFakeRouter("gemini-2.0-flash")
		agent := NewFixAgent(router, "")

		_, err := agent.ProposeFixes(ctx, testSpec(t), map[string]string{}, nil)

		require.Error(t, err)
		assert.Empty(t, router.calls)
	})
}

func TestRelevantFiles(t *testing.T) {
	files := map[string]string{
		"app/auth.py":          "a",
		"app/database.py":      "b",
		"app/main.py":          "c",
		"app/models.py":        "d",
		"app/routers/tasks.py": "e",
		"app/schemas.py":       "f",
		"tests/test_smoke.py":  "g",
		"requirements.txt":     "h",
	}

	t.Run("requested files come first, capped at five", func(t *testing.T) {
		picked := relevantFiles(files, []PatchRequest{
			{File: "app/routers/tasks.py", Reason: "traceback"},
			{File: "app/missing.py", Reason: "stale request"},
		})
		assert.Equal(t, []string{
			"app/routers/tasks.py",
			"app/auth.py",
			"app/database.py",
			"app/main.py",
			"app/models.py",
		}, picked)
	})

	t.Run("requested non-python files are shown", func(t *testing.T) {
		picked := relevantFiles(files, []PatchRequest{
			{File: "requirements.txt", Reason: "missing dependency"},
		})
		require.NotEmpty(t, picked)
		assert.Equal(t, "requirements.txt", picked[0])
	})

	t.Run("test files stay out unless requested", func(t *testing.T) {
		picked := relevantFiles(files, []PatchRequest{
			{File: "tests/test_smoke.py", Reason: "assertion wrong"},
		})
		assert.Equal(t, "tests/test_smoke.py", picked[0])
		assert.NotContains(t, picked[1:], "tests/test_smoke.py")
	})
}
