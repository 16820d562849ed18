package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/pkg/llm"
)

const validSpecJSON = `{
  "project_name": "task-api",
  "description": "Task tracker backend",
  "spec_version": "1.0",
  "database": {"type": "postgres", "version": "15"},
  "auth": {"enabled": true, "type": "jwt", "access_token_expiry_minutes": 30},
  "entities": [
    {
      "name": "Task",
      "table_name": "tasks",
      "fields": [
        {"name": "id", "type": "uuid", "primary_key": true, "nullable": false, "unique": true},
        {"name": "title", "type": "string", "primary_key": false, "nullable": false, "unique": false}
      ],
      "crud": true
    }
  ]
}`

// missingPKSpecJSON parses but fails validation: no primary key field.
const missingPKSpecJSON = `{
  "project_name": "task-api",
  "spec_version": "1.0",
  "database": {"type": "postgres", "version": "15"},
  "auth": {"enabled": true, "type": "jwt", "access_token_expiry_minutes": 30},
  "entities": [
    {
      "name": "Task",
      "table_name": "tasks",
      "fields": [
        {"name": "title", "type": "string", "primary_key": false, "nullable": false, "unique": false}
      ],
      "crud": true
    }
  ]
}`

func TestSpecAgentGenerateSpec(t *testing.T) {
	ctx := context.Background()

	t.Run("valid spec on first attempt", func(t *testing.T) {
		router := newFakeRouter("gemini-2.0-flash", "gemini-2.5-flash")
		router.script("gemini-2.0-flash", validSpecJSON, nil)
		agent := NewSpecAgent(router)

		sp, model, err := agent.GenerateSpec(ctx, GenerateSpecParams{Prompt: "a task tracker"})

		require.NoError(t, err)
		assert.Equal(t, "gemini-2.0-flash", model)
		assert.Equal(t, "task-api", sp.ProjectName)
		require.Len(t, sp.Entities, 1)
		assert.Equal(t, "Task", sp.Entities[0].Name)

		require.Len(t, router.calls, 1)
		req := router.calls[0].Req
		assert.True(t, req.JSONMode)
		assert.InDelta(t, 0.1, req.Temperature, 0.001)
		assert.Contains(t, req.System, "backend specification generator")
		assert.Contains(t, req.System, `"primary_key": true, of type "uuid"`)
		assert.Equal(t, "USER REQUEST:\na task tracker", req.User)
	})

	t.Run("context and history render in order", func(t *testing.T) {
		router := newFakeRouter("gemini-2.0-flash")
		router.script("gemini-2.0-flash", validSpecJSON, nil)
		agent := NewSpecAgent(router)

		_, _, err := agent.GenerateSpec(ctx, GenerateSpecParams{
			Prompt:  "add a due date to tasks",
			Context: "Tasks must support deadlines per the PRD.",
			History: []Turn{
				{Role: "user", Content: "build a task tracker"},
				{Role: "agent", Content: "Generated task-api."},
			},
		})

		require.NoError(t, err)
		want := "CONTEXT FROM UPLOADED DOCUMENTS:\nTasks must support deadlines per the PRD.\n\n" +
			"PREVIOUS CONVERSATION HISTORY (FOR CONTEXT):\n" +
			"[USER]: build a task tracker\n\n" +
			"[AGENT]: Generated task-api.\n\n" +
			"USER REQUEST:\nadd a due date to tasks"
		assert.Equal(t, want, router.calls[0].Req.User)
	})

	t.Run("invalid json is re-prompted with the error", func(t *testing.T) {
		router := newFakeRouter("gemini-2.0-flash")
		router.script("gemini-2.0-flash", "here is your backend!", nil)
		router.script("gemini-2.0-flash", validSpecJSON, nil)
		agent := NewSpecAgent(router)

		sp, model, err := agent.GenerateSpec(ctx, GenerateSpecParams{Prompt: "a task tracker"})

		require.NoError(t, err)
		assert.Equal(t, "gemini-2.0-flash", model)
		assert.Equal(t, "task-api", sp.ProjectName)

		require.Len(t, router.calls, 2)
		retry := router.calls[1].Req.User
		assert.Contains(t, retry, "Your previous response was invalid JSON or did not match the schema.")
		assert.Contains(t, retry, "Please try again. Original request: a task tracker")
	})

	t.Run("validation failure feeds the retry prompt", func(t *testing.T) {
		router := newFakeRouter("gemini-2.0-flash")
		router.script("gemini-2.0-flash", missingPKSpecJSON, nil)
		router.script("gemini-2.0-flash", validSpecJSON, nil)
		agent := NewSpecAgent(router)

		_, _, err := agent.GenerateSpec(ctx, GenerateSpecParams{Prompt: "a task tracker"})

		require.NoError(t, err)
		require.Len(t, router.calls, 2)
		assert.Contains(t, router.calls[1].Req.User, "exactly one primary key field")
	})

	t.Run("fenced output is accepted", func(t *testing.T) {
		router := newFakeRouter("gemini-2.0-flash")
		router.script("gemini-2.0-flash", "```json\n"+validSpecJSON+"\n```", nil)
		agent := NewSpecAgent(router)

		sp, _, err := agent.GenerateSpec(ctx, GenerateSpecParams{Prompt: "a task tracker"})

		require.NoError(t, err)
		assert.Equal(t, "task-api", sp.ProjectName)
	})

	t.Run("empty completion is re-prompted, not fatal", func(t *testing.T) {
		router := newFakeRouter("gemini-2.0-flash")
		router.script("gemini-2.0-flash", "", emptyErr("gemini-2.0-flash"))
		router.script("gemini-2.0-flash", validSpecJSON, nil)
		agent := NewSpecAgent(router)

		sp, _, err := agent.GenerateSpec(ctx, GenerateSpecParams{Prompt: "a task tracker"})

		require.NoError(t, err)
		assert.Equal(t, "task-api", sp.ProjectName)
		assert.Len(t, router.calls, 2)
	})

	t.Run("persistent invalid output exhausts one model then the next serves", func(t *testing.T) {
		router := newFakeRouter("gemini-2.0-flash", "gemini-2.5-flash")
		for range 3 {
			router.script("gemini-2.0-flash", "not json", nil)
		}
		router.script("gemini-2.5-flash", validSpecJSON, nil)
		agent := NewSpecAgent(router)

		sp, model, err := agent.GenerateSpec(ctx, GenerateSpecParams{Prompt: "a task tracker"})

		require.NoError(t, err)
		assert.Equal(t, "gemini-2.5-flash", model)
		assert.Equal(t, "task-api", sp.ProjectName)
		assert.Equal(t, []string{
			"gemini-2.0-flash", "gemini-2.0-flash", "gemini-2.0-flash",
			"gemini-2.5-flash",
		}, router.models())
	})

	t.Run("quota exhaustion advances the chain without re-prompting", func(t *testing.T) {
		router := newFakeRouter("gemini-2.0-flash", "gemini-2.5-flash")
		router.script("gemini-2.0-flash", "", quotaErr("gemini-2.0-flash"))
		router.script("gemini-2.5-flash", validSpecJSON, nil)
		agent := NewSpecAgent(router)

		_, model, err := agent.GenerateSpec(ctx, GenerateSpecParams{Prompt: "a task tracker"})

		require.NoError(t, err)
		assert.Equal(t, "gemini-2.5-flash", model)
		assert.Equal(t, []string{"gemini-2.0-flash", "gemini-2.5-flash"}, router.models())
	})

	t.Run("chain start honors the requested model", func(t *testing.T) {
		router := newFakeRouter("gemini-2.0-flash", "gemini-2.5-flash", "gemini-2.5-pro")
		router.script("gemini-2.5-flash", validSpecJSON, nil)
		agent := NewSpecAgent(router)

		_, model, err := agent.GenerateSpec(ctx, GenerateSpecParams{
			Prompt: "a task tracker",
			Model:  "gemini-2.5-flash",
		})

		require.NoError(t, err)
		assert.Equal(t, "gemini-2.5-flash", model)
		assert.Equal(t, []string{"gemini-2.5-flash"}, router.models())
	})

	t.Run("unknown model fails before any call", func(t *testing.T) {
		router := newFakeRouter("gemini-2.0-flash")
		agent := NewSpecAgent(router)

		_, _, err := agent.GenerateSpec(ctx, GenerateSpecParams{
			Prompt: "a task tracker",
			Model:  "gpt-99",
		})

		require.Error(t, err)
		assert.Empty(t, router.calls)
	})

	t.Run("all models failing reports chain exhaustion", func(t *testing.T) {
		router := newFakeRouter("gemini-2.0-flash", "gemini-2.5-flash")
		router.script("gemini-2.0-flash", "", quotaErr("gemini-2.0-flash"))
		router.script("gemini-2.5-flash", "", terminalErr("gemini-2.5-flash"))
		agent := NewSpecAgent(router)

		_, _, err := agent.GenerateSpec(ctx, GenerateSpecParams{Prompt: "a task tracker"})

		require.Error(t, err)
		assert.ErrorIs(t, err, llm.ErrAllModelsExhausted)
		assert.ErrorIs(t, err, llm.ErrTerminal)
		assert.Contains(t, err.Error(), "gemini-2.5-flash")
	})
}
