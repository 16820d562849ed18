package e2e

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// specJSONNamed derives a spec response with a distinct project name so
// concurrent generations stay tellable apart.
func specJSONNamed(name string) string {
	return strings.ReplaceAll(TodoSpecJSON, "todo-api", name)
}

// TestConcurrentGenerations runs three prompt generations in parallel
// against one instance and expects three distinct projects, each with
// its own archive.
func TestConcurrentGenerations(t *testing.T) {
	app := NewTestApp(t)
	for i := 0; i < 3; i++ {
		app.LLM.AddSequential(ScriptEntry{Response: specJSONNamed("concurrent-api")})
	}
	token := app.RegisterUser(t, "concurrent@example.com")

	var wg sync.WaitGroup
	ids := make([]string, 3)
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp := app.GenerateFromPrompt(t, token, "Build a todo API with tasks", true)
			ids[i] = resp["project_id"].(string)
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, id := range ids {
		require.NotEmpty(t, id)
		assert.False(t, seen[id], "project id %s returned twice", id)
		seen[id] = true

		proj := app.QueryProject(t, id)
		assert.Equal(t, "awaiting_verification", string(proj.Status))
		assert.NotEmpty(t, deref(proj.ZipPath))
	}
	assert.Equal(t, 3, app.LLM.CallCount())
}

// TestQueueDrainsBacklog enqueues three verifications against a single
// worker and expects FIFO processing to land all three verdicts.
func TestQueueDrainsBacklog(t *testing.T) {
	app := NewTestApp(t, WithWorkerCount(1))
	for i := 0; i < 3; i++ {
		app.LLM.AddSequential(ScriptEntry{Response: specJSONNamed("backlog-api")})
		app.Verifier.AddReport(PassingReport())
	}
	token := app.RegisterUser(t, "backlog@example.com")

	var ids []string
	for i := 0; i < 3; i++ {
		resp := app.GenerateFromPrompt(t, token, "Build a todo API with tasks", false)
		ids = append(ids, resp["project_id"].(string))
	}

	for _, id := range ids {
		status := app.WaitForProjectStatus(t, id, "completed", "failed")
		assert.Equal(t, "completed", status)

		runs := app.RunsForProject(t, id)
		require.Len(t, runs, 1)
		assert.Equal(t, "completed", string(runs[0].Status))
		assert.NotEmpty(t, deref(runs[0].PodID))
	}
	require.Len(t, app.Verifier.Calls(), 3)
}

// TestMultiReplicaClaiming runs two worker pools over one schema. Every
// run must execute exactly once: the claim query's row lock keeps the
// replicas from double-processing.
func TestMultiReplicaClaiming(t *testing.T) {
	primary := NewTestApp(t, WithPodID("pod-a"))
	secondary := NewTestApp(t,
		WithDBClient(primary.DBClient),
		WithPodID("pod-b"))

	for i := 0; i < 4; i++ {
		primary.LLM.AddSequential(ScriptEntry{Response: specJSONNamed("replica-api")})
		// Either replica may claim; both verifiers must be able to pass
		// whatever they get.
		primary.Verifier.AddReport(PassingReport())
		secondary.Verifier.AddReport(PassingReport())
	}
	token := primary.RegisterUser(t, "replicas@example.com")

	var ids []string
	for i := 0; i < 4; i++ {
		resp := primary.GenerateFromPrompt(t, token, "Build a todo API with tasks", false)
		ids = append(ids, resp["project_id"].(string))
	}

	pods := map[string]bool{}
	for _, id := range ids {
		status := primary.WaitForProjectStatus(t, id, "completed", "failed")
		assert.Equal(t, "completed", status)

		runs := primary.RunsForProject(t, id)
		require.Len(t, runs, 1, "a run must be claimed exactly once")
		assert.Equal(t, "completed", string(runs[0].Status))
		pods[deref(runs[0].PodID)] = true
	}
	for pod := range pods {
		assert.Contains(t, []string{"pod-a", "pod-b"}, pod)
	}

	// Every scripted attempt that ran came off exactly one replica.
	total := len(primary.Verifier.Calls()) + len(secondary.Verifier.Calls())
	assert.Equal(t, 4, total)
}
