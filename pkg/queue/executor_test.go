package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/project"
	"github.com/forgeworks/forge/ent/verificationrun"
	"github.com/forgeworks/forge/pkg/agent"
	"github.com/forgeworks/forge/pkg/archive"
	"github.com/forgeworks/forge/pkg/config"
	"github.com/forgeworks/forge/pkg/events"
	"github.com/forgeworks/forge/pkg/models"
	"github.com/forgeworks/forge/pkg/sandbox"
	"github.com/forgeworks/forge/pkg/spec"
	"github.com/forgeworks/forge/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFinisher records the project mutations the executor performs.
type fakeFinisher struct {
	project    *ent.Project
	markErr    error
	generating []string
	archives   map[string]string
	finished   map[string]finishCall
	failed     map[string]string
}

type finishCall struct {
	passed bool
	json   string
}

func newFakeFinisher(p *ent.Project) *fakeFinisher {
	return &fakeFinisher{
		project:  p,
		archives: map[string]string{},
		finished: map[string]finishCall{},
		failed:   map[string]string{},
	}
}

func (f *fakeFinisher) Get(_ context.Context, userID, projectID string) (*ent.Project, error) {
	if f.project == nil || f.project.ID != projectID || f.project.UserID != userID {
		return nil, errors.New("project not found")
	}
	return f.project, nil
}

func (f *fakeFinisher) MarkGenerating(_ context.Context, projectID string) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.generating = append(f.generating, projectID)
	return nil
}

func (f *fakeFinisher) SaveArchive(_ context.Context, projectID, zipPath string) error {
	f.archives[projectID] = zipPath
	return nil
}

func (f *fakeFinisher) FinishVerification(_ context.Context, projectID string, passed bool, verificationJSON string) error {
	f.finished[projectID] = finishCall{passed: passed, json: verificationJSON}
	return nil
}

func (f *fakeFinisher) Fail(_ context.Context, projectID, msg string) error {
	f.failed[projectID] = msg
	return nil
}

// countingStore wraps the real archive store to observe slot writes.
type countingStore struct {
	*storage.Store
	saves int
}

func (s *countingStore) Save(userID, projectID, srcPath string) (string, error) {
	s.saves++
	return s.Store.Save(userID, projectID, srcPath)
}

type verifyStep struct {
	report *sandbox.Report
	err    error
}

// scriptedVerifier returns canned steps in order, repeating the last.
type scriptedVerifier struct {
	steps []verifyStep
	calls int
}

func (v *scriptedVerifier) Verify(_ context.Context, _ *spec.Spec, _ string) (*sandbox.Report, error) {
	i := v.calls
	if i >= len(v.steps) {
		i = len(v.steps) - 1
	}
	v.calls++
	step := v.steps[i]
	return step.report, step.err
}

// scriptedFixer records every request batch and returns canned patches.
type scriptedFixer struct {
	fixes    []agent.FilePatch
	err      error
	requests [][]agent.PatchRequest
}

func (f *scriptedFixer) ProposeFixes(_ context.Context, _ *spec.Spec, _ map[string]string, reqs []agent.PatchRequest) (*agent.FixResult, error) {
	f.requests = append(f.requests, reqs)
	if f.err != nil {
		return nil, f.err
	}
	return &agent.FixResult{Analysis: "scripted", Fixes: f.fixes}, nil
}

// recordingPublisher captures every event the executor emits.
type recordingPublisher struct {
	statuses []events.ProjectStatusPayload
	stages   []events.StageStatusPayload
	runs     []events.RunStatusPayload
}

func (p *recordingPublisher) PublishProjectStatus(_ context.Context, _ string, payload events.ProjectStatusPayload) error {
	p.statuses = append(p.statuses, payload)
	return nil
}

func (p *recordingPublisher) PublishStageStatus(_ context.Context, _ string, payload events.StageStatusPayload) error {
	p.stages = append(p.stages, payload)
	return nil
}

func (p *recordingPublisher) PublishRunStatus(_ context.Context, _ string, payload events.RunStatusPayload) error {
	p.runs = append(p.runs, payload)
	return nil
}

func verifySpec() *spec.Spec {
	return &spec.Spec{
		ProjectName: "task-api",
		Description: "A task tracker backend.",
		SpecVersion: spec.SpecVersion,
		Database:    spec.DatabaseConfig{Type: spec.DatabaseKindPostgres, Version: spec.DatabaseVersion},
		Auth:        spec.AuthConfig{Enabled: false},
		Entities: []spec.Entity{{
			Name:      "Task",
			TableName: "tasks",
			CRUD:      true,
			Fields: []spec.Field{
				{Name: "id", Type: spec.TypeInteger, PrimaryKey: true},
				{Name: "title", Type: spec.TypeString},
				{Name: "done", Type: spec.TypeBoolean},
			},
		}},
	}
}

func passingReport() *sandbox.Report {
	return &sandbox.Report{
		Deployed: true,
		Healthy:  true,
		Endpoints: []models.EndpointResult{
			{Endpoint: "/tasks", Method: "GET", Passed: true},
			{Endpoint: "/tasks", Method: "POST", Passed: true},
		},
		TestsPassed: 2,
		TestsTotal:  2,
		ElapsedMS:   1200,
	}
}

func failingReport() *sandbox.Report {
	r := passingReport()
	r.Endpoints[1].Passed = false
	r.Endpoints[1].ErrorMessage = "expected 201, got 500"
	r.TestsPassed = 1
	r.TestsFailed = 1
	r.Failures = []string{"POST /tasks: expected 201, got 500"}
	return r
}

type executorEnv struct {
	finisher  *fakeFinisher
	store     *countingStore
	verifier  *scriptedVerifier
	fixer     *scriptedFixer
	publisher *recordingPublisher
	exec      *Executor
	run       *ent.VerificationRun
}

func newExecutorEnv(t *testing.T, kind verificationrun.Kind, payload string) *executorEnv {
	t.Helper()

	specJSON, err := json.Marshal(verifySpec())
	require.NoError(t, err)
	sj := string(specJSON)

	status := project.StatusAwaitingVerification
	if kind == verificationrun.KindRepair {
		status = project.StatusFailed
	}
	proj := &ent.Project{
		ID:          "proj-1",
		UserID:      "u1",
		ProjectName: "task-api",
		Prompt:      "Build a task API",
		Status:      status,
		SpecJSON:    &sj,
	}

	staging := t.TempDir()
	zipPath, err := archive.Assemble(staging, "task-api", map[string]string{
		"app/main.py":         "app = FastAPI()\n",
		"app/routers/task.py": "router = APIRouter()\n",
	})
	require.NoError(t, err)

	store := &countingStore{Store: storage.NewStore(t.TempDir())}
	_, err = store.Store.Save("u1", "proj-1", zipPath)
	require.NoError(t, err)

	run := &ent.VerificationRun{
		ID:        "run-1",
		ProjectID: "proj-1",
		UserID:    "u1",
		Kind:      kind,
		Status:    verificationrun.StatusRunning,
	}
	if payload != "" {
		run.Payload = &payload
	}

	env := &executorEnv{
		finisher:  newFakeFinisher(proj),
		store:     store,
		verifier:  &scriptedVerifier{},
		fixer:     &scriptedFixer{},
		publisher: &recordingPublisher{},
		run:       run,
	}

	cfg := config.DefaultSandboxConfig()
	cfg.ReviewPosition = config.ReviewDisabled
	cfg.MaxRepairAttempts = 3
	env.exec = NewExecutor(env.finisher, env.store, env.verifier, env.fixer, nil, cfg, staging, env.publisher)
	return env
}

func TestExecute_VerifyPasses(t *testing.T) {
	env := newExecutorEnv(t, verificationrun.KindVerify, "")
	env.verifier.steps = []verifyStep{{report: passingReport()}}

	result := env.exec.Execute(context.Background(), env.run)

	require.NotNil(t, result)
	assert.Equal(t, verificationrun.StatusCompleted, result.Status)
	assert.Nil(t, result.Error)

	call, ok := env.finisher.finished["proj-1"]
	require.True(t, ok, "verdict should land on the project")
	assert.True(t, call.passed)
	assert.Contains(t, call.json, `"passed": true`)

	// A plain verify never touches the stored archive or generation state.
	assert.Zero(t, env.store.saves)
	assert.Empty(t, env.finisher.generating)
	assert.Empty(t, env.finisher.archives)

	assert.Contains(t, result.ReportJSON, `"passed": true`)
	assert.Contains(t, result.ReportJSON, `"attempts": 1`)

	require.Len(t, env.publisher.stages, 2)
	assert.Equal(t, events.StageVerify, env.publisher.stages[0].Stage)
	assert.Equal(t, events.StageStatusStarted, env.publisher.stages[0].Status)
	assert.Equal(t, events.StageStatusCompleted, env.publisher.stages[1].Status)
	assert.Equal(t, "2/2 endpoint tests passed", env.publisher.stages[1].Message)

	require.Len(t, env.publisher.statuses, 1)
	assert.Equal(t, project.StatusCompleted, env.publisher.statuses[0].Status)

	require.Len(t, env.publisher.runs, 1)
	assert.Equal(t, 1, env.publisher.runs[0].Attempt)
}

func TestExecute_VerifyFailsWithoutProgress(t *testing.T) {
	env := newExecutorEnv(t, verificationrun.KindVerify, "")
	env.verifier.steps = []verifyStep{{report: failingReport()}}
	// The fixer proposes nothing, so the loop stops after one attempt.

	result := env.exec.Execute(context.Background(), env.run)

	assert.Equal(t, verificationrun.StatusCompleted, result.Status, "a failing verdict still completes the run")

	call := env.finisher.finished["proj-1"]
	assert.False(t, call.passed)
	assert.Contains(t, result.ReportJSON, `"passed": false`)
	assert.Zero(t, env.store.saves)

	require.Len(t, env.publisher.statuses, 1)
	assert.Equal(t, project.StatusFailed, env.publisher.statuses[0].Status)
	assert.Equal(t, "1/2 endpoint tests passed", env.publisher.statuses[0].Error)

	last := env.publisher.stages[len(env.publisher.stages)-1]
	assert.Equal(t, events.StageStatusFailed, last.Status)
}

func TestExecute_VerifyRepairsArchive(t *testing.T) {
	env := newExecutorEnv(t, verificationrun.KindVerify, "")
	env.verifier.steps = []verifyStep{
		{report: failingReport()},
		{report: passingReport()},
	}
	env.fixer.fixes = []agent.FilePatch{{
		File:    "app/routers/task.py",
		Reason:  "return 201 on create",
		Changes: "router = APIRouter()\n# create now returns 201\n",
	}}

	result := env.exec.Execute(context.Background(), env.run)

	assert.Equal(t, verificationrun.StatusCompleted, result.Status)
	assert.True(t, env.finisher.finished["proj-1"].passed)

	// The repaired archive replaced the stored slot in place.
	assert.Equal(t, 1, env.store.saves)
	stored, ok := env.store.Path("u1", "proj-1")
	require.True(t, ok)
	files, err := archive.Files(stored)
	require.NoError(t, err)
	assert.Contains(t, files["app/routers/task.py"], "201")

	// The slot path is stable, so the project row needs no archive update.
	assert.Empty(t, env.finisher.archives)

	assert.Contains(t, result.ReportJSON, `"repaired": true`)
	assert.Contains(t, result.ReportJSON, `"attempts": 2`)

	require.Len(t, env.publisher.runs, 2)
	assert.Equal(t, 1, env.publisher.runs[0].Attempt)
	assert.Equal(t, 2, env.publisher.runs[1].Attempt)
}

func TestExecute_RepairRun(t *testing.T) {
	payload, err := json.Marshal(models.AutoFixRequest{
		AttemptNumber: 2,
		FailedTests: []models.FailedTest{
			{Method: "POST", Endpoint: "/tasks", ErrorMessage: "expected 201, got 500"},
		},
	})
	require.NoError(t, err)

	env := newExecutorEnv(t, verificationrun.KindRepair, string(payload))
	env.verifier.steps = []verifyStep{{report: passingReport()}}
	env.fixer.fixes = []agent.FilePatch{{
		File:    "app/routers/task.py",
		Reason:  "return 201 on create",
		Changes: "router = APIRouter()\n# create now returns 201\n",
	}}

	result := env.exec.Execute(context.Background(), env.run)

	assert.Equal(t, verificationrun.StatusCompleted, result.Status)

	// Repair reuses the generation lifecycle on the project row.
	assert.Equal(t, []string{"proj-1"}, env.finisher.generating)
	assert.NotEmpty(t, env.finisher.archives["proj-1"])
	assert.True(t, env.finisher.finished["proj-1"].passed)

	// The seed pass received the client-reported failure.
	require.NotEmpty(t, env.fixer.requests)
	seed := env.fixer.requests[0]
	require.Len(t, seed, 1)
	assert.Equal(t, "app/routers/tasks.py", seed[0].File)
	assert.Contains(t, seed[0].Reason, "POST /tasks")
	assert.Contains(t, seed[0].Instructions, "expected 201, got 500")

	// The stored slot was refreshed even though the loop itself fixed nothing.
	assert.Equal(t, 1, env.store.saves)

	var statuses []project.Status
	for _, s := range env.publisher.statuses {
		statuses = append(statuses, s.Status)
	}
	assert.Equal(t, []project.Status{
		project.StatusGenerating,
		project.StatusAwaitingVerification,
		project.StatusCompleted,
	}, statuses)
}

func TestExecute_RepairPayloadUnparseable(t *testing.T) {
	env := newExecutorEnv(t, verificationrun.KindRepair, "{not json")
	env.verifier.steps = []verifyStep{{report: passingReport()}}

	result := env.exec.Execute(context.Background(), env.run)

	// A bad payload only skips the seed pass; the run still verifies.
	assert.Equal(t, verificationrun.StatusCompleted, result.Status)
	assert.Empty(t, env.fixer.requests)
	assert.True(t, env.finisher.finished["proj-1"].passed)
}

func TestExecute_SandboxSkipped(t *testing.T) {
	env := newExecutorEnv(t, verificationrun.KindVerify, "")
	env.verifier.steps = []verifyStep{{report: &sandbox.Report{
		Skipped:    true,
		SkipReason: "docker compose not available",
	}}}

	result := env.exec.Execute(context.Background(), env.run)

	assert.Equal(t, verificationrun.StatusFailed, result.Status)
	require.Error(t, result.Error)
	assert.Contains(t, result.Error.Error(), "sandbox unavailable")

	// The project is untouched and stays re-verifiable.
	assert.Empty(t, env.finisher.finished)
	assert.Empty(t, env.finisher.failed)

	last := env.publisher.stages[len(env.publisher.stages)-1]
	assert.Equal(t, events.StageStatusSkipped, last.Status)
	assert.Equal(t, "docker compose not available", last.Message)
}

func TestExecute_MissingArchive(t *testing.T) {
	env := newExecutorEnv(t, verificationrun.KindVerify, "")
	require.NoError(t, env.store.Delete("u1", "proj-1"))

	result := env.exec.Execute(context.Background(), env.run)

	assert.Equal(t, verificationrun.StatusFailed, result.Status)
	require.Error(t, result.Error)
	assert.Contains(t, result.Error.Error(), "no stored archive")
	assert.Zero(t, env.verifier.calls)
}

func TestExecute_CorruptStoredSpec(t *testing.T) {
	env := newExecutorEnv(t, verificationrun.KindVerify, "")
	bad := "{not json"
	env.finisher.project.SpecJSON = &bad

	result := env.exec.Execute(context.Background(), env.run)

	assert.Equal(t, verificationrun.StatusFailed, result.Status)
	require.Error(t, result.Error)
	assert.Contains(t, result.Error.Error(), "parsing stored spec")
}

func TestExecute_VerifyLoopErrorLeavesProject(t *testing.T) {
	env := newExecutorEnv(t, verificationrun.KindVerify, "")
	env.verifier.steps = []verifyStep{{err: errors.New("compose up crashed")}}

	result := env.exec.Execute(context.Background(), env.run)

	assert.Equal(t, verificationrun.StatusFailed, result.Status)
	require.Error(t, result.Error)

	// No verdict was reached, so the project keeps awaiting verification.
	assert.Empty(t, env.finisher.finished)
	assert.Empty(t, env.finisher.failed)
	assert.Empty(t, env.publisher.statuses)
}

func TestExecute_RepairLoopErrorRestoresFailed(t *testing.T) {
	env := newExecutorEnv(t, verificationrun.KindRepair, "")
	env.verifier.steps = []verifyStep{{err: errors.New("compose up crashed")}}

	result := env.exec.Execute(context.Background(), env.run)

	assert.Equal(t, verificationrun.StatusFailed, result.Status)
	assert.Contains(t, env.finisher.failed["proj-1"], "Repair did not finish")
	assert.Empty(t, env.finisher.finished)

	// Status trail: generating for the repair, failed on restore.
	var statuses []project.Status
	for _, s := range env.publisher.statuses {
		statuses = append(statuses, s.Status)
	}
	assert.Equal(t, []project.Status{project.StatusGenerating, project.StatusFailed}, statuses)
}

func TestExecute_CancelledContext(t *testing.T) {
	env := newExecutorEnv(t, verificationrun.KindVerify, "")
	env.verifier.steps = []verifyStep{{report: passingReport()}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := env.exec.Execute(ctx, env.run)

	assert.Equal(t, verificationrun.StatusCancelled, result.Status)
	assert.ErrorIs(t, result.Error, context.Canceled)
	assert.Empty(t, env.finisher.finished)
}

func TestNewExecutorPanics(t *testing.T) {
	cfg := config.DefaultSandboxConfig()
	store := &countingStore{Store: storage.NewStore(t.TempDir())}
	fin := newFakeFinisher(nil)
	v := &scriptedVerifier{}
	f := &scriptedFixer{}

	assert.PanicsWithValue(t, "project service cannot be nil", func() {
		NewExecutor(nil, store, v, f, nil, cfg, "staging", nil)
	})
	assert.PanicsWithValue(t, "archive store cannot be nil", func() {
		NewExecutor(fin, nil, v, f, nil, cfg, "staging", nil)
	})
	assert.PanicsWithValue(t, "verifier cannot be nil", func() {
		NewExecutor(fin, store, nil, f, nil, cfg, "staging", nil)
	})
	assert.PanicsWithValue(t, "fixer cannot be nil", func() {
		NewExecutor(fin, store, v, nil, nil, cfg, "staging", nil)
	})
	assert.PanicsWithValue(t, "sandbox config cannot be nil", func() {
		NewExecutor(fin, store, v, f, nil, nil, "staging", nil)
	})
	assert.PanicsWithValue(t, "staging directory required", func() {
		NewExecutor(fin, store, v, f, nil, cfg, "", nil)
	})
}

func TestRouterFileForEndpoint(t *testing.T) {
	tests := []struct {
		endpoint string
		want     string
	}{
		{"/tasks", "app/routers/tasks.py"},
		{"/tasks/5", "app/routers/tasks.py"},
		{"tasks", "app/routers/tasks.py"},
		{"/auth/token", "app/auth.py"},
		{"/health", "app/main.py"},
		{"/", "app/main.py"},
		{"", "app/main.py"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, routerFileForEndpoint(tt.endpoint), "endpoint %q", tt.endpoint)
	}
}

func TestPatchRequestsFromFailures(t *testing.T) {
	reqs := patchRequestsFromFailures([]models.FailedTest{
		{Method: "POST", Endpoint: "/tasks", ErrorMessage: "expected 201, got 500"},
		{Method: "GET", Endpoint: ""},
	})

	require.Len(t, reqs, 1, "failures without an endpoint are dropped")
	assert.Equal(t, "app/routers/tasks.py", reqs[0].File)
	assert.Contains(t, reqs[0].Reason, "POST /tasks")
	assert.Contains(t, reqs[0].Instructions, "expected 201, got 500")
}
