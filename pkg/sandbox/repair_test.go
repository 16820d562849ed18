package sandbox

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/pkg/agent"
	"github.com/forgeworks/forge/pkg/config"
	"github.com/forgeworks/forge/pkg/models"
	"github.com/forgeworks/forge/pkg/spec"
)

type verifyStep struct {
	report *Report
	err    error
}

// scriptedVerifier plays back a fixed sequence of reports; the last
// step repeats if called again.
type scriptedVerifier struct {
	steps []verifyStep
	calls int
	zips  []string
}

func (v *scriptedVerifier) Verify(_ context.Context, _ *spec.Spec, zipPath string) (*Report, error) {
	v.zips = append(v.zips, zipPath)
	i := v.calls
	if i >= len(v.steps) {
		i = len(v.steps) - 1
	}
	v.calls++
	return v.steps[i].report, v.steps[i].err
}

type fixStep struct {
	result *agent.FixResult
	err    error
}

type scriptedFixer struct {
	steps    []fixStep
	calls    int
	requests [][]agent.PatchRequest
}

func (f *scriptedFixer) ProposeFixes(_ context.Context, _ *spec.Spec, _ map[string]string, reqs []agent.PatchRequest) (*agent.FixResult, error) {
	f.requests = append(f.requests, reqs)
	i := f.calls
	if i >= len(f.steps) {
		i = len(f.steps) - 1
	}
	f.calls++
	return f.steps[i].result, f.steps[i].err
}

type reviewStep struct {
	report *agent.ReviewReport
	err    error
}

type scriptedReviewer struct {
	steps    []reviewStep
	calls    int
	evidence []*agent.SandboxEvidence
	prevs    []*agent.ReviewReport
}

func (r *scriptedReviewer) Review(_ context.Context, _ map[string]string, evidence *agent.SandboxEvidence, prev *agent.ReviewReport) (*agent.ReviewReport, error) {
	r.evidence = append(r.evidence, evidence)
	r.prevs = append(r.prevs, prev)
	i := r.calls
	if i >= len(r.steps) {
		i = len(r.steps) - 1
	}
	r.calls++
	return r.steps[i].report, r.steps[i].err
}

func passingReport() *Report {
	return &Report{
		Deployed: true,
		Healthy:  true,
		Endpoints: []models.EndpointResult{
			{Method: "GET", Endpoint: "/health", Passed: true},
		},
	}
}

func tracebackReport() *Report {
	return &Report{
		Deployed:         true,
		Healthy:          false,
		Output:           "Traceback (most recent call last): ...",
		TracebackFile:    "app/models.py",
		TracebackLine:    4,
		TracebackSummary: "NameError: name 'Field' is not defined",
	}
}

func loopConfig() *config.SandboxConfig {
	cfg := config.DefaultSandboxConfig()
	cfg.MaxRepairAttempts = 3
	cfg.MaxReviewIterations = 5
	cfg.TrustScoreThreshold = 7
	cfg.ReviewPosition = config.ReviewDisabled
	return cfg
}

func sourceFiles() map[string]string {
	return map[string]string{
		"app/main.py":      "from fastapi import FastAPI\napp = FastAPI()\n",
		"app/models.py":    "class Task: pass\n",
		"requirements.txt": "fastapi\n",
	}
}

func noFix() *agent.FixResult { return &agent.FixResult{} }

func TestLoop_FirstAttemptPasses(t *testing.T) {
	verifier := &scriptedVerifier{steps: []verifyStep{{report: passingReport()}}}
	fixer := &scriptedFixer{steps: []fixStep{{result: noFix()}}}
	loop := NewLoop(verifier, fixer, nil, loopConfig(), t.TempDir())

	out, err := loop.Run(context.Background(), plainSpec(), sourceFiles())
	require.NoError(t, err)

	assert.Equal(t, 1, out.Attempts)
	assert.False(t, out.Repaired)
	assert.True(t, out.Report.Passed())
	assert.Zero(t, fixer.calls)

	_, statErr := os.Stat(out.ZipPath)
	assert.NoError(t, statErr, "final archive must exist")
}

func TestLoop_RepairsThenPasses(t *testing.T) {
	verifier := &scriptedVerifier{steps: []verifyStep{
		{report: tracebackReport()},
		{report: passingReport()},
	}}
	fixer := &scriptedFixer{steps: []fixStep{{result: &agent.FixResult{
		Analysis: "missing import",
		Fixes: []agent.FilePatch{
			{File: "app/models.py", Reason: "add import", Changes: "from sqlmodel import Field\nclass Task: pass\n"},
		},
	}}}}
	loop := NewLoop(verifier, fixer, nil, loopConfig(), t.TempDir())

	var attempts []int
	var passes []bool
	loop.OnAttempt = func(attempt int, report *Report) {
		attempts = append(attempts, attempt)
		passes = append(passes, report.Passed())
	}

	input := sourceFiles()
	out, err := loop.Run(context.Background(), plainSpec(), input)
	require.NoError(t, err)

	assert.Equal(t, 2, out.Attempts)
	assert.True(t, out.Repaired)
	assert.True(t, out.Report.Passed())
	assert.Equal(t, []int{1, 2}, attempts)
	assert.Equal(t, []bool{false, true}, passes)

	// The fixer saw the traceback-derived request first.
	require.Len(t, fixer.requests, 1)
	require.NotEmpty(t, fixer.requests[0])
	assert.Equal(t, "app/models.py", fixer.requests[0][0].File)
	assert.Equal(t, "Sandbox runtime error: NameError: name 'Field' is not defined", fixer.requests[0][0].Reason)

	// The fix landed in the outcome, not in the caller's map.
	assert.Contains(t, out.Files["app/models.py"], "from sqlmodel import Field")
	assert.Equal(t, "class Task: pass\n", input["app/models.py"])

	// The second attempt ran against a freshly assembled archive.
	require.Len(t, verifier.zips, 2)
	assert.NotEqual(t, verifier.zips[0], verifier.zips[1])
	assert.Equal(t, verifier.zips[1], out.ZipPath)
}

func TestLoop_StopsWhenFixChangesNothing(t *testing.T) {
	verifier := &scriptedVerifier{steps: []verifyStep{{report: tracebackReport()}}}
	fixer := &scriptedFixer{steps: []fixStep{{result: &agent.FixResult{
		Fixes: []agent.FilePatch{
			{File: "app/models.py", Changes: "class Task: pass\n"}, // identical
			{File: "", Changes: "ignored"},
			{File: "app/main.py", Changes: ""},
		},
	}}}}
	loop := NewLoop(verifier, fixer, nil, loopConfig(), t.TempDir())

	out, err := loop.Run(context.Background(), plainSpec(), sourceFiles())
	require.NoError(t, err)

	assert.Equal(t, 1, out.Attempts)
	assert.Equal(t, 1, verifier.calls)
	assert.False(t, out.Repaired)
	assert.False(t, out.Report.Passed())
}

func TestLoop_AttemptsExhausted(t *testing.T) {
	verifier := &scriptedVerifier{steps: []verifyStep{{report: tracebackReport()}}}
	fixer := &scriptedFixer{steps: []fixStep{
		{result: &agent.FixResult{Fixes: []agent.FilePatch{{File: "app/models.py", Changes: "attempt 2\n"}}}},
		{result: &agent.FixResult{Fixes: []agent.FilePatch{{File: "app/models.py", Changes: "attempt 3\n"}}}},
	}}
	loop := NewLoop(verifier, fixer, nil, loopConfig(), t.TempDir())

	out, err := loop.Run(context.Background(), plainSpec(), sourceFiles())
	require.NoError(t, err)

	assert.Equal(t, 3, out.Attempts)
	assert.Equal(t, 3, verifier.calls)
	assert.Equal(t, 2, fixer.calls, "no fix is requested after the last attempt")
	assert.True(t, out.Repaired)
	assert.False(t, out.Report.Passed())
	assert.Equal(t, "attempt 3\n", out.Files["app/models.py"])
}

func TestLoop_SkippedVerificationStops(t *testing.T) {
	verifier := &scriptedVerifier{steps: []verifyStep{
		{report: &Report{Skipped: true, SkipReason: "Docker is not available on this machine"}},
	}}
	fixer := &scriptedFixer{steps: []fixStep{{result: noFix()}}}
	reviewer := &scriptedReviewer{steps: []reviewStep{{report: &agent.ReviewReport{Approved: true, SecurityScore: 9}}}}

	cfg := loopConfig()
	cfg.ReviewPosition = config.ReviewPostSandbox
	loop := NewLoop(verifier, fixer, reviewer, cfg, t.TempDir())

	out, err := loop.Run(context.Background(), plainSpec(), sourceFiles())
	require.NoError(t, err)

	assert.Equal(t, 1, out.Attempts)
	assert.True(t, out.Report.Skipped)
	assert.Zero(t, fixer.calls)
	assert.Zero(t, reviewer.calls, "review needs sandbox evidence; a skipped run has none")
	assert.Nil(t, out.Review)
}

func TestLoop_VerifierErrorReturnsPartialOutcome(t *testing.T) {
	verifier := &scriptedVerifier{steps: []verifyStep{{err: errors.New("docker daemon hung up")}}}
	fixer := &scriptedFixer{steps: []fixStep{{result: noFix()}}}
	loop := NewLoop(verifier, fixer, nil, loopConfig(), t.TempDir())

	out, err := loop.Run(context.Background(), plainSpec(), sourceFiles())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "docker daemon hung up")

	require.NotNil(t, out)
	assert.Nil(t, out.Report)
	assert.NotEmpty(t, out.ZipPath, "assembled archive survives the failure")
}

func TestLoop_ContextCancelled(t *testing.T) {
	verifier := &scriptedVerifier{steps: []verifyStep{{report: passingReport()}}}
	fixer := &scriptedFixer{steps: []fixStep{{result: noFix()}}}
	loop := NewLoop(verifier, fixer, nil, loopConfig(), t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := loop.Run(ctx, plainSpec(), sourceFiles())
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, out.Attempts)
	assert.Zero(t, verifier.calls)
}

func TestLoop_PostReviewIteratesToApproval(t *testing.T) {
	verifier := &scriptedVerifier{steps: []verifyStep{{report: passingReport()}}}
	flagged := &agent.ReviewReport{
		SecurityScore: 5,
		PatchRequests: []agent.PatchRequest{
			{File: "app/auth.py", Reason: "reviewer flagged hardcoded secret", Instructions: "load the key from the environment"},
		},
	}
	approved := &agent.ReviewReport{Approved: true, SecurityScore: 8}
	reviewer := &scriptedReviewer{steps: []reviewStep{{report: flagged}, {report: approved}}}
	fixer := &scriptedFixer{steps: []fixStep{{result: &agent.FixResult{
		Fixes: []agent.FilePatch{{File: "app/auth.py", Changes: "SECRET_KEY = os.environ['SECRET_KEY']\n"}},
	}}}}

	cfg := loopConfig()
	cfg.ReviewPosition = config.ReviewPostSandbox
	loop := NewLoop(verifier, fixer, reviewer, cfg, t.TempDir())

	var iterations []int
	loop.OnReview = func(iteration int, _ *agent.ReviewReport) {
		iterations = append(iterations, iteration)
	}

	out, err := loop.Run(context.Background(), plainSpec(), sourceFiles())
	require.NoError(t, err)

	assert.Equal(t, 2, reviewer.calls)
	assert.Equal(t, []int{1, 2}, iterations)
	require.NotNil(t, out.Review)
	assert.True(t, out.Review.Approved)
	assert.Equal(t, 8, out.Review.SecurityScore)
	assert.True(t, out.Repaired)
	assert.Contains(t, out.Files["app/auth.py"], "os.environ")

	// First review is fresh; the second is a delta against the first.
	require.Len(t, reviewer.prevs, 2)
	assert.Nil(t, reviewer.prevs[0])
	assert.Same(t, flagged, reviewer.prevs[1])

	// Post-sandbox review always sees deployment evidence.
	require.Len(t, reviewer.evidence, 2)
	require.NotNil(t, reviewer.evidence[0])
	assert.True(t, reviewer.evidence[0].Deployed)

	// The review fix invalidated the archive, so it was rebuilt.
	require.Len(t, verifier.zips, 1)
	assert.NotEqual(t, verifier.zips[0], out.ZipPath)
}

func TestLoop_PreReviewRunsWithoutEvidence(t *testing.T) {
	verifier := &scriptedVerifier{steps: []verifyStep{{report: passingReport()}}}
	fixer := &scriptedFixer{steps: []fixStep{{result: noFix()}}}
	reviewer := &scriptedReviewer{steps: []reviewStep{{report: &agent.ReviewReport{Approved: true, SecurityScore: 9}}}}

	cfg := loopConfig()
	cfg.ReviewPosition = config.ReviewPreSandbox
	loop := NewLoop(verifier, fixer, reviewer, cfg, t.TempDir())

	out, err := loop.Run(context.Background(), plainSpec(), sourceFiles())
	require.NoError(t, err)

	assert.Equal(t, 1, reviewer.calls)
	require.Len(t, reviewer.evidence, 1)
	assert.Nil(t, reviewer.evidence[0], "pre-sandbox review has no deployment evidence")
	assert.Equal(t, 1, verifier.calls)
	require.NotNil(t, out.Review)
	assert.True(t, out.Review.Approved)
}

func TestLoop_ReviewBothThreadsVerdictAcrossPhases(t *testing.T) {
	verifier := &scriptedVerifier{steps: []verifyStep{{report: passingReport()}}}
	fixer := &scriptedFixer{steps: []fixStep{{result: noFix()}}}
	preVerdict := &agent.ReviewReport{SecurityScore: 4}
	postVerdict := &agent.ReviewReport{Approved: true, SecurityScore: 8}
	reviewer := &scriptedReviewer{steps: []reviewStep{{report: preVerdict}, {report: postVerdict}}}

	cfg := loopConfig()
	cfg.ReviewPosition = config.ReviewBoth
	loop := NewLoop(verifier, fixer, reviewer, cfg, t.TempDir())

	out, err := loop.Run(context.Background(), plainSpec(), sourceFiles())
	require.NoError(t, err)

	require.Equal(t, 2, reviewer.calls)
	assert.Nil(t, reviewer.prevs[0])
	assert.Same(t, preVerdict, reviewer.prevs[1], "post phase is a delta over the pre verdict")
	assert.Nil(t, reviewer.evidence[0])
	assert.NotNil(t, reviewer.evidence[1])
	assert.Same(t, postVerdict, out.Review)
}

func TestLoop_ReviewStopsAtMaxIterations(t *testing.T) {
	verifier := &scriptedVerifier{steps: []verifyStep{{report: passingReport()}}}
	flagged := &agent.ReviewReport{
		SecurityScore: 5,
		PatchRequests: []agent.PatchRequest{{File: "app/auth.py", Reason: "reviewer flagged weak hashing"}},
	}
	reviewer := &scriptedReviewer{steps: []reviewStep{{report: flagged}}}

	revision := 0
	fixer := &countingFixer{next: func() *agent.FixResult {
		revision++
		return &agent.FixResult{Fixes: []agent.FilePatch{
			{File: "app/auth.py", Changes: fmt.Sprintf("revision %d\n", revision)},
		}}
	}}

	cfg := loopConfig()
	cfg.ReviewPosition = config.ReviewPostSandbox
	cfg.MaxReviewIterations = 2
	loop := NewLoop(verifier, fixer, reviewer, cfg, t.TempDir())

	out, err := loop.Run(context.Background(), plainSpec(), sourceFiles())
	require.NoError(t, err)

	assert.Equal(t, 2, reviewer.calls)
	assert.Equal(t, 1, revision, "no revision after the final iteration")
	assert.Same(t, flagged, out.Review)
	assert.False(t, out.Review.Approved)
}

// countingFixer generates a fresh fix per call.
type countingFixer struct {
	next  func() *agent.FixResult
	calls int
}

func (f *countingFixer) ProposeFixes(context.Context, *spec.Spec, map[string]string, []agent.PatchRequest) (*agent.FixResult, error) {
	f.calls++
	return f.next(), nil
}

func TestLoop_ReviewErrorKeepsPreviousVerdict(t *testing.T) {
	verifier := &scriptedVerifier{steps: []verifyStep{{report: passingReport()}}}
	fixer := &scriptedFixer{steps: []fixStep{{result: noFix()}}}
	reviewer := &scriptedReviewer{steps: []reviewStep{{err: errors.New("model overloaded")}}}

	cfg := loopConfig()
	cfg.ReviewPosition = config.ReviewPostSandbox
	loop := NewLoop(verifier, fixer, reviewer, cfg, t.TempDir())

	out, err := loop.Run(context.Background(), plainSpec(), sourceFiles())
	require.NoError(t, err, "review failures do not fail the run")
	assert.Nil(t, out.Review)
	assert.True(t, out.Report.Passed())
}

func TestLoop_ReviewCancellationPropagates(t *testing.T) {
	verifier := &scriptedVerifier{steps: []verifyStep{{report: passingReport()}}}
	fixer := &scriptedFixer{steps: []fixStep{{result: noFix()}}}
	reviewer := &scriptedReviewer{steps: []reviewStep{{err: fmt.Errorf("review: %w", context.Canceled)}}}

	cfg := loopConfig()
	cfg.ReviewPosition = config.ReviewPostSandbox
	loop := NewLoop(verifier, fixer, reviewer, cfg, t.TempDir())

	_, err := loop.Run(context.Background(), plainSpec(), sourceFiles())
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoop_ReviewDisabledWithoutReviewer(t *testing.T) {
	verifier := &scriptedVerifier{steps: []verifyStep{{report: passingReport()}}}
	fixer := &scriptedFixer{steps: []fixStep{{result: noFix()}}}

	cfg := loopConfig()
	cfg.ReviewPosition = config.ReviewBoth // ignored: no reviewer wired
	loop := NewLoop(verifier, fixer, nil, cfg, t.TempDir())

	out, err := loop.Run(context.Background(), plainSpec(), sourceFiles())
	require.NoError(t, err)
	assert.Nil(t, out.Review)
}

func TestNewLoop_Panics(t *testing.T) {
	verifier := &scriptedVerifier{}
	fixer := &scriptedFixer{}
	cfg := loopConfig()

	assert.Panics(t, func() { NewLoop(nil, fixer, nil, cfg, "/tmp/x") })
	assert.Panics(t, func() { NewLoop(verifier, nil, nil, cfg, "/tmp/x") })
	assert.Panics(t, func() { NewLoop(verifier, fixer, nil, nil, "/tmp/x") })
	assert.Panics(t, func() { NewLoop(verifier, fixer, nil, cfg, "") })
}

func TestApplyFixes(t *testing.T) {
	files := map[string]string{"a.py": "old", "b.py": "same"}
	applied := ApplyFixes(files, []agent.FilePatch{
		{File: "a.py", Changes: "new"},
		{File: "b.py", Changes: "same"},
		{File: "", Changes: "dropped"},
		{File: "c.py", Changes: ""},
		{File: "d.py", Changes: "created"},
	})

	assert.Equal(t, 2, applied)
	assert.Equal(t, "new", files["a.py"])
	assert.Equal(t, "same", files["b.py"])
	assert.Equal(t, "created", files["d.py"])
	assert.NotContains(t, files, "c.py")
}
