// Package sandbox deploys generated projects into ephemeral docker
// compose stacks, verifies them with endpoint probes and the generated
// test suite, extracts structured failure evidence, and drives the
// bounded repair loop that patches files and redeploys.
package sandbox

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/forgeworks/forge/pkg/agent"
	"github.com/forgeworks/forge/pkg/archive"
	"github.com/forgeworks/forge/pkg/config"
	"github.com/forgeworks/forge/pkg/models"
	"github.com/forgeworks/forge/pkg/spec"
)

// Report is the aggregate outcome of one verification attempt. It merges
// the deployment result, endpoint probe results, in-container pytest
// counts, and the structured failure evidence the patch policy consumes.
type Report struct {
	Deployed bool `json:"deployed"`
	Healthy  bool `json:"healthy"`

	// Skipped is set when the host cannot verify at all (no docker).
	Skipped    bool   `json:"skipped,omitempty"`
	SkipReason string `json:"skip_reason,omitempty"`

	Endpoints []models.EndpointResult `json:"endpoints,omitempty"`

	TestsPassed int      `json:"tests_passed"`
	TestsFailed int      `json:"tests_failed"`
	TestsTotal  int      `json:"tests_total"`
	Failures    []string `json:"failures,omitempty"`

	// Output is the truncated log or pytest tail the evidence was
	// extracted from.
	Output string `json:"output,omitempty"`

	TracebackFile    string `json:"traceback_file,omitempty"`
	TracebackLine    int    `json:"traceback_line,omitempty"`
	TracebackSummary string `json:"traceback_summary,omitempty"`

	// Normalizations records which compensating rewrites fired before
	// this deployment.
	Normalizations []RuleCount `json:"normalizations,omitempty"`

	// Errors holds deploy-level failures (build, health deadline) that
	// are not attributable to a single endpoint.
	Errors []string `json:"errors,omitempty"`

	ElapsedMS int64 `json:"elapsed_ms,omitempty"`
}

// Passed reports overall success: deployed, healthy, every endpoint
// probe green, and no failing tests. An empty probe set never passes.
func (r *Report) Passed() bool {
	if !r.Deployed || !r.Healthy || r.Skipped || len(r.Errors) > 0 {
		return false
	}
	if len(r.Endpoints) == 0 {
		return false
	}
	for _, e := range r.Endpoints {
		if !e.Passed {
			return false
		}
	}
	return r.TestsFailed == 0
}

// VerificationReport converts to the persisted per-endpoint shape.
func (r *Report) VerificationReport() *models.VerificationReport {
	return &models.VerificationReport{
		Passed:    r.Passed(),
		ElapsedMS: r.ElapsedMS,
		Results:   r.Endpoints,
	}
}

// Evidence summarizes the report for the code reviewer.
func (r *Report) Evidence() *agent.SandboxEvidence {
	return &agent.SandboxEvidence{
		Deployed:    r.Deployed,
		HealthOK:    r.Healthy,
		TestsTotal:  r.TestsTotal,
		TestsPassed: r.TestsPassed,
		TestsFailed: r.TestsFailed,
		Failures:    r.Failures,
		TestOutput:  r.Output,
	}
}

// Verifier runs single verification attempts: extract, normalize,
// deploy, probe, test, teardown. The repair loop composes attempts into
// a loop; the verifier itself never retries.
type Verifier struct {
	cfg   *config.SandboxConfig
	ports *PortPool
	norm  *Normalizer
}

// NewVerifier panics on a nil config; the port range must already be
// validated.
func NewVerifier(cfg *config.SandboxConfig, ports *PortPool) *Verifier {
	if cfg == nil {
		panic("sandbox config cannot be nil")
	}
	if ports == nil {
		ports = NewPortPool(cfg.PortRangeStart, cfg.PortRangeEnd)
	}
	return &Verifier{cfg: cfg, ports: ports, norm: NewNormalizer()}
}

// Verify deploys the archived project and runs the full verification
// sequence against it. The returned report captures failures of the
// project under test; the error return is reserved for cancellation and
// host-level faults. Teardown always runs.
func (v *Verifier) Verify(ctx context.Context, sp *spec.Spec, zipPath string) (*Report, error) {
	start := time.Now()
	report := &Report{}
	defer func() {
		report.ElapsedMS = time.Since(start).Milliseconds()
	}()

	if !DockerAvailable(ctx) {
		report.Skipped = true
		report.SkipReason = "Docker is not available on this machine"
		slog.Warn("sandbox verification skipped", "reason", report.SkipReason)
		return report, nil
	}

	port, err := v.ports.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring sandbox port: %w", err)
	}
	defer v.ports.Release(port)

	scratch, err := os.MkdirTemp(v.cfg.ScratchDir, "verify_")
	if err != nil {
		return nil, fmt.Errorf("creating scratch directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(scratch); err != nil {
			slog.Warn("scratch cleanup failed", "dir", scratch, "error", err)
		}
	}()

	if err := archive.Extract(zipPath, scratch); err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("extracting archive: %v", err))
		return report, nil
	}
	projectDir := projectRoot(scratch)

	report.Normalizations, err = v.norm.NormalizeDir(projectDir)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("normalizing sources: %v", err))
		return report, nil
	}
	if len(report.Normalizations) > 0 {
		slog.Info("sandbox normalization applied", "rules", report.Normalizations)
	}

	stack := newComposeStack(projectDir, port)
	defer stack.teardown(v.cfg.TeardownTimeout)

	if err := stack.writeOverride(); err != nil {
		report.Errors = append(report.Errors, err.Error())
		return report, nil
	}

	slog.Info("sandbox deploying", "project", stack.project, "port", port)
	if err := stack.up(ctx, v.cfg.ComposeUpTimeout); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		report.Errors = append(report.Errors, fmt.Sprintf("Docker build failed: %v", err))
		return report, nil
	}
	report.Deployed = true

	if !waitForHealth(ctx, stack.baseURL(), v.cfg.HealthTimeout, v.cfg.HealthPollInterval) {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logs := stack.logs(ctx)
		report.Output = truncateOutput("Health check failed. Container logs:\n" + logs)
		report.TracebackFile, report.TracebackLine, report.TracebackSummary = extractTraceback(logs)
		report.Errors = append(report.Errors,
			fmt.Sprintf("App did not become healthy within %s", v.cfg.HealthTimeout))
		return report, nil
	}
	report.Healthy = true

	p := newProber(stack.baseURL())
	report.Endpoints = p.run(ctx, sp)
	report.Errors = append(report.Errors, p.errors...)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if hasTests(projectDir) {
		output := stack.pytest(ctx)
		report.Output = truncateOutput(output)
		report.TestsPassed, report.TestsFailed, report.TestsTotal = parsePytestCounts(report.Output)
		report.Failures = extractFailures(report.Output)
		if file, line, summary := extractTraceback(report.Output); file != "" || summary != "" {
			report.TracebackFile = file
			report.TracebackLine = line
			report.TracebackSummary = summary
		}
	} else {
		report.Output = "Sandbox deployed and healthy. No test files provided."
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	slog.Info("sandbox verification finished",
		"project", stack.project,
		"passed", report.Passed(),
		"endpoints", len(report.Endpoints),
		"tests_passed", report.TestsPassed,
		"tests_failed", report.TestsFailed)
	return report, nil
}

// waitForHealth polls GET /health until it answers 200 or the deadline
// passes.
func waitForHealth(ctx context.Context, baseURL string, timeout, interval time.Duration) bool {
	client := &http.Client{Timeout: 3 * time.Second}
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/health", nil)
		if err != nil {
			return false
		}
		resp, err := client.Do(req)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return true
			}
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(interval):
		}
	}
	return false
}

// projectRoot locates the extracted project directory: archives are
// rooted at a single project_name/ directory, but a flat layout still
// verifies.
func projectRoot(scratch string) string {
	entries, err := os.ReadDir(scratch)
	if err != nil || len(entries) != 1 || !entries[0].IsDir() {
		return scratch
	}
	return filepath.Join(scratch, entries[0].Name())
}

func hasTests(projectDir string) bool {
	info, err := os.Stat(filepath.Join(projectDir, "tests"))
	return err == nil && info.IsDir()
}
