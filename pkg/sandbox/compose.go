package sandbox

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	composeOverrideFile = "docker-compose.override.yml"

	// pytestTimeout bounds the in-container test run.
	pytestTimeout = 60 * time.Second

	// dockerProbeTimeout bounds the `docker info` availability check.
	dockerProbeTimeout = 10 * time.Second
)

// DockerAvailable reports whether the docker daemon answers. When it
// does not, verification is recorded as skipped rather than failed.
func DockerAvailable(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, dockerProbeTimeout)
	defer cancel()
	return exec.CommandContext(ctx, "docker", "info").Run() == nil
}

// composeStack is one ephemeral docker compose deployment. The unique
// project name isolates concurrent stacks; the leased port isolates
// their host bindings.
type composeStack struct {
	project string
	dir     string
	port    int
}

func newComposeStack(dir string, port int) *composeStack {
	u := uuid.New()
	return &composeStack{
		project: fmt.Sprintf("verify-%x", u[:4]),
		dir:     dir,
		port:    port,
	}
}

func (s *composeStack) baseURL() string {
	return fmt.Sprintf("http://localhost:%d", s.port)
}

// writeOverride binds the app service to the leased host port. The
// generated compose file always exposes the app on container port 8000.
func (s *composeStack) writeOverride() error {
	override := fmt.Sprintf("services:\n  app:\n    ports:\n      - \"%d:8000\"\n", s.port)
	path := filepath.Join(s.dir, composeOverrideFile)
	if err := os.WriteFile(path, []byte(override), 0o644); err != nil {
		return fmt.Errorf("writing compose override: %w", err)
	}
	return nil
}

// up builds and starts the stack. The returned error carries compose's
// stderr, which is where build failures explain themselves.
func (s *composeStack) up(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "docker", "compose", "-p", s.project, "up", "-d", "--build")
	cmd.Dir = s.dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("docker compose up: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// logs returns the stack's recent log tail for diagnostics. Failures to
// read logs degrade to whatever output was captured.
func (s *composeStack) logs(ctx context.Context) string {
	cmd := exec.CommandContext(ctx, "docker", "compose", "-p", s.project, "logs", "--tail=50")
	cmd.Dir = s.dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		slog.Warn("reading sandbox logs failed", "project", s.project, "error", err)
	}
	return string(out)
}

// pytest runs the generated test suite inside the app container and
// returns the combined output. A non-zero exit just means failing
// tests; the output carries the counts either way.
func (s *composeStack) pytest(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, pytestTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "docker", "compose", "-p", s.project,
		"exec", "-T", "app", "python", "-m", "pytest", "tests/", "-v", "--tb=short", "--no-header", "-q")
	cmd.Dir = s.dir
	out, _ := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return string(out) + "\npytest timed out"
	}
	return string(out)
}

// teardown stops the stack and removes its volumes. It runs on a
// background context so cancelled verifications still clean up, and
// failures are logged only: cleanup never masks the primary result.
func (s *composeStack) teardown(timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "docker", "compose", "-p", s.project, "down", "-v", "--remove-orphans")
	cmd.Dir = s.dir
	if out, err := cmd.CombinedOutput(); err != nil {
		slog.Warn("sandbox teardown failed",
			"project", s.project, "error", err, "output", truncateOutput(string(out)))
	}
}
