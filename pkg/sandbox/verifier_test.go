package sandbox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/pkg/config"
	"github.com/forgeworks/forge/pkg/models"
)

func TestReportPassed(t *testing.T) {
	ok := models.EndpointResult{Passed: true}
	bad := models.EndpointResult{Passed: false}

	tests := []struct {
		name   string
		report Report
		want   bool
	}{
		{"green", Report{Deployed: true, Healthy: true, Endpoints: []models.EndpointResult{ok}}, true},
		{"not deployed", Report{Healthy: true, Endpoints: []models.EndpointResult{ok}}, false},
		{"not healthy", Report{Deployed: true, Endpoints: []models.EndpointResult{ok}}, false},
		{"skipped", Report{Deployed: true, Healthy: true, Skipped: true, Endpoints: []models.EndpointResult{ok}}, false},
		{"deploy errors", Report{Deployed: true, Healthy: true, Endpoints: []models.EndpointResult{ok}, Errors: []string{"x"}}, false},
		{"no probes", Report{Deployed: true, Healthy: true}, false},
		{"failed probe", Report{Deployed: true, Healthy: true, Endpoints: []models.EndpointResult{ok, bad}}, false},
		{"failing tests", Report{Deployed: true, Healthy: true, Endpoints: []models.EndpointResult{ok}, TestsFailed: 1}, false},
		{"passing tests", Report{Deployed: true, Healthy: true, Endpoints: []models.EndpointResult{ok}, TestsPassed: 3, TestsTotal: 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.report.Passed())
		})
	}
}

func TestReportConversions(t *testing.T) {
	r := &Report{
		Deployed:    true,
		Healthy:     true,
		Endpoints:   []models.EndpointResult{{Method: "GET", Endpoint: "/health", Passed: true}},
		TestsPassed: 4,
		TestsFailed: 1,
		TestsTotal:  5,
		Failures:    []string{"FAILED tests/test_smoke.py::test_create"},
		Output:      "pytest tail",
		ElapsedMS:   1234,
	}

	vr := r.VerificationReport()
	assert.False(t, vr.Passed)
	assert.Equal(t, int64(1234), vr.ElapsedMS)
	assert.Equal(t, r.Endpoints, vr.Results)

	ev := r.Evidence()
	assert.True(t, ev.Deployed)
	assert.True(t, ev.HealthOK)
	assert.Equal(t, 5, ev.TestsTotal)
	assert.Equal(t, 4, ev.TestsPassed)
	assert.Equal(t, 1, ev.TestsFailed)
	assert.Equal(t, r.Failures, ev.Failures)
	assert.Equal(t, "pytest tail", ev.TestOutput)
}

func TestProjectRoot(t *testing.T) {
	// Archive rooted at a single project directory.
	scratch := t.TempDir()
	nested := filepath.Join(scratch, "taskman")
	require.NoError(t, os.MkdirAll(filepath.Join(nested, "app"), 0o755))
	assert.Equal(t, nested, projectRoot(scratch))

	// Flat layout: files at the top level.
	flat := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(flat, "docker-compose.yml"), []byte("services:\n"), 0o644))
	assert.Equal(t, flat, projectRoot(flat))

	// A single top-level file is not a project directory.
	single := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(single, "README.md"), []byte("x"), 0o644))
	assert.Equal(t, single, projectRoot(single))
}

func TestHasTests(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, hasTests(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "tests"), []byte("not a dir"), 0o644))
	assert.False(t, hasTests(dir))

	dir = t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "tests"), 0o755))
	assert.True(t, hasTests(dir))
}

func TestNewVerifier(t *testing.T) {
	assert.Panics(t, func() { NewVerifier(nil, nil) })

	cfg := config.DefaultSandboxConfig()
	v := NewVerifier(cfg, nil)
	require.NotNil(t, v.ports)
	assert.Equal(t, cfg.PortRangeEnd-cfg.PortRangeStart+1, v.ports.Available())

	pool := NewPortPool(9500, 9501)
	v = NewVerifier(cfg, pool)
	assert.Same(t, pool, v.ports)
}
