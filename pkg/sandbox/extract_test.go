package sandbox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateOutput(t *testing.T) {
	short := strings.Repeat("a", maxOutputChars)
	assert.Equal(t, short, truncateOutput(short))

	long := strings.Repeat("b", maxOutputChars+5)
	got := truncateOutput(long)
	assert.Len(t, got, maxOutputChars+len("\n... (truncated)"))
	assert.True(t, strings.HasSuffix(got, "\n... (truncated)"))
}

func TestParsePytestCounts(t *testing.T) {
	tests := []struct {
		name   string
		output string
		passed int
		failed int
		total  int
	}{
		{"all passing", "===== 7 passed in 1.02s =====", 7, 0, 7},
		{"mixed", "===== 3 passed, 2 failed in 0.44s =====", 3, 2, 5},
		{"errors count as failures", "===== 2 failed, 1 error in 0.10s =====", 0, 3, 3},
		{"collection error only", "===== 1 error in 0.05s =====", 0, 1, 1},
		{"no summary", "container exited before pytest ran", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passed, failed, total := parsePytestCounts(tt.output)
			assert.Equal(t, tt.passed, passed)
			assert.Equal(t, tt.failed, failed)
			assert.Equal(t, tt.total, total)
		})
	}
}

func TestParsePytestCounts_PluralErrors(t *testing.T) {
	passed, failed, total := parsePytestCounts("1 passed, 2 errors in 0.2s")
	assert.Equal(t, 1, passed)
	assert.Equal(t, 2, failed)
	assert.Equal(t, 3, total)
}

func TestExtractFailures(t *testing.T) {
	output := strings.Join([]string{
		"tests/test_smoke.py::test_health PASSED",
		"FAILED tests/test_smoke.py::test_create_task - assert 500 == 201",
		"tests/test_smoke.py::test_list_tasks FAILED",
		"  FAILED tests/test_smoke.py::test_delete_task - KeyError",
		"some unrelated FAILED mention without test id",
		"===== 1 passed, 3 failed in 0.31s =====",
	}, "\n")

	failures := extractFailures(output)
	assert.Equal(t, []string{
		"FAILED tests/test_smoke.py::test_create_task - assert 500 == 201",
		"tests/test_smoke.py::test_list_tasks FAILED",
		"FAILED tests/test_smoke.py::test_delete_task - KeyError",
	}, failures)
}

func TestExtractFailures_Cap(t *testing.T) {
	var lines []string
	for i := 0; i < maxFailures+10; i++ {
		lines = append(lines, "FAILED tests/test_smoke.py::test_case - assert")
	}
	failures := extractFailures(strings.Join(lines, "\n"))
	assert.Len(t, failures, maxFailures)
}

func TestExtractTraceback(t *testing.T) {
	output := strings.Join([]string{
		"Traceback (most recent call last):",
		`  File "/usr/local/lib/python3.11/site-packages/uvicorn/main.py", line 12, in run`,
		`  File "/code/app/main.py", line 3, in <module>`,
		"    from app.models import Task",
		`  File "/code/app/models.py", line 4, in <module>`,
		"NameError: name 'Field' is not defined",
	}, "\n")

	file, line, summary := extractTraceback(output)
	assert.Equal(t, "app/models.py", file)
	assert.Equal(t, 4, line)
	assert.Equal(t, "NameError: name 'Field' is not defined", summary)
}

func TestExtractTraceback_SkipsNonAppFrames(t *testing.T) {
	output := strings.Join([]string{
		`  File "/usr/local/lib/python3.11/asyncio/runners.py", line 190, in run`,
		"RuntimeError: Event loop is closed",
	}, "\n")

	file, line, summary := extractTraceback(output)
	assert.Empty(t, file)
	assert.Zero(t, line)
	assert.Equal(t, "RuntimeError: Event loop is closed", summary)
}

func TestExtractTraceback_NoTraceback(t *testing.T) {
	file, line, summary := extractTraceback("INFO: Uvicorn running on http://0.0.0.0:8000")
	assert.Empty(t, file)
	assert.Zero(t, line)
	assert.Empty(t, summary)
}
