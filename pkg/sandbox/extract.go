package sandbox

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// maxOutputChars caps the log/pytest output carried in a report.
	maxOutputChars = 2000
	// maxFailures caps how many failing-test lines a report records.
	maxFailures = 20
)

var (
	// tracebackFileRe matches Python traceback frames pointing into the
	// generated application tree. The last frame is the closest to the
	// actual error site.
	tracebackFileRe = regexp.MustCompile(`File "[^"]*/(app/\S+\.py)", line (\d+)`)

	// errorKindRe matches the exception header closing a traceback.
	errorKindRe = regexp.MustCompile(`(NameError|ImportError|ModuleNotFoundError|AttributeError|TypeError|ValueError|SyntaxError|IndentationError|KeyError|RuntimeError): (.+)`)

	pytestPassedRe = regexp.MustCompile(`(\d+) passed`)
	pytestFailedRe = regexp.MustCompile(`(\d+) failed`)
	pytestErrorRe  = regexp.MustCompile(`(\d+) error`)
)

// truncateOutput bounds captured output for storage and prompts.
func truncateOutput(s string) string {
	if len(s) <= maxOutputChars {
		return s
	}
	return s[:maxOutputChars] + "\n... (truncated)"
}

// parsePytestCounts reads the pytest summary line ("3 passed, 2 failed,
// 1 error"). Collection errors count as failures; total is what ran.
func parsePytestCounts(output string) (passed, failed, total int) {
	if m := pytestPassedRe.FindStringSubmatch(output); m != nil {
		passed, _ = strconv.Atoi(m[1])
	}
	if m := pytestFailedRe.FindStringSubmatch(output); m != nil {
		failed, _ = strconv.Atoi(m[1])
	}
	if m := pytestErrorRe.FindStringSubmatch(output); m != nil {
		n, _ := strconv.Atoi(m[1])
		failed += n
	}
	return passed, failed, passed + failed
}

// extractFailures pulls individual failing-test lines out of pytest
// output, capped at maxFailures.
func extractFailures(output string) []string {
	var failures []string
	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "FAILED"):
			failures = append(failures, trimmed)
		case strings.Contains(line, " FAILED") && strings.Contains(line, "::"):
			failures = append(failures, trimmed)
		}
		if len(failures) == maxFailures {
			break
		}
	}
	return failures
}

// extractTraceback pulls the failing file, line, and exception summary
// out of a log tail. The file is the last application frame in the
// traceback; the summary is "Kind: message". Missing pieces come back
// zero-valued.
func extractTraceback(output string) (file string, line int, summary string) {
	if frames := tracebackFileRe.FindAllStringSubmatch(output, -1); len(frames) > 0 {
		last := frames[len(frames)-1]
		file = last[1]
		line, _ = strconv.Atoi(last[2])
	}
	if m := errorKindRe.FindStringSubmatch(output); m != nil {
		summary = m[1] + ": " + strings.TrimSpace(m[2])
	}
	return file, line, summary
}
