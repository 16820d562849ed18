package sandbox

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/forgeworks/forge/pkg/agent"
)

// entryPointFile is the catch-all patch target when the evidence does
// not name a specific file.
const entryPointFile = "app/main.py"

var appFileRe = regexp.MustCompile(`(app/\S+\.py)`)

// BuildPatchRequests turns a failed report into targeted patch requests,
// in priority order:
//
//  1. a traceback pinpointing an application file,
//  2. a failed health check, targeting the entry point unless the
//     traceback already did,
//  3. failing tests that implicate application files,
//  4. a catch-all against the entry point when nothing above fired.
func BuildPatchRequests(r *Report) []agent.PatchRequest {
	var requests []agent.PatchRequest

	if r.TracebackFile != "" {
		summary := r.TracebackSummary
		if summary == "" {
			summary = "unknown error"
		}
		errLine := r.TracebackSummary
		if errLine == "" {
			errLine = "See full output below"
		}
		requests = append(requests, agent.PatchRequest{
			File:   r.TracebackFile,
			Reason: "Sandbox runtime error: " + summary,
			Instructions: strings.Join([]string{
				"Fix the runtime error in this file that prevents the API from starting.",
				"Error: " + errLine,
				"Make sure all imports are correct — if you use Field, SQLModel, etc., import them explicitly.",
				"Sandbox output: " + head(r.Output, 500),
			}, "\n"),
		})
	}

	if !r.Healthy && r.TracebackFile != entryPointFile {
		requests = append(requests, agent.PatchRequest{
			File:   entryPointFile,
			Reason: "Sandbox health check failed — API did not start",
			Instructions: strings.Join([]string{
				"Fix any import errors, syntax errors, or configuration issues that prevent uvicorn from starting.",
				"Sandbox error output: " + head(r.Output, 300),
			}, "\n"),
		})
	}

	for _, file := range failingAppFiles(r.Failures, r.TracebackFile) {
		requests = append(requests, agent.PatchRequest{
			File:   file,
			Reason: fmt.Sprintf("Sandbox tests failed — %d test(s) failing", r.TestsFailed),
			Instructions: strings.Join([]string{
				"Fix issues causing sandbox test failures.",
				"Failing tests: " + strings.Join(headSlice(r.Failures, 3), ", "),
				"Test output snippet: " + head(r.Output, 200),
			}, "\n"),
		})
	}

	if len(requests) == 0 {
		requests = append(requests, agent.PatchRequest{
			File:   entryPointFile,
			Reason: "Sandbox deployment failed",
			Instructions: strings.Join([]string{
				"Review and fix the main application entry point.",
				"Error: " + strings.Join(headSlice(errorSummary(r), 3), "; "),
			}, "\n"),
		})
	}

	return requests
}

// failingAppFiles collects application files named in failure lines, in
// first-seen order. Lines naming test functions are evidence about the
// app, not patch targets, and the traceback file is already covered.
func failingAppFiles(failures []string, tracebackFile string) []string {
	seen := make(map[string]bool)
	var files []string
	for _, failure := range failures {
		if strings.Contains(failure, "test_") && strings.Contains(failure, "::") {
			continue
		}
		m := appFileRe.FindStringSubmatch(failure)
		if m == nil {
			continue
		}
		file := m[1]
		if file == tracebackFile || seen[file] {
			continue
		}
		seen[file] = true
		files = append(files, file)
	}
	return files
}

// errorSummary is the evidence for the catch-all request: deploy-level
// errors first, then failed endpoint probes.
func errorSummary(r *Report) []string {
	if len(r.Errors) > 0 {
		return r.Errors
	}
	var errs []string
	for _, e := range r.Endpoints {
		if e.Passed {
			continue
		}
		msg := e.ErrorMessage
		if msg == "" && e.StatusCode != nil {
			msg = fmt.Sprintf("unexpected status %d", *e.StatusCode)
		}
		errs = append(errs, fmt.Sprintf("%s %s: %s", e.Method, e.Endpoint, msg))
	}
	return errs
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func headSlice(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
