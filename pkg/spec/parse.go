package spec

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Parse decodes LLM output into a Spec. Models in JSON mode still wrap
// responses in markdown fences, so fences are stripped before decoding.
// The result is not normalized or validated.
func Parse(text string) (*Spec, error) {
	cleaned := StripFences(text)
	if cleaned == "" {
		return nil, fmt.Errorf("empty response")
	}

	var s Spec
	if err := json.Unmarshal([]byte(cleaned), &s); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}
	return &s, nil
}

// StripFences removes markdown code fence lines (``` or ```json) from
// fenced text. Text that does not open with a fence passes through trimmed.
func StripFences(text string) string {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, "```") {
		return t
	}

	lines := strings.Split(t, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
