package models

// EndpointResult is the outcome of one endpoint probe during verification.
type EndpointResult struct {
	TestName     string `json:"test_name,omitempty"`
	Endpoint     string `json:"endpoint"`
	Method       string `json:"method"`
	Passed       bool   `json:"passed"`
	StatusCode   *int   `json:"status_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// VerificationReport is the payload a client posts after verifying a
// downloaded project locally, and the shape the sandbox runner produces
// for its own endpoint pass. Persisted verbatim into verification_json.
type VerificationReport struct {
	Passed    bool             `json:"passed"`
	ElapsedMS int64            `json:"elapsed_ms,omitempty"`
	Results   []EndpointResult `json:"results"`
}

// FailedTest identifies one failing endpoint in an auto-fix request.
type FailedTest struct {
	Method       string `json:"method"`
	Endpoint     string `json:"endpoint"`
	ErrorMessage string `json:"error_message"`
}

// AutoFixRequest asks the platform to repair a project that failed
// client-side verification.
type AutoFixRequest struct {
	AttemptNumber int          `json:"attempt_number"`
	FailedTests   []FailedTest `json:"failed_tests"`
}
