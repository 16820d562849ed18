package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// Kind classifies a provider failure so callers can decide between
// retrying, falling back to another model, and giving up.
type Kind string

const (
	// KindQuotaExhausted is a 429 / RESOURCE_EXHAUSTED style signal.
	// The model is out of quota; the fallback chain should advance.
	KindQuotaExhausted Kind = "quota_exhausted"
	// KindNetworkTransient covers timeouts and 5xx responses. Worth
	// retrying the same model with backoff.
	KindNetworkTransient Kind = "network_transient"
	// KindSchemaInvalid means the model answered but the output did not
	// parse or validate. Re-prompting may help; retrying as-is will not.
	KindSchemaInvalid Kind = "schema_invalid"
	// KindTerminal covers auth, permission, and malformed requests.
	KindTerminal Kind = "terminal"
)

// Sentinels for errors.Is checks against a *CallError.
var (
	ErrQuotaExhausted   = errors.New("llm: quota exhausted")
	ErrNetworkTransient = errors.New("llm: transient network failure")
	ErrSchemaInvalid    = errors.New("llm: response did not match schema")
	ErrTerminal         = errors.New("llm: terminal provider error")

	// ErrAllModelsExhausted wraps the last error once every model in a
	// fallback chain has failed.
	ErrAllModelsExhausted = errors.New("llm: all models in fallback chain failed")
)

// CallError is a classified provider failure tied to the model that
// produced it.
type CallError struct {
	Kind  Kind
	Model string
	Err   error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("[%s] %s: %v", e.Model, e.Kind, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match a CallError against the kind sentinels.
func (e *CallError) Is(target error) bool {
	switch target {
	case ErrQuotaExhausted:
		return e.Kind == KindQuotaExhausted
	case ErrNetworkTransient:
		return e.Kind == KindNetworkTransient
	case ErrSchemaInvalid:
		return e.Kind == KindSchemaInvalid
	case ErrTerminal:
		return e.Kind == KindTerminal
	}
	return false
}

// NewCallError wraps err with its classification.
func NewCallError(kind Kind, model string, err error) *CallError {
	return &CallError{Kind: kind, Model: model, Err: err}
}

// KindOf extracts the classification from an error chain, defaulting to
// KindTerminal for unclassified errors.
func KindOf(err error) Kind {
	var callErr *CallError
	if errors.As(err, &callErr) {
		return callErr.Kind
	}
	return KindTerminal
}

// isQuotaMessage reports whether an error string carries a quota signal.
// Providers encode quota exhaustion differently; "429" and
// "RESOURCE_EXHAUSTED" cover Google and OpenAI-compatible backends.
func isQuotaMessage(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

// isTransientMessage reports whether an error looks like a retryable
// network or server-side failure.
func isTransientMessage(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	msg := err.Error()
	for _, marker := range []string{
		"500", "502", "503", "504",
		"UNAVAILABLE", "INTERNAL", "DEADLINE_EXCEEDED",
		"connection refused", "connection reset", "EOF",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// classify normalizes a raw provider error into a CallError. Quota takes
// precedence over transient markers: a 429 body often mentions retry
// delays that would otherwise look transient.
func classify(model string, err error) *CallError {
	switch {
	case isQuotaMessage(err):
		return NewCallError(KindQuotaExhausted, model, err)
	case isTransientMessage(err):
		return NewCallError(KindNetworkTransient, model, err)
	default:
		return NewCallError(KindTerminal, model, err)
	}
}
