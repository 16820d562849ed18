package models

import "github.com/forgeworks/forge/ent/verificationrun"

// EnqueueRunParams contains fields for queueing a sandbox run.
type EnqueueRunParams struct {
	ProjectID string               `json:"project_id"`
	UserID    string               `json:"user_id"`
	Kind      verificationrun.Kind `json:"kind"`
	Payload   string               `json:"payload,omitempty"`
}
