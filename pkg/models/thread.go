package models

import (
	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/message"
)

// CreateMessageParams contains fields for appending a chat turn.
type CreateMessageParams struct {
	ThreadID string       `json:"thread_id"`
	Role     message.Role `json:"role"`
	Content  string       `json:"content"`
}

// ThreadDetail wraps a Thread with its messages loaded oldest-first.
type ThreadDetail struct {
	*ent.Thread
	Messages []*ent.Message `json:"messages"`
}
