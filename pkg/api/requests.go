package api

// RegisterRequest is the body for POST /api/v1/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PromptRequest is the body for POST /api/v1/generate-from-prompt.
// Model selects the head of the fallback chain; empty uses the catalog
// default. SkipVerify suppresses the sandbox run normally queued after
// a successful build.
type PromptRequest struct {
	Prompt     string `json:"prompt"`
	Model      string `json:"model,omitempty"`
	SkipVerify bool   `json:"skip_verify,omitempty"`
}

// CreateThreadRequest is the body for POST /api/v1/projects/:id/threads.
// An empty title gets "Conversation {n}".
type CreateThreadRequest struct {
	Title string `json:"title,omitempty"`
}

// ChatRequest is the body for POST .../threads/:tid/chat.
type ChatRequest struct {
	Message string `json:"message"`
	Model   string `json:"model,omitempty"`
}
