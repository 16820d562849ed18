package e2e

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const designNotes = `Todo API design notes.

Every task carries a title and a done flag. Tasks belong to exactly one
list and are ordered by creation time. Completed tasks stay queryable
for thirty days before cleanup removes them.`

// TestDocumentLifecycle covers upload, listing, dedup, and deletion.
func TestDocumentLifecycle(t *testing.T) {
	app := NewTestApp(t)
	token := app.RegisterUser(t, "docs@example.com")

	up := app.UploadDocument(t, token, "notes.md", []byte(designNotes), http.StatusCreated)
	docID := up["id"].(string)
	assert.Equal(t, "notes.md", up["filename"])
	assert.Nil(t, up["deduplicated"])

	// Same content, same user: idempotent, the original row answers.
	again := app.UploadDocument(t, token, "notes-copy.md", []byte(designNotes), http.StatusCreated)
	assert.Equal(t, docID, again["id"])
	assert.Equal(t, true, again["deduplicated"])

	list := app.getJSON(t, token, "/api/v1/documents", http.StatusOK)
	items := list["items"].([]interface{})
	require.Len(t, items, 1)
	doc := items[0].(map[string]interface{})
	assert.Equal(t, "notes.md", doc["filename"])
	assert.Greater(t, doc["chunk_count"], float64(0))

	app.delete(t, token, "/api/v1/documents/"+docID, http.StatusNoContent)
	list = app.getJSON(t, token, "/api/v1/documents", http.StatusOK)
	assert.Empty(t, list["items"])
}

// TestDocumentDedupPerUser verifies identical content still indexes
// separately for different users.
func TestDocumentDedupPerUser(t *testing.T) {
	app := NewTestApp(t)
	alice := app.RegisterUser(t, "doc-alice@example.com")
	bob := app.RegisterUser(t, "doc-bob@example.com")

	aliceUp := app.UploadDocument(t, alice, "notes.md", []byte(designNotes), http.StatusCreated)
	bobUp := app.UploadDocument(t, bob, "notes.md", []byte(designNotes), http.StatusCreated)

	assert.NotEqual(t, aliceUp["id"], bobUp["id"])
	assert.Nil(t, bobUp["deduplicated"])
}

// TestDocumentUploadRejections covers the two upload gates: size and
// file type.
func TestDocumentUploadRejections(t *testing.T) {
	app := NewTestApp(t)
	token := app.RegisterUser(t, "doc-limits@example.com")

	oversized := bytes.Repeat([]byte("a"), 5*1024*1024+1)
	app.UploadDocument(t, token, "big.txt", oversized, http.StatusRequestEntityTooLarge)

	out := app.UploadDocument(t, token, "binary.exe", []byte("MZ\x90\x00"), http.StatusBadRequest)
	assert.NotEmpty(t, out["error"])
}

// TestGenerateUsesDocumentContext uploads design notes and generates
// with a prompt that shares their vocabulary: the retrieved chunks must
// reach the spec agent's prompt.
func TestGenerateUsesDocumentContext(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddForModel("gemini-2.0-flash", ScriptEntry{Response: TodoSpecJSON})
	token := app.RegisterUser(t, "doc-context@example.com")

	app.UploadDocument(t, token, "notes.md", []byte(designNotes), http.StatusCreated)

	app.GenerateFromPrompt(t, token, "Build a todo API where every task carries a title and a done flag", true)

	calls := app.LLM.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Request.User, "CONTEXT FROM UPLOADED DOCUMENTS:")
	assert.Contains(t, calls[0].Request.User, "done flag")
	assert.Contains(t, calls[0].Request.User, "USER REQUEST:")
}

// TestGenerateWithoutDocuments checks the inverse: no uploads, no
// context block in the prompt.
func TestGenerateWithoutDocuments(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddForModel("gemini-2.0-flash", ScriptEntry{Response: TodoSpecJSON})
	token := app.RegisterUser(t, "no-docs@example.com")

	app.GenerateFromPrompt(t, token, "Build a todo API with tasks", true)

	calls := app.LLM.Calls()
	require.Len(t, calls, 1)
	assert.NotContains(t, calls[0].Request.User, "CONTEXT FROM UPLOADED DOCUMENTS:")
}
