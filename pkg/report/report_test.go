package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/pkg/models"
	"github.com/forgeworks/forge/pkg/spec"
)

func sampleSpec() *spec.Spec {
	return &spec.Spec{
		ProjectName: "blog-api",
		Description: "A simple blog backend.",
		SpecVersion: spec.SpecVersion,
		Database:    spec.DatabaseConfig{Type: spec.DatabaseKindPostgres, Version: "15"},
		Auth:        spec.AuthConfig{Enabled: true, Type: spec.AuthKindJWT, TokenExpiryMinutes: 30},
		Entities: []spec.Entity{
			{
				Name:      "Post",
				TableName: "posts",
				CRUD:      true,
				Fields: []spec.Field{
					{Name: "id", Type: spec.TypeUUID, PrimaryKey: true},
					{Name: "title", Type: spec.TypeString, Unique: true},
					{Name: "body", Type: spec.TypeText, Nullable: true},
				},
			},
		},
	}
}

func TestGenerateFullReport(t *testing.T) {
	status := 201
	md := Generate(Params{
		Prompt:     "Build me a blog",
		Spec:       sampleSpec(),
		ModelUsed:  "gemini-2.5-flash",
		Validation: &spec.ReviewResult{Valid: true, Warnings: []string{"field \"type\" is reserved"}},
		Verification: &models.VerificationReport{
			Passed: false,
			Results: []models.EndpointResult{
				{TestName: "create_posts", Method: "POST", Endpoint: "/posts/", Passed: true, StatusCode: &status},
				{TestName: "list_posts", Method: "GET", Endpoint: "/posts/", Passed: false, ErrorMessage: "connection refused"},
			},
		},
		GeneratedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	})

	assert.True(t, strings.HasPrefix(md, "# Project Report: blog-api\n"))
	assert.Contains(t, md, "Generated: 2026-03-14 09:30 UTC | Model: gemini-2.5-flash")
	assert.Contains(t, md, "## Prompt\n\n> Build me a blog")
	assert.Contains(t, md, "## Description\n\nA simple blog backend.")
	assert.Contains(t, md, "- **Database**: PostgreSQL 15")
	assert.Contains(t, md, "- **Authentication**: Enabled (JWT)")
	assert.Contains(t, md, "- **Token Expiry**: 30 minutes")
	assert.Contains(t, md, "### Post (`posts`)")
	assert.Contains(t, md, "| `id` | uuid | ✓ |  |  |")
	assert.Contains(t, md, "| `title` | string |  |  | ✓ |")
	assert.Contains(t, md, "CRUD endpoints: `/posts/`")
	assert.Contains(t, md, "✅ Passed with 1 warning(s)")
	assert.Contains(t, md, "- ⚠️ field \"type\" is reserved")
	assert.Contains(t, md, "❌ **1/2 tests passed**")
	assert.Contains(t, md, "| `POST /posts/` | ✓ 201 |")
	assert.Contains(t, md, "| `GET /posts/` | ✗ N/A — connection refused |")
	assert.Contains(t, md, "docker compose up --build")
}

func TestGenerateOmitsOptionalSections(t *testing.T) {
	sp := sampleSpec()
	sp.Description = ""
	sp.Auth.Enabled = false

	md := Generate(Params{Spec: sp})

	assert.NotContains(t, md, "## Prompt")
	assert.NotContains(t, md, "## Description")
	assert.NotContains(t, md, "## Validation")
	assert.NotContains(t, md, "## Verification")
	assert.NotContains(t, md, "Token Expiry")
	assert.Contains(t, md, "- **Authentication**: Disabled")
	assert.NotContains(t, md, " | Model:")
}

func TestGenerateFailedValidation(t *testing.T) {
	md := Generate(Params{
		Spec:       sampleSpec(),
		Validation: &spec.ReviewResult{Valid: false, Errors: []string{"duplicate field name: \"title\""}},
	})

	assert.Contains(t, md, "❌ Failed")
	assert.Contains(t, md, "- ❌ duplicate field name: \"title\"")
}

func TestGenerateAllTestsPassed(t *testing.T) {
	status := 200
	md := Generate(Params{
		Spec: sampleSpec(),
		Verification: &models.VerificationReport{
			Passed: true,
			Results: []models.EndpointResult{
				{TestName: "health", Method: "GET", Endpoint: "/health", Passed: true, StatusCode: &status},
				{TestName: "docs", Method: "GET", Endpoint: "/docs", Passed: true, StatusCode: &status},
			},
		},
	})

	assert.Contains(t, md, "✅ **All 2 tests passed**")
}

func TestGenerateDefaultsTimestamp(t *testing.T) {
	md := Generate(Params{Spec: sampleSpec()})
	require.Contains(t, md, "Generated: ")
	assert.Contains(t, md, time.Now().UTC().Format("2006-01-02"))
}
