// Package report renders PROJECT_REPORT.md, the human-readable build
// summary shipped inside every generated archive: what was built, how
// validation went, and what the sandbox verified.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/forgeworks/forge/pkg/models"
	"github.com/forgeworks/forge/pkg/spec"
)

// Params collects everything the report can mention. Validation and
// Verification are optional; their sections are omitted when nil.
type Params struct {
	Prompt       string
	Spec         *spec.Spec
	Validation   *spec.ReviewResult
	Verification *models.VerificationReport
	ModelUsed    string

	// GeneratedAt defaults to the current time when zero. Tests pin it.
	GeneratedAt time.Time
}

// Generate renders the report markdown.
func Generate(p Params) string {
	at := p.GeneratedAt
	if at.IsZero() {
		at = time.Now()
	}

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line("# Project Report: %s", p.Spec.ProjectName)
	line("")
	meta := fmt.Sprintf("Generated: %s", at.UTC().Format("2006-01-02 15:04 UTC"))
	if p.ModelUsed != "" {
		meta += " | Model: " + p.ModelUsed
	}
	line("%s", meta)
	line("")

	if p.Prompt != "" {
		line("## Prompt")
		line("")
		line("> %s", p.Prompt)
		line("")
	}

	if p.Spec.Description != "" {
		line("## Description")
		line("")
		line("%s", p.Spec.Description)
		line("")
	}

	line("## Configuration")
	line("")
	line("- **Database**: PostgreSQL %s", p.Spec.Database.Version)
	if p.Spec.Auth.Enabled {
		line("- **Authentication**: Enabled (JWT)")
		line("- **Token Expiry**: %d minutes", p.Spec.Auth.TokenExpiryMinutes)
	} else {
		line("- **Authentication**: Disabled")
	}
	line("")

	line("## Entities")
	line("")
	for _, entity := range p.Spec.Entities {
		line("### %s (`%s`)", entity.Name, entity.TableName)
		line("")
		line("| Field | Type | PK | Nullable | Unique |")
		line("|-------|------|----|----------|--------|")
		for _, f := range entity.Fields {
			line("| `%s` | %s | %s | %s | %s |",
				f.Name, f.Type, check(f.PrimaryKey), check(f.Nullable), check(f.Unique))
		}
		line("")
		if entity.CRUD {
			line("CRUD endpoints: `/%s/`", entity.TableName)
			line("")
		}
	}

	if p.Validation != nil {
		line("## Validation")
		line("")
		if p.Validation.Valid {
			line("✅ Passed with %d warning(s)", len(p.Validation.Warnings))
		} else {
			line("❌ Failed")
		}
		if len(p.Validation.Warnings) > 0 {
			line("")
			for _, w := range p.Validation.Warnings {
				line("- ⚠️ %s", w)
			}
		}
		if len(p.Validation.Errors) > 0 {
			line("")
			for _, e := range p.Validation.Errors {
				line("- ❌ %s", e)
			}
		}
		line("")
	}

	if p.Verification != nil {
		line("## Verification")
		line("")
		total := len(p.Verification.Results)
		passed := 0
		for _, r := range p.Verification.Results {
			if r.Passed {
				passed++
			}
		}
		if p.Verification.Passed {
			line("✅ **All %d tests passed**", total)
		} else {
			line("❌ **%d/%d tests passed**", passed, total)
		}
		line("")
		line("| Endpoint | Result |")
		line("|----------|--------|")
		for _, r := range p.Verification.Results {
			icon := "✓"
			if !r.Passed {
				icon = "✗"
			}
			detail := "N/A"
			if r.StatusCode != nil {
				detail = fmt.Sprintf("%d", *r.StatusCode)
			}
			suffix := ""
			if r.ErrorMessage != "" {
				suffix = " — " + r.ErrorMessage
			}
			line("| `%s %s` | %s %s%s |", r.Method, r.Endpoint, icon, detail, suffix)
		}
		line("")
	}

	line("## Quick Start")
	line("")
	line("```bash")
	line("# Start the backend")
	line("docker compose up --build")
	line("")
	line("# Open Swagger docs")
	line("open http://localhost:8000/docs")
	line("```")

	return b.String()
}

func check(on bool) string {
	if on {
		return "✓"
	}
	return ""
}
