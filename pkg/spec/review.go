package spec

import "fmt"

// reservedFieldNames are identifiers that collide with keywords or ORM
// attributes in the generated code. Using one is a warning, not an error;
// "id" alone is exempt since every primary key is named that in practice.
var reservedFieldNames = map[string]bool{
	"id":     true,
	"type":   true,
	"class":  true,
	"import": true,
	"from":   true,
	"return": true,
	"pass":   true,
}

// genericProjectNames clash with common directory names in the generated
// archive layout.
var genericProjectNames = map[string]bool{
	"app":   true,
	"test":  true,
	"tests": true,
	"src":   true,
	"lib":   true,
}

// ReviewResult is the reviewer's verdict. Errors block the pipeline;
// warnings ride along to the final report.
type ReviewResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Review enforces cross-field invariants that structural validation cannot
// express: duplicate field names, reserved identifiers, nullable primary
// keys, auth table collisions, and generic project names. Pure function of
// the spec; no I/O.
func Review(s *Spec) ReviewResult {
	errors := []string{}
	warnings := []string{}

	for _, entity := range s.Entities {
		seen := make(map[string]bool, len(entity.Fields))
		for _, f := range entity.Fields {
			if seen[f.Name] {
				errors = append(errors,
					fmt.Sprintf("entity %q has duplicate field name: %q", entity.Name, f.Name))
			}
			seen[f.Name] = true
		}

		for _, f := range entity.Fields {
			if reservedFieldNames[f.Name] && f.Name != "id" {
				warnings = append(warnings,
					fmt.Sprintf("entity %q field %q uses a reserved word; this may cause issues in generated code", entity.Name, f.Name))
			}
		}

		for _, f := range entity.Fields {
			if f.PrimaryKey && f.Nullable {
				errors = append(errors,
					fmt.Sprintf("entity %q: primary key field %q must not be nullable", entity.Name, f.Name))
			}
		}
	}

	if s.Auth.Enabled {
		for _, entity := range s.Entities {
			if entity.TableName == AuthUserTable {
				errors = append(errors,
					fmt.Sprintf("entity %q uses table name %q which is reserved for the built-in auth user model", entity.Name, AuthUserTable))
			}
		}
	}

	if genericProjectNames[s.ProjectName] {
		warnings = append(warnings,
			fmt.Sprintf("project name %q is generic and may conflict with common directory names", s.ProjectName))
	}

	return ReviewResult{
		Valid:    len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}
