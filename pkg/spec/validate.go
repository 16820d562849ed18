package spec

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxProjectNameLength bounds the project slug after normalization.
const MaxProjectNameLength = 64

var (
	projectNameRe = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	entityNameRe  = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)
	snakeCaseRe   = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

// ValidationError carries every structural problem found in a spec. The
// full list goes back to the model verbatim on retry, so messages must be
// specific enough to act on.
type ValidationError struct {
	Problems []string
}

// Error returns all problems joined into one message.
func (e *ValidationError) Error() string {
	return "invalid spec: " + strings.Join(e.Problems, "; ")
}

// Normalize fills defaults and canonicalizes the project slug in place.
// Call before Validate; parsing alone leaves zero values behind.
func (s *Spec) Normalize() {
	s.ProjectName = strings.TrimSpace(strings.ToLower(s.ProjectName))

	if s.SpecVersion == "" {
		s.SpecVersion = SpecVersion
	}
	if s.Database.Type == "" {
		s.Database.Type = DatabaseKindPostgres
	}
	if s.Database.Version == "" {
		s.Database.Version = DatabaseVersion
	}
	if s.Auth.Type == "" {
		s.Auth.Type = AuthKindJWT
	}
	if s.Auth.TokenExpiryMinutes == 0 {
		s.Auth.TokenExpiryMinutes = DefaultTokenExpiryMinutes
	}
}

// Validate checks structural invariants: naming shapes, type enums,
// uniqueness, and exactly one primary key per entity. All problems are
// collected; the result is nil or a *ValidationError listing every one.
func (s *Spec) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if s.SpecVersion != SpecVersion {
		add("spec_version must be %q, got %q", SpecVersion, s.SpecVersion)
	}

	switch {
	case s.ProjectName == "":
		add("project_name is required")
	case len(s.ProjectName) > MaxProjectNameLength:
		add("project_name exceeds %d characters", MaxProjectNameLength)
	case !projectNameRe.MatchString(s.ProjectName):
		add("project_name %q must be lowercase, start with a letter, and contain only letters, digits, or hyphens", s.ProjectName)
	}

	if s.Database.Type != DatabaseKindPostgres {
		add("database.type must be %q, got %q", DatabaseKindPostgres, s.Database.Type)
	}
	if s.Database.Version != DatabaseVersion {
		add("database.version must be %q, got %q", DatabaseVersion, s.Database.Version)
	}

	if s.Auth.Type != AuthKindJWT {
		add("auth.type must be %q, got %q", AuthKindJWT, s.Auth.Type)
	}
	if s.Auth.TokenExpiryMinutes < 1 || s.Auth.TokenExpiryMinutes > 1440 {
		add("auth.access_token_expiry_minutes must be between 1 and 1440, got %d", s.Auth.TokenExpiryMinutes)
	}

	if len(s.Entities) == 0 {
		add("at least one entity is required")
	}

	seenNames := make(map[string]string, len(s.Entities))
	seenTables := make(map[string]bool, len(s.Entities))
	for _, e := range s.Entities {
		if !entityNameRe.MatchString(e.Name) {
			add("entity name %q must be PascalCase (start with uppercase letter, only letters/digits)", e.Name)
		}
		lower := strings.ToLower(e.Name)
		if prev, dup := seenNames[lower]; dup {
			add("duplicate entity name: %q collides with %q", e.Name, prev)
		} else {
			seenNames[lower] = e.Name
		}

		if !snakeCaseRe.MatchString(e.TableName) {
			add("entity %q table_name %q must be snake_case", e.Name, e.TableName)
		}
		if seenTables[e.TableName] {
			add("duplicate table name: %q", e.TableName)
		}
		seenTables[e.TableName] = true

		if len(e.Fields) == 0 {
			add("entity %q must define at least one field", e.Name)
		}

		pkCount := 0
		for _, f := range e.Fields {
			if !snakeCaseRe.MatchString(f.Name) {
				add("entity %q field name %q must be snake_case (lowercase, start with letter, only letters/digits/underscores)", e.Name, f.Name)
			}
			if !AllowedFieldTypes[f.Type] {
				add("entity %q field %q has unknown type %q", e.Name, f.Name, f.Type)
			}
			if f.PrimaryKey {
				pkCount++
			}
		}
		if len(e.Fields) > 0 && pkCount != 1 {
			add("entity %q must have exactly one primary key field, found %d", e.Name, pkCount)
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
