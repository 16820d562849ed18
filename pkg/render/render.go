// Package render turns a validated spec into the generated project's
// source tree: a FastAPI application with SQLAlchemy models, pydantic
// schemas, per-entity CRUD routers, optional JWT auth, and the Docker
// scaffolding to run it. Rendering is deterministic: the same spec
// always produces byte-identical files.
package render

import (
	"fmt"
	"strings"

	"github.com/forgeworks/forge/pkg/spec"
)

// Render produces the complete file set for a generated project, keyed
// by path relative to the project root.
func Render(s *spec.Spec) (map[string]string, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("rendering unvalidated spec: %w", err)
	}

	files := map[string]string{
		"app/__init__.py":         "",
		"app/routers/__init__.py": "",
		"app/main.py":             renderMain(s),
		"app/database.py":         renderDatabase(s),
		"app/models.py":           renderModels(s),
		"app/schemas.py":          renderSchemas(s),
		"tests/test_smoke.py":     renderSmokeTests(s),
		"requirements.txt":        renderRequirements(s),
		"Dockerfile":              renderDockerfile(),
		"docker-compose.yml":      renderCompose(s),
		".env.example":            renderEnvExample(s),
		".gitignore":              renderGitignore(),
		"README.md":               renderReadme(s),
	}

	if s.Auth.Enabled {
		files["app/auth.py"] = renderAuth(s)
	}

	for _, e := range s.Entities {
		if !routedEntity(s, &e) {
			continue
		}
		files["app/routers/"+e.TableName+".py"] = renderRouter(s, &e)
	}

	return files, nil
}

// routedEntity reports whether the entity gets a CRUD router. The User
// entity is folded into /auth/register and /auth/login when auth is on.
func routedEntity(s *spec.Spec, e *spec.Entity) bool {
	if !e.CRUD {
		return false
	}
	if s.Auth.Enabled && e.Name == "User" {
		return false
	}
	return true
}

// Singularize derives a singular identifier from a plural table name.
// Heuristic, not a dictionary: categories→category, addresses→address,
// statuses→status, boxes→box, products→product, data→data.
func Singularize(table string) string {
	switch {
	case strings.HasSuffix(table, "ies"):
		return table[:len(table)-3] + "y"
	case strings.HasSuffix(table, "sses"):
		return table[:len(table)-2]
	case strings.HasSuffix(table, "ses"):
		return table[:len(table)-2]
	case strings.HasSuffix(table, "xes"):
		return table[:len(table)-2]
	case strings.HasSuffix(table, "s") && !strings.HasSuffix(table, "ss"):
		return table[:len(table)-1]
	}
	return table
}

// dbName is the postgres database name for the generated project.
func dbName(s *spec.Spec) string {
	return strings.ReplaceAll(s.ProjectName, "-", "_")
}

// pythonType maps a spec field type to its pydantic annotation.
func pythonType(fieldType string) string {
	switch fieldType {
	case spec.TypeInteger:
		return "int"
	case spec.TypeFloat:
		return "float"
	case spec.TypeBoolean:
		return "bool"
	case spec.TypeDatetime:
		return "datetime"
	case spec.TypeUUID:
		return "uuid.UUID"
	default: // string, text
		return "str"
	}
}

// columnType maps a spec field type to its SQLAlchemy column type.
func columnType(fieldType string) string {
	switch fieldType {
	case spec.TypeInteger:
		return "Integer"
	case spec.TypeFloat:
		return "Float"
	case spec.TypeBoolean:
		return "Boolean"
	case spec.TypeDatetime:
		return "DateTime(timezone=True)"
	case spec.TypeUUID:
		return "UUID(as_uuid=True)"
	case spec.TypeText:
		return "Text"
	default:
		return "String(255)"
	}
}
