package spec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validSpec returns a spec that passes Validate; tests mutate it per case.
func validSpec() *Spec {
	return &Spec{
		ProjectName: "task-api",
		SpecVersion: SpecVersion,
		Database:    DatabaseConfig{Type: DatabaseKindPostgres, Version: DatabaseVersion},
		Auth:        AuthConfig{Enabled: true, Type: AuthKindJWT, TokenExpiryMinutes: 30},
		Entities: []Entity{
			{
				Name:      "Task",
				TableName: "tasks",
				CRUD:      true,
				Fields: []Field{
					{Name: "id", Type: TypeUUID, PrimaryKey: true},
					{Name: "title", Type: TypeString},
				},
			},
		},
	}
}

func TestNormalize(t *testing.T) {
	t.Run("fills defaults on a bare spec", func(t *testing.T) {
		s := &Spec{ProjectName: "Task API ", Entities: validSpec().Entities}
		s.Normalize()

		assert.Equal(t, "task api", s.ProjectName)
		assert.Equal(t, SpecVersion, s.SpecVersion)
		assert.Equal(t, DatabaseKindPostgres, s.Database.Type)
		assert.Equal(t, DatabaseVersion, s.Database.Version)
		assert.Equal(t, AuthKindJWT, s.Auth.Type)
		assert.Equal(t, DefaultTokenExpiryMinutes, s.Auth.TokenExpiryMinutes)
	})

	t.Run("preserves explicit values", func(t *testing.T) {
		s := validSpec()
		s.Auth.TokenExpiryMinutes = 120
		s.Normalize()
		assert.Equal(t, 120, s.Auth.TokenExpiryMinutes)
	})
}

func TestValidateAcceptsNormalizedSpec(t *testing.T) {
	s := validSpec()
	s.Normalize()
	require.NoError(t, s.Validate())
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Spec)
		problem string
	}{
		{
			name:    "empty entities",
			mutate:  func(s *Spec) { s.Entities = nil },
			problem: "at least one entity is required",
		},
		{
			name:    "slug starting with hyphen",
			mutate:  func(s *Spec) { s.ProjectName = "-foo" },
			problem: "must be lowercase, start with a letter",
		},
		{
			name:    "slug with uppercase",
			mutate:  func(s *Spec) { s.ProjectName = "TaskAPI" },
			problem: "must be lowercase",
		},
		{
			name:    "slug too long",
			mutate:  func(s *Spec) { s.ProjectName = "a" + strings.Repeat("b", MaxProjectNameLength) },
			problem: "exceeds 64 characters",
		},
		{
			name:    "missing project name",
			mutate:  func(s *Spec) { s.ProjectName = "" },
			problem: "project_name is required",
		},
		{
			name:    "wrong spec version",
			mutate:  func(s *Spec) { s.SpecVersion = "2.0" },
			problem: `spec_version must be "1.0"`,
		},
		{
			name:    "unsupported database",
			mutate:  func(s *Spec) { s.Database.Type = "mysql" },
			problem: `database.type must be "postgres"`,
		},
		{
			name:    "unsupported database version",
			mutate:  func(s *Spec) { s.Database.Version = "16" },
			problem: `database.version must be "15"`,
		},
		{
			name:    "unsupported auth type",
			mutate:  func(s *Spec) { s.Auth.Type = "oauth2" },
			problem: `auth.type must be "jwt"`,
		},
		{
			name:    "token expiry below range",
			mutate:  func(s *Spec) { s.Auth.TokenExpiryMinutes = 0 },
			problem: "between 1 and 1440",
		},
		{
			name:    "token expiry above range",
			mutate:  func(s *Spec) { s.Auth.TokenExpiryMinutes = 2000 },
			problem: "between 1 and 1440",
		},
		{
			name:    "entity name not PascalCase",
			mutate:  func(s *Spec) { s.Entities[0].Name = "task" },
			problem: "must be PascalCase",
		},
		{
			name: "duplicate entity names ignore case",
			mutate: func(s *Spec) {
				dup := s.Entities[0]
				dup.Name = "TASK"
				dup.TableName = "tasks_two"
				s.Entities = append(s.Entities, dup)
			},
			problem: "duplicate entity name",
		},
		{
			name: "duplicate table names",
			mutate: func(s *Spec) {
				dup := s.Entities[0]
				dup.Name = "Item"
				s.Entities = append(s.Entities, dup)
			},
			problem: "duplicate table name",
		},
		{
			name:    "table name not snake_case",
			mutate:  func(s *Spec) { s.Entities[0].TableName = "Tasks" },
			problem: "must be snake_case",
		},
		{
			name:    "entity without fields",
			mutate:  func(s *Spec) { s.Entities[0].Fields = nil },
			problem: "must define at least one field",
		},
		{
			name:    "field name not snake_case",
			mutate:  func(s *Spec) { s.Entities[0].Fields[1].Name = "Title" },
			problem: "must be snake_case",
		},
		{
			name:    "unknown field type",
			mutate:  func(s *Spec) { s.Entities[0].Fields[1].Type = "varchar" },
			problem: `unknown type "varchar"`,
		},
		{
			name:    "no primary key",
			mutate:  func(s *Spec) { s.Entities[0].Fields[0].PrimaryKey = false },
			problem: "exactly one primary key field, found 0",
		},
		{
			name:    "two primary keys",
			mutate:  func(s *Spec) { s.Entities[0].Fields[1].PrimaryKey = true },
			problem: "exactly one primary key field, found 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSpec()
			tt.mutate(s)

			err := s.Validate()
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.problem)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.NotEmpty(t, verr.Problems)
		})
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	s := validSpec()
	s.ProjectName = "-foo"
	s.Database.Type = "sqlite"
	s.Entities[0].Fields[1].Type = "varchar"

	err := s.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Problems, 3)
}

func TestEntityPrimaryKey(t *testing.T) {
	s := validSpec()
	pk := s.Entities[0].PrimaryKey()
	require.NotNil(t, pk)
	assert.Equal(t, "id", pk.Name)

	s.Entities[0].Fields[0].PrimaryKey = false
	assert.Nil(t, s.Entities[0].PrimaryKey())
}
