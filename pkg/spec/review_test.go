package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewAcceptsCleanSpec(t *testing.T) {
	result := Review(validSpec())
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestReviewErrors(t *testing.T) {
	t.Run("duplicate field names", func(t *testing.T) {
		s := validSpec()
		s.Entities[0].Fields = append(s.Entities[0].Fields, Field{Name: "title", Type: TypeText})

		result := Review(s)
		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], `duplicate field name: "title"`)
	})

	t.Run("nullable primary key", func(t *testing.T) {
		s := validSpec()
		s.Entities[0].Fields[0].Nullable = true

		result := Review(s)
		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "must not be nullable")
	})

	t.Run("auth table collision when auth enabled", func(t *testing.T) {
		s := validSpec()
		s.Entities[0].TableName = AuthUserTable

		result := Review(s)
		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "reserved for the built-in auth user model")
	})

	t.Run("auth table allowed when auth disabled", func(t *testing.T) {
		s := validSpec()
		s.Auth.Enabled = false
		s.Entities[0].TableName = AuthUserTable

		result := Review(s)
		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
	})
}

func TestReviewWarnings(t *testing.T) {
	t.Run("reserved field name warns but stays valid", func(t *testing.T) {
		s := validSpec()
		s.Entities[0].Fields = append(s.Entities[0].Fields, Field{Name: "type", Type: TypeString})

		result := Review(s)
		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0], "reserved word")
	})

	t.Run("id is exempt from the reserved list", func(t *testing.T) {
		result := Review(validSpec())
		assert.Empty(t, result.Warnings)
	})

	t.Run("generic project name", func(t *testing.T) {
		for _, name := range []string{"app", "test", "tests", "src", "lib"} {
			s := validSpec()
			s.ProjectName = name

			result := Review(s)
			assert.True(t, result.Valid)
			require.Len(t, result.Warnings, 1, "project name %q", name)
			assert.Contains(t, result.Warnings[0], "generic")
		}
	})
}

func TestReviewCollectsAcrossEntities(t *testing.T) {
	s := validSpec()
	second := Entity{
		Name:      "Note",
		TableName: "notes",
		CRUD:      true,
		Fields: []Field{
			{Name: "id", Type: TypeUUID, PrimaryKey: true, Nullable: true},
			{Name: "class", Type: TypeString},
		},
	}
	s.Entities = append(s.Entities, second)
	s.Entities[0].Fields = append(s.Entities[0].Fields, Field{Name: "title", Type: TypeText})

	result := Review(s)
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 2)
	assert.Len(t, result.Warnings, 1)
}
