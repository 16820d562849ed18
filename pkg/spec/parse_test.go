package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalSpecJSON = `{
	"project_name": "task-api",
	"spec_version": "1.0",
	"database": {"type": "postgres", "version": "15"},
	"auth": {"enabled": true, "type": "jwt", "access_token_expiry_minutes": 30},
	"entities": [
		{
			"name": "Task",
			"table_name": "tasks",
			"fields": [
				{"name": "id", "type": "uuid", "primary_key": true, "nullable": false},
				{"name": "title", "type": "string", "nullable": false}
			],
			"crud": true
		}
	]
}`

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "bare JSON", text: minimalSpecJSON},
		{name: "json fence", text: "```json\n" + minimalSpecJSON + "\n```"},
		{name: "plain fence", text: "```\n" + minimalSpecJSON + "\n```"},
		{name: "fence without trailing close", text: "```json\n" + minimalSpecJSON},
		{name: "surrounding whitespace", text: "\n\n  " + minimalSpecJSON + "  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, "task-api", s.ProjectName)
			require.Len(t, s.Entities, 1)
			assert.Equal(t, "Task", s.Entities[0].Name)
			require.Len(t, s.Entities[0].Fields, 2)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("")
	assert.ErrorContains(t, err, "empty response")

	_, err = Parse("```json\n```")
	assert.ErrorContains(t, err, "empty response")

	_, err = Parse("Sure! Here is your backend:")
	assert.ErrorContains(t, err, "not valid JSON")
}

func TestParseDefaults(t *testing.T) {
	t.Run("crud defaults to true when absent", func(t *testing.T) {
		s, err := Parse(`{
			"project_name": "x",
			"entities": [{"name": "A", "table_name": "a", "fields": [
				{"name": "id", "type": "uuid", "primary_key": true, "nullable": false}
			]}]
		}`)
		require.NoError(t, err)
		assert.True(t, s.Entities[0].CRUD)
	})

	t.Run("explicit crud false survives", func(t *testing.T) {
		s, err := Parse(`{
			"project_name": "x",
			"entities": [{"name": "A", "table_name": "a", "crud": false, "fields": [
				{"name": "id", "type": "uuid", "primary_key": true, "nullable": false}
			]}]
		}`)
		require.NoError(t, err)
		assert.False(t, s.Entities[0].CRUD)
	})

	t.Run("nullable defaults to true when absent", func(t *testing.T) {
		s, err := Parse(`{
			"project_name": "x",
			"entities": [{"name": "A", "table_name": "a", "fields": [
				{"name": "id", "type": "uuid", "primary_key": true, "nullable": false},
				{"name": "note", "type": "text"}
			]}]
		}`)
		require.NoError(t, err)
		assert.False(t, s.Entities[0].Fields[0].Nullable)
		assert.True(t, s.Entities[0].Fields[1].Nullable)
	})

	t.Run("auth enabled by default when block absent", func(t *testing.T) {
		s, err := Parse(`{"project_name": "x", "entities": []}`)
		require.NoError(t, err)
		assert.True(t, s.Auth.Enabled)
	})

	t.Run("explicit auth disabled survives", func(t *testing.T) {
		s, err := Parse(`{"project_name": "x", "auth": {"enabled": false}, "entities": []}`)
		require.NoError(t, err)
		assert.False(t, s.Auth.Enabled)
	})
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "no fence", in: `{"a": 1}`, want: `{"a": 1}`},
		{name: "json fence", in: "```json\n{\"a\": 1}\n```", want: `{"a": 1}`},
		{name: "plain fence", in: "```\n{\"a\": 1}\n```", want: `{"a": 1}`},
		{name: "indented closing fence", in: "```json\n{\"a\": 1}\n  ```", want: `{"a": 1}`},
		{name: "fence only", in: "```json\n```", want: ""},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFences(tt.in))
		})
	}
}

func TestSpecJSONRoundTrip(t *testing.T) {
	s, err := Parse(minimalSpecJSON)
	require.NoError(t, err)

	out, err := s.ToJSON()
	require.NoError(t, err)

	back, err := FromJSON(out)
	require.NoError(t, err)
	assert.Equal(t, s, back)
}
