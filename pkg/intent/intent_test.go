package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		prompt      string
		hasArtifact bool
		priorMsgs   int
		want        Intent
	}{
		{
			name:        "no artifact always generates",
			prompt:      "where is my project",
			hasArtifact: false,
			priorMsgs:   5,
			want:        Generate,
		},
		{
			name:        "download request retrieves",
			prompt:      "Can I download it again?",
			hasArtifact: true,
			priorMsgs:   2,
			want:        Retrieve,
		},
		{
			name:        "send me the zip retrieves",
			prompt:      "send me the zip please",
			hasArtifact: true,
			priorMsgs:   0,
			want:        Retrieve,
		},
		{
			name:        "past-tense possession retrieves",
			prompt:      "you built an inventory api for me last week",
			hasArtifact: true,
			priorMsgs:   0,
			want:        Retrieve,
		},
		{
			name:        "my project possession retrieves",
			prompt:      "Where did my backend go",
			hasArtifact: true,
			priorMsgs:   1,
			want:        Retrieve,
		},
		{
			name:        "additive verb with history refines",
			prompt:      "add a comments entity",
			hasArtifact: true,
			priorMsgs:   3,
			want:        Refine,
		},
		{
			name:        "also with history refines",
			prompt:      "also include an author field on posts",
			hasArtifact: true,
			priorMsgs:   1,
			want:        Refine,
		},
		{
			name:        "refine verb without history falls through to generate",
			prompt:      "add a comments entity",
			hasArtifact: true,
			priorMsgs:   0,
			want:        Generate,
		},
		{
			name:        "explicit build verb generates",
			prompt:      "build me a fresh analytics service",
			hasArtifact: true,
			priorMsgs:   0,
			want:        Generate,
		},
		{
			name:        "new api generates even mid-conversation",
			prompt:      "scaffold a new api for billing",
			hasArtifact: true,
			priorMsgs:   0,
			want:        Generate,
		},
		{
			name:        "ambiguous with history defaults to refine",
			prompt:      "the title field should be longer",
			hasArtifact: true,
			priorMsgs:   4,
			want:        Refine,
		},
		{
			name:        "ambiguous without history defaults to generate",
			prompt:      "a todo list with due dates",
			hasArtifact: true,
			priorMsgs:   0,
			want:        Generate,
		},
		{
			name:        "matching is case-insensitive",
			prompt:      "DOWNLOAD THE ARTIFACT",
			hasArtifact: true,
			priorMsgs:   0,
			want:        Retrieve,
		},
		{
			name:        "word boundaries prevent substring matches",
			prompt:      "the additive manufacturing domain",
			hasArtifact: true,
			priorMsgs:   2,
			want:        Refine, // "additive" must not match "add", falls to history default
		},
		{
			name:        "retrieve wins over refine wording",
			prompt:      "send me the project, also add auth",
			hasArtifact: true,
			priorMsgs:   2,
			want:        Retrieve,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.prompt, tt.hasArtifact, tt.priorMsgs)
			assert.Equal(t, tt.want, got)
		})
	}
}
