package sandbox

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComposeStack(t *testing.T) {
	a := newComposeStack("/tmp/a", 9123)
	b := newComposeStack("/tmp/b", 9124)

	assert.Regexp(t, regexp.MustCompile(`^verify-[0-9a-f]{8}$`), a.project)
	assert.NotEqual(t, a.project, b.project)
	assert.Equal(t, "http://localhost:9123", a.baseURL())
}

func TestWriteOverride(t *testing.T) {
	dir := t.TempDir()
	stack := newComposeStack(dir, 9150)

	require.NoError(t, stack.writeOverride())

	data, err := os.ReadFile(filepath.Join(dir, "docker-compose.override.yml"))
	require.NoError(t, err)
	assert.Equal(t, "services:\n  app:\n    ports:\n      - \"9150:8000\"\n", string(data))
}

func TestWriteOverride_MissingDir(t *testing.T) {
	stack := newComposeStack(filepath.Join(t.TempDir(), "nope"), 9150)
	err := stack.writeOverride()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing compose override")
}
