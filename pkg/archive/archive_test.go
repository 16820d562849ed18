package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEntry(t *testing.T, r *zip.ReadCloser, name string) string {
	t.Helper()
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			data, err := io.ReadAll(rc)
			require.NoError(t, err)
			return string(data)
		}
	}
	t.Fatalf("entry %s not found in archive", name)
	return ""
}

func TestAssemble(t *testing.T) {
	staging := t.TempDir()
	files := map[string]string{
		"app/main.py":      "print('hi')\n",
		"requirements.txt": "fastapi\n",
	}

	zipPath, err := Assemble(staging, "blog-api", files)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`blog-api-[0-9a-f]{8}\.zip$`), zipPath)
	assert.Equal(t, staging, filepath.Dir(zipPath))

	r, err := zip.OpenReader(zipPath)
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, "print('hi')\n", readEntry(t, r, "blog-api/app/main.py"))
	assert.Equal(t, "fastapi\n", readEntry(t, r, "blog-api/requirements.txt"))
	assert.Equal(t, "", readEntry(t, r, "blog-api/alembic/.gitkeep"))

	// All entries live under the project root.
	for _, f := range r.File {
		assert.True(t, filepath.HasPrefix(f.Name, "blog-api/"), "entry %s escapes project root", f.Name)
	}
}

func TestAssembleCreatesStagingDir(t *testing.T) {
	staging := filepath.Join(t.TempDir(), "nested", "staging")

	zipPath, err := Assemble(staging, "p", map[string]string{"README.md": "x"})
	require.NoError(t, err)
	_, err = os.Stat(zipPath)
	require.NoError(t, err)
}

func TestAssembleDistinctNames(t *testing.T) {
	staging := t.TempDir()
	files := map[string]string{"README.md": "x"}

	first, err := Assemble(staging, "p", files)
	require.NoError(t, err)
	second, err := Assemble(staging, "p", files)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestExtract(t *testing.T) {
	staging := t.TempDir()
	files := map[string]string{
		"app/main.py":      "print('hi')\n",
		"requirements.txt": "fastapi\n",
	}
	zipPath, err := Assemble(staging, "blog-api", files)
	require.NoError(t, err)

	dest := t.TempDir()
	require.NoError(t, Extract(zipPath, dest))

	data, err := os.ReadFile(filepath.Join(dest, "blog-api", "app", "main.py"))
	require.NoError(t, err)
	assert.Equal(t, "print('hi')\n", string(data))

	data, err = os.ReadFile(filepath.Join(dest, "blog-api", "requirements.txt"))
	require.NoError(t, err)
	assert.Equal(t, "fastapi\n", string(data))

	_, err = os.Stat(filepath.Join(dest, "blog-api", "alembic", ".gitkeep"))
	assert.NoError(t, err)
}

func TestExtractRejectsTraversal(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "evil.zip")
	out, err := os.Create(zipPath)
	require.NoError(t, err)
	w := zip.NewWriter(out)
	f, err := w.Create("../escape.txt")
	require.NoError(t, err)
	_, err = f.Write([]byte("x"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, out.Close())

	err = Extract(zipPath, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes destination")
}

func TestExtractMissingArchive(t *testing.T) {
	err := Extract(filepath.Join(t.TempDir(), "absent.zip"), t.TempDir())
	require.Error(t, err)
}

func TestFilesRoundTrip(t *testing.T) {
	staging := t.TempDir()
	files := map[string]string{
		"app/main.py":         "print('hi')\n",
		"app/routers/task.py": "router = APIRouter()\n",
		"requirements.txt":    "fastapi\n",
	}
	zipPath, err := Assemble(staging, "blog-api", files)
	require.NoError(t, err)

	got, err := Files(zipPath)
	require.NoError(t, err)
	assert.Equal(t, files, got)
}

func TestFilesReassemblable(t *testing.T) {
	staging := t.TempDir()
	first, err := Assemble(staging, "blog-api", map[string]string{"app/main.py": "x"})
	require.NoError(t, err)

	// Reading back and assembling again must not grow a second gitkeep.
	files, err := Files(first)
	require.NoError(t, err)
	second, err := Assemble(staging, "blog-api", files)
	require.NoError(t, err)

	r, err := zip.OpenReader(second)
	require.NoError(t, err)
	defer r.Close()
	keeps := 0
	for _, f := range r.File {
		if f.Name == "blog-api/alembic/.gitkeep" {
			keeps++
		}
	}
	assert.Equal(t, 1, keeps)
}

func TestFilesMissingArchive(t *testing.T) {
	_, err := Files(filepath.Join(t.TempDir(), "absent.zip"))
	require.Error(t, err)
}

func TestSweepStaging(t *testing.T) {
	staging := t.TempDir()

	stale := filepath.Join(staging, "old-11111111.zip")
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0o644))
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	fresh := filepath.Join(staging, "new-22222222.zip")
	require.NoError(t, os.WriteFile(fresh, []byte("x"), 0o644))

	notZip := filepath.Join(staging, "old.txt")
	require.NoError(t, os.WriteFile(notZip, []byte("x"), 0o644))
	require.NoError(t, os.Chtimes(notZip, old, old))

	removed, err := SweepStaging(staging, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(fresh)
	assert.NoError(t, err)
	_, err = os.Stat(notZip)
	assert.NoError(t, err)
}

func TestSweepStagingMissingDir(t *testing.T) {
	removed, err := SweepStaging(filepath.Join(t.TempDir(), "absent"), time.Hour)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
