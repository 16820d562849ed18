// Package archive assembles rendered project files into a downloadable
// ZIP. Archives are built in a staging directory and handed to storage;
// anything left behind in staging is an interrupted build, swept later.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// gitkeepPath keeps the empty migrations directory present in the
// archive; zip has no notion of empty directories.
const gitkeepPath = "alembic/.gitkeep"

// Assemble writes the rendered files into a compressed archive named
// {projectName}-{suffix}.zip under stagingDir and returns its path.
// Every entry is rooted at projectName/ so extraction yields a single
// project directory.
func Assemble(stagingDir, projectName string, files map[string]string) (string, error) {
	if err := os.MkdirAll(stagingDir, 0o755); err != nil {
		return "", fmt.Errorf("creating staging directory: %w", err)
	}

	u := uuid.New()
	zipPath := filepath.Join(stagingDir, fmt.Sprintf("%s-%x.zip", projectName, u[:4]))
	out, err := os.Create(zipPath)
	if err != nil {
		return "", fmt.Errorf("creating archive: %w", err)
	}

	w := zip.NewWriter(out)
	names := make([]string, 0, len(files)+1)
	for name := range files {
		names = append(names, name)
	}
	names = append(names, gitkeepPath)
	sort.Strings(names)

	for _, name := range names {
		f, err := w.Create(projectName + "/" + name)
		if err != nil {
			out.Close()
			return "", fmt.Errorf("adding %s: %w", name, err)
		}
		if _, err := f.Write([]byte(files[name])); err != nil {
			out.Close()
			return "", fmt.Errorf("writing %s: %w", name, err)
		}
	}

	if err := w.Close(); err != nil {
		out.Close()
		return "", fmt.Errorf("finalizing archive: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("closing archive: %w", err)
	}
	return zipPath, nil
}

// Extract unpacks an archive into destDir. Entries that would escape
// destDir are rejected; archives only ever contain paths we wrote, so a
// traversal entry means the file was tampered with.
func Extract(zipPath, destDir string) error {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer r.Close()

	for _, entry := range r.File {
		target := filepath.Join(destDir, entry.Name)
		if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
			return fmt.Errorf("archive entry %s escapes destination", entry.Name)
		}
		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", entry.Name, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("creating parent of %s: %w", entry.Name, err)
		}
		if err := extractFile(entry, target); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(entry *zip.File, target string) error {
	rc, err := entry.Open()
	if err != nil {
		return fmt.Errorf("opening entry %s: %w", entry.Name, err)
	}
	defer rc.Close()

	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("creating %s: %w", entry.Name, err)
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return fmt.Errorf("writing %s: %w", entry.Name, err)
	}
	return out.Close()
}

// Files reads an assembled archive back into the file map it was built
// from. The projectName/ root that Assemble prepends is stripped, and
// the gitkeep entry is dropped because Assemble appends its own on
// every pass.
func Files(zipPath string) (map[string]string, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	defer r.Close()

	files := make(map[string]string, len(r.File))
	for _, entry := range r.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		name := entry.Name
		if i := strings.IndexByte(name, '/'); i >= 0 {
			name = name[i+1:]
		}
		if name == "" || name == gitkeepPath {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("opening entry %s: %w", entry.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading entry %s: %w", entry.Name, err)
		}
		files[name] = string(data)
	}
	return files, nil
}

// SweepStaging removes staged archives older than the given age and
// returns how many were removed. Fresh archives belong to in-flight
// builds and are left alone.
func SweepStaging(stagingDir string, olderThan time.Duration) (int, error) {
	entries, err := os.ReadDir(stagingDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading staging directory: %w", err)
	}

	cutoff := time.Now().Add(-olderThan)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".zip") {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(stagingDir, entry.Name())); err == nil {
			removed++
		}
	}
	return removed, nil
}
