// Package storage places finished project archives on disk. Every
// project owns exactly one slot, {root}/{userID}/{projectID}/project.zip,
// so re-generation overwrites the previous build instead of stacking
// versions.
package storage

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// ArchiveName is the fixed filename of a stored project archive.
const ArchiveName = "project.zip"

// Store manages the per-user archive tree under a single root directory.
type Store struct {
	root string
}

// NewStore panics on an empty root, which would scatter archives
// relative to the process working directory.
func NewStore(root string) *Store {
	if root == "" {
		panic("storage root cannot be empty")
	}
	return &Store{root: root}
}

// Save moves the archive at srcPath into the project's slot and returns
// the final path. The source is consumed: a plain rename when staging
// and storage share a filesystem, copy-then-remove when they do not.
func (s *Store) Save(userID, projectID, srcPath string) (string, error) {
	dir := filepath.Join(s.root, userID, projectID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating archive directory: %w", err)
	}

	dst := filepath.Join(dir, ArchiveName)
	if err := os.Rename(srcPath, dst); err != nil {
		if err := copyFile(srcPath, dst); err != nil {
			return "", fmt.Errorf("storing archive: %w", err)
		}
		if err := os.Remove(srcPath); err != nil {
			slog.Warn("could not remove staged archive after copy", "path", srcPath, "error", err)
		}
	}

	slog.Info("archive stored", "project_id", projectID, "path", dst)
	return dst, nil
}

// Path returns the project's archive path and whether a regular file
// exists there.
func (s *Store) Path(userID, projectID string) (string, bool) {
	p := filepath.Join(s.root, userID, projectID, ArchiveName)
	info, err := os.Stat(p)
	return p, err == nil && info.Mode().IsRegular()
}

// Delete removes the project's storage directory and everything in it.
// A missing directory is not an error.
func (s *Store) Delete(userID, projectID string) error {
	dir := filepath.Join(s.root, userID, projectID)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("deleting project archive: %w", err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
