// Package restructure backs up the docs tree and moves superseded
// documents into the archive, where the rest of the toolkit ignores them.
package restructure

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Backup replaces backupDir with a full copy of docsDir. The backup is a
// sibling safety net taken before any restructuring move.
func Backup(docsDir, backupDir string) error {
	if err := os.RemoveAll(backupDir); err != nil {
		return fmt.Errorf("clearing old backup: %w", err)
	}
	return copyTree(docsDir, backupDir)
}

// Archive moves the listed files (paths relative to root) into the
// archive directory under docsDir. Missing sources are skipped; moving is
// preferred over deleting so nothing is ever lost.
func Archive(root, docsDir string, files []string, out io.Writer) (int, error) {
	archiveDir := filepath.Join(docsDir, "archive")
	if err := os.MkdirAll(archiveDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating archive directory: %w", err)
	}

	moved := 0
	for _, rel := range files {
		src := filepath.Join(root, filepath.FromSlash(rel))
		if _, err := os.Stat(src); os.IsNotExist(err) {
			continue
		}

		dst := filepath.Join(archiveDir, filepath.Base(rel))
		if err := os.Rename(src, dst); err != nil {
			fmt.Fprintf(out, "ERROR: archiving %s: %v\n", rel, err)
			continue
		}
		fmt.Fprintf(out, "ARCHIVED: %s\n", rel)
		moved++
	}
	return moved, nil
}

func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		cerr := out.Close()
		if err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
