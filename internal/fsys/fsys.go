// Package fsys provides the file-system access the release pipeline needs:
// existence checks and whole-file text reads and writes, rooted at the
// repository directory.
package fsys

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

const defaultFileMode os.FileMode = 0o644

// FS is the file-system accessor used by the pipeline. Names are relative
// to the root the FS was created with.
type FS interface {
	Exists(name string) bool
	ReadFile(name string) (string, error)
	WriteFile(name, content string) error
}

// Compile-time check that BillyFS implements FS.
var _ FS = (*BillyFS)(nil)

// BillyFS implements FS on top of a go-billy filesystem.
type BillyFS struct {
	fs billy.Filesystem
}

// New wraps an existing billy filesystem.
func New(fs billy.Filesystem) *BillyFS {
	return &BillyFS{fs: fs}
}

// OS returns an FS rooted at dir on the host file system.
func OS(dir string) *BillyFS {
	return New(osfs.New(dir))
}

// Memory returns an empty in-memory FS.
func Memory() *BillyFS {
	return New(memfs.New())
}

// Root returns the directory the filesystem is rooted at.
func (b *BillyFS) Root() string {
	return b.fs.Root()
}

// Exists reports whether name exists and is a regular file.
func (b *BillyFS) Exists(name string) bool {
	fi, err := b.fs.Stat(name)
	if err != nil {
		return false
	}
	return !fi.IsDir()
}

func (b *BillyFS) ReadFile(name string) (string, error) {
	data, err := util.ReadFile(b.fs, name)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return string(data), nil
}

// WriteFile replaces the content of name, keeping the mode of an existing
// file.
func (b *BillyFS) WriteFile(name, content string) error {
	mode := defaultFileMode
	fi, err := b.fs.Stat(name)
	switch {
	case err == nil:
		mode = fi.Mode().Perm()
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("stat %s: %w", name, err)
	}

	if err := util.WriteFile(b.fs, name, []byte(content), mode); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
