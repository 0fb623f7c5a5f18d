// Package fs exposes any io/fs.FS (embed.FS, fstest.MapFS, os.DirFS) as a
// source.FileSystem.
package fs

import (
	"io/fs"
	"path"
)

type FS struct {
	fs fs.FS
}

func New(fs fs.FS) *FS {
	return &FS{
		fs: fs,
	}
}

func (f *FS) Stat(name string) (fs.FileInfo, error) {
	return fs.Stat(f.fs, name)
}

// ReadDir returns entries in the order the wrapped file system reports them;
// most io/fs implementations sort by name.
func (f *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	return fs.ReadDir(f.fs, name)
}

func (f *FS) Open(name string) (fs.File, error) {
	return f.fs.Open(name)
}

func (f *FS) Join(dir, name string) string {
	return path.Join(dir, name)
}
