package source

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memfs "github.com/eason9999/qoy-rvv/source/fs"
)

func TestIsCandidate(t *testing.T) {
	cases := map[string]bool{
		"a.png":     true,
		"photo.png": true,
		".png":      false,
		"png":       false,
		"a.PNG":     false,
		"a.png.bak": false,
		"a.jpg":     false,
		".":         false,
		"..":        false,
		"":          false,
	}

	for name, want := range cases {
		assert.Equal(t, want, IsCandidate(name), name)
	}
}

func TestClassify(t *testing.T) {
	fsys := memfs.New(fstest.MapFS{
		"img.png":   &fstest.MapFile{Data: []byte("x")},
		"dir/a.png": &fstest.MapFile{Data: []byte("x")},
		"pipe":      &fstest.MapFile{Mode: fs.ModeNamedPipe},
	})

	kind, err := Classify(fsys, "img.png")
	require.NoError(t, err)
	assert.Equal(t, KindFile, kind)

	kind, err = Classify(fsys, "dir")
	require.NoError(t, err)
	assert.Equal(t, KindDirectory, kind)

	kind, err = Classify(fsys, "missing")
	assert.Equal(t, KindInvalid, kind)
	assert.ErrorIs(t, err, ErrInvalidInputPath)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	kind, err = Classify(fsys, "pipe")
	assert.Equal(t, KindInvalid, kind)
	assert.ErrorIs(t, err, ErrUnsupportedPathType)

	var srcErr *Error
	require.True(t, errors.As(err, &srcErr))
	assert.Equal(t, "pipe", srcErr.Path)
}

func TestResolveSingleFile(t *testing.T) {
	fsys := memfs.New(fstest.MapFS{
		"notes.txt": &fstest.MapFile{Data: []byte("x")},
	})

	// A file named directly is a target whatever its extension.
	targets, err := Resolve(fsys, "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"notes.txt"}, targets)
}

func TestResolveDirectory(t *testing.T) {
	fsys := memfs.New(fstest.MapFS{
		"imgs/a.png":        &fstest.MapFile{Data: []byte("a")},
		"imgs/b.png":        &fstest.MapFile{Data: []byte("b")},
		"imgs/.png":         &fstest.MapFile{Data: []byte("hidden")},
		"imgs/c.PNG":        &fstest.MapFile{Data: []byte("c")},
		"imgs/d.jpg":        &fstest.MapFile{Data: []byte("d")},
		"imgs/nested/e.png": &fstest.MapFile{Data: []byte("e")},
		"imgs/sub.png/f":    &fstest.MapFile{Data: []byte("f")},
	})

	targets, err := Resolve(fsys, "imgs")
	require.NoError(t, err)

	// Directories are not descended into but one named like an image is
	// still a target.
	assert.ElementsMatch(t, []string{"imgs/a.png", "imgs/b.png", "imgs/sub.png"}, targets)
}

func TestResolveEmptyDirectory(t *testing.T) {
	fsys := memfs.New(fstest.MapFS{
		"empty": &fstest.MapFile{Mode: fs.ModeDir},
	})

	targets, err := Resolve(fsys, "empty")
	require.NoError(t, err)
	assert.Empty(t, targets)
}

func TestResolveMissing(t *testing.T) {
	targets, err := Resolve(memfs.New(fstest.MapFS{}), "nowhere")
	assert.Nil(t, targets)
	assert.ErrorIs(t, err, ErrInvalidInputPath)
}

type failingDir struct {
	FileSystem
	entries []fs.DirEntry
}

func (f failingDir) ReadDir(string) ([]fs.DirEntry, error) {
	return f.entries, fs.ErrPermission
}

func TestResolveDirectoryOpenFailure(t *testing.T) {
	mapFS := fstest.MapFS{
		"d/a.png": &fstest.MapFile{Data: []byte("a")},
		"d/b.txt": &fstest.MapFile{Data: []byte("b")},
	}
	entries, err := fs.ReadDir(mapFS, "d")
	require.NoError(t, err)

	fsys := failingDir{FileSystem: memfs.New(mapFS), entries: entries}

	targets, err := Resolve(fsys, "d")
	assert.ErrorIs(t, err, ErrDirectoryOpen)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Equal(t, []string{"d/a.png"}, targets)
}

func TestResolveOS(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"one.png", "two.png", "skip.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "inner"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inner", "three.png"), []byte("x"), 0o644))

	targets, err := Resolve(OS{}, dir)
	require.NoError(t, err)

	sort.Strings(targets)
	assert.Equal(t, []string{filepath.Join(dir, "one.png"), filepath.Join(dir, "two.png")}, targets)

	single := filepath.Join(dir, "skip.txt")
	targets, err = Resolve(OS{}, single)
	require.NoError(t, err)
	assert.Equal(t, []string{single}, targets)

	_, err = Resolve(OS{}, filepath.Join(dir, "absent"))
	assert.ErrorIs(t, err, ErrInvalidInputPath)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "file", KindFile.String())
	assert.Equal(t, "directory", KindDirectory.String())
	assert.Equal(t, "invalid", KindInvalid.String())
}
