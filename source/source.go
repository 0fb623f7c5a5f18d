// Package source decides which files a benchmark run covers. A path names
// either a single image, a directory whose immediate *.png entries are
// benchmarked, or nothing usable.
package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var ErrInvalidInputPath = errors.New("path does not exist or cannot be stat'd")
var ErrUnsupportedPathType = errors.New("path is neither a regular file nor a directory")
var ErrDirectoryOpen = errors.New("directory cannot be opened for enumeration")

// CandidateSuffix selects directory entries. Matching is case-sensitive.
const CandidateSuffix = ".png"

// Place where benchmark targets are looked up
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	// Read directory entries in the order the backend enumerates them.
	ReadDir(name string) ([]fs.DirEntry, error)
	Open(name string) (fs.File, error)
	// Join directory and entry name using the backend's separator.
	Join(dir, name string) string
}

// Kind classifies an input path.
type Kind int

const (
	KindInvalid Kind = iota
	KindFile
	KindDirectory
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "invalid"
	}
}

// Error reports why a path produced no (or only some) targets.
type Error struct {
	Reason error
	Path   string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Reason, e.Err}
	}
	return []error{e.Reason}
}

// OS is the FileSystem backed by the host operating system.
type OS struct{}

func (OS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// ReadDir returns entries unsorted, as the operating system yields them.
func (OS) ReadDir(name string) ([]fs.DirEntry, error) {
	dir, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	return dir.ReadDir(-1)
}

func (OS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

func (OS) Join(dir, name string) string {
	return filepath.Join(dir, name)
}

// IsCandidate reports whether a directory entry name selects a target: it
// must be longer than and end with CandidateSuffix. "." and ".." never match.
func IsCandidate(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return len(name) > len(CandidateSuffix) && strings.HasSuffix(name, CandidateSuffix)
}

// Classify stats path and reports what kind of input it is.
func Classify(fsys FileSystem, path string) (Kind, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return KindInvalid, &Error{Reason: ErrInvalidInputPath, Path: path, Err: err}
	}

	switch {
	case info.Mode().IsRegular():
		return KindFile, nil
	case info.IsDir():
		return KindDirectory, nil
	default:
		return KindInvalid, &Error{Reason: ErrUnsupportedPathType, Path: path}
	}
}

// Resolve returns the benchmark targets for path. A regular file is a single
// target whatever its extension. A directory yields its immediate candidate
// entries in enumeration order; subdirectories are not descended into, and
// entries are not stat'ed, so a subdirectory named like an image is returned
// and fails later at load time.
//
// A non-nil error describes a non-fatal problem. When a directory listing
// fails part way, the entries read before the failure are still returned.
func Resolve(fsys FileSystem, path string) ([]string, error) {
	kind, err := Classify(fsys, path)
	if err != nil {
		return nil, err
	}

	if kind == KindFile {
		return []string{path}, nil
	}

	entries, err := fsys.ReadDir(path)
	var targets []string
	for _, entry := range entries {
		if !IsCandidate(entry.Name()) {
			continue
		}
		targets = append(targets, fsys.Join(path, entry.Name()))
	}

	if err != nil {
		return targets, &Error{Reason: ErrDirectoryOpen, Path: path, Err: err}
	}
	return targets, nil
}
