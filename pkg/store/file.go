package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

var _ Store = (*File)(nil)

// File keeps one file per key under a directory.
type File struct {
	fs  afero.Fs
	dir string
}

// NewFile returns a File store rooted at dir on fsys, creating dir when
// missing. A nil fsys means the OS filesystem.
func NewFile(fsys afero.Fs, dir string) (*File, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if dir == "" {
		dir = "."
	}
	if err := fsys.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create store dir %s: %w", dir, err)
	}
	return &File{fs: fsys, dir: dir}, nil
}

func (f *File) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(f.dir, key), nil
}

func (f *File) Get(key string) (string, error) {
	p, err := f.path(key)
	if err != nil {
		return "", err
	}
	data, err := afero.ReadFile(f.fs, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func (f *File) Set(key, value string) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	return afero.WriteFile(f.fs, p, []byte(value+"\n"), 0o640)
}

func (f *File) Delete(key string) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	if err := f.fs.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (f *File) Close() error { return nil }
