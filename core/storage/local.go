package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// LocalDisk is a disk backed by a filesystem rooted at a base path.
type LocalDisk struct {
	name string
	fs   afero.Fs
}

// NewLocalDisk creates a disk over fs. Paths are resolved relative to the root of fs.
func NewLocalDisk(name string, fs afero.Fs) *LocalDisk {
	return &LocalDisk{name: name, fs: fs}
}

// NewLocalDiskAt creates a disk rooted at a directory of the OS filesystem.
func NewLocalDiskAt(name, root string) *LocalDisk {
	return NewLocalDisk(name, afero.NewBasePathFs(afero.NewOsFs(), root))
}

func (d *LocalDisk) Name() string {
	return d.name
}

func (d *LocalDisk) Exists(ctx context.Context, path string) (bool, error) {
	ok, err := afero.Exists(d.fs, clean(path))
	if err != nil {
		return false, fmt.Errorf("stat %s on disk %s: %w", path, d.name, err)
	}
	return ok, nil
}

func (d *LocalDisk) AllFiles(ctx context.Context, prefix string) ([]string, error) {
	var files []string
	err := afero.Walk(d.fs, clean(prefix), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !info.IsDir() {
			files = append(files, strings.TrimPrefix(filepath.ToSlash(path), "/"))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s on disk %s: %w", prefix, d.name, err)
	}
	return files, nil
}

func (d *LocalDisk) Delete(ctx context.Context, path string) (bool, error) {
	err := d.fs.Remove(clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("remove %s on disk %s: %w", path, d.name, err)
	}
	return true, nil
}

func (d *LocalDisk) MakeDirectory(ctx context.Context, path string) error {
	if err := d.fs.MkdirAll(clean(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s on disk %s: %w", path, d.name, err)
	}
	return nil
}

// clean converts a slash-separated disk path to a relative OS path.
func clean(path string) string {
	return filepath.FromSlash(strings.TrimPrefix(path, "/"))
}
