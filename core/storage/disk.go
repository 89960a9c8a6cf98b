package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Disk names used by the default configuration.
const (
	DiskLocal  = "local"
	DiskPublic = "public"
)

// ErrUnknownDisk is returned when a disk name is not configured.
var ErrUnknownDisk = errors.New("unknown disk")

// Disk is a named file store. Paths are slash-separated and relative to the disk root.
type Disk interface {
	// Name returns the configured name of the disk.
	Name() string
	// Exists reports whether a file or directory exists at path.
	Exists(ctx context.Context, path string) (bool, error)
	// AllFiles recursively lists every file under prefix.
	AllFiles(ctx context.Context, prefix string) ([]string, error)
	// Delete removes the file at path. It returns false if there was nothing to delete.
	Delete(ctx context.Context, path string) (bool, error)
	// MakeDirectory creates the directory at path, including parents.
	MakeDirectory(ctx context.Context, path string) error
}

// Manager resolves disks by name.
type Manager struct {
	disks map[string]Disk
}

// NewManager creates a manager over the given disks. Later disks replace earlier ones with the same name.
func NewManager(disks ...Disk) *Manager {
	m := &Manager{disks: make(map[string]Disk, len(disks))}
	for _, d := range disks {
		m.disks[d.Name()] = d
	}
	return m
}

// NewManagerFromConfig mounts the local and public disks, plus the object disk when configured.
func NewManagerFromConfig(cfg Config) (*Manager, error) {
	disks := []Disk{
		NewLocalDiskAt(DiskLocal, cfg.LocalRoot),
		NewLocalDiskAt(DiskPublic, cfg.PublicRoot),
	}

	if cfg.ObjectDisk != "" {
		client, err := NewClient(cfg)
		if err != nil {
			return nil, err
		}
		disks = append(disks, NewObjectDisk(cfg.ObjectDisk, client, cfg.Bucket))
	}

	return NewManager(disks...), nil
}

// Disk returns the disk registered under name.
func (m *Manager) Disk(name string) (Disk, error) {
	d, ok := m.disks[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDisk, name)
	}
	return d, nil
}

// Names returns the sorted names of all mounted disks.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.disks))
	for name := range m.disks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
