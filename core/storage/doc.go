// Package storage provides the named disks that uploaded files live on.
//
// A Disk is a file store addressed by slash-separated relative paths. Two implementations
// are provided:
//
//   - LocalDisk: a directory of the local filesystem (via afero, so tests can use an
//     in-memory filesystem). The "local" and "public" disks are both LocalDisks.
//   - ObjectDisk: a bucket of an S3-compatible object store, accessed through the
//     MinIO Go client wrapped by the Client interface (mocked in core/storage/mocks).
//
// # Manager
//
// The Manager resolves disks by name. NewManagerFromConfig mounts "local" and "public"
// from the configured roots, and the object bucket under storage.object_disk when set.
//
// # Usage
//
//	disks, err := storage.NewManagerFromConfig(cfg.Storage)
//	d, err := disks.Disk("public")
//	ok, err := d.Exists(ctx, "uploads/avatars/42.png")
package storage
