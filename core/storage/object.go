package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
)

// ObjectDisk is a disk backed by a bucket of an S3-compatible object store.
type ObjectDisk struct {
	name   string
	client Client
	bucket string
}

// NewObjectDisk creates a disk over bucket.
func NewObjectDisk(name string, client Client, bucket string) *ObjectDisk {
	return &ObjectDisk{name: name, client: client, bucket: bucket}
}

func (d *ObjectDisk) Name() string {
	return d.name
}

// Exists reports whether path is an object key or a prefix holding at least one object.
func (d *ObjectDisk) Exists(ctx context.Context, path string) (bool, error) {
	key := strings.Trim(path, "/")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := minio.ListObjectsOptions{
		Prefix:    key,
		Recursive: false,
	}
	for obj := range d.client.ListObjects(ctx, d.bucket, opts) {
		if obj.Err != nil {
			return false, fmt.Errorf("list %s on disk %s: %w", key, d.name, obj.Err)
		}
		if obj.Key == key || strings.HasPrefix(obj.Key, key+"/") {
			return true, nil
		}
	}
	return false, nil
}

func (d *ObjectDisk) AllFiles(ctx context.Context, prefix string) ([]string, error) {
	opts := minio.ListObjectsOptions{
		Prefix:    strings.Trim(prefix, "/") + "/",
		Recursive: true,
	}

	var files []string
	for obj := range d.client.ListObjects(ctx, d.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list %s on disk %s: %w", prefix, d.name, obj.Err)
		}
		// Folder markers.
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		files = append(files, obj.Key)
	}
	return files, nil
}

func (d *ObjectDisk) Delete(ctx context.Context, path string) (bool, error) {
	key := strings.TrimPrefix(path, "/")
	if err := d.client.RemoveObject(ctx, d.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return false, fmt.Errorf("remove %s on disk %s: %w", key, d.name, err)
	}
	return true, nil
}

// MakeDirectory writes an empty folder marker object.
func (d *ObjectDisk) MakeDirectory(ctx context.Context, path string) error {
	key := strings.Trim(path, "/") + "/"
	_, err := d.client.PutObject(ctx, d.bucket, key, bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
	if err != nil {
		return fmt.Errorf("create folder %s on disk %s: %w", key, d.name, err)
	}
	return nil
}
