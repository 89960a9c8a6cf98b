package storage_test

import (
	"testing"

	"school-admin/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "test-bucket",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestNewManagerFromConfig(t *testing.T) {
	t.Run("LocalOnly", func(t *testing.T) {
		m, err := storage.NewManagerFromConfig(storage.Config{
			LocalRoot:  t.TempDir(),
			PublicRoot: t.TempDir(),
		})
		assert.NoError(t, err)
		assert.Equal(t, []string{"local", "public"}, m.Names())
	})

	t.Run("WithObjectDisk", func(t *testing.T) {
		m, err := storage.NewManagerFromConfig(storage.Config{
			LocalRoot:  t.TempDir(),
			PublicRoot: t.TempDir(),
			ObjectDisk: "s3",
			Endpoint:   "http://localhost:9000",
			AccessKey:  "testkey",
			SecretKey:  "testsecret",
			Bucket:     "school-files",
		})
		assert.NoError(t, err)
		assert.Equal(t, []string{"local", "public", "s3"}, m.Names())
	})
}
