package files

import (
	"context"
	"fmt"
	"testing"

	"school-admin/core/reconcile"
	"school-admin/core/storage"
	"school-admin/feature/files/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates a migrated in-memory SQLite DB.
func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func seed(t *testing.T, db *gorm.DB, records ...models.FileRecord) {
	t.Helper()
	for i := range records {
		require.NoError(t, db.Create(&records[i]).Error)
	}
}

func record(disk, path string) models.FileRecord {
	return models.FileRecord{
		OriginalName: path,
		FileName:     path,
		Path:         path,
		Disk:         disk,
		FileType:     models.FileTypeDocument,
		MimeType:     "application/pdf",
		Size:         3,
	}
}

func TestRegistry_EachRecord(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db,
		record("local", "uploads/a.pdf"),
		record("public", "uploads/b.png"),
		record("local", "uploads/c.pdf"),
	)
	require.NoError(t, db.Delete(&models.FileRecord{}, 2).Error)

	// Batch size smaller than the table forces several queries.
	registry := NewRegistry(db, 1)

	var got []reconcile.Record
	err := registry.EachRecord(context.Background(), func(rec reconcile.Record) error {
		got = append(got, rec)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []reconcile.Record{
		{ID: 1, Disk: "local", Path: "uploads/a.pdf"},
		{ID: 3, Disk: "local", Path: "uploads/c.pdf"},
	}, got)

	t.Run("StopsOnError", func(t *testing.T) {
		calls := 0
		err := registry.EachRecord(context.Background(), func(rec reconcile.Record) error {
			calls++
			return assert.AnError
		})
		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 1, calls)
	})
}

func TestRegistry_PathSetAndDisks(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db,
		record("local", "uploads/a.pdf"),
		record("public", "uploads/b.png"),
		record("s3", "uploads/c.mp4"),
		record("public", "uploads/gone.png"),
	)
	require.NoError(t, db.Delete(&models.FileRecord{}, 4).Error)
	registry := NewRegistry(db, 0)
	ctx := context.Background()

	paths, err := registry.PathSet(ctx, "public")
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"uploads/b.png": {}}, paths)

	disks, err := registry.Disks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"local", "public", "s3"}, disks)
}

func TestRegistry_DeleteIsSoft(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db, record("local", "uploads/a.pdf"))
	registry := NewRegistry(db, 10)

	require.NoError(t, registry.Delete(context.Background(), 1))

	var live int64
	require.NoError(t, db.Model(&models.FileRecord{}).Count(&live).Error)
	assert.Equal(t, int64(0), live)

	var stored models.FileRecord
	require.NoError(t, db.Unscoped().First(&stored, 1).Error)
	assert.True(t, stored.DeletedAt.Valid)
}

func TestRegistry_Errors(t *testing.T) {
	db, mock := setupMockDB(t)
	registry := NewRegistry(db, 10)
	ctx := context.Background()

	mock.ExpectQuery("SELECT .* FROM `file_records`").WillReturnError(assert.AnError)
	_, err := registry.PathSet(ctx, "local")
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "disk local")

	mock.ExpectQuery("SELECT .* FROM `file_records`").WillReturnError(assert.AnError)
	err = registry.EachRecord(ctx, func(reconcile.Record) error { return nil })
	assert.ErrorIs(t, err, assert.AnError)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `file_records` SET `deleted_at`").WillReturnError(assert.AnError)
	mock.ExpectRollback()
	err = registry.Delete(ctx, 7)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "file record 7")
}

// Reconciles a SQLite registry against in-memory disks end to end.
func TestRegistry_Reconcile(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db,
		record("local", "uploads/a.pdf"),
		record("public", "uploads/gone.png"),
	)

	local := afero.NewMemMapFs()
	public := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(local, "uploads/a.pdf", []byte("pdf"), 0o644))
	require.NoError(t, afero.WriteFile(public, "uploads/stray.png", []byte("png"), 0o644))
	require.NoError(t, afero.WriteFile(public, "uploads/thumbnails/gone.png", []byte("png"), 0o644))

	engine := reconcile.NewEngine(
		NewRegistry(db, 1),
		storage.NewManager(storage.NewLocalDisk("local", local), storage.NewLocalDisk("public", public)),
		reconcile.Config{Disks: []string{"public", "local"}, RootPrefix: "uploads", ThumbnailSegment: "/thumbnails/"},
		zap.NewNop(),
	)
	ctx := context.Background()

	preview, err := engine.Reconcile(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 1, preview.Missing.Count)
	assert.Equal(t, uint64(2), preview.Missing.Actions[0].RecordID)
	assert.Equal(t, 1, preview.Orphaned.Count)

	var live int64
	require.NoError(t, db.Model(&models.FileRecord{}).Count(&live).Error)
	assert.Equal(t, int64(2), live)

	applied, err := engine.Reconcile(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), applied.Missing.Actions[0].RecordID)
	assert.Equal(t, "deleted file public:uploads/stray.png", applied.Orphaned.Actions[0].String())

	require.NoError(t, db.Model(&models.FileRecord{}).Count(&live).Error)
	assert.Equal(t, int64(1), live)
	ok, _ := afero.Exists(public, "uploads/thumbnails/gone.png")
	assert.True(t, ok)

	again, err := engine.Reconcile(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Missing.Count)
	assert.Equal(t, 0, again.Orphaned.Count)
}
