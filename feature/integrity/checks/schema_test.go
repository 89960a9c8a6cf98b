package checks

import (
	"fmt"
	"testing"

	"school-admin/feature/files"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

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

func fileRecordColumns() *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	rows.AddRow("id", "bigint unsigned", "NO", "PRI", nil, "auto_increment")
	rows.AddRow("user_id", "bigint unsigned", "YES", "MUL", nil, "")
	rows.AddRow("original_name", "varchar(255)", "NO", "", nil, "")
	rows.AddRow("file_name", "varchar(255)", "NO", "", nil, "")
	rows.AddRow("path", "varchar(500)", "NO", "", nil, "")
	rows.AddRow("disk", "varchar(50)", "NO", "MUL", "public", "")
	rows.AddRow("file_type", "varchar(20)", "NO", "", nil, "")
	rows.AddRow("mime_type", "varchar(100)", "YES", "", nil, "")
	rows.AddRow("size", "bigint", "YES", "", nil, "")
	rows.AddRow("is_public", "tinyint(1)", "NO", "", "0", "")
	rows.AddRow("metadata", "json", "YES", "", nil, "")
	rows.AddRow("uploaded_at", "datetime(3)", "YES", "", nil, "")
	rows.AddRow("created_at", "datetime(3)", "YES", "", nil, "")
	rows.AddRow("updated_at", "datetime(3)", "YES", "", nil, "")
	return rows
}

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(nil)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckSchema_MissingColumn(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SHOW COLUMNS FROM `file_records`").WillReturnRows(fileRecordColumns())

	report, err := CheckSchema(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)

	tbl, ok := report.Tables["file_records"]
	require.True(t, ok)
	assert.Equal(t, "error", tbl.Status)
	assert.Equal(t, []string{"deleted_at"}, tbl.MissingColumns)
	assert.Empty(t, tbl.TypeMismatches)
}

func TestCheckSchema_TypeMismatch(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	rows.AddRow("id", "int(11)", "NO", "PRI", nil, "")
	rows.AddRow("path", "varchar(191)", "NO", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `file_records`").WillReturnRows(rows)

	report, err := CheckSchema(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Contains(t, report.Tables["file_records"].TypeMismatches, "path: expected varchar(500), got varchar(191)")
}

func TestCheckSchema_InspectError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SHOW COLUMNS FROM `file_records`").WillReturnError(assert.AnError)

	report, err := CheckSchema(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Len(t, report.Errors, 1)
}

func TestCheckSchema_SQLite(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	t.Run("TableMissing", func(t *testing.T) {
		report, err := CheckSchema(db)
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Contains(t, report.Errors, "Table file_records does not exist")
	})

	t.Run("Migrated", func(t *testing.T) {
		require.NoError(t, files.Migrate(db))

		report, err := CheckSchema(db)
		require.NoError(t, err)
		assert.True(t, report.Matched, "report: %+v", report)
		assert.Equal(t, "ok", report.Tables["file_records"].Status)
	})
}

func TestParseGormTags(t *testing.T) {
	assert.Equal(t, "id", parseGormColumn("column:id;primaryKey"))
	assert.Equal(t, "path", parseGormColumn("type:varchar(500);column:path"))
	assert.Equal(t, "varchar(50)", parseGormType("column:disk;type:varchar(50);not null"))
	assert.Equal(t, "", parseGormType("column:id"))
}
