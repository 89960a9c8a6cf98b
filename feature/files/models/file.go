package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FileType is the declared kind of an uploaded file.
type FileType string

const (
	FileTypeImage    FileType = "image"
	FileTypeDocument FileType = "document"
	FileTypeVideo    FileType = "video"
	FileTypeAudio    FileType = "audio"
)

// Valid reports whether t is a known file type.
func (t FileType) Valid() bool {
	switch t {
	case FileTypeImage, FileTypeDocument, FileTypeVideo, FileTypeAudio:
		return true
	default:
		return false
	}
}

// FileRecord is a previously uploaded file.
// (Disk, Path) is expected to be unique among non-deleted records.
type FileRecord struct {
	ID           uint64            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID       *uint64           `gorm:"column:user_id;index" json:"user_id"`
	OriginalName string            `gorm:"column:original_name;type:varchar(255);not null" json:"original_name"`
	FileName     string            `gorm:"column:file_name;type:varchar(255);not null" json:"file_name"`
	Path         string            `gorm:"column:path;type:varchar(500);not null;index:idx_file_records_disk_path,priority:2" json:"path"`
	Disk         string            `gorm:"column:disk;type:varchar(50);not null;default:public;index:idx_file_records_disk_path,priority:1" json:"disk"`
	FileType     FileType          `gorm:"column:file_type;type:varchar(20);not null" json:"file_type"`
	MimeType     string            `gorm:"column:mime_type;type:varchar(100)" json:"mime_type"`
	Size         int64             `gorm:"column:size" json:"size"`
	IsPublic     bool              `gorm:"column:is_public;not null;default:false" json:"is_public"`
	Metadata     datatypes.JSONMap `gorm:"column:metadata" json:"metadata"`
	UploadedAt   time.Time         `gorm:"column:uploaded_at" json:"uploaded_at"`
	CreatedAt    time.Time         `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time         `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt    gorm.DeletedAt    `gorm:"column:deleted_at;index" json:"-"`
}

// TableName returns the table name.
func (FileRecord) TableName() string {
	return "file_records"
}
