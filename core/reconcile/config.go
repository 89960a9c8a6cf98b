package reconcile

// Config holds configuration for file reconciliation.
type Config struct {
	// Disks lists the disks scanned for orphaned files.
	Disks []string `mapstructure:"disks" default:"public,local"`
	// RootPrefix is the directory under which uploads live on every disk.
	RootPrefix string `mapstructure:"root_prefix" default:"uploads"`
	// ThumbnailSegment marks derived files that never have a record of their own.
	ThumbnailSegment string `mapstructure:"thumbnail_segment" default:"/thumbnails/"`
	// BatchSize is the number of records loaded per registry query.
	BatchSize int `mapstructure:"batch_size" default:"500"`
}
