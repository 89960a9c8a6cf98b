package storage

// Config holds configuration for the storage disks.
type Config struct {
	// LocalRoot is the filesystem root of the private "local" disk.
	LocalRoot string `mapstructure:"local_root" default:"storage/app"`
	// PublicRoot is the filesystem root of the web-accessible "public" disk.
	PublicRoot string `mapstructure:"public_root" default:"storage/app/public"`
	// ObjectDisk is the disk name the object storage bucket is mounted as.
	// Empty disables the object storage disk.
	ObjectDisk string `mapstructure:"object_disk" default:""`
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket backing the object disk.
	Bucket string `mapstructure:"bucket" default:"school-files"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
