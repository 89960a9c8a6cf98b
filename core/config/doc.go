// Package config provides configuration management for the school admin backend.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of every
// section, and env keys follow SECTION_KEY (e.g. SERVER_PORT, CACHE_DRIVER).
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP server settings (port, API key, shutdown timeout)
//   - Database: MySQL or SQLite connection details
//   - Storage: local disk roots and the optional MinIO/S3 disk
//   - Log: Logging level and format
//   - Cache: memory or Redis cache for translations
//   - Translation: translation backend endpoint and cache duration
//   - Reconcile: scanned disks, upload prefix and batch size
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
