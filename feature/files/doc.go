// Package files owns the file registry: the file_records table of uploaded files.
//
// # Registry
//
// Registry adapts the table to reconcile.Registry. Records are read in primary key order
// in batches, looked up by exact (disk, path) and soft-deleted, so a reconciled record stays
// in the table with deleted_at set.
//
// # HTTP API
//
//   - GET  /files/reconcile: dry-run report, nothing is changed.
//   - POST /files/reconcile: reconcile; ?dry_run=true previews instead.
//
// Both return the JSON report plus its human-readable lines. The status is "partial" when a
// disk could not be reconciled, and 409 is returned while another run is in progress.
//
// # Schema
//
// Migrate auto-migrates the FileRecord model. It runs at startup when database.auto_migrate
// is set.
package files
