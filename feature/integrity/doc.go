// Package integrity provides system health checks for the file registry and its disks.
//
// Unlike the reconciler, which compares individual files with records, this package
// validates the infrastructure the reconciler relies on.
//
// # Checks Provided
//
//   - Structure: Checks that every scanned disk has the upload root (e.g., uploads/).
//     The fix creates the missing roots.
//   - Bucket: Checks that the object storage bucket exists, when an object disk is configured.
//   - Schema: Validates that the file_records table matches the FileRecord model (columns, types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/schema : Runs schema check.
package integrity
