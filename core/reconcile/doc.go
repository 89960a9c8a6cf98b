// Package reconcile keeps the file registry and the storage disks in agreement.
//
// Two kinds of divergence are detected:
//
//   - Missing files: a non-deleted record whose path does not exist on its disk.
//     The record is soft-deleted.
//   - Orphaned files: a file under the upload root of a scanned disk that no non-deleted
//     record references by (disk, path). The file is deleted. Paths containing the
//     thumbnail segment ("/thumbnails/" by default) are derived files and are never orphans.
//
// Engine.Reconcile runs the missing files pass, then the orphaned files pass. With dryRun
// set nothing is changed and every action is reported as "would delete ...".
//
// # Failure handling
//
// Disks are reconciled independently. When a disk cannot be checked, listed or written,
// the error is recorded as a DiskFailure in the pass result and the remaining disks are
// still processed. Registry errors abort the run. Only one run may be active per Engine;
// an overlapping call returns ErrInProgress.
//
// # Scanned disks
//
// The orphan pass scans the disks named in reconcile.disks ("public,local" by default).
// Disks referenced by records but missing from that list are logged as a warning and left
// alone, so a new disk is never scanned until it is configured.
//
// # Usage
//
//	engine := reconcile.NewEngine(files.NewRegistry(db, cfg.Reconcile.BatchSize), disks, cfg.Reconcile, logger)
//	report, err := engine.Reconcile(ctx, true)
//	for _, line := range report.Lines() {
//	    fmt.Println(line)
//	}
package reconcile
