package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrInProgress is returned when a reconciliation is already running on the engine.
var ErrInProgress = errors.New("reconciliation already in progress")

// Pass names.
const (
	PassMissing  = "missing"
	PassOrphaned = "orphaned"
)

// Action types.
const (
	ActionDeleteRecord = "delete_record"
	ActionDeleteFile   = "delete_file"
)

// Record is the part of a file record the reconciler needs.
type Record struct {
	ID   uint64
	Disk string
	Path string
}

// Registry is the persisted file registry.
type Registry interface {
	// EachRecord calls fn for every non-deleted record, ordered by id. An error from fn stops the iteration.
	EachRecord(ctx context.Context, fn func(Record) error) error
	// PathSet returns the paths of every non-deleted record on disk.
	PathSet(ctx context.Context, disk string) (map[string]struct{}, error)
	// Delete soft-deletes the record with the given id.
	Delete(ctx context.Context, id uint64) error
	// Disks returns the distinct disks referenced by non-deleted records.
	Disks(ctx context.Context) ([]string, error)
}

// Action is a single divergence found by a pass, and what was or would be done about it.
type Action struct {
	Pass     string `json:"pass"`
	Type     string `json:"type"`
	Disk     string `json:"disk"`
	Path     string `json:"path"`
	RecordID uint64 `json:"record_id,omitempty"`
	// Applied is false in dry runs.
	Applied bool `json:"applied"`
}

// String renders the action as a report line, e.g. "would delete record 12 (local:uploads/a.pdf)".
func (a Action) String() string {
	verb := "would delete"
	if a.Applied {
		verb = "deleted"
	}
	if a.Type == ActionDeleteRecord {
		return fmt.Sprintf("%s record %d (%s:%s)", verb, a.RecordID, a.Disk, a.Path)
	}
	return fmt.Sprintf("%s file %s:%s", verb, a.Disk, a.Path)
}

// DiskFailure records a disk whose reconciliation was abandoned.
type DiskFailure struct {
	Disk  string `json:"disk"`
	Error string `json:"error"`
}

// PassResult is the outcome of one reconciliation pass.
type PassResult struct {
	// Count is the number of divergences found.
	Count    int           `json:"count"`
	Actions  []Action      `json:"actions"`
	Failures []DiskFailure `json:"failures,omitempty"`
}

func (r *PassResult) add(a Action) {
	r.Count++
	r.Actions = append(r.Actions, a)
}

func (r *PassResult) fail(disk string, err error) {
	r.Failures = append(r.Failures, DiskFailure{Disk: disk, Error: err.Error()})
}

// Report is the outcome of a full reconciliation run.
type Report struct {
	DryRun    bool          `json:"dry_run"`
	Missing   PassResult    `json:"missing"`
	Orphaned  PassResult    `json:"orphaned"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration_ns"`
}

// Failed reports whether any disk could not be reconciled.
func (r *Report) Failed() bool {
	return len(r.Missing.Failures) > 0 || len(r.Orphaned.Failures) > 0
}

// Lines renders the report as a human-readable action log.
func (r *Report) Lines() []string {
	var lines []string
	if r.DryRun {
		lines = append(lines, "dry run: no changes were made")
	}

	lines = append(lines, fmt.Sprintf("missing files: %d", r.Missing.Count))
	for _, a := range r.Missing.Actions {
		lines = append(lines, "  "+a.String())
	}
	for _, f := range r.Missing.Failures {
		lines = append(lines, fmt.Sprintf("  failed disk %s: %s", f.Disk, f.Error))
	}

	lines = append(lines, fmt.Sprintf("orphaned files: %d", r.Orphaned.Count))
	for _, a := range r.Orphaned.Actions {
		lines = append(lines, "  "+a.String())
	}
	for _, f := range r.Orphaned.Failures {
		lines = append(lines, fmt.Sprintf("  failed disk %s: %s", f.Disk, f.Error))
	}

	return lines
}
