package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/outlay-dev/outlay/internal/engine"
	"github.com/outlay-dev/outlay/internal/model"
)

// DefaultFile is the ledger file name inside a project root.
const DefaultFile = "expenses.csv"

// StorageError wraps a failure of the underlying expenses file. It is opaque
// to the engine, which only ever sees in-memory snapshots.
type StorageError struct {
	Path string
	Err  error
}

func (e StorageError) Error() string { return fmt.Sprintf("expense store %s: %v", e.Path, e.Err) }

func (e StorageError) Unwrap() error { return e.Err }

// Store provides append and snapshot-read access to one expenses.csv.
// Each report computation reads the file once up front and never again
// mid-computation, so a racing write can only make a report slightly stale,
// never internally inconsistent.
type Store struct {
	path string
}

// NewStore creates a Store over the given expenses.csv path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the ledger file path.
func (s *Store) Path() string { return s.path }

// Init creates an empty ledger containing only the header row. Fails if the
// file already exists; an existing ledger is never overwritten.
func (s *Store) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return StorageError{Path: s.path, Err: errors.New("ledger already exists")}
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return StorageError{Path: s.path, Err: err}
		}
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return StorageError{Path: s.path, Err: err}
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, Header); err != nil {
		return StorageError{Path: s.path, Err: err}
	}
	return nil
}

// ListAll reads the full record set in one pass. Malformed rows come back as
// RowErrors alongside the valid records; a missing file reads as an empty
// ledger.
func (s *Store) ListAll() ([]model.ExpenseRecord, []RowError, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, StorageError{Path: s.path, Err: err}
	}
	defer f.Close()

	records, rowErrs, err := ReadRecords(f)
	if err != nil {
		return nil, nil, StorageError{Path: s.path, Err: err}
	}
	return records, rowErrs, nil
}

// Append validates and appends one record, creating the file with a header
// when it does not exist yet. A validation failure leaves the file untouched.
func (s *Store) Append(rec model.ExpenseRecord) error {
	return s.AppendAll([]model.ExpenseRecord{rec})
}

// AppendAll validates and appends a batch of records in one write. Any
// invalid record rejects the whole batch before anything is written.
func (s *Store) AppendAll(records []model.ExpenseRecord) error {
	for i, rec := range records {
		if err := engine.ValidateRecord(rec); err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
	}

	isNew := false
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return StorageError{Path: s.path, Err: err}
		}
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return StorageError{Path: s.path, Err: err}
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return StorageError{Path: s.path, Err: err}
		}
	}

	if err := AppendRecords(f, records); err != nil {
		return StorageError{Path: s.path, Err: err}
	}
	return nil
}
