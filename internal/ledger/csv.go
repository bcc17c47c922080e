// Package ledger is the record store: a flat, append-only expenses.csv.
// The file is the user's and may be edited by hand, so every read treats it
// as untrusted input.
package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/outlay-dev/outlay/internal/engine"
	"github.com/outlay-dev/outlay/internal/model"
)

// Header is the CSV header for expenses.csv.
const Header = "date,category,amount,note"

const (
	numFields   = 4
	dateFormat  = "2006-01-02"
	colDate     = 0
	colCategory = 1
	colAmount   = 2
	colNote     = 3
)

// RowError reports one malformed row encountered during a read. Valid rows
// around it are still returned; the caller decides whether to proceed.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string { return fmt.Sprintf("row %d: %v", e.Line, e.Err) }

func (e RowError) Unwrap() error { return e.Err }

// ReadRecords reads all expense records from an expenses.csv reader.
// Rows that cannot be parsed, or that fail record validation, are collected
// as RowErrors rather than aborting the read, so one bad hand-edited line
// cannot hold the rest of the ledger hostage. Nothing is ever silently
// skipped or defaulted: every bad row surfaces in the returned slice.
func ReadRecords(r io.Reader) ([]model.ExpenseRecord, []RowError, error) {
	cr := csv.NewReader(r)
	// Field-count mismatches are reported per row, not as a read failure.
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading expenses CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	var records []model.ExpenseRecord
	var rowErrs []RowError
	for i, row := range rows[1:] {
		rec, err := UnmarshalRecord(row)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Line: i + 2, Err: err})
			continue
		}
		records = append(records, rec)
	}
	return records, rowErrs, nil
}

// WriteRecords writes records to an expenses.csv writer, header included.
func WriteRecords(w io.Writer, records []model.ExpenseRecord) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range records {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendRecords appends records to an existing expenses.csv writer (no header).
func AppendRecords(w io.Writer, records []model.ExpenseRecord) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, rec := range records {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalRecord converts an ExpenseRecord to a CSV row ([]string).
func MarshalRecord(rec model.ExpenseRecord) []string {
	row := make([]string, numFields)
	row[colDate] = rec.Date.Format(dateFormat)
	row[colCategory] = rec.Category
	row[colAmount] = rec.Amount.StringFixed(2)
	row[colNote] = rec.Note
	return row
}

// UnmarshalRecord converts a CSV row to an ExpenseRecord, enforcing both
// parse rules and record validity (non-empty category, non-negative amount).
func UnmarshalRecord(row []string) (model.ExpenseRecord, error) {
	if len(row) != numFields {
		return model.ExpenseRecord{}, fmt.Errorf("expected %d fields, got %d", numFields, len(row))
	}

	date, err := time.Parse(dateFormat, row[colDate])
	if err != nil {
		return model.ExpenseRecord{}, fmt.Errorf("parsing date %q: %w", row[colDate], err)
	}

	amount, err := decimal.NewFromString(row[colAmount])
	if err != nil {
		return model.ExpenseRecord{}, fmt.Errorf("parsing amount %q: %w", row[colAmount], err)
	}

	rec := model.ExpenseRecord{
		Date:     date,
		Category: row[colCategory],
		Amount:   amount,
		Note:     row[colNote],
	}
	if err := engine.ValidateRecord(rec); err != nil {
		return model.ExpenseRecord{}, err
	}
	return rec, nil
}
