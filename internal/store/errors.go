package store

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/roach88/habits/internal/habit"
)

// errEmptyTitle rejects empty titles and alias names before they
// reach the database.
var errEmptyTitle = errors.New("title must be non-empty")

// ErrorCode categorizes store failures.
type ErrorCode string

const (
	// ErrCodeInit indicates the store file or directory could not be
	// created, opened, or populated with the schema. Fatal.
	ErrCodeInit ErrorCode = "STORAGE_INIT"

	// ErrCodeDuplicate indicates a uniqueness violation on habits.title
	// or habit_names.name.
	ErrCodeDuplicate ErrorCode = "DUPLICATE_HABIT"

	// ErrCodeMalformed indicates a persisted row could not be decoded
	// into its entity type - store corruption or schema drift.
	ErrCodeMalformed ErrorCode = "MALFORMED_RECORD"

	// ErrCodeBusy indicates lock contention from another process that
	// outlasted the busy timeout. Retryable by the caller; the store
	// itself never retries.
	ErrCodeBusy ErrorCode = "STORAGE_BUSY"

	// ErrCodeQuery indicates any other store-level execution failure:
	// a malformed raw statement, a constraint violation outside the
	// duplicate-title case, and so on.
	ErrCodeQuery ErrorCode = "STORAGE_QUERY"
)

// StoreError is a classified store failure.
//
// Every error leaving this package is a *StoreError wrapping the
// underlying driver error, so callers can switch on Code (or use the
// Is* helpers) while still reaching the root cause via errors.As.
type StoreError struct {
	// Code identifies the failure category.
	Code ErrorCode

	// Op names the failed operation ("insert habit", "raw exec", ...).
	Op string

	// Title identifies the affected habit, when one is involved.
	Title string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("%s: %s (title=%q): %v", e.Code, e.Op, e.Title, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Op, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsDuplicate returns true if the error is a uniqueness violation.
// Uses errors.As to handle wrapped errors.
func IsDuplicate(err error) bool {
	return hasCode(err, ErrCodeDuplicate)
}

// IsBusy returns true if the error is retryable lock contention.
func IsBusy(err error) bool {
	return hasCode(err, ErrCodeBusy)
}

// IsInit returns true if the error is a fatal initialization failure.
func IsInit(err error) bool {
	return hasCode(err, ErrCodeInit)
}

// IsMalformed returns true if the error is an undecodable row.
func IsMalformed(err error) bool {
	return hasCode(err, ErrCodeMalformed)
}

func hasCode(err error, code ErrorCode) bool {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}

// classify wraps a driver error into the taxonomy.
//
// mattn/go-sqlite3 reports failures as sqlite3.Error with a primary
// code and an extended code; uniqueness violations carry
// ErrConstraintUnique or ErrConstraintPrimaryKey, and lock contention
// that outlasts busy_timeout carries ErrBusy or ErrLocked.
func classify(op, title string, err error) *StoreError {
	code := ErrCodeQuery

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch {
		case sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique,
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey:
			code = ErrCodeDuplicate
		case sqliteErr.Code == sqlite3.ErrBusy,
			sqliteErr.Code == sqlite3.ErrLocked:
			code = ErrCodeBusy
		}
	}

	return &StoreError{Code: code, Op: op, Title: title, Err: err}
}

// classifyRow wraps an entity decode failure, keeping the
// *habit.MalformedRecordError reachable through Unwrap.
func classifyRow(op string, err error) *StoreError {
	code := ErrCodeQuery
	if habit.IsMalformed(err) {
		code = ErrCodeMalformed
	}
	return &StoreError{Code: code, Op: op, Err: err}
}

func initError(op string, err error) *StoreError {
	return &StoreError{Code: ErrCodeInit, Op: op, Err: err}
}
