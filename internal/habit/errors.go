package habit

import (
	"errors"
	"fmt"
	"time"
)

// MalformedRecordError reports a persisted row that cannot be decoded
// into its entity type. It indicates store corruption or schema drift
// and is always surfaced, never dropped.
type MalformedRecordError struct {
	// Entity names the target entity type ("habit", "record").
	Entity string

	// Field names the offending column, empty for count mismatches.
	Field string

	// Reason is a human-readable description of the mismatch.
	Reason string
}

// Error implements the error interface.
func (e *MalformedRecordError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed %s row: field %q: %s", e.Entity, e.Field, e.Reason)
	}
	return fmt.Sprintf("malformed %s row: %s", e.Entity, e.Reason)
}

// IsMalformed returns true if the error is a malformed-record error.
// Uses errors.As to handle wrapped errors.
func IsMalformed(err error) bool {
	var me *MalformedRecordError
	return errors.As(err, &me)
}

func newFieldCountError(entity string, want, got int) *MalformedRecordError {
	return &MalformedRecordError{
		Entity: entity,
		Reason: fmt.Sprintf("expected %d values, got %d", want, got),
	}
}

func newCoercionError(entity, field string, value any, want string) *MalformedRecordError {
	return &MalformedRecordError{
		Entity: entity,
		Field:  field,
		Reason: fmt.Sprintf("cannot coerce %T (%v) to %s", value, value, want),
	}
}

// coerceString accepts the representations SQLite hands back for TEXT
// columns: string and []byte.
func coerceString(entity, field string, value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", newCoercionError(entity, field, value, "string")
	}
}

// coerceBool accepts bool plus SQLite's integer encoding of BOOLEAN
// columns (strictly 0 or 1; anything else is drift).
func coerceBool(entity, field string, value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case int64:
		switch v {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
	}
	return false, newCoercionError(entity, field, value, "bool")
}

// timeLayouts are the textual timestamp encodings accepted from
// TIMESTAMP columns, tried in order.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
}

// coerceTime accepts time.Time (the driver parses declared TIMESTAMP
// columns itself) plus textual fallbacks for rows written by other
// tools through the raw escape hatch.
//
// The zero time is rejected: mattn/go-sqlite3 substitutes it when a
// stored TIMESTAMP value fails to parse, so a zero here means the row
// holds garbage, not a real timestamp.
func coerceTime(entity, field string, value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return time.Time{}, newCoercionError(entity, field, value, "time")
		}
		return v.UTC(), nil
	case string:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t.UTC(), nil
			}
		}
	case []byte:
		return coerceTime(entity, field, string(v))
	}
	return time.Time{}, newCoercionError(entity, field, value, "time")
}
