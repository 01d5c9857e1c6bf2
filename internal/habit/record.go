package habit

import (
	"time"

	"github.com/google/uuid"
)

// Record is one timestamped occurrence of a habit.
//
// ID is an opaque unique token (UUIDv7, so records sort by creation
// time). Habit references the owning habit by title; many records may
// reference one habit.
type Record struct {
	ID    string    `json:"id"`
	Habit string    `json:"habit"`
	Added time.Time `json:"added"`
}

// recordFields is the declared column order of the habit_records table.
var recordFields = []string{"id", "habit", "added"}

// NewRecord mints a Record for the given habit title at the given
// moment. Panics only if UUID generation fails, which does not happen
// in practice.
func NewRecord(title string, at time.Time) Record {
	return Record{
		ID:    uuid.Must(uuid.NewV7()).String(),
		Habit: title,
		Added: at.UTC(),
	}
}

// RecordFromRow decodes a raw habit_records row into a Record.
//
// The values must match the declared field order (id, habit, added).
// Returns *MalformedRecordError on count mismatch or an uncoercible
// value.
func RecordFromRow(values []any) (Record, error) {
	if len(values) != len(recordFields) {
		return Record{}, newFieldCountError("record", len(recordFields), len(values))
	}

	id, err := coerceString("record", recordFields[0], values[0])
	if err != nil {
		return Record{}, err
	}
	title, err := coerceString("record", recordFields[1], values[1])
	if err != nil {
		return Record{}, err
	}
	added, err := coerceTime("record", recordFields[2], values[2])
	if err != nil {
		return Record{}, err
	}

	return Record{ID: id, Habit: title, Added: added}, nil
}

// Alias maps an alternate lookup name onto a habit title.
type Alias struct {
	Habit string `json:"habit"`
	Name  string `json:"name"`
}
