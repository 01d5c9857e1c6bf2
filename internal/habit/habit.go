package habit

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Habit is the unit of tracking: a named behavior with a free-text
// description and two classification flags.
//
// Title is the primary key. Required marks behaviors that must be done
// (as opposed to optionally done); Negative marks occurrences that
// represent an undesired event rather than an accomplishment.
type Habit struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Negative    bool   `json:"negative"`
}

// habitFields is the declared column order of the habits table.
// FromRow decodes positionally against this order.
var habitFields = []string{"title", "description", "required", "negative"}

// FromRow decodes a raw habits row into a Habit.
//
// The values must match the declared field order (title, description,
// required, negative). Returns *MalformedRecordError when the value
// count mismatches or a value cannot be coerced to its declared type.
func FromRow(values []any) (Habit, error) {
	if len(values) != len(habitFields) {
		return Habit{}, newFieldCountError("habit", len(habitFields), len(values))
	}

	title, err := coerceString("habit", habitFields[0], values[0])
	if err != nil {
		return Habit{}, err
	}
	description, err := coerceString("habit", habitFields[1], values[1])
	if err != nil {
		return Habit{}, err
	}
	required, err := coerceBool("habit", habitFields[2], values[2])
	if err != nil {
		return Habit{}, err
	}
	negative, err := coerceBool("habit", habitFields[3], values[3])
	if err != nil {
		return Habit{}, err
	}

	return Habit{
		Title:       title,
		Description: description,
		Required:    required,
		Negative:    negative,
	}, nil
}

// NormalizeTitle canonicalizes a habit title (or alias name) for
// storage and lookup: surrounding whitespace is trimmed and the string
// is put into Unicode NFC so that visually identical titles compare
// equal regardless of input composition.
func NormalizeTitle(title string) string {
	return norm.NFC.String(strings.TrimSpace(title))
}

// ValidTitle reports whether a title is acceptable as a primary key.
// Only emptiness after normalization is rejected; any other text is
// the user's business.
func ValidTitle(title string) bool {
	return NormalizeTitle(title) != ""
}
