package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/roach88/habits/internal/habit"
)

// ListHabits returns all habits.
//
// SQLite does not guarantee row order without ORDER BY, so results are
// sorted by title for stable output. Returns an empty slice (not nil)
// when no habits exist.
//
// Rows are decoded through habit.FromRow; an undecodable row surfaces
// as MALFORMED_RECORD rather than being dropped.
func (s *Store) ListHabits(ctx context.Context) ([]habit.Habit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, description, required, negative
		FROM habits
		ORDER BY title ASC
	`)
	if err != nil {
		return nil, classify("list habits", "", err)
	}
	defer rows.Close()

	habits := []habit.Habit{}
	for rows.Next() {
		var title, description any
		var required, negative any
		if err := rows.Scan(&title, &description, &required, &negative); err != nil {
			return nil, classify("scan habit", "", err)
		}

		h, err := habit.FromRow([]any{title, description, required, negative})
		if err != nil {
			return nil, classifyRow("decode habit", err)
		}
		habits = append(habits, h)
	}

	if err := rows.Err(); err != nil {
		return nil, classify("iterate habits", "", err)
	}

	return habits, nil
}

// GetHabit retrieves a single habit by exact title.
// Returns sql.ErrNoRows (wrapped) if not found.
func (s *Store) GetHabit(ctx context.Context, title string) (habit.Habit, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT title, description, required, negative
		FROM habits
		WHERE title = ?
	`, title)

	var t, d, r, n any
	if err := row.Scan(&t, &d, &r, &n); err != nil {
		return habit.Habit{}, classify("get habit", title, err)
	}

	h, err := habit.FromRow([]any{t, d, r, n})
	if err != nil {
		return habit.Habit{}, classifyRow("decode habit", err)
	}
	return h, nil
}

// ListRecords returns all occurrence records for one habit, newest
// first. Returns an empty slice (not nil) when none exist.
func (s *Store) ListRecords(ctx context.Context, title string) ([]habit.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, habit, added
		FROM habit_records
		WHERE habit = ?
		ORDER BY added DESC, id DESC
	`, title)
	if err != nil {
		return nil, classify("list records", title, err)
	}
	defer rows.Close()

	records := []habit.Record{}
	for rows.Next() {
		var id, habitTitle, added any
		if err := rows.Scan(&id, &habitTitle, &added); err != nil {
			return nil, classify("scan record", title, err)
		}

		rec, err := habit.RecordFromRow([]any{id, habitTitle, added})
		if err != nil {
			return nil, classifyRow("decode record", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, classify("iterate records", title, err)
	}

	return records, nil
}

// Resolve maps a habit title or alias name to the canonical habit
// title. Titles win over aliases; lookup is exact after normalization.
//
// Returns a STORAGE_QUERY error wrapping sql.ErrNoRows when neither a
// habit nor an alias matches.
func (s *Store) Resolve(ctx context.Context, name string) (string, error) {
	name = habit.NormalizeTitle(name)

	var title string
	err := s.db.QueryRowContext(ctx,
		`SELECT title FROM habits WHERE title = ?`, name,
	).Scan(&title)
	if err == nil {
		return title, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", classify("resolve habit", name, err)
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT habit FROM habit_names WHERE name = ?`, name,
	).Scan(&title)
	if err != nil {
		return "", classify("resolve habit", name, err)
	}
	return title, nil
}
