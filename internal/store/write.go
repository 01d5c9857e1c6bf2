package store

import (
	"context"

	"github.com/roach88/habits/internal/habit"
)

// InsertHabit inserts one habit. The title is normalized before
// storage; an empty title is rejected without touching the store.
//
// A duplicate title returns a *StoreError with code DUPLICATE_HABIT
// and leaves the store unchanged.
func (s *Store) InsertHabit(ctx context.Context, h habit.Habit) error {
	title := habit.NormalizeTitle(h.Title)
	if title == "" {
		return &StoreError{Code: ErrCodeQuery, Op: "insert habit", Err: errEmptyTitle}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO habits (title, description, required, negative)
		VALUES (?, ?, ?, ?)
	`,
		title,
		h.Description,
		h.Required,
		h.Negative,
	)
	if err != nil {
		return classify("insert habit", title, err)
	}

	return nil
}

// InsertRecord inserts one timestamped occurrence record.
//
// The referenced habit must exist: habit_records.habit carries a
// foreign key to habits.title and the store enforces it.
func (s *Store) InsertRecord(ctx context.Context, rec habit.Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO habit_records (id, habit, added)
		VALUES (?, ?, ?)
	`,
		rec.ID,
		rec.Habit,
		rec.Added.UTC(),
	)
	if err != nil {
		return classify("insert record", rec.Habit, err)
	}

	return nil
}

// InsertAlias maps an alternate name onto a habit title.
//
// The name is normalized like a title and must be globally unique;
// a duplicate returns DUPLICATE_HABIT. The referenced habit must exist
// (foreign key constraint).
func (s *Store) InsertAlias(ctx context.Context, title, name string) error {
	name = habit.NormalizeTitle(name)
	if name == "" {
		return &StoreError{Code: ErrCodeQuery, Op: "insert alias", Err: errEmptyTitle}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO habit_names (habit, name)
		VALUES (?, ?)
	`,
		title,
		name,
	)
	if err != nil {
		return classify("insert alias", title, err)
	}

	return nil
}
