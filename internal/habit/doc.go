// Package habit defines the typed entities persisted by the tracker:
// habits, timestamped occurrence records, and alternate-name aliases.
//
// Entities are decoded from raw database rows by explicit, statically
// declared field order - never by reflection. Decoding is pure: it
// performs no I/O and holds no connection state.
package habit
