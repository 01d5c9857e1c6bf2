package habit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRow(t *testing.T) {
	got, err := FromRow([]any{"read", "desc", true, false})
	require.NoError(t, err)

	want := Habit{Title: "read", Description: "desc", Required: true, Negative: false}
	assert.Equal(t, want, got)
}

func TestFromRow_SQLiteRepresentations(t *testing.T) {
	// database/sql hands TEXT back as []byte and BOOLEAN as int64
	// when scanning into any.
	got, err := FromRow([]any{[]byte("read"), []byte(""), int64(1), int64(0)})
	require.NoError(t, err)

	assert.Equal(t, Habit{Title: "read", Required: true}, got)
}

func TestFromRow_FieldCountMismatch(t *testing.T) {
	_, err := FromRow([]any{"read", "desc", true})
	require.Error(t, err)
	assert.True(t, IsMalformed(err))
	assert.Contains(t, err.Error(), "expected 4 values, got 3")
}

func TestFromRow_UncoercibleValues(t *testing.T) {
	tests := []struct {
		name   string
		values []any
		field  string
	}{
		{"title not text", []any{int64(7), "desc", true, false}, "title"},
		{"required not bool", []any{"read", "desc", "yes", false}, "required"},
		{"required out of range", []any{"read", "desc", int64(2), false}, "required"},
		{"negative nil", []any{"read", "desc", true, nil}, "negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRow(tt.values)
			require.Error(t, err)

			var me *MalformedRecordError
			require.ErrorAs(t, err, &me)
			assert.Equal(t, tt.field, me.Field)
		})
	}
}

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "read", NormalizeTitle("  read \n"))

	// NFD "é" (e + combining acute) normalizes to the NFC composed form.
	decomposed := "café"
	composed := "café"
	assert.Equal(t, composed, NormalizeTitle(decomposed))
}

func TestValidTitle(t *testing.T) {
	assert.True(t, ValidTitle("read"))
	assert.False(t, ValidTitle(""))
	assert.False(t, ValidTitle("   "))
}
