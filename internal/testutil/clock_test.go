package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeterministicClock_Monotonic(t *testing.T) {
	base := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	clock := NewDeterministicClock(base, time.Second)

	first := clock.Now()
	second := clock.Now()

	assert.Equal(t, base.Add(time.Second), first)
	assert.True(t, second.After(first))
	assert.Equal(t, 2, clock.Calls())
}

func TestDeterministicClock_Reset(t *testing.T) {
	base := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	clock := NewDeterministicClock(base, time.Minute)

	first := clock.Now()
	clock.Reset()

	assert.Equal(t, first, clock.Now())
}
