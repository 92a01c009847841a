package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStepClock_Advances(t *testing.T) {
	start := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	c := NewStepClock(start, time.Minute)

	assert.Equal(t, start, c.Now())
	assert.Equal(t, start.Add(time.Minute), c.Now())
	assert.Equal(t, start.Add(2*time.Minute), c.Now())
}

func TestStepClock_ZeroStepFreezes(t *testing.T) {
	start := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	c := NewStepClock(start, 0)

	assert.Equal(t, start, c.Now())
	assert.Equal(t, start, c.Now())
}

func TestStepClock_Reset(t *testing.T) {
	start := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	c := NewStepClock(start, time.Minute)
	c.Now()
	c.Now()

	c.Reset(start)
	assert.Equal(t, start, c.Now())
}
