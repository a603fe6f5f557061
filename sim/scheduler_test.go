package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsInDueOrder(t *testing.T) {
	s := NewScheduler(0)
	var order []string

	s.After(300*time.Millisecond, func(time.Duration) { order = append(order, "c") })
	s.After(100*time.Millisecond, func(time.Duration) { order = append(order, "a") })
	s.After(200*time.Millisecond, func(time.Duration) { order = append(order, "b") })

	assert.Equal(t, 0, s.Advance(50*time.Millisecond))
	assert.Equal(t, 3, s.Advance(time.Second))
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 0, s.Pending())
}

func TestScheduler_Every(t *testing.T) {
	s := NewScheduler(0)
	var fired []time.Duration

	id := s.Every(10*time.Second, func(now time.Duration) { fired = append(fired, now) })
	require.NotZero(t, id)

	s.Advance(9 * time.Second)
	assert.Empty(t, fired)

	s.Advance(10 * time.Second)
	assert.Equal(t, []time.Duration{10 * time.Second}, fired)

	s.Advance(15 * time.Second)
	assert.Len(t, fired, 1)

	s.Advance(20 * time.Second)
	assert.Len(t, fired, 2)
	assert.Equal(t, 1, s.Pending())
}

func TestScheduler_Cancel(t *testing.T) {
	s := NewScheduler(0)
	ran := false
	id := s.After(time.Second, func(time.Duration) { ran = true })

	assert.True(t, s.Cancel(id))
	assert.False(t, s.Cancel(id))

	s.Advance(2 * time.Second)
	assert.False(t, ran)
}

func TestScheduler_CallbackCancelsLaterTimer(t *testing.T) {
	s := NewScheduler(0)
	ran := false
	var later TimerID

	s.After(time.Second, func(time.Duration) { s.Cancel(later) })
	later = s.After(2*time.Second, func(time.Duration) { ran = true })

	s.Advance(3 * time.Second)
	assert.False(t, ran)
}

func TestScheduler_CancelAll(t *testing.T) {
	s := NewScheduler(0)
	count := 0
	s.After(time.Second, func(time.Duration) { count++ })
	s.Every(time.Second, func(time.Duration) { count++ })

	s.CancelAll()
	assert.Equal(t, 0, s.Pending())

	s.Advance(5 * time.Second)
	assert.Equal(t, 0, count)
}

func TestScheduler_RejectsReentrantAdvance(t *testing.T) {
	s := NewScheduler(0)
	nested := -1
	s.After(time.Second, func(now time.Duration) {
		nested = s.Advance(now + time.Hour)
	})
	s.After(time.Minute, func(time.Duration) {})

	assert.Equal(t, 1, s.Advance(2*time.Second))
	assert.Equal(t, 0, nested)
	assert.Equal(t, 2*time.Second, s.Now())
	assert.Equal(t, 1, s.Pending())
}
