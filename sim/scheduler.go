package sim

import (
	"container/heap"
	"time"
)

// TimerID identifies a scheduled callback. The zero value is never issued.
type TimerID uint64

type timer struct {
	id       TimerID
	due      time.Duration
	interval time.Duration // 0 for one-shot timers
	fn       func(now time.Duration)
	canceled bool
}

type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].id < q[j].id
	}
	return q[i].due < q[j].due
}

func (q timerQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *timerQueue) Push(x any) { *q = append(*q, x.(*timer)) }

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}

// Scheduler runs callbacks on the simulation clock. It is advanced from inside a
// tick and never spawns goroutines.
type Scheduler struct {
	now       time.Duration
	queue     timerQueue
	live      map[TimerID]*timer
	nextID    TimerID
	advancing bool
}

// NewScheduler creates a scheduler whose clock starts at now
func NewScheduler(now time.Duration) *Scheduler {
	return &Scheduler{
		now:  now,
		live: make(map[TimerID]*timer),
	}
}

// Now returns the time of the last advance
func (s *Scheduler) Now() time.Duration { return s.now }

// After runs fn once, delay after the current clock.
func (s *Scheduler) After(delay time.Duration, fn func(now time.Duration)) TimerID {
	return s.add(s.now+delay, 0, fn)
}

// Every runs fn each interval, first firing one interval from now.
func (s *Scheduler) Every(interval time.Duration, fn func(now time.Duration)) TimerID {
	if interval <= 0 {
		return 0
	}
	return s.add(s.now+interval, interval, fn)
}

func (s *Scheduler) add(due, interval time.Duration, fn func(now time.Duration)) TimerID {
	s.nextID++
	t := &timer{id: s.nextID, due: due, interval: interval, fn: fn}
	s.live[t.id] = t
	heap.Push(&s.queue, t)
	return t.id
}

// Cancel removes a pending timer. It reports whether the timer was still pending.
func (s *Scheduler) Cancel(id TimerID) bool {
	t, ok := s.live[id]
	if !ok {
		return false
	}
	t.canceled = true
	delete(s.live, id)
	return true
}

// CancelAll drops every pending timer
func (s *Scheduler) CancelAll() {
	for id, t := range s.live {
		t.canceled = true
		delete(s.live, id)
	}
	s.queue = s.queue[:0]
}

// Pending returns the number of timers that have not fired or been canceled
func (s *Scheduler) Pending() int { return len(s.live) }

// Advance moves the clock to now and runs every due callback in due-time order.
// Calls made from inside a callback return immediately. It returns the number of
// callbacks run.
func (s *Scheduler) Advance(now time.Duration) int {
	if s.advancing {
		return 0
	}
	s.advancing = true
	defer func() { s.advancing = false }()

	if now > s.now {
		s.now = now
	}

	fired := 0
	for s.queue.Len() > 0 && s.queue[0].due <= s.now {
		t := heap.Pop(&s.queue).(*timer)
		if t.canceled {
			continue
		}
		if t.interval > 0 {
			t.due += t.interval
			heap.Push(&s.queue, t)
		} else {
			delete(s.live, t.id)
		}
		t.fn(s.now)
		fired++
	}
	return fired
}
