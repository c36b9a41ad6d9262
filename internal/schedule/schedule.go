// Package schedule runs one-shot deferred callbacks that can be cancelled.
package schedule

import (
	"sort"
	"sync"
	"time"
)

// Handle cancels a pending callback. Cancel reports whether the callback was
// stopped before it ran.
type Handle interface {
	Cancel() bool
}

// Scheduler defers a callback by d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Handle
}

// Real schedules callbacks on the runtime timer.
type Real struct{}

func (Real) AfterFunc(d time.Duration, f func()) Handle {
	return timerHandle{t: time.AfterFunc(d, f)}
}

type timerHandle struct {
	t *time.Timer
}

func (h timerHandle) Cancel() bool {
	return h.t.Stop()
}

// Manual fires callbacks only when Advance moves its clock past their deadline.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*manualTask
}

type manualTask struct {
	m        *Manual
	at       time.Duration
	seq      int
	f        func()
	done     bool
	canceled bool
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) AfterFunc(d time.Duration, f func()) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	task := &manualTask{m: m, at: m.now + d, seq: m.seq, f: f}
	m.pending = append(m.pending, task)
	return task
}

func (t *manualTask) Cancel() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if t.done || t.canceled {
		return false
	}
	t.canceled = true
	return true
}

// Advance moves the clock forward and runs every due callback in deadline order.
// Callbacks run without the scheduler lock held so they may schedule again.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		task := m.nextDueLocked(target)
		if task == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = task.at
		task.done = true
		m.mu.Unlock()
		task.f()
	}
}

// Pending counts callbacks that are neither cancelled nor fired.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.pending {
		if !t.done && !t.canceled {
			n++
		}
	}
	return n
}

func (m *Manual) nextDueLocked(target time.Duration) *manualTask {
	live := m.pending[:0]
	for _, t := range m.pending {
		if !t.done && !t.canceled {
			live = append(live, t)
		}
	}
	m.pending = live
	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].at == m.pending[j].at {
			return m.pending[i].seq < m.pending[j].seq
		}
		return m.pending[i].at < m.pending[j].at
	})
	if len(m.pending) == 0 || m.pending[0].at > target {
		return nil
	}
	return m.pending[0]
}
