// Package notify presents transient user-visible messages one at a time.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"photoprint-backend/internal/schedule"
)

// Severity selects the visual treatment of a notification.
type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Info    Severity = "info"
)

// DefaultTTL matches the on-screen time before a toast slides out.
const DefaultTTL = 4 * time.Second

// Normalize maps unknown severities to Info.
func (s Severity) Normalize() Severity {
	switch s {
	case Success, Error, Info:
		return s
	default:
		return Info
	}
}

// Notification is the message currently on screen.
type Notification struct {
	ID       string    `json:"id"`
	Severity Severity  `json:"severity"`
	Message  string    `json:"message"`
	ShownAt  time.Time `json:"shown_at"`
}

// Notifier is what wizard and tracking flows report to.
type Notifier interface {
	Show(severity Severity, message string) Notification
}

// Presenter holds at most one notification. Showing a new one evicts the
// current one immediately; there is no queue.
type Presenter struct {
	mu        sync.Mutex
	ttl       time.Duration
	scheduler schedule.Scheduler
	now       func() time.Time
	current   *Notification
	dismiss   schedule.Handle
}

// Option configures a Presenter.
type Option func(*Presenter)

func WithTTL(d time.Duration) Option {
	return func(p *Presenter) {
		if d > 0 {
			p.ttl = d
		}
	}
}

func WithScheduler(s schedule.Scheduler) Option {
	return func(p *Presenter) {
		if s != nil {
			p.scheduler = s
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(p *Presenter) {
		if now != nil {
			p.now = now
		}
	}
}

func NewPresenter(opts ...Option) *Presenter {
	p := &Presenter{
		ttl:       DefaultTTL,
		scheduler: schedule.Real{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Show displays message and schedules its dismissal.
func (p *Presenter) Show(severity Severity, message string) Notification {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.dismiss != nil {
		p.dismiss.Cancel()
		p.dismiss = nil
	}

	n := Notification{
		ID:       uuid.NewString(),
		Severity: severity.Normalize(),
		Message:  message,
		ShownAt:  p.now().UTC(),
	}
	p.current = &n

	id := n.ID
	p.dismiss = p.scheduler.AfterFunc(p.ttl, func() { p.dismissID(id) })
	return n
}

// Current returns a copy of the visible notification, or nil.
func (p *Presenter) Current() *Notification {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return nil
	}
	n := *p.current
	return &n
}

// Dismiss removes the visible notification right away.
func (p *Presenter) Dismiss() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.dismiss != nil {
		p.dismiss.Cancel()
		p.dismiss = nil
	}
	p.current = nil
}

func (p *Presenter) dismissID(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current != nil && p.current.ID == id {
		p.current = nil
		p.dismiss = nil
	}
}
