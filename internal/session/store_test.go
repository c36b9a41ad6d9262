package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"photoprint-backend/internal/faq"
	"photoprint-backend/internal/notify"
	"photoprint-backend/internal/schedule"
	"photoprint-backend/internal/session"
	"photoprint-backend/internal/wizard"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newStore(clock *fakeClock, sched schedule.Scheduler) *session.Store {
	return session.NewStore(session.Config{
		IdleTimeout: 10 * time.Minute,
		Scheduler:   sched,
		FAQ:         []faq.Entry{{Question: "Q1"}, {Question: "Q2"}},
		Now:         clock.Now,
	})
}

func TestStore_GetOrCreate(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)}
	store := newStore(clock, schedule.NewManual())

	a := store.Get("a")
	require.NotNil(t, a)
	assert.Same(t, a, store.Get("a"))
	assert.NotSame(t, a, store.Get("b"))
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, wizard.StepUpload, a.Wizard.Step())
	assert.Len(t, a.FAQ.Items(), 2)
}

func TestStore_WizardNotifiesSessionPresenter(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	store := newStore(clock, schedule.NewManual())
	sess := store.Get("a")

	require.Error(t, sess.Wizard.GoToStep(wizard.StepReview))
	current := sess.Notices.Current()
	require.NotNil(t, current)
	assert.Equal(t, notify.Error, current.Severity)
	assert.Equal(t, "Please upload a photo first", current.Message)
}

func TestStore_Sweep(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)}
	store := newStore(clock, schedule.NewManual())

	store.Get("idle")
	clock.t = clock.t.Add(8 * time.Minute)
	store.Get("active")

	assert.Equal(t, 0, store.Sweep(clock.t))
	assert.Equal(t, 1, store.Sweep(clock.t.Add(3*time.Minute)))
	assert.Equal(t, 1, store.Len())

	// a swept id starts over with a fresh draft
	sess := store.Get("idle")
	assert.Equal(t, wizard.StepUpload, sess.Wizard.Step())
	assert.Equal(t, 2, store.Len())
}

func TestSession_BeginLookupSupersedes(t *testing.T) {
	store := newStore(&fakeClock{t: time.Now()}, schedule.NewManual())
	sess := store.Get("a")

	first, doneFirst := sess.BeginLookup(context.Background())
	second, doneSecond := sess.BeginLookup(context.Background())
	defer doneSecond()

	assert.ErrorIs(t, first.Err(), context.Canceled)
	assert.NoError(t, second.Err())

	// releasing the superseded lookup must not cancel the newer one
	doneFirst()
	assert.NoError(t, second.Err())
}
