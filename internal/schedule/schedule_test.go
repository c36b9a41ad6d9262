package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"photoprint-backend/internal/schedule"
)

func TestManual_FiresInDeadlineOrder(t *testing.T) {
	m := schedule.NewManual()
	var fired []string
	m.AfterFunc(3*time.Second, func() { fired = append(fired, "late") })
	m.AfterFunc(time.Second, func() { fired = append(fired, "early") })

	m.Advance(2 * time.Second)
	assert.Equal(t, []string{"early"}, fired)
	assert.Equal(t, 1, m.Pending())

	m.Advance(time.Second)
	assert.Equal(t, []string{"early", "late"}, fired)
	assert.Equal(t, 0, m.Pending())
}

func TestManual_Cancel(t *testing.T) {
	m := schedule.NewManual()
	called := false
	h := m.AfterFunc(time.Second, func() { called = true })

	assert.True(t, h.Cancel())
	assert.False(t, h.Cancel())
	m.Advance(time.Minute)
	assert.False(t, called)
}

func TestManual_CallbackCanReschedule(t *testing.T) {
	m := schedule.NewManual()
	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 3 {
			m.AfterFunc(time.Second, tick)
		}
	}
	m.AfterFunc(time.Second, tick)

	m.Advance(10 * time.Second)
	assert.Equal(t, 3, count)
}

func TestReal_Cancel(t *testing.T) {
	done := make(chan struct{})
	h := schedule.Real{}.AfterFunc(time.Hour, func() { close(done) })
	require.True(t, h.Cancel())
}
