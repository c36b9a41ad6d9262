package tracking_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"photoprint-backend/internal/tracking"
)

func TestTrack_CannedStatuses(t *testing.T) {
	tr := tracking.NewTracker(0)
	cases := map[string]tracking.Status{
		"PHO2024":     tracking.StatusReady,
		"order-pho-1": tracking.StatusReady,
		"pHo":         tracking.StatusReady,
		"12345":       tracking.StatusInProgress,
		"abcd":        tracking.StatusInProgress,
		"ab":          tracking.StatusNotFound,
		"123":         tracking.StatusNotFound,
		"  12  ":      tracking.StatusNotFound,
		"  A1B2C3  ":  tracking.StatusInProgress,
		"ñab":         tracking.StatusNotFound,
		"éé":          tracking.StatusNotFound,
		"日本":          tracking.StatusNotFound,
		"日本語学":        tracking.StatusInProgress,
	}
	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			res, err := tr.Track(context.Background(), input)
			require.NoError(t, err)
			assert.Equal(t, want, res.Status)
			assert.Equal(t, "Typical turnaround: 24 hours on school days", res.Turnaround)
		})
	}
}

func TestTrack_BlankInput(t *testing.T) {
	_, err := tracking.NewTracker(0).Track(context.Background(), "   ")
	assert.ErrorIs(t, err, tracking.ErrOrderNumberRequired)
}

func TestTrack_SanitisesEcho(t *testing.T) {
	res, err := tracking.NewTracker(0).Track(context.Background(), "<script>alert(1)</script>PHO9")
	require.NoError(t, err)
	assert.Equal(t, tracking.StatusReady, res.Status)
	assert.NotContains(t, res.OrderNumber, "<script>")
	assert.Contains(t, res.OrderNumber, "PHO9")
}

func TestTrack_EchoIsPlainText(t *testing.T) {
	res, err := tracking.NewTracker(0).Track(context.Background(), " A&B<b>42</b> ")
	require.NoError(t, err)
	assert.Equal(t, "A&B42", res.OrderNumber)
}

func TestTrack_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := tracking.NewTracker(time.Hour).Track(ctx, "PHO2024")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTrack_WaitsForDelay(t *testing.T) {
	start := time.Now()
	res, err := tracking.NewTracker(20*time.Millisecond).Track(context.Background(), "12345")
	require.NoError(t, err)
	assert.Equal(t, tracking.StatusInProgress, res.Status)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}
