// Package tracking answers order status lookups with canned results.
package tracking

import (
	"context"
	"errors"
	"html"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// DefaultDelay simulates the lookup round trip.
const DefaultDelay = 1500 * time.Millisecond

const turnaround = "Typical turnaround: 24 hours on school days"

// ErrOrderNumberRequired is returned for blank input.
var ErrOrderNumberRequired = errors.New("tracking: order number required")

// Visitor-facing messages for the lookup flow.
const (
	MsgOrderNumberRequired = "Please enter an order number."
	MsgLookingUp           = "Looking up your order..."
)

// Status is the headline of a lookup result.
type Status string

const (
	StatusReady      Status = "Ready for Pickup"
	StatusInProgress Status = "In Progress"
	StatusNotFound   Status = "Order Not Found"
)

// Result is shown in the tracking panel.
type Result struct {
	Status      Status `json:"status"`
	Message     string `json:"message"`
	OrderNumber string `json:"order_number"`
	Turnaround  string `json:"turnaround"`
}

// Tracker performs lookups.
type Tracker struct {
	delay  time.Duration
	policy *bluemonday.Policy
}

func NewTracker(delay time.Duration) *Tracker {
	if delay < 0 {
		delay = 0
	}
	return &Tracker{delay: delay, policy: bluemonday.StrictPolicy()}
}

// HasOrderNumber reports whether input is non-blank.
func HasOrderNumber(input string) bool {
	return strings.TrimSpace(input) != ""
}

// Track waits the simulated delay and classifies orderNumber. It returns
// ctx.Err() if the lookup is cancelled first.
func (t *Tracker) Track(ctx context.Context, orderNumber string) (Result, error) {
	if !HasOrderNumber(orderNumber) {
		return Result{}, ErrOrderNumberRequired
	}
	orderNumber = strings.TrimSpace(orderNumber)

	if t.delay > 0 {
		timer := time.NewTimer(t.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	res := Classify(orderNumber)
	res.OrderNumber = t.echo(orderNumber)
	return res, nil
}

// echo strips markup from the order number and returns plain text; escaping
// is left to the renderer.
func (t *Tracker) echo(orderNumber string) string {
	return strings.TrimSpace(html.UnescapeString(t.policy.Sanitize(orderNumber)))
}

// Classify maps an order number to its canned status.
func Classify(orderNumber string) Result {
	switch {
	case strings.Contains(strings.ToLower(orderNumber), "pho"):
		return Result{
			Status:     StatusReady,
			Message:    "Your order is ready! Please pick it up at Room 304.",
			Turnaround: turnaround,
		}
	case utf8.RuneCountInString(orderNumber) > 3:
		return Result{
			Status:     StatusInProgress,
			Message:    "Your order is being processed. Check back tomorrow.",
			Turnaround: turnaround,
		}
	default:
		return Result{
			Status:     StatusNotFound,
			Message:    "Please check your order number and try again.",
			Turnaround: turnaround,
		}
	}
}
