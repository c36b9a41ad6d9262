// Package wizard implements the step-by-step photo print order flow: upload,
// options, review, confirmation.
package wizard

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"photoprint-backend/internal/catalog"
	"photoprint-backend/internal/notify"
	"photoprint-backend/internal/photo"
	"photoprint-backend/internal/schedule"
)

// DefaultResetDelay is how long the confirmation stays up before the form clears.
const DefaultResetDelay = 3 * time.Second

var phonePattern = regexp.MustCompile(`^09\d{9}$`)

// SubmitForm is the raw customer form.
type SubmitForm struct {
	Name         string
	Grade        string
	Phone        string
	Email        string
	Instructions string
}

// Wizard owns one visitor's draft. It is safe for concurrent use.
type Wizard struct {
	mu sync.Mutex

	step    Step
	draft   Draft
	summary Summary
	review  *Review
	receipt *Receipt

	notifier   notify.Notifier
	loader     *photo.Loader
	scheduler  schedule.Scheduler
	resetDelay time.Duration
	orderID    func() string
	now        func() time.Time

	pendingReset schedule.Handle
	generation   uint64
}

// Option configures a Wizard.
type Option func(*Wizard)

func WithNotifier(n notify.Notifier) Option {
	return func(w *Wizard) {
		if n != nil {
			w.notifier = n
		}
	}
}

func WithLoader(l *photo.Loader) Option {
	return func(w *Wizard) {
		if l != nil {
			w.loader = l
		}
	}
}

func WithScheduler(s schedule.Scheduler) Option {
	return func(w *Wizard) {
		if s != nil {
			w.scheduler = s
		}
	}
}

func WithResetDelay(d time.Duration) Option {
	return func(w *Wizard) {
		if d > 0 {
			w.resetDelay = d
		}
	}
}

// WithOrderNumbers overrides the order number generator.
func WithOrderNumbers(gen func() string) Option {
	return func(w *Wizard) {
		if gen != nil {
			w.orderID = gen
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(w *Wizard) {
		if now != nil {
			w.now = now
		}
	}
}

// New returns a wizard at the upload step with a default draft.
func New(opts ...Option) *Wizard {
	w := &Wizard{
		step:       StepUpload,
		draft:      newDraft(),
		notifier:   discard{},
		loader:     photo.NewLoader(photo.MaxBytes),
		scheduler:  schedule.Real{},
		resetDelay: DefaultResetDelay,
		orderID:    NewOrderNumber,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.summary = summarize(w.draft)
	return w
}

// NewOrderNumber returns a fresh "PHO-" prefixed order number.
func NewOrderNumber() string {
	return "PHO-" + ulid.Make().String()
}

// Step returns the active step.
func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Draft returns a copy of the current draft.
func (w *Wizard) Draft() Draft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft.clone()
}

// GoToStep moves to target. Any step past upload requires a photo.
func (w *Wizard) GoToStep(target Step) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !target.valid() {
		w.fail(ErrUnknownStep)
		return ErrUnknownStep
	}
	if target > StepUpload && w.draft.Photo == nil {
		w.fail(ErrPhotoRequired)
		return ErrPhotoRequired
	}
	if target == StepReview {
		r := review(w.draft)
		w.review = &r
	}
	w.step = target
	return nil
}

// SetSize selects one of the enumerated print sizes.
func (w *Wizard) SetSize(value string) error {
	size, ok := catalog.ParseSize(value)
	if !ok {
		w.mu.Lock()
		w.fail(ErrUnknownSize)
		w.mu.Unlock()
		return ErrUnknownSize
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Size = size
	w.recomputeLocked()
	return nil
}

// SetPaper stores the paper verbatim; unknown values display as glossy.
func (w *Wizard) SetPaper(value string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Paper = catalog.Paper(value)
	w.recomputeLocked()
}

// SetTemplate stores the template verbatim; unknown values display as "No Template".
func (w *Wizard) SetTemplate(value string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Template = catalog.Template(value)
	w.recomputeLocked()
}

// SelectGalleryTemplate applies a template picked from the gallery.
func (w *Wizard) SelectGalleryTemplate(t catalog.Template) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	card, ok := catalog.LookupCard(t)
	if !ok {
		w.fail(ErrUnknownTemplate)
		return ErrUnknownTemplate
	}
	w.draft.Template = card.Template
	w.recomputeLocked()
	w.notifier.Show(notify.Success, `"`+card.Title+`" template selected!`)
	return nil
}

// SetQuantity accepts n only within [MinQuantity, MaxQuantity]. Out-of-range
// input silently keeps the previous value. It returns the effective quantity
// and whether it was applied.
func (w *Wizard) SetQuantity(n int) (int, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if n < MinQuantity || n > MaxQuantity {
		return w.draft.Quantity, false
	}
	w.draft.Quantity = n
	w.recomputeLocked()
	return n, true
}

// ParseQuantity applies SetQuantity to raw form input.
func (w *Wizard) ParseQuantity(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		w.mu.Lock()
		defer w.mu.Unlock()
		return w.draft.Quantity, false
	}
	return w.SetQuantity(n)
}

// ChangeQuantity nudges the quantity by delta when the result stays in range.
func (w *Wizard) ChangeQuantity(delta int) (int, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := w.draft.Quantity + delta
	if n < MinQuantity || n > MaxQuantity {
		return w.draft.Quantity, false
	}
	w.draft.Quantity = n
	w.recomputeLocked()
	return n, true
}

// UploadPhoto validates and decodes up, then stores it as the draft photo.
// Decoding happens outside the lock; when uploads overlap the last one to
// finish wins.
func (w *Wizard) UploadPhoto(ctx context.Context, up photo.Upload) (*photo.Photo, error) {
	p, err := w.loader.Load(ctx, up)
	if err != nil {
		err = uploadError(err)
		w.mu.Lock()
		defer w.mu.Unlock()
		if ve, ok := AsValidation(err); ok {
			w.fail(ve)
			return nil, err
		}
		w.notifier.Show(notify.Error, photo.UserMessage(err))
		return nil, fmt.Errorf("upload photo: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Photo = p
	w.notifier.Show(notify.Success, "Photo uploaded successfully!")
	out := *p
	return &out, nil
}

// RemovePhoto clears the photo and returns the upload area to its prompt.
func (w *Wizard) RemovePhoto() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Photo = nil
}

// Submit validates the customer form and, on success, acknowledges the order
// and schedules a full reset. Name, grade and phone are checked first, then the
// phone format; a draft without a photo is also rejected. Failed validation
// leaves the draft untouched.
func (w *Wizard) Submit(form SubmitForm) (*Receipt, error) {
	info := CustomerInfo{
		Name:         strings.TrimSpace(form.Name),
		Grade:        strings.TrimSpace(form.Grade),
		Phone:        strings.TrimSpace(form.Phone),
		Email:        strings.TrimSpace(form.Email),
		Instructions: strings.TrimSpace(form.Instructions),
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if info.Name == "" || info.Grade == "" || info.Phone == "" {
		w.fail(ErrMissingRequired)
		return nil, ErrMissingRequired
	}
	if !phonePattern.MatchString(info.Phone) {
		w.fail(ErrInvalidPhone)
		return nil, ErrInvalidPhone
	}
	if w.draft.Photo == nil {
		w.fail(ErrPhotoRequired)
		return nil, ErrPhotoRequired
	}

	w.draft.Customer = &info
	total := catalog.Total(w.draft.Size, w.draft.Quantity)
	formatted := catalog.FormatPeso(total)
	receipt := &Receipt{
		OrderNumber:    w.orderID(),
		Size:           w.draft.Size,
		Paper:          w.draft.Paper,
		Template:       w.draft.Template,
		Quantity:       w.draft.Quantity,
		Total:          total,
		FormattedTotal: formatted,
		Customer:       info,
		SubmittedAt:    w.now().UTC(),
		Message:        "Order submitted successfully! Total: " + formatted + ". We will contact you soon.",
	}
	w.receipt = receipt
	w.step = StepConfirmation
	w.notifier.Show(notify.Success, receipt.Message)
	w.scheduleResetLocked()

	out := *receipt
	return &out, nil
}

// Reset returns the wizard to a fresh draft at the upload step and cancels
// any scheduled reset.
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cancelResetLocked()
	w.resetLocked()
}

// ResetPending reports whether a post-submit reset is scheduled.
func (w *Wizard) ResetPending() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pendingReset != nil
}

// Summary returns the last computed price summary.
func (w *Wizard) Summary() Summary {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.summary
}

// Recompute derives the summary from the current draft. Calling it again
// without an intervening change yields the same summary.
func (w *Wizard) Recompute() Summary {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.recomputeLocked()
	return w.summary
}

func (w *Wizard) recomputeLocked() {
	w.summary = summarize(w.draft)
}

func (w *Wizard) fail(err *ValidationError) {
	w.notifier.Show(notify.Error, err.Message)
}

func (w *Wizard) scheduleResetLocked() {
	w.cancelResetLocked()
	gen := w.generation
	w.pendingReset = w.scheduler.AfterFunc(w.resetDelay, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.generation != gen {
			return
		}
		w.pendingReset = nil
		w.resetLocked()
	})
}

func (w *Wizard) cancelResetLocked() {
	if w.pendingReset != nil {
		w.pendingReset.Cancel()
		w.pendingReset = nil
	}
	w.generation++
}

func (w *Wizard) resetLocked() {
	w.step = StepUpload
	w.draft = newDraft()
	w.review = nil
	w.receipt = nil
	w.recomputeLocked()
}

type discard struct{}

func (discard) Show(severity notify.Severity, message string) notify.Notification {
	return notify.Notification{Severity: severity, Message: message}
}
