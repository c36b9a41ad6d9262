package wizard_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"photoprint-backend/internal/catalog"
	"photoprint-backend/internal/notify"
	"photoprint-backend/internal/photo"
	"photoprint-backend/internal/schedule"
	"photoprint-backend/internal/wizard"
)

type recordingNotifier struct {
	shown []notify.Notification
}

func (r *recordingNotifier) Show(severity notify.Severity, message string) notify.Notification {
	n := notify.Notification{Severity: severity, Message: message}
	r.shown = append(r.shown, n)
	return n
}

func (r *recordingNotifier) last() notify.Notification {
	if len(r.shown) == 0 {
		return notify.Notification{}
	}
	return r.shown[len(r.shown)-1]
}

func newTestWizard(t *testing.T) (*wizard.Wizard, *recordingNotifier, *schedule.Manual) {
	t.Helper()
	notes := &recordingNotifier{}
	sched := schedule.NewManual()
	w := wizard.New(
		wizard.WithNotifier(notes),
		wizard.WithScheduler(sched),
		wizard.WithResetDelay(3*time.Second),
		wizard.WithOrderNumbers(func() string { return "PHO-TEST" }),
		wizard.WithClock(func() time.Time { return time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC) }),
	)
	return w, notes, sched
}

func uploadTestPhoto(t *testing.T, w *wizard.Wizard) {
	t.Helper()
	_, err := w.UploadPhoto(context.Background(), photo.Upload{
		Filename:    "class.jpg",
		ContentType: "image/jpeg",
		Size:        3,
		Body:        bytes.NewReader([]byte{0xff, 0xd8, 0xff}),
	})
	require.NoError(t, err)
}

func validForm() wizard.SubmitForm {
	return wizard.SubmitForm{
		Name:  " Juan Dela Cruz ",
		Grade: "10 - Rizal",
		Phone: "09123456789",
	}
}

func TestNew_Defaults(t *testing.T) {
	w, _, _ := newTestWizard(t)
	d := w.Draft()
	assert.Nil(t, d.Photo)
	assert.Equal(t, catalog.Size4R, d.Size)
	assert.Equal(t, catalog.PaperGlossy, d.Paper)
	assert.Equal(t, 1, d.Quantity)
	assert.Equal(t, catalog.TemplateNone, d.Template)
	assert.Nil(t, d.Customer)
	assert.Equal(t, wizard.StepUpload, w.Step())
	assert.Equal(t, "₱25", w.Summary().FormattedTotal)
}

func TestSetQuantity_OnlyInRange(t *testing.T) {
	for n := -2; n <= 13; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			w, notes, _ := newTestWizard(t)
			w.SetQuantity(4)
			got, applied := w.SetQuantity(n)
			inRange := n >= 1 && n <= 10
			assert.Equal(t, inRange, applied)
			if inRange {
				assert.Equal(t, n, got)
				assert.Equal(t, n, w.Draft().Quantity)
			} else {
				assert.Equal(t, 4, got)
				assert.Equal(t, 4, w.Draft().Quantity)
			}
			assert.Empty(t, notes.shown)
		})
	}
}

func TestParseQuantity_RevertsGarbage(t *testing.T) {
	w, _, _ := newTestWizard(t)
	q, ok := w.ParseQuantity(" 7 ")
	assert.True(t, ok)
	assert.Equal(t, 7, q)

	q, ok = w.ParseQuantity("seven")
	assert.False(t, ok)
	assert.Equal(t, 7, q)
}

func TestChangeQuantity_StaysInRange(t *testing.T) {
	w, _, _ := newTestWizard(t)
	_, ok := w.ChangeQuantity(-1)
	assert.False(t, ok)
	q, ok := w.ChangeQuantity(1)
	assert.True(t, ok)
	assert.Equal(t, 2, q)
	w.SetQuantity(10)
	_, ok = w.ChangeQuantity(1)
	assert.False(t, ok)
	assert.Equal(t, 10, w.Draft().Quantity)
}

func TestSummary_FiveRTimesThree(t *testing.T) {
	w, _, _ := newTestWizard(t)
	require.NoError(t, w.SetSize("5R"))
	w.SetQuantity(3)

	s := w.Summary()
	assert.Equal(t, `5R (5×7")`, s.Size)
	assert.Equal(t, 3, s.Quantity)
	assert.Equal(t, 105, s.Total)
	assert.Equal(t, "₱105", s.FormattedTotal)
}

func TestRecompute_Idempotent(t *testing.T) {
	w, _, _ := newTestWizard(t)
	w.SetPaper("premium")
	first := w.Recompute()
	second := w.Recompute()
	assert.Equal(t, first, second)
	assert.Equal(t, first, w.Summary())
}

func TestSetSize_RejectsUnknown(t *testing.T) {
	w, notes, _ := newTestWizard(t)
	err := w.SetSize("A4")
	assert.ErrorIs(t, err, wizard.ErrUnknownSize)
	assert.Equal(t, catalog.Size4R, w.Draft().Size)
	assert.Equal(t, notify.Error, notes.last().Severity)

	require.NoError(t, w.SetSize("8R"))
	selected := 0
	for _, c := range w.View().Options.Sizes {
		if c.Selected {
			selected++
			assert.Equal(t, catalog.Size8R, c.Size)
		}
	}
	assert.Equal(t, 1, selected)
}

func TestSetPaperAndTemplate_StoreVerbatim(t *testing.T) {
	w, _, _ := newTestWizard(t)
	w.SetPaper("canvas")
	w.SetTemplate("retro")
	d := w.Draft()
	assert.Equal(t, catalog.Paper("canvas"), d.Paper)
	assert.Equal(t, catalog.Template("retro"), d.Template)
	assert.Equal(t, "Glossy Photo Paper", w.Summary().Paper)
}

func TestGoToStep_RequiresPhoto(t *testing.T) {
	w, notes, _ := newTestWizard(t)
	err := w.GoToStep(wizard.StepReview)
	assert.ErrorIs(t, err, wizard.ErrPhotoRequired)
	assert.Equal(t, wizard.StepUpload, w.Step())
	assert.Equal(t, "Please upload a photo first", notes.last().Message)
	assert.Nil(t, w.View().Review)

	err = w.GoToStep(wizard.StepOptions)
	assert.ErrorIs(t, err, wizard.ErrPhotoRequired)

	ve, ok := wizard.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, wizard.KindStepPrecondition, ve.Kind)
}

func TestGoToStep_RejectsUnknown(t *testing.T) {
	w, _, _ := newTestWizard(t)
	uploadTestPhoto(t, w)
	assert.ErrorIs(t, w.GoToStep(wizard.Step(9)), wizard.ErrUnknownStep)
	assert.ErrorIs(t, w.GoToStep(wizard.Step(0)), wizard.ErrUnknownStep)
	assert.Equal(t, wizard.StepUpload, w.Step())
}

func TestGoToStep_Confirmation(t *testing.T) {
	w, _, _ := newTestWizard(t)
	assert.ErrorIs(t, w.GoToStep(wizard.StepConfirmation), wizard.ErrPhotoRequired)
	assert.Equal(t, wizard.StepUpload, w.Step())

	uploadTestPhoto(t, w)
	require.NoError(t, w.GoToStep(wizard.StepConfirmation))
	assert.Equal(t, wizard.StepConfirmation, w.Step())
	assert.Nil(t, w.View().Receipt)
	assert.False(t, w.ResetPending())
}

func TestGoToStep_ReviewProjection(t *testing.T) {
	w, _, _ := newTestWizard(t)
	uploadTestPhoto(t, w)
	require.NoError(t, w.SetSize("8R"))
	w.SetQuantity(2)
	w.SetTemplate("school")
	w.SetPaper("matte")

	require.NoError(t, w.GoToStep(wizard.StepOptions))
	require.NoError(t, w.GoToStep(wizard.StepReview))

	v := w.View()
	require.NotNil(t, v.Review)
	assert.Equal(t, `8R (8×10")`, v.Review.Size)
	assert.Equal(t, "Matte Photo Paper", v.Review.Paper)
	assert.Equal(t, "2 copies", v.Review.Quantity)
	assert.Equal(t, "School Spirit", v.Review.Template)
	assert.Equal(t, "₱100", v.Review.Total)
	assert.Contains(t, v.Review.PhotoURL, "data:image/jpeg;base64,")

	active := 0
	for _, s := range v.Steps {
		if s.Active {
			active++
			assert.Equal(t, wizard.StepReview, s.Step)
		}
	}
	assert.Equal(t, 1, active)

	// the projection is never written back
	assert.Equal(t, 2, w.Draft().Quantity)

	w.SetQuantity(1)
	require.NoError(t, w.GoToStep(wizard.StepReview))
	assert.Equal(t, "1 copy", w.View().Review.Quantity)
}

func TestGoToStep_BackwardNavigation(t *testing.T) {
	w, _, _ := newTestWizard(t)
	uploadTestPhoto(t, w)
	require.NoError(t, w.GoToStep(wizard.StepReview))
	require.NoError(t, w.GoToStep(wizard.StepOptions))
	require.NoError(t, w.GoToStep(wizard.StepUpload))
	assert.Equal(t, wizard.StepUpload, w.Step())
}

func TestUploadThenRemove_RoundTrip(t *testing.T) {
	w, notes, _ := newTestWizard(t)
	assert.Equal(t, wizard.UploadPrompt, w.View().UploadMode)

	uploadTestPhoto(t, w)
	assert.Equal(t, wizard.UploadPreview, w.View().UploadMode)
	assert.Equal(t, "Photo uploaded successfully!", notes.last().Message)

	w.RemovePhoto()
	assert.Nil(t, w.Draft().Photo)
	assert.Equal(t, wizard.UploadPrompt, w.View().UploadMode)
}

func TestUploadPhoto_RejectionsKeepPhoto(t *testing.T) {
	w, notes, _ := newTestWizard(t)
	uploadTestPhoto(t, w)
	before := w.Draft().Photo

	_, err := w.UploadPhoto(context.Background(), photo.Upload{
		ContentType: "text/plain",
		Body:        bytes.NewReader([]byte("hi")),
	})
	assert.ErrorIs(t, err, photo.ErrUnsupportedType)
	ve, ok := wizard.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, wizard.KindUnsupportedFile, ve.Kind)
	assert.Equal(t, "Please upload an image file (JPG, PNG, JPEG)", notes.last().Message)

	_, err = w.UploadPhoto(context.Background(), photo.Upload{
		ContentType: "image/png",
		Size:        photo.MaxBytes + 1,
		Body:        bytes.NewReader([]byte{1}),
	})
	assert.ErrorIs(t, err, photo.ErrTooLarge)
	ve, ok = wizard.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, wizard.KindFileTooLarge, ve.Kind)

	assert.Equal(t, before, w.Draft().Photo)
}

func TestSubmit_PhoneFormat(t *testing.T) {
	cases := []struct {
		phone string
		ok    bool
	}{
		{"09123456789", true},
		{"091234567", false},
		{"0912345678", false},
		{"091234567890", false},
		{"19123456789", false},
		{"0912345678a", false},
		{"+639123456789", false},
	}
	for _, tc := range cases {
		t.Run(tc.phone, func(t *testing.T) {
			w, _, _ := newTestWizard(t)
			uploadTestPhoto(t, w)
			form := validForm()
			form.Phone = tc.phone
			_, err := w.Submit(form)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, wizard.ErrInvalidPhone)
			assert.Nil(t, w.Draft().Customer)
			assert.Equal(t, wizard.StepUpload, w.Step())
		})
	}
}

func TestSubmit_MissingRequired(t *testing.T) {
	w, notes, _ := newTestWizard(t)
	uploadTestPhoto(t, w)
	form := validForm()
	form.Grade = "   "
	_, err := w.Submit(form)
	assert.ErrorIs(t, err, wizard.ErrMissingRequired)
	assert.Equal(t, "Please fill in all required fields (Name, Grade & Section, Phone)", notes.last().Message)
	assert.Nil(t, w.Draft().Customer)
	assert.False(t, w.ResetPending())
}

func TestSubmit_RequiresPhoto(t *testing.T) {
	w, _, _ := newTestWizard(t)
	_, err := w.Submit(validForm())
	assert.ErrorIs(t, err, wizard.ErrPhotoRequired)
	assert.Nil(t, w.Draft().Customer)
}

func TestSubmit_SuccessAndScheduledReset(t *testing.T) {
	w, notes, sched := newTestWizard(t)
	uploadTestPhoto(t, w)
	require.NoError(t, w.SetSize("5R"))
	w.SetQuantity(3)
	w.SetPaper("premium")
	w.SetTemplate("classic")
	require.NoError(t, w.GoToStep(wizard.StepReview))

	form := validForm()
	form.Email = " juan@example.com "
	receipt, err := w.Submit(form)
	require.NoError(t, err)

	assert.Equal(t, "PHO-TEST", receipt.OrderNumber)
	assert.Equal(t, 105, receipt.Total)
	assert.Equal(t, "Juan Dela Cruz", receipt.Customer.Name)
	assert.Equal(t, "juan@example.com", receipt.Customer.Email)
	assert.Equal(t, "", receipt.Customer.Instructions)
	assert.Equal(t, "Order submitted successfully! Total: ₱105. We will contact you soon.", notes.last().Message)
	assert.Equal(t, notify.Success, notes.last().Severity)
	assert.Equal(t, wizard.StepConfirmation, w.Step())
	require.NotNil(t, w.Draft().Customer)
	assert.True(t, w.ResetPending())

	sched.Advance(2 * time.Second)
	assert.Equal(t, wizard.StepConfirmation, w.Step())

	sched.Advance(time.Second)
	d := w.Draft()
	assert.Equal(t, wizard.StepUpload, w.Step())
	assert.Nil(t, d.Photo)
	assert.Nil(t, d.Customer)
	assert.Equal(t, catalog.Size4R, d.Size)
	assert.Equal(t, catalog.PaperGlossy, d.Paper)
	assert.Equal(t, catalog.TemplateNone, d.Template)
	assert.Equal(t, 1, d.Quantity)
	assert.Nil(t, w.View().Review)
	assert.False(t, w.ResetPending())
}

func TestSubmit_ResubmitSupersedesPendingReset(t *testing.T) {
	w, _, sched := newTestWizard(t)
	uploadTestPhoto(t, w)

	_, err := w.Submit(validForm())
	require.NoError(t, err)
	sched.Advance(2 * time.Second)

	_, err = w.Submit(validForm())
	require.NoError(t, err)
	assert.Equal(t, 1, sched.Pending())

	// first reset would have fired at 3s
	sched.Advance(2 * time.Second)
	assert.Equal(t, wizard.StepConfirmation, w.Step())

	sched.Advance(time.Second)
	assert.Equal(t, wizard.StepUpload, w.Step())
}

func TestReset_CancelsPendingReset(t *testing.T) {
	w, _, sched := newTestWizard(t)
	uploadTestPhoto(t, w)
	_, err := w.Submit(validForm())
	require.NoError(t, err)

	w.Reset()
	assert.Equal(t, 0, sched.Pending())
	assert.False(t, w.ResetPending())

	// a fresh draft must not be wiped by a stale timer
	uploadTestPhoto(t, w)
	sched.Advance(time.Minute)
	assert.NotNil(t, w.Draft().Photo)
}

func TestSelectGalleryTemplate(t *testing.T) {
	w, notes, _ := newTestWizard(t)
	require.NoError(t, w.SelectGalleryTemplate(catalog.TemplateCollage))
	assert.Equal(t, catalog.TemplateCollage, w.Draft().Template)
	assert.Equal(t, `"Fun Collage" template selected!`, notes.last().Message)

	err := w.SelectGalleryTemplate(catalog.Template("retro"))
	assert.ErrorIs(t, err, wizard.ErrUnknownTemplate)
	assert.Equal(t, catalog.TemplateCollage, w.Draft().Template)
}
