package wizard

import (
	"photoprint-backend/internal/catalog"
	"photoprint-backend/internal/photo"
)

// UploadMode is what the upload area currently shows.
type UploadMode string

const (
	UploadPrompt  UploadMode = "prompt"
	UploadPreview UploadMode = "preview"
)

// StepIndicator is one entry of the progress bar. Exactly one is active.
type StepIndicator struct {
	Step   Step   `json:"step"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// SizeChoice is one of the size cards; exactly one is selected when the
// stored size is known.
type SizeChoice struct {
	Size       catalog.Size `json:"size"`
	Dimensions string       `json:"dimensions"`
	Price      string       `json:"price"`
	Selected   bool         `json:"selected"`
}

// Options mirrors the option controls on the form.
type Options struct {
	Sizes    []SizeChoice     `json:"sizes"`
	Paper    catalog.Paper    `json:"paper"`
	Template catalog.Template `json:"template"`
	Quantity int              `json:"quantity"`
}

// View is everything the storefront needs to render the order form.
type View struct {
	Step         Step            `json:"step"`
	Steps        []StepIndicator `json:"steps"`
	UploadMode   UploadMode      `json:"upload_mode"`
	Photo        *photo.Photo    `json:"photo,omitempty"`
	Options      Options         `json:"options"`
	Summary      Summary         `json:"summary"`
	Review       *Review         `json:"review,omitempty"`
	Receipt      *Receipt        `json:"receipt,omitempty"`
	ResetPending bool            `json:"reset_pending"`
}

// View returns a snapshot of the wizard for rendering.
func (w *Wizard) View() View {
	w.mu.Lock()
	defer w.mu.Unlock()

	v := View{
		Step:         w.step,
		UploadMode:   UploadPrompt,
		Summary:      w.summary,
		ResetPending: w.pendingReset != nil,
		Options: Options{
			Paper:    w.draft.Paper,
			Template: w.draft.Template,
			Quantity: w.draft.Quantity,
		},
	}
	for _, def := range stepLabels {
		v.Steps = append(v.Steps, StepIndicator{
			Step:   def.step,
			Label:  def.label,
			Active: def.step == w.step,
		})
	}
	for _, s := range catalog.Sizes() {
		v.Options.Sizes = append(v.Options.Sizes, SizeChoice{
			Size:       s,
			Dimensions: s.Dimensions(),
			Price:      catalog.FormatPeso(s.Price()),
			Selected:   s == w.draft.Size,
		})
	}
	if w.draft.Photo != nil {
		p := *w.draft.Photo
		v.Photo = &p
		v.UploadMode = UploadPreview
	}
	if w.review != nil {
		r := *w.review
		v.Review = &r
	}
	if w.receipt != nil {
		rc := *w.receipt
		v.Receipt = &rc
	}
	return v
}
