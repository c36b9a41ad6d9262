package wizard

import (
	"strconv"
	"time"

	"photoprint-backend/internal/catalog"
	"photoprint-backend/internal/photo"
)

// Step is a stage of the order wizard.
type Step int

const (
	StepUpload Step = iota + 1
	StepOptions
	StepReview
	StepConfirmation
)

var stepLabels = []struct {
	step  Step
	label string
}{
	{StepUpload, "Upload"},
	{StepOptions, "Options"},
	{StepReview, "Review"},
	{StepConfirmation, "Confirmation"},
}

// Label returns the step's display name, or "" for unknown steps.
func (s Step) Label() string {
	for _, def := range stepLabels {
		if def.step == s {
			return def.label
		}
	}
	return ""
}

func (s Step) valid() bool {
	return s.Label() != ""
}

// Draft is the in-progress order.
type Draft struct {
	Photo    *photo.Photo     `json:"photo,omitempty"`
	Size     catalog.Size     `json:"size"`
	Paper    catalog.Paper    `json:"paper"`
	Quantity int              `json:"quantity"`
	Template catalog.Template `json:"template"`
	Customer *CustomerInfo    `json:"customer,omitempty"`
}

// CustomerInfo is captured whole at submission.
type CustomerInfo struct {
	Name         string `json:"name"`
	Grade        string `json:"grade"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Instructions string `json:"instructions"`
}

const (
	MinQuantity = 1
	MaxQuantity = 10
)

func newDraft() Draft {
	return Draft{
		Size:     catalog.DefaultSize,
		Paper:    catalog.DefaultPaper,
		Quantity: MinQuantity,
		Template: catalog.DefaultTemplate,
	}
}

func (d Draft) clone() Draft {
	out := d
	if d.Photo != nil {
		p := *d.Photo
		out.Photo = &p
	}
	if d.Customer != nil {
		c := *d.Customer
		out.Customer = &c
	}
	return out
}

// Summary is the running price summary shown beside the form.
type Summary struct {
	Size           string `json:"size"`
	Paper          string `json:"paper"`
	Quantity       int    `json:"quantity"`
	Total          int    `json:"total"`
	FormattedTotal string `json:"formatted_total"`
}

// Review is the read-only snapshot shown on the review step.
type Review struct {
	PhotoURL string `json:"photo_url,omitempty"`
	Size     string `json:"size"`
	Paper    string `json:"paper"`
	Quantity string `json:"quantity"`
	Template string `json:"template"`
	Total    string `json:"total"`
}

// Receipt acknowledges a submitted order.
type Receipt struct {
	OrderNumber    string           `json:"order_number"`
	Size           catalog.Size     `json:"size"`
	Paper          catalog.Paper    `json:"paper"`
	Template       catalog.Template `json:"template"`
	Quantity       int              `json:"quantity"`
	Total          int              `json:"total"`
	FormattedTotal string           `json:"formatted_total"`
	Customer       CustomerInfo     `json:"customer"`
	SubmittedAt    time.Time        `json:"submitted_at"`
	Message        string           `json:"message"`
}

func summarize(d Draft) Summary {
	total := catalog.Total(d.Size, d.Quantity)
	return Summary{
		Size:           d.Size.Label(),
		Paper:          d.Paper.Name(),
		Quantity:       d.Quantity,
		Total:          total,
		FormattedTotal: catalog.FormatPeso(total),
	}
}

func review(d Draft) Review {
	r := Review{
		Size:     d.Size.Label(),
		Paper:    d.Paper.Name(),
		Quantity: Copies(d.Quantity),
		Template: d.Template.Name(),
		Total:    catalog.FormatPeso(catalog.Total(d.Size, d.Quantity)),
	}
	if d.Photo != nil {
		r.PhotoURL = d.Photo.DataURL
	}
	return r
}

// Copies formats a print count ("1 copy", "3 copies").
func Copies(n int) string {
	if n == 1 {
		return "1 copy"
	}
	return strconv.Itoa(n) + " copies"
}
