// Package catalog holds the fixed print options offered by the shop and the
// price table derived from them.
package catalog

import (
	"fmt"
	"strings"
)

// Size is a print size. Stored values are never coerced; lookups on an
// unknown size fall back to 4R.
type Size string

const (
	Size4R Size = "4R"
	Size5R Size = "5R"
	Size8R Size = "8R"
)

// DefaultSize is selected on a fresh draft.
const DefaultSize = Size4R

// Sizes lists the selectable sizes in display order.
func Sizes() []Size {
	return []Size{Size4R, Size5R, Size8R}
}

// ParseSize accepts only the enumerated sizes.
func ParseSize(s string) (Size, bool) {
	switch Size(strings.ToUpper(strings.TrimSpace(s))) {
	case Size4R:
		return Size4R, true
	case Size5R:
		return Size5R, true
	case Size8R:
		return Size8R, true
	}
	return "", false
}

// Price returns the base unit price in whole pesos.
func (s Size) Price() int {
	switch s {
	case Size4R:
		return 25
	case Size5R:
		return 35
	case Size8R:
		return 50
	default:
		return 25
	}
}

// Dimensions returns the print dimensions in inches.
func (s Size) Dimensions() string {
	switch s {
	case Size4R:
		return `4×6"`
	case Size5R:
		return `5×7"`
	case Size8R:
		return `8×10"`
	default:
		return `4×6"`
	}
}

// Label renders a size for summaries, e.g. `5R (5×7")`.
func (s Size) Label() string {
	return fmt.Sprintf("%s (%s)", s, s.Dimensions())
}

// Paper is a paper finish.
type Paper string

const (
	PaperGlossy  Paper = "glossy"
	PaperMatte   Paper = "matte"
	PaperPremium Paper = "premium"
)

const DefaultPaper = PaperGlossy

func Papers() []Paper {
	return []Paper{PaperGlossy, PaperMatte, PaperPremium}
}

// Name returns the display name, defaulting to glossy for unknown values.
func (p Paper) Name() string {
	switch p {
	case PaperGlossy:
		return "Glossy Photo Paper"
	case PaperMatte:
		return "Matte Photo Paper"
	case PaperPremium:
		return "Premium Lustre"
	default:
		return "Glossy Photo Paper"
	}
}

// Template is a decorative layout applied to the print.
type Template string

const (
	TemplateNone     Template = "none"
	TemplateClassic  Template = "classic"
	TemplateCollage  Template = "collage"
	TemplateSeasonal Template = "seasonal"
	TemplateSchool   Template = "school"
)

const DefaultTemplate = TemplateNone

func Templates() []Template {
	return []Template{TemplateNone, TemplateClassic, TemplateCollage, TemplateSeasonal, TemplateSchool}
}

// Name returns the display name, defaulting to "No Template" for unknown values.
func (t Template) Name() string {
	switch t {
	case TemplateNone:
		return "No Template"
	case TemplateClassic:
		return "Classic Frame"
	case TemplateCollage:
		return "Fun Collage"
	case TemplateSeasonal:
		return "Seasonal Theme"
	case TemplateSchool:
		return "School Spirit"
	default:
		return "No Template"
	}
}

// Total is the order price for qty prints of the given size.
func Total(s Size, qty int) int {
	return s.Price() * qty
}

// FormatPeso renders a whole-peso amount, e.g. FormatPeso(105) => "₱105".
func FormatPeso(amount int) string {
	return "₱" + thousandSep(int64(amount))
}

func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
