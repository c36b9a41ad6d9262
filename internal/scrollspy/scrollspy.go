// Package scrollspy decides which navigation link is active for a scroll
// position.
package scrollspy

import "strings"

// Offsets applied to section tops.
const (
	ActivationOffset = 100
	AnchorOffset     = 80
)

// Section is a page region measured from the top of the document.
type Section struct {
	ID     string `json:"id"`
	Top    int    `json:"top"`
	Height int    `json:"height"`
}

// Link is a navigation entry pointing at "#<section id>".
type Link struct {
	Href   string `json:"href"`
	Label  string `json:"label,omitempty"`
	Active bool   `json:"active"`
}

func (s Section) contains(offset int) bool {
	start := s.Top - ActivationOffset
	return offset >= start && offset < start+s.Height
}

// Current returns the id of the section at offset. The last matching section
// in document order wins. It returns "" when none match.
func Current(sections []Section, offset int) string {
	current := ""
	for _, s := range sections {
		if s.contains(offset) {
			current = s.ID
		}
	}
	return current
}

// Highlight returns a copy of links with only the link for the current
// section marked active.
func Highlight(links []Link, sections []Section, offset int) []Link {
	current := Current(sections, offset)
	out := make([]Link, len(links))
	for i, l := range links {
		l.Active = current != "" && strings.TrimPrefix(l.Href, "#") == current
		out[i] = l
	}
	return out
}

// ScrollTarget is the document offset to scroll to for s.
func ScrollTarget(s Section) int {
	return s.Top - AnchorOffset
}
