// Package faq loads the frequently asked questions and tracks which entry is
// expanded.
package faq

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

//go:embed faq.yaml
var defaultContent []byte

// Entry is one question with its rendered answer.
type Entry struct {
	Question   string `json:"question"`
	AnswerHTML string `json:"answer_html"`
}

type document struct {
	Entries []struct {
		Question string `yaml:"question"`
		Answer   string `yaml:"answer"`
	} `yaml:"entries"`
}

// Default returns the bundled FAQ entries.
func Default() ([]Entry, error) {
	return Parse(defaultContent)
}

// Parse reads a YAML FAQ document and renders each markdown answer to
// sanitized HTML.
func Parse(raw []byte) ([]Entry, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("faq: decode yaml: %w", err)
	}

	md := goldmark.New()
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)

	entries := make([]Entry, 0, len(doc.Entries))
	for i, e := range doc.Entries {
		q := strings.TrimSpace(e.Question)
		if q == "" {
			return nil, fmt.Errorf("faq: entry %d has no question", i)
		}
		var buf bytes.Buffer
		if err := md.Convert([]byte(e.Answer), &buf); err != nil {
			return nil, fmt.Errorf("faq: render entry %d: %w", i, err)
		}
		entries = append(entries, Entry{
			Question:   q,
			AnswerHTML: strings.TrimSpace(policy.Sanitize(buf.String())),
		})
	}
	return entries, nil
}
