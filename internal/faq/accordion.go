package faq

import (
	"errors"
	"sync"
)

var ErrUnknownEntry = errors.New("faq: unknown entry")

// Item is an entry with its open state.
type Item struct {
	Entry
	Index int  `json:"index"`
	Open  bool `json:"open"`
}

// Accordion keeps at most one entry open.
type Accordion struct {
	mu      sync.Mutex
	entries []Entry
	open    int
}

func NewAccordion(entries []Entry) *Accordion {
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return &Accordion{entries: cp, open: -1}
}

// Toggle closes entry i if it is open; otherwise opens it and closes the rest.
func (a *Accordion) Toggle(i int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if i < 0 || i >= len(a.entries) {
		return ErrUnknownEntry
	}
	if a.open == i {
		a.open = -1
	} else {
		a.open = i
	}
	return nil
}

// Open returns the open index, or -1.
func (a *Accordion) Open() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.open
}

func (a *Accordion) Items() []Item {
	a.mu.Lock()
	defer a.mu.Unlock()
	items := make([]Item, len(a.entries))
	for i, e := range a.entries {
		items[i] = Item{Entry: e, Index: i, Open: i == a.open}
	}
	return items
}
