package faq

// Item is one question and answer.
type Item struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Accordion tracks which FAQ item is expanded. At most one item is open.
type Accordion struct {
	items []Item
	open  int
}

// NewAccordion creates an Accordion with every item closed.
func NewAccordion(items []Item) *Accordion {
	return &Accordion{items: items, open: -1}
}

// Items returns the FAQ items.
func (a *Accordion) Items() []Item {
	return a.items
}

// Len returns the number of items.
func (a *Accordion) Len() int {
	return len(a.items)
}

// Toggle opens item i and closes every other one. Toggling the open item
// closes it. Out-of-range indexes are ignored.
func (a *Accordion) Toggle(i int) {
	if i < 0 || i >= len(a.items) {
		return
	}
	if a.open == i {
		a.open = -1
		return
	}
	a.open = i
}

// IsOpen reports whether item i is expanded.
func (a *Accordion) IsOpen(i int) bool {
	return a.open >= 0 && a.open == i
}

// Open returns the index of the expanded item, or -1.
func (a *Accordion) Open() int {
	return a.open
}

// CloseAll collapses every item.
func (a *Accordion) CloseAll() {
	a.open = -1
}
