package page

import (
	"slices"

	"github.com/samber/lo"
)

// Well-known classes.
const (
	ClassHidden    = "hidden"
	ClassActive    = "active"
	ClassSection   = "section"
	ClassNavButton = "nav-btn"
)

type Element struct {
	ID string
	// Parent is the id of the enclosing section or form, "" for top-level elements.
	Parent string
	// Label is a human-readable caption, used for form fields and nav buttons.
	Label string

	Text  string
	HTML  string
	Value string

	classes []string
}

func (e *Element) AddClass(class string) {
	if !e.HasClass(class) {
		e.classes = append(e.classes, class)
	}
}

func (e *Element) RemoveClass(class string) {
	e.classes = lo.Without(e.classes, class)
}

func (e *Element) HasClass(class string) bool {
	return lo.Contains(e.classes, class)
}

// Classes returns a copy of the class list.
func (e *Element) Classes() []string {
	return slices.Clone(e.classes)
}

func (e *Element) Hidden() bool {
	return e.HasClass(ClassHidden)
}

// SetText replaces the content with plain text, dropping any inner HTML.
func (e *Element) SetText(s string) {
	e.Text = s
	e.HTML = ""
}

// SetHTML replaces the content with an HTML fragment.
func (e *Element) SetHTML(s string) {
	e.HTML = s
	e.Text = ""
}

// Clone returns a deep copy of e.
func (e *Element) Clone() *Element {
	c := *e
	c.classes = slices.Clone(e.classes)
	return &c
}
