package page

import (
	"github.com/samber/lo"
)

type Document struct {
	elements map[string]*Element
	order    []string
}

func New() *Document {
	return &Document{elements: make(map[string]*Element)}
}

// Add inserts e, replacing any element with the same id, and returns it.
func (d *Document) Add(e *Element) *Element {
	if _, ok := d.elements[e.ID]; !ok {
		d.order = append(d.order, e.ID)
	}
	d.elements[e.ID] = e
	return e
}

// Lookup returns the element with the given id.
func (d *Document) Lookup(id string) (*Element, bool) {
	e, ok := d.elements[id]
	return e, ok
}

// Get returns the element with the given id. A missing id yields a detached
// element, so writes to it are silently lost.
func (d *Document) Get(id string) *Element {
	if e, ok := d.elements[id]; ok {
		return e
	}
	return &Element{ID: id}
}

// QueryClass returns the elements carrying class, in insertion order.
func (d *Document) QueryClass(class string) []*Element {
	return lo.FilterMap(d.order, func(id string, _ int) (*Element, bool) {
		e := d.elements[id]
		return e, e.HasClass(class)
	})
}

// Children returns the elements whose Parent is id, in insertion order.
func (d *Document) Children(id string) []*Element {
	return lo.FilterMap(d.order, func(cid string, _ int) (*Element, bool) {
		e := d.elements[cid]
		return e, e.Parent == id
	})
}

// Reset clears the values of the fields of form formID.
func (d *Document) Reset(formID string) {
	for _, e := range d.Children(formID) {
		e.Value = ""
	}
}
