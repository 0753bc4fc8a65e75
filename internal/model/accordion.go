package model

// None is the selection value reported when no row is expanded.
const None = -1

// Accordion owns the FAQ selection state: at most one of Len() rows is
// expanded at any time. It is not safe for concurrent use; all calls are
// expected on the UI event goroutine.
type Accordion struct {
	n        int
	selected int

	onChange func(prev, next int)
}

// NewAccordion creates a controller for n rows with the first row expanded.
// With n == 0 nothing is expanded.
func NewAccordion(n int) *Accordion {
	if n < 0 {
		n = 0
	}
	a := &Accordion{n: n, selected: None}
	if n > 0 {
		a.selected = 0
	}
	return a
}

// SetOnChange sets the callback invoked after every selection change.
// prev and next are row indices, or None.
func (a *Accordion) SetOnChange(fn func(prev, next int)) {
	a.onChange = fn
}

// Len returns the number of rows.
func (a *Accordion) Len() int {
	return a.n
}

// Selected returns the expanded row, if any.
func (a *Accordion) Selected() (int, bool) {
	return a.selected, a.selected != None
}

// IsExpanded reports whether row i is expanded.
func (a *Accordion) IsExpanded(i int) bool {
	return a.selected != None && a.selected == i
}

// Toggle collapses row index if it is expanded, otherwise expands it and
// collapses whichever row was expanded before. Out-of-range indices are ignored.
func (a *Accordion) Toggle(index int) {
	if index < 0 || index >= a.n {
		return
	}
	if a.selected == index {
		a.set(None)
		return
	}
	a.set(index)
}

// Collapse clears the selection.
func (a *Accordion) Collapse() {
	if sel, ok := a.Selected(); ok {
		a.Toggle(sel)
	}
}

// Next expands the row after the expanded one, wrapping to the first row.
// With nothing expanded it expands the first row.
func (a *Accordion) Next() {
	if a.n == 0 {
		return
	}
	sel, ok := a.Selected()
	if !ok {
		a.Toggle(0)
		return
	}
	a.Toggle((sel + 1) % a.n)
}

// Previous expands the row before the expanded one, wrapping to the last row.
// With nothing expanded it expands the last row.
func (a *Accordion) Previous() {
	if a.n == 0 {
		return
	}
	sel, ok := a.Selected()
	if !ok {
		a.Toggle(a.n - 1)
		return
	}
	a.Toggle((sel - 1 + a.n) % a.n)
}

func (a *Accordion) set(next int) {
	prev := a.selected
	if prev == next {
		return
	}
	a.selected = next
	if a.onChange != nil {
		a.onChange(prev, next)
	}
}
