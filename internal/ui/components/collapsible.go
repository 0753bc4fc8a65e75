package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// HeaderButton is the row header. It behaves like a widget.Button and also
// reports Escape, which a focused widget receives instead of the canvas.
type HeaderButton struct {
	widget.Button

	onEscape func()
}

func newHeaderButton(title string, icon fyne.Resource, tapped func()) *HeaderButton {
	h := &HeaderButton{}
	h.Text = title
	h.Icon = icon
	h.OnTapped = tapped
	h.ExtendBaseWidget(h)
	return h
}

// TypedKey implements fyne.Focusable.
func (h *HeaderButton) TypedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyEscape {
		if h.onEscape != nil {
			h.onEscape()
		}
		return
	}
	h.Button.TypedKey(ev)
}

// CollapsibleRow shows a header that is always visible and a body that is
// only visible while the row is expanded. It holds no selection state of its
// own: tapping the header calls onTap and the owner decides what to expand.
type CollapsibleRow struct {
	widget.BaseWidget

	header   *HeaderButton
	body     *widget.Label
	expanded bool

	container *fyne.Container
}

// NewCollapsibleRow creates a collapsed row. onTap may be nil.
func NewCollapsibleRow(title, body string, onTap func()) *CollapsibleRow {
	r := &CollapsibleRow{}

	r.header = newHeaderButton(title, theme.MenuDropDownIcon(), func() {
		if onTap != nil {
			onTap()
		}
	})
	r.header.Alignment = widget.ButtonAlignLeading
	r.header.IconPlacement = widget.ButtonIconTrailingText
	r.header.Importance = widget.LowImportance

	r.body = widget.NewLabel(body)
	r.body.Wrapping = fyne.TextWrapWord
	r.body.Hide()

	r.container = container.NewVBox(r.header, r.body)

	r.ExtendBaseWidget(r)
	return r
}

// SetExpanded shows or hides the body and flips the chevron.
func (r *CollapsibleRow) SetExpanded(expanded bool) {
	if r.expanded == expanded {
		return
	}
	r.expanded = expanded

	if expanded {
		r.header.SetIcon(theme.MenuDropUpIcon())
		r.body.Show()
	} else {
		r.header.SetIcon(theme.MenuDropDownIcon())
		r.body.Hide()
	}
	r.Refresh()
}

// SetOnEscape sets the callback invoked when Escape is typed while the
// header has keyboard focus.
func (r *CollapsibleRow) SetOnEscape(fn func()) {
	r.header.onEscape = fn
}

// Expanded reports whether the body is visible.
func (r *CollapsibleRow) Expanded() bool {
	return r.expanded
}

// Title returns the header text.
func (r *CollapsibleRow) Title() string {
	return r.header.Text
}

// Header returns the header button, mainly for focus handling and tests.
func (r *CollapsibleRow) Header() *HeaderButton {
	return r.header
}

// BodyVisible reports whether the body is currently shown.
func (r *CollapsibleRow) BodyVisible() bool {
	return r.body.Visible()
}

// CreateRenderer implements fyne.Widget.
func (r *CollapsibleRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(r.container)
}
