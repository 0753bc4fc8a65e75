// Package faq renders the frequently-asked-questions accordion.
package faq

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/llfarm/llfarm-faq/internal/domain"
	"github.com/llfarm/llfarm-faq/internal/model"
	"github.com/llfarm/llfarm-faq/internal/ui/components"
)

// Title is the heading shown above the questions.
const Title = "Frequently Asked Questions"

// Panel lists every catalogue item as a collapsible row. The accordion
// controller owns which row is open; the panel only redraws the rows that
// changed after each toggle.
type Panel struct {
	widget.BaseWidget

	accordion  *model.Accordion
	rows       []*components.CollapsibleRow
	logger     *slog.Logger
	title      *widget.Label
	rowsBox    *fyne.Container
	contentBox *fyne.Container
}

// NewPanel builds a panel for the given catalogue with the first row expanded.
func NewPanel(catalog domain.Catalog, logger *slog.Logger) *Panel {
	p := &Panel{
		accordion: model.NewAccordion(catalog.Len()),
		logger:    logger,
	}

	p.title = widget.NewLabelWithStyle(Title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	p.title.SizeName = theme.SizeNameHeadingText

	p.rowsBox = container.NewVBox()
	p.rows = make([]*components.CollapsibleRow, catalog.Len())
	for i := 0; i < catalog.Len(); i++ {
		index := i
		item := catalog.Item(i)
		p.rows[i] = components.NewCollapsibleRow(item.Question, item.Answer, func() {
			p.accordion.Toggle(index)
		})
		p.rows[i].SetOnEscape(p.accordion.Collapse)
		p.rowsBox.Add(container.NewVBox(p.rows[i], widget.NewSeparator()))
	}

	if sel, ok := p.accordion.Selected(); ok {
		p.rows[sel].SetExpanded(true)
	}
	p.accordion.SetOnChange(p.handleChange)

	p.contentBox = container.NewBorder(p.title, nil, nil, nil, p.rowsBox)

	p.ExtendBaseWidget(p)
	return p
}

// handleChange redraws the row that closed and the row that opened.
func (p *Panel) handleChange(prev, next int) {
	if prev != model.None {
		p.rows[prev].SetExpanded(false)
	}
	if next != model.None {
		p.rows[next].SetExpanded(true)
	}

	// A collapse reports the row that closed
	index, expanded := next, true
	if next == model.None {
		index, expanded = prev, false
	}
	p.logger.Debug("faq toggled",
		slog.Int("index", index),
		slog.Bool("expanded", expanded),
	)
}

// Accordion returns the selection controller.
func (p *Panel) Accordion() *model.Accordion {
	return p.accordion
}

// Rows returns the rendered rows in display order.
func (p *Panel) Rows() []*components.CollapsibleRow {
	return p.rows
}

// CreateRenderer implements fyne.Widget.
func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.contentBox)
}
