package components

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

func TestNewCollapsibleRow_StartsCollapsed(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	row := NewCollapsibleRow("Question?", "Answer.", nil)

	assert.False(t, row.Expanded())
	assert.False(t, row.BodyVisible(), "body should be hidden while collapsed")
	assert.Equal(t, "Question?", row.Title())
	assert.Equal(t, theme.MenuDropDownIcon(), row.Header().Icon)
}

func TestCollapsibleRow_SetExpanded(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	row := NewCollapsibleRow("Question?", "Answer.", nil)

	row.SetExpanded(true)
	assert.True(t, row.Expanded())
	assert.True(t, row.BodyVisible())
	assert.Equal(t, theme.MenuDropUpIcon(), row.Header().Icon)

	row.SetExpanded(false)
	assert.False(t, row.Expanded())
	assert.False(t, row.BodyVisible())
	assert.Equal(t, theme.MenuDropDownIcon(), row.Header().Icon)
}

func TestCollapsibleRow_TapOnlyNotifies(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	taps := 0
	row := NewCollapsibleRow("Question?", "Answer.", func() { taps++ })

	test.Tap(row.Header())
	test.Tap(row.Header())

	assert.Equal(t, 2, taps)
	assert.False(t, row.Expanded(), "row must not change state on its own")
}

func TestCollapsibleRow_NilTapHandler(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	row := NewCollapsibleRow("Question?", "Answer.", nil)
	assert.NotPanics(t, func() { test.Tap(row.Header()) })
}

func TestCollapsibleRow_MinSize(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	row := NewCollapsibleRow("Question?", "Answer.", nil)
	collapsed := row.MinSize()
	assert.Greater(t, collapsed.Height, float32(0))

	row.SetExpanded(true)
	expanded := row.MinSize()
	assert.Greater(t, expanded.Height, collapsed.Height, "expanded row should be taller")
}

func TestHeaderButton_EscapeCallsHook(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	escapes, taps := 0, 0
	row := NewCollapsibleRow("Question?", "Answer.", func() { taps++ })
	row.SetOnEscape(func() { escapes++ })

	row.Header().TypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.Equal(t, 1, escapes)
	assert.Equal(t, 0, taps, "Escape must not activate the header")

	// Space keeps the normal button behaviour
	row.Header().TypedKey(&fyne.KeyEvent{Name: fyne.KeySpace})
	assert.Equal(t, 1, taps)
	assert.Equal(t, 1, escapes)
}

func TestHeaderButton_EscapeWithoutHook(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	row := NewCollapsibleRow("Question?", "Answer.", nil)
	assert.NotPanics(t, func() {
		row.Header().TypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	})
}

func TestHeaderButton_ReceivesFocus(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	row := NewCollapsibleRow("Question?", "Answer.", nil)
	w := test.NewWindow(row)
	defer w.Close()

	test.FocusNext(w.Canvas())
	assert.Equal(t, fyne.Focusable(row.Header()), w.Canvas().Focused())
}
