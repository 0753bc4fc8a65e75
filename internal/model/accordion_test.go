package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expandedRows returns the indices of all expanded rows.
func expandedRows(a *Accordion) []int {
	var rows []int
	for i := 0; i < a.Len(); i++ {
		if a.IsExpanded(i) {
			rows = append(rows, i)
		}
	}
	return rows
}

func TestNewAccordion_FirstRowExpanded(t *testing.T) {
	a := NewAccordion(8)

	sel, ok := a.Selected()
	require.True(t, ok)
	assert.Equal(t, 0, sel)
	assert.Equal(t, []int{0}, expandedRows(a))
}

func TestNewAccordion_Empty(t *testing.T) {
	for _, n := range []int{0, -3} {
		a := NewAccordion(n)
		_, ok := a.Selected()
		assert.False(t, ok)
		assert.Equal(t, 0, a.Len())

		// Nothing to expand; must not panic or change state
		a.Toggle(0)
		a.Next()
		a.Previous()
		a.Collapse()
		_, ok = a.Selected()
		assert.False(t, ok)
	}
}

func TestAccordion_Toggle(t *testing.T) {
	tests := []struct {
		name     string
		clicks   []int
		expanded []int
	}{
		{name: "no clicks", clicks: nil, expanded: []int{0}},
		{name: "collapse initial row", clicks: []int{0}, expanded: nil},
		{name: "expand another row", clicks: []int{3}, expanded: []int{3}},
		{name: "re-expand after collapse", clicks: []int{0, 0}, expanded: []int{0}},
		{name: "click 2, 2, 5", clicks: []int{2, 2, 5}, expanded: []int{5}},
		{name: "last row", clicks: []int{7}, expanded: []int{7}},
		{name: "out of range ignored", clicks: []int{8, -1}, expanded: []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAccordion(8)
			for _, c := range tt.clicks {
				a.Toggle(c)
			}
			assert.Equal(t, tt.expanded, expandedRows(a))
		})
	}
}

func TestAccordion_ClickSequence_2_2_5(t *testing.T) {
	a := NewAccordion(8)

	a.Toggle(2)
	assert.Equal(t, []int{2}, expandedRows(a))

	a.Toggle(2)
	assert.Empty(t, expandedRows(a))
	_, ok := a.Selected()
	assert.False(t, ok)

	a.Toggle(5)
	assert.Equal(t, []int{5}, expandedRows(a))
}

func TestAccordion_AtMostOneExpanded(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	a := NewAccordion(8)

	for i := 0; i < 1000; i++ {
		switch rng.Intn(4) {
		case 0:
			a.Next()
		case 1:
			a.Previous()
		default:
			a.Toggle(rng.Intn(8))
		}
		require.LessOrEqual(t, len(expandedRows(a)), 1, "step %d", i)
	}
}

func TestAccordion_OnChange(t *testing.T) {
	a := NewAccordion(4)

	type change struct{ prev, next int }
	var changes []change
	a.SetOnChange(func(prev, next int) {
		changes = append(changes, change{prev, next})
	})

	a.Toggle(2)
	a.Toggle(2)
	a.Toggle(9)  // ignored
	a.Collapse() // already collapsed
	a.Toggle(1)

	assert.Equal(t, []change{
		{0, 2},
		{2, None},
		{None, 1},
	}, changes)
}

func TestAccordion_Collapse(t *testing.T) {
	a := NewAccordion(3)
	a.Collapse()
	assert.Empty(t, expandedRows(a))
}

func TestAccordion_NextPrevious(t *testing.T) {
	a := NewAccordion(3)

	a.Next()
	assert.Equal(t, []int{1}, expandedRows(a))
	a.Next()
	a.Next()
	assert.Equal(t, []int{0}, expandedRows(a), "Next wraps to the first row")

	a.Previous()
	assert.Equal(t, []int{2}, expandedRows(a), "Previous wraps to the last row")

	a.Collapse()
	a.Previous()
	assert.Equal(t, []int{2}, expandedRows(a), "Previous from none expands the last row")

	a.Collapse()
	a.Next()
	assert.Equal(t, []int{0}, expandedRows(a), "Next from none expands the first row")
}
