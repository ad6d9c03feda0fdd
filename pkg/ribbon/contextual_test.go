package ribbon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/ribbon/pkg/errors"
	"github.com/go-drift/ribbon/pkg/host"
)

func TestShowHideReasonSet(t *testing.T) {
	collect(t)
	r, h := newRibbon(t)
	tab, err := r.CreateContextual("home", nil)
	require.NoError(t, err)
	assert.False(t, tab.IsVisible)
	assert.True(t, tab.IsContextualTab)

	require.NoError(t, r.Show("home", "A"))
	require.NoError(t, r.Show("home", "B"))
	require.NoError(t, r.Show("home", "A"))
	assert.Equal(t, []string{"Manual(A)", "Manual(B)"}, r.Contextual().Reasons("home"))

	require.NoError(t, r.Hide("home", "A"))
	assert.True(t, r.Contextual().Visible("home"))
	assert.Empty(t, h.Hidden())

	require.NoError(t, r.Hide("home", "B"))
	assert.False(t, r.Contextual().Visible("home"))
	assert.Equal(t, []string{"RP_TAB_home"}, h.Hidden())

	require.NoError(t, r.Hide("home", "B"), "hiding an absent reason is a no-op")
	assert.Len(t, h.Hidden(), 1)
}

func TestShowOrderIndependent(t *testing.T) {
	collect(t)
	r, _ := newRibbon(t)
	_, err := r.CreateContextual("home", nil)
	require.NoError(t, err)

	require.NoError(t, r.Show("home", "B"))
	require.NoError(t, r.Show("home", "A"))
	require.NoError(t, r.Hide("home", "B"))
	assert.True(t, r.Contextual().Visible("home"))
	require.NoError(t, r.Hide("home", "A"))
	assert.False(t, r.Contextual().Visible("home"))
}

func TestShowDefaultReason(t *testing.T) {
	collect(t)
	r, _ := newRibbon(t)
	_, err := r.CreateContextual("home", nil)
	require.NoError(t, err)
	require.NoError(t, r.Show("home", ""))
	assert.Equal(t, []string{"Manual(_manual)"}, r.Contextual().Reasons("home"))
	require.NoError(t, r.Hide("home", ""))
	assert.Empty(t, r.Contextual().Reasons("home"))
}

func TestIdleMaterializes(t *testing.T) {
	collect(t)
	r, h := newRibbon(t)
	tab, err := r.CreateContextual("home", nil)
	require.NoError(t, err)
	e := r.Contextual()

	e.Idle()
	assert.Empty(t, h.Shown(), "nothing is visible yet")

	require.NoError(t, e.Show("home", "pin"))
	assert.True(t, e.Pending("home"))
	assert.False(t, tab.IsVisible, "the host is only touched on idle")

	e.Idle()
	assert.Equal(t, []string{"RP_TAB_home"}, h.Shown())
	assert.True(t, tab.IsVisible)
	assert.True(t, tab.IsActive)
	assert.False(t, e.Pending("home"))

	e.Idle()
	assert.Len(t, h.Shown(), 1, "a materialized tab is not shown twice")

	require.NoError(t, e.HideAll("home"))
	assert.False(t, tab.IsVisible)
	assert.False(t, tab.IsActive)
	require.NoError(t, e.Show("home", "pin"))
	e.Idle()
	assert.Len(t, h.Shown(), 2)
}

func TestIdleReshowsTabHiddenByHost(t *testing.T) {
	collect(t)
	r, h := newRibbon(t)
	tab, err := r.CreateContextual("home", host.OnlyTypes("HATCH"))
	require.NoError(t, err)
	e := r.Contextual()

	hatch := host.NewSelection(host.SelectedObject{Handle: "2B", Type: "HATCH"})
	e.SelectionChanged(hatch)
	e.Idle()
	require.True(t, tab.IsVisible)

	h.Reset()
	h.Flush()
	h.HideContextualTab(tab)
	assert.True(t, e.Visible("home"))
	assert.True(t, e.Pending("home"), "the host no longer displays the tab")

	e.SelectionChanged(hatch)
	e.Idle()
	assert.True(t, tab.IsVisible)
	assert.True(t, tab.IsActive)
	assert.Equal(t, []string{"RP_TAB_home", "RP_TAB_home"}, h.Shown())
	assert.False(t, e.Pending("home"))
}

func TestSelectionConditions(t *testing.T) {
	collect(t)
	r, h := newRibbon(t)
	_, err := r.CreateContextual("home", host.OnlyTypes("LINE"))
	require.NoError(t, err)
	_, err = r.CreateContextual("hatch", host.AnyType("HATCH"))
	require.NoError(t, err)
	e := r.Contextual()

	require.NoError(t, e.Show("home", "pin"))
	e.SelectionChanged(host.NewSelection(host.SelectedObject{Type: "line"}))
	require.Len(t, e.Reasons("home"), 2)
	assert.Equal(t, "Manual(pin)", e.Reasons("home")[0])
	assert.Contains(t, e.Reasons("home")[1], "Selection(")
	assert.False(t, e.Visible("hatch"))

	e.SelectionChanged(host.NewSelection(host.SelectedObject{Type: "HATCH"}))
	assert.Equal(t, []string{"Manual(pin)"}, e.Reasons("home"))
	assert.True(t, e.Visible("hatch"))

	e.SelectionChanged(host.Selection{})
	assert.Equal(t, []string{"Manual(pin)"}, e.Reasons("home"), "manual reasons survive an empty selection")
	assert.False(t, e.Visible("hatch"))
	assert.Equal(t, []string{"RP_TAB_hatch"}, h.Hidden())
}

func TestSelectionPredicatePanics(t *testing.T) {
	c := collect(t)
	r, _ := newRibbon(t)
	_, err := r.CreateContextual("home", func(host.Selection) bool { panic("bad predicate") })
	require.NoError(t, err)

	r.Contextual().SelectionChanged(host.NewSelection(host.SelectedObject{Type: "LINE"}))
	assert.False(t, r.Contextual().Visible("home"))
	assert.Len(t, c.Panics(), 1)
}

func TestContextualUnknownTab(t *testing.T) {
	r, _ := newRibbon(t)
	assert.ErrorIs(t, r.Show("nope", "A"), errors.ErrUnknownTab)
	assert.ErrorIs(t, r.Hide("nope", "A"), errors.ErrUnknownTab)
	assert.ErrorIs(t, r.Contextual().HideAll("nope"), errors.ErrUnknownTab)
	assert.Nil(t, r.Contextual().Reasons("nope"))

	_, err := r.CreateContextual("", nil)
	assert.ErrorIs(t, err, errors.ErrEmptyID)
}

func TestCreateContextualTwice(t *testing.T) {
	collect(t)
	r, h := newRibbon(t)
	first, err := r.CreateContextual("home", host.AnyType("LINE"))
	require.NoError(t, err)
	second, err := r.CreateContextual("home", host.AnyType("ARC"))
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, h.AddCount())

	r.Contextual().SelectionChanged(host.NewSelection(host.SelectedObject{Type: "LINE"}, host.SelectedObject{Type: "ARC"}))
	assert.Len(t, r.Contextual().Reasons("home"), 2, "each condition contributes its own reason")
}
