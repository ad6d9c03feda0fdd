package testing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/ribbon/pkg/decl"
	"github.com/go-drift/ribbon/pkg/host"
	"github.com/go-drift/ribbon/pkg/widget"
)

func homeTab() *decl.Tab {
	line := decl.NewButton()
	line.ID, line.Text, line.Command = "line", "Line", "_LINE"

	grid := decl.NewToggleButton()
	grid.ID, grid.Text, grid.Command = "grid", "Grid", "_GRID"

	hint := decl.NewLabel()
	hint.ID, hint.Text = "hint", "Hint text"

	src := decl.NewPanelSource()
	src.ID, src.Title = "src", "Draw"
	src.Items = []decl.Item{line, grid, hint}

	panel := decl.NewPanel()
	panel.ID = "draw"
	panel.Source = src

	tab := decl.NewTab()
	tab.ID, tab.Title = "home", "Home"
	tab.Panels = []*decl.Panel{panel}
	return tab
}

func hatchTab() *decl.Tab {
	tab := decl.NewTab()
	tab.ID, tab.Title = "hatch", "Hatch"
	return tab
}

func TestPump(t *testing.T) {
	tester := NewTesterWithT(t, []*decl.Tab{homeTab()})
	tab := tester.Pump("home")

	assert.Equal(t, "RP_TAB_home", tab.ID)
	assert.Same(t, tab, tester.Pump("home"), "pumping twice returns the same tab")
	assert.Equal(t, 1, tester.Host().AddCount())
	assert.Empty(t, tester.Reports().Errors())
}

func TestPumpMissingDeclaration(t *testing.T) {
	tester := NewTesterWithT(t, nil)
	tab := tester.Pump("nowhere")
	assert.Empty(t, tab.Panels)
	assert.NotEmpty(t, tester.Reports().Errors())

	tester.Declare(homeTab())
	assert.Same(t, tab, tester.Pump("nowhere"), "declaring later does not rebuild")
}

func TestClick(t *testing.T) {
	tester := NewTesterWithT(t, []*decl.Tab{homeTab()})
	tester.Pump("home")

	require.NoError(t, tester.Click(ByID("line")))
	require.NoError(t, tester.Click(ByCommand("_GRID")))
	assert.Equal(t, []string{"_LINE ", "_GRID "}, tester.Host().Commands())

	assert.Error(t, tester.Click(ByID("hint")), "labels carry no command")
	assert.Error(t, tester.Click(ByID("missing")))
}

func TestSelectShowsContextual(t *testing.T) {
	tester := NewTesterWithT(t, []*decl.Tab{hatchTab()})
	tab := tester.PumpContextual("hatch", host.AnyType("HATCH"))
	assert.False(t, tab.IsVisible)

	tester.Select(host.SelectedObject{Handle: "1F", Type: "HATCH"})
	assert.True(t, tab.IsVisible)
	assert.Equal(t, []string{"RP_TAB_hatch"}, tester.Host().Shown())

	tester.Select()
	assert.False(t, tab.IsVisible)
	assert.Equal(t, []string{"RP_TAB_hatch"}, tester.Host().Hidden())
}

func TestReset(t *testing.T) {
	tester := NewTesterWithT(t, []*decl.Tab{homeTab()})
	tester.Pump("home")

	assert.Equal(t, 1, tester.Reset())
	assert.True(t, tester.Find(ByID("line")).Exists(), "owned tabs are put back")
	assert.IsType(t, &widget.Button{}, tester.Find(ByID("line")).First())
}
