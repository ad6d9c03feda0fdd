package testing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/ribbon/pkg/decl"
	"github.com/go-drift/ribbon/pkg/widget"
)

func TestFinders(t *testing.T) {
	tester := NewTesterWithT(t, []*decl.Tab{homeTab()})
	tester.Pump("home")

	tests := []struct {
		finder Finder
		count  int
	}{
		{ByID("line"), 1},
		{ByType[*widget.Button](), 1},
		{ByType[*widget.Panel](), 1},
		{ByPath("RP_TAB_home;draw;src;grid"), 1},
		{ByCookie("RP_TAB_home;draw;src:Button=line_Line"), 1},
		{ByText("Line"), 1},
		{ByTextContaining("t"), 1},
		{ByCommand("_GRID"), 1},
		{ByPredicate(func(n widget.Node) bool { _, ok := n.(widget.CommandNode); return ok }), 2},
		{Descendant(ByID("draw"), ByID("line")), 1},
		{Descendant(ByID("line"), ByID("draw")), 0},
		{Ancestor(ByID("line"), ByType[*widget.Panel]()), 1},
		{Ancestor(ByID("draw"), ByID("line")), 0},
		{ByID("missing"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.finder.Description(), func(t *testing.T) {
			assert.Equal(t, tt.count, tester.Find(tt.finder).Count())
		})
	}
}

func TestFinderResult(t *testing.T) {
	tester := NewTesterWithT(t, []*decl.Tab{homeTab()})
	tester.Pump("home")

	found := tester.Find(ByCommand("_LINE"))
	assert.True(t, found.Exists())
	assert.Equal(t, "line", found.Item().Item().ID)
	assert.Same(t, found.First(), found.At(0))
	assert.Len(t, found.All(), 1)

	missing := tester.Find(ByID("missing"))
	assert.Nil(t, missing.FirstOrNil())
	assert.PanicsWithValue(t, `Finder found no nodes: ByID("missing")`, func() { missing.First() })
	assert.Panics(t, func() { found.At(3) })
	assert.Panics(t, func() { tester.Find(ByType[*widget.Tab]()).Item() })
}
