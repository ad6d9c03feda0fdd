package ribbon

import (
	"image"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/ribbon/pkg/decl"
	"github.com/go-drift/ribbon/pkg/errors"
	"github.com/go-drift/ribbon/pkg/host/memhost"
	"github.com/go-drift/ribbon/pkg/images"
	"github.com/go-drift/ribbon/pkg/transform"
	"github.com/go-drift/ribbon/pkg/widget"
)

func TestBuildTabPreservesShape(t *testing.T) {
	c := collect(t)
	b := NewBuilder(nil)
	d := homeTab()

	tab := b.BuildTab(d, "RP_TAB_home")
	require.Len(t, tab.Panels, 1)
	if diff := cmp.Diff(declShape(d.Panels[0]), liveShape(tab.Panels[0])); diff != "" {
		t.Errorf("live tree differs from declaration (-decl +live):\n%s", diff)
	}
	assert.Empty(t, c.Errors())
	assert.Empty(t, c.Panics())

	assert.Equal(t, "RP_TAB_home", tab.ID)
	assert.Equal(t, "Home", tab.Title)
	assert.Equal(t, "Tab=home_Home_home", tab.Cookie)
	assert.Equal(t, "draw", tab.Panels[0].UID)
	assert.Equal(t, "RP_TAB_home:Panel=draw", tab.Panels[0].Cookie)
}

func TestBuildTabPaths(t *testing.T) {
	collect(t)
	b := NewBuilder(nil)
	b.BuildTab(homeTab(), "RP_TAB_home")

	n, ok := b.Lookup("RP_TAB_home;draw;src;line")
	require.True(t, ok)
	line := n.(*widget.Button)
	assert.Equal(t, "RP_TAB_home;draw;src:Button=line_Line", line.Cookie)
	assert.Equal(t, "RP_TAB_home;draw;src;line", line.Path)

	n, ok = b.Lookup("RP_TAB_home;draw;src;circle;center")
	require.True(t, ok)
	assert.Equal(t, "RP_TAB_home;draw;src;circle:Button=center_Center", n.Base().Cookie)

	n, ok = b.Lookup("RP_TAB_home;draw;src;more")
	require.True(t, ok)
	assert.Equal(t, "RP_TAB_home;draw;src:MenuButton=more_", n.Base().Cookie, "siblings do not leak into each other's paths")

	_, ok = b.Lookup("RP_TAB_home;draw;src;row;sub;radius")
	assert.True(t, ok)

	n, ok = b.Lookup("RP_TAB_home;draw;src;drawSettings")
	require.True(t, ok)
	launcher := n.(*widget.Button)
	assert.Zero(t, launcher.MinWidth)
	assert.True(t, math.IsNaN(launcher.Width))
	require.NotNil(t, launcher.CommandHandler)
	assert.Equal(t, "_DSETTINGS", launcher.CommandHandler.Command())
}

func TestBuildTabPanelWithoutSource(t *testing.T) {
	collect(t)
	b := NewBuilder(nil)
	d := withID(decl.NewTab(), "t")
	d.Panels = []*decl.Panel{withID(decl.NewPanel(), "empty")}

	tab := b.BuildTab(d, "RP_TAB_t")
	assert.Empty(t, tab.Panels)
	n, ok := b.Lookup("RP_TAB_t;empty")
	require.True(t, ok, "the panel is registered even though it is not attached")
	assert.IsType(t, &widget.Panel{}, n)
}

func TestListButtonDropsDisallowedChild(t *testing.T) {
	c := collect(t)
	b := NewBuilder(nil)
	split := withID(decl.NewSplitButton(), "s")
	split.Items = []decl.Item{button("ok", "OK", "_OK"), withID(decl.NewRowPanel(), "nested")}

	it := b.BuildItem(split, "p", 0)
	live, ok := it.(*widget.SplitButton)
	require.True(t, ok)
	require.Len(t, live.Items, 1)
	assert.Equal(t, "ok", live.Items[0].Base().ID)
	assert.Len(t, c.OfKind(errors.KindShape), 1)
}

func TestListButtonPolicies(t *testing.T) {
	tests := []struct {
		name     string
		parent   decl.ListButtonNode
		children []decl.Item
		want     []string
	}{
		{
			name:   "menu button",
			parent: decl.NewMenuButton(),
			children: []decl.Item{
				withID(decl.NewMenuItem(), "a"),
				withID(decl.NewApplicationMenuItem(), "b"),
				withID(decl.NewSeparator(), "c"),
				withID(decl.NewButton(), "d"),
				withID(decl.NewLabel(), "e"),
			},
			want: []string{"a", "b", "c"},
		},
		{
			name:   "radio group",
			parent: decl.NewRadioButtonGroup(),
			children: []decl.Item{
				withID(decl.NewToggleButton(), "a"),
				withID(decl.NewToolBarShareButton(), "b"),
				withID(decl.NewButton(), "c"),
				withID(decl.NewSeparator(), "d"),
			},
			want: []string{"a", "b"},
		},
		{
			name:   "checklist",
			parent: decl.NewChecklistButton(),
			children: []decl.Item{
				withID(decl.NewButton(), "a"),
				withID(decl.NewCheckBox(), "b"),
				withID(decl.NewSeparator(), "c"),
				withID(decl.NewLabel(), "d"),
				withID(decl.NewMenuButton(), "e"),
			},
			want: []string{"a", "b", "c", "e"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := collect(t)
			tt.parent.ListFields().Items = tt.children
			it := NewBuilder(nil).BuildItem(tt.parent, "p", 0)
			var got []string
			for _, child := range it.(widget.ListButtonNode).ListButtonFields().Items {
				got = append(got, child.Base().ID)
			}
			assert.Equal(t, tt.want, got)
			assert.Len(t, c.OfKind(errors.KindShape), len(tt.children)-len(tt.want))
		})
	}
}

func TestRowPanelSourceAndInlineItems(t *testing.T) {
	c := collect(t)
	b := NewBuilder(nil)

	sub := withID(decl.NewSubPanelSource(), "sub")
	sub.Items = []decl.Item{withID(decl.NewLabel(), "a")}
	row := withID(decl.NewRowPanel(), "row")
	row.Source = sub
	row.Items = []decl.Item{button("b", "", ""), withID(decl.NewRowPanel(), "c"), withID(decl.NewPanelBreak(), "d")}

	live := b.BuildItem(row, "p", 0).(*widget.RowPanel)
	require.NotNil(t, live.Source)
	assert.Empty(t, live.Items)
	require.Len(t, live.Source.Items, 2)
	assert.Equal(t, "a", live.Source.Items[0].Base().ID)
	assert.Equal(t, "b", live.Source.Items[1].Base().ID)
	assert.Len(t, c.OfKind(errors.KindShape), 2)
	assert.Len(t, sub.Items, 1, "the declaration is not modified")

	_, ok := b.Lookup("p;row;sub;b")
	assert.True(t, ok)

	flow := withID(decl.NewFlowPanel(), "flow")
	flow.Items = []decl.Item{withID(decl.NewLabel(), "x"), withID(decl.NewPanelBreak(), "y")}
	liveFlow := b.BuildItem(flow, "p", 0).(*widget.FlowPanel)
	assert.Nil(t, liveFlow.Source)
	assert.Len(t, liveFlow.Items, 1)
}

func TestComboBindingExcludesInlineItems(t *testing.T) {
	c := collect(t)
	b := NewBuilder(nil)
	styles := []string{"Standard", "Annotative"}
	b.Bindings["textstyles"] = styles

	combo := withID(decl.NewCombo(), "styles")
	combo.ItemsBindingKey = "textStyles"
	combo.Items = []decl.Item{withID(decl.NewLabel(), "inline")}
	combo.MenuItems = []decl.Item{withID(decl.NewMenuItem(), "manage"), withID(decl.NewLabel(), "bad")}

	live := b.BuildItem(combo, "p", 0).(*widget.Combo)
	assert.Equal(t, styles, live.ItemsBinding)
	assert.Empty(t, live.Items)
	require.Len(t, live.MenuItems, 1)
	assert.Equal(t, "manage", live.MenuItems[0].Base().ID)
	assert.Len(t, c.OfKind(errors.KindShape), 1)

	c.Reset()
	combo.ItemsBindingKey = "missing"
	live = b.BuildItem(combo, "p", 0).(*widget.Combo)
	assert.Nil(t, live.ItemsBinding)
	assert.Len(t, live.Items, 1)
	assert.Len(t, c.OfKind(errors.KindResource), 1)
}

func TestDepthLimitCutsContainersOnly(t *testing.T) {
	c := collect(t)
	lists := make([]*decl.ChecklistButton, 5)
	for i := range lists {
		lists[i] = withID(decl.NewChecklistButton(), string(rune('a'+i)))
	}
	for i := 0; i < 4; i++ {
		lists[i].Items = []decl.Item{lists[i+1]}
	}
	lists[3].Items = append(lists[3].Items, button("leaf", "", ""))

	live := NewBuilder(nil).BuildItem(lists[0], "p", 0).(*widget.ChecklistButton)
	var depth3 *widget.ChecklistButton
	cur := live
	for i := 0; i < 3; i++ {
		require.Len(t, cur.Items, 1)
		cur = cur.Items[0].(*widget.ChecklistButton)
	}
	depth3 = cur
	require.Len(t, depth3.Items, 1, "the container at depth 4 is cut, the leaf is kept")
	assert.Equal(t, "leaf", depth3.Items[0].Base().ID)
	assert.Len(t, c.OfKind(errors.KindShape), 1)

	c.Reset()
	b := NewBuilder(nil)
	b.MaxDepth = 2
	live = b.BuildItem(lists[0], "p", 0).(*widget.ChecklistButton)
	require.Len(t, live.Items, 1)
	assert.Empty(t, live.Items[0].(*widget.ChecklistButton).Items)
	assert.Len(t, c.OfKind(errors.KindShape), 1)
}

func TestBuildItemResetsRanges(t *testing.T) {
	collect(t)
	b := NewBuilder(nil)

	s := decl.NewSpinner()
	decl.SetAttr(s, "maximum", "10")
	decl.SetAttr(s, "value", "50")
	live := b.BuildItem(s, "p", 0).(*widget.Spinner)
	assert.Equal(t, 0.0, live.Value)
	assert.Equal(t, 10.0, live.Maximum)

	again := b.BuildItem(s, "p", 0).(*widget.Spinner)
	assert.Equal(t, live.Value, again.Value, "normalizing twice changes nothing")
	assert.Equal(t, 50.0, s.Value, "the declaration keeps its parsed value")

	p := decl.NewProgressBarSource()
	p.CurrentValue = -5
	bar := b.BuildItem(p, "p", 0).(*widget.ProgressBarSource)
	assert.Equal(t, 0.0, bar.CurrentValue)
	assert.Equal(t, 100.0, bar.MaximumValue)
	assert.Equal(t, -5.0, p.CurrentValue)
}

type fakeCommand struct {
	cmd  string
	runs int
}

func (f *fakeCommand) Command() string     { return f.cmd }
func (f *fakeCommand) CanExecute(any) bool { return true }
func (f *fakeCommand) Execute(any)         { f.runs++ }

func TestBuildItemCommandHandlers(t *testing.T) {
	collect(t)
	h := memhost.New()
	b := NewBuilder(nil)
	b.Commands = NewCommands(h, nil)
	line := &fakeCommand{cmd: "_LINE"}
	b.Commands.Register(line)

	got := b.BuildItem(button("line", "Line", "_LINE"), "p", 0).(*widget.Button)
	assert.Same(t, line, got.CommandHandler)

	circle := b.BuildItem(button("circle", "Circle", "_CIRCLE"), "p", 0).(*widget.Button)
	send, ok := circle.CommandHandler.(*SendCommand)
	require.True(t, ok)
	assert.True(t, send.CanExecute(nil))
	send.Execute(nil)
	assert.Equal(t, []string{"_CIRCLE "}, h.Commands())

	none := b.BuildItem(button("none", "", ""), "p", 0).(*widget.Button)
	assert.Nil(t, none.CommandHandler)
}

func TestCommandsFallback(t *testing.T) {
	c := collect(t)
	cmds := NewCommands(nil, func(cmd string) widget.Command {
		if cmd == "_BOOM" {
			panic("bad handler")
		}
		return &fakeCommand{cmd: cmd}
	})

	assert.IsType(t, &fakeCommand{}, cmds.Handler("_MOVE"))
	boom := cmds.Handler("_BOOM")
	require.IsType(t, &SendCommand{}, boom)
	assert.False(t, boom.CanExecute(nil), "no sink")
	assert.Len(t, c.Panics(), 1)
	assert.Nil(t, cmds.Handler("  "))
}

func TestBuildItemImages(t *testing.T) {
	c := collect(t)
	reg := images.NewRegistry()
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	reg.Register("line", img)

	b := NewBuilder(nil)
	b.Images = reg
	d := button("line", "Line", "")
	d.ImageKey = "line"
	d.LargeImageKey = "line_large"

	live := b.BuildItem(d, "p", 0).(*widget.Button)
	assert.Same(t, img, live.Image)
	assert.Nil(t, live.LargeImage)
	assert.Len(t, c.OfKind(errors.KindResource), 1)
}

type picker struct {
	widget.ItemBase
	Palette  string
	Swatches widget.Collection
}

func (p *picker) Children() *widget.Collection { return &p.Swatches }

func TestCustomKinds(t *testing.T) {
	c := collect(t)
	b := NewBuilder(nil)
	b.Factory.Register("ColorPicker", func(d *decl.Custom) (widget.Item, error) {
		p := transform.Into(&picker{}, d)
		p.Palette = d.Attrs["palette"]
		return p, nil
	})
	b.Factory.Register("Boom", func(*decl.Custom) (widget.Item, error) { panic("plugin bug") })
	b.Factory.Register("Broken", func(*decl.Custom) (widget.Item, error) {
		panic(errors.Contractf("test", "broken integration"))
	})

	pick := decl.NewCustom("ColorPicker")
	decl.SetAttr(pick, "id", "pick")
	decl.SetAttr(pick, "palette", "warm")
	pick.Items = []decl.Item{button("red", "", "")}

	live, ok := b.BuildItem(pick, "p", 0).(*picker)
	require.True(t, ok)
	assert.Equal(t, "pick", live.ID)
	assert.Equal(t, "warm", live.Palette)
	assert.Len(t, live.Swatches, 1)
	_, ok = b.Lookup("p;pick;red")
	assert.True(t, ok)

	assert.Nil(t, b.BuildItem(decl.NewCustom("Unknown"), "p", 0))
	assert.Len(t, c.OfKind(errors.KindResource), 1)

	row := withID(decl.NewRowPanel(), "row")
	row.Items = []decl.Item{button("ok", "", ""), withID(decl.NewCustom("Boom"), "boom")}
	liveRow := b.BuildItem(row, "p", 0).(*widget.RowPanel)
	assert.Len(t, liveRow.Items, 1, "a panicking branch is dropped")
	assert.Len(t, c.Panics(), 1)
	_, ok = b.Lookup("p;row;boom")
	assert.False(t, ok)

	assert.Panics(t, func() { b.BuildItem(decl.NewCustom("Broken"), "p", 0) })
}

func TestAlwaysAllowed(t *testing.T) {
	assert.True(t, AlwaysAllowed(decl.KindButton))
	assert.True(t, AlwaysAllowed(decl.KindLabel))
	for _, k := range []decl.Kind{
		decl.KindRowPanel, decl.KindFlowPanel, decl.KindFoldPanel, decl.KindCombo,
		decl.KindGallery, decl.KindSplitButton, decl.KindMenuButton, decl.KindCustom,
	} {
		assert.False(t, AlwaysAllowed(k), k.String())
	}
}
