package ribbon

import (
	"reflect"
	"testing"

	"github.com/go-drift/ribbon/pkg/decl"
	"github.com/go-drift/ribbon/pkg/errors"
	"github.com/go-drift/ribbon/pkg/widget"
)

func collect(t *testing.T) *errors.Collector {
	t.Helper()
	c := &errors.Collector{}
	old := errors.DefaultHandler
	errors.SetHandler(c)
	t.Cleanup(func() { errors.SetHandler(old) })
	return c
}

// shape is a kind/id tree used to compare declarations with live nodes.
type shape struct {
	Kind     string
	ID       string
	Children []shape
}

func declShape(n decl.Node) shape {
	s := shape{Kind: n.Kind().String(), ID: n.Base().ID}
	for _, c := range decl.Children(n) {
		s.Children = append(s.Children, declShape(c))
	}
	return s
}

func liveShape(n widget.Node) shape {
	s := shape{Kind: reflect.TypeOf(n).Elem().Name(), ID: n.Base().ID}
	for _, c := range widget.Children(n) {
		s.Children = append(s.Children, liveShape(c))
	}
	return s
}

func button(id, text, cmd string) *decl.Button {
	b := decl.NewButton()
	b.ID, b.Text, b.Command = id, text, cmd
	return b
}

func withID[T decl.Node](n T, id string) T {
	n.Base().ID = id
	return n
}

// homeTab declares one panel with an item of every container kind.
func homeTab() *decl.Tab {
	split := withID(decl.NewSplitButton(), "circle")
	split.Items = []decl.Item{button("center", "Center", "_CIRCLE"), withID(decl.NewSeparator(), "sep")}

	menu := withID(decl.NewMenuButton(), "more")
	menu.Items = []decl.Item{withID(decl.NewMenuItem(), "opt"), withID(decl.NewApplicationMenuItem(), "app")}

	radio := withID(decl.NewRadioButtonGroup(), "mode")
	radio.Items = []decl.Item{withID(decl.NewToggleButton(), "ortho"), withID(decl.NewToolBarShareButton(), "share")}

	sub := withID(decl.NewSubPanelSource(), "sub")
	sub.Items = []decl.Item{withID(decl.NewLabel(), "radiusLabel"), withID(decl.NewSpinner(), "radius")}
	row := withID(decl.NewRowPanel(), "row")
	row.Source = sub

	flow := withID(decl.NewFlowPanel(), "flow")
	flow.Items = []decl.Item{withID(decl.NewCheckBox(), "snap"), withID(decl.NewRowBreak(), "br")}

	combo := withID(decl.NewCombo(), "styles")
	combo.Items = []decl.Item{withID(decl.NewLabel(), "standard")}
	combo.MenuItems = []decl.Item{withID(decl.NewMenuItem(), "manage")}

	src := withID(decl.NewPanelSource(), "src")
	src.Title = "Draw"
	src.Items = []decl.Item{button("line", "Line", "_LINE"), split, menu, radio, row, flow, combo}
	src.DialogLauncher = button("drawSettings", "", "_DSETTINGS")

	panel := withID(decl.NewPanel(), "draw")
	panel.Source = src

	tab := withID(decl.NewTab(), "home")
	tab.Title = "Home"
	tab.Panels = []*decl.Panel{panel}
	return tab
}
