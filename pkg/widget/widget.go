// Package widget defines the live ribbon tree handed to the host.
//
// Each declaration kind has a counterpart here. Fields whose names and types
// match the declaration are filled by the field mapper; host-only fields
// (UID, Path, images, command handlers, bindings and child collections) are
// set by the builder.
package widget

import (
	"image/color"

	"github.com/go-drift/ribbon/pkg/attr"
)

// Element is embedded in every live node.
type Element struct {
	ID     string
	Cookie string
	// UID is the host-level identifier.
	UID string
	// Path is the identity path the node was registered under.
	Path string `ribbon:"-"`
}

// Base returns e. It is promoted to every live node.
func (e *Element) Base() *Element { return e }

// Node is any live node.
type Node interface {
	Base() *Element
}

// Item is a live node that sits in an item collection.
type Item interface {
	Node
	Item() *ItemBase
}

// Collection is an ordered list of items.
type Collection []Item

// Add appends it, ignoring nil.
func (c *Collection) Add(it Item) {
	if it != nil {
		*c = append(*c, it)
	}
}

// Command is the contract of a command handler attached to command items.
type Command interface {
	// Command is the host command string this handler runs.
	Command() string
	CanExecute(param any) bool
	Execute(param any)
}

// Tab is a top-level ribbon tab.
type Tab struct {
	Element
	Title                        string
	Name                         string
	Description                  string
	KeyTip                       string
	Tag                          string
	IsActive                     bool
	IsEnabled                    bool
	IsPanelEnabled               bool
	IsVisible                    bool
	IsContextualTab              bool
	IsMergedContextualTab        bool
	AllowTearOffContextualPanels bool

	Panels []*Panel `ribbon:"-"`
}

// AddPanel appends p, ignoring nil.
func (t *Tab) AddPanel(p *Panel) {
	if p != nil {
		t.Panels = append(t.Panels, p)
	}
}

// Panel is a titled group of items within a tab.
type Panel struct {
	Element
	Tag                         string
	HighlightAsNew              bool
	HighlightPanelTitleBar      bool
	IsVisible                   bool
	IsEnabled                   bool
	CanToggleOrientation        bool
	IsContextualTabThemeIgnored bool
	ResizeStyle                 attr.PanelResizeStyle
	FloatingOrientation         attr.Orientation

	CustomPanelBackground         color.NRGBA
	CustomPanelTitleBarBackground color.NRGBA

	Source Source `ribbon:"-"`
}

// Source is the item container of a panel.
type Source interface {
	Node
	Fields() *PanelSource
}

// PanelSource holds the items of a panel.
type PanelSource struct {
	Element
	Title                  string
	Name                   string
	Description            string
	Tag                    string
	KeyTip                 string
	IsSlideOutPanelVisible bool

	Items          Collection `ribbon:"-"`
	DialogLauncher *Button    `ribbon:"-"`
}

// Fields returns s. It is promoted to PanelSpacer.
func (s *PanelSource) Fields() *PanelSource { return s }

// PanelSpacer is a gap between panels.
type PanelSpacer struct {
	PanelSource
	LeftBorderBrush  color.NRGBA
	RightBorderBrush color.NRGBA
}

// SubPanelSource holds the items of a row panel.
type SubPanelSource struct {
	Element
	Name        string
	Description string
	Tag         string

	Items Collection `ribbon:"-"`
}

// Children returns the direct children of n in display order.
func Children(n Node) []Node {
	var out []Node
	items := func(c Collection) {
		for _, it := range c {
			out = append(out, it)
		}
	}
	switch w := n.(type) {
	case *Tab:
		for _, p := range w.Panels {
			out = append(out, p)
		}
	case *Panel:
		if w.Source != nil {
			out = append(out, w.Source)
		}
	case Source:
		s := w.Fields()
		items(s.Items)
		if s.DialogLauncher != nil {
			out = append(out, s.DialogLauncher)
		}
	case *SubPanelSource:
		items(w.Items)
	case RowPanelNode:
		r := w.RowFields()
		if r.Source != nil {
			out = append(out, r.Source)
		}
		items(r.Items)
	case ListNode:
		l := w.ListFields()
		items(l.Items)
		items(l.MenuItems)
	case ListButtonNode:
		items(w.ListButtonFields().Items)
	case Container:
		items(*w.Children())
	}
	return out
}

// Container is implemented by plugin items that own children.
type Container interface {
	Item
	Children() *Collection
}

// Walk visits n and its descendants depth first.
func Walk(n Node, fn func(n Node, depth int)) {
	var walk func(Node, int)
	walk = func(n Node, depth int) {
		fn(n, depth)
		for _, c := range Children(n) {
			walk(c, depth+1)
		}
	}
	walk(n, 0)
}
