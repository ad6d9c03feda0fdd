// Package decl defines the declaration tree: the parsed, immutable
// description of a ribbon tab before it is turned into live widgets.
//
// Every declaration kind is a struct embedding Meta. Attributes arrive as raw
// text through SetAttr and are coerced with the recovery rules of package
// attr, so a malformed value never fails a parse. Child slots are tagged
// `ribbon:"-"` and are walked by the builder rather than copied.
package decl

import "github.com/go-drift/ribbon/pkg/errors"

// New returns a declaration of kind k with its documented defaults.
// KindCustom yields a Custom with an empty kind name.
func New(k Kind) Node {
	switch k {
	case KindTab:
		return NewTab()
	case KindPanel:
		return NewPanel()
	case KindPanelSource:
		return NewPanelSource()
	case KindPanelSpacer:
		return NewPanelSpacer()
	case KindSubPanelSource:
		return NewSubPanelSource()
	case KindCombo:
		return NewCombo()
	case KindGallery:
		return NewGallery()
	case KindLabel:
		return NewLabel()
	case KindPanelBreak:
		return NewPanelBreak()
	case KindRowBreak:
		return NewRowBreak()
	case KindRowPanel:
		return NewRowPanel()
	case KindFlowPanel:
		return NewFlowPanel()
	case KindFoldPanel:
		return NewFoldPanel()
	case KindSeparator:
		return NewSeparator()
	case KindSlider:
		return NewSlider()
	case KindSpinner:
		return NewSpinner()
	case KindTextBox:
		return NewTextBox()
	case KindProgressBarSource:
		return NewProgressBarSource()
	case KindCheckBox:
		return NewCheckBox()
	case KindMenuItem:
		return NewMenuItem()
	case KindApplicationMenuItem:
		return NewApplicationMenuItem()
	case KindButton:
		return NewButton()
	case KindToggleButton:
		return NewToggleButton()
	case KindToolBarShareButton:
		return NewToolBarShareButton()
	case KindChecklistButton:
		return NewChecklistButton()
	case KindMenuButton:
		return NewMenuButton()
	case KindRadioButtonGroup:
		return NewRadioButtonGroup()
	case KindSplitButton:
		return NewSplitButton()
	case KindCustom:
		return NewCustom("")
	}
	panic(errors.Contractf("decl.New", "unknown kind %d", k))
}

// NewItem is New restricted to item kinds.
func NewItem(k Kind) (Item, bool) {
	if !k.IsItem() {
		return nil, false
	}
	it, ok := New(k).(Item)
	return it, ok
}

// Children returns the direct children of n in declaration order, including
// a panel's source, a source's dialog launcher and a row panel's sub-panel
// source.
func Children(n Node) []Node {
	var out []Node
	items := func(list []Item) {
		for _, it := range list {
			out = append(out, it)
		}
	}
	switch d := n.(type) {
	case *Tab:
		for _, p := range d.Panels {
			out = append(out, p)
		}
	case *Panel:
		if d.Source != nil {
			out = append(out, d.Source)
		}
	case Source:
		s := d.Fields()
		items(s.Items)
		if s.DialogLauncher != nil {
			out = append(out, s.DialogLauncher)
		}
	case *SubPanelSource:
		items(d.Items)
	case RowPanelNode:
		r := d.RowFields()
		if r.Source != nil {
			out = append(out, r.Source)
		}
		items(r.Items)
	case ListNode:
		l := d.ComboFields()
		items(l.Items)
		items(l.MenuItems)
	case ListButtonNode:
		items(d.ListFields().Items)
	case *Custom:
		items(d.Items)
	}
	return out
}
