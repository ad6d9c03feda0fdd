package ribbon

import "github.com/go-drift/ribbon/pkg/decl"

// rowAccepts rejects nested row panels and panel breaks.
func rowAccepts(c decl.Item) bool {
	switch c.(type) {
	case decl.RowPanelNode, *decl.PanelBreak:
		return false
	}
	return true
}

// menuItemAccepts is the policy of a combo's menu item list.
func menuItemAccepts(c decl.Item) bool {
	_, ok := c.(decl.CommandNode)
	return ok
}

// listButtonAccepts is the child whitelist of each list button kind.
func listButtonAccepts(parent decl.ListButtonNode, c decl.Item) bool {
	_, sep := c.(*decl.Separator)
	switch parent.(type) {
	case *decl.MenuButton:
		_, menu := c.(decl.MenuNode)
		return menu || sep
	case *decl.RadioButtonGroup:
		_, toggle := c.(decl.ToggleNode)
		return toggle
	}
	_, cmd := c.(decl.CommandNode)
	return cmd || sep
}
