package testing

import (
	"fmt"

	"github.com/go-drift/ribbon/pkg/widget"
)

// Click runs the command handler of the first command item matched by
// finder, the way the host does when the user activates it.
func (t *RibbonTester) Click(finder Finder) error {
	return t.ClickWith(finder, nil)
}

// ClickWith is Click with a command parameter.
func (t *RibbonTester) ClickWith(finder Finder, param any) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Click: finder matched no nodes: %s", finder.Description())
	}
	c, ok := result.First().(widget.CommandNode)
	if !ok {
		return fmt.Errorf("Click: %T is not a command item: %s", result.First(), finder.Description())
	}
	h := c.CommandFields().CommandHandler
	if h == nil {
		return fmt.Errorf("Click: item has no command handler: %s", finder.Description())
	}
	if !h.CanExecute(param) {
		return fmt.Errorf("Click: command %q cannot execute: %s", h.Command(), finder.Description())
	}
	h.Execute(param)
	return nil
}
