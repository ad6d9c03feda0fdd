// Package host defines what the ribbon core needs from the application that
// owns the ribbon container.
//
// All Host methods are called from the host's event thread. Implementations
// are not required to be safe for concurrent use.
package host

import (
	"github.com/go-drift/ribbon/pkg/widget"
)

// ChangeAction describes a structural change of the tab collection.
type ChangeAction uint8

const (
	// TabsAdded reports tabs appended to the collection.
	TabsAdded ChangeAction = iota
	// TabsRemoved reports tabs removed individually.
	TabsRemoved
	// TabsReset reports a bulk reset. Tabs lists every tab that was dropped.
	TabsReset
)

func (a ChangeAction) String() string {
	switch a {
	case TabsAdded:
		return "added"
	case TabsRemoved:
		return "removed"
	case TabsReset:
		return "reset"
	default:
		return "unknown"
	}
}

// TabsChange is delivered to OnTabsChanged handlers.
type TabsChange struct {
	Action ChangeAction
	Tabs   []*widget.Tab
}

// Host is the ribbon container.
type Host interface {
	// Tabs returns the tabs currently in the container, in display order.
	Tabs() []*widget.Tab
	// AddTab appends a tab to the container. The container may clear the
	// tab's active flag.
	AddTab(tab *widget.Tab)
	// ShowContextualTab makes a contextual tab visible. It is only called
	// from the idle tick.
	ShowContextualTab(tab *widget.Tab)
	// HideContextualTab hides a contextual tab.
	HideContextualTab(tab *widget.Tab)
	// OnTabsChanged registers a structural change handler and returns a
	// function that removes it.
	OnTabsChanged(fn func(TabsChange)) (remove func())
	// Defer runs fn after the current notification has been delivered.
	Defer(fn func())
}

// CommandSink is optionally implemented by hosts that accept command strings.
type CommandSink interface {
	SendCommand(cmd string)
}

// FindTab returns the tab with the given id, if the host holds one.
func FindTab(h Host, id string) (*widget.Tab, bool) {
	for _, t := range h.Tabs() {
		if t != nil && t.ID == id {
			return t, true
		}
	}
	return nil, false
}
