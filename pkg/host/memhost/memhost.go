// Package memhost is an in-memory ribbon container. It records every call the
// ribbon core makes so tests and tools can inspect the outcome.
package memhost

import (
	"sync"

	"github.com/go-drift/ribbon/pkg/host"
	"github.com/go-drift/ribbon/pkg/widget"
)

// Host implements host.Host and host.CommandSink.
type Host struct {
	mu       sync.Mutex
	tabs     []*widget.Tab
	handlers map[int]func(host.TabsChange)
	order    []int
	nextID   int
	deferred []func()

	adds     int
	shown    []string
	hidden   []string
	commands []string
}

var (
	_ host.Host        = (*Host)(nil)
	_ host.CommandSink = (*Host)(nil)
)

// New returns an empty container.
func New() *Host {
	return &Host{handlers: make(map[int]func(host.TabsChange))}
}

// Tabs returns a copy of the current tab list.
func (h *Host) Tabs() []*widget.Tab {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*widget.Tab(nil), h.tabs...)
}

// AddTab appends tab and notifies handlers. Like a real ribbon container it
// clears the tab's active flag.
func (h *Host) AddTab(tab *widget.Tab) {
	if tab == nil {
		return
	}
	h.mu.Lock()
	tab.IsActive = false
	h.tabs = append(h.tabs, tab)
	h.adds++
	h.mu.Unlock()
	h.notify(host.TabsChange{Action: host.TabsAdded, Tabs: []*widget.Tab{tab}})
}

// RemoveTab removes the tab with id and notifies handlers.
func (h *Host) RemoveTab(id string) bool {
	h.mu.Lock()
	var removed *widget.Tab
	for i, t := range h.tabs {
		if t.ID == id {
			removed = t
			h.tabs = append(h.tabs[:i], h.tabs[i+1:]...)
			break
		}
	}
	h.mu.Unlock()
	if removed == nil {
		return false
	}
	h.notify(host.TabsChange{Action: host.TabsRemoved, Tabs: []*widget.Tab{removed}})
	return true
}

// Reset drops every tab the way a workspace switch does. Handlers observe the
// dropped tabs unchanged; once they return, the dropped tabs are deactivated.
func (h *Host) Reset() {
	h.mu.Lock()
	removed := h.tabs
	h.tabs = nil
	h.mu.Unlock()

	h.notify(host.TabsChange{Action: host.TabsReset, Tabs: removed})
	for _, t := range removed {
		t.IsActive = false
	}
}

// ShowContextualTab marks tab visible and records the call.
func (h *Host) ShowContextualTab(tab *widget.Tab) {
	if tab == nil {
		return
	}
	h.mu.Lock()
	tab.IsVisible = true
	h.shown = append(h.shown, tab.ID)
	h.mu.Unlock()
}

// HideContextualTab marks tab hidden and records the call.
func (h *Host) HideContextualTab(tab *widget.Tab) {
	if tab == nil {
		return
	}
	h.mu.Lock()
	tab.IsVisible = false
	tab.IsActive = false
	h.hidden = append(h.hidden, tab.ID)
	h.mu.Unlock()
}

// OnTabsChanged registers fn. Handlers run in registration order.
func (h *Host) OnTabsChanged(fn func(host.TabsChange)) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.handlers[id] = fn
	h.order = append(h.order, id)
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.handlers, id)
		h.mu.Unlock()
	}
}

// Defer queues fn until the next Flush.
func (h *Host) Defer(fn func()) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	h.deferred = append(h.deferred, fn)
	h.mu.Unlock()
}

// Flush runs deferred functions, including any queued while flushing, and
// reports how many ran.
func (h *Host) Flush() int {
	n := 0
	for {
		h.mu.Lock()
		queue := h.deferred
		h.deferred = nil
		h.mu.Unlock()
		if len(queue) == 0 {
			return n
		}
		for _, fn := range queue {
			fn()
			n++
		}
	}
}

// SendCommand records cmd.
func (h *Host) SendCommand(cmd string) {
	h.mu.Lock()
	h.commands = append(h.commands, cmd)
	h.mu.Unlock()
}

// AddCount is the number of AddTab calls so far.
func (h *Host) AddCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.adds
}

// Shown lists the ids passed to ShowContextualTab, in call order.
func (h *Host) Shown() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.shown...)
}

// Hidden lists the ids passed to HideContextualTab, in call order.
func (h *Host) Hidden() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.hidden...)
}

// Commands lists the commands sent so far.
func (h *Host) Commands() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.commands...)
}

func (h *Host) notify(change host.TabsChange) {
	h.mu.Lock()
	fns := make([]func(host.TabsChange), 0, len(h.order))
	for _, id := range h.order {
		if fn, ok := h.handlers[id]; ok {
			fns = append(fns, fn)
		}
	}
	h.mu.Unlock()
	for _, fn := range fns {
		fn(change)
	}
}
