package testing

import (
	"testing"

	"github.com/go-drift/ribbon/pkg/decl"
	"github.com/go-drift/ribbon/pkg/errors"
	"github.com/go-drift/ribbon/pkg/host"
	"github.com/go-drift/ribbon/pkg/host/memhost"
	"github.com/go-drift/ribbon/pkg/resolve"
	"github.com/go-drift/ribbon/pkg/ribbon"
	"github.com/go-drift/ribbon/pkg/widget"
)

// RibbonTester builds declarations into an in-memory host and records every
// problem reported along the way.
type RibbonTester struct {
	t       *testing.T
	host    *memhost.Host
	decls   *resolve.Map
	ribbon  *ribbon.Ribbon
	reports *errors.Collector
	restore func()
}

// NewTesterWithT creates a tester that resolves from tabs and cleans up via
// t.Cleanup(). The global error handler is replaced for the test's duration,
// so tests using a tester must not run in parallel.
func NewTesterWithT(t *testing.T, tabs []*decl.Tab, opts ...ribbon.Option) *RibbonTester {
	t.Helper()
	tester := &RibbonTester{
		t:       t,
		host:    memhost.New(),
		decls:   resolve.NewMap(tabs...),
		reports: &errors.Collector{},
	}
	tester.restore = errors.Swap(tester.reports)
	r, err := ribbon.New(tester.host, tester.decls, opts...)
	if err != nil {
		tester.restore()
		t.Fatalf("ribbon.New: %v", err)
	}
	tester.ribbon = r
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup closes the ribbon and restores the global error handler.
func (t *RibbonTester) Cleanup() {
	t.ribbon.Close()
	t.restore()
}

// Host returns the in-memory host.
func (t *RibbonTester) Host() *memhost.Host { return t.host }

// Ribbon returns the ribbon under test.
func (t *RibbonTester) Ribbon() *ribbon.Ribbon { return t.ribbon }

// Reports returns everything reported since the tester was created.
func (t *RibbonTester) Reports() *errors.Collector { return t.reports }

// Declare adds or replaces a declaration. Tabs already built are unaffected.
func (t *RibbonTester) Declare(tab *decl.Tab) {
	t.decls.Put(tab.ID, tab)
}

// Pump gets or creates the tab for id and fails the test on a usage error.
func (t *RibbonTester) Pump(id string) *widget.Tab {
	t.t.Helper()
	tab, err := t.ribbon.GetOrCreate(id)
	if err != nil {
		t.t.Fatalf("GetOrCreate(%q): %v", id, err)
	}
	return tab
}

// PumpContextual creates a contextual tab shown when pred matches.
func (t *RibbonTester) PumpContextual(id string, pred host.Predicate) *widget.Tab {
	t.t.Helper()
	tab, err := t.ribbon.CreateContextual(id, pred)
	if err != nil {
		t.t.Fatalf("CreateContextual(%q): %v", id, err)
	}
	return tab
}

// Select delivers a selection change and runs the idle pass that follows it.
func (t *RibbonTester) Select(objs ...host.SelectedObject) {
	e := t.ribbon.Contextual()
	e.SelectionChanged(host.NewSelection(objs...))
	e.Idle()
}

// Reset simulates the host discarding its tabs and runs the deferred work
// queued in response. It returns the number of callbacks run.
func (t *RibbonTester) Reset() int {
	t.host.Reset()
	return t.host.Flush()
}

// Find evaluates finder against every tab the host holds.
func (t *RibbonTester) Find(finder Finder) FinderResult {
	var nodes []widget.Node
	for _, tab := range t.host.Tabs() {
		nodes = append(nodes, finder.Evaluate(tab)...)
	}
	return FinderResult{nodes: nodes, finder: finder}
}
