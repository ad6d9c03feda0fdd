package ribbon

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/go-drift/ribbon/pkg/decl"
	"github.com/go-drift/ribbon/pkg/errors"
	"github.com/go-drift/ribbon/pkg/host"
	"github.com/go-drift/ribbon/pkg/resolve"
	"github.com/go-drift/ribbon/pkg/widget"
)

// Ribbon creates tabs from declarations and keeps them attached to the host.
type Ribbon struct {
	host     host.Host
	resolver resolve.Resolver
	builder  *Builder
	engine   *Engine
	logger   *zap.Logger
	prefix   string

	tabs    []*widget.Tab
	owned   map[string]*widget.Tab
	unwatch func()
}

// New returns a ribbon attached to h that resolves declarations through r.
func New(h host.Host, r resolve.Resolver, opts ...Option) (*Ribbon, error) {
	if h == nil {
		return nil, errors.ErrNilHost
	}
	if r == nil {
		return nil, errors.ErrNilResolver
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sink, _ := h.(host.CommandSink)
	b := NewBuilder(o.logger)
	b.Images = o.images
	b.MaxDepth = o.maxDepth
	b.Bindings = o.bindings
	b.Commands = NewCommands(sink, o.defaultCommand)
	for _, cmd := range o.handlers {
		b.Commands.Register(cmd)
	}
	for kind, p := range o.plugins {
		b.Factory.Register(kind, p)
	}
	for _, c := range o.controllers {
		b.Controls.Associate(c.key, c.factory)
	}

	rb := &Ribbon{
		host:     h,
		resolver: r,
		builder:  b,
		logger:   o.logger,
		prefix:   o.tabPrefix,
		owned:    map[string]*widget.Tab{},
	}
	rb.engine = newEngine(rb)
	return rb, nil
}

// TabOption adjusts a tab created by GetOrCreate.
type TabOption func(*tabOptions)

type tabOptions struct {
	title       string
	description string
}

// WithTitle sets the tab title when non-empty.
func WithTitle(title string) TabOption {
	return func(o *tabOptions) { o.title = title }
}

// WithDescription sets the tab description when non-empty.
func WithDescription(desc string) TabOption {
	return func(o *tabOptions) { o.description = desc }
}

// StableID returns the host id of the tab with logical id.
func (r *Ribbon) StableID(id string) string {
	return r.prefix + id
}

// GetOrCreate returns the tab for a logical id, building and attaching it on
// first use. A tab the host already holds is returned unchanged. When no
// declaration resolves the tab is empty but still attached.
func (r *Ribbon) GetOrCreate(id string, opts ...TabOption) (*widget.Tab, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.ErrEmptyID
	}
	stable := r.StableID(id)
	if t, ok := host.FindTab(r.host, stable); ok {
		return t, nil
	}
	if t, ok := r.owned[stable]; ok {
		r.host.AddTab(t)
		return t, nil
	}

	var o tabOptions
	for _, opt := range opts {
		opt(&o)
	}

	d, found := r.resolver.Resolve(id)
	if !found || d == nil {
		errors.Report(&errors.RibbonError{
			Op:   "ribbon.GetOrCreate",
			Kind: errors.KindResource,
			ID:   id,
			Err:  fmt.Errorf("declaration: %w", errors.ErrNotFound),
		})
	}
	tab := r.build(d, stable)
	if o.title != "" {
		tab.Title = o.title
	}
	if o.description != "" {
		tab.Description = o.description
	}
	tab.IsEnabled = true
	tab.UID = tab.ID
	tab.IsContextualTab = false
	if found && d != nil {
		r.builder.register(tab, d, stable)
	}

	r.host.AddTab(tab)
	r.owned[stable] = tab
	r.tabs = append(r.tabs, tab)
	r.watch()
	r.logger.Debug("tab created", zap.String("id", id), zap.String("uid", tab.UID), zap.Int("panels", len(tab.Panels)))
	return tab, nil
}

// build builds d, or an empty tab when d is nil. A panic outside any panel
// yields the empty tab.
func (r *Ribbon) build(d *decl.Tab, stable string) (tab *widget.Tab) {
	empty := func() *widget.Tab {
		return r.builder.BuildTab(decl.NewTab(), stable)
	}
	if d == nil {
		return empty()
	}
	defer func() {
		if rec := recover(); rec != nil {
			if ce, ok := rec.(*errors.ContractError); ok {
				panic(ce)
			}
			errors.ReportPanic(&errors.PanicError{Op: "ribbon.BuildTab", ID: stable, Value: rec, StackTrace: errors.CaptureStack()})
			tab = empty()
		}
	}()
	return r.builder.BuildTab(d, stable)
}

// watch installs the reset watcher once.
func (r *Ribbon) watch() {
	if r.unwatch != nil {
		return
	}
	r.unwatch = r.host.OnTabsChanged(r.onTabsChanged)
}

// onTabsChanged re-adds owned tabs dropped by a bulk reset. The active flags
// are captured during the notification and restored by the deferred re-add,
// after AddTab since the host may clear them.
func (r *Ribbon) onTabsChanged(c host.TabsChange) {
	if c.Action != host.TabsReset || len(r.tabs) == 0 {
		return
	}
	active := make(map[*widget.Tab]bool, len(r.tabs))
	for _, t := range r.tabs {
		active[t] = t.IsActive
	}
	r.host.Defer(func() {
		present := map[*widget.Tab]bool{}
		for _, t := range r.host.Tabs() {
			present[t] = true
		}
		readded := 0
		for _, t := range r.tabs {
			if present[t] {
				continue
			}
			r.host.AddTab(t)
			t.IsActive = active[t]
			readded++
		}
		r.logger.Debug("tabs restored after reset", zap.Int("count", readded))
	})
}

// SetCommandHandler registers h for h.Command() after construction. Tabs built
// from now on use it; items already built keep their handler.
func (r *Ribbon) SetCommandHandler(h widget.Command) {
	r.builder.Commands.Register(h)
}

// Close removes the reset watcher. Tabs stay attached.
func (r *Ribbon) Close() {
	if r.unwatch != nil {
		r.unwatch()
		r.unwatch = nil
	}
}

// Tabs returns the tabs created by r, in creation order.
func (r *Ribbon) Tabs() []*widget.Tab {
	return append([]*widget.Tab(nil), r.tabs...)
}

// Lookup returns the live node registered under an identity path.
func (r *Ribbon) Lookup(path string) (widget.Node, bool) {
	return r.builder.Lookup(path)
}

// Controller returns the controller bound to a declaration id.
func (r *Ribbon) Controller(id string) (any, bool) {
	return r.builder.Controls.Controller(id)
}

// Contextual returns the visibility engine.
func (r *Ribbon) Contextual() *Engine { return r.engine }

// CreateContextual is shorthand for r.Contextual().CreateContextual.
func (r *Ribbon) CreateContextual(id string, pred host.Predicate, opts ...TabOption) (*widget.Tab, error) {
	return r.engine.CreateContextual(id, pred, opts...)
}

// Show is shorthand for r.Contextual().Show.
func (r *Ribbon) Show(id, reason string) error { return r.engine.Show(id, reason) }

// Hide is shorthand for r.Contextual().Hide.
func (r *Ribbon) Hide(id, reason string) error { return r.engine.Hide(id, reason) }
