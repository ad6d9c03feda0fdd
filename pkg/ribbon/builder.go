package ribbon

import (
	"image"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/go-drift/ribbon/pkg/decl"
	"github.com/go-drift/ribbon/pkg/errors"
	"github.com/go-drift/ribbon/pkg/images"
	"github.com/go-drift/ribbon/pkg/transform"
	"github.com/go-drift/ribbon/pkg/widget"
)

// Builder turns declarations into live nodes. Declarations are only read;
// resolved cookies are written to the live nodes.
type Builder struct {
	Factory  *Factory
	Controls *Controls
	Commands *Commands
	Images   images.Source
	// Bindings holds the external items sources, keyed by lower-case name.
	Bindings map[string]any
	// MaxDepth is the depth at which container branches are cut.
	MaxDepth int

	logger *zap.Logger
	index  map[string]widget.Node
}

// NewBuilder returns a builder with an empty factory, controller registry and
// command table.
func NewBuilder(logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		Factory:  NewFactory(),
		Controls: NewControls(logger),
		Commands: NewCommands(nil, nil),
		Bindings: map[string]any{},
		MaxDepth: DefaultMaxDepth,
		logger:   logger,
		index:    map[string]widget.Node{},
	}
}

// Lookup returns the node registered under an identity path.
func (b *Builder) Lookup(path string) (widget.Node, bool) {
	n, ok := b.index[path]
	return n, ok
}

// BuildTab builds d under stableID, which becomes the tab's id and the
// prefix of every panel path. A panel without a source is registered but
// not attached.
func (b *Builder) BuildTab(d *decl.Tab, stableID string) *widget.Tab {
	d = decl.Normalized(d).(*decl.Tab)
	node, _ := b.Factory.New(d)
	tab := node.(*widget.Tab)
	tab.ID = stableID
	tab.Cookie = Substitute(decl.CookieOf(d), stableID)
	tab.Path = stableID
	for _, pd := range d.Panels {
		tab.AddPanel(b.buildPanel(pd, stableID))
	}
	return tab
}

func (b *Builder) buildPanel(d *decl.Panel, prefix string) (panel *widget.Panel) {
	if d == nil {
		return nil
	}
	path := JoinPath(prefix, d.ID)
	defer b.recoverBranch("ribbon.BuildPanel", path, d.ID != "", func() { panel = nil })

	node, _ := b.Factory.New(d)
	panel = node.(*widget.Panel)
	panel.UID = d.ID
	b.place(panel, d, prefix, path)
	b.register(panel, d, path)
	if d.Source == nil {
		return nil
	}
	panel.Source = b.buildSource(d.Source, path)
	return panel
}

func (b *Builder) buildSource(d decl.Source, prefix string) widget.Source {
	node, _ := b.Factory.New(d)
	src := node.(widget.Source)
	ds := d.Fields()
	path := JoinPath(prefix, ds.ID)
	b.place(src, d, prefix, path)
	b.register(src, d, path)

	live := src.Fields()
	for _, it := range ds.Items {
		live.Items.Add(b.BuildItem(it, path, 0))
	}
	if ds.DialogLauncher != nil {
		live.DialogLauncher = b.dialogLauncher(ds.DialogLauncher, path)
	}
	return src
}

// dialogLauncher is always a plain button sized by the panel title bar.
func (b *Builder) dialogLauncher(d *decl.Button, prefix string) *widget.Button {
	btn := transform.Into(&widget.Button{}, d)
	btn.MinWidth = 0
	btn.Width = math.NaN()
	path := JoinPath(prefix, d.ID)
	b.place(btn, d, prefix, path)
	b.decorate(btn, d, path)
	b.register(btn, d, path)
	return btn
}

// BuildItem builds d and its accepted children. It returns nil when the
// branch is dropped: the depth limit was reached for a container, the kind
// has no constructor, or building panicked.
func (b *Builder) BuildItem(d decl.Item, prefix string, depth int) (it widget.Item) {
	if d == nil {
		return nil
	}
	path := JoinPath(prefix, d.Base().ID)
	if depth >= b.maxDepth() && !AlwaysAllowed(d.Kind()) {
		errors.Reportf("ribbon.BuildItem", errors.KindShape, path, "%s at depth %d exceeds the limit of %d", d.Kind(), depth, b.maxDepth())
		return nil
	}
	defer b.recoverBranch("ribbon.BuildItem", path, d.Base().ID != "", func() { it = nil })

	d = decl.Normalized(d).(decl.Item)
	node, err := b.Factory.New(d)
	if err != nil {
		errors.Report(&errors.RibbonError{Op: "ribbon.BuildItem", Kind: errors.KindResource, ID: path, Err: err})
		return nil
	}
	it, ok := node.(widget.Item)
	if !ok {
		panic(errors.Contractf("ribbon.BuildItem", "%T is not an item", node))
	}
	b.place(it, d, prefix, path)
	b.decorate(it, d, path)

	switch dn := d.(type) {
	case decl.RowPanelNode:
		b.rowChildren(it.(widget.RowPanelNode).RowFields(), dn, path, depth)
	case decl.ListNode:
		b.listChildren(it.(widget.ListNode).ListFields(), dn.ComboFields(), path, depth)
	case decl.ListButtonNode:
		target := &it.(widget.ListButtonNode).ListButtonFields().Items
		for _, c := range dn.ListFields().Items {
			if !listButtonAccepts(dn, c) {
				b.reject(path, dn, c)
				continue
			}
			target.Add(b.BuildItem(c, path, depth+1))
		}
	case *decl.Custom:
		b.customChildren(it, dn, path, depth)
	}

	b.register(it, d, path)
	return it
}

// rowChildren fills a row panel. With a sub-panel source the children are the
// source items followed by the inline ones and all land in the source.
func (b *Builder) rowChildren(live *widget.RowPanelBase, dn decl.RowPanelNode, path string, depth int) {
	d := dn.RowFields()
	children, prefix := d.Items, path
	if d.Source != nil {
		src := transform.Into(&widget.SubPanelSource{}, d.Source)
		prefix = JoinPath(path, d.Source.ID)
		b.place(src, d.Source, path, prefix)
		b.register(src, d.Source, prefix)
		live.Source = src
		children = append(append([]decl.Item(nil), d.Source.Items...), d.Items...)
	}
	target := live.Target()
	for _, c := range children {
		if !rowAccepts(c) {
			b.reject(path, dn, c)
			continue
		}
		target.Add(b.BuildItem(c, prefix, depth+1))
	}
}

func (b *Builder) listChildren(live *widget.List, d *decl.List, path string, depth int) {
	if key := d.ItemsBindingKey; key != "" {
		if src, ok := b.Bindings[strings.ToLower(key)]; ok {
			live.ItemsBinding = src
		} else {
			errors.Reportf("ribbon.BuildItem", errors.KindResource, path, "items binding %q: %v", key, errors.ErrNotFound)
		}
	}
	if live.ItemsBinding == nil {
		for _, c := range d.Items {
			live.Items.Add(b.BuildItem(c, path, depth+1))
		}
	}
	for _, c := range d.MenuItems {
		if !menuItemAccepts(c) {
			errors.Reportf("ribbon.BuildItem", errors.KindShape, path, "menu items do not accept %s", c.Kind())
			continue
		}
		live.MenuItems.Add(b.BuildItem(c, path, depth+1))
	}
}

func (b *Builder) customChildren(live widget.Item, d *decl.Custom, path string, depth int) {
	if len(d.Items) == 0 {
		return
	}
	c, ok := live.(widget.Container)
	if !ok {
		errors.Reportf("ribbon.BuildItem", errors.KindShape, path, "custom kind %q does not accept children", d.KindName)
		return
	}
	target := c.Children()
	for _, child := range d.Items {
		target.Add(b.BuildItem(child, path, depth+1))
	}
}

// place writes the resolved cookie and the identity path to n.
func (b *Builder) place(n widget.Node, d decl.Node, prefix, path string) {
	e := n.Base()
	e.Cookie = Substitute(decl.CookieOf(d), prefix)
	e.Path = path
}

// decorate attaches images and the command handler.
func (b *Builder) decorate(n widget.Item, d decl.Item, path string) {
	base, common := n.Item(), d.Common()
	base.Image = b.lookupImage(common.ImageKey, path)
	base.LargeImage = b.lookupImage(common.LargeImageKey, path)
	if c, ok := n.(widget.CommandNode); ok && b.Commands != nil {
		f := c.CommandFields()
		f.CommandHandler = b.Commands.Handler(f.Command)
	}
}

func (b *Builder) lookupImage(key, path string) image.Image {
	if key == "" {
		return nil
	}
	if b.Images != nil {
		if img, ok := b.Images.Image(key); ok {
			return img
		}
	}
	errors.Reportf("ribbon.BuildItem", errors.KindResource, path, "image %q: %v", key, errors.ErrNotFound)
	return nil
}

func (b *Builder) register(n widget.Node, d decl.Node, path string) {
	if b.Controls != nil {
		b.Controls.Register(n, d, path)
	}
	if d.Base().ID != "" {
		b.index[path] = n
	}
}

func (b *Builder) reject(path string, parent, child decl.Node) {
	errors.Reportf("ribbon.BuildItem", errors.KindShape, path, "%s does not accept %s", parent.Kind(), child.Kind())
}

// recoverBranch turns a panic in one branch into a report and drops the
// branch. Contract violations are not recovered. When owned is set the
// branch's index entries are dropped too.
func (b *Builder) recoverBranch(op, path string, owned bool, drop func()) {
	r := recover()
	if r == nil {
		return
	}
	if ce, ok := r.(*errors.ContractError); ok {
		panic(ce)
	}
	errors.ReportPanic(&errors.PanicError{
		Op:         op,
		ID:         path,
		Value:      r,
		StackTrace: errors.CaptureStack(),
	})
	if owned {
		b.forget(path)
	}
	drop()
}

// forget drops the index entries at and below path.
func (b *Builder) forget(path string) {
	for k := range b.index {
		if k == path || strings.HasPrefix(k, path+PathSeparator) {
			delete(b.index, k)
		}
	}
}

func (b *Builder) maxDepth() int {
	if b.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return b.MaxDepth
}
