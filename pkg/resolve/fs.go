package resolve

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/ribbon/pkg/decl"
	"github.com/go-drift/ribbon/pkg/errors"
)

// DefaultExt is the declaration file extension used when none is configured.
const DefaultExt = ".yaml"

// FS resolves <dir>/<id><ext> files from a file system. Files are decoded on
// every call, so edits are picked up without a restart.
type FS struct {
	fsys fs.FS
	dir  string
	ext  string
}

// NewFS returns a resolver reading declarations from dir inside fsys.
// An empty ext selects DefaultExt.
func NewFS(fsys fs.FS, dir, ext string) *FS {
	if dir == "" {
		dir = "."
	}
	if ext == "" {
		ext = DefaultExt
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return &FS{fsys: fsys, dir: dir, ext: ext}
}

// Resolve implements Resolver. A missing file is a plain miss; a file that
// fails to decode is reported and also treated as a miss.
func (r *FS) Resolve(id string) (*decl.Tab, bool) {
	name := path.Join(r.dir, id+r.ext)
	data, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		if !stderrors.Is(err, fs.ErrNotExist) {
			errors.Report(&errors.RibbonError{Op: "resolve.FS", Kind: errors.KindResource, ID: id, Err: err})
		}
		return nil, false
	}
	tab, err := Parse(name, data)
	if err != nil {
		errors.Report(&errors.RibbonError{Op: "resolve.FS", Kind: errors.KindDeclaration, ID: id, Err: err})
		return nil, false
	}
	if tab.ID == "" {
		tab.ID = id
	}
	return tab, true
}

// IDs lists the tab ids available in the directory, sorted.
func (r *FS) IDs() ([]string, error) {
	entries, err := fs.ReadDir(r.fsys, r.dir)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(path.Ext(e.Name()), r.ext) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(ids)
	return ids, nil
}

// Parse decodes one declaration document. Only a document that is not a
// mapping fails; problems inside the tree are reported and the offending
// branch is skipped.
func Parse(name string, data []byte) (*decl.Tab, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: top level must be a mapping", name)
	}
	d := &decoder{file: name}
	return d.tab(root), nil
}

type decoder struct {
	file string
}

func (d *decoder) report(kind errors.ErrorKind, n *yaml.Node, id, format string, args ...any) {
	errors.Report(&errors.RibbonError{
		Op:   "resolve.Parse",
		Kind: kind,
		ID:   id,
		Err:  fmt.Errorf("%s:%d: %s", d.file, n.Line, fmt.Sprintf(format, args...)),
	})
}

// fill applies the scalar attributes of m to node and hands block values to
// child. The id is applied first so later reports carry it.
func (d *decoder) fill(node decl.Node, m *yaml.Node, child func(key string, v *yaml.Node) bool) {
	if v := lookup(m, "id"); v != nil && v.Kind == yaml.ScalarNode {
		decl.SetAttr(node, "id", v.Value)
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		key := strings.ToLower(k.Value)
		if key == "kind" || key == "id" {
			continue
		}
		if child != nil && child(key, v) {
			continue
		}
		if v.Kind != yaml.ScalarNode {
			d.report(errors.KindShape, k, node.Base().ID, "%s does not accept %q", node.Kind(), k.Value)
			continue
		}
		if !decl.SetAttr(node, key, v.Value) {
			d.report(errors.KindDeclaration, k, node.Base().ID, "unknown attribute %q on %s", k.Value, node.Kind())
		}
	}
}

func (d *decoder) tab(m *yaml.Node) *decl.Tab {
	t := decl.NewTab()
	d.fill(t, m, func(key string, v *yaml.Node) bool {
		if key != "panels" {
			return false
		}
		for _, pn := range d.seq(v, t.ID) {
			if p := d.panel(pn); p != nil {
				t.Panels = append(t.Panels, p)
			}
		}
		return true
	})
	return t
}

func (d *decoder) panel(m *yaml.Node) *decl.Panel {
	if !d.expectKind(m, decl.KindPanel) {
		return nil
	}
	p := decl.NewPanel()
	d.fill(p, m, func(key string, v *yaml.Node) bool {
		if key != "source" {
			return false
		}
		if v.Kind != yaml.MappingNode {
			d.report(errors.KindShape, v, p.ID, "panel source must be a mapping")
			return true
		}
		p.Source = d.panelSource(v)
		return true
	})
	return p
}

func (d *decoder) panelSource(m *yaml.Node) decl.Source {
	var src decl.Source = decl.NewPanelSource()
	if kv := lookup(m, "kind"); kv != nil {
		k, ok := decl.ParseKind(kv.Value)
		switch {
		case ok && k == decl.KindPanelSpacer:
			src = decl.NewPanelSpacer()
		case ok && k == decl.KindPanelSource:
		default:
			d.report(errors.KindShape, kv, "", "%q cannot be a panel source", kv.Value)
			return nil
		}
	}
	s := src.Fields()
	d.fill(src, m, func(key string, v *yaml.Node) bool {
		switch key {
		case "items":
			s.Items = d.items(v, s.ID)
		case "dialoglauncher":
			if v.Kind != yaml.MappingNode {
				d.report(errors.KindShape, v, s.ID, "dialog launcher must be a mapping")
				return true
			}
			b := decl.NewButton()
			d.fill(b, v, nil)
			s.DialogLauncher = b
		default:
			return false
		}
		return true
	})
	return src
}

func (d *decoder) subPanelSource(m *yaml.Node) *decl.SubPanelSource {
	if !d.expectKind(m, decl.KindSubPanelSource) {
		return nil
	}
	s := decl.NewSubPanelSource()
	d.fill(s, m, func(key string, v *yaml.Node) bool {
		if key != "items" {
			return false
		}
		s.Items = d.items(v, s.ID)
		return true
	})
	return s
}

func (d *decoder) items(v *yaml.Node, parent string) []decl.Item {
	var out []decl.Item
	for _, n := range d.seq(v, parent) {
		if it := d.item(n); it != nil {
			out = append(out, it)
		}
	}
	return out
}

func (d *decoder) item(m *yaml.Node) decl.Item {
	if m.Kind != yaml.MappingNode {
		d.report(errors.KindShape, m, "", "item must be a mapping")
		return nil
	}
	kv := lookup(m, "kind")
	if kv == nil || strings.TrimSpace(kv.Value) == "" {
		d.report(errors.KindShape, m, "", "item without kind")
		return nil
	}
	var it decl.Item
	if k, ok := decl.ParseKind(kv.Value); ok {
		if it, ok = decl.NewItem(k); !ok {
			d.report(errors.KindShape, kv, "", "%s is not an item kind", k)
			return nil
		}
	} else {
		it = decl.NewCustom(strings.TrimSpace(kv.Value))
	}
	d.fill(it, m, func(key string, v *yaml.Node) bool {
		return d.itemChild(it, key, v)
	})
	return it
}

func (d *decoder) itemChild(it decl.Item, key string, v *yaml.Node) bool {
	id := it.Base().ID
	switch key {
	case "items":
		list := d.items(v, id)
		switch x := it.(type) {
		case decl.RowPanelNode:
			x.RowFields().Items = list
		case decl.ListNode:
			x.ComboFields().Items = list
		case decl.ListButtonNode:
			x.ListFields().Items = list
		case *decl.Custom:
			x.Items = list
		default:
			return false
		}
	case "menuitems":
		l, ok := it.(decl.ListNode)
		if !ok {
			return false
		}
		l.ComboFields().MenuItems = d.items(v, id)
	case "source":
		r, ok := it.(decl.RowPanelNode)
		if !ok {
			return false
		}
		if v.Kind == yaml.MappingNode {
			r.RowFields().Source = d.subPanelSource(v)
		} else {
			d.report(errors.KindShape, v, id, "sub-panel source must be a mapping")
		}
	default:
		return false
	}
	return true
}

// expectKind accepts a mapping whose kind is absent or equal to want.
func (d *decoder) expectKind(m *yaml.Node, want decl.Kind) bool {
	if m.Kind != yaml.MappingNode {
		d.report(errors.KindShape, m, "", "%s must be a mapping", want)
		return false
	}
	kv := lookup(m, "kind")
	if kv == nil {
		return true
	}
	if k, ok := decl.ParseKind(kv.Value); ok && k == want {
		return true
	}
	d.report(errors.KindShape, kv, "", "expected %s, got %q", want, kv.Value)
	return false
}

func (d *decoder) seq(v *yaml.Node, parent string) []*yaml.Node {
	if v.Kind != yaml.SequenceNode {
		d.report(errors.KindShape, v, parent, "expected a list")
		return nil
	}
	return v.Content
}

func lookup(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if strings.EqualFold(m.Content[i].Value, key) {
			return m.Content[i+1]
		}
	}
	return nil
}
