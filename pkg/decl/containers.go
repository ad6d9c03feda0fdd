package decl

import (
	"math"
	"strings"

	"github.com/go-drift/ribbon/pkg/attr"
)

// RowPanelNode is one of the row panel kinds.
type RowPanelNode interface {
	Item
	RowFields() *RowPanelBase
}

// ListNode is a combo or gallery.
type ListNode interface {
	Item
	ComboFields() *List
}

// RowPanelBase carries the attributes shared by the row panel kinds.
type RowPanelBase struct {
	ItemCommon
	ResizePriority                  int
	IsTopJustified                  bool
	AreItemsArrangedFromRightToLeft bool

	// Source, when present, receives the children in the live tree.
	Source *SubPanelSource `ribbon:"-"`
	Items  []Item          `ribbon:"-"`
}

func defaultRowPanel() RowPanelBase {
	return RowPanelBase{ItemCommon: defaultCommon(), ResizePriority: 100}
}

// RowFields returns r. It is promoted to every row panel kind.
func (r *RowPanelBase) RowFields() *RowPanelBase { return r }

func (r *RowPanelBase) set(key, raw string) bool {
	f := fields{r.ID}
	switch key {
	case "resizepriority":
		return f.int(&r.ResizePriority, "ResizePriority", raw, 100)
	case "istopjustified":
		return f.bool(&r.IsTopJustified, "IsTopJustified", raw, false)
	case "areitemsarrangedfromrighttoleft":
		return f.bool(&r.AreItemsArrangedFromRightToLeft, "AreItemsArrangedFromRightToLeft", raw, false)
	}
	return r.ItemCommon.set(key, raw)
}

// RowPanel lays out its children in rows.
type RowPanel struct {
	RowPanelBase
	SubPanelResizeStyle attr.RowPanelResizeStyle
}

// NewRowPanel returns a RowPanel with default attributes.
func NewRowPanel() *RowPanel { return &RowPanel{RowPanelBase: defaultRowPanel()} }

func (*RowPanel) Kind() Kind { return KindRowPanel }

func (r *RowPanel) set(key, raw string) bool {
	if key == "subpanelresizestyle" {
		return enum(fields{r.ID}, &r.SubPanelResizeStyle, "SubPanelResizeStyle", raw, attr.RowResizeNone, attr.ParseRowPanelResizeStyle)
	}
	return r.RowPanelBase.set(key, raw)
}

// FlowPanel wraps its children over a bounded number of rows.
type FlowPanel struct {
	RowPanelBase
	SubPanelResizeStyle attr.RowPanelResizeStyle
	MaxRowNumber        int
	AreColumnsStatic    bool
}

// NewFlowPanel returns a FlowPanel with default attributes.
func NewFlowPanel() *FlowPanel {
	return &FlowPanel{RowPanelBase: defaultRowPanel(), MaxRowNumber: 3}
}

func (*FlowPanel) Kind() Kind { return KindFlowPanel }

func (p *FlowPanel) set(key, raw string) bool {
	f := fields{p.ID}
	switch key {
	case "subpanelresizestyle":
		return enum(f, &p.SubPanelResizeStyle, "SubPanelResizeStyle", raw, attr.RowResizeNone, attr.ParseRowPanelResizeStyle)
	case "maxrownumber":
		return f.int(&p.MaxRowNumber, "MaxRowNumber", raw, 3)
	case "arecolumnsstatic":
		return f.bool(&p.AreColumnsStatic, "AreColumnsStatic", raw, false)
	}
	return p.RowPanelBase.set(key, raw)
}

// FoldPanel folds its children between three sizes.
type FoldPanel struct {
	RowPanelBase
	SubPanelResizeStyle attr.FoldPanelResizeStyle
	DefaultSize         attr.FoldPanelSize
	MaxSize             attr.FoldPanelSize
	MinSize             attr.FoldPanelSize
}

// NewFoldPanel returns a FoldPanel with default attributes.
func NewFoldPanel() *FoldPanel {
	return &FoldPanel{
		RowPanelBase: defaultRowPanel(),
		DefaultSize:  attr.FoldMedium,
		MaxSize:      attr.FoldLarge,
		MinSize:      attr.FoldSmall,
	}
}

func (*FoldPanel) Kind() Kind { return KindFoldPanel }

func (p *FoldPanel) set(key, raw string) bool {
	f := fields{p.ID}
	switch key {
	case "subpanelresizestyle":
		return enum(f, &p.SubPanelResizeStyle, "SubPanelResizeStyle", raw, attr.FoldResizeNone, attr.ParseFoldPanelResizeStyle)
	case "defaultsize":
		return enum(f, &p.DefaultSize, "DefaultSize", raw, attr.FoldMedium, attr.ParseFoldPanelSize)
	case "maxsize":
		return enum(f, &p.MaxSize, "MaxSize", raw, attr.FoldLarge, attr.ParseFoldPanelSize)
	case "minsize":
		return enum(f, &p.MinSize, "MinSize", raw, attr.FoldSmall, attr.ParseFoldPanelSize)
	}
	return p.RowPanelBase.set(key, raw)
}

// List carries the attributes shared by combos and galleries.
type List struct {
	ItemCommon
	IsGrouping          bool
	MaxDropDownHeight   float64
	DropDownWidth       float64
	Current             string
	TextPath            string
	IsEditable          bool
	EditableText        string
	IsTextSearchEnabled bool
	ResizableBoxWidth   float64
	IsVirtualizing      bool

	// ItemsBindingKey names an external items source. When it resolves, the
	// inline Items are ignored.
	ItemsBindingKey string

	Items     []Item `ribbon:"-"`
	MenuItems []Item `ribbon:"-"`
}

func defaultList() List {
	l := List{
		ItemCommon:          defaultCommon(),
		MaxDropDownHeight:   math.NaN(),
		DropDownWidth:       math.NaN(),
		TextPath:            "Text",
		IsTextSearchEnabled: true,
		ResizableBoxWidth:   math.NaN(),
		IsVirtualizing:      true,
	}
	l.ShowImage = false
	return l
}

// ComboFields returns l. It is promoted to Combo and Gallery.
func (l *List) ComboFields() *List { return l }

func (l *List) set(key, raw string) bool {
	f := fields{l.ID}
	switch key {
	case "isgrouping":
		return f.bool(&l.IsGrouping, "IsGrouping", raw, false)
	case "maxdropdownheight":
		return f.float(&l.MaxDropDownHeight, "MaxDropDownHeight", raw, math.NaN())
	case "dropdownwidth":
		return f.float(&l.DropDownWidth, "DropDownWidth", raw, math.NaN())
	case "current":
		l.Current = raw
	case "textpath":
		l.TextPath = raw
	case "iseditable":
		return f.bool(&l.IsEditable, "IsEditable", raw, false)
	case "editabletext":
		l.EditableText = raw
	case "istextsearchenabled":
		return f.bool(&l.IsTextSearchEnabled, "IsTextSearchEnabled", raw, true)
	case "resizableboxwidth":
		return f.float(&l.ResizableBoxWidth, "ResizableBoxWidth", raw, math.NaN())
	case "isvirtualizing":
		return f.bool(&l.IsVirtualizing, "IsVirtualizing", raw, true)
	case "itemsbinding":
		l.ItemsBindingKey = strings.TrimSpace(raw)
	default:
		return l.ItemCommon.set(key, raw)
	}
	return true
}

// Combo is a drop-down list.
type Combo struct {
	List
}

// NewCombo returns a Combo with default attributes.
func NewCombo() *Combo { return &Combo{List: defaultList()} }

func (*Combo) Kind() Kind { return KindCombo }

// Gallery is a combo that shows its items as a grid.
type Gallery struct {
	List
	DisplayMode attr.GalleryDisplayMode
	ItemWidth   float64
	ItemHeight  float64
}

// NewGallery returns a gallery with unset item size and collapsing resize.
func NewGallery() *Gallery {
	g := &Gallery{List: defaultList(), ItemWidth: math.NaN(), ItemHeight: math.NaN()}
	g.ResizeStyle = attr.Collapse
	return g
}

func (*Gallery) Kind() Kind { return KindGallery }

func (g *Gallery) set(key, raw string) bool {
	f := fields{g.ID}
	switch key {
	case "displaymode":
		return enum(f, &g.DisplayMode, "DisplayMode", raw, attr.GalleryWindow, attr.ParseGalleryDisplayMode)
	case "itemwidth":
		return f.float(&g.ItemWidth, "ItemWidth", raw, math.NaN())
	case "itemheight":
		return f.float(&g.ItemHeight, "ItemHeight", raw, math.NaN())
	}
	return g.List.set(key, raw)
}

// Custom is an item of a kind supplied by a plugin. Its attributes are kept
// raw for the plugin constructor.
type Custom struct {
	ItemCommon
	// KindName is the declared element name.
	KindName string
	Attrs    map[string]string

	Items []Item `ribbon:"-"`
}

// NewCustom returns a custom item of the named kind.
func NewCustom(kindName string) *Custom {
	return &Custom{ItemCommon: defaultCommon(), KindName: kindName, Attrs: map[string]string{}}
}

func (*Custom) Kind() Kind { return KindCustom }

// set keeps every attribute raw and also applies the known common ones.
func (c *Custom) set(key, raw string) bool {
	if c.Attrs == nil {
		c.Attrs = map[string]string{}
	}
	c.Attrs[key] = raw
	c.ItemCommon.set(key, raw)
	return true
}
