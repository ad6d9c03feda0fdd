package decl

import (
	"image/color"

	"github.com/go-drift/ribbon/pkg/attr"
)

// Tab is the root of a declaration tree.
type Tab struct {
	Meta
	Title                        string
	Name                         string
	Description                  string
	KeyTip                       string
	Tag                          string
	IsActive                     bool
	IsEnabled                    bool
	IsPanelEnabled               bool
	IsVisible                    bool
	IsContextualTab              bool
	IsMergedContextualTab        bool
	AllowTearOffContextualPanels bool

	Panels []*Panel `ribbon:"-"`
}

// NewTab returns a tab with its documented defaults.
func NewTab() *Tab {
	return &Tab{IsEnabled: true, IsPanelEnabled: true, IsVisible: true}
}

func (*Tab) Kind() Kind { return KindTab }

func (t *Tab) set(key, raw string) bool {
	f := fields{t.ID}
	switch key {
	case "title":
		t.Title = raw
	case "name":
		t.Name = raw
	case "description":
		t.Description = raw
	case "keytip":
		t.KeyTip = raw
	case "tag":
		t.Tag = raw
	case "isactive":
		return f.bool(&t.IsActive, "IsActive", raw, false)
	case "isenabled":
		return f.bool(&t.IsEnabled, "IsEnabled", raw, true)
	case "ispanelenabled":
		return f.bool(&t.IsPanelEnabled, "IsPanelEnabled", raw, true)
	case "isvisible":
		return f.bool(&t.IsVisible, "IsVisible", raw, true)
	case "iscontextualtab":
		return f.bool(&t.IsContextualTab, "IsContextualTab", raw, false)
	case "ismergedcontextualtab":
		return f.bool(&t.IsMergedContextualTab, "IsMergedContextualTab", raw, false)
	case "allowtearoffcontextualpanels":
		return f.bool(&t.AllowTearOffContextualPanels, "AllowTearOffContextualPanels", raw, false)
	default:
		return t.Meta.set(key, raw)
	}
	return true
}

// Normalize fills Name from ID and Title from Name when they are empty.
func (t *Tab) Normalize() {
	if t.Name == "" {
		t.Name = t.ID
	}
	if t.Title == "" {
		t.Title = t.Name
	}
}

// Panel groups a source of items inside a tab.
type Panel struct {
	Meta
	Tag                         string
	HighlightAsNew              bool
	HighlightPanelTitleBar      bool
	IsVisible                   bool
	IsEnabled                   bool
	CanToggleOrientation        bool
	IsContextualTabThemeIgnored bool
	ResizeStyle                 attr.PanelResizeStyle
	FloatingOrientation         attr.Orientation

	CustomPanelBackground         color.NRGBA
	CustomPanelTitleBarBackground color.NRGBA

	// Source is a *PanelSource or a *PanelSpacer.
	Source Source `ribbon:"-"`
}

// NewPanel returns a panel with its documented defaults.
func NewPanel() *Panel {
	return &Panel{IsVisible: true, IsEnabled: true, FloatingOrientation: attr.Vertical}
}

func (*Panel) Kind() Kind { return KindPanel }

func (p *Panel) set(key, raw string) bool {
	f := fields{p.ID}
	switch key {
	case "tag":
		p.Tag = raw
	case "highlightasnew":
		return f.bool(&p.HighlightAsNew, "HighlightAsNew", raw, false)
	case "highlightpaneltitlebar":
		return f.bool(&p.HighlightPanelTitleBar, "HighlightPanelTitleBar", raw, false)
	case "isvisible":
		return f.bool(&p.IsVisible, "IsVisible", raw, true)
	case "isenabled":
		return f.bool(&p.IsEnabled, "IsEnabled", raw, true)
	case "cantoggleorientation":
		return f.bool(&p.CanToggleOrientation, "CanToggleOrientation", raw, false)
	case "iscontextualtabthemeignored":
		return f.bool(&p.IsContextualTabThemeIgnored, "IsContextualTabThemeIgnored", raw, false)
	case "resizestyle":
		return enum(f, &p.ResizeStyle, "ResizeStyle", raw, attr.PanelResizeNone, attr.ParsePanelResizeStyle)
	case "floatingorientation":
		return enum(f, &p.FloatingOrientation, "FloatingOrientation", raw, attr.Vertical, attr.ParseOrientation)
	case "custompanelbackground":
		return f.color(&p.CustomPanelBackground, "CustomPanelBackground", raw)
	case "custompaneltitlebarbackground":
		return f.color(&p.CustomPanelTitleBarBackground, "CustomPanelTitleBarBackground", raw)
	default:
		return p.Meta.set(key, raw)
	}
	return true
}

// Source is the item container of a panel.
type Source interface {
	Node
	Fields() *PanelSource
}

// PanelSource holds the items of a panel.
type PanelSource struct {
	Meta
	Title                  string
	Name                   string
	Description            string
	Tag                    string
	KeyTip                 string
	IsSlideOutPanelVisible bool

	Items          []Item  `ribbon:"-"`
	DialogLauncher *Button `ribbon:"-"`
}

// NewPanelSource returns a panel source with its documented defaults.
func NewPanelSource() *PanelSource {
	return &PanelSource{IsSlideOutPanelVisible: true}
}

func (*PanelSource) Kind() Kind { return KindPanelSource }

// Fields returns s. It is promoted to PanelSpacer.
func (s *PanelSource) Fields() *PanelSource { return s }

func (s *PanelSource) set(key, raw string) bool {
	switch key {
	case "title":
		s.Title = raw
	case "name":
		s.Name = raw
	case "description":
		s.Description = raw
	case "tag":
		s.Tag = raw
	case "keytip":
		s.KeyTip = raw
	case "isslideoutpanelvisible":
		return fields{s.ID}.bool(&s.IsSlideOutPanelVisible, "IsSlideOutPanelVisible", raw, true)
	default:
		return s.Meta.set(key, raw)
	}
	return true
}

// PanelSpacer is a panel source drawn as a gap with optional borders.
type PanelSpacer struct {
	PanelSource
	LeftBorderBrush  color.NRGBA
	RightBorderBrush color.NRGBA
}

// NewPanelSpacer returns a spacer with transparent borders.
func NewPanelSpacer() *PanelSpacer {
	return &PanelSpacer{PanelSource: *NewPanelSource()}
}

func (*PanelSpacer) Kind() Kind { return KindPanelSpacer }

func (s *PanelSpacer) set(key, raw string) bool {
	f := fields{s.ID}
	switch key {
	case "leftborderbrush":
		return f.color(&s.LeftBorderBrush, "LeftBorderBrush", raw)
	case "rightborderbrush":
		return f.color(&s.RightBorderBrush, "RightBorderBrush", raw)
	}
	return s.PanelSource.set(key, raw)
}

// SubPanelSource holds the items of a row panel.
type SubPanelSource struct {
	Meta
	Name        string
	Description string
	Tag         string

	Items []Item `ribbon:"-"`
}

// NewSubPanelSource returns an empty sub-panel source.
func NewSubPanelSource() *SubPanelSource { return &SubPanelSource{} }

func (*SubPanelSource) Kind() Kind { return KindSubPanelSource }

func (s *SubPanelSource) set(key, raw string) bool {
	switch key {
	case "name":
		s.Name = raw
	case "description":
		s.Description = raw
	case "tag":
		s.Tag = raw
	default:
		return s.Meta.set(key, raw)
	}
	return true
}
