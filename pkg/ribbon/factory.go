package ribbon

import (
	"fmt"
	"strings"

	"github.com/go-drift/ribbon/pkg/decl"
	"github.com/go-drift/ribbon/pkg/errors"
	"github.com/go-drift/ribbon/pkg/transform"
	"github.com/go-drift/ribbon/pkg/widget"
)

// Plugin constructs the live item for a custom declaration kind. A plugin
// item implementing widget.Container receives the declaration's children.
type Plugin func(d *decl.Custom) (widget.Item, error)

// Factory produces the live node for a declaration. The closed kinds map to
// their widget counterparts; custom kinds go through registered plugins.
type Factory struct {
	plugins map[string]Plugin
}

// NewFactory returns a factory with no plugins.
func NewFactory() *Factory {
	return &Factory{plugins: map[string]Plugin{}}
}

// Register sets the plugin for a custom kind name. Names compare
// case-insensitively.
func (f *Factory) Register(kind string, p Plugin) {
	if f.plugins == nil {
		f.plugins = map[string]Plugin{}
	}
	f.plugins[strings.ToLower(kind)] = p
}

// New returns the live node for d with every matching field copied.
// It fails only for custom kinds: errors.ErrNotFound when no plugin is
// registered, or the plugin's own error.
func (f *Factory) New(d decl.Node) (widget.Node, error) {
	switch n := d.(type) {
	case *decl.Tab:
		return transform.Into(&widget.Tab{}, n), nil
	case *decl.Panel:
		return transform.Into(&widget.Panel{}, n), nil
	case *decl.PanelSource:
		return transform.Into(&widget.PanelSource{}, n), nil
	case *decl.PanelSpacer:
		return transform.Into(&widget.PanelSpacer{}, n), nil
	case *decl.SubPanelSource:
		return transform.Into(&widget.SubPanelSource{}, n), nil
	case *decl.Custom:
		return f.custom(n)
	case decl.Item:
		return f.item(n), nil
	}
	panic(errors.Contractf("ribbon.Factory", "no constructor for %T", d))
}

func (f *Factory) item(d decl.Item) widget.Item {
	switch n := d.(type) {
	case *decl.Combo:
		return transform.Into(&widget.Combo{}, n)
	case *decl.Gallery:
		return transform.Into(&widget.Gallery{}, n)
	case *decl.Label:
		return transform.Into(&widget.Label{}, n)
	case *decl.PanelBreak:
		return transform.Into(&widget.PanelBreak{}, n)
	case *decl.RowBreak:
		return transform.Into(&widget.RowBreak{}, n)
	case *decl.RowPanel:
		return transform.Into(&widget.RowPanel{}, n)
	case *decl.FlowPanel:
		return transform.Into(&widget.FlowPanel{}, n)
	case *decl.FoldPanel:
		return transform.Into(&widget.FoldPanel{}, n)
	case *decl.Separator:
		return transform.Into(&widget.Separator{}, n)
	case *decl.Slider:
		return transform.Into(&widget.Slider{}, n)
	case *decl.Spinner:
		return transform.Into(&widget.Spinner{}, n)
	case *decl.TextBox:
		return transform.Into(&widget.TextBox{}, n)
	case *decl.ProgressBarSource:
		return transform.Into(&widget.ProgressBarSource{}, n)
	case *decl.CheckBox:
		return transform.Into(&widget.CheckBox{}, n)
	case *decl.MenuItem:
		return transform.Into(&widget.MenuItem{}, n)
	case *decl.ApplicationMenuItem:
		return transform.Into(&widget.ApplicationMenuItem{}, n)
	case *decl.Button:
		return transform.Into(&widget.Button{}, n)
	case *decl.ToggleButton:
		return transform.Into(&widget.ToggleButton{}, n)
	case *decl.ToolBarShareButton:
		return transform.Into(&widget.ToolBarShareButton{}, n)
	case *decl.ChecklistButton:
		return transform.Into(&widget.ChecklistButton{}, n)
	case *decl.MenuButton:
		return transform.Into(&widget.MenuButton{}, n)
	case *decl.RadioButtonGroup:
		return transform.Into(&widget.RadioButtonGroup{}, n)
	case *decl.SplitButton:
		return transform.Into(&widget.SplitButton{}, n)
	}
	panic(errors.Contractf("ribbon.Factory", "no constructor for item %T", d))
}

func (f *Factory) custom(d *decl.Custom) (widget.Node, error) {
	p := f.plugins[strings.ToLower(d.KindName)]
	if p == nil {
		return nil, fmt.Errorf("custom kind %q: %w", d.KindName, errors.ErrNotFound)
	}
	it, err := p(d)
	if err != nil {
		return nil, fmt.Errorf("custom kind %q: %w", d.KindName, err)
	}
	if it == nil {
		return nil, fmt.Errorf("custom kind %q: plugin returned nil: %w", d.KindName, errors.ErrNotFound)
	}
	if b := it.Base(); b.ID == "" {
		b.ID = d.ID
	}
	return it, nil
}

// AlwaysAllowed reports whether k may be built at any depth. Only kinds that
// never own children qualify.
func AlwaysAllowed(k decl.Kind) bool {
	switch k {
	case decl.KindLabel, decl.KindPanelBreak, decl.KindRowBreak, decl.KindSeparator,
		decl.KindSlider, decl.KindSpinner, decl.KindTextBox, decl.KindProgressBarSource,
		decl.KindCheckBox, decl.KindMenuItem, decl.KindApplicationMenuItem,
		decl.KindButton, decl.KindToggleButton, decl.KindToolBarShareButton:
		return true
	}
	return false
}
