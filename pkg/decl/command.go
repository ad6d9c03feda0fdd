package decl

import (
	"strings"

	"github.com/go-drift/ribbon/pkg/attr"
)

// CommandNode is an item that dispatches a command when invoked.
type CommandNode interface {
	Item
	CommandFields() *CommandItem
}

// ToggleNode is a command item with a checked state; radio groups accept
// only these.
type ToggleNode interface {
	CommandNode
	ToggleFields() *ToggleButton
}

// MenuNode is a menu entry; menu buttons accept only these and separators.
type MenuNode interface {
	CommandNode
	MenuFields() *MenuItem
}

// ListButtonNode is one of the four list button kinds.
type ListButtonNode interface {
	CommandNode
	ListFields() *ListButton
}

// CommandItem carries the attributes shared by command items.
type CommandItem struct {
	ItemCommon
	// Command is the host command string sent when the item is invoked.
	Command     string
	IsCheckable bool
	IsActive    bool
}

func defaultCommand() CommandItem {
	return CommandItem{ItemCommon: defaultCommon()}
}

// CommandFields returns c. It is promoted to every command item type.
func (c *CommandItem) CommandFields() *CommandItem { return c }

func (c *CommandItem) set(key, raw string) bool {
	f := fields{c.ID}
	switch key {
	case "command", "commandparameter":
		c.Command = strings.TrimSpace(raw)
	case "ischeckable":
		return f.bool(&c.IsCheckable, "IsCheckable", raw, false)
	case "isactive":
		return f.bool(&c.IsActive, "IsActive", raw, false)
	default:
		return c.ItemCommon.set(key, raw)
	}
	return true
}

// ProgressBarSource reports progress of a long-running operation.
type ProgressBarSource struct {
	CommandItem
	HasCancelButton  bool
	CurrentOperation string
	MinimumValue     float64
	MaximumValue     float64
	CurrentValue     float64
}

const (
	progressMin = 0.0
	progressMax = 100.0
)

// NewProgressBarSource returns a progress bar with the range 0..100.
func NewProgressBarSource() *ProgressBarSource {
	return &ProgressBarSource{CommandItem: defaultCommand(), MinimumValue: progressMin, MaximumValue: progressMax}
}

func (*ProgressBarSource) Kind() Kind { return KindProgressBarSource }

func (p *ProgressBarSource) set(key, raw string) bool {
	f := fields{p.ID}
	switch key {
	case "hascancelbutton":
		return f.bool(&p.HasCancelButton, "HasCancelButton", raw, false)
	case "currentoperation":
		p.CurrentOperation = raw
	case "minimumvalue":
		return f.float(&p.MinimumValue, "MinimumValue", raw, progressMin)
	case "maximumvalue":
		return f.float(&p.MaximumValue, "MaximumValue", raw, progressMax)
	case "currentvalue":
		return f.float(&p.CurrentValue, "CurrentValue", raw, progressMin)
	default:
		return p.CommandItem.set(key, raw)
	}
	return true
}

// Normalize keeps MinimumValue <= CurrentValue <= MaximumValue.
func (p *ProgressBarSource) Normalize() {
	r := attr.Range{Min: p.MinimumValue, Current: p.CurrentValue, Max: p.MaximumValue}.Normalize(progressMin, progressMax)
	p.MinimumValue, p.CurrentValue, p.MaximumValue = r.Min, r.Current, r.Max
}

// CheckBox is a two-state command item.
type CheckBox struct {
	CommandItem
	IsChecked bool
}

// NewCheckBox returns a CheckBox with default attributes.
func NewCheckBox() *CheckBox { return &CheckBox{CommandItem: defaultCommand()} }

func (*CheckBox) Kind() Kind { return KindCheckBox }

func (c *CheckBox) set(key, raw string) bool {
	if key == "ischecked" {
		return fields{c.ID}.bool(&c.IsChecked, "IsChecked", raw, false)
	}
	return c.CommandItem.set(key, raw)
}

// MenuItem is an entry of a menu button or combo menu.
type MenuItem struct {
	CommandItem
	IsChecked bool
}

// NewMenuItem returns a MenuItem with default attributes.
func NewMenuItem() *MenuItem { return &MenuItem{CommandItem: defaultCommand()} }

func (*MenuItem) Kind() Kind { return KindMenuItem }

// MenuFields returns m. It is promoted to ApplicationMenuItem.
func (m *MenuItem) MenuFields() *MenuItem { return m }

func (m *MenuItem) set(key, raw string) bool {
	if key == "ischecked" {
		return fields{m.ID}.bool(&m.IsChecked, "IsChecked", raw, false)
	}
	return m.CommandItem.set(key, raw)
}

// ApplicationMenuItem is a menu item shown in the application menu.
type ApplicationMenuItem struct {
	MenuItem
}

// NewApplicationMenuItem returns a ApplicationMenuItem with default attributes.
func NewApplicationMenuItem() *ApplicationMenuItem {
	return &ApplicationMenuItem{MenuItem: *NewMenuItem()}
}

func (*ApplicationMenuItem) Kind() Kind { return KindApplicationMenuItem }

// Button is a push button.
type Button struct {
	CommandItem
	Orientation attr.Orientation
}

func defaultButton() Button {
	b := Button{CommandItem: defaultCommand()}
	b.ResizeStyle = attr.HideText
	return b
}

// NewButton returns a Button with default attributes.
func NewButton() *Button {
	b := defaultButton()
	return &b
}

func (*Button) Kind() Kind { return KindButton }

func (b *Button) set(key, raw string) bool {
	if key == "orientation" {
		return enum(fields{b.ID}, &b.Orientation, "Orientation", raw, attr.Horizontal, attr.ParseOrientation)
	}
	return b.CommandItem.set(key, raw)
}

// ToggleButton is a button with a checked state.
type ToggleButton struct {
	Button
	IsChecked bool
}

// NewToggleButton returns a ToggleButton with default attributes.
func NewToggleButton() *ToggleButton { return &ToggleButton{Button: defaultButton()} }

func (*ToggleButton) Kind() Kind { return KindToggleButton }

// ToggleFields returns t. It is promoted to ToolBarShareButton.
func (t *ToggleButton) ToggleFields() *ToggleButton { return t }

func (t *ToggleButton) set(key, raw string) bool {
	if key == "ischecked" {
		return fields{t.ID}.bool(&t.IsChecked, "IsChecked", raw, false)
	}
	return t.Button.set(key, raw)
}

// ToolBarShareButton is a toggle button shared with the quick access toolbar.
type ToolBarShareButton struct {
	ToggleButton
}

// NewToolBarShareButton returns a ToolBarShareButton with default attributes.
func NewToolBarShareButton() *ToolBarShareButton {
	return &ToolBarShareButton{ToggleButton: *NewToggleButton()}
}

func (*ToolBarShareButton) Kind() Kind { return KindToolBarShareButton }

// ListButton carries the attributes shared by the list button kinds.
type ListButton struct {
	Button
	IsSplit           bool
	IsGrouping        bool
	SynchronizeOption attr.SynchronizeOption
	AllowOrientation  bool

	Items []Item `ribbon:"-"`
}

func defaultListButton() ListButton {
	return ListButton{Button: defaultButton(), IsSplit: true}
}

// ListFields returns l. It is promoted to every list button kind.
func (l *ListButton) ListFields() *ListButton { return l }

func (l *ListButton) set(key, raw string) bool {
	f := fields{l.ID}
	switch key {
	case "issplit":
		return f.bool(&l.IsSplit, "IsSplit", raw, true)
	case "isgrouping":
		return f.bool(&l.IsGrouping, "IsGrouping", raw, false)
	case "synchronizeoption":
		return enum(f, &l.SynchronizeOption, "SynchronizeOption", raw, attr.SyncAll, attr.ParseSynchronizeOption)
	case "alloworientation":
		return f.bool(&l.AllowOrientation, "AllowOrientation", raw, false)
	}
	return l.Button.set(key, raw)
}

// ChecklistButton is a list button whose entries can be checked.
type ChecklistButton struct {
	ListButton
}

// NewChecklistButton returns a ChecklistButton with default attributes.
func NewChecklistButton() *ChecklistButton {
	return &ChecklistButton{ListButton: defaultListButton()}
}

func (*ChecklistButton) Kind() Kind { return KindChecklistButton }

// MenuButton is a list button that drops down a menu.
type MenuButton struct {
	ListButton
}

// NewMenuButton returns a MenuButton with default attributes.
func NewMenuButton() *MenuButton {
	return &MenuButton{ListButton: defaultListButton()}
}

func (*MenuButton) Kind() Kind { return KindMenuButton }

// RadioButtonGroup is a list button of mutually exclusive toggle buttons.
type RadioButtonGroup struct {
	ListButton
	MaxRow            int
	MaxColumn         int
	CollapsedSize     attr.ItemSize
	ExpandOrientation attr.Orientation
	CanCollapse       bool
}

// NewRadioButtonGroup returns a RadioButtonGroup with default attributes.
func NewRadioButtonGroup() *RadioButtonGroup {
	g := &RadioButtonGroup{ListButton: defaultListButton(), MaxRow: 3, MaxColumn: 10000, CanCollapse: true}
	g.IsSplit = false
	g.AllowInToolBar = true
	return g
}

func (*RadioButtonGroup) Kind() Kind { return KindRadioButtonGroup }

func (g *RadioButtonGroup) set(key, raw string) bool {
	f := fields{g.ID}
	switch key {
	case "maxrow":
		return f.int(&g.MaxRow, "MaxRow", raw, 3)
	case "maxcolumn":
		return f.int(&g.MaxColumn, "MaxColumn", raw, 10000)
	case "collapsedsize":
		return enum(f, &g.CollapsedSize, "CollapsedSize", raw, attr.SizeStandard, attr.ParseItemSize)
	case "expandorientation":
		return enum(f, &g.ExpandOrientation, "ExpandOrientation", raw, attr.Horizontal, attr.ParseOrientation)
	case "cancollapse":
		return f.bool(&g.CanCollapse, "CanCollapse", raw, true)
	}
	return g.ListButton.set(key, raw)
}

// SplitButton is a list button with a default action and a drop-down.
type SplitButton struct {
	ListButton
	ListStyle     attr.SplitButtonListStyle
	ListImageSize attr.ImageSize
}

// NewSplitButton returns a split button with large list images and image synchronization.
func NewSplitButton() *SplitButton {
	s := &SplitButton{ListButton: defaultListButton(), ListImageSize: attr.ImageLarge}
	s.SynchronizeOption = attr.SyncImage
	return s
}

func (*SplitButton) Kind() Kind { return KindSplitButton }

func (s *SplitButton) set(key, raw string) bool {
	f := fields{s.ID}
	switch key {
	case "liststyle":
		return enum(f, &s.ListStyle, "ListStyle", raw, attr.ListStyleList, attr.ParseSplitButtonListStyle)
	case "listimagesize":
		return enum(f, &s.ListImageSize, "ListImageSize", raw, attr.ImageLarge, attr.ParseImageSize)
	}
	return s.ListButton.set(key, raw)
}
