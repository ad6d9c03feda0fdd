package widget

import (
	"image"

	"github.com/go-drift/ribbon/pkg/attr"
)

// ItemBase carries the fields shared by every item.
type ItemBase struct {
	Element
	Text             string
	Name             string
	Description      string
	ToolTip          string
	KeyTip           string
	Tag              string
	ShowText         bool
	ShowImage        bool
	Size             attr.ItemSize
	Width            float64
	MinWidth         float64
	ResizeStyle      attr.ItemResizeStyle
	IsEnabled        bool
	IsVisible        bool
	AllowInToolBar   bool
	AllowInStatusBar bool
	IsToolTipEnabled bool

	Image      image.Image
	LargeImage image.Image
}

// Item returns b. It is promoted to every item type.
func (b *ItemBase) Item() *ItemBase { return b }

// CommandNode is an item with a command handler.
type CommandNode interface {
	Item
	CommandFields() *CommandItem
}

// RowPanelNode is one of the row panel kinds.
type RowPanelNode interface {
	Item
	RowFields() *RowPanelBase
}

// ListNode is a combo or gallery.
type ListNode interface {
	Item
	ListFields() *List
}

// ListButtonNode is one of the list button kinds.
type ListButtonNode interface {
	CommandNode
	ListButtonFields() *ListButton
}

type Label struct {
	ItemBase
	Orientation attr.Orientation
}

type Separator struct {
	ItemBase
	SeparatorStyle attr.SeparatorStyle
}

type PanelBreak struct {
	ItemBase
}

type RowBreak struct {
	ItemBase
}

type TextBox struct {
	ItemBase
	Value                 string
	Prompt                string
	IsEmptyTextValid      bool
	SelectTextOnFocus     bool
	AcceptTextOnLostFocus bool
}

type Slider struct {
	ItemBase
	Minimum             float64
	Maximum             float64
	Value               float64
	TextBox1Visibility  attr.Visibility
	TextBox1Editable    bool
	TextBox1Width       float64
	TextBox1Text        string
	IsSnapToTickEnabled bool
	TickPlacement       attr.TickPlacement
	Ticks               []float64
}

type Spinner struct {
	ItemBase
	Minimum float64
	Maximum float64
	Value   float64
	Change  float64
}

// CommandItem is the base of every command-dispatching item.
type CommandItem struct {
	ItemBase
	Command     string
	IsCheckable bool
	IsActive    bool

	CommandHandler Command
}

// CommandFields returns c. It is promoted to every command item type.
func (c *CommandItem) CommandFields() *CommandItem { return c }

type ProgressBarSource struct {
	CommandItem
	HasCancelButton  bool
	CurrentOperation string
	MinimumValue     float64
	MaximumValue     float64
	CurrentValue     float64
}

type CheckBox struct {
	CommandItem
	IsChecked bool
}

type MenuItem struct {
	CommandItem
	IsChecked bool
}

type ApplicationMenuItem struct {
	MenuItem
}

type Button struct {
	CommandItem
	Orientation attr.Orientation
}

type ToggleButton struct {
	Button
	IsChecked bool
}

type ToolBarShareButton struct {
	ToggleButton
}

// ListButton is the base of the list button kinds.
type ListButton struct {
	Button
	IsSplit           bool
	IsGrouping        bool
	SynchronizeOption attr.SynchronizeOption
	AllowOrientation  bool

	Items Collection `ribbon:"-"`
}

// ListButtonFields returns l. It is promoted to every list button kind.
func (l *ListButton) ListButtonFields() *ListButton { return l }

type ChecklistButton struct {
	ListButton
}

type MenuButton struct {
	ListButton
}

type RadioButtonGroup struct {
	ListButton
	MaxRow            int
	MaxColumn         int
	CollapsedSize     attr.ItemSize
	ExpandOrientation attr.Orientation
	CanCollapse       bool
}

type SplitButton struct {
	ListButton
	ListStyle     attr.SplitButtonListStyle
	ListImageSize attr.ImageSize
}

// RowPanelBase is the base of the row panel kinds. When Source is set the
// children live in Source.Items and Items stays empty.
type RowPanelBase struct {
	ItemBase
	ResizePriority                  int
	IsTopJustified                  bool
	AreItemsArrangedFromRightToLeft bool

	Source *SubPanelSource `ribbon:"-"`
	Items  Collection      `ribbon:"-"`
}

// RowFields returns r. It is promoted to every row panel kind.
func (r *RowPanelBase) RowFields() *RowPanelBase { return r }

// Target returns the collection children are appended to.
func (r *RowPanelBase) Target() *Collection {
	if r.Source != nil {
		return &r.Source.Items
	}
	return &r.Items
}

type RowPanel struct {
	RowPanelBase
	SubPanelResizeStyle attr.RowPanelResizeStyle
}

type FlowPanel struct {
	RowPanelBase
	SubPanelResizeStyle attr.RowPanelResizeStyle
	MaxRowNumber        int
	AreColumnsStatic    bool
}

type FoldPanel struct {
	RowPanelBase
	SubPanelResizeStyle attr.FoldPanelResizeStyle
	DefaultSize         attr.FoldPanelSize
	MaxSize             attr.FoldPanelSize
	MinSize             attr.FoldPanelSize
}

// List is the base of combos and galleries.
type List struct {
	ItemBase
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

	// ItemsBinding is an external items source. While it is set, Items must
	// not be modified.
	ItemsBinding any        `ribbon:"-"`
	Items        Collection `ribbon:"-"`
	MenuItems    Collection `ribbon:"-"`
}

// ListFields returns l. It is promoted to Combo and Gallery.
func (l *List) ListFields() *List { return l }

type Combo struct {
	List
}

type Gallery struct {
	List
	DisplayMode attr.GalleryDisplayMode
	ItemWidth   float64
	ItemHeight  float64
}
