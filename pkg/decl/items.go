package decl

import (
	"math"

	"github.com/go-drift/ribbon/pkg/attr"
)

// ItemCommon carries the attributes shared by every item kind.
type ItemCommon struct {
	Meta
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

	// ImageKey and LargeImageKey name entries in the image registry.
	ImageKey      string
	LargeImageKey string
}

func defaultCommon() ItemCommon {
	return ItemCommon{
		ShowText:         true,
		ShowImage:        true,
		Width:            math.NaN(),
		IsEnabled:        true,
		IsVisible:        true,
		IsToolTipEnabled: true,
	}
}

// Common returns c. It is promoted to every item type.
func (c *ItemCommon) Common() *ItemCommon { return c }

func (c *ItemCommon) set(key, raw string) bool {
	f := fields{c.ID}
	switch key {
	case "text":
		c.Text = raw
	case "name":
		c.Name = raw
	case "description":
		c.Description = raw
	case "tooltip":
		c.ToolTip = raw
	case "keytip":
		c.KeyTip = raw
	case "tag":
		c.Tag = raw
	case "image":
		c.ImageKey = raw
	case "largeimage":
		c.LargeImageKey = raw
	case "showtext":
		return f.bool(&c.ShowText, "ShowText", raw, true)
	case "showimage":
		return f.bool(&c.ShowImage, "ShowImage", raw, true)
	case "size":
		return enum(f, &c.Size, "Size", raw, attr.SizeStandard, attr.ParseItemSize)
	case "width":
		return f.float(&c.Width, "Width", raw, math.NaN())
	case "minwidth":
		return f.float(&c.MinWidth, "MinWidth", raw, 0)
	case "resizestyle":
		return enum(f, &c.ResizeStyle, "ResizeStyle", raw, attr.ResizeWidth, attr.ParseItemResizeStyle)
	case "isenabled":
		return f.bool(&c.IsEnabled, "IsEnabled", raw, true)
	case "isvisible":
		return f.bool(&c.IsVisible, "IsVisible", raw, true)
	case "allowintoolbar":
		return f.bool(&c.AllowInToolBar, "AllowInToolBar", raw, false)
	case "allowinstatusbar":
		return f.bool(&c.AllowInStatusBar, "AllowInStatusBar", raw, false)
	case "istooltipenabled":
		return f.bool(&c.IsToolTipEnabled, "IsToolTipEnabled", raw, true)
	default:
		return c.Meta.set(key, raw)
	}
	return true
}

// Label is a static text item.
type Label struct {
	ItemCommon
	Orientation attr.Orientation
}

// NewLabel returns a Label with default attributes.
func NewLabel() *Label {
	l := &Label{ItemCommon: defaultCommon()}
	l.ResizeStyle = attr.NoResize
	l.IsToolTipEnabled = false
	return l
}

func (*Label) Kind() Kind { return KindLabel }

func (l *Label) set(key, raw string) bool {
	if key == "orientation" {
		return enum(fields{l.ID}, &l.Orientation, "Orientation", raw, attr.Horizontal, attr.ParseOrientation)
	}
	return l.ItemCommon.set(key, raw)
}

// Separator divides groups of items.
type Separator struct {
	ItemCommon
	SeparatorStyle attr.SeparatorStyle
}

// NewSeparator returns a Separator with default attributes.
func NewSeparator() *Separator {
	s := &Separator{ItemCommon: defaultCommon()}
	s.ResizeStyle = attr.NoResize
	return s
}

func (*Separator) Kind() Kind { return KindSeparator }

func (s *Separator) set(key, raw string) bool {
	if key == "separatorstyle" {
		return enum(fields{s.ID}, &s.SeparatorStyle, "SeparatorStyle", raw, attr.SeparatorLine, attr.ParseSeparatorStyle)
	}
	return s.ItemCommon.set(key, raw)
}

// PanelBreak splits a panel into its main and slide-out parts.
type PanelBreak struct {
	ItemCommon
}

// NewPanelBreak returns a PanelBreak with default attributes.
func NewPanelBreak() *PanelBreak { return &PanelBreak{ItemCommon: defaultCommon()} }

func (*PanelBreak) Kind() Kind { return KindPanelBreak }

// RowBreak starts a new row inside a panel.
type RowBreak struct {
	ItemCommon
}

// NewRowBreak returns a RowBreak with default attributes.
func NewRowBreak() *RowBreak { return &RowBreak{ItemCommon: defaultCommon()} }

func (*RowBreak) Kind() Kind { return KindRowBreak }

// TextBox is an editable text field.
type TextBox struct {
	ItemCommon
	Value                 string
	Prompt                string
	IsEmptyTextValid      bool
	SelectTextOnFocus     bool
	AcceptTextOnLostFocus bool
}

// NewTextBox returns a TextBox with default attributes.
func NewTextBox() *TextBox {
	return &TextBox{ItemCommon: defaultCommon(), IsEmptyTextValid: true, AcceptTextOnLostFocus: true}
}

func (*TextBox) Kind() Kind { return KindTextBox }

func (t *TextBox) set(key, raw string) bool {
	f := fields{t.ID}
	switch key {
	case "value":
		t.Value = raw
	case "prompt":
		t.Prompt = raw
	case "isemptytextvalid":
		return f.bool(&t.IsEmptyTextValid, "IsEmptyTextValid", raw, true)
	case "selecttextonfocus":
		return f.bool(&t.SelectTextOnFocus, "SelectTextOnFocus", raw, false)
	case "accepttextonlostfocus":
		return f.bool(&t.AcceptTextOnLostFocus, "AcceptTextOnLostFocus", raw, true)
	default:
		return t.ItemCommon.set(key, raw)
	}
	return true
}

// Slider picks a value in a numeric range.
type Slider struct {
	ItemCommon
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

const (
	sliderMin = 0.0
	sliderMax = 0.0
)

// NewSlider returns a slider with a collapsed text box and tick snapping on.
func NewSlider() *Slider {
	return &Slider{
		ItemCommon:          defaultCommon(),
		Minimum:             sliderMin,
		Maximum:             sliderMax,
		TextBox1Visibility:  attr.Collapsed,
		TextBox1Width:       27,
		IsSnapToTickEnabled: true,
	}
}

func (*Slider) Kind() Kind { return KindSlider }

func (s *Slider) set(key, raw string) bool {
	f := fields{s.ID}
	switch key {
	case "minimum":
		return f.float(&s.Minimum, "Minimum", raw, sliderMin)
	case "maximum":
		return f.float(&s.Maximum, "Maximum", raw, sliderMax)
	case "value":
		return f.float(&s.Value, "Value", raw, sliderMin)
	case "textbox1visibility":
		return enum(f, &s.TextBox1Visibility, "TextBox1Visibility", raw, attr.Collapsed, attr.ParseVisibility)
	case "textbox1editable":
		return f.bool(&s.TextBox1Editable, "TextBox1Editable", raw, false)
	case "textbox1width":
		return f.float(&s.TextBox1Width, "TextBox1Width", raw, 27)
	case "textbox1text":
		s.TextBox1Text = raw
	case "issnaptotickenabled":
		return f.bool(&s.IsSnapToTickEnabled, "IsSnapToTickEnabled", raw, true)
	case "tickplacement":
		return enum(f, &s.TickPlacement, "TickPlacement", raw, attr.TickNone, attr.ParseTickPlacement)
	case "ticks":
		return f.ticks(&s.Ticks, "Ticks", raw)
	default:
		return s.ItemCommon.set(key, raw)
	}
	return true
}

// Normalize keeps Minimum <= Value <= Maximum.
func (s *Slider) Normalize() {
	r := attr.Range{Min: s.Minimum, Current: s.Value, Max: s.Maximum}.Normalize(sliderMin, sliderMax)
	s.Minimum, s.Value, s.Maximum = r.Min, r.Current, r.Max
}

// Spinner steps a value through a numeric range.
type Spinner struct {
	ItemCommon
	Minimum float64
	Maximum float64
	Value   float64
	Change  float64
}

const (
	spinnerMin = 0.0
	spinnerMax = 100.0
)

// NewSpinner returns a spinner with its default range and a step of 1.
func NewSpinner() *Spinner {
	return &Spinner{ItemCommon: defaultCommon(), Minimum: spinnerMin, Maximum: spinnerMax, Change: 1}
}

func (*Spinner) Kind() Kind { return KindSpinner }

func (s *Spinner) set(key, raw string) bool {
	f := fields{s.ID}
	switch key {
	case "minimum":
		return f.float(&s.Minimum, "Minimum", raw, spinnerMin)
	case "maximum":
		return f.float(&s.Maximum, "Maximum", raw, spinnerMax)
	case "value":
		return f.float(&s.Value, "Value", raw, spinnerMin)
	case "change":
		return f.float(&s.Change, "Change", raw, 1)
	}
	return s.ItemCommon.set(key, raw)
}

// Normalize keeps Minimum <= Value <= Maximum.
func (s *Spinner) Normalize() {
	r := attr.Range{Min: s.Minimum, Current: s.Value, Max: s.Maximum}.Normalize(spinnerMin, spinnerMax)
	s.Minimum, s.Value, s.Maximum = r.Min, r.Current, r.Max
}
