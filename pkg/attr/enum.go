package attr

import "strings"

// enum is the shape shared by every enumerated attribute type.
type enum interface {
	~uint8
}

func enumName[E enum](names []string, v E) string {
	if int(v) < len(names) {
		return names[v]
	}
	return "Unknown"
}

func parseEnum[E enum](names []string, raw string, def E) (E, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return def, true
	}
	for i, n := range names {
		if strings.EqualFold(n, s) {
			return E(i), true
		}
	}
	return def, false
}

// Orientation lays out an item's image and text.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

var orientationNames = []string{"Horizontal", "Vertical"}

func (v Orientation) String() string { return enumName(orientationNames, v) }

// ParseOrientation parses an Orientation, falling back to def.
func ParseOrientation(raw string, def Orientation) (Orientation, bool) {
	return parseEnum(orientationNames, raw, def)
}

// ItemSize is the display size of an item.
type ItemSize uint8

const (
	SizeStandard ItemSize = iota
	SizeLarge
)

var itemSizeNames = []string{"Standard", "Large"}

func (v ItemSize) String() string { return enumName(itemSizeNames, v) }

// ParseItemSize parses an ItemSize, falling back to def.
func ParseItemSize(raw string, def ItemSize) (ItemSize, bool) {
	return parseEnum(itemSizeNames, raw, def)
}

// ImageSize is the size of the image drawn in split button lists.
type ImageSize uint8

const (
	ImageStandard ImageSize = iota
	ImageLarge
)

var imageSizeNames = []string{"Standard", "Large"}

func (v ImageSize) String() string { return enumName(imageSizeNames, v) }

// ParseImageSize parses an ImageSize, falling back to def.
func ParseImageSize(raw string, def ImageSize) (ImageSize, bool) {
	return parseEnum(imageSizeNames, raw, def)
}

// ItemResizeStyle controls how an item shrinks when its panel runs out of room.
type ItemResizeStyle uint8

const (
	ResizeWidth ItemResizeStyle = iota
	NoResize
	HideText
	HideInSlideOut
	Collapse
)

var itemResizeNames = []string{"ResizeWidth", "NoResize", "HideText", "HideInSlideOut", "Collapse"}

func (v ItemResizeStyle) String() string { return enumName(itemResizeNames, v) }

// ParseItemResizeStyle parses an ItemResizeStyle, falling back to def.
func ParseItemResizeStyle(raw string, def ItemResizeStyle) (ItemResizeStyle, bool) {
	return parseEnum(itemResizeNames, raw, def)
}

// PanelResizeStyle controls how a panel collapses.
type PanelResizeStyle uint8

const (
	PanelResizeNone PanelResizeStyle = iota
	NeverChangeImageSize
	NeverResizeItemWidth
	NeverHideText
	NeverCollapseItem
	NeverCollapsePanel
)

var panelResizeNames = []string{
	"None", "NeverChangeImageSize", "NeverResizeItemWidth",
	"NeverHideText", "NeverCollapseItem", "NeverCollapsePanel",
}

func (v PanelResizeStyle) String() string { return enumName(panelResizeNames, v) }

// ParsePanelResizeStyle parses a PanelResizeStyle, falling back to def.
func ParsePanelResizeStyle(raw string, def PanelResizeStyle) (PanelResizeStyle, bool) {
	return parseEnum(panelResizeNames, raw, def)
}

// RowPanelResizeStyle controls how the children of a row panel shrink.
type RowPanelResizeStyle uint8

const (
	RowResizeNone RowPanelResizeStyle = iota
	RowResizeCollapse
	RowResizeHideText
)

var rowResizeNames = []string{"None", "Collapse", "HideText"}

func (v RowPanelResizeStyle) String() string { return enumName(rowResizeNames, v) }

// ParseRowPanelResizeStyle parses a RowPanelResizeStyle, falling back to def.
func ParseRowPanelResizeStyle(raw string, def RowPanelResizeStyle) (RowPanelResizeStyle, bool) {
	return parseEnum(rowResizeNames, raw, def)
}

// FoldPanelResizeStyle controls how a fold panel folds.
type FoldPanelResizeStyle uint8

const (
	FoldResizeNone FoldPanelResizeStyle = iota
	FoldResizeFold
	FoldResizeCollapse
)

var foldResizeNames = []string{"None", "Fold", "Collapse"}

func (v FoldPanelResizeStyle) String() string { return enumName(foldResizeNames, v) }

// ParseFoldPanelResizeStyle parses a FoldPanelResizeStyle, falling back to def.
func ParseFoldPanelResizeStyle(raw string, def FoldPanelResizeStyle) (FoldPanelResizeStyle, bool) {
	return parseEnum(foldResizeNames, raw, def)
}

// FoldPanelSize is one of the three fold panel layouts.
type FoldPanelSize uint8

const (
	FoldSmall FoldPanelSize = iota
	FoldMedium
	FoldLarge
)

var foldSizeNames = []string{"Small", "Medium", "Large"}

func (v FoldPanelSize) String() string { return enumName(foldSizeNames, v) }

// ParseFoldPanelSize parses a FoldPanelSize, falling back to def.
func ParseFoldPanelSize(raw string, def FoldPanelSize) (FoldPanelSize, bool) {
	return parseEnum(foldSizeNames, raw, def)
}

// SeparatorStyle is the drawing style of a separator.
type SeparatorStyle uint8

const (
	SeparatorLine SeparatorStyle = iota
	SeparatorInvisible
	SeparatorSpacer
	SeparatorThickLine
)

var separatorNames = []string{"Line", "Invisible", "Spacer", "ThickLine"}

func (v SeparatorStyle) String() string { return enumName(separatorNames, v) }

// ParseSeparatorStyle parses a SeparatorStyle, falling back to def.
func ParseSeparatorStyle(raw string, def SeparatorStyle) (SeparatorStyle, bool) {
	return parseEnum(separatorNames, raw, def)
}

// TickPlacement positions slider ticks.
type TickPlacement uint8

const (
	TickNone TickPlacement = iota
	TickTopLeft
	TickBottomRight
	TickBoth
)

var tickPlacementNames = []string{"None", "TopLeft", "BottomRight", "Both"}

func (v TickPlacement) String() string { return enumName(tickPlacementNames, v) }

// ParseTickPlacement parses a TickPlacement, falling back to def.
func ParseTickPlacement(raw string, def TickPlacement) (TickPlacement, bool) {
	return parseEnum(tickPlacementNames, raw, def)
}

// Visibility of an auxiliary element such as a slider's text box.
type Visibility uint8

const (
	Visible Visibility = iota
	Hidden
	Collapsed
)

var visibilityNames = []string{"Visible", "Hidden", "Collapsed"}

func (v Visibility) String() string { return enumName(visibilityNames, v) }

// ParseVisibility parses a Visibility, falling back to def.
func ParseVisibility(raw string, def Visibility) (Visibility, bool) {
	return parseEnum(visibilityNames, raw, def)
}

// SynchronizeOption selects what a list button copies from its current item.
type SynchronizeOption uint8

const (
	SyncAll SynchronizeOption = iota
	SyncImage
	SyncText
	SyncNone
)

var syncNames = []string{"All", "Image", "Text", "None"}

func (v SynchronizeOption) String() string { return enumName(syncNames, v) }

// ParseSynchronizeOption parses a SynchronizeOption, falling back to def.
func ParseSynchronizeOption(raw string, def SynchronizeOption) (SynchronizeOption, bool) {
	return parseEnum(syncNames, raw, def)
}

// SplitButtonListStyle is the drop-down style of a split button.
type SplitButtonListStyle uint8

const (
	ListStyleList SplitButtonListStyle = iota
	ListStyleIcon
	ListStyleDescriptive
)

var listStyleNames = []string{"List", "Icon", "Descriptive"}

func (v SplitButtonListStyle) String() string { return enumName(listStyleNames, v) }

// ParseSplitButtonListStyle parses a SplitButtonListStyle, falling back to def.
func ParseSplitButtonListStyle(raw string, def SplitButtonListStyle) (SplitButtonListStyle, bool) {
	return parseEnum(listStyleNames, raw, def)
}

// GalleryDisplayMode is how a gallery presents its items.
type GalleryDisplayMode uint8

const (
	GalleryWindow GalleryDisplayMode = iota
	GalleryComboBox
	GalleryLargeButton
	GalleryStandardButton
)

var galleryModeNames = []string{"Window", "ComboBox", "LargeButton", "StandardButton"}

func (v GalleryDisplayMode) String() string { return enumName(galleryModeNames, v) }

// ParseGalleryDisplayMode parses a GalleryDisplayMode, falling back to def.
func ParseGalleryDisplayMode(raw string, def GalleryDisplayMode) (GalleryDisplayMode, bool) {
	return parseEnum(galleryModeNames, raw, def)
}
