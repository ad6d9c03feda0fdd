package decl

import "strings"

// Kind identifies a declaration variant.
type Kind uint8

const (
	KindTab Kind = iota
	KindPanel
	KindPanelSource
	KindPanelSpacer
	KindSubPanelSource

	KindCombo
	KindGallery
	KindLabel
	KindPanelBreak
	KindRowBreak
	KindRowPanel
	KindFlowPanel
	KindFoldPanel
	KindSeparator
	KindSlider
	KindSpinner
	KindTextBox
	KindProgressBarSource
	KindCheckBox
	KindMenuItem
	KindApplicationMenuItem
	KindButton
	KindToggleButton
	KindToolBarShareButton
	KindChecklistButton
	KindMenuButton
	KindRadioButtonGroup
	KindSplitButton

	// KindCustom is the open plugin kind.
	KindCustom

	kindCount
)

var kindNames = [kindCount]string{
	KindTab:                 "Tab",
	KindPanel:               "Panel",
	KindPanelSource:         "PanelSource",
	KindPanelSpacer:         "PanelSpacer",
	KindSubPanelSource:      "SubPanelSource",
	KindCombo:               "Combo",
	KindGallery:             "Gallery",
	KindLabel:               "Label",
	KindPanelBreak:          "PanelBreak",
	KindRowBreak:            "RowBreak",
	KindRowPanel:            "RowPanel",
	KindFlowPanel:           "FlowPanel",
	KindFoldPanel:           "FoldPanel",
	KindSeparator:           "Separator",
	KindSlider:              "Slider",
	KindSpinner:             "Spinner",
	KindTextBox:             "TextBox",
	KindProgressBarSource:   "ProgressBarSource",
	KindCheckBox:            "CheckBox",
	KindMenuItem:            "MenuItem",
	KindApplicationMenuItem: "ApplicationMenuItem",
	KindButton:              "Button",
	KindToggleButton:        "ToggleButton",
	KindToolBarShareButton:  "ToolBarShareButton",
	KindChecklistButton:     "ChecklistButton",
	KindMenuButton:          "MenuButton",
	KindRadioButtonGroup:    "RadioButtonGroup",
	KindSplitButton:         "SplitButton",
	KindCustom:              "Custom",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Unknown"
}

// IsItem reports whether k may appear in an item list.
func (k Kind) IsItem() bool {
	return k >= KindCombo && k < kindCount
}

// ParseKind maps a declaration element name to its Kind. Matching is
// case-insensitive and a leading "Ribbon" is optional, so "RibbonButton",
// "button" and "Button" are the same kind. "Custom" is never returned; open
// kinds are built with NewCustom.
func ParseKind(name string) (Kind, bool) {
	s := strings.TrimSpace(name)
	if len(s) > len("Ribbon") && strings.EqualFold(s[:len("Ribbon")], "Ribbon") {
		s = s[len("Ribbon"):]
	}
	for k := Kind(0); k < KindCustom; k++ {
		if strings.EqualFold(kindNames[k], s) {
			return k, true
		}
	}
	return 0, false
}
