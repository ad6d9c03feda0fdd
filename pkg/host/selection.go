package host

import "strings"

// SelectedObject is one entry of a selection.
type SelectedObject struct {
	// Handle identifies the object in the host document.
	Handle string
	// Type is the host's object class name, e.g. "LINE" or "HATCH".
	Type string
	Layer string
}

// Selection is the host's current selection. An invalid selection is one the
// host could not read, and is treated like an empty one.
type Selection struct {
	Valid   bool
	Objects []SelectedObject
}

// NewSelection returns a valid selection of objs.
func NewSelection(objs ...SelectedObject) Selection {
	return Selection{Valid: true, Objects: objs}
}

// Empty reports whether s is invalid or selects nothing.
func (s Selection) Empty() bool {
	return !s.Valid || len(s.Objects) == 0
}

// Predicate decides whether a contextual tab applies to a selection.
type Predicate func(Selection) bool

// OnlyTypes matches a non-empty selection whose objects all have one of the
// given types. Types compare case-insensitively.
func OnlyTypes(types ...string) Predicate {
	return func(s Selection) bool {
		if s.Empty() {
			return false
		}
		for _, o := range s.Objects {
			if !typeIn(o.Type, types) {
				return false
			}
		}
		return true
	}
}

// AnyType matches a selection containing at least one object of the given
// types.
func AnyType(types ...string) Predicate {
	return func(s Selection) bool {
		if s.Empty() {
			return false
		}
		for _, o := range s.Objects {
			if typeIn(o.Type, types) {
				return true
			}
		}
		return false
	}
}

// OnLayer matches a selection whose objects all sit on layer.
func OnLayer(layer string) Predicate {
	return func(s Selection) bool {
		if s.Empty() {
			return false
		}
		for _, o := range s.Objects {
			if !strings.EqualFold(o.Layer, layer) {
				return false
			}
		}
		return true
	}
}

// All matches when every predicate does.
func All(preds ...Predicate) Predicate {
	return func(s Selection) bool {
		for _, p := range preds {
			if p != nil && !p(s) {
				return false
			}
		}
		return true
	}
}

func typeIn(t string, types []string) bool {
	for _, want := range types {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}
