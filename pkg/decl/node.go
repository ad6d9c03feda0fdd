package decl

import (
	"image/color"
	"strings"

	"github.com/go-drift/ribbon/pkg/attr"
	"github.com/go-drift/ribbon/pkg/errors"
)

// ParentToken is the placeholder replaced by the parent's identity path when
// a cookie is resolved.
const ParentToken = "%Parent"

// Meta is embedded in every declaration.
type Meta struct {
	// ID is the stable identifier. Empty means the node is anonymous.
	ID string
	// Cookie is the identity path pattern. Empty selects DefaultCookie.
	Cookie string
}

// Base returns m. It is promoted to every declaration type.
func (m *Meta) Base() *Meta { return m }

func (m *Meta) set(key, raw string) bool {
	switch key {
	case "id":
		m.ID = strings.TrimSpace(raw)
	case "cookie":
		m.Cookie = raw
	default:
		return false
	}
	return true
}

// Node is implemented by every declaration type in this package.
// The set is closed; open kinds use Custom.
type Node interface {
	Kind() Kind
	Base() *Meta
	set(key, raw string) bool
}

// Item is a node that may appear in an item list.
type Item interface {
	Node
	Common() *ItemCommon
}

// Normalizer is implemented by nodes whose fields must satisfy an invariant
// after all attributes are applied.
type Normalizer interface {
	Normalize()
}

// SetAttr applies a raw attribute value to n. The name is matched
// case-insensitively. Unknown names report false and change nothing.
// Values that cannot be coerced are replaced by the field default and
// reported as declaration errors.
func SetAttr(n Node, name, raw string) bool {
	return n.set(strings.ToLower(strings.TrimSpace(name)), raw)
}

// Normalize runs n's normalizer, if any.
func Normalize(n Node) {
	if nz, ok := n.(Normalizer); ok {
		nz.Normalize()
	}
}

// Normalized returns n unchanged when it has no normalizer, otherwise a
// normalized shallow copy. n itself is never modified.
func Normalized(n Node) Node {
	switch v := n.(type) {
	case *Tab:
		c := *v
		c.Normalize()
		return &c
	case *ProgressBarSource:
		c := *v
		c.Normalize()
		return &c
	case *Slider:
		c := *v
		c.Normalize()
		return &c
	case *Spinner:
		c := *v
		c.Normalize()
		return &c
	}
	return n
}

// DefaultCookie returns the identity path pattern for n.
func DefaultCookie(n Node) string {
	m := n.Base()
	switch d := n.(type) {
	case *Tab:
		return "Tab=" + m.ID + "_" + d.Title + "_" + d.Name
	case *Panel:
		return ParentToken + ":Panel=" + m.ID
	case *PanelSpacer:
		return ParentToken + ":PanelSpacer=" + m.ID + "_" + d.Title
	case *PanelSource:
		return ParentToken + ":PanelSource=" + m.ID + "_" + d.Title
	case *SubPanelSource:
		return ParentToken + ":SubPanelSource=" + m.ID
	case *Custom:
		return ParentToken + ":" + d.KindName + "=" + m.ID + "_" + d.Text
	case Item:
		return ParentToken + ":" + n.Kind().String() + "=" + m.ID + "_" + d.Common().Text
	}
	return ParentToken + ":" + n.Kind().String() + "=" + m.ID
}

// CookieOf returns n's cookie pattern, falling back to DefaultCookie.
func CookieOf(n Node) string {
	if c := n.Base().Cookie; c != "" {
		return c
	}
	return DefaultCookie(n)
}

// fields binds attribute coercion to the node being configured so failures
// can be reported with its id.
type fields struct {
	id string
}

func (f fields) bad(name, raw string, def any) {
	errors.Report(&errors.RibbonError{
		Op:   "decl.SetAttr",
		Kind: errors.KindDeclaration,
		ID:   f.id,
		Err:  &errors.FieldError{Field: name, Value: raw, Default: def},
	})
}

func (f fields) bool(dst *bool, name, raw string, def bool) bool {
	v, ok := attr.Bool(raw, def)
	if !ok {
		f.bad(name, raw, v)
	}
	*dst = v
	return true
}

func (f fields) float(dst *float64, name, raw string, def float64) bool {
	v, ok := attr.Float(raw, *dst, def)
	if !ok {
		f.bad(name, raw, def)
	}
	*dst = v
	return true
}

func (f fields) int(dst *int, name, raw string, def int) bool {
	v, ok := attr.Int(raw, *dst, def)
	if !ok {
		f.bad(name, raw, def)
	}
	*dst = v
	return true
}

func (f fields) ticks(dst *[]float64, name, raw string) bool {
	v, ok := attr.Ticks(raw, *dst)
	if !ok {
		f.bad(name, raw, "none")
	}
	*dst = v
	return true
}

func (f fields) color(dst *color.NRGBA, name, raw string) bool {
	v, ok := attr.Color(raw)
	if !ok {
		f.bad(name, raw, "transparent")
	}
	*dst = v
	return true
}

func enum[E ~uint8](f fields, dst *E, name, raw string, def E, parse func(string, E) (E, bool)) bool {
	v, ok := parse(raw, def)
	if !ok {
		f.bad(name, raw, def)
	}
	*dst = v
	return true
}
