// Package transform copies same-named, same-typed fields between structs.
//
// A copy plan is computed once per (source type, destination type) pair and
// cached. Fields present on only one side are skipped. A field present on
// both sides with incompatible types is a programming error and panics with
// an *errors.ContractError.
package transform

import (
	"reflect"
	"sync"

	"github.com/go-drift/ribbon/pkg/errors"
)

// TagName is the struct tag consulted for skip markers. A field tagged
// `ribbon:"-"` on either side is never copied.
const TagName = "ribbon"

type pairKey struct {
	dst, src reflect.Type
}

type step struct {
	name     string
	dst, src []int
	// indirect is set when a source path walks through an embedded pointer.
	indirect bool
}

type plan struct {
	steps []step
}

var plans sync.Map // pairKey -> *plan

// Apply copies every matching field of src into dst.
// Both must be non-nil pointers to structs.
func Apply(dst, src any) {
	dv := structPtr("transform.Apply", "dst", dst)
	sv := structPtr("transform.Apply", "src", src)
	p := planFor(dv.Type(), sv.Type())
	for _, s := range p.steps {
		var from reflect.Value
		if s.indirect {
			var err error
			if from, err = sv.FieldByIndexErr(s.src); err != nil {
				continue
			}
		} else {
			from = sv.FieldByIndex(s.src)
		}
		to, err := dv.FieldByIndexErr(s.dst)
		if err != nil {
			continue
		}
		to.Set(from)
	}
}

// Into is Apply returning the destination, for construction in one
// expression: transform.Into(&widget.Button{}, d).
func Into[T any](dst *T, src any) *T {
	Apply(dst, src)
	return dst
}

// Plan returns the names of the fields Apply would copy from src into dst.
func Plan(dst, src any) []string {
	dv := structPtr("transform.Plan", "dst", dst)
	sv := structPtr("transform.Plan", "src", src)
	p := planFor(dv.Type(), sv.Type())
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.name
	}
	return names
}

func structPtr(op, arg string, v any) reflect.Value {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		panic(errors.Contractf(op, "%s must be a non-nil struct pointer, got %T", arg, v))
	}
	return rv.Elem()
}

func planFor(dt, st reflect.Type) *plan {
	key := pairKey{dst: dt, src: st}
	if p, ok := plans.Load(key); ok {
		return p.(*plan)
	}
	p := buildPlan(dt, st)
	actual, _ := plans.LoadOrStore(key, p)
	return actual.(*plan)
}

func buildPlan(dt, st reflect.Type) *plan {
	src := make(map[string]reflect.StructField)
	for _, f := range reflect.VisibleFields(st) {
		if copyable(f) {
			src[f.Name] = f
		}
	}

	p := &plan{}
	for _, df := range reflect.VisibleFields(dt) {
		if !copyable(df) {
			continue
		}
		sf, ok := src[df.Name]
		if !ok {
			continue
		}
		if !sf.Type.AssignableTo(df.Type) {
			panic(errors.Contractf("transform.Apply", "field %s: %s is not assignable to %s (%s -> %s)",
				df.Name, sf.Type, df.Type, st, dt))
		}
		p.steps = append(p.steps, step{
			name:     df.Name,
			dst:      df.Index,
			src:      sf.Index,
			indirect: throughPointer(st, sf.Index),
		})
	}
	return p
}

func copyable(f reflect.StructField) bool {
	return f.IsExported() && !f.Anonymous && f.Tag.Get(TagName) != "-"
}

func throughPointer(t reflect.Type, index []int) bool {
	for _, i := range index[:len(index)-1] {
		f := t.Field(i)
		t = f.Type
		if t.Kind() == reflect.Pointer {
			return true
		}
	}
	return false
}
