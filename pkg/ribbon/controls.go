package ribbon

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/go-drift/ribbon/pkg/decl"
	"github.com/go-drift/ribbon/pkg/errors"
	"github.com/go-drift/ribbon/pkg/widget"
)

// ControllerFactory constructs the external controller for a live node and
// the declaration it was built from.
type ControllerFactory func(live widget.Node, d decl.Node) (any, error)

// Bind adapts a typed constructor. When the nodes are not of the expected
// types the factory fails with errors.ErrNoConstructor.
func Bind[W widget.Node, D decl.Node, C any](ctor func(W, D) (C, error)) ControllerFactory {
	return func(live widget.Node, d decl.Node) (any, error) {
		w, ok := live.(W)
		if !ok {
			return nil, fmt.Errorf("%w: live node is %T", errors.ErrNoConstructor, live)
		}
		dn, ok := d.(D)
		if !ok {
			return nil, fmt.Errorf("%w: declaration is %T", errors.ErrNoConstructor, d)
		}
		return ctor(w, dn)
	}
}

// ControlHandler is a convenience base for controllers. It holds the live
// node and the declaration it was built from.
type ControlHandler[W widget.Node] struct {
	Target W
	Source decl.Node
}

// NewControlHandler returns a handler for target and source. Both are required.
func NewControlHandler[W widget.Node](target W, source decl.Node) (*ControlHandler[W], error) {
	if isNil(target) {
		return nil, errors.Contractf("ribbon.NewControlHandler", "nil target")
	}
	if isNil(source) {
		return nil, errors.Contractf("ribbon.NewControlHandler", "nil source")
	}
	return &ControlHandler[W]{Target: target, Source: source}, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// Controls instantiates controllers for built nodes and keeps one instance
// per declaration id.
type Controls struct {
	factories map[string]ControllerFactory
	instances map[string]any
	logger    *zap.Logger
}

// NewControls returns an empty registry.
func NewControls(logger *zap.Logger) *Controls {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controls{
		factories: map[string]ControllerFactory{},
		instances: map[string]any{},
		logger:    logger,
	}
}

// Associate sets the factory for key, a declaration id or an identity path.
func (c *Controls) Associate(key string, f ControllerFactory) {
	if key == "" || f == nil {
		return
	}
	c.factories[key] = f
}

// Register instantiates the controller for live, if one is associated with
// path or with d's id. Every failure is reported and skipped. The first
// instance for an id is kept; later ones are rejected.
func (c *Controls) Register(live widget.Node, d decl.Node, path string) {
	id := d.Base().ID
	if id == "" {
		return
	}
	f, ok := c.factories[path]
	if !ok {
		f, ok = c.factories[id]
	}
	if !ok {
		return
	}
	if _, dup := c.instances[id]; dup {
		errors.Report(&errors.RibbonError{
			Op:   "ribbon.Controls",
			Kind: errors.KindResource,
			ID:   path,
			Err:  fmt.Errorf("%w: %s", errors.ErrDuplicateController, id),
		})
		return
	}
	ctl, err := c.construct(f, live, d, path)
	if err != nil {
		kind := errors.KindController
		if errors.Is(err, errors.ErrNoConstructor) {
			kind = errors.KindResource
		}
		errors.Report(&errors.RibbonError{Op: "ribbon.Controls", Kind: kind, ID: path, Err: err})
		return
	}
	if isNil(ctl) {
		return
	}
	c.instances[id] = ctl
	c.logger.Debug("controller bound", zap.String("id", id), zap.String("path", path), zap.String("type", fmt.Sprintf("%T", ctl)))
}

func (c *Controls) construct(f ControllerFactory, live widget.Node, d decl.Node, path string) (ctl any, err error) {
	defer func() {
		if r := recover(); r != nil {
			errors.ReportPanic(&errors.PanicError{
				Op:         "ribbon.Controls",
				ID:         path,
				Value:      r,
				StackTrace: errors.CaptureStack(),
			})
			ctl, err = nil, nil
		}
	}()
	return f(live, d)
}

// Controller returns the controller bound to id.
func (c *Controls) Controller(id string) (any, bool) {
	ctl, ok := c.instances[id]
	return ctl, ok
}

// Len is the number of bound controllers.
func (c *Controls) Len() int { return len(c.instances) }
