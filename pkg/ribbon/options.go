package ribbon

import (
	"strings"

	"go.uber.org/zap"

	"github.com/go-drift/ribbon/pkg/images"
	"github.com/go-drift/ribbon/pkg/widget"
)

// Default settings.
const (
	DefaultTabPrefix = "RP_TAB_"
	DefaultMaxDepth  = 4
)

// Option configures a Ribbon.
type Option func(*options)

type options struct {
	logger         *zap.Logger
	tabPrefix      string
	maxDepth       int
	images         images.Source
	controllers    []controllerEntry
	handlers       []widget.Command
	defaultCommand func(cmd string) widget.Command
	bindings       map[string]any
	plugins        map[string]Plugin
}

type controllerEntry struct {
	key     string
	factory ControllerFactory
}

func defaultOptions() options {
	return options{
		logger:    zap.NewNop(),
		tabPrefix: DefaultTabPrefix,
		maxDepth:  DefaultMaxDepth,
		bindings:  map[string]any{},
		plugins:   map[string]Plugin{},
	}
}

// WithLogger sets the logger used for debug output. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTabPrefix sets the prefix that marks tabs created by the ribbon.
func WithTabPrefix(prefix string) Option {
	return func(o *options) { o.tabPrefix = prefix }
}

// WithMaxDepth sets the depth at which container branches are cut.
// Values below 1 are ignored.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// WithImages sets the source of item images.
func WithImages(src images.Source) Option {
	return func(o *options) { o.images = src }
}

// WithController associates a controller factory with a declaration id or a
// full identity path. Path keys win over id keys.
func WithController(key string, f ControllerFactory) Option {
	return func(o *options) {
		if key != "" && f != nil {
			o.controllers = append(o.controllers, controllerEntry{key: key, factory: f})
		}
	}
}

// WithCommandHandler registers the handler for h.Command(). A later handler for
// the same command replaces an earlier one.
func WithCommandHandler(h widget.Command) Option {
	return func(o *options) {
		if h != nil {
			o.handlers = append(o.handlers, h)
		}
	}
}

// WithDefaultCommand sets the constructor used for commands with no
// registered handler.
func WithDefaultCommand(f func(cmd string) widget.Command) Option {
	return func(o *options) { o.defaultCommand = f }
}

// WithBinding names an external items source that combos and galleries can
// refer to with their itemsBinding attribute.
func WithBinding(name string, source any) Option {
	return func(o *options) {
		if name != "" && source != nil {
			o.bindings[strings.ToLower(name)] = source
		}
	}
}

// WithPlugin registers the constructor for a custom item kind.
func WithPlugin(kind string, p Plugin) Option {
	return func(o *options) {
		if kind != "" && p != nil {
			o.plugins[strings.ToLower(kind)] = p
		}
	}
}
