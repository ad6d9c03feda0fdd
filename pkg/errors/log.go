package errors

import (
	"sync"

	"go.uber.org/zap"
)

// LogHandler is an ErrorHandler that logs through zap.
// The zero value logs to a production logger created on first use.
type LogHandler struct {
	// Logger receives the entries. Nil selects the shared fallback logger.
	Logger *zap.Logger
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

var (
	fallbackOnce   sync.Once
	fallbackLogger *zap.Logger
)

func (h *LogHandler) logger() *zap.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	fallbackOnce.Do(func() {
		l, err := zap.NewProduction()
		if err != nil {
			l = zap.NewNop()
		}
		fallbackLogger = l.Named("ribbon")
	})
	return fallbackLogger
}

// HandleError logs a RibbonError as a warning.
func (h *LogHandler) HandleError(err *RibbonError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Stringer("kind", err.Kind),
		zap.Error(err.Err),
	}
	if err.ID != "" {
		fields = append(fields, zap.String("id", err.ID))
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.logger().Warn("ribbon error", fields...)
}

// HandlePanic logs a PanicError as an error.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Any("value", err.Value),
	}
	if err.ID != "" {
		fields = append(fields, zap.String("id", err.ID))
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.logger().Error("ribbon panic", fields...)
}

// Collector is an ErrorHandler that keeps every report in memory.
// It is used by tools that print a summary after a build.
type Collector struct {
	mu     sync.Mutex
	errs   []*RibbonError
	panics []*PanicError
}

// HandleError records err.
func (c *Collector) HandleError(err *RibbonError) {
	c.mu.Lock()
	c.errs = append(c.errs, err)
	c.mu.Unlock()
}

// HandlePanic records err.
func (c *Collector) HandlePanic(err *PanicError) {
	c.mu.Lock()
	c.panics = append(c.panics, err)
	c.mu.Unlock()
}

// Errors returns a copy of the recorded errors.
func (c *Collector) Errors() []*RibbonError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*RibbonError(nil), c.errs...)
}

// Panics returns a copy of the recorded panics.
func (c *Collector) Panics() []*PanicError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*PanicError(nil), c.panics...)
}

// OfKind returns the recorded errors of kind k.
func (c *Collector) OfKind(k ErrorKind) []*RibbonError {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []*RibbonError
	for _, e := range c.errs {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

// Reset drops everything recorded so far.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.errs = nil
	c.panics = nil
	c.mu.Unlock()
}
