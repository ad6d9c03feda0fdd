package ribbon

import (
	"context"

	"github.com/go-drift/ribbon/pkg/errors"
	"github.com/go-drift/ribbon/pkg/host"
)

// DefaultSelectionBuffer is the selection queue length used by NewEventLoop
// when none is given.
const DefaultSelectionBuffer = 8

var errCallPanicked = errors.New("ribbon: call panicked")

// EventLoop serializes host events and application calls onto the goroutine
// running Run. Selection events beyond the buffer drop the oldest queued one;
// idle ticks coalesce.
type EventLoop struct {
	r         *Ribbon
	selection chan host.Selection
	idle      chan struct{}
	calls     chan call
}

type call struct {
	fn   func(*Ribbon) error
	done chan error
}

// NewEventLoop returns a loop driving r. A buffer below 1 selects
// DefaultSelectionBuffer.
func NewEventLoop(r *Ribbon, buffer int) *EventLoop {
	if buffer < 1 {
		buffer = DefaultSelectionBuffer
	}
	return &EventLoop{
		r:         r,
		selection: make(chan host.Selection, buffer),
		idle:      make(chan struct{}, 1),
		calls:     make(chan call),
	}
}

// SelectionChanged queues sel without blocking.
func (l *EventLoop) SelectionChanged(sel host.Selection) {
	for {
		select {
		case l.selection <- sel:
			return
		default:
		}
		select {
		case <-l.selection:
		default:
		}
	}
}

// Idle queues an idle tick without blocking.
func (l *EventLoop) Idle() {
	select {
	case l.idle <- struct{}{}:
	default:
	}
}

// Do runs fn on the loop goroutine and returns its error. It gives up when
// ctx is done first.
func (l *EventLoop) Do(ctx context.Context, fn func(*Ribbon) error) error {
	c := call{fn: fn, done: make(chan error, 1)}
	select {
	case l.calls <- c:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-c.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run processes events until ctx is done and returns ctx.Err(). A panic in
// one event is reported and the loop continues.
func (l *EventLoop) Run(ctx context.Context) error {
	engine := l.r.Contextual()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case sel := <-l.selection:
			l.safely(func() { engine.SelectionChanged(sel) })
		case <-l.idle:
			l.safely(engine.Idle)
		case c := <-l.calls:
			err := errCallPanicked
			l.safely(func() { err = c.fn(l.r) })
			c.done <- err
		}
	}
}

func (l *EventLoop) safely(fn func()) {
	defer errors.Recover("ribbon.EventLoop")
	fn()
}
