package ribbon

import (
	"strings"

	"github.com/go-drift/ribbon/pkg/errors"
	"github.com/go-drift/ribbon/pkg/host"
	"github.com/go-drift/ribbon/pkg/widget"
)

// SendCommand is the fallback handler. Executing it sends the command string,
// followed by a space, to the host's command line.
type SendCommand struct {
	Cmd  string
	Sink host.CommandSink
}

// Command implements widget.Command.
func (s *SendCommand) Command() string { return s.Cmd }

// CanExecute implements widget.Command.
func (s *SendCommand) CanExecute(any) bool { return s.Sink != nil }

// Execute implements widget.Command.
func (s *SendCommand) Execute(any) {
	if s.Sink != nil && s.Cmd != "" {
		s.Sink.SendCommand(s.Cmd + " ")
	}
}

// Commands maps command strings to handlers.
type Commands struct {
	handlers map[string]widget.Command
	fallback func(cmd string) widget.Command
	sink     host.CommandSink
}

// NewCommands returns a table whose misses go to fallback, or to a
// SendCommand on sink when fallback is nil or yields nothing.
func NewCommands(sink host.CommandSink, fallback func(cmd string) widget.Command) *Commands {
	return &Commands{handlers: map[string]widget.Command{}, fallback: fallback, sink: sink}
}

// Register stores h under h.Command().
func (c *Commands) Register(h widget.Command) {
	if h == nil {
		return
	}
	cmd := strings.TrimSpace(h.Command())
	if cmd == "" {
		return
	}
	c.handlers[cmd] = h
}

// Handler returns the handler for cmd. An empty command has none.
func (c *Commands) Handler(cmd string) widget.Command {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return nil
	}
	if h, ok := c.handlers[cmd]; ok {
		return h
	}
	if h := c.fromFallback(cmd); h != nil {
		return h
	}
	return &SendCommand{Cmd: cmd, Sink: c.sink}
}

// fromFallback runs the fallback constructor. A panicking constructor is
// reported and treated as returning nothing.
func (c *Commands) fromFallback(cmd string) (h widget.Command) {
	if c.fallback == nil {
		return nil
	}
	defer errors.Recover("ribbon.Commands")
	return c.fallback(cmd)
}
