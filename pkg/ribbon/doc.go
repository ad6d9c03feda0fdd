// Package ribbon turns declaration trees into live ribbon tabs and keeps
// contextual tabs in step with the host selection.
//
// A Ribbon is the application context: it owns the builder, the controller
// registry, the command table and the tabs it created. Every method must be
// called from the host's event thread, or through an EventLoop that
// serializes host events and application calls onto one goroutine.
//
// Building is tolerant. Malformed fields fall back to their defaults, children
// a parent does not accept are dropped, and missing declarations or images are
// treated as absent. Each of these is reported through the errors package
// instead of being returned.
package ribbon
