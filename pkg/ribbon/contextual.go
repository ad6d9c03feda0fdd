package ribbon

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/go-drift/ribbon/pkg/errors"
	"github.com/go-drift/ribbon/pkg/host"
	"github.com/go-drift/ribbon/pkg/widget"
)

// Reason prefixes. A tab stays visible while it holds at least one reason.
const (
	manualPrefix    = "Manual("
	selectionPrefix = "Selection("
	defaultReason   = "_manual"
)

// ManualReason returns the reason tag Show and Hide use for reason.
func ManualReason(reason string) string {
	if reason == "" {
		reason = defaultReason
	}
	return manualPrefix + reason + ")"
}

// SelectionReason returns the reason tag of the condition with token.
func SelectionReason(token string) string {
	return selectionPrefix + token + ")"
}

// Engine shows and hides contextual tabs. Logical state changes happen
// immediately; tabs that became visible are shown on the host at the next
// Idle call.
type Engine struct {
	r          *Ribbon
	roots      map[string]*contextualRoot
	order      []*contextualRoot
	conditions []condition
}

type contextualRoot struct {
	id           string
	tab          *widget.Tab
	reasons      []string
	materialized bool
}

type condition struct {
	root  *contextualRoot
	token string
	pred  host.Predicate
}

func newEngine(r *Ribbon) *Engine {
	return &Engine{r: r, roots: map[string]*contextualRoot{}}
}

// CreateContextual gets or creates the tab for id and marks it contextual and
// hidden. A non-nil predicate registers a condition evaluated on every
// SelectionChanged.
func (e *Engine) CreateContextual(id string, pred host.Predicate, opts ...TabOption) (*widget.Tab, error) {
	id = strings.TrimSpace(id)
	root, ok := e.roots[id]
	if !ok {
		tab, err := e.r.GetOrCreate(id, opts...)
		if err != nil {
			return nil, err
		}
		tab.IsVisible = false
		tab.IsContextualTab = true
		root = &contextualRoot{id: id, tab: tab}
		e.roots[id] = root
		e.order = append(e.order, root)
	}
	if pred != nil {
		token := uuid.NewString()
		e.conditions = append(e.conditions, condition{root: root, token: token, pred: pred})
		e.r.logger.Debug("contextual condition registered", zap.String("id", id), zap.String("token", token))
	}
	return root.tab, nil
}

func (e *Engine) root(id string) (*contextualRoot, error) {
	root, ok := e.roots[strings.TrimSpace(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownTab, id)
	}
	return root, nil
}

// Show adds a manual reason to the tab. An empty reason is "_manual".
func (e *Engine) Show(id, reason string) error {
	root, err := e.root(id)
	if err != nil {
		return err
	}
	e.add(root, ManualReason(reason))
	return nil
}

// Hide removes a manual reason. The tab is hidden on the host as soon as it
// has no reason left.
func (e *Engine) Hide(id, reason string) error {
	root, err := e.root(id)
	if err != nil {
		return err
	}
	e.remove(root, func(r string) bool { return r == ManualReason(reason) })
	return nil
}

// HideAll drops every reason of the tab, manual and selection alike.
func (e *Engine) HideAll(id string) error {
	root, err := e.root(id)
	if err != nil {
		return err
	}
	e.remove(root, func(string) bool { return true })
	return nil
}

// SelectionChanged re-evaluates every condition against sel. An empty or
// invalid selection removes every selection reason and leaves manual ones.
func (e *Engine) SelectionChanged(sel host.Selection) {
	if sel.Empty() {
		for _, root := range e.order {
			e.remove(root, func(r string) bool { return strings.HasPrefix(r, selectionPrefix) })
		}
		return
	}
	for _, c := range e.conditions {
		reason := SelectionReason(c.token)
		if e.eval(c, sel) {
			e.add(c.root, reason)
		} else {
			e.remove(c.root, func(r string) bool { return r == reason })
		}
	}
}

// eval runs a predicate. A panicking predicate is reported and counts as false.
func (e *Engine) eval(c condition, sel host.Selection) (matched bool) {
	defer func() {
		if r := recover(); r != nil {
			errors.ReportPanic(&errors.PanicError{
				Op:         "ribbon.SelectionChanged",
				ID:         c.root.id,
				Value:      r,
				StackTrace: errors.CaptureStack(),
			})
			matched = false
		}
	}()
	return c.pred(sel)
}

// Idle shows every visible tab that is not yet shown on the host and marks
// it active. A tab the host stopped displaying on its own is shown again.
func (e *Engine) Idle() {
	for _, root := range e.order {
		if !root.pending() {
			continue
		}
		e.r.host.ShowContextualTab(root.tab)
		root.tab.IsActive = true
		root.materialized = true
		e.r.logger.Debug("contextual tab shown", zap.String("id", root.id), zap.Strings("reasons", root.reasons))
	}
}

// Reasons returns the tab's reasons in the order they were added.
func (e *Engine) Reasons(id string) []string {
	root, ok := e.roots[strings.TrimSpace(id)]
	if !ok {
		return nil
	}
	return slices.Clone(root.reasons)
}

// Visible reports whether the tab holds at least one reason. It does not say
// whether the host has shown it yet.
func (e *Engine) Visible(id string) bool {
	root, ok := e.roots[strings.TrimSpace(id)]
	return ok && len(root.reasons) > 0
}

// Pending reports whether the tab is visible but waiting for Idle.
func (e *Engine) Pending(id string) bool {
	root, ok := e.roots[strings.TrimSpace(id)]
	return ok && root.pending()
}

func (root *contextualRoot) pending() bool {
	return len(root.reasons) > 0 && (!root.materialized || !root.tab.IsVisible)
}

func (e *Engine) add(root *contextualRoot, reason string) {
	if slices.Contains(root.reasons, reason) {
		return
	}
	root.reasons = append(root.reasons, reason)
	if len(root.reasons) == 1 {
		e.r.logger.Debug("contextual tab scheduled", zap.String("id", root.id), zap.String("reason", reason))
	}
}

func (e *Engine) remove(root *contextualRoot, match func(string) bool) {
	if len(root.reasons) == 0 {
		return
	}
	root.reasons = slices.DeleteFunc(root.reasons, match)
	if len(root.reasons) > 0 {
		return
	}
	root.materialized = false
	root.tab.IsActive = false
	e.r.host.HideContextualTab(root.tab)
	e.r.logger.Debug("contextual tab hidden", zap.String("id", root.id))
}
