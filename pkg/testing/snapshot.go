package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/go-drift/ribbon/pkg/widget"
)

// UpdateEnv names the environment variable that rewrites golden files.
const UpdateEnv = "RIBBON_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the structure of the live tree.
type Snapshot struct {
	Tabs []*SnapshotNode `json:"tabs"`
}

// SnapshotNode is one serialized live node.
type SnapshotNode struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Path       string          `json:"path,omitempty"`
	Cookie     string          `json:"cookie,omitempty"`
	Properties map[string]any  `json:"props,omitempty"`
	Children   []*SnapshotNode `json:"children,omitempty"`
}

// snapshotFields lists the properties serialized when set. Fields a type
// does not have are skipped.
var snapshotFields = []string{
	"Title", "Text", "Command", "Size", "IsChecked", "IsActive",
	"IsContextualTab", "Value", "Minimum", "Maximum",
}

// CaptureSnapshot captures every tab the host holds.
func (t *RibbonTester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{}
	counter := &typeCounter{}
	for _, tab := range t.host.Tabs() {
		snap.Tabs = append(snap.Tabs, captureNode(tab, counter))
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When RIBBON_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a unified diff from other to this snapshot. Returns
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(b)),
		B:        difflib.SplitLines(string(a)),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}

// --- Internal ---

// typeCounter assigns stable IDs like "Button#0", "Button#1".
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func captureNode(n widget.Node, counter *typeCounter) *SnapshotNode {
	typeName := nodeTypeName(n)
	el := n.Base()
	node := &SnapshotNode{
		ID:     counter.next(typeName),
		Type:   typeName,
		Path:   el.Path,
		Cookie: el.Cookie,
	}
	if props := captureProperties(n); len(props) > 0 {
		node.Properties = props
	}
	for _, child := range widget.Children(n) {
		node.Children = append(node.Children, captureNode(child, counter))
	}
	return node
}

func nodeTypeName(n widget.Node) string {
	t := reflect.TypeOf(n)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

func captureProperties(n widget.Node) map[string]any {
	props := make(map[string]any)
	v := reflect.ValueOf(n)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	for _, name := range snapshotFields {
		field := v.FieldByName(name)
		if !field.IsValid() || field.IsZero() {
			continue
		}
		if val := serializeFieldValue(field); val != nil {
			props[name] = val
		}
	}
	if it, ok := n.(widget.Item); ok {
		if it.Item().Image != nil {
			props["image"] = true
		}
		if it.Item().LargeImage != nil {
			props["largeImage"] = true
		}
	}
	if len(props) == 0 {
		return nil
	}
	return props
}

func serializeFieldValue(v reflect.Value) any {
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(v.Float()) {
			return "NaN"
		}
		return math.Round(v.Float()*100) / 100
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	default:
		return nil
	}
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
