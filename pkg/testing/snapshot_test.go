package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/ribbon/pkg/decl"
)

type fakeT struct {
	fatals []string
	errs   []string
}

func (f *fakeT) Helper()      {}
func (f *fakeT) Name() string { return "TestFake" }
func (f *fakeT) Fatalf(format string, args ...any) {
	f.fatals = append(f.fatals, fmt.Sprintf(format, args...))
}
func (f *fakeT) Errorf(format string, args ...any) {
	f.errs = append(f.errs, fmt.Sprintf(format, args...))
}

func TestCaptureSnapshot(t *testing.T) {
	tester := NewTesterWithT(t, []*decl.Tab{homeTab()})
	tester.Pump("home")

	snap := tester.CaptureSnapshot()
	require.Len(t, snap.Tabs, 1)
	tab := snap.Tabs[0]
	assert.Equal(t, "Tab#0", tab.ID)
	assert.Equal(t, "RP_TAB_home", tab.Path)
	assert.Equal(t, "Home", tab.Properties["Title"])

	require.Len(t, tab.Children, 1)
	panel := tab.Children[0]
	assert.Equal(t, "Panel", panel.Type)
	require.Len(t, panel.Children, 1)
	src := panel.Children[0]
	assert.Equal(t, "PanelSource", src.Type)
	require.Len(t, src.Children, 3)

	line := src.Children[0]
	assert.Equal(t, "Button#0", line.ID)
	assert.Equal(t, "RP_TAB_home;draw;src;line", line.Path)
	assert.Equal(t, "Line", line.Properties["Text"])
	assert.Equal(t, "_LINE", line.Properties["Command"])
	assert.Empty(t, line.Children)
}

func TestSnapshotMatchesFile(t *testing.T) {
	tester := NewTesterWithT(t, []*decl.Tab{homeTab()})
	tester.Pump("home")
	snap := tester.CaptureSnapshot()
	path := filepath.Join(t.TempDir(), "golden", "home.json")

	ft := &fakeT{}
	snap.MatchesFile(ft, path)
	require.Len(t, ft.fatals, 1)
	assert.Contains(t, ft.fatals[0], "snapshot file missing")

	t.Setenv(UpdateEnv, "1")
	snap.MatchesFile(t, path)
	_, err := os.Stat(path)
	require.NoError(t, err)

	t.Setenv(UpdateEnv, "")
	ft = &fakeT{}
	snap.MatchesFile(ft, path)
	assert.Empty(t, ft.fatals)
	assert.Empty(t, ft.errs)
}

func TestSnapshotDiff(t *testing.T) {
	before := NewTesterWithT(t, []*decl.Tab{homeTab()})
	before.Pump("home")
	expected := before.CaptureSnapshot()
	assert.Empty(t, expected.Diff(expected))

	changed := homeTab()
	changed.Panels[0].Source.Fields().Items[0].Common().Text = "Polyline"
	after := NewTesterWithT(t, []*decl.Tab{changed})
	after.Pump("home")
	actual := after.CaptureSnapshot()

	diff := actual.Diff(expected)
	assert.Regexp(t, `(?m)^-\s+"Text": "Line"`, diff)
	assert.Regexp(t, `(?m)^\+\s+"Text": "Polyline"`, diff)

	path := filepath.Join(t.TempDir(), "home.json")
	require.NoError(t, expected.UpdateFile(path))
	ft := &fakeT{}
	actual.MatchesFile(ft, path)
	require.Len(t, ft.errs, 1)
	assert.Contains(t, ft.errs[0], "snapshot mismatch")
}
