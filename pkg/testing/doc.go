// Package testing provides a test harness for ribbon declarations.
//
// # Quick Start
//
// Create a tester over a set of declarations, pump a tab and make assertions:
//
//	func TestHomeTab(t *testing.T) {
//	    tester := ribbontest.NewTesterWithT(t, []*decl.Tab{homeTab()})
//	    tester.Pump("home")
//
//	    // Find nodes
//	    line := tester.Find(ribbontest.ByID("line")).First()
//
//	    // Run command handlers
//	    tester.Click(ribbontest.ByCommand("_LINE"))
//
//	    // Assert on what was reported while building
//	    if n := len(tester.Reports().Errors()); n != 0 {
//	        t.Errorf("expected a clean build, got %d reports", n)
//	    }
//	}
//
// # Snapshot Testing
//
// Capture and compare live tree snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/home.snapshot.json")
//
// Update snapshots with:
//
//	RIBBON_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import ribbontest "github.com/go-drift/ribbon/pkg/testing"
package testing
