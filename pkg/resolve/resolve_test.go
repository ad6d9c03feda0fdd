package resolve

import (
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/ribbon/pkg/attr"
	"github.com/go-drift/ribbon/pkg/decl"
	"github.com/go-drift/ribbon/pkg/errors"
)

const homeYAML = `
id: home
title: Home
panels:
  - id: draw
    source:
      title: Draw
      items:
        - kind: RibbonButton
          id: line
          text: Line
          command: _LINE
          size: Large
        - kind: SplitButton
          id: circle
          items:
            - kind: Button
              id: center
            - kind: RowPanel
              id: nested
        - kind: RowPanel
          id: row
          source:
            id: sub
            items:
              - kind: Label
                text: Radius
          items:
            - kind: Spinner
              maximum: oops
        - kind: Combo
          id: styles
          itemsBinding: textStyles
          menuItems:
            - kind: MenuItem
              id: manage
        - kind: ColorPicker
          id: pick
          palette: warm
      dialogLauncher:
        id: drawSettings
        command: _DSETTINGS
  - id: gap
    source:
      kind: PanelSpacer
      leftBorderBrush: "#FF0000"
`

func collect(t *testing.T) *errors.Collector {
	t.Helper()
	c := &errors.Collector{}
	old := errors.DefaultHandler
	errors.SetHandler(c)
	t.Cleanup(func() { errors.SetHandler(old) })
	return c
}

func TestParseTree(t *testing.T) {
	c := collect(t)
	tab, err := Parse("home.yaml", []byte(homeYAML))
	require.NoError(t, err)

	assert.Equal(t, "home", tab.ID)
	assert.Equal(t, "Home", tab.Title)
	require.Len(t, tab.Panels, 2)

	src, ok := tab.Panels[0].Source.(*decl.PanelSource)
	require.True(t, ok)
	assert.Equal(t, "Draw", src.Title)
	require.Len(t, src.Items, 5)

	line := src.Items[0].(*decl.Button)
	assert.Equal(t, "_LINE", line.Command)
	assert.Equal(t, attr.SizeLarge, line.Size)

	split := src.Items[1].(*decl.SplitButton)
	assert.Len(t, split.Items, 2, "the resolver keeps disallowed children; the builder drops them")

	row := src.Items[2].(*decl.RowPanel)
	require.NotNil(t, row.Source)
	assert.Equal(t, "sub", row.Source.ID)
	assert.Len(t, row.Source.Items, 1)
	assert.Len(t, row.Items, 1)
	assert.Equal(t, 100.0, row.Items[0].(*decl.Spinner).Maximum)

	combo := src.Items[3].(*decl.Combo)
	assert.Equal(t, "textStyles", combo.ItemsBindingKey)
	assert.Len(t, combo.MenuItems, 1)

	custom := src.Items[4].(*decl.Custom)
	assert.Equal(t, "ColorPicker", custom.KindName)
	assert.Equal(t, "warm", custom.Attrs["palette"])

	require.NotNil(t, src.DialogLauncher)
	assert.Equal(t, "_DSETTINGS", src.DialogLauncher.Command)

	spacer, ok := tab.Panels[1].Source.(*decl.PanelSpacer)
	require.True(t, ok)
	assert.Equal(t, uint8(0xff), spacer.LeftBorderBrush.R)

	assert.Len(t, c.OfKind(errors.KindDeclaration), 1, "the bad spinner maximum")
}

func TestParseReportsBadShapes(t *testing.T) {
	c := collect(t)
	tab, err := Parse("bad.yaml", []byte(`
id: bad
panels:
  - id: p
    source:
      kind: Button
  - kind: Tab
  - id: q
    source:
      items:
        - text: no kind
        - kind: Panel
        - kind: Label
          items: []
`))
	require.NoError(t, err)
	assert.Len(t, tab.Panels, 2)
	assert.Nil(t, tab.Panels[0].Source)
	assert.Len(t, tab.Panels[1].Source.Fields().Items, 1, "only the label survives")
	assert.Len(t, c.OfKind(errors.KindShape), 5)
}

func TestParseRejectsNonMapping(t *testing.T) {
	_, err := Parse("list.yaml", []byte("- a\n- b\n"))
	assert.Error(t, err)
	_, err = Parse("broken.yaml", []byte("id: [unterminated"))
	assert.Error(t, err)
}

func TestFSResolve(t *testing.T) {
	c := collect(t)
	fsys := fstest.MapFS{
		"ribbons/home.yaml":   {Data: []byte(homeYAML)},
		"ribbons/insert.yaml": {Data: []byte("title: Insert\n")},
		"ribbons/broken.yaml": {Data: []byte("- nope\n")},
		"ribbons/notes.txt":   {Data: []byte("ignored")},
	}
	r := NewFS(fsys, "ribbons", "yaml")

	tab, ok := r.Resolve("insert")
	require.True(t, ok)
	assert.Equal(t, "insert", tab.ID, "missing id defaults to the requested one")

	_, ok = r.Resolve("missing")
	assert.False(t, ok)
	assert.Empty(t, c.Errors(), "a missing file is not an error")

	_, ok = r.Resolve("broken")
	assert.False(t, ok)
	assert.Len(t, c.OfKind(errors.KindDeclaration), 1)

	ids, err := r.IDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"broken", "home", "insert"}, ids)
}

func TestFSResolveConcurrently(t *testing.T) {
	collect(t)
	r := NewFS(fstest.MapFS{"home.yaml": {Data: []byte(homeYAML)}}, "", "")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tab, ok := r.Resolve("home")
			assert.True(t, ok)
			assert.Len(t, tab.Panels, 2)
		}()
	}
	wg.Wait()
}

func TestMapAndChain(t *testing.T) {
	home := decl.NewTab()
	home.ID = "home"
	m := NewMap(home)

	got, ok := m.Resolve("home")
	require.True(t, ok)
	assert.Same(t, home, got)

	chain := Chain{nil, NewMap(), m}
	got, ok = chain.Resolve("home")
	require.True(t, ok)
	assert.Same(t, home, got)

	_, ok = chain.Resolve("insert")
	assert.False(t, ok)

	f := Func(func(id string) (*decl.Tab, bool) { return nil, false })
	_, ok = f.Resolve("x")
	assert.False(t, ok)
}
