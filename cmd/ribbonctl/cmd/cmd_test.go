package cmd

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/ribbon/pkg/errors"
)

const homeDecl = `
id: home
title: Home
panels:
  - id: draw
    source:
      id: src
      title: Draw
      items:
        - kind: Button
          id: line
          text: Line
          image: line
        - kind: SplitButton
          id: circle
          items:
            - kind: Button
              id: center
            - kind: RowPanel
              id: nested
`

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, data, 0o644))
}

func fixture(t *testing.T) string {
	t.Helper()
	t.Cleanup(func() { errors.SetHandler(nil) })
	dir := t.TempDir()
	writeFile(t, dir, "ribbon.yaml", []byte(`
schema: v1
ribbon:
  tabPrefix: T_
  contextual: [hatch]
images:
  line: icons/line.png
`))
	var icon bytes.Buffer
	require.NoError(t, png.Encode(&icon, image.NewNRGBA(image.Rect(0, 0, 2, 2))))
	writeFile(t, dir, "icons/line.png", icon.Bytes())
	writeFile(t, dir, "ribbons/home.yaml", []byte(homeDecl))
	writeFile(t, dir, "ribbons/hatch.yaml", []byte("title: Hatch\n"))
	writeFile(t, dir, "ribbons/broken.yaml", []byte("- nope\n"))
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTree(t *testing.T) {
	dir := fixture(t)
	out, err := run(t, "tree", "--config", dir, "home", "hatch")
	require.NoError(t, err)

	assert.Contains(t, out, "Tab T_home path=T_home")
	assert.Contains(t, out, "Panel draw path=T_home;draw cookie=T_home:Panel=draw")
	assert.Contains(t, out, "Button line path=T_home;draw;src;line cookie=T_home;draw;src:Button=line_Line")
	assert.Contains(t, out, "Button center path=T_home;draw;src;circle;center")
	assert.NotContains(t, out, "nested")
	assert.Contains(t, out, "Tab T_hatch path=T_hatch")
	assert.Contains(t, out, "(contextual)")
}

func TestTreeRaw(t *testing.T) {
	dir := fixture(t)
	out, err := run(t, "tree", "--config", dir, "--raw", "home")
	require.NoError(t, err)
	assert.Contains(t, out, "# home")
	assert.Contains(t, out, `"nested"`, "raw output shows the declaration before any policy applies")

	_, err = run(t, "tree", "--config", dir, "--raw", "missing")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	dir := fixture(t)

	out, err := run(t, "check", "--config", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 declarations failed")
	assert.Contains(t, out, "FAIL broken")
	assert.Contains(t, out, "ok   hatch")
	assert.Contains(t, out, "ok   home")

	out, err = run(t, "check", "--config", dir, "home")
	require.NoError(t, err)
	assert.Contains(t, out, "[shape]")

	_, err = run(t, "check", "--config", dir, "--strict", "home")
	assert.Error(t, err)

	_, err = run(t, "check", "--config", dir, "--strict", "hatch")
	assert.NoError(t, err)
}

func TestBadConfig(t *testing.T) {
	t.Cleanup(func() { errors.SetHandler(nil) })
	dir := t.TempDir()
	writeFile(t, dir, "ribbon.yaml", []byte("schema: v3\n"))
	_, err := run(t, "check", "--config", dir)
	assert.Error(t, err)
}
