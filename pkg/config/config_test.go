package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/ribbon/pkg/ribbon"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0o644))
	return dir
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	res, err := Resolve(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, res.Root)
	assert.Equal(t, DefaultSchema, res.Schema)
	assert.Equal(t, ribbon.DefaultTabPrefix, res.TabPrefix)
	assert.Equal(t, ribbon.DefaultMaxDepth, res.MaxDepth)
	assert.Equal(t, "ribbons", res.DeclDir)
	assert.Equal(t, ".yaml", res.DeclExt)
	assert.Empty(t, res.Images)
	assert.Empty(t, res.Preload)
	assert.False(t, res.Verbose)
}

func TestResolveFile(t *testing.T) {
	dir := writeConfig(t, `
schema: "1.2"
ribbon:
  tabPrefix: CAD_
  maxDepth: 2
  preload: [home, insert, home, " "]
  contextual: [hatch]
declarations:
  dir: ./decl/tabs
  ext: yml
images:
  line: icons/line_16.png
log:
  verbose: true
`)
	res, err := Resolve(dir)
	require.NoError(t, err)

	assert.Equal(t, "v1.2.0", res.Schema)
	assert.Equal(t, "CAD_", res.TabPrefix)
	assert.Equal(t, 2, res.MaxDepth)
	assert.Equal(t, []string{"home", "insert"}, res.Preload)
	assert.Equal(t, []string{"hatch"}, res.Contextual)
	assert.Equal(t, "decl/tabs", res.DeclDir)
	assert.Equal(t, ".yml", res.DeclExt)
	assert.Equal(t, map[string]string{"line": "icons/line_16.png"}, res.Images)
	assert.True(t, res.Verbose)
}

func TestResolveRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"schema major", "schema: v2.0.0\n"},
		{"schema garbage", "schema: latest\n"},
		{"negative depth", "ribbon:\n  maxDepth: -1\n"},
		{"escaping dir", "declarations:\n  dir: ../elsewhere\n"},
		{"absolute image", "images:\n  line: /etc/line.png\n"},
		{"empty image key", "images:\n  \"\": a.png\n"},
		{"bad yaml", "ribbon: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestFindRoot(t *testing.T) {
	root := writeConfig(t, "schema: v1\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := FindRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, root, got)

	bare := t.TempDir()
	got, err = FindRoot(bare)
	require.NoError(t, err)
	assert.Equal(t, bare, got)
}
