package reference

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muka-hq/zedref/internal/jsonc"
)

const sampleSettings = `// Sample defaults
{
  "theme": {
    "mode": "system",
    "light": "One Light",
    "dark": "One Dark"
  },
  "buffer_font_size": 15,
  "buffer_font_family": "Zed Plex Mono",
  "vim_mode": false,
  "line_height": 1.4,
  "file_types": {
    "Dockerfile": ["Dockerfile", "Dockerfile.*"],
  },
}`

func sampleDocument(t *testing.T) *Document {
	t.Helper()
	root, err := jsonc.Decode(sampleSettings)
	require.NoError(t, err)
	settings, err := Flatten(root)
	require.NoError(t, err)
	return &Document{
		AppName:    "Zed",
		ConfigPath: "~/.config/zed/settings.json",
		ConfigType: "json",
		Settings:   settings,
	}
}

func TestMarshalFieldAndKeyOrder(t *testing.T) {
	doc := sampleDocument(t)

	data, err := doc.Marshal()
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, "app_name: Zed\n"))

	// Top-level fields in declaration order, settings in traversal order.
	markers := []string{
		"app_name:",
		"config_path:",
		"config_type:",
		"settings:",
		"theme:",
		"buffer_font_size:",
		"buffer_font_family:",
		"vim_mode:",
		"line_height:",
		"file_types.Dockerfile:",
	}
	last := -1
	for _, m := range markers {
		idx := strings.Index(out, m)
		require.GreaterOrEqual(t, idx, 0, "missing %q", m)
		assert.Greater(t, idx, last, "%q out of order", m)
		last = idx
	}
}

func TestMarshalDefaults(t *testing.T) {
	doc := sampleDocument(t)

	data, err := doc.Marshal()
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "default_value: 15\n")
	assert.NotContains(t, out, "15.0")
	assert.Contains(t, out, "default_value: 1.4\n")
	assert.Contains(t, out, "default_value: false\n")

	// The theme block is a composite object and carries no default.
	themeBlock := out[strings.Index(out, "theme:"):strings.Index(out, "buffer_font_size:")]
	assert.NotContains(t, themeBlock, "default_value")
}

func TestMarshalDeterministic(t *testing.T) {
	doc := sampleDocument(t)

	first, err := doc.Marshal()
	require.NoError(t, err)
	second, err := doc.Marshal()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWriteFileAndLoadRoundTrip(t *testing.T) {
	doc := sampleDocument(t)
	path := filepath.Join(t.TempDir(), "out", "zed.yaml")

	require.NoError(t, doc.WriteFile(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, doc.AppName, loaded.AppName)
	assert.Equal(t, doc.ConfigPath, loaded.ConfigPath)
	assert.Equal(t, doc.ConfigType, loaded.ConfigType)
	require.Equal(t, doc.Settings.Len(), loaded.Settings.Len())

	wantKeys := keysOf(doc.Settings)
	assert.Equal(t, wantKeys, keysOf(loaded.Settings), "load keeps document order")

	vim, ok := loaded.Settings.Get("vim_mode")
	require.True(t, ok)
	assert.Equal(t, TypeBoolean, vim.Type)
	assert.Equal(t, false, vim.DefaultValue)

	size, ok := loaded.Settings.Get("buffer_font_size")
	require.True(t, ok)
	assert.Equal(t, 15, size.DefaultValue)
}

func TestWriteFileCreatesParentDirs(t *testing.T) {
	doc := sampleDocument(t)
	path := filepath.Join(t.TempDir(), "a", "b", "zed.yaml")

	require.NoError(t, doc.WriteFile(path))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCountByCategory(t *testing.T) {
	doc := sampleDocument(t)

	counts := doc.CountByCategory()
	assert.Equal(t, 2, counts[CategoryFont], "buffer_font_size and buffer_font_family")
	assert.Equal(t, 1, counts[CategoryAppearance], "theme")
	assert.Equal(t, 1, counts[CategoryKeybindings], "vim_mode")

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, doc.Settings.Len(), total)
}
