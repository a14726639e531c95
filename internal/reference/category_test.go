package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		path string
		want Category
	}{
		{"buffer_font_family", CategoryFont},
		{"text_rendering", CategoryFont},
		{"theme", CategoryAppearance},
		{"experimental.theme_overrides", CategoryAppearance},
		{"project_panel.dock", CategoryUI},
		{"tab_size", CategoryUI},
		{"git.inline_blame", CategoryGit},
		{"agent.default_model", CategoryAI},
		{"languages.Python", CategoryLanguage},
		{"vim_mode", CategoryKeybindings},
		{"base_keymap", CategoryKeybindings},
		{"scrollbar.show", CategoryEditor},
		{"cursor_blink", CategoryEditor},
		{"diagnostics.include_warnings", CategoryDiagnostics},
		{"format_on_save", CategoryFormatting},
		{"soft_wrap", CategoryGeneral},
		{"telemetry.metrics", CategoryGeneral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Categorize(tt.path), "path %s", tt.path)
	}
}

func TestCategorizeRuleOrder(t *testing.T) {
	// Earlier rules shadow later ones when substrings overlap.
	tests := []struct {
		path string
		want Category
	}{
		{"git.font_style", CategoryFont},
		{"agent_font_size", CategoryFont},
		{"theme.text_color", CategoryFont},
		{"git_panel.dock", CategoryUI},
		{"vim.cursor_shape", CategoryKeybindings},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Categorize(tt.path), "path %s", tt.path)
	}
}

func TestCategoriesListsEveryLabel(t *testing.T) {
	labels := Categories()
	assert.Len(t, labels, 11)
	assert.Equal(t, CategoryFont, labels[0])
	assert.Equal(t, CategoryGeneral, labels[len(labels)-1])

	seen := make(map[Category]bool)
	for _, label := range labels {
		assert.False(t, seen[label], "duplicate label %s", label)
		seen[label] = true
	}
}
