package reference

import "strings"

// Category is a coarse grouping label attached to each setting for display.
type Category string

const (
	CategoryFont        Category = "font"
	CategoryAppearance  Category = "appearance"
	CategoryUI          Category = "ui"
	CategoryGit         Category = "git"
	CategoryAI          Category = "ai"
	CategoryLanguage    Category = "language"
	CategoryKeybindings Category = "keybindings"
	CategoryEditor      Category = "editor"
	CategoryDiagnostics Category = "diagnostics"
	CategoryFormatting  Category = "formatting"
	CategoryGeneral     Category = "general"
)

// categoryRule assigns its label when any of its substrings occurs in the
// dotted setting path.
type categoryRule struct {
	Substrings []string
	Label      Category
}

// categoryRules is evaluated in order and the first match wins. The order is
// load-bearing: "git.font_style" lands in font, not git, because the font
// rule is tested first.
var categoryRules = []categoryRule{
	{Substrings: []string{"font", "text"}, Label: CategoryFont},
	{Substrings: []string{"theme", "color", "appearance"}, Label: CategoryAppearance},
	{Substrings: []string{"panel", "dock", "tab"}, Label: CategoryUI},
	{Substrings: []string{"git"}, Label: CategoryGit},
	{Substrings: []string{"agent", "ai"}, Label: CategoryAI},
	{Substrings: []string{"language", "lsp"}, Label: CategoryLanguage},
	{Substrings: []string{"key", "vim", "helix"}, Label: CategoryKeybindings},
	{Substrings: []string{"scroll", "cursor"}, Label: CategoryEditor},
	{Substrings: []string{"diagnostic"}, Label: CategoryDiagnostics},
	{Substrings: []string{"format", "indent"}, Label: CategoryFormatting},
}

// Categorize assigns the category for a dotted setting path. Matching is
// case-sensitive substring containment; paths matching no rule fall back to
// general.
func Categorize(path string) Category {
	for _, rule := range categoryRules {
		for _, sub := range rule.Substrings {
			if strings.Contains(path, sub) {
				return rule.Label
			}
		}
	}
	return CategoryGeneral
}

// Categories returns every assignable label, rule order first, general last.
func Categories() []Category {
	labels := make([]Category, 0, len(categoryRules)+1)
	for _, rule := range categoryRules {
		labels = append(labels, rule.Label)
	}
	return append(labels, CategoryGeneral)
}
