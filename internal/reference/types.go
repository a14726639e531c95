// Package reference builds and serializes flattened settings reference
// documents: a flat mapping of dotted setting paths to inferred metadata,
// wrapped with static application info.
package reference

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SettingType classifies a setting value's shape.
type SettingType string

const (
	TypeBoolean SettingType = "boolean"
	TypeNumber  SettingType = "number"
	TypeString  SettingType = "string"
	TypeArray   SettingType = "array"
	TypeObject  SettingType = "object"
)

// Setting is one flattened entry of the reference document. DefaultValue is
// nil when the source value was null, an empty string or an empty array, or
// a composite object; the YAML field is omitted in that case.
type Setting struct {
	Name         string      `yaml:"name" json:"name"`
	Type         SettingType `yaml:"type" json:"type"`
	Description  string      `yaml:"description" json:"description"`
	Category     Category    `yaml:"category" json:"category"`
	DefaultValue any         `yaml:"default_value,omitempty" json:"default_value,omitempty"`
}

// Settings maps dotted setting paths to entries, in traversal order.
type Settings struct {
	m *orderedmap.OrderedMap[string, *Setting]
}

// NewSettings returns an empty ordered settings map.
func NewSettings() *Settings {
	return &Settings{m: orderedmap.New[string, *Setting]()}
}

// Set inserts or overwrites the entry for key. An overwrite keeps the key's
// original position.
func (s *Settings) Set(key string, setting *Setting) {
	s.m.Set(key, setting)
}

// Get returns the entry for key, if present.
func (s *Settings) Get(key string) (*Setting, bool) {
	return s.m.Get(key)
}

// Len returns the number of entries.
func (s *Settings) Len() int {
	if s == nil || s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Oldest returns the first inserted pair; follow Next for traversal order.
func (s *Settings) Oldest() *orderedmap.Pair[string, *Setting] {
	if s == nil || s.m == nil {
		return nil
	}
	return s.m.Oldest()
}

// Document is the serialized reference: static app metadata plus the
// flattened settings. Field order here is the YAML output order.
type Document struct {
	AppName    string    `yaml:"app_name" json:"app_name"`
	ConfigPath string    `yaml:"config_path" json:"config_path"`
	ConfigType string    `yaml:"config_type" json:"config_type"`
	Settings   *Settings `yaml:"settings" json:"settings"`
}

// CountByCategory tallies settings per category label.
func (d *Document) CountByCategory() map[Category]int {
	counts := make(map[Category]int)
	for pair := d.Settings.Oldest(); pair != nil; pair = pair.Next() {
		counts[pair.Value.Category]++
	}
	return counts
}
