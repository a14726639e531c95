package reference

import (
	"fmt"
	"strings"

	"github.com/muka-hq/zedref/internal/jsonc"
)

// sentinelKeys marks mappings that are composite leaf settings rather than
// structural nesting. A theme mode selector or an AI provider/model pair is
// one meaningful value; recursing into it would shred it into fragments.
// The set is tied to the shape of Zed's settings schema.
var sentinelKeys = map[string]bool{
	"mode":     true,
	"light":    true,
	"dark":     true,
	"provider": true,
	"model":    true,
}

// Flatten walks a parsed settings tree and produces the flat mapping of
// dotted paths to setting entries, in depth-first encounter order. The root
// must be an object; a duplicate path overwrites the earlier entry.
func Flatten(root jsonc.Value) (*Settings, error) {
	if root.Kind != jsonc.KindObject {
		return nil, fmt.Errorf("settings root must be an object, got %s", root.Kind)
	}
	settings := NewSettings()
	flattenInto(settings, root, "")
	return settings, nil
}

func flattenInto(settings *Settings, obj jsonc.Value, prefix string) {
	for _, m := range obj.Members {
		fullKey := m.Key
		if prefix != "" {
			fullKey = prefix + "." + m.Key
		}
		if m.Value.Kind == jsonc.KindObject && !isCompositeLeaf(m.Value) {
			flattenInto(settings, m.Value, fullKey)
			continue
		}
		settings.Set(fullKey, newSetting(fullKey, m.Value))
	}
}

// isCompositeLeaf reports whether an object's own keys intersect the
// sentinel set.
func isCompositeLeaf(obj jsonc.Value) bool {
	for _, m := range obj.Members {
		if sentinelKeys[m.Key] {
			return true
		}
	}
	return false
}

func newSetting(path string, v jsonc.Value) *Setting {
	s := &Setting{
		Name:        path,
		Type:        InferType(v),
		Description: describe(path),
		Category:    Categorize(path),
	}
	if d, ok := defaultValue(v); ok {
		s.DefaultValue = d
	}
	return s
}

// InferType maps a value's shape to its setting type. Null has no slot of
// its own and degrades to string.
func InferType(v jsonc.Value) SettingType {
	switch v.Kind {
	case jsonc.KindBool:
		return TypeBoolean
	case jsonc.KindNumber:
		return TypeNumber
	case jsonc.KindString:
		return TypeString
	case jsonc.KindArray:
		return TypeArray
	case jsonc.KindObject:
		return TypeObject
	default:
		return TypeString
	}
}

// defaultValue reports the value to record as the setting's default.
// Booleans and numbers always have one, even when falsy. Empty strings and
// empty arrays are omitted, as are nulls and composite objects.
func defaultValue(v jsonc.Value) (any, bool) {
	switch v.Kind {
	case jsonc.KindBool, jsonc.KindNumber:
		return v, true
	case jsonc.KindString:
		if v.Str != "" {
			return v, true
		}
	case jsonc.KindArray:
		if len(v.Items) > 0 {
			return v, true
		}
	}
	return nil, false
}

// describe builds the placeholder description from the path itself.
func describe(path string) string {
	return "Configuration for " + strings.NewReplacer("_", " ", ".", " ").Replace(path)
}
