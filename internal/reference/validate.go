package reference

import (
	"errors"
	"fmt"
)

// knownConfigTypes are the source formats a reference can describe.
var knownConfigTypes = map[string]bool{
	"json": true,
	"toml": true,
	"yaml": true,
	"ini":  true,
}

// Validate checks the structural health of a loaded reference document and
// returns every problem found, not just the first. It expects default
// values in their decoded YAML shapes, so it applies to documents read with
// Load rather than freshly flattened ones.
func (d *Document) Validate() []error {
	var errs []error

	if d.AppName == "" {
		errs = append(errs, errors.New("app_name is empty"))
	}
	if d.ConfigPath == "" {
		errs = append(errs, errors.New("config_path is empty"))
	}
	if !knownConfigTypes[d.ConfigType] {
		errs = append(errs, fmt.Errorf("config_type %q is not a known format", d.ConfigType))
	}
	if d.Settings == nil || d.Settings.Len() == 0 {
		return append(errs, errors.New("settings is empty"))
	}

	valid := make(map[Category]bool)
	for _, label := range Categories() {
		valid[label] = true
	}

	for pair := d.Settings.Oldest(); pair != nil; pair = pair.Next() {
		key, s := pair.Key, pair.Value
		if s == nil {
			errs = append(errs, fmt.Errorf("setting %q has no body", key))
			continue
		}
		if s.Name != key {
			errs = append(errs, fmt.Errorf("setting %q: name %q does not match its key", key, s.Name))
		}
		switch s.Type {
		case TypeBoolean, TypeNumber, TypeString, TypeArray, TypeObject:
		default:
			errs = append(errs, fmt.Errorf("setting %q: unknown type %q", key, s.Type))
		}
		if !valid[s.Category] {
			errs = append(errs, fmt.Errorf("setting %q: unknown category %q", key, s.Category))
		}
		if s.DefaultValue != nil {
			if err := checkDefaultShape(s.Type, s.DefaultValue); err != nil {
				errs = append(errs, fmt.Errorf("setting %q: %w", key, err))
			}
		}
	}
	return errs
}

func checkDefaultShape(t SettingType, v any) error {
	switch t {
	case TypeBoolean:
		if _, ok := v.(bool); !ok {
			return fmt.Errorf("default_value %v is not a boolean", v)
		}
	case TypeNumber:
		switch v.(type) {
		case int, int64, uint64, float64:
		default:
			return fmt.Errorf("default_value %v is not a number", v)
		}
	case TypeString:
		if _, ok := v.(string); !ok {
			return fmt.Errorf("default_value %v is not a string", v)
		}
	case TypeArray:
		if _, ok := v.([]any); !ok {
			return fmt.Errorf("default_value %v is not an array", v)
		}
	case TypeObject:
		return errors.New("object settings do not record defaults")
	}
	return nil
}
