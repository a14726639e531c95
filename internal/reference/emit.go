package reference

import (
	"fmt"
	"os"
	"path/filepath"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Marshal renders the document as YAML. Top-level fields and settings keep
// their declaration and traversal order; nothing is sorted alphabetically.
func (d *Document) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reference: %w", err)
	}
	return data, nil
}

// WriteFile serializes the document to path, creating the parent directory
// if needed. Marshalling happens before the file is touched, so a failed
// run never leaves a partial document behind.
func (d *Document) WriteFile(path string) error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write reference: %w", err)
	}
	return nil
}

// MarshalYAML renders the settings as a mapping node so the emitted keys
// keep their insertion order instead of yaml's default map sorting.
func (s *Settings) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for pair := s.Oldest(); pair != nil; pair = pair.Next() {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(pair.Key); err != nil {
			return nil, err
		}
		valNode := &yaml.Node{}
		if err := valNode.Encode(pair.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// UnmarshalYAML decodes a mapping node, preserving document order.
func (s *Settings) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("settings must be a mapping, got yaml kind %d", node.Kind)
	}
	s.m = orderedmap.New[string, *Setting]()
	for i := 0; i+1 < len(node.Content); i += 2 {
		var setting Setting
		if err := node.Content[i+1].Decode(&setting); err != nil {
			return fmt.Errorf("setting %q: %w", node.Content[i].Value, err)
		}
		s.m.Set(node.Content[i].Value, &setting)
	}
	return nil
}

// Load reads a reference document back from a YAML file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference: %w", err)
	}
	doc := &Document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse reference %s: %w", path, err)
	}
	return doc, nil
}
