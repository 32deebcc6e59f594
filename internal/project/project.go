// Package project reads connection models from YAML or JSON files and loads
// them into a store.
package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gobolt/internal/model"
)

// Format is the encoding of a project document
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension; anything other
// than .json is read as YAML
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Document is a complete connection model. Entities carry a local key that
// connections use to refer to them.
type Document struct {
	Name               string                   `json:"name,omitempty" yaml:"name,omitempty"`
	Description        string                   `json:"description,omitempty" yaml:"description,omitempty"`
	Members            []MemberEntry            `json:"members" yaml:"members"`
	BoltConfigurations []BoltConfigurationEntry `json:"bolt_configurations" yaml:"bolt_configurations"`
	GlobalLoads        []GlobalLoadsEntry       `json:"global_loads" yaml:"global_loads"`
	Connections        []ConnectionEntry        `json:"connections" yaml:"connections"`
}

// MemberEntry is a keyed member form
type MemberEntry struct {
	Key               string `json:"key" yaml:"key"`
	model.MemberInput `yaml:",inline"`
}

// BoltConfigurationEntry is a keyed bolt configuration form
type BoltConfigurationEntry struct {
	Key                          string `json:"key" yaml:"key"`
	model.BoltConfigurationInput `yaml:",inline"`
}

// GlobalLoadsEntry is a keyed load case form
type GlobalLoadsEntry struct {
	Key                    string `json:"key" yaml:"key"`
	model.GlobalLoadsInput `yaml:",inline"`
}

// ConnectionEntry is a keyed connection form whose references are keys
type ConnectionEntry struct {
	Key                   string `json:"key" yaml:"key"`
	model.ConnectionInput `yaml:",inline"`
}

// Load reads a project file, choosing the format from its extension
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}
	return Decode(bytes.NewReader(data), FormatFromPath(path))
}

// Decode parses a project document. Unknown fields are rejected so that
// misspelled keys do not silently fall back to defaults.
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}
	if err := doc.validateKeys(); err != nil {
		return nil, fmt.Errorf("invalid project: %w", err)
	}
	return &doc, nil
}

// Encode writes the document in the given format
func (d *Document) Encode(w io.Writer, format Format) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(d)
}

// validateKeys rejects duplicate keys within a section. Blank keys are
// allowed; such entities can only be referenced by their store identifier.
func (d *Document) validateKeys() error {
	sections := []struct {
		name string
		keys []string
	}{
		{"members", keysOf(d.Members, func(e MemberEntry) string { return e.Key })},
		{"bolt_configurations", keysOf(d.BoltConfigurations, func(e BoltConfigurationEntry) string { return e.Key })},
		{"global_loads", keysOf(d.GlobalLoads, func(e GlobalLoadsEntry) string { return e.Key })},
		{"connections", keysOf(d.Connections, func(e ConnectionEntry) string { return e.Key })},
	}
	for _, s := range sections {
		seen := make(map[string]bool)
		for _, k := range s.keys {
			if k == "" {
				continue
			}
			if seen[k] {
				return fmt.Errorf("%s: duplicate key %q", s.name, k)
			}
			seen[k] = true
		}
	}
	return nil
}

func keysOf[T any](entries []T, key func(T) string) []string {
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, key(e))
	}
	return keys
}
