// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Record is one control-check result read from the input file.
type Record struct {
	UUID               string             `yaml:"uuid,omitempty" json:"uuid,omitempty"`
	Result             string             `yaml:"result" json:"result"`
	SourceRequirements SourceRequirements `yaml:"source-requirements" json:"source-requirements"`
}

// SourceRequirements names the control a result belongs to and the rules
// that were evaluated for it.
type SourceRequirements struct {
	ControlID   string `yaml:"control-id" json:"control-id"`
	Description string `yaml:"description" json:"description"`
	Rules       []Rule `yaml:"rules" json:"rules"`
}

// Rule is a single evaluated check. Name is required; every other field is
// kept verbatim in Raw so it can be attached to the assessment report.
type Rule struct {
	Name string
	Raw  map[string]any
}

// UnmarshalYAML decodes a rule mapping, keeping all of its fields.
func (r *Rule) UnmarshalYAML(value *yaml.Node) error {
	raw := map[string]any{}
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("decode rule: %w", err)
	}

	if name, ok := raw["name"]; ok {
		s, isString := name.(string)
		if !isString {
			return fmt.Errorf("decode rule: name must be a string, got %T", name)
		}
		r.Name = s
	}
	r.Raw = raw
	return nil
}

// MarshalJSON encodes the full rule mapping.
func (r Rule) MarshalJSON() ([]byte, error) {
	if r.Raw == nil {
		return json.Marshal(map[string]any{"name": r.Name})
	}
	return json.Marshal(r.Raw)
}
