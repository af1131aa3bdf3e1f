// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// ParamFile is the on-disk representation of one tool invocation. A
// call can be saved to a file and replayed later without retyping the
// parameters.
type ParamFile struct {
	Tool   string         `yaml:"tool"`
	Params map[string]any `yaml:"params,omitempty"`
	Saved  time.Time      `yaml:"saved,omitempty"`
}

// WriteParamFile saves a tool name and its parameters to a YAML file.
func WriteParamFile(path, tool string, params Params) error {
	pf := ParamFile{
		Tool:   tool,
		Params: params,
		Saved:  time.Now(),
	}
	data, err := yaml.Marshal(&pf)
	if err != nil {
		return fmt.Errorf("marshaling param file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadParamFile loads a previously saved invocation from disk.
func ReadParamFile(path string) (*ParamFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading param file: %w", err)
	}
	var pf ParamFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing param file: %w", err)
	}
	if pf.Tool == "" {
		return nil, fmt.Errorf("param file %s names no tool", path)
	}
	return &pf, nil
}
