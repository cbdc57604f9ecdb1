package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Program is an ordered list of tool IDs to execute.
type Program struct {
	Demos []string `yaml:"demos"`
}

// LoadProgram reads a program override from a YAML file.
func LoadProgram(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read program file: %w", err)
	}

	var p Program
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse program file: %w", err)
	}
	if len(p.Demos) == 0 {
		return nil, fmt.Errorf("program file %s lists no demos", path)
	}
	return &p, nil
}
