package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ProjectFile is the plan document looked up inside a project directory.
const ProjectFile = "plan.yaml"

// Load reads a floor plan from a YAML or JSON file and fills in defaults.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}

	var p *Plan
	if strings.EqualFold(filepath.Ext(path), ".json") {
		p, err = ParseJSON(data)
	} else {
		p, err = Parse(data)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Parse decodes a YAML plan document and fills in defaults.
func Parse(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan YAML: %w", err)
	}
	Normalize(&p)
	return &p, nil
}

// ParseJSON decodes a JSON plan document, as produced by the plan generator,
// and fills in defaults.
func ParseJSON(data []byte) (*Plan, error) {
	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan JSON: %w", err)
	}
	Normalize(&p)
	return &p, nil
}

// LoadProject loads a floor plan from a project directory.
// It looks for plan.yaml in the given directory.
func LoadProject(projectDir string) (*Plan, error) {
	return Load(filepath.Join(projectDir, ProjectFile))
}
