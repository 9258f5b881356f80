// Package agents registers the named, tool-filtered subagent
// configurations handed to the external agent framework. Built-in
// definitions (plan, code, explore) ship embedded; user- and
// project-level YAML files can override them by name.
package agents

import (
	"strings"
	"text/template"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Definition describes one subagent: what it is for, which tools it
// may use, and its instruction template. Instructions are rendered
// with the workspace directory before registration.
type Definition struct {
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Tools        []string `yaml:"tools"`
	Instructions string   `yaml:"instructions"`
}

// Decode parses a YAML definition.
func Decode(content []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(content, &def); err != nil {
		return nil, errors.Wrap(err, "failed to decode agent definition")
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks that the definition is complete.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return errors.New("agent name is required")
	}
	if d.Description == "" {
		return errors.New("agent description is required")
	}
	if len(d.Tools) == 0 {
		return errors.New("agent tool list is required")
	}
	if strings.TrimSpace(d.Instructions) == "" {
		return errors.New("agent instructions are required")
	}
	return nil
}

// AllowsTool reports whether the definition's tool filter includes the
// named tool.
func (d *Definition) AllowsTool(name string) bool {
	for _, tool := range d.Tools {
		if tool == name {
			return true
		}
	}
	return false
}

// RenderInstructions renders the instruction template for a workspace.
func (d *Definition) RenderInstructions(workspaceDir string) (string, error) {
	tmpl, err := template.New(d.Name).Parse(d.Instructions)
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse instructions for agent %q", d.Name)
	}

	var buf strings.Builder
	err = tmpl.Execute(&buf, struct{ WorkspaceDir string }{WorkspaceDir: workspaceDir})
	if err != nil {
		return "", errors.Wrapf(err, "failed to render instructions for agent %q", d.Name)
	}

	return buf.String(), nil
}
