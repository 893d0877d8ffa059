package workflows

import (
	"fmt"

	"gopkg.in/yaml.v3"

	pwferrors "github.com/chazuruo/progressive-workflow/internal/errors"
	"github.com/chazuruo/progressive-workflow/internal/yamlite"
)

// DecodeDefinition builds a Definition from a parsed document.
// Absent steps or args decode to empty slices.
func DecodeDefinition(id string, doc *yamlite.Document) *Definition {
	def := &Definition{
		ID:    id,
		Name:  id,
		Args:  []Arg{},
		Steps: []Step{},
	}

	for key, value := range doc.Scalars() {
		switch key {
		case "name":
			def.Name = value
		case "description":
			def.Description = value
		case "steps", "args":
			// A scalar here is malformed; the lists stay empty.
		default:
			if def.Extra == nil {
				def.Extra = make(map[string]string)
			}
			def.Extra[key] = value
		}
	}

	for _, it := range doc.List("steps") {
		name, _ := it.String("name")
		prompt, _ := it.String("prompt")
		def.Steps = append(def.Steps, Step{Name: name, Prompt: prompt})
	}

	for _, it := range doc.List("args") {
		name, ok := it.String("name")
		if !ok || name == "" {
			continue
		}
		desc, _ := it.String("description")
		required, _ := it.Bool("required")
		def.Args = append(def.Args, Arg{Name: name, Description: desc, Required: required})
	}

	return def
}

// UnmarshalDefinition parses workflow.yaml content.
func UnmarshalDefinition(id string, data []byte) *Definition {
	return DecodeDefinition(id, yamlite.Parse(string(data)))
}

// MarshalDefinition renders a definition back to YAML.
func MarshalDefinition(def *Definition) ([]byte, error) {
	data, err := yaml.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal workflow: %w", err)
	}
	return data, nil
}

// Validate reports the first structural problem of the definition.
func (d *Definition) Validate() error {
	if len(d.Steps) == 0 {
		return pwferrors.ErrNoSteps
	}
	for i, s := range d.Steps {
		if s.Prompt == "" {
			return fmt.Errorf("%w: step %d has no prompt", pwferrors.ErrInvalid, i)
		}
	}
	return nil
}

func stepName(name string, index int) string {
	if name == "" {
		return fmt.Sprintf("step_%d", index)
	}
	return name
}

func toArgs(specs []yamlite.ArgSpec) []Arg {
	args := make([]Arg, len(specs))
	for i, s := range specs {
		args[i] = Arg{Name: s.Name, Description: s.Description, Required: s.Required}
	}
	return args
}
