// Package workflows implements the progressive-disclosure accessors.
//
// A caller asks for one step at a time and never receives the prompt text
// of any other step. The accessors read the disk on every call and keep no
// cache.
package workflows

// Step is one stage of a workflow.
type Step struct {
	Name   string `json:"name" yaml:"name"`
	Prompt string `json:"prompt" yaml:"prompt,omitempty"` // Path relative to the workflow directory
}

// Arg declares a variable the workflow's prompts expect.
type Arg struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Required    bool   `json:"required" yaml:"required"`
}

// PromptResult is the payload returned for a single step.
type PromptResult struct {
	StepIndex  int    `json:"step_index"`
	StepName   string `json:"step_name"`
	Prompt     string `json:"prompt"`
	TotalSteps int    `json:"total_steps"`
	IsLast     bool   `json:"is_last"`
}

// CatalogEntry summarizes a workflow without its steps or args.
type CatalogEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Definition is a fully decoded workflow.yaml.
type Definition struct {
	ID          string            `json:"id" yaml:"-"`
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description" yaml:"description,omitempty"`
	Args        []Arg             `json:"args" yaml:"args,omitempty"`
	Steps       []Step            `json:"steps" yaml:"steps"`
	Extra       map[string]string `json:"extra,omitempty" yaml:",inline"` // Unrecognized top-level scalars
}

// StepNames returns the step names in order, defaulting unnamed steps.
func (d *Definition) StepNames() []string {
	names := make([]string, len(d.Steps))
	for i, s := range d.Steps {
		names[i] = stepName(s.Name, i)
	}
	return names
}
