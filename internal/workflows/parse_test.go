package workflows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	pwferrors "github.com/chazuruo/progressive-workflow/internal/errors"
)

func TestUnmarshalDefinition(t *testing.T) {
	def := UnmarshalDefinition("review", []byte(`name: "Code Review"
description: Review a change
owner: platform
args:
  - name: PR
    required: true
  - description: no name, dropped
steps:
  - name: gather
    prompt: prompts/gather.md
  - prompt: prompts/report.md
`))

	assert.Equal(t, "review", def.ID)
	assert.Equal(t, "Code Review", def.Name)
	assert.Equal(t, "Review a change", def.Description)
	assert.Equal(t, []Arg{{Name: "PR", Required: true}}, def.Args)
	assert.Equal(t, []Step{
		{Name: "gather", Prompt: "prompts/gather.md"},
		{Prompt: "prompts/report.md"},
	}, def.Steps)
	assert.Equal(t, []string{"gather", "step_1"}, def.StepNames())
	assert.Equal(t, map[string]string{"owner": "platform"}, def.Extra)
}

func TestUnmarshalDefinition_NameDefaultsToID(t *testing.T) {
	def := UnmarshalDefinition("anon", []byte("description: nothing else\n"))
	assert.Equal(t, "anon", def.Name)
	assert.NotNil(t, def.Steps)
	assert.NotNil(t, def.Args)
}

func TestDefinition_Validate(t *testing.T) {
	tests := []struct {
		name    string
		def     Definition
		wantErr error
	}{
		{"valid", Definition{Steps: []Step{{Name: "a", Prompt: "a.md"}}}, nil},
		{"no steps", Definition{}, pwferrors.ErrNoSteps},
		{"step without prompt", Definition{Steps: []Step{{Name: "a"}}}, pwferrors.ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMarshalDefinition_RoundTripsThroughYAMLv3(t *testing.T) {
	def := &Definition{
		Name:        "Deploy",
		Description: "Ship it",
		Args:        []Arg{{Name: "ENV", Description: "Target", Required: true}},
		Steps:       []Step{{Name: "plan", Prompt: "plan.md"}},
		Extra:       map[string]string{"version": "2"},
	}

	data, err := MarshalDefinition(def)
	require.NoError(t, err)

	var back Definition
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, def.Name, back.Name)
	assert.Equal(t, def.Args, back.Args)
	assert.Equal(t, def.Steps, back.Steps)
	assert.Equal(t, "2", back.Extra["version"])

	reparsed := UnmarshalDefinition("deploy", data)
	assert.Equal(t, def.Steps, reparsed.Steps)
	assert.Equal(t, def.Args, reparsed.Args)
}
