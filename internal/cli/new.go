package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	pwferrors "github.com/chazuruo/progressive-workflow/internal/errors"
	"github.com/chazuruo/progressive-workflow/internal/logger"
	"github.com/chazuruo/progressive-workflow/internal/workflows"
	"github.com/chazuruo/progressive-workflow/internal/workflows/store"
)

// NewOptions contains the options for the new command.
type NewOptions struct {
	Description string
	Steps       int
}

// NewNewCommand creates the new command.
func NewNewCommand() *cobra.Command {
	opts := &NewOptions{}

	cmd := &cobra.Command{
		Use:   "new <title>",
		Short: "Scaffold a new workflow",
		Long: `Create <base_dir>/<slug>/workflow.yaml and one prompt file per step.

The slug is derived from the title and made unique among existing workflows.

Examples:
  pwf new "Code Review"
  pwf new "Release" --steps 3 --description "Cut and publish a release"`,
		Args: rangeArgs(1, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Description, "description", "", "workflow description")
	cmd.Flags().IntVar(&opts.Steps, "steps", 1, "number of steps to scaffold")

	return cmd
}

// createdWorkflow is printed after a successful scaffold.
type createdWorkflow struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

func runNew(cmd *cobra.Command, opts *NewOptions, title string) error {
	if strings.TrimSpace(title) == "" {
		return usageError(cmd, "title must not be empty")
	}
	if opts.Steps < 1 {
		return usageError(cmd, fmt.Sprintf("--steps must be at least 1, got %d", opts.Steps))
	}
	if strings.ContainsAny(title, "\r\n") {
		return usageError(cmd, "title must be a single line")
	}
	if strings.ContainsAny(opts.Description, "\r\n") {
		return usageError(cmd, "--description must be a single line")
	}

	baseDir, err := resolveBaseDir("")
	if err != nil {
		return err
	}
	str := store.New(baseDir)

	refs, err := str.List(cmd.Context())
	if err != nil && !errors.Is(err, pwferrors.ErrCatalogDirMissing) {
		return err
	}
	existing := make([]string, len(refs))
	for i, ref := range refs {
		existing[i] = ref.ID
	}
	id := store.GenerateUniqueSlug(title, existing)

	files, err := scaffoldFiles(title, opts.Description, opts.Steps)
	if err != nil {
		return err
	}

	ref, err := str.Create(cmd.Context(), id, files)
	if err != nil {
		return err
	}
	logger.L().Info("created workflow", "id", ref.ID, "path", ref.Path)

	return writeJSON(cmd.OutOrStdout(), createdWorkflow{ID: ref.ID, Path: ref.Path})
}

// scaffoldFiles renders the files of a new workflow. The definition is read
// back with the restricted reader and must come out unchanged.
func scaffoldFiles(title, description string, steps int) (map[string][]byte, error) {
	files := make(map[string][]byte, steps+1)

	def := &workflows.Definition{
		Name:        strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
	}
	for i := 1; i <= steps; i++ {
		rel := fmt.Sprintf("prompts/step%d.md", i)
		def.Steps = append(def.Steps, workflows.Step{Name: fmt.Sprintf("step%d", i), Prompt: rel})
		files[rel] = []byte(fmt.Sprintf("# Step %d\n\nDescribe what to do in step %d.\n", i, i))
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	data, err := workflows.MarshalDefinition(def)
	if err != nil {
		return nil, err
	}

	back := workflows.UnmarshalDefinition(def.ID, data)
	if back.Name != def.Name || back.Description != def.Description {
		return nil, fmt.Errorf("%w: title or description cannot be written to %s", pwferrors.ErrInvalid, store.DefinitionFile)
	}
	if err := back.Validate(); err != nil {
		return nil, err
	}
	files[store.DefinitionFile] = data

	return files, nil
}
