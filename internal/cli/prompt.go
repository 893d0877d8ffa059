package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	pwferrors "github.com/chazuruo/progressive-workflow/internal/errors"
	"github.com/chazuruo/progressive-workflow/internal/workflows"
	"github.com/chazuruo/progressive-workflow/internal/workflows/store"
)

// PromptOptions contains the options for the prompt command.
type PromptOptions struct {
	Vars   []string
	Strict bool
}

// NewPromptCommand creates the prompt command.
func NewPromptCommand() *cobra.Command {
	opts := &PromptOptions{}

	cmd := &cobra.Command{
		Use:   "prompt <workflow_id> <step_index> [variables_json] [base_dir]",
		Short: "Print one step of a workflow",
		Long: `Print a single step of a workflow as JSON.

Only the requested step's prompt file is read. {{NAME}} tokens in the prompt
are replaced with the supplied variables; unknown tokens are left in place
unless --strict is set.

Flags go before <workflow_id>; everything after it is positional, so a
negative step index such as -1 is read as an index.

Examples:
  pwf prompt review 0 '{"PR_NUMBER": "123"}'
  pwf prompt --var PR_NUMBER=123 --strict review 1
  pwf prompt review -1`,
		Args: cobra.MatchAll(noTrailingFlags, rangeArgs(2, 4)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(cmd, opts, args)
		},
	}

	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringArrayVar(&opts.Vars, "var", nil, "variable as KEY=VALUE (repeatable, overrides variables_json)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "fail when the prompt references a variable that was not supplied")

	return cmd
}

// noTrailingFlags rejects long flags given after the positionals. Flag
// parsing stops at <workflow_id>, so they would otherwise be taken as
// variables_json or base_dir.
func noTrailingFlags(cmd *cobra.Command, args []string) error {
	for _, arg := range args[min(len(args), 1):] {
		if len(arg) > 2 && strings.HasPrefix(arg, "--") {
			return usageError(cmd, fmt.Sprintf("flag %s must come before <workflow_id>", arg))
		}
	}
	return nil
}

func runPrompt(cmd *cobra.Command, opts *PromptOptions, args []string) error {
	index, err := strconv.Atoi(strings.TrimSpace(args[1]))
	if err != nil {
		return usageError(cmd, fmt.Sprintf("invalid step index %q", args[1]))
	}

	vars, err := parseVariables(optionalArg(args, 2))
	if err != nil {
		return err
	}
	for _, kv := range opts.Vars {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return usageError(cmd, fmt.Sprintf("invalid --var %q, want KEY=VALUE", kv))
		}
		vars[key] = value
	}

	baseDir, err := resolveBaseDir(optionalArg(args, 3))
	if err != nil {
		return err
	}

	var svcOpts []workflows.ServiceOption
	if opts.Strict {
		svcOpts = append(svcOpts, workflows.WithStrictPlaceholders())
	}
	svc := workflows.NewService(store.New(baseDir), svcOpts...)

	res, err := svc.Step(cmd.Context(), args[0], index, vars)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), res)
}

// parseVariables decodes the variables_json argument. It must be an object;
// strings are taken as-is, null is skipped and anything else is rendered as
// compact JSON.
func parseVariables(raw string) (map[string]string, error) {
	vars := map[string]string{}
	if strings.TrimSpace(raw) == "" {
		return vars, nil
	}

	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.UseNumber()

	var decoded any
	if err := decoder.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: invalid variables JSON: %v", pwferrors.ErrInvalid, err)
	}
	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: variables JSON must be an object", pwferrors.ErrInvalid)
	}

	for key, value := range obj {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			vars[key] = v
		case json.Number:
			vars[key] = v.String()
		case bool:
			vars[key] = strconv.FormatBool(v)
		default:
			var buf bytes.Buffer
			encoder := json.NewEncoder(&buf)
			encoder.SetEscapeHTML(false)
			if err := encoder.Encode(v); err != nil {
				return nil, fmt.Errorf("%w: variable %s: %v", pwferrors.ErrInvalid, key, err)
			}
			vars[key] = strings.TrimSpace(buf.String())
		}
	}
	return vars, nil
}
