package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/chazuruo/progressive-workflow/internal/workflows"
	"github.com/chazuruo/progressive-workflow/internal/workflows/store"
	"github.com/chazuruo/progressive-workflow/internal/yamlite"
)

// ViewOptions contains the options for the view command.
type ViewOptions struct {
	Raw      bool
	Markdown bool
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	requiredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// NewViewCommand creates the view command.
func NewViewCommand() *cobra.Command {
	opts := &ViewOptions{}

	cmd := &cobra.Command{
		Use:   "view <workflow_id> [base_dir]",
		Short: "View workflow details",
		Long: `Display a workflow's name, description, args and step names.

Prompt contents are never shown; use "prompt" to reveal one step at a time.

Output formats:
- Default: Formatted display
- --raw: Print the normalized workflow.yaml
- --md: Print Markdown`,
		Args: rangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "print the normalized workflow.yaml")
	cmd.Flags().BoolVar(&opts.Markdown, "md", false, "print Markdown")

	return cmd
}

func runView(cmd *cobra.Command, opts *ViewOptions, args []string) error {
	baseDir, err := resolveBaseDir(optionalArg(args, 1))
	if err != nil {
		return err
	}

	svc := workflows.NewService(store.New(baseDir))
	out := cmd.OutOrStdout()

	if opts.Raw {
		doc, err := svc.Document(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printWorkflowRaw(out, doc)
	}

	def, err := svc.Definition(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if opts.Markdown {
		printWorkflowMarkdown(out, def)
		return nil
	}
	printWorkflowFormatted(out, def)
	return nil
}

// printWorkflowRaw prints the parsed document as YAML. Prompt paths are
// shown, prompt files are not read.
func printWorkflowRaw(w io.Writer, doc *yamlite.Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal workflow: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// printWorkflowMarkdown prints a workflow as Markdown.
func printWorkflowMarkdown(w io.Writer, def *workflows.Definition) {
	var sb strings.Builder

	sb.WriteString("# ")
	sb.WriteString(def.Name)
	sb.WriteString("\n\n")

	if def.Description != "" {
		sb.WriteString(def.Description)
		sb.WriteString("\n\n")
	}

	if len(def.Args) > 0 {
		sb.WriteString("## Arguments\n\n")
		for _, arg := range def.Args {
			sb.WriteString("- **")
			sb.WriteString(arg.Name)
			sb.WriteString("**")
			if arg.Required {
				sb.WriteString(" (required)")
			}
			if arg.Description != "" {
				sb.WriteString(": ")
				sb.WriteString(arg.Description)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Steps\n\n")
	for i, name := range def.StepNames() {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, name))
	}

	fmt.Fprint(w, sb.String())
}

// printWorkflowFormatted prints a workflow as styled text.
func printWorkflowFormatted(w io.Writer, def *workflows.Definition) {
	fmt.Fprintln(w, titleStyle.Render(def.Name)+" "+dimStyle.Render("("+def.ID+")"))
	if def.Description != "" {
		fmt.Fprintln(w, def.Description)
	}

	if len(def.Args) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, sectionStyle.Render("Args:"))
		for _, arg := range def.Args {
			line := "  " + arg.Name
			if arg.Required {
				line += " " + requiredStyle.Render("*")
			}
			if arg.Description != "" {
				line += "  " + dimStyle.Render(arg.Description)
			}
			fmt.Fprintln(w, line)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, sectionStyle.Render(fmt.Sprintf("Steps (%d):", len(def.Steps))))
	for i, name := range def.StepNames() {
		fmt.Fprintf(w, "  %d. %s\n", i, name)
	}

	if err := def.Validate(); err != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, requiredStyle.Render("Not runnable: "+err.Error()))
	}
}
