// Command get_workflow_args prints a workflow's argument declarations as JSON.
package main

import (
	"os"

	"github.com/chazuruo/progressive-workflow/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.Standalone("get_workflow_args", cli.NewArgsCommand())))
}
