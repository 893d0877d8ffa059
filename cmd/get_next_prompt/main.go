// Command get_next_prompt prints one workflow step as JSON.
package main

import (
	"os"

	"github.com/chazuruo/progressive-workflow/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.Standalone("get_next_prompt", cli.NewPromptCommand())))
}
