// Command get_workflow_catalog prints the workflows catalog as JSON.
package main

import (
	"os"

	"github.com/chazuruo/progressive-workflow/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.Standalone("get_workflow_catalog", cli.NewCatalogCommand())))
}
