package main

import (
	"os"

	"github.com/chazuruo/progressive-workflow/internal/cli"
)

// Version is set at build time using ldflags
var Version = "dev"

// Commit is set at build time using ldflags
var Commit = "unknown"

// Date is set at build time using ldflags
var Date = "unknown"

func main() {
	rootCmd := cli.NewRootCommand(cli.VersionInfo{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
	})
	os.Exit(cli.Execute(rootCmd))
}
