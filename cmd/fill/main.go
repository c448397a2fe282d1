package main

import (
	"context"
	"fmt"
	"os"

	"github.com/chazuruo/fill/internal/cli"
)

// Version is set at build time using ldflags
var Version = "dev"

// Commit is set at build time using ldflags
var Commit = "unknown"

// Date is set at build time using ldflags
var Date = "unknown"

func main() {
	rootCmd := cli.NewRootCommand(cli.NewVersionInfo(Version, Commit, Date))

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
