// Package main provides the entry point for the trees CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/treekit/trees/cmd/trees/commands"
)

// version is stamped at build time.
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "trees",
		Short: "Balanced search tree toolkit",
		Long: `Build, render and compare balanced search trees.

Commands:
  print     Insert keys into a tree variant and render it
  bench     Compare insert, search and delete across the variants`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewPrintCommand())
	rootCmd.AddCommand(commands.NewBenchCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "trees %s\n", version)
		},
	}
}
