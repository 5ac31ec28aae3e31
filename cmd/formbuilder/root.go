package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "formbuilder",
	Short: "Build, edit and preview form schemas",
	Long: `formbuilder manages form schema files: seed them from OpenAPI documents,
edit them interactively, validate captured values and render HTML previews.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
