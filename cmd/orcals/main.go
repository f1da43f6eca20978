package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "orcals",
		Short: "Language server and lint tool for ORCA input files",
	}

	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newKeywordsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
