package main

import (
	"fmt"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/orcatools/orcals/keywords"
)

const maxSearchResults = 10

func newKeywordsCmd() *cobra.Command {
	var listBlocks bool

	cmd := &cobra.Command{
		Use:   "keywords [query]",
		Short: "List or fuzzy-search the known ORCA keywords",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if listBlocks {
				printBlocks()
				return nil
			}
			if len(args) == 1 {
				return searchKeywords(args[0])
			}
			printKeywords()
			return nil
		},
	}

	cmd.Flags().BoolVar(&listBlocks, "blocks", false, "list settings-block names instead of keywords")

	return cmd
}

func printKeywords() {
	category := keywords.Category(-1)
	for i, k := range keywords.All() {
		if k.Category != category {
			if i > 0 {
				fmt.Println()
			}
			category = k.Category
			fmt.Printf("%s:\n", categoryHeading(category))
		}
		fmt.Printf("  %-18s %s\n", k.Name, describe(k))
	}
}

func searchKeywords(query string) error {
	all := keywords.All()
	names := make([]string, len(all))
	for i, k := range all {
		names[i] = k.Name
	}

	matches := fuzzy.Find(query, names)
	if len(matches) == 0 {
		return fmt.Errorf("no keywords match %q", query)
	}
	if len(matches) > maxSearchResults {
		matches = matches[:maxSearchResults]
	}

	for _, m := range matches {
		k := all[m.Index]
		fmt.Printf("%-18s %s\n", k.Name, describe(k))
	}
	return nil
}

func printBlocks() {
	for _, b := range keywords.Blocks() {
		fmt.Printf("  %-10s %s (example: %s)\n", "%"+b.Name, b.Description, b.Example)
	}
}

func describe(k keywords.Keyword) string {
	if k.Type != "" {
		return fmt.Sprintf("[%s] %s", k.Type, k.Description)
	}
	return k.Description
}

func categoryHeading(c keywords.Category) string {
	switch c {
	case keywords.DFTFunctional:
		return "DFT functionals"
	case keywords.WavefunctionMethod:
		return "Wavefunction methods"
	case keywords.BasisSet:
		return "Basis sets"
	case keywords.JobType:
		return "Job types"
	default:
		return "Keywords"
	}
}
