package main

import (
	"github.com/spf13/cobra"
)

var seedFile string

var rootCmd = &cobra.Command{
	Use:   "searchdemo",
	Short: "Example driver for the searchcore in-memory search engine",
	Long: `searchdemo seeds an in-memory Server from a YAML corpus fixture and
runs a single add/find/match/remove/dedup operation against it.

Example usage:
  searchdemo find -q "fluffy kind cat"                # rank the seeded corpus
  searchdemo match -q "fluffy cat" --id 1              # match one document
  searchdemo dedup                                     # report vocabulary duplicates
  searchdemo --seed-file mine.yaml find -q "cat -dog"  # use a custom corpus`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&seedFile, "seed-file", "", "YAML corpus fixture (default: the embedded cmd/searchdemo/testdata/docs.yaml)")
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(dedupCmd)
}
