package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wizenheimer/searchcore"
)

var (
	findQuery  string
	findStatus string
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Rank the seeded corpus against a query",
	Long: `find parses a query (plus and minus terms, ASCII-space separated)
and ranks the seeded corpus by TF-IDF relevance.

Examples:
  searchdemo find -q "fluffy kind cat"
  searchdemo find -q "cat -dog" --status ACTUAL`,
	RunE: runFind,
}

func init() {
	findCmd.Flags().StringVarP(&findQuery, "query", "q", "", "search query (required)")
	findCmd.Flags().StringVar(&findStatus, "status", "", "restrict to this status instead of the default ACTUAL filter")
	findCmd.MarkFlagRequired("query")
}

func runFind(cmd *cobra.Command, args []string) error {
	srv, err := loadServer()
	if err != nil {
		return err
	}

	var results []search.Result
	if findStatus != "" {
		results, err = srv.FindTopStatus(findQuery, search.Status(findStatus))
	} else {
		results, err = srv.FindTop(findQuery)
	}
	if err != nil {
		return fmt.Errorf("find: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("no matching documents")
		return nil
	}
	for i, r := range results {
		fmt.Printf("%d. doc=%d relevance=%.6f rating=%d\n", i+1, r.ID, r.Relevance, r.Rating)
	}
	return nil
}
