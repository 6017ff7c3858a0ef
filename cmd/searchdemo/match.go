package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	matchQuery string
	matchID    int
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a query against a single document",
	Long: `match reports which positive query terms are present in one
document's vocabulary, and its status. A negative term present in the
document empties the result.

Example:
  searchdemo match -q "fluffy cat" --id 1`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchQuery, "query", "q", "", "search query (required)")
	matchCmd.Flags().IntVar(&matchID, "id", 0, "document id to match against (required)")
	matchCmd.MarkFlagRequired("query")
	matchCmd.MarkFlagRequired("id")
}

func runMatch(cmd *cobra.Command, args []string) error {
	srv, err := loadServer()
	if err != nil {
		return err
	}

	terms, status, err := srv.Match(matchQuery, matchID)
	if err != nil {
		return fmt.Errorf("match: %w", err)
	}

	fmt.Printf("doc=%d status=%s terms=[%s]\n", matchID, status, strings.Join(terms, ", "))
	return nil
}
