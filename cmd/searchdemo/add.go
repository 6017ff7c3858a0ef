package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wizenheimer/searchcore"
)

var (
	addID      int
	addText    string
	addStatus  string
	addRatings []int
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a document to the seeded corpus and report its word frequencies",
	Long: `add seeds the corpus, indexes one additional document, then
prints its computed term frequencies.

Example:
  searchdemo add --id 10 --text "fluffy fluffy dog" --status ACTUAL --rating 5 --rating -2`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().IntVar(&addID, "id", 0, "document id (required)")
	addCmd.Flags().StringVar(&addText, "text", "", "document text (required)")
	addCmd.Flags().StringVar(&addStatus, "status", string(search.Actual), "document status")
	addCmd.Flags().IntSliceVar(&addRatings, "rating", nil, "rating value, may be repeated")
	addCmd.MarkFlagRequired("text")
}

func runAdd(cmd *cobra.Command, args []string) error {
	srv, err := loadServer()
	if err != nil {
		return err
	}

	if err := srv.Add(addID, addText, search.Status(addStatus), addRatings); err != nil {
		return fmt.Errorf("add: %w", err)
	}

	freqs := srv.WordFrequencies(addID)
	fmt.Printf("doc=%d indexed, %d documents live\n", addID, srv.DocumentCount())
	for term, tf := range freqs {
		fmt.Printf("  %s: %.6f\n", term, tf)
	}
	return nil
}
