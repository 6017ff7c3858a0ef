package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeID int

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a document from the seeded corpus",
	Long: `remove seeds the corpus, deletes one document by id, and reports
the resulting live document count.

Example:
  searchdemo remove --id 1`,
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().IntVar(&removeID, "id", 0, "document id to remove (required)")
	removeCmd.MarkFlagRequired("id")
}

func runRemove(cmd *cobra.Command, args []string) error {
	srv, err := loadServer()
	if err != nil {
		return err
	}

	before := srv.DocumentCount()
	srv.Remove(removeID)
	after := srv.DocumentCount()

	fmt.Printf("doc=%d removed: %d -> %d live documents\n", removeID, before, after)
	return nil
}
