package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wizenheimer/searchcore/dedup"
)

var dedupCmd = &cobra.Command{
	Use:   "dedup",
	Short: "Report and remove vocabulary duplicates from the seeded corpus",
	Long: `dedup seeds the corpus and removes every document whose surviving
vocabulary (after stop words) exactly matches an earlier document's.

Example:
  searchdemo dedup`,
	RunE: runDedup,
}

func runDedup(cmd *cobra.Command, args []string) error {
	srv, err := loadServer()
	if err != nil {
		return err
	}

	before := srv.DocumentCount()
	dedup.RemoveDuplicates(srv, dedup.WithNotice(func(id int) {
		fmt.Printf("removed duplicate doc=%d\n", id)
	}))
	after := srv.DocumentCount()

	fmt.Printf("%d -> %d live documents\n", before, after)
	return nil
}
