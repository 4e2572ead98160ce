package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"CarbonFootprintTracker/internal/records"

	"github.com/spf13/cobra"
)

var recordsCmd = &cobra.Command{
	Use:   "records <username>",
	Short: "Print the cleaned survey records of a user as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := openBackends(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer b.Close()

		recs, err := b.service.FetchRecords(cmd.Context(), args[0])
		if err != nil {
			if errors.Is(err, records.ErrNotFound) {
				fmt.Fprintln(os.Stderr, records.MsgNotFound)
			}
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	},
}
