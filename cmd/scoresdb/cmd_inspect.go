package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/arloliu/scoresdb/codec"
	"github.com/arloliu/scoresdb/format"
	"github.com/arloliu/scoresdb/record"
)

func newInspectCmd(a *app) *cobra.Command {
	var dbPath string
	var duplicates bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print a summary of scores.db",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(dbPath)
			if err != nil {
				return err
			}

			db, err := codec.Decode(data, codec.WithLogger(a.logger))
			if err != nil {
				return fmt.Errorf("%s: %w", dbPath, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version:  %d\n", db.Version)
			fmt.Fprintf(out, "beatmaps: %d\n", db.Len())
			fmt.Fprintf(out, "scores:   %d\n", db.ScoreCount())

			counts := modeCounts(db)
			modes := make([]format.GameMode, 0, len(counts))
			for mode := range counts {
				modes = append(modes, mode)
			}
			slices.Sort(modes)
			for _, mode := range modes {
				fmt.Fprintf(out, "  %-8s %d\n", mode.String()+":", counts[mode])
			}

			if duplicates {
				fmt.Fprintf(out, "duplicates: %d\n", duplicateCount(db))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "scores.db to read")
	cmd.Flags().BoolVar(&duplicates, "duplicates", false, "also count duplicate scores within each beatmap")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func modeCounts(db *record.Database) map[format.GameMode]int {
	counts := make(map[format.GameMode]int)
	for _, b := range db.All() {
		for i := range b.Scores {
			counts[b.Scores[i].Mode]++
		}
	}

	return counts
}

func duplicateCount(db *record.Database) int {
	n := 0
	for _, b := range db.All() {
		n += len(b.Duplicates())
	}

	return n
}
