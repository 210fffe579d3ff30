package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/scoresdb"
	"github.com/arloliu/scoresdb/codec"
)

func newRestoreCmd(a *app) *cobra.Command {
	var backupPath, output string

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore scores.db from a backup written by apply --in-place",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := scoresdb.ReadBackup(backupPath)
			if err != nil {
				return err
			}

			db, err := codec.Decode(data, codec.WithLogger(a.logger))
			if err != nil {
				return fmt.Errorf("backup %s does not hold a valid scores.db: %w", backupPath, err)
			}

			if err := scoresdb.WriteFile(output, data); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "restored %s (%d beatmaps, %d scores)\n",
				output, db.Len(), db.ScoreCount())

			return nil
		},
	}

	cmd.Flags().StringVar(&backupPath, "backup", "", "backup file (.bak, .bak.zst, .bak.s2 or .bak.lz4)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "path to write the restored scores.db to")
	_ = cmd.MarkFlagRequired("backup")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
