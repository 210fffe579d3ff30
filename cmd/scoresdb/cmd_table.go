package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/scoresdb"
	"github.com/arloliu/scoresdb/beatmap"
	"github.com/arloliu/scoresdb/errs"
)

func newTableCmd(a *app) *cobra.Command {
	var oldInputs, newInputs []string
	var output string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Build a hash substitution table from old and new beatmap files",
		Long: "Scans the .osu files of the old and new version of a beatmap set and pairs\n" +
			"their MD5 hashes by BeatmapID. Each --old/--new value is a directory or a file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			oldPaths, err := listBeatmaps(oldInputs)
			if err != nil {
				return err
			}
			newPaths, err := listBeatmaps(newInputs)
			if err != nil {
				return err
			}

			scanOpts := []beatmap.Option{
				beatmap.WithWorkers(a.cfg.Scan.Workers),
				beatmap.WithLogger(a.logger),
			}
			oldSet, oldErrs := beatmap.Scan(cmd.Context(), oldPaths, scanOpts...)
			newSet, newErrs := beatmap.Scan(cmd.Context(), newPaths, scanOpts...)
			if err := cmd.Context().Err(); err != nil {
				return err
			}
			if skipped := len(oldErrs) + len(newErrs); skipped > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped %d beatmap file(s)\n", skipped)
			}

			table, err := beatmap.BuildTable(oldSet, newSet)
			if errors.Is(err, errs.ErrIdentitySetMismatch) {
				a.logger.Warn("beatmap IDs don't match up, some scores may not transfer", "error", err)
				fmt.Fprintln(cmd.ErrOrStderr(), "Beatmap IDs don't match up. Some may not transfer as expected!")
			} else if err != nil {
				return err
			}

			text := table.Format() + "\n"
			if output == "" {
				fmt.Fprint(cmd.OutOrStdout(), text)
				return nil
			}
			if err := scoresdb.WriteFile(output, []byte(text)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d substitution(s) to %s\n", table.Len(), output)

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&oldInputs, "old", nil, "old beatmap directory or .osu file (repeatable)")
	cmd.Flags().StringSliceVar(&newInputs, "new", nil, "new beatmap directory or .osu file (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the table to this file instead of stdout")
	_ = cmd.MarkFlagRequired("old")
	_ = cmd.MarkFlagRequired("new")

	return cmd
}

// listBeatmaps expands directories to the beatmap files they contain.
func listBeatmaps(inputs []string) ([]string, error) {
	var paths []string
	for _, in := range inputs {
		found, err := beatmap.ListFiles(in)
		if err != nil {
			return nil, err
		}
		paths = append(paths, found...)
	}

	return paths, nil
}
