package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arloliu/scoresdb"
	"github.com/arloliu/scoresdb/codec"
	"github.com/arloliu/scoresdb/format"
	"github.com/arloliu/scoresdb/record"
	"github.com/arloliu/scoresdb/substitute"
)

func newApplyCmd(a *app) *cobra.Command {
	var dbPath, tablePath, output, backup string
	var inPlace, dedupe bool

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply a hash substitution table to scores.db",
		Long: "Moves the scores of every old hash in the table onto its new hash.\n" +
			"The result is written to --output, or over --db with --in-place after a backup.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := applyTarget(dbPath, output, inPlace)
			if err != nil {
				return err
			}

			ct, err := a.cfg.BackupCompression()
			if cmd.Flags().Changed("backup") {
				ct, err = format.ParseCompressionType(backup)
			}
			if err != nil {
				return fmt.Errorf("--backup: %w", err)
			}

			table, err := substitute.ReadTableFile(tablePath)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(dbPath)
			if err != nil {
				return err
			}

			db, err := codec.Decode(data, codec.WithLogger(a.logger))
			if err != nil {
				return fmt.Errorf("%s: %w", dbPath, err)
			}

			report := substitute.Apply(db, table, substitute.WithLogger(a.logger))
			for _, hash := range report.Collisions {
				a.logger.Warn("several beatmaps were moved onto one hash", "hash", hash)
			}
			if len(report.Unmatched) > 0 {
				a.logger.Info("table entries without scores", "count", len(report.Unmatched))
			}

			removed := 0
			if dedupe {
				removed = dedupeDestinations(db, table)
			}

			out, err := codec.Encode(db,
				codec.WithLogger(a.logger),
				codec.WithChunkSize(a.cfg.Encode.ChunkSize),
				codec.WithProgress(func(done, total int) {
					a.logger.Debug("writing maps", "done", done, "total", total)
				}),
			)
			if err != nil {
				return err
			}

			if inPlace {
				path, stats, err := scoresdb.WriteBackup(dbPath, data, scoresdb.BackupOptions{
					Compression: ct,
					Dir:         a.cfg.Backup.Dir,
				})
				if err != nil {
					return fmt.Errorf("backup failed, %s left unchanged: %w", dbPath, err)
				}
				a.logger.Info("backup written", "path", path,
					"compression", ct, "savings", fmt.Sprintf("%.1f%%", stats.SpaceSavings()))
				fmt.Fprintf(cmd.OutOrStdout(), "backup: %s\n", path)
			}

			if err := scoresdb.WriteFile(target, out); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "moved %d beatmap(s), %d score(s), %d merged into existing beatmaps\n",
				report.Moved, report.ScoresMoved, report.Merged)
			if dedupe {
				fmt.Fprintf(cmd.OutOrStdout(), "removed %d duplicate score(s)\n", removed)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d beatmaps, %d scores)\n",
				target, db.Len(), db.ScoreCount())

			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "scores.db to read")
	cmd.Flags().StringVar(&tablePath, "table", "", "hash substitution table (JSON, comments allowed)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write the re-keyed database to")
	cmd.Flags().StringVar(&backup, "backup", "", "backup compression for --in-place: zstd, s2, lz4 or none (default from config)")
	cmd.Flags().BoolVar(&inPlace, "in-place", false, "overwrite --db after writing a backup")
	cmd.Flags().BoolVar(&dedupe, "dedupe", false, "drop repeated scores from beatmaps that received moved scores")
	_ = cmd.MarkFlagRequired("db")
	_ = cmd.MarkFlagRequired("table")
	cmd.MarkFlagsMutuallyExclusive("output", "in-place")

	return cmd
}

// dedupeDestinations removes repeated scores from every group that is the
// destination of a table entry and returns the number of scores removed.
func dedupeDestinations(db *record.Database, table *substitute.Table) int {
	removed := 0
	seen := make(map[string]struct{}, table.Len())
	for _, dst := range table.Entries() {
		if _, ok := seen[dst]; ok {
			continue
		}
		seen[dst] = struct{}{}

		if group, ok := db.Get(dst); ok {
			removed += group.Dedupe()
		}
	}

	return removed
}

// applyTarget returns the path the re-keyed database is written to. The
// input database is only overwritten with --in-place.
func applyTarget(dbPath, output string, inPlace bool) (string, error) {
	if inPlace {
		return dbPath, nil
	}
	if output == "" {
		return "", errors.New("--output is required unless --in-place is set")
	}

	same, err := samePath(dbPath, output)
	if err != nil {
		return "", err
	}
	if same {
		return "", errors.New("--output names the input database; use --in-place to overwrite it")
	}

	return output, nil
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	if absA == absB {
		return true, nil
	}

	infoA, errA := os.Stat(absA)
	infoB, errB := os.Stat(absB)
	if errA != nil || errB != nil {
		return false, nil
	}

	return os.SameFile(infoA, infoB), nil
}
