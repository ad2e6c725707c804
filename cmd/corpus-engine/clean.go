// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/corpus-engine/internal/clean"
	"github.com/pdiddy/corpus-engine/pkg/types"
)

var cleanCmd = &cobra.Command{
	Use:   "clean <input-dir>",
	Short: "Score, clean and check tables for every document in a directory",
	Long: `Clean walks input-dir recursively, classifies every character of every
matching file against the allowed categories, and writes a CSV report with one
row per file: total characters, badness score, one column per category, and
table counts. With --output-dir the cleaned documents are written under it,
mirroring the input tree.

At least one of --csv and --output-dir is required. Files that cannot be read
or decoded are reported and skipped; the rest of the batch continues.`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd); err != nil {
		return err
	}
	cats, err := categoriesFromViper()
	if err != nil {
		return err
	}

	cfg := inputConfigFromViper()
	cfg.Categories = cats
	cfg.OutputDir = viper.GetString("output-dir")
	cfg.CSVPath = viper.GetString("csv")
	cfg.SummaryPath = viper.GetString("summary")
	cfg.Metric = types.CategoryMetric(viper.GetString("metric"))
	cfg.TableSource = types.TableSource(viper.GetString("table-source"))
	cfg.MarkMissing = viper.GetBool("mark-missing")
	cfg.Normalize = viper.GetBool("normalize")
	cfg.SkipFrontmatter = viper.GetBool("skip-frontmatter")

	ctx, stop := signalContext()
	defer stop()

	result, err := clean.Run(ctx, afero.NewOsFs(), args[0], cfg, os.Stdout)
	if err != nil {
		return err
	}
	if cfg.CSVPath != "" {
		fmt.Printf("Report: %s (%d rows)\n", cfg.CSVPath, result.Processed())
	}
	if result.Found == 0 {
		fmt.Fprintf(os.Stderr, "warning: no files matching %v under %s\n", cfg.ExtensionsOrDefault(), args[0])
	}
	return nil
}

func init() {
	addCategoryFlags(cleanCmd)
	addInputFlags(cleanCmd)
	cleanCmd.Flags().StringP("output-dir", "o", "", "directory for cleaned documents")
	cleanCmd.Flags().String("csv", "", "path of the CSV report")
	cleanCmd.Flags().String("summary", "", "path of an optional YAML batch summary")
	cleanCmd.Flags().String("metric", string(types.MetricPercentage), "category columns: percentage or count")
	cleanCmd.Flags().String("table-source", string(types.TablesCleaned), "text checked for tables: cleaned or original")
	cleanCmd.Flags().Bool("mark-missing", false, "append <!-- text-missing --> to lines that lost 5+ characters")
	cleanCmd.Flags().Bool("normalize", false, "apply Unicode NFC before classification")
	cleanCmd.Flags().Bool("skip-frontmatter", false, "exclude YAML frontmatter from metrics and copy it unchanged")

	rootCmd.AddCommand(cleanCmd)
}
