// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/corpus-engine/internal/clean"
	"github.com/pdiddy/corpus-engine/pkg/types"
)

var tablesCmd = &cobra.Command{
	Use:   "tables <input-dir>",
	Short: "Write a table summary CSV for a directory",
	Long: `Tables checks every markdown pipe table in the matching files under input-dir
and writes file,total_tables,malformed_tables rows to --csv. The original text
is checked; nothing is cleaned or written besides the report.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd); err != nil {
			return err
		}
		cfg := inputConfigFromViper()
		cfg.Report = types.ReportTables
		cfg.TableSource = types.TablesOriginal
		cfg.CSVPath = viper.GetString("csv")

		ctx, stop := signalContext()
		defer stop()

		_, err := clean.Run(ctx, afero.NewOsFs(), args[0], cfg, os.Stdout)
		return err
	},
}

func init() {
	addInputFlags(tablesCmd)
	tablesCmd.Flags().String("csv", "table_summary.csv", "path of the table summary CSV")

	rootCmd.AddCommand(tablesCmd)
}
