// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the corpus-engine CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/corpus-engine/internal/envfile"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the corpus-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "corpus-engine",
	Short: "Clean and score markdown corpora by script",
	Long: `corpus-engine measures and cleans large directories of markdown documents,
typically OCR or PDF extraction output. Every character is classified into a
script or structural category; characters outside the allowed categories are
dropped and counted towards the document's badness score. Markdown pipe tables
are checked for column consistency.

Use clean for a full quality report and cleaned copies, tables for a table-only
summary, and analyze to inspect a single string or file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envPath, _ := cmd.Flags().GetString("env-file")
		n, err := envfile.LoadAndApply(envPath)
		if err != nil {
			return err
		}
		if n > 0 {
			fmt.Fprintf(os.Stderr, "Loaded %d variable(s) from %s\n", n, envPath)
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./corpus-engine.yaml or ~/.config/corpus-engine/config.yaml)")
	rootCmd.PersistentFlags().String("env-file", envfile.DefaultFile, "dotenv file with CORPUS_ENGINE_* settings")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log per-file diagnostics to stderr")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("corpus-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "corpus-engine"))
		}
	}

	viper.SetEnvPrefix("CORPUS_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
