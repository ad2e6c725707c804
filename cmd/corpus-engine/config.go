// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/corpus-engine/internal/script"
	"github.com/pdiddy/corpus-engine/pkg/types"
)

// addCategoryFlags registers the flags that select allowed categories.
func addCategoryFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("categories", []string{"greek", "latin"}, "allowed categories in report order (see 'corpus-engine scripts')")
	cmd.Flags().Bool("no-base", false, "do not add punctuation, numbers and common_symbols automatically")
}

// addInputFlags registers the flags shared by commands that walk a directory.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("workers", "w", 0, "worker pool size (0 = all CPUs)")
	cmd.Flags().StringSlice("ext", types.DefaultExtensions, "file extensions to process")
	cmd.Flags().String("encoding", "utf-8", "input encoding: utf-8, iso-8859-7, windows-1253, windows-1252, iso-8859-1")
}

// bindFlags binds the running command's flags so config file and
// CORPUS_ENGINE_* values apply when a flag is not given.
func bindFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}

// stringList reads a list setting. Values from the environment or a config
// file arrive as one string and are split on commas.
func stringList(key string) []string {
	var out []string
	for _, v := range viper.GetStringSlice(key) {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// categoriesFromViper returns the configured categories in canonical form,
// with the base categories appended unless no-base is set.
func categoriesFromViper() ([]string, error) {
	cats, err := script.ParseCategories(stringList("categories"))
	if err != nil {
		return nil, err
	}
	if !viper.GetBool("no-base") {
		cats = script.WithBase(cats)
	}
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.String()
	}
	return names, nil
}

// inputConfigFromViper fills the directory-walk settings.
func inputConfigFromViper() types.CleaningConfig {
	return types.CleaningConfig{
		Workers:       viper.GetInt("workers"),
		Extensions:    stringList("ext"),
		InputEncoding: viper.GetString("encoding"),
	}
}

// signalContext is cancelled on SIGINT or SIGTERM so a batch stops
// dispatching new files and still writes its report.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
