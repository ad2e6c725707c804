// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/corpus-engine/internal/quality"
	"github.com/pdiddy/corpus-engine/internal/script"
	"github.com/pdiddy/corpus-engine/internal/tables"
	"github.com/pdiddy/corpus-engine/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Check the tables (and optionally scripts) of a single string",
	Long: `Analyze runs the table validator on one piece of text without touching
any directory. The text comes from the argument, from --file, or from stdin.

With --scripts the text is also scored against --categories and the badness
score and per-category counts are printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

// analyzeOutput is the --json shape.
type analyzeOutput struct {
	TotalTables     int                 `json:"total_tables"`
	MalformedTables int                 `json:"malformed_tables"`
	GFMTables       int                 `json:"gfm_tables"`
	Tables          []types.TableRecord `json:"tables"`
	Issues          []types.TableIssue  `json:"issues"`
	Scripts         *scriptsOutput      `json:"scripts,omitempty"`
}

type scriptsOutput struct {
	TotalChars int                   `json:"total_chars"`
	Badness    float64               `json:"badness"`
	Counts     []types.CategoryCount `json:"counts"`
	GlyphTags  int                   `json:"glyph_tags"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd); err != nil {
		return err
	}
	text, err := analyzeInput(cmd, args)
	if err != nil {
		return err
	}

	ta := tables.Analyze(text)
	out := analyzeOutput{
		TotalTables:     ta.Total(),
		MalformedTables: ta.Malformed(),
		GFMTables:       tables.CountGFM(text),
		Tables:          ta.Tables,
		Issues:          ta.Issues,
	}

	if viper.GetBool("scripts") {
		names, err := categoriesFromViper()
		if err != nil {
			return err
		}
		c, err := script.NewClassifierFromNames(names)
		if err != nil {
			return err
		}
		res := quality.Analyze(text, c, quality.Options{})
		out.Scripts = &scriptsOutput{
			TotalChars: res.Total,
			Badness:    res.Badness(),
			Counts:     res.Counts(),
			GlyphTags:  quality.CountGlyphTags(text),
		}
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	printAnalysis(os.Stdout, out)
	return nil
}

// analyzeInput picks the text from the argument, --file or stdin, in that order.
func analyzeInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func printAnalysis(w io.Writer, out analyzeOutput) {
	fmt.Fprintf(w, "Tables: %d total, %d malformed (GFM parser sees %d)\n",
		out.TotalTables, out.MalformedTables, out.GFMTables)
	for _, is := range out.Issues {
		if is.Expected > 0 || is.Found > 0 {
			fmt.Fprintf(w, "  line %d: %s (expected %d, found %d)\n", is.Line, is.Description, is.Expected, is.Found)
		} else {
			fmt.Fprintf(w, "  line %d: %s\n", is.Line, is.Description)
		}
	}

	if out.Scripts == nil {
		return
	}
	s := out.Scripts
	fmt.Fprintf(w, "\nCharacters: %d, badness %.3f, glyph tags %d\n", s.TotalChars, s.Badness, s.GlyphTags)
	fmt.Fprintf(w, "%-16s  %8s  %8s\n", "Category", "Count", "Percent")
	fmt.Fprintln(w, strings.Repeat("-", 36))
	for _, c := range s.Counts {
		pct := 0.0
		if s.TotalChars > 0 {
			pct = float64(c.Count) / float64(s.TotalChars) * 100
		}
		fmt.Fprintf(w, "%-16s  %8d  %7.2f%%\n", c.Category, c.Count, pct)
	}
}

func init() {
	analyzeCmd.Flags().StringP("file", "f", "", "read text from a file instead of the argument")
	analyzeCmd.Flags().Bool("json", false, "output as JSON")
	analyzeCmd.Flags().Bool("scripts", false, "also report script categories and badness")
	addCategoryFlags(analyzeCmd)

	rootCmd.AddCommand(analyzeCmd)
}
