// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/corpus-engine/internal/script"
)

var scriptsCmd = &cobra.Command{
	Use:   "scripts",
	Short: "List the character categories and their aliases",
	Long: `Scripts lists every category accepted by --categories, in the order used to
resolve characters that belong to more than one set. Whitespace is always
kept; any character outside the allowed categories is counted as other.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "%-16s  %s\n", "Category", "Aliases")
		fmt.Fprintln(os.Stdout, strings.Repeat("-", 40))
		for _, info := range script.Available() {
			fmt.Fprintf(os.Stdout, "%-16s  %s\n", info.Name, strings.Join(info.Aliases, ", "))
		}
	},
}

func init() {
	rootCmd.AddCommand(scriptsCmd)
}
