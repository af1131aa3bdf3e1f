// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-registry/internal/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the available registry tools",
	Long: `Tools lists every tool the harness can call, with a description and
an example parameter object for each.`,
	RunE: runTools,
}

func init() {
	toolsCmd.Flags().Bool("json", false, "output the tool table as JSON")

	rootCmd.AddCommand(toolsCmd)
}

func runTools(cmd *cobra.Command, args []string) error {
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		type entry struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			ParamHint   string `json:"param_hint"`
		}
		table := make([]entry, 0, len(tools.All()))
		for _, t := range tools.All() {
			table = append(table, entry{t.Name, t.Description, t.ParamHint})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(table)
	}

	for _, t := range tools.All() {
		fmt.Printf("%s\n    %s\n    params: %s\n", t.Name, t.Description, t.ParamHint)
	}
	return nil
}
