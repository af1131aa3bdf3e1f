// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-registry/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent tool calls from the call log",
	Long: `History lists recent tool invocations recorded by "call", newest
first, with their parameters, outcome, and duration.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of calls to show")
	historyCmd.Flags().Bool("json", false, "output the call log as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := history.Open(cfg.HistoryPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(context.Background(), limit)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No calls recorded.")
		return nil
	}

	for _, e := range entries {
		status := "ok"
		if !e.OK {
			status = "error"
		}
		params := ""
		if len(e.Params) > 0 {
			if data, err := json.Marshal(e.Params); err == nil {
				params = " " + string(data)
			}
		}
		fmt.Printf("%s  %-6s %-36s %8s%s\n",
			e.CalledAt.Local().Format("2006-01-02 15:04:05"),
			status, e.Tool, e.Duration.Round(time.Millisecond), params)
		if !e.OK && e.Error != "" {
			fmt.Printf("%s%s\n", strings.Repeat(" ", 21), e.Error)
		}
	}
	return nil
}
