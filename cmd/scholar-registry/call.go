// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-registry/internal/history"
	"github.com/pdiddy/scholar-registry/internal/tools"
)

var callCmd = &cobra.Command{
	Use:   "call <tool> [json-params]",
	Short: "Invoke one registry tool and print the result",
	Long: `Call invokes a named tool with JSON parameters and prints the rendered
result. Failures are printed as a single "Error: ..." line and the
command exits non-zero.

Parameters come from the second argument as a JSON object, or from a
saved YAML file via --params-file. Use --save to write the invocation
to a file for later replay.

Examples:
  scholar-registry call search_publications_by_identifier '{"identifier": "0000-0002-1825-0097"}'
  scholar-registry call get_grant_by_number '{"project_number": "5R01HG000000-04"}'
  scholar-registry call compute_distance --params-file trip.yaml`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCall,
}

func init() {
	callCmd.Flags().String("params-file", "", "load tool name and parameters from a saved YAML file")
	callCmd.Flags().String("save", "", "save this invocation to a YAML file for later replay")
	callCmd.Flags().Bool("no-history", false, "do not record this call in the history database")

	rootCmd.AddCommand(callCmd)
}

func runCall(cmd *cobra.Command, args []string) error {
	name := args[0]

	params, err := callParams(cmd, args)
	if err != nil {
		return err
	}

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		if err := tools.WriteParamFile(savePath, name, params); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved invocation to %s\n", savePath)
	}

	if _, ok := tools.Lookup(name); !ok {
		return fmt.Errorf("unknown tool %q: run \"scholar-registry tools\" for the list", name)
	}

	noHistory, _ := cmd.Flags().GetBool("no-history")
	return invokeTool(name, params, !noHistory)
}

// invokeTool runs one tool against the configured registries, prints the
// rendered result, and optionally records the call in the history
// database.
func invokeTool(name string, params tools.Params, record bool) error {
	cfg := buildConfig()
	deps := tools.NewDeps(cfg)

	start := time.Now()
	result := tools.Call(context.Background(), deps, name, params)
	elapsed := time.Since(start)

	failed := strings.HasPrefix(result, "Error: ")

	if record {
		e := history.Entry{
			Tool:     name,
			Params:   params,
			OK:       !failed,
			Duration: elapsed,
		}
		if failed {
			e.Error = strings.TrimPrefix(result, "Error: ")
		}
		recordCall(cfg.HistoryPath, e)
	}

	fmt.Println(result)
	if failed {
		return fmt.Errorf("tool call failed")
	}
	return nil
}

// callParams resolves parameters from --params-file or the JSON
// argument. A params file also pins the tool name, so the positional
// tool must match when both are given.
func callParams(cmd *cobra.Command, args []string) (tools.Params, error) {
	if path, _ := cmd.Flags().GetString("params-file"); path != "" {
		pf, err := tools.ReadParamFile(path)
		if err != nil {
			return nil, err
		}
		if pf.Tool != args[0] {
			return nil, fmt.Errorf("params file %s is for tool %q, not %q", path, pf.Tool, args[0])
		}
		return tools.Params(pf.Params), nil
	}

	raw := ""
	if len(args) > 1 {
		raw = args[1]
	}
	params, err := tools.ParseParams(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing parameters: %w", err)
	}
	return params, nil
}

func recordCall(path string, e history.Entry) {
	store, err := history.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open history database: %v\n", err)
		return
	}
	defer store.Close()
	if err := store.Record(context.Background(), e); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record call: %v\n", err)
	}
}
