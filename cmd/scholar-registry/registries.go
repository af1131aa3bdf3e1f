// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-registry/internal/tools"
)

// Convenience subcommands, one per tool family. Each is a thin wrapper
// over the same tool table the harness calls through "call".

var publicationsCmd = &cobra.Command{
	Use:   "publications <identifier>",
	Short: "Search publications by author identifier or term",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		maxResults, _ := cmd.Flags().GetInt("max-results")
		index, _ := cmd.Flags().GetInt("index")
		params := tools.Params{"identifier": strings.Join(args, " ")}
		if cmd.Flags().Changed("index") {
			params["index"] = index
			return invokeTool("get_publication_detail", params, true)
		}
		params["max_results"] = maxResults
		return invokeTool("search_publications_by_identifier", params, true)
	},
}

var grantsCmd = &cobra.Command{
	Use:   "grants",
	Short: "Search grants by investigator or organization, or fetch one by number",
}

var grantsInvestigatorCmd = &cobra.Command{
	Use:   "investigator <name>",
	Short: "Search grants by principal investigator name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		maxResults, _ := cmd.Flags().GetInt("max-results")
		return invokeTool("search_grants_by_investigator", tools.Params{
			"name": strings.Join(args, " "), "max_results": maxResults,
		}, true)
	},
}

var grantsOrganizationCmd = &cobra.Command{
	Use:   "organization <name>",
	Short: "Search grants by recipient organization name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		maxResults, _ := cmd.Flags().GetInt("max-results")
		return invokeTool("search_grants_by_organization", tools.Params{
			"name": strings.Join(args, " "), "max_results": maxResults,
		}, true)
	},
}

var grantsGetCmd = &cobra.Command{
	Use:   "get <project-number>",
	Short: "Fetch one grant by project number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invokeTool("get_grant_by_number", tools.Params{"project_number": args[0]}, true)
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile <orcid-id>",
	Short: "Aggregate a researcher profile from an ORCID iD",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invokeTool("get_researcher_profile", tools.Params{"identifier": args[0]}, true)
	},
}

var geocodeCmd = &cobra.Command{
	Use:   "geocode <address>",
	Short: "Geocode a one-line street address",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invokeTool("geocode_address", tools.Params{"address": strings.Join(args, " ")}, true)
	},
}

var distanceCmd = &cobra.Command{
	Use:   "distance",
	Short: "Driving distance in kilometers between two addresses",
	RunE: func(cmd *cobra.Command, args []string) error {
		origin, _ := cmd.Flags().GetString("from")
		destination, _ := cmd.Flags().GetString("to")
		return invokeTool("compute_distance", tools.Params{
			"origin": origin, "destination": destination,
		}, true)
	},
}

var screeningCmd = &cobra.Command{
	Use:   "screening",
	Short: "Search the consolidated export screening list",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := tools.Params{}
		if v, _ := cmd.Flags().GetString("name"); v != "" {
			params["name"] = v
		}
		if v, _ := cmd.Flags().GetStringSlice("country"); len(v) > 0 {
			params["countries"] = v
		}
		if v, _ := cmd.Flags().GetString("city"); v != "" {
			params["city"] = v
		}
		if v, _ := cmd.Flags().GetString("state"); v != "" {
			params["state"] = v
		}
		return invokeTool("search_screening_list", params, true)
	},
}

func init() {
	publicationsCmd.Flags().Int("max-results", 10, "maximum number of publications to return")
	publicationsCmd.Flags().Int("index", 0, "fetch one publication by search index instead of listing")

	grantsInvestigatorCmd.Flags().Int("max-results", 10, "maximum number of grants to return")
	grantsOrganizationCmd.Flags().Int("max-results", 10, "maximum number of grants to return")
	grantsCmd.AddCommand(grantsInvestigatorCmd, grantsOrganizationCmd, grantsGetCmd)

	distanceCmd.Flags().String("from", "", "origin address")
	distanceCmd.Flags().String("to", "", "destination address")
	distanceCmd.MarkFlagRequired("from")
	distanceCmd.MarkFlagRequired("to")

	screeningCmd.Flags().String("name", "", "entity name to screen")
	screeningCmd.Flags().StringSlice("country", nil, "filter by country code (repeatable)")
	screeningCmd.Flags().String("city", "", "filter by address city")
	screeningCmd.Flags().String("state", "", "filter by address state")

	rootCmd.AddCommand(publicationsCmd, grantsCmd, profileCmd, geocodeCmd, distanceCmd, screeningCmd)
}
