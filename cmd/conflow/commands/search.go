package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"conflow/internal/confluence"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <cql>",
	Short: "Search content with a CQL query",
	Long: `Run a Confluence Query Language search and print the matching
content. The query is passed verbatim to the search endpoint.`,
	Example: `  conflow search 'text ~ "runbook"'
  conflow search 'space = DOCS AND label = "howto"' -l 10`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	client, _, err := loadClient(false)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	results, err := client.SearchCQL(args[0], confluence.SearchOptions{Limit: searchLimit})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	for _, hit := range results.Results {
		title := hit.Title
		if title == "" {
			title = hit.Content.Title
		}
		fmt.Printf("%s\t%s\n", hit.Content.ID, title)
	}
	fmt.Printf("\n%d of %d results\n", len(results.Results), results.TotalSize)
	return nil
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 25, "Maximum number of results")
}
