package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var spacesKey string

var spacesCmd = &cobra.Command{
	Use:   "spaces",
	Short: "List Confluence spaces",
	Long: `List the spaces visible to the configured user, or show a single
space with --key.`,
	Example: `  conflow spaces             # List all spaces
  conflow spaces -k DOCS     # Show one space`,
	RunE: runSpaces,
}

func runSpaces(cmd *cobra.Command, args []string) error {
	client, _, err := loadClient(false)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if spacesKey != "" {
		space, err := client.GetSpace(spacesKey)
		if err != nil {
			return fmt.Errorf("failed to get space: %w", err)
		}
		fmt.Printf("%s\t%s\n", space.Key, space.Name)
		return nil
	}

	spaces, err := client.GetAllSpaces(0, 0)
	if err != nil {
		return fmt.Errorf("failed to list spaces: %w", err)
	}
	for _, space := range spaces {
		fmt.Printf("%s\t%s\n", space.Key, space.Name)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(spacesCmd)

	spacesCmd.Flags().StringVarP(&spacesKey, "key", "k", "", "Show a single space by key")
}
