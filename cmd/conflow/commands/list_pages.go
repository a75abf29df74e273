package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"conflow/internal/confluence"
)

var (
	listSpace  string
	parentPage string
)

// listPagesCmd represents the list-pages command
var listPagesCmd = &cobra.Command{
	Use:   "list-pages",
	Short: "List page hierarchy from a Confluence space",
	Long: `List page hierarchy from a Confluence space with visual tree formatting.

This command connects to Confluence and retrieves the page hierarchy for a
specified space, displaying it with icons and tree formatting:
  🏢 Space indicators
  📁 Folders (pages with children)
  📄 Pages (leaf nodes)

You can optionally specify a parent page to start the hierarchy from.`,
	Example: `  conflow list-pages -s DOCS                  # List all pages in space
  conflow list-pages -s DOCS -p "API"         # List pages under parent
  conflow list-pages -s TEAM -v               # List with verbose logging`,
	RunE: runListPages,
}

func runListPages(cmd *cobra.Command, args []string) error {
	client, cfg, err := loadClient(false)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	space := listSpace
	if space == "" {
		space = cfg.Confluence.SpaceKey
	}
	if space == "" {
		return fmt.Errorf("space flag required for list-pages command")
	}

	pages, err := client.GetPageHierarchy(space, parentPage)
	if err != nil {
		return fmt.Errorf("failed to get page hierarchy: %w", err)
	}

	if parentPage != "" {
		fmt.Printf("🏢 Space '%s' → 📁 '%s':\n\n", space, parentPage)
	} else {
		fmt.Printf("🏢 Space '%s':\n\n", space)
	}

	printPageTree(pages, 0, true)
	return nil
}

func printPageTree(pages []confluence.PageInfo, indent int, isRoot bool) {
	for i, page := range pages {
		isLast := i == len(pages)-1

		prefix := ""
		if !isRoot {
			for j := 0; j < indent; j++ {
				prefix += "  "
			}
			if isLast {
				prefix += "└── "
			} else {
				prefix += "├── "
			}
		}

		var icon string
		if len(page.Children) > 0 {
			icon = "📁"
		} else {
			icon = "📄"
		}

		if isRoot {
			fmt.Printf("%s %s%s (ID: %s)\n", icon, prefix, page.Title, page.ID)
		} else {
			fmt.Printf("%s%s %s (ID: %s)\n", prefix, icon, page.Title, page.ID)
		}

		if len(page.Children) > 0 {
			printPageTree(page.Children, indent+1, false)
		}
	}
}

func init() {
	rootCmd.AddCommand(listPagesCmd)

	listPagesCmd.Flags().StringVarP(&listSpace, "space", "s", "", "Confluence space key (defaults to config space)")
	listPagesCmd.Flags().StringVarP(&parentPage, "parent", "p", "", "Parent page title to start from (optional)")
}
