package commands

import (
	"fmt"
	"strings"

	htmldoc "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/spf13/cobra"

	"conflow/internal/confluence"
)

var (
	getPageSpace     string
	getPageIDOrTitle string
	getPageFormat    string
)

// getPageCmd returns the storage content of a page
var getPageCmd = &cobra.Command{
	Use:   "get-page",
	Short: "Print the contents of a Confluence page",
	Long: `Fetch the storage-format content of a Confluence page by ID or title.

When the page argument is numeric it is first tried as a page ID; on a
miss it is looked up as a title within the space given by --space.`,
	Example: `  conflow get-page -s DOCS -p 123456789
  conflow get-page -s DOCS -p "My Page Title" -f markdown`,
	RunE: runGetPage,
}

func runGetPage(cmd *cobra.Command, args []string) error {
	if getPageIDOrTitle == "" {
		return fmt.Errorf("page flag is required for get-page command")
	}
	switch getPageFormat {
	case "", "storage", "html", "markdown":
	default:
		return fmt.Errorf("unsupported format: %s", getPageFormat)
	}

	client, cfg, err := loadClient(false)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	space := getPageSpace
	if space == "" {
		space = cfg.Confluence.SpaceKey
	}

	var page *confluence.Page

	// Try by ID if input looks numeric
	if isNumeric(getPageIDOrTitle) {
		page, err = client.GetPage(getPageIDOrTitle)
		if err != nil {
			page = nil
		}
	}

	// If not found by ID, try by title
	if page == nil {
		if space == "" {
			return fmt.Errorf("space flag required to look up a page by title")
		}
		page, err = client.FindPageByTitle(space, getPageIDOrTitle)
		if err != nil {
			return fmt.Errorf("failed to find page by title: %w", err)
		}
	}
	if page == nil {
		return fmt.Errorf("page '%s' not found in space '%s'", getPageIDOrTitle, space)
	}

	fmt.Printf("# %s (ID: %s)\n\n", page.Title, page.ID)

	content, err := renderPageContent(page, getPageFormat)
	if err != nil {
		return err
	}
	fmt.Println(content)
	return nil
}

// renderPageContent returns the page body in the requested format. It
// does not include the header line with title/ID.
func renderPageContent(page *confluence.Page, format string) (string, error) {
	switch format {
	case "", "storage", "html":
		// Storage format is XHTML; without a rendered view expansion the
		// html format prints it as-is.
		return page.Body.Storage.Value, nil
	case "markdown":
		md, err := htmldoc.ConvertString(page.Body.Storage.Value)
		if err != nil {
			return page.Body.Storage.Value, nil // fall back to raw storage
		}
		return md, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) < 0
}

func init() {
	rootCmd.AddCommand(getPageCmd)

	getPageCmd.Flags().StringVarP(&getPageSpace, "space", "s", "", "Confluence space key (defaults to config space)")
	getPageCmd.Flags().StringVarP(&getPageIDOrTitle, "page", "p", "", "Page title or ID to fetch (required)")
	getPageCmd.Flags().StringVarP(&getPageFormat, "format", "f", "storage", "Output format: storage|html|markdown")

	if err := getPageCmd.MarkFlagRequired("page"); err != nil {
		panic(fmt.Sprintf("Failed to mark page flag as required: %v", err))
	}
}
