package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var attachPageID string

var attachCmd = &cobra.Command{
	Use:   "attach <file>...",
	Short: "Upload files as attachments to a page",
	Long: `Upload one or more local files as attachments to a page. When an
attachment with the same filename already exists a new version of it is
created instead of a duplicate.`,
	Example: `  conflow attach -p 123456 diagram.png
  conflow attach -p 123456 report.pdf notes.doc`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAttach,
}

func runAttach(cmd *cobra.Command, args []string) error {
	client, _, err := loadClient(false)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	for _, file := range args {
		att, err := client.UploadAttachment(attachPageID, file)
		if err != nil {
			return fmt.Errorf("failed to upload '%s': %w", file, err)
		}
		fmt.Printf("Uploaded %s (ID: %s, version %d)\n", att.Title, att.ID, att.Version.Number)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(attachCmd)

	attachCmd.Flags().StringVarP(&attachPageID, "page", "p", "", "Page ID to attach to (required)")

	if err := attachCmd.MarkFlagRequired("page"); err != nil {
		panic(fmt.Sprintf("Failed to mark page flag as required: %v", err))
	}
}
