package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"conflow/internal/confluence"
)

var (
	attachmentsPageID    string
	attachmentsMediaType string
)

var attachmentsCmd = &cobra.Command{
	Use:   "attachments",
	Short: "List the attachments of a page",
	Example: `  conflow attachments -p 123456
  conflow attachments -p 123456 -m image/png`,
	RunE: runAttachments,
}

func runAttachments(cmd *cobra.Command, args []string) error {
	client, _, err := loadClient(false)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	attachments, err := client.ListAttachments(attachmentsPageID, confluence.AttachmentListOptions{
		MediaType: attachmentsMediaType,
	})
	if err != nil {
		return fmt.Errorf("failed to list attachments: %w", err)
	}

	for _, att := range attachments {
		fmt.Printf("%s\t%s\t%s\tv%d\n", att.ID, att.Title, att.Metadata.MediaType, att.Version.Number)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(attachmentsCmd)

	attachmentsCmd.Flags().StringVarP(&attachmentsPageID, "page", "p", "", "Page ID (required)")
	attachmentsCmd.Flags().StringVarP(&attachmentsMediaType, "media-type", "m", "", "Filter by media type")

	if err := attachmentsCmd.MarkFlagRequired("page"); err != nil {
		panic(fmt.Sprintf("Failed to mark page flag as required: %v", err))
	}
}
