package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	labelsPageID string
	labelAdd     string
	labelRemove  string
)

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "List, add or remove labels on a page",
	Example: `  conflow labels -p 123456                 # List labels
  conflow labels -p 123456 --add docs      # Add a label
  conflow labels -p 123456 --remove docs   # Remove a label`,
	RunE: runLabels,
}

func runLabels(cmd *cobra.Command, args []string) error {
	client, _, err := loadClient(false)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if labelAdd != "" {
		if err := client.AddPageLabel(labelsPageID, labelAdd); err != nil {
			return fmt.Errorf("failed to add label: %w", err)
		}
		fmt.Printf("Added label '%s' to page %s\n", labelAdd, labelsPageID)
	}
	if labelRemove != "" {
		if err := client.RemovePageLabel(labelsPageID, labelRemove); err != nil {
			return fmt.Errorf("failed to remove label: %w", err)
		}
		fmt.Printf("Removed label '%s' from page %s\n", labelRemove, labelsPageID)
	}
	if labelAdd != "" || labelRemove != "" {
		return nil
	}

	labels, err := client.GetPageLabels(labelsPageID)
	if err != nil {
		return fmt.Errorf("failed to list labels: %w", err)
	}
	for _, label := range labels {
		fmt.Println(label.Name)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(labelsCmd)

	labelsCmd.Flags().StringVarP(&labelsPageID, "page", "p", "", "Page ID (required)")
	labelsCmd.Flags().StringVar(&labelAdd, "add", "", "Label to add")
	labelsCmd.Flags().StringVar(&labelRemove, "remove", "", "Label to remove")

	if err := labelsCmd.MarkFlagRequired("page"); err != nil {
		panic(fmt.Sprintf("Failed to mark page flag as required: %v", err))
	}
}
