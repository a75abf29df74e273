package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	rmPageID        string
	rmPageRecursive bool
	rmPageYes       bool
)

var rmPageCmd = &cobra.Command{
	Use:   "rm-page",
	Short: "Delete a Confluence page",
	Long: `Delete a page by ID. With --recursive, child pages are deleted
first, depth-first. Deletion asks for confirmation unless --yes is set.`,
	Example: `  conflow rm-page -p 123456
  conflow rm-page -p 123456 -r --yes`,
	RunE: runRmPage,
}

func runRmPage(cmd *cobra.Command, args []string) error {
	client, _, err := loadClient(false)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if !rmPageYes {
		var answer string
		fmt.Printf("Delete page %s", rmPageID)
		if rmPageRecursive {
			fmt.Print(" and all of its children")
		}
		fmt.Print("? [y/N] ")
		fmt.Fscanln(cmd.InOrStdin(), &answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := client.RemovePage(rmPageID, rmPageRecursive); err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}
	fmt.Printf("Deleted page %s\n", rmPageID)
	return nil
}

func init() {
	rootCmd.AddCommand(rmPageCmd)

	rmPageCmd.Flags().StringVarP(&rmPageID, "page", "p", "", "Page ID to delete (required)")
	rmPageCmd.Flags().BoolVarP(&rmPageRecursive, "recursive", "r", false, "Delete child pages first")
	rmPageCmd.Flags().BoolVar(&rmPageYes, "yes", false, "Skip the confirmation prompt")

	if err := rmPageCmd.MarkFlagRequired("page"); err != nil {
		panic(fmt.Sprintf("Failed to mark page flag as required: %v", err))
	}
}
