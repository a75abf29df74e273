package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "conflow",
	Short: "Work with Confluence pages, attachments and exports from the command line",
	Long: `Conflow is a command line client for the Confluence REST API.
It provides commands to read and manage pages, spaces, labels and
attachments, to search with CQL, and to export pages as PDF or Word.`,
	Example: `  conflow list-pages -s DOCS                  # Page tree of a space
  conflow get-page -s DOCS -p "API Guide"     # Print a page
  conflow export -s DOCS -p 123456 -f pdf     # Export a page as PDF
  conflow search 'text ~ "runbook"'           # CQL search`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags available to all subcommands
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config.yaml", "path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
