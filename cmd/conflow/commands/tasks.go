package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tasksID string

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List long-running server tasks",
	Long: `List the long-running tasks the server is tracking, or show a
single task with --id. These are the structured task records; legacy PDF
exports report progress through their own polling endpoint instead.`,
	Example: `  conflow tasks
  conflow tasks --id 1f43ab9c`,
	RunE: runTasks,
}

func runTasks(cmd *cobra.Command, args []string) error {
	client, _, err := loadClient(false)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if tasksID != "" {
		task, err := client.GetLongTask(tasksID)
		if err != nil {
			return fmt.Errorf("failed to get task: %w", err)
		}
		printLongTask(task.ID, task.Name.Key, task.PercentageComplete, task.Finished, task.Successful)
		return nil
	}

	tasks, err := client.GetLongTasks(0, 0)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}
	for _, task := range tasks {
		printLongTask(task.ID, task.Name.Key, task.PercentageComplete, task.Finished, task.Successful)
	}
	return nil
}

func printLongTask(id, name string, percent int, finished, successful bool) {
	state := "running"
	if finished {
		if successful {
			state = "done"
		} else {
			state = "failed"
		}
	}
	fmt.Printf("%s\t%s\t%d%%\t%s\n", id, name, percent, state)
}

func init() {
	rootCmd.AddCommand(tasksCmd)

	tasksCmd.Flags().StringVar(&tasksID, "id", "", "Show a single task by ID")
}
