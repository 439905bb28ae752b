package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oliverbarnes/taskplan/pkg/collector"
	"github.com/oliverbarnes/taskplan/pkg/prompts"
)

var ignoreCmd = &cobra.Command{
	Use:   "ignore [pattern]",
	Short: "Add a pattern to the planignore file",
	Long: `Adds a gitignore-style pattern to .taskplan/planignore, which is used
in addition to .gitignore for deciding which files are collected into the
planning prompt.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := args[0]
		if err := collector.AddToPlanIgnore(".", pattern); err != nil {
			return fmt.Errorf("could not update planignore: %w", err)
		}
		fmt.Println(prompts.PatternAdded(pattern))
		return nil
	},
}
