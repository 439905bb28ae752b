package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oliverbarnes/taskplan/pkg/apikeys"
	"github.com/oliverbarnes/taskplan/pkg/config"
	"github.com/oliverbarnes/taskplan/pkg/prompts"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "taskplan",
	Short: "LLM-backed task planning from your workspace",
	Long: `Taskplan is a command-line tool that collects the source files of the
current workspace, combines them with a task description, and asks a remote
completion service for a concrete implementation plan.

Available commands:
  plan     - Generate a plan for a task using the workspace as context
  ignore   - Add a pattern to the collection exclude list
  version  - Print version information`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// One startup warning when no credential is resolvable. The command
		// still runs; plan generation fails later with a clear error.
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return
		}
		cfg, err := config.LoadOrDefault(".")
		if err != nil {
			return
		}
		if !apikeys.HasAPIKey(cfg.Provider) {
			envVar := strings.ToUpper(cfg.Provider) + "_API_KEY"
			fmt.Println(prompts.MissingAPIKeyWarning(cfg.Provider, envVar))
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(ignoreCmd)
	rootCmd.AddCommand(versionCmd)
}
