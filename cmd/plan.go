// Plan command for taskplan - generates a task plan from workspace context
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oliverbarnes/taskplan/pkg/apikeys"
	"github.com/oliverbarnes/taskplan/pkg/config"
	"github.com/oliverbarnes/taskplan/pkg/llm"
	"github.com/oliverbarnes/taskplan/pkg/planner"
	"github.com/oliverbarnes/taskplan/pkg/prompts"
	"github.com/oliverbarnes/taskplan/pkg/utils"
)

var (
	planModel      string
	planOutputFile string
	planExtensions []string
	planSkipPrompt bool
)

func init() {
	planCmd.Flags().StringVarP(&planModel, "model", "m", "", "Model name for planning")
	planCmd.Flags().StringVarP(&planOutputFile, "output", "o", "", "Write the plan to a file instead of stdout only")
	planCmd.Flags().StringSliceVarP(&planExtensions, "ext", "e", nil, "Source extensions to collect (default from config, e.g. .go)")
	planCmd.Flags().BoolVar(&planSkipPrompt, "skip-prompt", false, "Never prompt on stdin; fail instead")
}

var planCmd = &cobra.Command{
	Use:   "plan [task description]",
	Short: "Generate a task plan from the workspace",
	Long: `Collects the source files of the current directory tree, builds a prompt
from your task description plus the collected code, and asks the configured
completion service for an implementation plan.

Files are filtered by extension and by ignore rules combined from
.gitignore, .taskplan/planignore, and built-in patterns (dependency
directories, build output, VCS metadata).

Examples:
  # Ask for a plan directly
  taskplan plan "Add request logging to the HTTP handlers"

  # Prompt interactively for the task
  taskplan plan

  # Collect TypeScript instead of Go and save the plan
  taskplan plan -e .ts -o plan.md "add logging"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(args)
	},
}

func runPlan(args []string) error {
	logger := utils.GetLogger()

	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("could not determine working directory: %w", err)
	}

	cfg, err := config.LoadOrDefault(rootDir)
	if err != nil {
		return err
	}
	cfg.SkipPrompt = planSkipPrompt
	if planModel != "" {
		cfg.Model = planModel
	}
	if len(planExtensions) > 0 {
		cfg.Extensions = planExtensions
	}

	task, err := resolveTaskDescription(args)
	if err != nil {
		return err
	}
	if task == "" {
		// Cancelled or empty input is a notice, not a failure.
		logger.LogUserInteraction(prompts.TaskDescriptionRequired())
		return nil
	}

	interactive := !cfg.SkipPrompt && term.IsTerminal(int(os.Stdin.Fd()))
	apiKey, keyErr := apikeys.GetAPIKey(cfg.Provider, interactive)
	if keyErr != nil {
		logger.Logf("No API key resolved for %s: %v", cfg.Provider, keyErr)
	}

	p := planner.New(cfg, rootDir, apiKey, llm.NewClient(cfg.BaseURL, 0), logger)

	logger.Logf("Generating plan for task: %s", task)
	plan, err := p.GeneratePlan(context.Background(), task)
	if err != nil {
		logger.LogError(err)
		if utils.CategoryOf(err) == utils.CategoryUser {
			fmt.Println(utils.UserMessage(err))
			return nil
		}
		return fmt.Errorf("%s", prompts.PlanFailed(utils.UserMessage(err)))
	}

	fmt.Println(prompts.PlanHeader())
	fmt.Println(plan)

	if planOutputFile != "" {
		if err := os.WriteFile(planOutputFile, []byte(plan+"\n"), 0644); err != nil {
			return fmt.Errorf("could not write plan to %s: %w", planOutputFile, err)
		}
		fmt.Println(prompts.PlanSaved(planOutputFile))
	}

	return nil
}

// resolveTaskDescription takes the task from the argument when given,
// otherwise prompts on stdin when a terminal is attached.
func resolveTaskDescription(args []string) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(args[0]), nil
	}

	if planSkipPrompt {
		return "", nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("interactive task entry requires a terminal (TTY); pass the task as an argument")
	}

	fmt.Print(prompts.TaskDescriptionPrompt())
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input), nil
}
