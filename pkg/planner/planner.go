// Package planner turns a task description plus the workspace source into a
// plan by way of one remote completion request.
package planner

import (
	"context"
	"os"
	"strings"

	"github.com/oliverbarnes/taskplan/pkg/collector"
	"github.com/oliverbarnes/taskplan/pkg/config"
	"github.com/oliverbarnes/taskplan/pkg/llm"
	"github.com/oliverbarnes/taskplan/pkg/prompts"
	"github.com/oliverbarnes/taskplan/pkg/utils"
)

// CompletionClient is the remote service dependency, satisfied by
// llm.Client and by test doubles.
type CompletionClient interface {
	GetCompletion(ctx context.Context, apiKey string, req llm.ChatRequest) (string, *llm.TokenUsage, error)
}

// Planner orchestrates one plan request. The credential is supplied at
// construction; an unconfigured planner fails before any remote call.
type Planner struct {
	cfg     *config.Config
	rootDir string
	apiKey  string
	client  CompletionClient
	logger  *utils.Logger
}

// New builds a Planner for the given workspace root.
func New(cfg *config.Config, rootDir, apiKey string, client CompletionClient, logger *utils.Logger) *Planner {
	return &Planner{
		cfg:     cfg,
		rootDir: rootDir,
		apiKey:  apiKey,
		client:  client,
		logger:  logger,
	}
}

// GeneratePlan runs the full sequence: validate input and credential,
// collect the workspace, build the prompt, call the completion service, and
// return the trimmed plan text. Every failure is classified; there are no
// retries and no partial results.
func (p *Planner) GeneratePlan(ctx context.Context, taskDescription string) (string, error) {
	taskDescription = strings.TrimSpace(taskDescription)
	if taskDescription == "" {
		return "", utils.NewUserInputError(prompts.TaskDescriptionRequired())
	}

	if p.apiKey == "" {
		return "", utils.NewConfigurationError("no API key configured for "+p.cfg.Provider, nil)
	}

	info, err := os.Stat(p.rootDir)
	if err != nil || !info.IsDir() {
		return "", utils.NewWorkspaceError(prompts.NoWorkspaceFound(p.rootDir), err)
	}

	codebase, err := collector.Collect(collector.Options{
		RootDir:       p.rootDir,
		Extensions:    p.cfg.Extensions,
		MaxFileBytes:  p.cfg.MaxFileBytes,
		MaxTotalBytes: p.cfg.MaxTotalBytes,
		IgnoreRules:   collector.GetIgnoreRules(p.rootDir, p.cfg.ExcludePatterns...),
	})
	if err != nil {
		return "", err
	}
	if p.logger != nil {
		p.logger.LogCollection(p.rootDir, codebase.FileCount, codebase.TotalBytes)
		p.logger.Log(prompts.CollectionSummary(codebase.FileCount, codebase.TotalBytes, codebase.SkippedLarge, codebase.Truncated))
	}

	req := llm.ChatRequest{
		Model:       p.cfg.Model,
		Messages:    prompts.BuildPlanMessages(taskDescription, codebase.Join()),
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: p.cfg.Temperature,
	}

	plan, usage, err := p.client.GetCompletion(ctx, p.apiKey, req)
	if err != nil {
		return "", err
	}
	if p.logger != nil && usage != nil {
		p.logger.Logf("Completion usage - prompt: %d, completion: %d, total: %d",
			usage.PromptTokens, usage.CompletionTokens, usage.TotalTokens)
	}

	return plan, nil
}
