package prompts

import (
	"fmt"

	"github.com/fatih/color"
)

// --- Startup messages ---

func MissingAPIKeyWarning(provider, envVar string) string {
	yellow := color.New(color.FgYellow).SprintFunc()
	return yellow(fmt.Sprintf("Warning: no API key configured for %s. Set %s before generating a plan.", provider, envVar))
}

// --- Plan command messages ---

func TaskDescriptionRequired() string {
	return "A task description is required. Nothing to plan."
}

func NoWorkspaceFound(path string) string {
	return fmt.Sprintf("No workspace found at %s. Run taskplan from a project directory.", path)
}

func PlanHeader() string {
	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	return boldCyan("--- Task Plan ---")
}

func PlanSaved(path string) string {
	return fmt.Sprintf("Plan saved to %s", path)
}

func PlanFailed(message string) string {
	red := color.New(color.FgRed).SprintFunc()
	return red(fmt.Sprintf("Plan generation failed: %s", message))
}

// --- API error messages ---

func APIError(body string, statusCode int) string {
	return fmt.Sprintf("API request failed with status %d: %s", statusCode, body)
}

func RequestMarshalError(err error) string {
	return fmt.Sprintf("Failed to build API request: %v\n", err)
}

func HTTPRequestError(err error) string {
	return fmt.Sprintf("HTTP request to completion service failed: %v\n", err)
}

// --- Ignore command messages ---

func PatternAdded(pattern string) string {
	return fmt.Sprintf("Added %q to .taskplan/planignore", pattern)
}
