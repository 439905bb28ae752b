package prompts

import (
	"fmt"
	"strings"
)

// planPromptPreamble is the fixed instructional template placed ahead of the
// task description and the collected workspace source.
const planPromptPreamble = `You are a senior engineer helping plan a development task.
Given the task description and the source code of the workspace below,
produce a short, concrete implementation plan as a numbered list of steps.
Reference existing code where relevant. Do not write the implementation,
only the plan.`

// BuildPlanPrompt assembles the full prompt text: preamble, task
// description, then the collected codebase joined by newlines. No size
// limit is enforced here; oversized prompts fail at the remote call.
func BuildPlanPrompt(taskDescription, collectedCode string) string {
	var b strings.Builder
	b.WriteString(planPromptPreamble)
	b.WriteString("\n\nTask: ")
	b.WriteString(taskDescription)
	b.WriteString("\n\nWorkspace source:\n")
	b.WriteString(collectedCode)
	return b.String()
}

// PlanSystemMessage is the system role content sent with every plan request.
func PlanSystemMessage() string {
	return "You are a precise planning assistant for software tasks."
}

// TaskDescriptionPrompt is shown when the plan command is invoked without an
// argument.
func TaskDescriptionPrompt() string {
	return "Describe the task you want a plan for: "
}

// Message represents a chat message sent to the completion service.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// BuildPlanMessages wraps the plan prompt into the chat message array the
// completion endpoint expects.
func BuildPlanMessages(taskDescription, collectedCode string) []Message {
	return []Message{
		{Role: "system", Content: PlanSystemMessage()},
		{Role: "user", Content: BuildPlanPrompt(taskDescription, collectedCode)},
	}
}

// CollectionSummary describes what was gathered, for the log and verbose output.
func CollectionSummary(fileCount int, totalBytes int64, skippedLarge int, truncated bool) string {
	s := fmt.Sprintf("Collected %d files (%d bytes)", fileCount, totalBytes)
	if skippedLarge > 0 {
		s += fmt.Sprintf(", skipped %d oversized", skippedLarge)
	}
	if truncated {
		s += ", truncated at size cap"
	}
	return s
}
