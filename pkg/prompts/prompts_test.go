package prompts

import (
	"strings"
	"testing"
)

func TestBuildPlanPromptContainsTaskAndCode(t *testing.T) {
	prompt := BuildPlanPrompt("add logging", "let x=1;\nlet y=2;")

	if !strings.Contains(prompt, "add logging") {
		t.Error("prompt should contain the task description")
	}
	if !strings.Contains(prompt, "let x=1;") || !strings.Contains(prompt, "let y=2;") {
		t.Error("prompt should contain the collected code")
	}
	if !strings.HasPrefix(prompt, planPromptPreamble) {
		t.Error("prompt should start with the instructional preamble")
	}
}

func TestBuildPlanMessagesShape(t *testing.T) {
	messages := BuildPlanMessages("add logging", "let x=1;")

	if len(messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(messages))
	}
	if messages[0].Role != "system" {
		t.Errorf("First message should be the system role, got %q", messages[0].Role)
	}
	if messages[1].Role != "user" {
		t.Errorf("Second message should be the user role, got %q", messages[1].Role)
	}
	if !strings.Contains(messages[1].Content, "add logging") {
		t.Error("User message should carry the plan prompt")
	}
}

func TestCollectionSummary(t *testing.T) {
	s := CollectionSummary(3, 1200, 0, false)
	if s != "Collected 3 files (1200 bytes)" {
		t.Errorf("Unexpected summary: %q", s)
	}

	s = CollectionSummary(3, 1200, 2, true)
	if !strings.Contains(s, "skipped 2 oversized") || !strings.Contains(s, "truncated") {
		t.Errorf("Summary should mention skips and truncation: %q", s)
	}
}
