package collector

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetIgnoreRulesAlwaysIncludesTaskplanPatterns(t *testing.T) {
	tempDir := t.TempDir()

	// Even without any ignore files, essential patterns are included
	rules := GetIgnoreRules(tempDir)

	if !rules.MatchesPath(".taskplan/config.json") {
		t.Error(".taskplan/config.json should always be ignored")
	}
	if !rules.MatchesPath(".taskplan/taskplan.log") {
		t.Error(".taskplan/taskplan.log should always be ignored")
	}
	if !rules.MatchesPath("taskplan") {
		t.Error("taskplan binary should always be ignored")
	}

	// Common fallback patterns
	if !rules.MatchesPath("node_modules/package.json") {
		t.Error("node_modules should be ignored by fallback patterns")
	}
	if !rules.MatchesPath("build/output.exe") {
		t.Error("build directory should be ignored by fallback patterns")
	}
	if !rules.MatchesPath(".git/HEAD") {
		t.Error(".git metadata should be ignored by fallback patterns")
	}
}

func TestGetIgnoreRulesCombinesGitignoreAndPlanignore(t *testing.T) {
	tempDir := t.TempDir()

	gitignoreContent := "*.generated.go\nfixtures/\n"
	if err := os.WriteFile(filepath.Join(tempDir, ".gitignore"), []byte(gitignoreContent), 0644); err != nil {
		t.Fatalf("Failed to write .gitignore: %v", err)
	}

	taskplanDir := filepath.Join(tempDir, ".taskplan")
	if err := os.MkdirAll(taskplanDir, 0755); err != nil {
		t.Fatalf("Failed to create .taskplan directory: %v", err)
	}
	planignoreContent := "scratch/\nlegacy/\n"
	if err := os.WriteFile(filepath.Join(taskplanDir, "planignore"), []byte(planignoreContent), 0644); err != nil {
		t.Fatalf("Failed to write planignore: %v", err)
	}

	rules := GetIgnoreRules(tempDir)

	if !rules.MatchesPath("api.generated.go") {
		t.Error("*.generated.go from .gitignore should be ignored")
	}
	if !rules.MatchesPath("fixtures/data.go") {
		t.Error("fixtures/ from .gitignore should be ignored")
	}
	if !rules.MatchesPath("scratch/tmp.go") {
		t.Error("scratch/ from planignore should be ignored")
	}
	if !rules.MatchesPath("legacy/old.go") {
		t.Error("legacy/ from planignore should be ignored")
	}
	if rules.MatchesPath("main.go") {
		t.Error("main.go should not be ignored")
	}
}

func TestAddToPlanIgnore(t *testing.T) {
	tempDir := t.TempDir()

	if err := AddToPlanIgnore(tempDir, "generated/"); err != nil {
		t.Fatalf("AddToPlanIgnore failed: %v", err)
	}
	if err := AddToPlanIgnore(tempDir, "*.pb.go"); err != nil {
		t.Fatalf("AddToPlanIgnore failed on second call: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tempDir, ".taskplan", "planignore"))
	if err != nil {
		t.Fatalf("Failed to read planignore: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "generated/\n") || !strings.Contains(content, "*.pb.go\n") {
		t.Errorf("planignore missing appended patterns: %q", content)
	}

	rules := GetIgnoreRules(tempDir)
	if !rules.MatchesPath("generated/gen.go") {
		t.Error("appended pattern generated/ should be active")
	}
	if !rules.MatchesPath("api.pb.go") {
		t.Error("appended pattern *.pb.go should be active")
	}
}
