package collector

import (
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

const planIgnoreFile = ".taskplan/planignore"

// GetIgnoreRules builds the exclusion matcher for a workspace root by
// combining .gitignore, .taskplan/planignore, configured extra patterns,
// and the built-in fallback patterns. Essential taskplan patterns come
// first so nothing overrides them.
func GetIgnoreRules(rootDir string, extraPatterns ...string) *ignore.GitIgnore {
	var allLines []string

	allLines = append(allLines, getEssentialPatterns()...)
	allLines = append(allLines, extraPatterns...)

	gitIgnorePath := filepath.Join(rootDir, ".gitignore")
	if gitIgnoreContent, err := os.ReadFile(gitIgnorePath); err == nil {
		allLines = append(allLines, strings.Split(string(gitIgnoreContent), "\n")...)
	}

	planIgnorePath := filepath.Join(rootDir, planIgnoreFile)
	if planIgnoreContent, err := os.ReadFile(planIgnorePath); err == nil {
		allLines = append(allLines, strings.Split(string(planIgnoreContent), "\n")...)
	}

	allLines = append(allLines, getFallbackIgnorePatterns()...)

	// Filter out empty lines and comments
	var filteredLines []string
	for _, line := range allLines {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			filteredLines = append(filteredLines, line)
		}
	}

	return ignore.CompileIgnoreLines(filteredLines...)
}

// AddToPlanIgnore appends a pattern to the workspace's planignore file,
// creating it if needed.
func AddToPlanIgnore(rootDir, pattern string) error {
	ignorePath := filepath.Join(rootDir, planIgnoreFile)
	if err := os.MkdirAll(filepath.Dir(ignorePath), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(ignorePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(pattern + "\n"); err != nil {
		return err
	}

	return nil
}

// getEssentialPatterns returns patterns that are always excluded so taskplan
// never feeds its own state files back into a prompt.
func getEssentialPatterns() []string {
	return []string{
		".taskplan/",
		".taskplan/*",
		"taskplan", // the binary, if built in the workspace
	}
}

// getFallbackIgnorePatterns returns common patterns excluded even when the
// workspace has no ignore files of its own.
func getFallbackIgnorePatterns() []string {
	return []string{
		// Version control metadata
		".git/",
		".svn/",
		".hg/",

		// Dependency directories
		"node_modules/",
		"vendor/",
		"venv/",
		".venv/",
		"bower_components/",

		// Build output
		"build/",
		"dist/",
		"bin/",
		"obj/",
		"target/",
		"out/",
		".next/",
		"__pycache__/",

		// Editor and OS noise
		".idea/",
		".vscode/",
		".DS_Store",
		"Thumbs.db",
		"*.swp",
		"*.swo",
		"*.bak",
		"*.tmp",

		// Artifacts that are never useful prompt context
		"*.log",
		"*.out",
		"*.exe",
		"*.dll",
		"*.so",
		"*.dylib",
		"*.o",
		"*.a",
		"*.test",
		"*.pyc",
		"*.class",
		"*.jar",
		"*.min.js",
		"*.map",
		"*.lock",

		// Local environment files
		".env",
		"*.env",
	}
}
