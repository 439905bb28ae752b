// Package collector gathers workspace source text for prompt building.
package collector

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/oliverbarnes/taskplan/pkg/utils"
)

// Options configures a collection pass over a workspace tree.
type Options struct {
	RootDir       string
	Extensions    []string // file suffixes to include, e.g. ".go"
	MaxFileBytes  int64    // files larger than this are skipped, 0 means no cap
	MaxTotalBytes int64    // collection stops once this much content is gathered, 0 means no cap
	IgnoreRules   *ignore.GitIgnore
}

// Codebase is the result of one collection pass. Files holds full file
// contents in traversal order; paths are not retained.
type Codebase struct {
	Files        []string
	FileCount    int
	TotalBytes   int64
	SkippedLarge int
	Truncated    bool
}

// Join concatenates the collected contents with newline separators.
func (c *Codebase) Join() string {
	return strings.Join(c.Files, "\n")
}

// Collect walks the tree under opts.RootDir depth-first and reads every
// regular file whose name ends with one of the configured extensions.
// Directories are traversed but never emitted. An empty result is not an
// error; any listing or read failure aborts the whole pass with no partial
// result.
func Collect(opts Options) (*Codebase, error) {
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = []string{".go"}
	}

	result := &Codebase{}

	err := filepath.WalkDir(opts.RootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return utils.NewFileSystemError("directory walk", err)
		}
		if path == opts.RootDir {
			return nil
		}

		rel, relErr := filepath.Rel(opts.RootDir, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if opts.IgnoreRules != nil && (opts.IgnoreRules.MatchesPath(rel) || opts.IgnoreRules.MatchesPath(rel+"/")) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		if !matchesExtension(d.Name(), exts) {
			return nil
		}
		if opts.IgnoreRules != nil && opts.IgnoreRules.MatchesPath(rel) {
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			return utils.NewFileSystemError("stat "+rel, infoErr)
		}
		if opts.MaxFileBytes > 0 && info.Size() > opts.MaxFileBytes {
			result.SkippedLarge++
			return nil
		}
		if opts.MaxTotalBytes > 0 && result.TotalBytes+info.Size() > opts.MaxTotalBytes {
			result.Truncated = true
			return filepath.SkipAll
		}

		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return utils.NewFileSystemError("read "+rel, readErr)
		}

		result.Files = append(result.Files, string(content))
		result.FileCount++
		result.TotalBytes += info.Size()
		return nil
	})
	if err != nil {
		if _, ok := err.(*utils.StructuredError); !ok {
			err = utils.NewFileSystemError("workspace collection", err)
		}
		return nil, err
	}

	return result, nil
}

func matchesExtension(name string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
