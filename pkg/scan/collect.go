package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// WarnFunc receives non-fatal diagnostics (missing paths, unreadable
// files). It must never be nil on a Runner; Collect tolerates nil.
type WarnFunc func(format string, args ...interface{})

// Collect resolves user-supplied paths into the deduplicated, sorted set
// of log files to scan. Directories are walked recursively for files with
// a recognized extension; regular files are included as-is; paths that
// don't exist produce a warning and are skipped. Sorting guarantees a
// deterministic processing order across runs.
func Collect(inputs []string, cfg Config, warn WarnFunc) []string {
	cfg = cfg.normalized()
	if warn == nil {
		warn = func(string, ...interface{}) {}
	}

	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		if _, dup := seen[path]; dup {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			warn("path not found: %s", input)
			continue
		}

		if !info.IsDir() {
			add(input)
			continue
		}

		walkErr := filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				warn("cannot access %s: %v", path, err)
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if cfg.recognized(path) {
				add(path)
			}
			return nil
		})
		if walkErr != nil {
			warn("cannot walk %s: %v", input, walkErr)
		}
	}

	sort.Strings(files)
	return files
}

// recognized reports whether the path carries a recognized log extension,
// ignoring a trailing .gz.
func (c Config) recognized(path string) bool {
	ext := baseExt(path)
	for _, want := range c.Extensions {
		if ext == want {
			return true
		}
	}
	return false
}
