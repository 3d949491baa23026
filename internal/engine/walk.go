package engine

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"

	"github.com/filespect/filespect/internal/ignore"
)

// CollectTargets resolves the configured paths into an ordered list of
// entries to classify. Directories are walked recursively (lexical order,
// so output is deterministic); unreadable or missing paths produce warnings
// through cfg.Warn and are skipped, never a hard failure.
func CollectTargets(cfg Config, ign ignore.Matcher) []string {
	warn := cfg.Warn
	if warn == nil {
		warn = func(string, ...any) {}
	}
	var targets []string
	for _, p := range cfg.Paths {
		st, err := os.Lstat(p)
		if err != nil {
			warn("path %q does not exist", p)
			continue
		}
		if !st.IsDir() {
			targets = append(targets, p)
			continue
		}
		if cfg.IncludeDirs {
			targets = append(targets, p)
		}
		root := p
		_ = filepath.WalkDir(root, func(sub string, d fs.DirEntry, err error) error {
			if err != nil {
				warn("permission denied accessing %q", sub)
				return nil
			}
			if sub == root {
				return nil
			}
			rel, _ := filepath.Rel(root, sub)
			if d.IsDir() {
				if ign.Match(rel) {
					return filepath.SkipDir
				}
				if cfg.MaxDepth > 0 && pathDepth(rel) >= cfg.MaxDepth {
					return filepath.SkipDir
				}
				if cfg.IncludeDirs && allowedByGlobs(rel, cfg) {
					targets = append(targets, sub)
				}
				return nil
			}
			if cfg.MaxDepth > 0 && pathDepth(rel) > cfg.MaxDepth {
				return nil
			}
			if !allowedByGlobs(rel, cfg) {
				return nil
			}
			if ign.Match(rel) {
				return nil
			}
			targets = append(targets, sub)
			return nil
		})
	}
	return targets
}

// pathDepth counts the directory levels of a relative path; a file directly
// under the walked root has depth 1.
func pathDepth(rel string) int {
	return len(strings.Split(filepath.ToSlash(rel), "/"))
}

// allowedByGlobs returns true if the given path passes the include/exclude
// glob configuration. Include globs, when present, act as a positive filter;
// exclude globs are subtracted last. Matching uses forward-slash semantics.
func allowedByGlobs(relPath string, cfg Config) bool {
	rp := filepath.ToSlash(relPath)
	includes := parseGlobsList(cfg.IncludeGlobs)
	excludes := parseGlobsList(cfg.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
