// Package ignore matches paths against a .filespectignore file with
// gitignore-like patterns: blank lines and #-comments are skipped, a
// trailing slash anchors a directory, and everything else is a glob tested
// against both the relative path and its basename.
package ignore

import (
	"bufio"
	"os"
	"path"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

type Matcher struct {
	patterns []string
}

// Load reads the ignore file at the given path. A missing file yields an
// empty matcher and the read error; callers typically discard the error.
func Load(p string) (Matcher, error) {
	var m Matcher
	f, err := os.Open(p)
	if err != nil {
		return m, err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m.patterns = append(m.patterns, line)
	}
	return m, sc.Err()
}

// Match reports whether the relative path is covered by any pattern.
func (m Matcher) Match(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, pat := range m.patterns {
		if strings.HasSuffix(pat, "/") {
			if strings.HasPrefix(rel, pat) || strings.Contains(rel, "/"+pat) {
				return true
			}
			continue
		}
		if ok, _ := doublestar.Match(pat, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(pat, path.Base(rel)); ok {
			return true
		}
	}
	return false
}
