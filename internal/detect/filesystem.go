package detect

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/filespect/filespect/internal/types"
)

var executableSuffixes = map[string]bool{
	".exe": true,
	".dll": true,
	".so":  true,
	".app": true,
}

// filesystemStage classifies from stat metadata and the filename alone.
// Check order: directory, symlink, empty file, executable bit, compound
// suffix, single suffix. First match wins.
func (d *Detector) filesystemStage(path string) (types.DetectionResult, bool) {
	st, err := os.Stat(path)
	if err != nil {
		return types.DetectionResult{}, false
	}

	if st.IsDir() {
		return d.result(path, types.Directory, types.StageFilesystem, 1.0, ""), true
	}
	if li, err := os.Lstat(path); err == nil && li.Mode()&os.ModeSymlink != 0 {
		return d.result(path, types.Symlink, types.StageFilesystem, 1.0, ""), true
	}
	if st.Size() == 0 {
		return d.result(path, types.Empty, types.StageFilesystem, 1.0, ""), true
	}

	name := filepath.Base(path)

	if st.Mode().Perm()&0o100 != 0 {
		sfx := strings.ToLower(lastSuffix(name))
		if executableSuffixes[sfx] {
			if cat, ok := d.exts[sfx]; ok {
				return d.result(path, cat, types.StageFilesystem, 0.9, "Executable file"), true
			}
		}
	}

	// Compound suffixes (e.g. .tar.gz) take priority over the final suffix,
	// longest concatenation first.
	if sfxs := suffixes(name); len(sfxs) > 1 {
		combined := strings.ToLower(strings.Join(sfxs, ""))
		if cat, ok := d.exts[combined]; ok {
			return d.result(path, cat, types.StageFilesystem, 0.8, "Extension: "+combined), true
		}
		lastTwo := strings.ToLower(sfxs[len(sfxs)-2] + sfxs[len(sfxs)-1])
		if cat, ok := d.exts[lastTwo]; ok {
			return d.result(path, cat, types.StageFilesystem, 0.8, "Extension: "+lastTwo), true
		}
	}

	if sfx := strings.ToLower(lastSuffix(name)); sfx != "" {
		if cat, ok := d.exts[sfx]; ok {
			return d.result(path, cat, types.StageFilesystem, 0.8, "Extension: "+sfx), true
		}
	}

	return types.DetectionResult{}, false
}

// suffixes decomposes a filename into its dot-separated suffixes, e.g.
// "a.tar.gz" -> [".tar", ".gz"]. A leading dot (hidden files) does not start
// a suffix, and a trailing dot yields none.
func suffixes(name string) []string {
	if strings.HasSuffix(name, ".") {
		return nil
	}
	trimmed := strings.TrimLeft(name, ".")
	parts := strings.Split(trimmed, ".")
	if len(parts) < 2 {
		return nil
	}
	out := make([]string, 0, len(parts)-1)
	for _, part := range parts[1:] {
		out = append(out, "."+part)
	}
	return out
}

// lastSuffix returns the final suffix including the dot, or "".
func lastSuffix(name string) string {
	sfxs := suffixes(name)
	if len(sfxs) == 0 {
		return ""
	}
	return sfxs[len(sfxs)-1]
}
