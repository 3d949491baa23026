package detect

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/filespect/filespect/internal/types"
)

var reYAMLKey = regexp.MustCompile(`(?m)^[a-zA-Z_][a-zA-Z0-9_]*:\s*`)

// contentStage analyzes the decoded text of the file: shebang line, weighted
// language patterns, then generic structural sniffing (JSON, YAML, CSV).
func (d *Detector) contentStage(path string) (types.DetectionResult, bool) {
	smp, err := readSample(path)
	if err != nil {
		return types.DetectionResult{}, false
	}
	if !smp.decoded {
		return d.result(path, types.Binary, types.StageContent, 0.8, "Non-text content"), true
	}
	text := smp.text

	if strings.HasPrefix(text, "#!") {
		line := text
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line = text[:i]
		}
		line = strings.TrimSpace(line)
		for _, e := range d.shebangs {
			if strings.Contains(line, e.interp) {
				return d.result(path, e.cat, types.StageContent, 0.9, "Shebang: "+line), true
			}
		}
	}

	// First category past the threshold wins; catalog order is the tie-break.
	for _, cp := range d.catalog {
		score, matches := 0, 0
		for _, pe := range cp.entries {
			if pe.re.MatchString(text) {
				score += pe.weight
				matches++
			}
		}
		if score >= scoreThreshold {
			conf := float64(score) / 10.0
			if conf > 1.0 {
				conf = 1.0
			}
			expl := fmt.Sprintf("Language patterns: %d matches", matches)
			return d.result(path, cp.cat, types.StageContent, conf, expl), true
		}
	}

	if printableRatio(text) > 0.7 {
		trimmed := strings.TrimSpace(text)
		if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") && json.Valid([]byte(trimmed)) {
			return d.result(path, types.JSON, types.StageContent, 0.8, "Valid JSON structure"), true
		}
		if reYAMLKey.MatchString(text) {
			return d.result(path, types.YAML, types.StageContent, 0.7, "YAML-like structure"), true
		}
		if looksCSV(text) {
			return d.result(path, types.CSV, types.StageContent, 0.7, "CSV-like structure"), true
		}
		return d.result(path, types.Text, types.StageContent, 0.6, ""), true
	}

	return types.DetectionResult{}, false
}

// looksCSV requires a comma and a newline somewhere, and a comma on every
// non-blank line among the first five.
func looksCSV(text string) bool {
	if !strings.Contains(text, ",") || !strings.Contains(text, "\n") {
		return false
	}
	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.Contains(line, ",") {
			return false
		}
	}
	return true
}
