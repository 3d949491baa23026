package core

import (
	"github.com/filespect/filespect/internal/detect"
	"github.com/filespect/filespect/internal/engine"
	"github.com/filespect/filespect/internal/magic"
	"github.com/filespect/filespect/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Config = engine.Config
type DetectionResult = types.DetectionResult
type Category = types.Category
type Stage = types.Stage

// Classify runs the full pipeline on a single path with the default
// signature service. It never fails; see DetectionResult.Confidence.
func Classify(path string) DetectionResult {
	return detect.New(magic.NewSniffer()).Classify(path)
}

// Scan is the stable multi-path entrypoint for other programs.
func Scan(cfg Config) ([]DetectionResult, error) {
	return engine.Scan(cfg)
}

// Categories returns the closed category vocabulary.
// Exposed for convenience to avoid importing internals directly.
func Categories() []Category { return types.Categories() }
