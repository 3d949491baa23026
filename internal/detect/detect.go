// Package detect implements the multi-stage file-type classification
// pipeline: filesystem metadata, byte signatures via an optional external
// service, and content analysis, in that order. The first stage to produce
// a result short-circuits the rest.
package detect

import (
	"errors"
	"io/fs"
	"os"

	"github.com/filespect/filespect/internal/magic"
	"github.com/filespect/filespect/internal/types"
)

// Detector classifies filesystem entries. The lookup tables are built once
// at construction and never mutated, so a single Detector is safe for
// concurrent use across goroutines, provided the signature service is too.
type Detector struct {
	exts     map[string]types.Category
	shebangs []shebangEntry
	catalog  []categoryPatterns
	sig      magic.Service
}

// New returns a Detector backed by the static tables. sig may be nil, in
// which case the signature stage is skipped entirely.
func New(sig magic.Service) *Detector {
	return &Detector{
		exts:     extensionTable,
		shebangs: shebangTable,
		catalog:  patternCatalog,
		sig:      sig,
	}
}

// Classify determines the most likely type of the entry at path. It never
// fails: every error condition is absorbed and the weakest result it returns
// is Unknown with confidence 0.1.
func (d *Detector) Classify(path string) types.DetectionResult {
	if _, err := os.Stat(path); err != nil && errors.Is(err, fs.ErrNotExist) {
		return d.result(path, types.Unknown, types.StageFilesystem, 1.0, "File not found")
	}

	if r, ok := d.filesystemStage(path); ok {
		return r
	}
	if r, ok := d.signatureStage(path); ok {
		return r
	}
	if r, ok := d.contentStage(path); ok {
		return r
	}
	return d.fallback(path)
}

// RunStage executes a single pipeline stage. The second return is false when
// the stage produced no result for this path.
func (d *Detector) RunStage(path string, stage types.Stage) (types.DetectionResult, bool) {
	switch stage {
	case types.StageFilesystem:
		return d.filesystemStage(path)
	case types.StageSignature:
		return d.signatureStage(path)
	case types.StageContent:
		return d.contentStage(path)
	}
	return types.DetectionResult{}, false
}

// fallback re-checks the raw byte sample when no stage produced a result.
func (d *Detector) fallback(path string) types.DetectionResult {
	if st, err := os.Stat(path); err == nil && st.Mode().IsRegular() && st.Size() > 0 {
		if smp, err := readSample(path); err == nil && binaryLike(smp.raw) {
			return d.result(path, types.Binary, types.StageContent, 0.8, "Binary content detected")
		}
	}
	return d.result(path, types.Unknown, types.StageFilesystem, 0.1, "")
}

func (d *Detector) result(path string, cat types.Category, stage types.Stage, conf float64, expl string) types.DetectionResult {
	return types.DetectionResult{
		Path:        path,
		Category:    cat,
		Stage:       stage,
		Confidence:  conf,
		Explanation: expl,
	}
}
