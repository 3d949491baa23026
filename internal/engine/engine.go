// Package engine orchestrates classification over many paths: traversal,
// filtering, the incremental result cache, and a bounded worker pool. The
// per-file decision logic lives in internal/detect.
package engine

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/filespect/filespect/internal/cache"
	"github.com/filespect/filespect/internal/detect"
	"github.com/filespect/filespect/internal/ignore"
	"github.com/filespect/filespect/internal/magic"
	"github.com/filespect/filespect/internal/types"
)

// Config controls a scan: what to classify and how.
type Config struct {
	Paths        []string // files or directories; empty means "."
	Root         string   // base for cache and ignore files; defaults to "."
	IncludeGlobs string   // comma-separated include globs
	ExcludeGlobs string   // comma-separated exclude globs
	MaxDepth     int      // directory levels below each walked root; 0 = unlimited
	IncludeDirs  bool
	Stage        types.Stage // run only this stage; "" = full pipeline
	FilterTypes  []string    // keep only these categories (tag or label)
	Threads      int         // 0 = GOMAXPROCS
	NoCache      bool
	NoSignature  bool
	Warn         func(format string, args ...any)
}

// Result contains the ordered classification results and scan statistics.
type Result struct {
	Results      []types.DetectionResult
	FilesScanned int
	Detected     int
	Errors       int
	Duration     time.Duration
}

// Scan classifies everything cfg selects and returns only the results.
func Scan(cfg Config) ([]types.DetectionResult, error) {
	res, err := ScanWithStats(cfg)
	if err != nil {
		return nil, err
	}
	return res.Results, nil
}

// ScanWithStats classifies everything cfg selects. Results come back in walk
// order regardless of how many workers ran.
func ScanWithStats(cfg Config) (Result, error) {
	var result Result
	started := time.Now()

	if len(cfg.Paths) == 0 {
		cfg.Paths = []string{"."}
	}
	root := cfg.Root
	if root == "" {
		root = "."
	}

	var sig magic.Service
	if !cfg.NoSignature {
		sig = magic.NewSniffer()
	}
	det := detect.New(sig)

	ign, _ := ignore.Load(filepath.Join(root, ".filespectignore"))
	targets := CollectTargets(cfg, ign)

	useCache := !cfg.NoCache && cfg.Stage == ""
	var db cache.DB
	if useCache {
		db, _ = cache.Load(root)
	}
	updated := map[string]cache.Entry{}
	var mu sync.Mutex

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	if threads > len(targets) && len(targets) > 0 {
		threads = len(targets)
	}

	results := make([]types.DetectionResult, len(targets))
	skipped := make([]bool, len(targets))
	idx := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < threads; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				p := targets[i]
				if cfg.Stage != "" {
					r, ok := det.RunStage(p, cfg.Stage)
					if !ok {
						skipped[i] = true
						continue
					}
					results[i] = r
					continue
				}
				results[i] = classifyCached(det, p, useCache, db, updated, &mu)
			}
		}()
	}
	for i := range targets {
		idx <- i
	}
	close(idx)
	wg.Wait()

	for i, r := range results {
		if skipped[i] {
			continue
		}
		result.FilesScanned++
		if !matchesFilter(r, cfg.FilterTypes) {
			continue
		}
		if r.Category != types.Unknown {
			result.Detected++
		} else {
			result.Errors++
		}
		result.Results = append(result.Results, r)
	}

	if useCache && len(updated) > 0 {
		if db.Entries == nil {
			db.Entries = map[string]cache.Entry{}
		}
		for k, v := range updated {
			db.Entries[k] = v
		}
		_ = cache.Save(root, db)
	}

	result.Duration = time.Since(started)
	return result, nil
}

// classifyCached reuses a cached result when the file's content hash still
// matches; only signature- and content-stage results are cached, since
// filesystem-stage answers are cheap and sensitive to metadata changes.
func classifyCached(det *detect.Detector, path string, useCache bool, db cache.DB, updated map[string]cache.Entry, mu *sync.Mutex) types.DetectionResult {
	if !useCache {
		return det.Classify(path)
	}
	h, ok := hashSample(path)
	if !ok {
		return det.Classify(path)
	}
	if e, hit := db.Entries[path]; hit && e.Hash == h {
		return types.DetectionResult{
			Path:        path,
			Category:    e.Category,
			Stage:       e.Stage,
			Confidence:  e.Confidence,
			Explanation: e.Explanation,
		}
	}
	r := det.Classify(path)
	if r.Stage == types.StageSignature || r.Stage == types.StageContent {
		mu.Lock()
		updated[path] = cache.Entry{
			Hash:        h,
			Category:    r.Category,
			Stage:       r.Stage,
			Confidence:  r.Confidence,
			Explanation: r.Explanation,
		}
		mu.Unlock()
	}
	return r
}

// hashSample hashes the same bounded prefix the sampler reads, plus the file
// size, so the key is cheap even for large files.
func hashSample(path string) (string, bool) {
	st, err := os.Stat(path)
	if err != nil || !st.Mode().IsRegular() || st.Size() == 0 {
		return "", false
	}
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()
	h := xxhash.New()
	if _, err := io.Copy(h, io.LimitReader(f, 1<<20)); err != nil {
		return "", false
	}
	return fmt.Sprintf("%016x-%d", h.Sum64(), st.Size()), true
}

func matchesFilter(r types.DetectionResult, filters []string) bool {
	if len(filters) == 0 {
		return true
	}
	for _, f := range filters {
		if strings.EqualFold(f, string(r.Category)) || strings.EqualFold(f, r.Category.Label()) {
			return true
		}
	}
	return false
}
