package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/filespect/filespect/internal/cache"
	"github.com/filespect/filespect/internal/types"
)

func TestScanWithStats(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, map[string]string{
		"app.py":    "print('hi')\n",
		"data.json": "{\"k\": 1}\n",
		"notes.txt": "plain\n",
	})
	res, err := ScanWithStats(Config{
		Paths:       []string{root},
		Root:        root,
		NoSignature: true,
		NoCache:     true,
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if res.FilesScanned != 3 {
		t.Fatalf("scanned %d, want 3", res.FilesScanned)
	}
	if res.Detected != 3 || res.Errors != 0 {
		t.Fatalf("detected=%d errors=%d", res.Detected, res.Errors)
	}
	if len(res.Results) != 3 {
		t.Fatalf("results %d, want 3", len(res.Results))
	}
	// Walk order is lexical.
	if res.Results[0].Category != types.Python {
		t.Fatalf("first result %+v", res.Results[0])
	}
	if res.Results[1].Category != types.JSON || res.Results[2].Category != types.Text {
		t.Fatalf("results %+v", res.Results)
	}
}

func TestScanOrderStableAcrossWorkers(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{}
	for _, n := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		files[n+".py"] = "print('x')\n"
	}
	mkTree(t, root, files)
	cfg := Config{Paths: []string{root}, Root: root, NoSignature: true, NoCache: true}

	cfg.Threads = 1
	one, err := ScanWithStats(cfg)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	cfg.Threads = 8
	many, err := ScanWithStats(cfg)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(one.Results) != len(many.Results) {
		t.Fatalf("lengths differ: %d vs %d", len(one.Results), len(many.Results))
	}
	for i := range one.Results {
		if one.Results[i].Path != many.Results[i].Path {
			t.Fatalf("order diverged at %d: %q vs %q", i, one.Results[i].Path, many.Results[i].Path)
		}
	}
}

func TestScanFilterTypes(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, map[string]string{
		"a.py":  "p",
		"b.go":  "g",
		"c.txt": "t",
	})
	res, err := ScanWithStats(Config{
		Paths:       []string{root},
		Root:        root,
		NoSignature: true,
		NoCache:     true,
		FilterTypes: []string{"python"},
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if res.FilesScanned != 3 {
		t.Fatalf("scanned %d, want 3", res.FilesScanned)
	}
	if len(res.Results) != 1 || res.Results[0].Category != types.Python {
		t.Fatalf("results %+v", res.Results)
	}
}

func TestScanSingleStage(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, map[string]string{
		"tagged.py": "x",
		"bare":      "import os\ndef f():\n    pass\n",
	})
	res, err := ScanWithStats(Config{
		Paths:       []string{root},
		Root:        root,
		NoSignature: true,
		Stage:       types.StageFilesystem,
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	// Only tagged.py has a filesystem-stage answer; bare is skipped, not
	// counted as an error.
	if res.FilesScanned != 1 {
		t.Fatalf("scanned %d, want 1", res.FilesScanned)
	}
	if len(res.Results) != 1 || res.Results[0].Category != types.Python {
		t.Fatalf("results %+v", res.Results)
	}
}

func TestScanCacheReuse(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, map[string]string{"bare": "import os\ndef f():\n    pass\n"})

	first, err := ScanWithStats(Config{Paths: []string{root}, Root: root, NoSignature: true})
	if err != nil {
		t.Fatalf("first scan: %v", err)
	}
	if first.Results[0].Category != types.Python {
		t.Fatalf("first result %+v", first.Results[0])
	}

	// Tamper with the stored category; an unchanged file must be served
	// from the cache, so the tampered value comes back.
	db, err := cache.Load(root)
	if err != nil {
		t.Fatalf("load cache: %v", err)
	}
	if len(db.Entries) != 1 {
		t.Fatalf("cache entries %d, want 1", len(db.Entries))
	}
	for k, e := range db.Entries {
		e.Category = types.Ruby
		db.Entries[k] = e
	}
	if err := cache.Save(root, db); err != nil {
		t.Fatalf("save cache: %v", err)
	}

	second, err := ScanWithStats(Config{Paths: []string{root}, Root: root, NoSignature: true})
	if err != nil {
		t.Fatalf("second scan: %v", err)
	}
	if second.Results[0].Category != types.Ruby {
		t.Fatalf("cache not used: %+v", second.Results[0])
	}

	// Changing the content invalidates the entry.
	if err := os.WriteFile(filepath.Join(root, "bare"), []byte("const x = 1;\nconsole.log(x);\nmodule.exports = x;\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	third, err := ScanWithStats(Config{Paths: []string{root}, Root: root, NoSignature: true})
	if err != nil {
		t.Fatalf("third scan: %v", err)
	}
	if third.Results[0].Category != types.JavaScript {
		t.Fatalf("stale cache served: %+v", third.Results[0])
	}
}

func TestScanNoCacheWritesNothing(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, map[string]string{"bare": "plain text\n"})
	if _, err := ScanWithStats(Config{Paths: []string{root}, Root: root, NoSignature: true, NoCache: true}); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, ".filespect-cache.json")); !os.IsNotExist(err) {
		t.Fatalf("cache file written despite NoCache (err=%v)", err)
	}
}

func TestMatchesFilter(t *testing.T) {
	r := types.DetectionResult{Category: types.Python}
	if !matchesFilter(r, nil) {
		t.Fatal("empty filter must pass everything")
	}
	if !matchesFilter(r, []string{"PYTHON"}) {
		t.Fatal("tag match is case-insensitive")
	}
	if !matchesFilter(r, []string{"Python source"}) {
		t.Fatal("label match failed")
	}
	if matchesFilter(r, []string{"ruby"}) {
		t.Fatal("non-matching filter passed")
	}
}

func TestHashSample(t *testing.T) {
	root := t.TempDir()
	p := filepath.Join(root, "f")
	if err := os.WriteFile(p, []byte("abc"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	h1, ok := hashSample(p)
	if !ok || h1 == "" {
		t.Fatalf("hash failed: %q %v", h1, ok)
	}
	h2, _ := hashSample(p)
	if h1 != h2 {
		t.Fatalf("hash not stable: %q vs %q", h1, h2)
	}
	if err := os.WriteFile(p, []byte("abd"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	h3, _ := hashSample(p)
	if h3 == h1 {
		t.Fatal("hash did not change with content")
	}
	if _, ok := hashSample(filepath.Join(root, "empty-or-missing")); ok {
		t.Fatal("missing file hashed")
	}
}
