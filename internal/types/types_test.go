package types

import (
	"strings"
	"testing"
)

func TestLabelKnown(t *testing.T) {
	if got := Python.Label(); got != "Python source" {
		t.Fatalf("Python.Label()=%q", got)
	}
	if got := SevenZip.Label(); got != "7-Zip archive" {
		t.Fatalf("SevenZip.Label()=%q", got)
	}
}

func TestLabelUnknownCategoryFallsBack(t *testing.T) {
	if got := Category("made-up").Label(); got != "made-up" {
		t.Fatalf("Label()=%q, want raw tag", got)
	}
}

func TestCategoriesCoverLabels(t *testing.T) {
	cats := Categories()
	if len(cats) != len(labels) {
		t.Fatalf("Categories() has %d entries, labels has %d", len(cats), len(labels))
	}
	seen := map[Category]bool{}
	for _, c := range cats {
		if seen[c] {
			t.Fatalf("duplicate category %q", c)
		}
		seen[c] = true
		if _, ok := labels[c]; !ok {
			t.Fatalf("category %q has no label", c)
		}
	}
}

func TestResultString(t *testing.T) {
	r := DetectionResult{Path: "a.py", Category: Python, Stage: StageFilesystem, Confidence: 0.8}
	if got := r.String(); got != "a.py: Python source" {
		t.Fatalf("String()=%q", got)
	}
	r.Explanation = "Extension: .py"
	if got := r.String(); !strings.Contains(got, "(Extension: .py)") {
		t.Fatalf("String()=%q, want explanation in parens", got)
	}
}
