package detect

import (
	"regexp"

	"github.com/filespect/filespect/internal/types"
)

type patternEntry struct {
	re     *regexp.Regexp
	weight int
}

type categoryPatterns struct {
	cat     types.Category
	entries []patternEntry
}

func p(expr string, weight int) patternEntry {
	return patternEntry{re: regexp.MustCompile(`(?im)` + expr), weight: weight}
}

// patternCatalog drives weighted content scoring. Catalog order is a
// deliberate tie-break policy: the first category whose accumulated weight
// reaches scoreThreshold wins, so more specific languages come first.
var patternCatalog = []categoryPatterns{
	{types.Python, []patternEntry{
		p(`^\s*import\s+\w+`, 3),
		p(`^\s*from\s+\w+\s+import`, 3),
		p(`^\s*def\s+\w+\s*\(`, 3),
		p(`^\s*class\s+\w+`, 3),
		p(`if\s+__name__\s*==\s*["']__main__["']`, 5),
		p(`^\s*@\w+`, 2),
		p(`print\s*\(`, 3),
	}},
	{types.JavaScript, []patternEntry{
		p(`^\s*function\s+\w+\s*\(`, 3),
		p(`^\s*var\s+\w+\s*=`, 2),
		p(`^\s*let\s+\w+\s*=`, 2),
		p(`^\s*const\s+\w+\s*=`, 2),
		p(`console\.log\s*\(`, 3),
		p(`require\s*\(["']`, 3),
		p(`module\.exports\s*=`, 3),
		p(`=>`, 2),
	}},
	{types.Java, []patternEntry{
		p(`^\s*public\s+class\s+\w+`, 5),
		p(`^\s*import\s+java\.`, 3),
		p(`^\s*package\s+\w+`, 3),
		p(`public\s+static\s+void\s+main`, 5),
		p(`System\.out\.print`, 3),
		p(`^\s*@Override`, 2),
	}},
	{types.C, []patternEntry{
		p(`#include\s*<[^>]+>`, 3),
		p(`#include\s*"[^"]+"`, 3),
		p(`^\s*int\s+main\s*\(`, 4),
		p(`printf\s*\(`, 3),
		p(`malloc\s*\(`, 2),
		p(`free\s*\(`, 2),
	}},
	{types.CPP, []patternEntry{
		p(`#include\s*<[^>]+>`, 3),
		p(`using\s+namespace\s+std`, 4),
		p(`std::`, 3),
		p(`cout\s*<<`, 3),
		p(`cin\s*>>`, 3),
		p(`^\s*class\s+\w+`, 3),
	}},
	{types.HTML, []patternEntry{
		p(`<!DOCTYPE\s+html>`, 5),
		p(`<html[^>]*>`, 4),
		p(`<head[^>]*>`, 3),
		p(`<body[^>]*>`, 3),
		p(`<div[^>]*>`, 2),
		p(`<p[^>]*>`, 2),
	}},
	{types.CSS, []patternEntry{
		p(`[^{]+\{[^}]+\}`, 4),
		p(`@media\s`, 3),
		p(`@import\s`, 3),
		p(`color\s*:\s*[^;]+;`, 2),
		p(`background\s*:\s*[^;]+;`, 2),
	}},
}

// scoreThreshold is the minimum accumulated weight for a confident match.
const scoreThreshold = 3
