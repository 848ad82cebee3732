// Package classify implements pattern scoring and per-dimension label
// selection over question text.
package classify

import "github.com/sells-group/quizbee-cli/internal/catalog"

// Score counts how many distinct rules match anywhere in text. Multiple hits
// of the same rule count once; downstream repair heuristics compare these
// counts and depend on exactly this definition.
func Score(text string, rules []catalog.Rule) int {
	n := 0
	for i := range rules {
		if rules[i].Match(text) {
			n++
		}
	}
	return n
}
