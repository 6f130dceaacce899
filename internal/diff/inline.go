package diff

import "github.com/hplt-project/OpusCleaner/internal/uni"

// Inline computes the character-level diff of one changed text field, for rendering addition and deletion spans inside a cell. Tokens are grapheme clusters.
//
// The search is capped at half the longer side's cluster count: past that point the fields barely overlap and a character alignment is mostly noise. The second
// result is false when the cap was exceeded; callers then render the field as a whole-field replacement instead.
func Inline(previous, current string) ([]Run[string], bool) {
	prevClusters := uni.Clusters(previous)
	curClusters := uni.Clusters(current)

	longer := len(prevClusters)
	if len(curClusters) > longer {
		longer = len(curClusters)
	}

	// Halving floors to zero for fields of at most one cluster; under a zero cap only equal fields converge.
	bound := longer / 2
	if bound < 1 {
		if previous == current {
			return []Run[string]{{Count: len(curClusters), Value: curClusters}}, true
		}
		return nil, false
	}

	return stringRuns(prevClusters, curClusters, &Options{MaxEditLength: bound})
}
