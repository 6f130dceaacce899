package diff

import (
	"fmt"
	"strings"

	"github.com/hplt-project/OpusCleaner/internal/uni"
)

// Runes diffs previous to current split into Unicode code points.
func Runes(previous, current string, opts *Options) ([]Run[string], bool) {
	return stringRuns(splitRunes(previous), splitRunes(current), opts)
}

// Graphemes diffs previous to current split into grapheme clusters, so a combining sequence or an emoji never splits mid-cluster.
func Graphemes(previous, current string, opts *Options) ([]Run[string], bool) {
	return stringRuns(uni.Clusters(previous), uni.Clusters(current), opts)
}

// Tokens diffs two caller-tokenized texts (words, lines, fields). Tokens may be empty strings: a trailing added/removed run whose text is empty is folded into
// the run before it, so tokenizers that keep separators don't report a dangling empty change at a trailing newline.
func Tokens(previous, current []string, opts *Options) ([]Run[string], bool) {
	return stringRuns(previous, current, opts)
}

// stringRuns is the shared text entry point: diff, fold a trailing empty change, validate.
//
// Validation failures panic: the engine producing runs that don't reconstruct their inputs is a bug here, never a caller error.
func stringRuns(previous, current []string, opts *Options) ([]Run[string], bool) {
	runs, ok := RunsFunc(previous, current, func(a, b string) bool { return a == b }, opts)
	if !ok {
		return nil, false
	}
	runs = foldTrailingEmpty(runs)

	if err := validateRuns(previous, current, runs); err != nil {
		panic(fmt.Errorf("diff: validate failed with %v", err))
	}
	return runs, true
}

// foldTrailingEmpty merges a final added/removed run whose joined text is empty into the run before it. Both texts still reconstruct exactly; only the empty
// token moves.
func foldTrailingEmpty(runs []Run[string]) []Run[string] {
	if len(runs) < 2 {
		return runs
	}
	last := runs[len(runs)-1]
	if !last.Added && !last.Removed {
		return runs
	}
	if strings.Join(last.Value, "") != "" {
		return runs
	}
	prev := &runs[len(runs)-2]
	prev.Value = append(prev.Value, last.Value...)
	prev.Count += last.Count
	return runs[:len(runs)-1]
}

func splitRunes(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
