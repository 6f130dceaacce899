package rows

import (
	"fmt"

	"github.com/hplt-project/OpusCleaner/internal/diff"
)

// RowPair aligns one current-side row with the previous-side row it replaced.
type RowPair struct {
	Previous Row `json:"previous"`
	Current  Row `json:"current"`
}

// ClassifiedRun is a diff run over rows with the coarsely-equal spans further
// split into truly identical and changed-in-place sub-spans.
//
// Exactly one of Added, Removed, or Changed may be set; all unset means the
// rows are identical across every language column. Value holds the
// current-side rows (previous-side for Removed runs). When Changed is set,
// Differences pairs each row of Value with its previous-side counterpart, and
// len(Differences) == len(Value).
type ClassifiedRun struct {
	Count       int       `json:"count"`
	Value       []Row     `json:"value"`
	Added       bool      `json:"added,omitempty"`
	Removed     bool      `json:"removed,omitempty"`
	Changed     bool      `json:"changed,omitempty"`
	Differences []RowPair `json:"differences,omitempty"`
}

// Classify diffs previous to current and reports what a filter step did to the
// sample: which rows it added, removed, edited in place, or left alone.
//
// Rows align under MatchesAny over langs, so an edit that rewrites one column
// but keeps another shows up as a changed row instead of a remove/add pair.
// Each coarsely-equal run is then re-scanned under MatchesAll and split into
// identical and changed sub-runs; the split pieces cover the run exactly and
// stay in current order.
func Classify(langs []string, previous, current []Row) []ClassifiedRun {
	runs, ok := diff.RunsFunc(previous, current, func(a, b Row) bool {
		return a.MatchesAny(b, langs)
	}, nil)
	if !ok {
		// Unbounded searches always converge.
		panic(fmt.Errorf("rows: diff of %d x %d rows did not converge", len(previous), len(current)))
	}

	// Work list: unflagged runs that still need the identity scan. Splitting a
	// run pushes its tail back on the front so nested changed blocks surface on
	// later passes.
	queue := make([]diff.Run[Row], len(runs))
	copy(queue, runs)

	out := make([]ClassifiedRun, 0, len(runs))
	offset := 0 // aligned position in previous; added runs never advance it

	for len(queue) > 0 {
		run := queue[0]
		queue = queue[1:]

		switch {
		case run.Added:
			out = append(out, ClassifiedRun{Count: run.Count, Value: run.Value, Added: true})

		case run.Removed:
			out = append(out, ClassifiedRun{Count: run.Count, Value: run.Value, Removed: true})
			offset += run.Count

		default:
			value := run.Value
			count := run.Count

			first := 0
			for first < count && value[first].MatchesAll(previous[offset+first], langs) {
				first++
			}
			if first == count {
				out = append(out, ClassifiedRun{Count: count, Value: value})
				offset += count
				continue
			}
			if first > 0 {
				out = append(out, ClassifiedRun{Count: first, Value: value[:first]})
				offset += first
				value = value[first:]
				count -= first
			}

			// value[0] differs; the changed block runs until the columns match
			// up again.
			last := 1
			for last < count && !value[last].MatchesAll(previous[offset+last], langs) {
				last++
			}

			changed := ClassifiedRun{Count: last, Value: value[:last], Changed: true, Differences: make([]RowPair, last)}
			for i := 0; i < last; i++ {
				changed.Differences[i] = RowPair{Previous: previous[offset+i], Current: value[i]}
			}
			out = append(out, changed)
			offset += last

			if last < count {
				queue = append([]diff.Run[Row]{{Count: count - last, Value: value[last:]}}, queue...)
			}
		}
	}

	return out
}
