package diff

import "slices"

// Run is a maximal contiguous span of one classification in a diff result.
//
// A run with neither flag set covers items the equality predicate matched positionally; its Value holds the current-side items. Added runs hold items present
// only in current, Removed runs hold items present only in previous. Added and Removed are mutually exclusive.
//
// Invariants:
//   - Count == len(Value)
//   - concat(Value) over non-removed runs == current
//   - concat(Value) over non-added runs == previous (under the equality used; exact for Runs)
type Run[T any] struct {
	Count   int  `json:"count"`             // Number of items in this span.
	Value   []T  `json:"value"`             // The items: from current, or from previous when Removed.
	Added   bool `json:"added,omitempty"`   // Present in current, absent in previous.
	Removed bool `json:"removed,omitempty"` // Present in previous, absent in current.
}

// Options configure a diff. The zero value (and a nil *Options) applies no edit-length bound.
type Options struct {
	// MaxEditLength caps how many edit-distance rounds the search attempts before giving up and reporting no result. 0 means unbounded; a shortest edit script
	// always exists within len(previous)+len(current) rounds, so an unbounded search terminates regardless.
	MaxEditLength int
}

// Runs diffs previous to current under ==, returning the shortest edit script as an ordered run list.
//
// The second result is false when Options.MaxEditLength was exceeded before the search converged; the run list is nil in that case.
func Runs[T comparable](previous, current []T, opts *Options) ([]Run[T], bool) {
	return RunsFunc(previous, current, func(a, b T) bool { return a == b }, opts)
}

// RunsFunc diffs previous to current under a caller-supplied equality predicate, returning the shortest edit script as an ordered run list.
//
// The predicate is applied positionally as equal(currentItem, previousItem) and does not need to be symmetric. Coarse predicates (matching items that are merely
// equivalent) are fine; unflagged runs then carry the current-side items.
//
// Runs appear in current order, with a deletion reported before an insertion at the same position. Equal-cost tie-breaking is fixed (it prefers the branch
// further along in current), so output is deterministic; callers depend on the resulting ordering being stable across calls.
//
// The second result is false when Options.MaxEditLength was exceeded before the search converged; the run list is nil in that case and must not be used.
func RunsFunc[T any](previous, current []T, equal func(a, b T) bool, opts *Options) ([]Run[T], bool) {
	oldLen := len(previous)
	newLen := len(current)

	maxD := oldLen + newLen
	if opts != nil && opts.MaxEditLength > 0 && opts.MaxEditLength < maxD {
		maxD = opts.MaxEditLength
	}

	// Slide down the diagonal as far as the items keep matching, recording the matched span as one unflagged component. Returns the previous-side position.
	extend := func(p *path, diagonal int) int {
		newPos := p.pos
		oldPos := newPos - diagonal
		common := 0
		for newPos+1 < newLen && oldPos+1 < oldLen && equal(current[newPos+1], previous[oldPos+1]) {
			newPos++
			oldPos++
			common++
		}
		if common > 0 {
			p.comps = append(p.comps, component{count: common})
		}
		p.pos = newPos
		return oldPos
	}

	// Seed round zero: if the inputs are equal end to end there is nothing more to search.
	seed := &path{pos: -1}
	oldPos := extend(seed, 0)
	if seed.pos+1 >= newLen && oldPos+1 >= oldLen {
		return []Run[T]{{Count: newLen, Value: slices.Clone(current)}}, true
	}

	// Furthest-reaching path per diagonal, indexed by diagonal+offset. Diagonal k holds paths where pos(current) - pos(previous) == k.
	offset := maxD
	best := make([]*path, 2*maxD+1)
	best[offset] = seed

	for d := 1; d <= maxD; d++ {
		for k := -d; k <= d; k += 2 {
			var insertPath, removePath *path
			if k-1 >= -maxD {
				insertPath = best[offset+k-1]
				// The insertion branch mutates its donor, so the slot must not be readable afterwards.
				best[offset+k-1] = nil
			}
			if k+1 <= maxD {
				removePath = best[offset+k+1]
			}

			oldPos := -k
			if removePath != nil {
				oldPos = removePath.pos - k
			}

			canInsert := insertPath != nil && insertPath.pos+1 < newLen
			canRemove := removePath != nil && oldPos >= 0 && oldPos < oldLen
			if !canInsert && !canRemove {
				best[offset+k] = nil
				continue
			}

			// Branch from whichever neighbor is further along in current. The deletion branch clones its donor (the slot stays live for the next diagonal);
			// the insertion branch owns its donor outright, so appending may mutate in place.
			var base *path
			if !canInsert || (canRemove && insertPath.pos < removePath.pos) {
				base = removePath.clone()
				base.push(component{count: 1, removed: true})
			} else {
				base = insertPath
				base.pos++
				base.push(component{count: 1, added: true})
			}

			oldPos = extend(base, k)

			if base.pos+1 >= newLen && oldPos+1 >= oldLen {
				return buildRuns(base.comps, previous, current), true
			}
			best[offset+k] = base
		}
	}

	return nil, false
}

// component is a span along one search path; values are attached later by buildRuns.
type component struct {
	count   int
	added   bool
	removed bool
}

// path is the furthest-reaching search state on one diagonal.
type path struct {
	pos   int // Index of the last consumed item of current; -1 before any progress.
	comps []component
}

func (p *path) clone() *path {
	return &path{pos: p.pos, comps: slices.Clone(p.comps)}
}

// push appends c, coalescing with the trailing component when the classification matches so consecutive single steps become one span.
func (p *path) push(c component) {
	if n := len(p.comps); n > 0 && p.comps[n-1].added == c.added && p.comps[n-1].removed == c.removed {
		p.comps[n-1].count += c.count
		return
	}
	p.comps = append(p.comps, c)
}

// buildRuns walks the winning path's components, slicing values out of current (or previous for removed spans). A removed span directly after an added one is
// swapped in front of it: deletions render before insertions at the same spot.
func buildRuns[T any](comps []component, previous, current []T) []Run[T] {
	runs := make([]Run[T], len(comps))
	newPos := 0
	oldPos := 0
	for i, c := range comps {
		if !c.removed {
			runs[i] = Run[T]{Count: c.count, Value: slices.Clone(current[newPos : newPos+c.count]), Added: c.added}
			newPos += c.count
			if !c.added {
				oldPos += c.count
			}
			continue
		}
		runs[i] = Run[T]{Count: c.count, Value: slices.Clone(previous[oldPos : oldPos+c.count]), Removed: true}
		oldPos += c.count
		if i > 0 && runs[i-1].Added {
			runs[i-1], runs[i] = runs[i], runs[i-1]
		}
	}
	return runs
}
