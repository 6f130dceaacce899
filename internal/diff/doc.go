// Package diff computes shortest-edit-script diffs between two sequences, "previous" and "current".
//
// Representation: A diff is an ordered slice of runs. Each Run covers a maximal contiguous span of one classification:
//   - unflagged: items the equality predicate matched positionally (Value holds the current-side items)
//   - Added: items present only in current
//   - Removed: items present only in previous
//
// Invariants:
//   - run.Count == len(run.Value)
//   - concatenating Value over non-removed runs reproduces current
//   - concatenating Value over non-added runs reproduces previous (under the equality used)
//   - a deletion is reported before an insertion at the same position
//
// Equality: Runs compares with ==; RunsFunc takes any predicate, including coarse ones that match items which merely correspond (the row classifier matches rows
// on a single shared column this way). The predicate is called as equal(currentItem, previousItem).
//
// Bounded search: Options.MaxEditLength caps the edit distance explored. When the cap is hit the functions report no result (ok == false) instead of a run list;
// Inline uses this to give up on fields so different that a character alignment would be noise.
//
// Tokenization: Runes, Graphemes, and Tokens diff text as code points, grapheme clusters, or caller-supplied tokens respectively. Inline is the per-field
// variant used for intra-row highlights. The generic Runs/RunsFunc work over any item type, such as whole dataset rows.
package diff
