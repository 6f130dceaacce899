// Package rows models parallel-text dataset rows and classifies how a filter
// step changed a sample of them.
//
// A Row maps language codes to that sentence's text in each language. Two
// samples of the same dataset slice, taken before and after a filter runs,
// are compared with Classify, which aligns rows under coarse equality (any
// one column equal) and reports maximal runs of rows that were added,
// removed, changed in place, or untouched:
//
//   - Added: rows present only in the current sample
//   - Removed: rows present only in the previous sample
//   - Changed: rows that aligned but differ in at least one column; each such
//     row carries its previous/current pair for per-column inspection
//   - none of the above: rows identical across every language column
//
// Invariants:
//   - concatenating Value over non-removed runs reproduces the current sample
//   - Removed run values are previous-sample rows, in previous order
//   - a Changed run's Differences align one-to-one with its Value
//   - every Differences pair differs in some column yet matches in another
//
// ParseRows and ParseOutput turn a filter's tab-separated stdout into rows.
// Summarize folds a classified run list into added/removed/changed counts.
// RenderPretty and RenderText lay classified runs out for terminals, with
// per-column intra-row highlights from the inline character diff.
package rows
