package rows

// Summary counts rows per change class across a classified run list.
// Additions and Changes count current-side rows, Deletions previous-side rows;
// rows identical across all columns are in none of the three.
type Summary struct {
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
	Changes   int `json:"changes"`
}

// Summarize folds the run list into per-class row counts.
func Summarize(runs []ClassifiedRun) Summary {
	var s Summary
	for _, r := range runs {
		switch {
		case r.Added:
			s.Additions += r.Count
		case r.Removed:
			s.Deletions += r.Count
		case r.Changed:
			s.Changes += r.Count
		}
	}
	return s
}
