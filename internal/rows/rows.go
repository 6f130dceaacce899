package rows

// Row is one sentence pair across the dataset's languages, keyed by language
// code. A language missing from the map reads as "", so sparse rows compare on
// the empty string rather than being an error.
type Row map[string]string

// MatchesAny reports whether at least one of the listed language columns is
// equal between r and other. This is the coarse alignment predicate: rows that
// share a single column are probably the same underlying sentence, possibly
// edited, and should line up as one position in a diff rather than as a
// delete/insert pair.
//
// An empty langs list matches nothing.
func (r Row) MatchesAny(other Row, langs []string) bool {
	for _, lang := range langs {
		if r[lang] == other[lang] {
			return true
		}
	}
	return false
}

// MatchesAll reports whether every listed language column is equal between r
// and other. This is the identity predicate used to tell truly untouched rows
// apart from rows a filter edited in place.
//
// An empty langs list matches everything.
func (r Row) MatchesAll(other Row, langs []string) bool {
	for _, lang := range langs {
		if r[lang] != other[lang] {
			return false
		}
	}
	return true
}
