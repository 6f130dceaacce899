// Package uni provides Unicode segmentation and terminal-width helpers for text fields.
//
// Dataset text is diffed and rendered in grapheme clusters, not bytes or runes, so a combining sequence or an emoji is never split down the middle. Widths are
// monospace terminal column counts.
package uni

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// Options control width calculation. Only relevant for East Asian code points and their locale.
type Options struct {
	EastAsianWidth   bool // if true, treats certain East Asian code points as 2 wide (e.g., Chinese, Japanese, Korean). Use if the locale is one of CJK.
	TreatEmojiAsWide bool // Only considered if EastAsianWidth. If true, treats emoji as wide (2 columns).
}

// Clusters splits s into grapheme clusters. Concatenating the result reproduces s exactly.
func Clusters(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	iter := graphemes.FromString(s)
	for iter.Next() {
		out = append(out, iter.Value())
	}
	return out
}

// TextWidth returns the text width of s for monospace fonts in terminals. If opts is nil, locale is assumed to be non-East Asian.
func TextWidth(s string, opts *Options) int {
	return conditionFromOptions(opts).StringWidth(s)
}

// Truncate shortens s to at most maxWidth terminal columns, appending tail (whose width counts against maxWidth) when anything was cut. Cuts happen on grapheme
// cluster boundaries. If opts is nil, locale is assumed to be non-East Asian.
func Truncate(s string, maxWidth int, tail string, opts *Options) string {
	cond := conditionFromOptions(opts)
	if cond.StringWidth(s) <= maxWidth {
		return s
	}

	budget := maxWidth - cond.StringWidth(tail)
	var b strings.Builder
	width := 0
	iter := graphemes.FromString(s)
	for iter.Next() {
		w := cond.StringWidth(iter.Value())
		if width+w > budget {
			break
		}
		b.WriteString(iter.Value())
		width += w
	}
	return b.String() + tail
}

func conditionFromOptions(opts *Options) *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true

	if opts == nil {
		return cond
	}

	cond.EastAsianWidth = opts.EastAsianWidth
	if opts.EastAsianWidth && opts.TreatEmojiAsWide {
		cond.StrictEmojiNeutral = false
	}

	return cond
}
