package rows

import (
	"fmt"
	"strings"

	"github.com/hplt-project/OpusCleaner/internal/diff"
	"github.com/hplt-project/OpusCleaner/internal/uni"
)

// Colors (ANSI) for pretty output.
const (
	ansiReset     = "\x1b[0m"
	ansiBlackFG   = "\x1b[30m"
	ansiPinkLine  = "\x1b[48;5;224m" // light pink for removed rows
	ansiPinkSpan  = "\x1b[48;5;217m" // slightly darker pink for removed spans
	ansiGreenLine = "\x1b[48;5;194m" // light green for added rows
	ansiGreenSpan = "\x1b[48;5;114m" // slightly darker green for added spans
	ansiCyanBold  = "\x1b[1;36m"
)

const ellipsis = "…"

// RenderPretty returns a colorized rendering of classified runs for
// terminals, one line per row. Lines are prefixed like a diff: " " for rows
// identical across all columns, "-" for removed rows, "+" for added rows, and
// "~" for rows changed in place. Within changed rows, per-column additions
// and deletions are highlighted; a column too dissimilar for a character
// alignment is shown as the whole old text followed by the whole new text.
//
// width > 0 lays columns out in a table, each cell truncated and padded to an
// equal share of width. width <= 0 joins cells with tabs, untruncated.
//
// contextSize limits how many identical rows are shown before and after each
// group of changes; elided spans are replaced by a count marker. Two change
// groups separated by at most 2*contextSize identical rows merge into one.
// Negative contextSize shows every row.
//
// The output contains ANSI 256-color escape sequences and is intended for
// terminals, not for machine consumption.
func RenderPretty(runs []ClassifiedRun, langs []string, width, contextSize int) string {
	return render(runs, langs, width, contextSize, true)
}

// RenderText is RenderPretty without color, for pipes and files. Changed rows
// mark their edits inline, wdiff-style: deleted spans as [-text-] and added
// spans as {+text+}.
func RenderText(runs []ClassifiedRun, langs []string, width, contextSize int) string {
	return render(runs, langs, width, contextSize, false)
}

// renderRow is one display line: a classification tag plus the row (and, for
// changed rows, the previous-side row to diff against).
type renderRow struct {
	tag  byte // ' ', '+', '-', '~'
	row  Row
	prev Row // set when tag == '~'
}

func render(runs []ClassifiedRun, langs []string, width, contextSize int, color bool) string {
	flat := flatten(runs)
	keep := markContext(flat, contextSize)
	budget := cellBudget(width, len(langs))

	var out []string
	skipped := 0
	flush := func() {
		if skipped == 0 {
			return
		}
		marker := fmt.Sprintf("  (%d identical rows)", skipped)
		if color {
			marker = ansiCyanBold + marker + ansiReset
		}
		out = append(out, marker)
		skipped = 0
	}

	for i, r := range flat {
		if !keep[i] {
			skipped++
			continue
		}
		flush()
		out = append(out, renderLine(r, langs, budget, color))
	}
	flush()

	return strings.Join(out, "\n")
}

func flatten(runs []ClassifiedRun) []renderRow {
	var flat []renderRow
	for _, run := range runs {
		switch {
		case run.Added:
			for _, row := range run.Value {
				flat = append(flat, renderRow{tag: '+', row: row})
			}
		case run.Removed:
			for _, row := range run.Value {
				flat = append(flat, renderRow{tag: '-', row: row})
			}
		case run.Changed:
			for _, pair := range run.Differences {
				flat = append(flat, renderRow{tag: '~', row: pair.Current, prev: pair.Previous})
			}
		default:
			for _, row := range run.Value {
				flat = append(flat, renderRow{tag: ' ', row: row})
			}
		}
	}
	return flat
}

// markContext keeps every changed row plus up to contextSize identical rows on
// either side. Two change groups separated by at most 2*contextSize identical
// rows merge into one. Negative contextSize keeps everything.
func markContext(flat []renderRow, contextSize int) []bool {
	keep := make([]bool, len(flat))
	if contextSize < 0 {
		for i := range keep {
			keep[i] = true
		}
		return keep
	}
	for i, r := range flat {
		if r.tag == ' ' {
			continue
		}
		lo := i - contextSize
		if lo < 0 {
			lo = 0
		}
		hi := i + contextSize
		if hi > len(flat)-1 {
			hi = len(flat) - 1
		}
		for j := lo; j <= hi; j++ {
			keep[j] = true
		}
	}
	return keep
}

// cellBudget splits width across the language columns, accounting for the
// two-column line prefix and the two-space gaps between cells. Returns 0 (no
// truncation) when width is unset or too narrow to matter.
func cellBudget(width, columns int) int {
	if width <= 0 || columns == 0 {
		return 0
	}
	b := (width - 2 - 2*(columns-1)) / columns
	if b < 2 {
		return 0
	}
	return b
}

func renderLine(r renderRow, langs []string, budget int, color bool) string {
	var cells []string
	for _, lang := range langs {
		var cell string
		var cellWidth int
		if r.tag == '~' && r.prev[lang] != r.row[lang] {
			cell, cellWidth = renderChangedCell(r.prev[lang], r.row[lang], budget, color)
		} else {
			cell, cellWidth = renderPlainCell(r.row[lang], budget)
		}
		if budget > 0 && cellWidth < budget {
			cell += strings.Repeat(" ", budget-cellWidth)
		}
		cells = append(cells, cell)
	}

	sep := "\t"
	if budget > 0 {
		sep = "  "
	}
	content := strings.Join(cells, sep)

	if !color {
		return string(r.tag) + " " + content
	}
	switch r.tag {
	case '+':
		return ansiBlackFG + ansiGreenLine + "+ " + content + ansiReset
	case '-':
		return ansiBlackFG + ansiPinkLine + "- " + content + ansiReset
	case '~':
		return "~ " + content
	default:
		return ansiBlackFG + "  " + content + ansiReset
	}
}

func renderPlainCell(text string, budget int) (string, int) {
	if budget > 0 {
		text = uni.Truncate(text, budget, ellipsis, nil)
	}
	return text, uni.TextWidth(text, nil)
}

// renderChangedCell renders one edited column with its additions and
// deletions marked. When the inline diff gives up (the texts barely overlap),
// the whole old text is shown as one deletion and the whole new text as one
// addition.
func renderChangedCell(prev, cur string, budget int, color bool) (string, int) {
	runs, ok := diff.Inline(prev, cur)
	if !ok {
		prevClusters := uni.Clusters(prev)
		curClusters := uni.Clusters(cur)
		runs = []diff.Run[string]{
			{Count: len(prevClusters), Value: prevClusters, Removed: true},
			{Count: len(curClusters), Value: curClusters, Added: true},
		}
	}

	markers := func(run diff.Run[string]) int {
		if !color && (run.Added || run.Removed) {
			return 4 // the wdiff delimiters count toward the cell width
		}
		return 0
	}

	total := 0
	for _, run := range runs {
		if len(run.Value) == 0 {
			continue
		}
		total += markers(run)
		for _, cluster := range run.Value {
			total += uni.TextWidth(cluster, nil)
		}
	}

	var b strings.Builder
	if budget <= 0 || total <= budget {
		for _, run := range runs {
			writeSpan(&b, run, strings.Join(run.Value, ""), color)
		}
		return b.String(), total
	}

	// Too wide: emit cluster by cluster until the budget is spent, reserving
	// one column for the ellipsis.
	width := 0
	for _, run := range runs {
		var span strings.Builder
		for _, cluster := range run.Value {
			need := uni.TextWidth(cluster, nil)
			if span.Len() == 0 {
				need += markers(run)
			}
			if width+need > budget-1 {
				writeSpan(&b, run, span.String(), color)
				b.WriteString(ellipsis)
				return b.String(), width + 1
			}
			span.WriteString(cluster)
			width += need
		}
		writeSpan(&b, run, span.String(), color)
	}
	return b.String(), width
}

// writeSpan appends text to b with run's classification marking: colored
// backgrounds in color mode, wdiff-style [-text-] and {+text+} otherwise.
// Empty spans emit nothing.
func writeSpan(b *strings.Builder, run diff.Run[string], text string, color bool) {
	if text == "" {
		return
	}
	switch {
	case run.Removed && color:
		b.WriteString(ansiBlackFG + ansiPinkSpan + text + ansiReset)
	case run.Removed:
		b.WriteString("[-" + text + "-]")
	case run.Added && color:
		b.WriteString(ansiBlackFG + ansiGreenSpan + text + ansiReset)
	case run.Added:
		b.WriteString("{+" + text + "+}")
	default:
		b.WriteString(text)
	}
}
