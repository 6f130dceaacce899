package rows

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderText_ChangedRowMarksSpans(t *testing.T) {
	previous := []Row{{"en": "a", "fr": "A"}}
	current := []Row{{"en": "a", "fr": "AX"}}

	got := RenderText(Classify(enFR, previous, current), enFR, 0, -1)
	assert.Equal(t, "~ a\tA{+X+}", got)
}

func TestRenderText_AddedAndRemovedRows(t *testing.T) {
	previous := []Row{{"en": "old"}}
	current := []Row{{"en": "new"}}

	got := RenderText(Classify([]string{"en"}, previous, current), []string{"en"}, 0, -1)
	assert.Equal(t, "- old\n+ new", got)
}

func TestRenderText_WholesaleReplacementFallback(t *testing.T) {
	// The fr texts share nothing, so the inline diff gives up and the cell
	// shows the whole old text deleted and the whole new text added.
	previous := []Row{{"en": "k", "fr": "ABCDEF"}}
	current := []Row{{"en": "k", "fr": "UVWXYZ"}}

	got := RenderText(Classify(enFR, previous, current), enFR, 0, -1)
	assert.Equal(t, "~ k\t[-ABCDEF-]{+UVWXYZ+}", got)
}

func TestRenderText_ContextElision(t *testing.T) {
	var previous, current []Row
	for _, i := range []string{"0", "1", "2", "3", "4", "5", "6"} {
		previous = append(previous, Row{"en": "r" + i, "fr": "F" + i})
		current = append(current, Row{"en": "r" + i, "fr": "F" + i})
	}
	current[3] = Row{"en": "r3", "fr": "F3x"}

	got := RenderText(Classify(enFR, previous, current), enFR, 0, 1)
	want := strings.Join([]string{
		"  (2 identical rows)",
		"  r2\tF2",
		"~ r3\tF3{+x+}",
		"  r4\tF4",
		"  (2 identical rows)",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRenderText_ZeroContextShowsOnlyChanges(t *testing.T) {
	previous := []Row{{"en": "same"}, {"en": "gone"}}
	current := []Row{{"en": "same"}}

	got := RenderText(Classify([]string{"en"}, previous, current), []string{"en"}, 0, 0)
	want := strings.Join([]string{
		"  (1 identical rows)",
		"- gone",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRenderText_TableLayout(t *testing.T) {
	runs := []ClassifiedRun{{Count: 1, Value: []Row{{"en": "abc", "fr": "d"}}}}

	// width 20 over two columns: prefix 2 + cell 8 + gap 2 + cell 8.
	got := RenderText(runs, enFR, 20, -1)
	assert.Equal(t, "  abc       d       ", got)
}

func TestRenderText_TableTruncatesWideCells(t *testing.T) {
	runs := []ClassifiedRun{{Count: 1, Value: []Row{{"en": "abcdefghijk", "fr": "d"}}}}

	got := RenderText(runs, enFR, 20, -1)
	assert.Equal(t, "  abcdefg…  d       ", got)
}

func TestRenderText_TableTruncatesChangedCells(t *testing.T) {
	previous := []Row{{"en": "k", "fr": "ABCDEFGHIJ"}}
	current := []Row{{"en": "k", "fr": "ABCDEFGHIJK"}}

	got := RenderText(Classify(enFR, previous, current), enFR, 20, -1)
	assert.Equal(t, "~ k         ABCDEFG…", got)
}

func TestRenderPretty_ANSI(t *testing.T) {
	previous := []Row{{"en": "old", "fr": "OLD"}}
	current := []Row{
		{"en": "b", "fr": "B"},
		{"en": "old", "fr": "OLD2"},
	}

	got := RenderPretty(Classify(enFR, previous, current), enFR, 0, -1)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, ansiBlackFG+ansiGreenLine+"+ b\tB"+ansiReset, lines[0])

	// The changed row highlights only the edited span.
	assert.True(t, strings.HasPrefix(lines[1], "~ "))
	assert.Contains(t, lines[1], ansiGreenSpan)
	assert.NotContains(t, lines[1], ansiPinkSpan)
}

func TestRenderPretty_ElisionMarkerIsColored(t *testing.T) {
	runs := []ClassifiedRun{{Count: 2, Value: []Row{{"en": "a"}, {"en": "b"}}}}

	got := RenderPretty(runs, []string{"en"}, 0, 0)
	assert.Equal(t, ansiCyanBold+"  (2 identical rows)"+ansiReset, got)
}

func TestRenderText_Empty(t *testing.T) {
	assert.Equal(t, "", RenderText(nil, enFR, 0, -1))
}
