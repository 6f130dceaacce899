package diff

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/require"
)

func TestRuns_EqualInputs(t *testing.T) {
	s := []string{"a", "b", "c"}

	runs, ok := Runs(s, s, nil)
	require.True(t, ok)
	require.Equal(t, []Run[string]{{Count: 3, Value: []string{"a", "b", "c"}}}, runs)
}

func TestRuns_BothEmpty(t *testing.T) {
	runs, ok := Runs[string](nil, nil, nil)
	require.True(t, ok)
	require.Len(t, runs, 1)
	require.Equal(t, 0, runs[0].Count)
	require.False(t, runs[0].Added)
	require.False(t, runs[0].Removed)
}

func TestRuns_EmptyPrevious(t *testing.T) {
	cur := []string{"x", "y"}

	runs, ok := Runs(nil, cur, nil)
	require.True(t, ok)
	require.Equal(t, []Run[string]{{Count: 2, Value: []string{"x", "y"}, Added: true}}, runs)
}

func TestRuns_EmptyCurrent(t *testing.T) {
	prev := []string{"x", "y"}

	runs, ok := Runs(prev, nil, nil)
	require.True(t, ok)
	require.Equal(t, []Run[string]{{Count: 2, Value: []string{"x", "y"}, Removed: true}}, runs)
}

func TestRuns_RemovedReportedBeforeAdded(t *testing.T) {
	// A replacement is a removed run followed by an added run, never the other
	// way around. Renderers depend on this ordering.
	runs, ok := Runs([]string{"a"}, []string{"b"}, nil)
	require.True(t, ok)
	require.Equal(t, []Run[string]{
		{Count: 1, Value: []string{"a"}, Removed: true},
		{Count: 1, Value: []string{"b"}, Added: true},
	}, runs)
}

func TestRuns_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		previous []string
		current  []string
		want     []Run[string]
	}{
		{
			name:     "append",
			previous: []string{"a"},
			current:  []string{"a", "b"},
			want: []Run[string]{
				{Count: 1, Value: []string{"a"}},
				{Count: 1, Value: []string{"b"}, Added: true},
			},
		},
		{
			name:     "prepend",
			previous: []string{"b"},
			current:  []string{"a", "b"},
			want: []Run[string]{
				{Count: 1, Value: []string{"a"}, Added: true},
				{Count: 1, Value: []string{"b"}},
			},
		},
		{
			name:     "drop head",
			previous: []string{"a", "b"},
			current:  []string{"b"},
			want: []Run[string]{
				{Count: 1, Value: []string{"a"}, Removed: true},
				{Count: 1, Value: []string{"b"}},
			},
		},
		{
			name:     "replace middle",
			previous: []string{"a", "b", "c"},
			current:  []string{"a", "x", "c"},
			want: []Run[string]{
				{Count: 1, Value: []string{"a"}},
				{Count: 1, Value: []string{"b"}, Removed: true},
				{Count: 1, Value: []string{"x"}, Added: true},
				{Count: 1, Value: []string{"c"}},
			},
		},
		{
			name:     "adjacent insert and delete blocks",
			previous: []string{"a", "b", "c", "d", "e"},
			current:  []string{"a", "b", "z", "c", "e"},
			want: []Run[string]{
				{Count: 2, Value: []string{"a", "b"}},
				{Count: 1, Value: []string{"z"}, Added: true},
				{Count: 1, Value: []string{"c"}},
				{Count: 1, Value: []string{"d"}, Removed: true},
				{Count: 1, Value: []string{"e"}},
			},
		},
		{
			name:     "coalesced multi-item insert",
			previous: []string{"a", "d"},
			current:  []string{"a", "b", "c", "d"},
			want: []Run[string]{
				{Count: 1, Value: []string{"a"}},
				{Count: 2, Value: []string{"b", "c"}, Added: true},
				{Count: 1, Value: []string{"d"}},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runs, ok := Runs(tc.previous, tc.current, nil)
			require.True(t, ok)
			require.Equal(t, tc.want, runs)
		})
	}
}

func TestRunsFunc_CoarseEquality(t *testing.T) {
	// Items match when they share a first byte; the unflagged run must carry the
	// current-side items, not the previous-side ones.
	prev := []string{"a1", "b1"}
	cur := []string{"a2", "b2"}

	runs, ok := RunsFunc(prev, cur, func(a, b string) bool { return a[0] == b[0] }, nil)
	require.True(t, ok)
	require.Equal(t, []Run[string]{{Count: 2, Value: []string{"a2", "b2"}}}, runs)
}

func TestRunsFunc_PredicateArgumentOrder(t *testing.T) {
	// The predicate sees (current item, previous item); it doesn't need to be
	// symmetric.
	prev := []string{"p"}
	cur := []string{"c"}

	called := false
	runs, ok := RunsFunc(prev, cur, func(a, b string) bool {
		called = true
		require.Equal(t, "c", a)
		require.Equal(t, "p", b)
		return true
	}, nil)
	require.True(t, ok)
	require.True(t, called)
	require.Len(t, runs, 1)
}

func TestRuns_MaxEditLength(t *testing.T) {
	prev := []string{"a", "b"}
	cur := []string{"x", "y"}

	// Nothing in common: the shortest script is 4 edits.
	runs, ok := Runs(prev, cur, &Options{MaxEditLength: 3})
	require.False(t, ok)
	require.Nil(t, runs)

	runs, ok = Runs(prev, cur, &Options{MaxEditLength: 4})
	require.True(t, ok)
	require.NotNil(t, runs)

	// A single append converges within one round.
	runs, ok = Runs([]string{"a"}, []string{"a", "b"}, &Options{MaxEditLength: 1})
	require.True(t, ok)
	require.Len(t, runs, 2)

	// Zero means unbounded.
	runs, ok = Runs(prev, cur, &Options{MaxEditLength: 0})
	require.True(t, ok)
	require.NotNil(t, runs)
}

func TestRuns_Reconstruction(t *testing.T) {
	// Fuzz against diffmatchpatch: both compute shortest edit scripts, so the
	// total added and removed counts must agree, and our runs must reconstruct
	// both inputs exactly.
	rng := rand.New(rand.NewSource(42))
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0 // no timeout: dmp stays exact instead of falling back to heuristics

	const alphabet = "abcd"
	randRunes := func(n int) []rune {
		out := make([]rune, n)
		for i := range out {
			out[i] = rune(alphabet[rng.Intn(len(alphabet))])
		}
		return out
	}

	for i := 0; i < 200; i++ {
		prev := randRunes(rng.Intn(40))
		cur := randRunes(rng.Intn(40))

		runs, ok := Runs(prev, cur, nil)
		require.True(t, ok)

		var gotPrev, gotCur []rune
		gotAdded, gotRemoved := 0, 0
		for _, r := range runs {
			require.Equal(t, r.Count, len(r.Value))
			require.False(t, r.Added && r.Removed)
			if !r.Removed {
				gotCur = append(gotCur, r.Value...)
			}
			if !r.Added {
				gotPrev = append(gotPrev, r.Value...)
			}
			if r.Added {
				gotAdded += r.Count
			}
			if r.Removed {
				gotRemoved += r.Count
			}
		}
		require.Equal(t, string(prev), string(gotPrev), "previous reconstruction, case %d", i)
		require.Equal(t, string(cur), string(gotCur), "current reconstruction, case %d", i)

		wantAdded, wantRemoved := 0, 0
		for _, d := range dmp.DiffMainRunes(prev, cur, false) {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				wantAdded += len([]rune(d.Text))
			case diffmatchpatch.DiffDelete:
				wantRemoved += len([]rune(d.Text))
			}
		}
		require.Equal(t, wantAdded, gotAdded, "added count, case %d: %q -> %q", i, string(prev), string(cur))
		require.Equal(t, wantRemoved, gotRemoved, "removed count, case %d: %q -> %q", i, string(prev), string(cur))
	}
}

func BenchmarkRunsFunc(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	prev := make([]string, 200)
	for i := range prev {
		prev[i] = strings.Repeat(string(rune('a'+rng.Intn(26))), 1+rng.Intn(3))
	}
	cur := make([]string, len(prev))
	copy(cur, prev)
	for i := 0; i < 20; i++ {
		cur[rng.Intn(len(cur))] = "edited"
	}

	equal := func(a, b string) bool { return a == b }

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := RunsFunc(prev, cur, equal, nil); !ok {
			b.Fatal("diff did not converge")
		}
	}
}
