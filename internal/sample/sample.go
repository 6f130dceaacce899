// Package sample takes bounded samples from line streams too large to hold in
// memory: the first k items, a uniform random selection from the middle, and
// the last k items, all in one pass.
package sample

import (
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"
)

// Iterator yields a stream of items: Next advances and reports whether an
// item is available, Value returns it. The shape matches uax29's segment
// iterators.
type Iterator[T any] interface {
	Next() bool
	Value() T
}

// Sections is a three-part sample of a stream.
type Sections[T any] struct {
	Head   []T // first k items
	Middle []T // uniform sample of everything between Head and Tail, in stream order
	Tail   []T // last k items
}

// Take reads it to exhaustion and returns up to k items from its start, its
// end, and a uniform random selection of up to k items from everything in
// between. Streams shorter than 3k yield short or empty sections, never
// duplicated items. k <= 0 returns the whole stream in Head.
//
// The middle selection is reservoir sampling with skip distances (Li's
// Algorithm L), so only selected items cost random draws. A nil rng uses an
// unseeded source; pass a seeded one for reproducible output.
func Take[T any](k int, it Iterator[T], rng *rand.Rand) Sections[T] {
	var s Sections[T]
	if k <= 0 {
		for it.Next() {
			s.Head = append(s.Head, it.Value())
		}
		return s
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	for len(s.Head) < k && it.Next() {
		s.Head = append(s.Head, it.Value())
	}

	tail := newTailer(k, it)
	s.Middle = reservoir(k, tail, rng)
	s.Tail = tail.items()
	return s
}

// reservoir fills a k-slot buffer from it, then jumps ahead by randomly drawn
// skip distances, replacing a random slot with the item it lands on. Every
// item ends up selected with probability k/n. Results come back in stream
// order.
func reservoir[T any](k int, it Iterator[T], rng *rand.Rand) []T {
	type numbered struct {
		index int
		item  T
	}
	var buf []numbered

	i := -1 // stream index of the last item read
	for len(buf) < k && it.Next() {
		i++
		buf = append(buf, numbered{i, it.Value()})
	}

	w := math.Exp(math.Log(rng.Float64()) / float64(k))
	for {
		next := i + int(math.Floor(math.Log(rng.Float64())/math.Log(1-w))) + 1
		var item T
		exhausted := false
		for i < next {
			if !it.Next() {
				exhausted = true
				break
			}
			i++
			item = it.Value()
		}
		if exhausted {
			break
		}
		buf[rng.Intn(k)] = numbered{i, item}
		w *= math.Exp(math.Log(rng.Float64()) / float64(k))
	}

	sort.Slice(buf, func(a, b int) bool { return buf[a].index < buf[b].index })
	var out []T
	for _, n := range buf {
		out = append(out, n.item)
	}
	return out
}

// tailer passes a stream through while retaining its last k items in a ring
// buffer. Until k items are buffered it yields nothing; after that each Next
// yields the item displaced by the newest read.
type tailer[T any] struct {
	inner Iterator[T]
	buf   []T
	k     int
	count int
	cur   T
}

func newTailer[T any](k int, inner Iterator[T]) *tailer[T] {
	return &tailer[T]{inner: inner, k: k}
}

func (t *tailer[T]) Next() bool {
	for len(t.buf) < t.k {
		if !t.inner.Next() {
			return false
		}
		t.buf = append(t.buf, t.inner.Value())
	}
	if !t.inner.Next() {
		return false
	}
	i := t.count % t.k
	t.cur = t.buf[i]
	t.buf[i] = t.inner.Value()
	t.count++
	return true
}

func (t *tailer[T]) Value() T { return t.cur }

// items returns the retained tail in stream order. When the stream ended
// before the buffer filled, it returns everything read.
func (t *tailer[T]) items() []T {
	if len(t.buf) < t.k {
		return t.buf
	}
	i := t.count % t.k
	return append(append([]T{}, t.buf[i:]...), t.buf[:i]...)
}

// FromSlice returns an Iterator over items.
func FromSlice[T any](items []T) Iterator[T] {
	return &sliceIterator[T]{items: items}
}

type sliceIterator[T any] struct {
	items []T
	cur   T
}

func (s *sliceIterator[T]) Next() bool {
	if len(s.items) == 0 {
		return false
	}
	s.cur = s.items[0]
	s.items = s.items[1:]
	return true
}

func (s *sliceIterator[T]) Value() T { return s.cur }

// Zip yields one joined row per line across columns, stopping at the shortest
// column. A leading line-number column can be added with Count.
func Zip(delimiter string, columns ...Iterator[string]) Iterator[string] {
	return &zipIterator{delimiter: delimiter, columns: columns}
}

type zipIterator struct {
	delimiter string
	columns   []Iterator[string]
	row       string
}

func (z *zipIterator) Next() bool {
	if len(z.columns) == 0 {
		return false
	}
	fields := make([]string, len(z.columns))
	for i, col := range z.columns {
		if !col.Next() {
			return false
		}
		fields[i] = col.Value()
	}
	z.row = strings.Join(fields, z.delimiter)
	return true
}

func (z *zipIterator) Value() string { return z.row }

// Count yields "0", "1", "2", ... without end, for use as a Zip column.
func Count() Iterator[string] {
	return &countIterator{}
}

type countIterator struct {
	next int
	cur  string
}

func (c *countIterator) Next() bool {
	c.cur = strconv.Itoa(c.next)
	c.next++
	return true
}

func (c *countIterator) Value() string { return c.cur }
