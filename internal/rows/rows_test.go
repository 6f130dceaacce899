package rows

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRow_MatchesAny(t *testing.T) {
	langs := []string{"en", "fr"}

	a := Row{"en": "hello", "fr": "bonjour"}

	assert.True(t, a.MatchesAny(Row{"en": "hello", "fr": "salut"}, langs))
	assert.True(t, a.MatchesAny(Row{"en": "hi", "fr": "bonjour"}, langs))
	assert.True(t, a.MatchesAny(Row{"en": "hello", "fr": "bonjour"}, langs))
	assert.False(t, a.MatchesAny(Row{"en": "hi", "fr": "salut"}, langs))

	// Only listed languages count.
	assert.False(t, a.MatchesAny(Row{"en": "hi", "fr": "salut", "de": "hallo"}, langs))
	assert.False(t, a.MatchesAny(Row{"en": "hi"}, nil))
}

func TestRow_MatchesAll(t *testing.T) {
	langs := []string{"en", "fr"}

	a := Row{"en": "hello", "fr": "bonjour"}

	assert.True(t, a.MatchesAll(Row{"en": "hello", "fr": "bonjour"}, langs))
	assert.False(t, a.MatchesAll(Row{"en": "hello", "fr": "salut"}, langs))
	assert.True(t, a.MatchesAll(Row{"en": "hi"}, nil))
}

func TestRow_MissingColumnReadsEmpty(t *testing.T) {
	langs := []string{"en", "fr"}

	// A column absent from both rows, or absent from one and empty in the
	// other, compares equal.
	assert.True(t, Row{"en": "a"}.MatchesAll(Row{"en": "a"}, langs))
	assert.True(t, Row{"en": "a"}.MatchesAll(Row{"en": "a", "fr": ""}, langs))
	assert.True(t, Row{"en": "x"}.MatchesAny(Row{"en": "y"}, langs))
}
