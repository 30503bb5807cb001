package predicate_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validkit/validkit/pkg/predicate"
)

func TestMatches(t *testing.T) {
	t.Run("matches pattern", func(t *testing.T) {
		p, err := predicate.Matches(`^[a-z]+$`)
		require.NoError(t, err)

		assert.True(t, p("lowercase"))
		assert.False(t, p("UPPER"))
	})

	t.Run("empty value always fails", func(t *testing.T) {
		p, err := predicate.Matches(`^.*$`)
		require.NoError(t, err)

		assert.False(t, p(""))
	})

	t.Run("returns error for invalid pattern", func(t *testing.T) {
		p, err := predicate.Matches(`[unclosed`)
		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "invalid pattern")
	})
}

func TestLengthFactories(t *testing.T) {
	t.Run("min len counts runes", func(t *testing.T) {
		p := predicate.MinLen(3)
		assert.True(t, p("abc"))
		assert.True(t, p("日本語"))
		assert.False(t, p("ab"))
	})

	t.Run("max len counts runes", func(t *testing.T) {
		p := predicate.MaxLen(3)
		assert.True(t, p("abc"))
		assert.True(t, p(""))
		assert.False(t, p("abcd"))
	})

	t.Run("len between is inclusive", func(t *testing.T) {
		p := predicate.LenBetween(2, 4)
		assert.False(t, p("a"))
		assert.True(t, p("ab"))
		assert.True(t, p("abcd"))
		assert.False(t, p("abcde"))
	})
}

func TestOneOf(t *testing.T) {
	p := predicate.OneOf("red", "green", "blue")

	assert.True(t, p("green"))
	assert.False(t, p("yellow"))
	assert.False(t, p(""))
}

func TestMinMax(t *testing.T) {
	t.Run("min compares numerically", func(t *testing.T) {
		p := predicate.Min(18)
		assert.True(t, p("18"))
		assert.True(t, p("21.5"))
		assert.False(t, p("17"))
		assert.False(t, p("9")) // string compare would pass this
	})

	t.Run("max compares numerically", func(t *testing.T) {
		p := predicate.Max(100)
		assert.True(t, p("100"))
		assert.False(t, p("100.1"))
	})

	t.Run("non-numeric values fail", func(t *testing.T) {
		assert.False(t, predicate.Min(0)("abc"))
		assert.False(t, predicate.Max(0)(""))
	})
}

func TestPasswordFormat(t *testing.T) {
	digit := regexp.MustCompile(`[0-9]`)

	t.Run("enforces length and required class", func(t *testing.T) {
		p := predicate.PasswordFormat(4, 8, digit)

		assert.True(t, p("ab12"))
		assert.True(t, p("abcdefg1"))
		assert.False(t, p(""))
		assert.False(t, p("ab1"))       // too short
		assert.False(t, p("abcdefgh1")) // too long
		assert.False(t, p("abcdefgh"))  // no digit
	})

	t.Run("nil contain checks length only", func(t *testing.T) {
		p := predicate.PasswordFormat(4, 8, nil)

		assert.True(t, p("abcd"))
		assert.False(t, p("abc"))
	})
}
