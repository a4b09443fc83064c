package when_test

import (
	"testing"
	"time"

	"github.com/on-the-ground/switchcase/when"
	"github.com/rickb777/date/v2/timespan"
	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	assert.True(t, when.Is("apple", "apple"))
	assert.False(t, when.Is(1, 2))
}

func TestOneOf(t *testing.T) {
	assert.True(t, when.OneOf("pear", "apple", "pear"))
	assert.False(t, when.OneOf("broccoli", "apple", "pear"))
	assert.False(t, when.OneOf(1))
}

func TestInRange(t *testing.T) {
	assert.True(t, when.InRange(5, 1, 5))
	assert.True(t, when.InRange(1, 1, 5))
	assert.False(t, when.InRange(6, 1, 5))
	assert.True(t, when.InRange("b", "a", "c"))
}

func TestBetween(t *testing.T) {
	from := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	assert.True(t, when.Between(from, to, from))
	assert.True(t, when.Between(from, to, from.Add(30*time.Minute)))
	assert.False(t, when.Between(from, to, to.Add(time.Minute)))
	assert.False(t, when.Between(from, to, from.Add(-time.Minute)))
}

func TestWithin(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	span := timespan.BetweenTimes(start, start.Add(24*time.Hour))

	assert.True(t, when.Within(span, start.Add(12*time.Hour)))
	assert.False(t, when.Within(span, start.Add(48*time.Hour)))
}
