package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeParser(t *testing.T) {
	parsed, err := TimeParser("2024-03-15 10:30:00")
	require.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, 15, parsed.Day())
}

func TestTimeParserRejectsGarbage(t *testing.T) {
	_, err := TimeParser("not a date")
	assert.Error(t, err)
}

func TestParseTimeRangeOpenBounds(t *testing.T) {
	start, end, err := ParseTimeRange("", "")
	require.NoError(t, err)
	assert.True(t, start.IsZero())
	assert.True(t, end.IsZero())
}

func TestParseTimeRange(t *testing.T) {
	start, end, err := ParseTimeRange("2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.False(t, start.IsZero())
	assert.True(t, start.Before(end))
}
