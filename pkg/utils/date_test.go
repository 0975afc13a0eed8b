package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2026-08-25")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC), *date)

	date, err = ParseDate("")
	require.NoError(t, err)
	assert.True(t, date.IsZero())

	_, err = ParseDate("25/08/2026")
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	in := time.Date(2026, 8, 31, 14, 30, 45, 999, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), Truncate(in))
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2026, 8, 31, 1, 0, 0, 0, time.UTC)
	night := time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(morning, night))
	assert.False(t, SameDay(night, nextDay))
}
