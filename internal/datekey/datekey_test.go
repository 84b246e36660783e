package datekey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTimeZeroPads(t *testing.T) {
	cases := []struct {
		y, d int
		m    time.Month
		want string
	}{
		{2025, 1, time.January, "2025-01-01"},
		{2025, 31, time.January, "2025-01-31"},
		{2024, 29, time.February, "2024-02-29"}, // leap year
		{2025, 9, time.November, "2025-11-09"},
		{2025, 31, time.December, "2025-12-31"},
	}
	for _, c := range cases {
		got := FromTime(time.Date(c.y, c.m, c.d, 15, 4, 5, 0, time.Local))
		assert.Equal(t, c.want, got)
	}
}

func TestLexicographicOrderMatchesChronology(t *testing.T) {
	// Walk a year and a half day by day across month and year
	// boundaries; every consecutive pair of keys must order the same
	// way as the dates themselves.
	cur := time.Date(2024, time.February, 25, 12, 0, 0, 0, time.UTC)
	prev := FromTime(cur)
	for i := 0; i < 550; i++ {
		cur = cur.AddDate(0, 0, 1)
		next := FromTime(cur)
		require.Less(t, prev, next, "keys out of order at %s", next)
		prev = next
	}
}

func TestMonthOf(t *testing.T) {
	mk, err := MonthOf("2025-11-05")
	require.NoError(t, err)
	assert.Equal(t, "2025-11", mk)

	// month key of a freshly derived day key matches the month format
	now := time.Date(2024, time.February, 29, 23, 59, 0, 0, time.Local)
	mk, err = MonthOf(FromTime(now))
	require.NoError(t, err)
	assert.Equal(t, MonthFromTime(now), mk)
}

func TestMonthOfMalformed(t *testing.T) {
	for _, input := range []string{"", "2025-11", "2025/11/05", "20251105", "2025-1-05", "2025-11-0x", "2025-11-05T10:00"} {
		_, err := MonthOf(input)
		var ferr *FormatError
		require.ErrorAs(t, err, &ferr, "input %q", input)
		assert.Equal(t, input, ferr.Input)
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2025-11-05")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2025, Month: 11, Day: 5}, d)

	d, err = Parse("0001-01-01")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 1, Month: 1, Day: 1}, d)
}

func TestParseMalformedReturnsZeroDate(t *testing.T) {
	d, err := Parse("not-a-key!")
	require.Error(t, err)
	assert.Equal(t, Date{}, d)
}
