package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("01/03/2024")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDateRange_Overlaps(t *testing.T) {
	a, err := ParseDateRange("2024-03-01", "2024-03-05")
	require.NoError(t, err)

	cases := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"inside", "2024-03-02", "2024-03-03", true},
		{"touching end", "2024-03-05", "2024-03-10", true},
		{"touching start", "2024-02-25", "2024-03-01", true},
		{"covering", "2024-02-01", "2024-04-01", true},
		{"before", "2024-02-01", "2024-02-29", false},
		{"after", "2024-03-06", "2024-03-10", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := ParseDateRange(tc.from, tc.to)
			require.NoError(t, err)
			assert.Equal(t, tc.want, a.Overlaps(b))
			assert.Equal(t, tc.want, b.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestDateRange_Days(t *testing.T) {
	single, err := ParseDateRange("2024-03-01", "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 1, single.Days())

	week, err := ParseDateRange("2024-03-01", "2024-03-07")
	require.NoError(t, err)
	assert.Equal(t, 7, week.Days())

	inverted, err := ParseDateRange("2024-03-07", "2024-03-01")
	require.NoError(t, err)
	assert.True(t, inverted.Inverted())
	assert.Equal(t, 0, inverted.Days())
}

func TestDateRange_DaysInMonth(t *testing.T) {
	straddling, err := ParseDateRange("2024-02-27", "2024-03-03")
	require.NoError(t, err)

	assert.Equal(t, 3, straddling.DaysInMonth(2024, time.February))
	assert.Equal(t, 3, straddling.DaysInMonth(2024, time.March))
	assert.Equal(t, 0, straddling.DaysInMonth(2024, time.April))
	assert.Equal(t, 0, straddling.DaysInMonth(2023, time.February))
}
