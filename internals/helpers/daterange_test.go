package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRangeValidate(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, DateRange{}.Validate())
	assert.NoError(t, DateRange{From: from}.Validate())
	assert.NoError(t, DateRange{From: from, To: from}.Validate())

	err := DateRange{From: from, To: from.AddDate(0, 0, -1)}.Validate()
	require.Error(t, err)
	var apiErr *ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeInvalidDate, apiErr.Code)
}

func TestDayRangeCoversFullDay(t *testing.T) {
	at := time.Date(2026, 3, 1, 14, 30, 0, 0, time.UTC)
	r := DayRange(at)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), r.From)
	assert.True(t, r.To.After(time.Date(2026, 3, 1, 23, 59, 59, 0, time.UTC)))
	assert.True(t, r.To.Before(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)))
}

func TestMonthRange(t *testing.T) {
	r, err := MonthRange(2026, 2, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), r.From)
	// 2026 is not a leap year; the window ends just before March 1st.
	assert.True(t, r.To.Before(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.To.After(time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC)))
}

func TestMonthRangeRejectsOutOfBounds(t *testing.T) {
	cases := []struct {
		year, month int
	}{
		{2026, 0},
		{2026, 13},
		{1999, 6},
		{2101, 6},
	}
	for _, tc := range cases {
		_, err := MonthRange(tc.year, tc.month, time.UTC)
		require.Error(t, err)
		var apiErr *ApiError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, CodeInvalidParameters, apiErr.Code)
	}
}
