package utils

import (
	"testing"
	"time"

	"github.com/elC0mpa/costexplorer-mcp/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid date", input: "2024-01-15", wantErr: false},
		{name: "valid leap day", input: "2024-02-29", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "wrong separator", input: "2024/01/15", wantErr: true},
		{name: "month 13", input: "2024-13-01", wantErr: true},
		{name: "day 32", input: "2024-01-32", wantErr: true},
		{name: "leap day in non-leap year", input: "2023-02-29", wantErr: true},
		{name: "trailing text", input: "2024-01-15T00:00:00", wantErr: true},
		{name: "not a date", input: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var invalidErr *model.InvalidInputError
				require.ErrorAs(t, err, &invalidErr)
				assert.Contains(t, err.Error(), "Expected YYYY-MM-DD")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.input, got)
			}
		})
	}
}

func TestDefaultDateRangeDaily(t *testing.T) {
	start, end, err := parseRange(t, "DAILY")
	require.NoError(t, err)

	assert.Equal(t, 30*24*time.Hour, end.Sub(start))
	assert.Equal(t, time.Now().Format("2006-01-02"), end.Format("2006-01-02"))
}

func TestDefaultDateRangeMonthly(t *testing.T) {
	start, end, err := parseRange(t, "MONTHLY")
	require.NoError(t, err)

	today := time.Now()
	assert.Equal(t, 1, start.Day())
	assert.Equal(t, today.Month(), start.Month())
	assert.Equal(t, today.Year(), start.Year())
	assert.Equal(t, today.Format("2006-01-02"), end.Format("2006-01-02"))
}

func TestDefaultLookbackRange(t *testing.T) {
	startStr, endStr := DefaultLookbackRange(7)

	start, err := time.Parse("2006-01-02", startStr)
	require.NoError(t, err)
	end, err := time.Parse("2006-01-02", endStr)
	require.NoError(t, err)

	assert.Equal(t, 7*24*time.Hour, end.Sub(start))
}

func parseRange(t *testing.T, granularity string) (time.Time, time.Time, error) {
	t.Helper()
	startStr, endStr := DefaultDateRange(granularity)
	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse("2006-01-02", endStr)
	return start, end, err
}
