package kernel_test

import (
	"testing"
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeOfDay(t *testing.T) {
	t.Run("valid clock reading", func(t *testing.T) {
		tod, err := kernel.NewTimeOfDay(13, 45)

		require.NoError(t, err)
		require.NoError(t, tod.Validate())
		assert.Equal(t, 13, tod.Hour())
		assert.Equal(t, 45, tod.Minute())
		assert.Equal(t, 13*60+45, tod.Minutes())
	})

	t.Run("midnight is valid", func(t *testing.T) {
		tod, err := kernel.NewTimeOfDay(0, 0)

		require.NoError(t, err)
		require.NoError(t, tod.Validate())
		assert.Equal(t, "00:00", tod.String())
	})

	t.Run("out of range parts are all reported", func(t *testing.T) {
		_, err := kernel.NewTimeOfDay(24, 60)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "hour")
		assert.Contains(t, err.Error(), "minute")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var tod kernel.TimeOfDay

		assert.Equal(t, kernel.ErrTimeOfDayIsNotConstructed, tod.Validate())
	})
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "11:00", want: "11:00"},
		{input: "9:05", want: "09:05"},
		{input: " 14:00 ", want: "14:00"},
		{input: "", wantErr: true},
		{input: "1100", wantErr: true},
		{input: "11:5", wantErr: true},
		{input: "aa:00", wantErr: true},
		{input: "25:00", wantErr: true},
		{input: "11:60", wantErr: true},
		{input: "no-slots", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tod, err := kernel.ParseTimeOfDay(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, tod.String())
		})
	}
}

func TestTimeOfDay_Label(t *testing.T) {
	tests := []struct {
		hour, minute int
		want         string
	}{
		{0, 0, "12:00 AM"},
		{0, 30, "12:30 AM"},
		{9, 5, "9:05 AM"},
		{11, 15, "11:15 AM"},
		{12, 0, "12:00 PM"},
		{13, 45, "1:45 PM"},
		{14, 0, "2:00 PM"},
		{23, 59, "11:59 PM"},
	}

	for _, tt := range tests {
		tod := kernel.MustTimeOfDay(tt.hour, tt.minute)
		assert.Equal(t, tt.want, tod.Label())
		assert.Equal(t, tod.Label(), tod.Label())
	}
}

func TestTimeOfDayFromTime(t *testing.T) {
	loc := time.FixedZone("vendor", -5*60*60)
	now := time.Date(2026, 10, 16, 13, 50, 59, 999, loc)

	tod := kernel.TimeOfDayFromTime(now)

	require.NoError(t, tod.Validate())
	assert.Equal(t, "13:50", tod.String())
}

func TestTimeOfDayFromMinutes(t *testing.T) {
	tod, err := kernel.TimeOfDayFromMinutes(14 * 60)
	require.NoError(t, err)
	assert.Equal(t, "14:00", tod.String())

	_, err = kernel.TimeOfDayFromMinutes(kernel.MinutesPerDay)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = kernel.TimeOfDayFromMinutes(-1)
	require.Error(t, err)
}

func TestTimeOfDay_Comparisons(t *testing.T) {
	a := kernel.MustTimeOfDay(11, 0)
	b := kernel.MustTimeOfDay(11, 15)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.IsEqual(b))
	assert.True(t, a.IsEqual(kernel.MustTimeOfDay(11, 0)))
}
