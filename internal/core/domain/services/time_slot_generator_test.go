package services_test

import (
	"testing"
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/services"
	"pickup/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 10, 16, hour, minute, 0, 0, time.UTC)
}

func values(slots []services.TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Value.String())
	}
	return out
}

func TestTimeSlotGenerator_Generate(t *testing.T) {
	gen := services.NewDefaultTimeSlotGenerator()

	t.Run("should return empty sequence late in the window", func(t *testing.T) {
		slots := gen.Generate(at(13, 50))

		assert.NotNil(t, slots)
		assert.Empty(t, slots)
	})

	t.Run("should return the whole window early in the morning", func(t *testing.T) {
		slots := gen.Generate(at(10, 0))

		require.Len(t, slots, 13)
		assert.Equal(t, "11:00", slots[0].Value.String())
		assert.Equal(t, "14:00", slots[len(slots)-1].Value.String())
		for i := 1; i < len(slots); i++ {
			assert.True(t, slots[i-1].Value.Before(slots[i].Value), "slots must be strictly ascending")
		}
	})

	t.Run("should exclude points at or before now plus buffer", func(t *testing.T) {
		tests := []struct {
			name  string
			now   time.Time
			first string
		}{
			{"exactly on a boundary", at(11, 0), "11:30"},
			{"between points", at(10, 52), "11:15"},
			{"one minute before boundary", at(11, 14), "11:30"},
			{"seconds are ignored", at(10, 45).Add(59 * time.Second), "11:15"},
			{"last reachable slot", at(13, 44), "14:00"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				slots := gen.Generate(tt.now)

				require.NotEmpty(t, slots)
				assert.Equal(t, tt.first, slots[0].Value.String())
			})
		}
	})

	t.Run("should produce identical output for identical input", func(t *testing.T) {
		assert.Equal(t, gen.Generate(at(11, 20)), gen.Generate(at(11, 20)))
	})

	t.Run("should read now in its own location", func(t *testing.T) {
		loc := time.FixedZone("UTC+3", 3*60*60)
		now := time.Date(2026, 10, 16, 10, 0, 0, 0, loc)

		assert.Equal(t, values(gen.Generate(at(10, 0))), values(gen.Generate(now)))
	})

	t.Run("should label slots on a 12-hour clock", func(t *testing.T) {
		slots := gen.Generate(at(11, 40))

		require.Len(t, slots, 9)
		assert.Equal(t, "12:00 PM", slots[0].Label)
		assert.Equal(t, "12:15 PM", slots[1].Label)
		assert.Equal(t, "2:00 PM", slots[len(slots)-1].Label)

		early := gen.Generate(at(10, 50))
		assert.Equal(t, "11:15 AM", early[0].Label)
	})

	t.Run("zero value generator yields nothing", func(t *testing.T) {
		var zero services.TimeSlotGenerator

		assert.Empty(t, zero.Generate(at(8, 0)))
		require.ErrorIs(t, zero.Validate(), services.ErrTimeSlotGeneratorIsNotConstructed)
	})
}

func TestTimeSlotGenerator_IsAvailable(t *testing.T) {
	gen := services.NewDefaultTimeSlotGenerator()
	now := at(11, 0)

	assert.True(t, gen.IsAvailable(now, "11:30"))
	assert.True(t, gen.IsAvailable(now, "14:00"))
	assert.False(t, gen.IsAvailable(now, "11:15"))
	assert.False(t, gen.IsAvailable(now, "11:20"))
	assert.False(t, gen.IsAvailable(now, "14:15"))
	assert.False(t, gen.IsAvailable(now, "not a time"))
	assert.False(t, gen.IsAvailable(now, ""))
}

func TestNewTimeSlotGenerator(t *testing.T) {
	t.Run("custom window and steps", func(t *testing.T) {
		gen, err := services.NewTimeSlotGenerator(kernel.MustTimeOfDay(17, 0), kernel.MustTimeOfDay(18, 0), 30, 0)
		require.NoError(t, err)

		assert.Equal(t, []string{"17:00", "17:30", "18:00"}, values(gen.Generate(at(16, 0))))
		assert.Equal(t, []string{"17:30", "18:00"}, values(gen.Generate(at(17, 0))))
	})

	t.Run("window that is not a multiple of granularity stops before end", func(t *testing.T) {
		gen, err := services.NewTimeSlotGenerator(kernel.MustTimeOfDay(11, 0), kernel.MustTimeOfDay(11, 40), 15, 0)
		require.NoError(t, err)

		assert.Equal(t, []string{"11:00", "11:15", "11:30"}, values(gen.Generate(at(9, 0))))
	})

	t.Run("single point window", func(t *testing.T) {
		gen, err := services.NewTimeSlotGenerator(kernel.MustTimeOfDay(12, 0), kernel.MustTimeOfDay(12, 0), 15, 15)
		require.NoError(t, err)

		assert.Equal(t, []string{"12:00"}, values(gen.Generate(at(11, 0))))
	})

	t.Run("should reject invalid parameters", func(t *testing.T) {
		_, err := services.NewTimeSlotGenerator(kernel.MustTimeOfDay(14, 0), kernel.MustTimeOfDay(11, 0), 0, -1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "granularity minutes")
		assert.Contains(t, err.Error(), "buffer minutes")
	})

	t.Run("should reject zero value window bounds", func(t *testing.T) {
		_, err := services.NewTimeSlotGenerator(kernel.TimeOfDay{}, kernel.MustTimeOfDay(11, 0), 15, 15)

		require.ErrorIs(t, err, kernel.ErrTimeOfDayIsNotConstructed)
	})
}
