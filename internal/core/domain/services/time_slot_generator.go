package services

import (
	"errors"
	"fmt"
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"
)

const (
	DefaultGranularityMinutes = 15
	DefaultBufferMinutes      = 15
)

var (
	DefaultWindowStart = kernel.MustTimeOfDay(11, 0)
	DefaultWindowEnd   = kernel.MustTimeOfDay(14, 0)
)

// ErrTimeSlotGeneratorIsNotConstructed is returned when a TimeSlotGenerator was
// not created through one of its constructors.
var ErrTimeSlotGeneratorIsNotConstructed = errors.New(
	"TimeSlotGenerator must be created via NewTimeSlotGenerator or NewDefaultTimeSlotGenerator")

// TimeSlot is a selectable pickup time.
// Value.String() is the "HH:MM" token sent back on submit, Label is for display.
type TimeSlot struct {
	Value kernel.TimeOfDay
	Label string
}

// TimeSlotGenerator lists pickup times inside the serving window that are
// still reachable from a given moment.
//
// Candidate points are windowStart, windowStart+granularity, ... up to and
// including windowEnd. A point is offered only if it lies strictly after
// now + buffer, so a customer always has at least buffer minutes before pickup.
//
// Example:
//
//	gen := services.NewDefaultTimeSlotGenerator()
//	slots := gen.Generate(time.Date(2026, 1, 5, 10, 50, 0, 0, loc))
//	// 11:15 AM, 11:30 AM, ..., 2:00 PM
type TimeSlotGenerator struct {
	windowStart kernel.TimeOfDay
	windowEnd   kernel.TimeOfDay
	granularity int
	buffer      int

	guard guard.ConstructorGuard
}

// NewTimeSlotGenerator validates the window and step sizes.
func NewTimeSlotGenerator(
	windowStart, windowEnd kernel.TimeOfDay,
	granularityMinutes, bufferMinutes int,
) (TimeSlotGenerator, error) {
	g := TimeSlotGenerator{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		g.setWindow(windowStart, windowEnd),
		g.setGranularity(granularityMinutes),
		g.setBuffer(bufferMinutes),
	); err != nil {
		return TimeSlotGenerator{}, err
	}

	return g, nil
}

// NewDefaultTimeSlotGenerator serves 11:00 to 14:00 in 15 minute steps with a
// 15 minute preparation buffer.
func NewDefaultTimeSlotGenerator() TimeSlotGenerator {
	return TimeSlotGenerator{
		windowStart: DefaultWindowStart,
		windowEnd:   DefaultWindowEnd,
		granularity: DefaultGranularityMinutes,
		buffer:      DefaultBufferMinutes,
		guard:       guard.NewConstructorGuard(),
	}
}

func (g TimeSlotGenerator) Validate() error {
	return g.guard.Validate(ErrTimeSlotGeneratorIsNotConstructed)
}

// Generate returns the available slots for now in ascending order.
// now is read in its own location; the result may be empty.
func (g TimeSlotGenerator) Generate(now time.Time) []TimeSlot {
	if g.Validate() != nil {
		return []TimeSlot{}
	}

	cutoff := kernel.TimeOfDayFromTime(now).Minutes() + g.buffer
	slots := make([]TimeSlot, 0, (g.windowEnd.Minutes()-g.windowStart.Minutes())/g.granularity+1)

	for point := g.windowStart.Minutes(); point <= g.windowEnd.Minutes(); point += g.granularity {
		if point <= cutoff {
			continue
		}

		value, err := kernel.TimeOfDayFromMinutes(point)
		if err != nil {
			break
		}

		slots = append(slots, TimeSlot{
			Value: value,
			Label: value.Label(),
		})
	}

	return slots
}

// IsAvailable reports whether the "HH:MM" token names one of Generate(now).
func (g TimeSlotGenerator) IsAvailable(now time.Time, value string) bool {
	wanted, err := kernel.ParseTimeOfDay(value)
	if err != nil {
		return false
	}

	for _, slot := range g.Generate(now) {
		if slot.Value.IsEqual(wanted) {
			return true
		}
	}

	return false
}

func (g *TimeSlotGenerator) setWindow(start, end kernel.TimeOfDay) error {
	if err := errors.Join(start.Validate(), end.Validate()); err != nil {
		return err
	}

	if end.Before(start) {
		return errs.NewValueIsInvalidErrorWithCause(
			"serving window",
			fmt.Errorf("end %s is before start %s", end, start),
		)
	}

	g.windowStart = start
	g.windowEnd = end
	return nil
}

func (g *TimeSlotGenerator) setGranularity(minutes int) error {
	if minutes < 1 || minutes > kernel.MinutesPerDay {
		return errs.NewValueIsOutOfRangeError("granularity minutes", minutes, 1, kernel.MinutesPerDay)
	}
	g.granularity = minutes
	return nil
}

func (g *TimeSlotGenerator) setBuffer(minutes int) error {
	if minutes < 0 || minutes > kernel.MinutesPerDay {
		return errs.NewValueIsOutOfRangeError("buffer minutes", minutes, 0, kernel.MinutesPerDay)
	}
	g.buffer = minutes
	return nil
}
