package kernel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"
)

const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour
)

// ErrTimeOfDayIsNotConstructed is returned when validating a zero-value TimeOfDay.
var ErrTimeOfDayIsNotConstructed = errs.NewValueIsRequiredError(
	"time of day must be created via NewTimeOfDay, ParseTimeOfDay, TimeOfDayFromMinutes or TimeOfDayFromTime")

// TimeOfDay is a wall-clock minute within a day, without date or zone.
// Serving windows and pickup slots are expressed in it; the "HH:MM" form
// returned by String is the token exchanged with clients and stored with orders.
type TimeOfDay struct { //nolint:recvcheck //using for validation
	minutes int
	guard   guard.ConstructorGuard
}

// NewTimeOfDay builds a TimeOfDay from a 24-hour clock reading.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	t := TimeOfDay{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(t.setHour(hour), t.setMinute(minute)); err != nil {
		return TimeOfDay{}, err
	}

	return t, nil
}

// MustTimeOfDay is NewTimeOfDay for compile-time constants; it panics on bad input.
func MustTimeOfDay(hour, minute int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeOfDayFromMinutes builds a TimeOfDay from minutes since midnight.
func TimeOfDayFromMinutes(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes >= MinutesPerDay {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minutes", minutes, 0, MinutesPerDay-1)
	}
	return NewTimeOfDay(minutes/MinutesPerHour, minutes%MinutesPerHour)
}

// TimeOfDayFromTime takes the clock reading of t in t's own location.
// Seconds and below are dropped.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return TimeOfDay{
		minutes: t.Hour()*MinutesPerHour + t.Minute(),
		guard:   guard.NewConstructorGuard(),
	}
}

// ParseTimeOfDay parses the "HH:MM" 24-hour token.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	hourPart, minutePart, found := strings.Cut(strings.TrimSpace(value), ":")
	if !found || len(minutePart) != 2 || hourPart == "" || len(hourPart) > 2 {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause(
			"time of day", fmt.Errorf("%q is not in HH:MM format", value))
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause("time of day", err)
	}

	minute, err := strconv.Atoi(minutePart)
	if err != nil {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause("time of day", err)
	}

	return NewTimeOfDay(hour, minute)
}

// Validate returns ErrTimeOfDayIsNotConstructed for the zero value.
func (t TimeOfDay) Validate() error {
	return t.guard.Validate(ErrTimeOfDayIsNotConstructed)
}

func (t TimeOfDay) Hour() int {
	return t.minutes / MinutesPerHour
}

func (t TimeOfDay) Minute() int {
	return t.minutes % MinutesPerHour
}

// Minutes returns the number of minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.minutes
}

func (t TimeOfDay) IsEqual(other TimeOfDay) bool {
	return t.minutes == other.minutes
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.minutes > other.minutes
}

// String returns the zero-padded 24-hour token, e.g. "09:45".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Label renders the 12-hour clock form, e.g. "11:15 AM" or "12:00 PM".
// The output depends on the value only.
func (t TimeOfDay) Label() string {
	period := "AM"
	if t.Hour() >= 12 {
		period = "PM"
	}

	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%d:%02d %s", hour, t.Minute(), period)
}

func (t *TimeOfDay) setHour(hour int) error {
	if hour < 0 || hour > 23 {
		return errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}

	t.minutes = hour*MinutesPerHour + t.minutes%MinutesPerHour
	return nil
}

func (t *TimeOfDay) setMinute(minute int) error {
	if minute < 0 || minute > 59 {
		return errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}

	t.minutes = t.minutes - t.minutes%MinutesPerHour + minute
	return nil
}
