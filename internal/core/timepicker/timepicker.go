package timepicker

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"layoutkit/internal/core/apperr"
)

const (
	// DayHours is the modulus of hour arithmetic.
	DayHours = 24
	// MaxHour is the largest accepted hour.
	MaxHour = 23
	// MaxMinute is the largest accepted minute.
	MaxMinute   = 59
	maxDigits   = 2
	fieldFormat = "%02d"
)

// ErrInvalidTime is returned when a value is requested from a picker whose
// buffers do not pass ValidateTime.
var ErrInvalidTime = errors.New("invalid time")

// TimeValue is a validated time of day.
type TimeValue struct {
	Hour   int
	Minute int
}

// On combines the value with the calendar day of date.
func (value TimeValue) On(date time.Time) time.Time {
	year, month, day := date.Date()
	return time.Date(year, month, day, value.Hour, value.Minute, 0, 0, date.Location())
}

func (value TimeValue) String() string {
	return fmt.Sprintf("%02d:%02d", value.Hour, value.Minute)
}

// ValidField reports whether value may be committed to a field whose
// maximum is max. Blank is always allowed so the user can clear a field.
func ValidField(value string, max int) bool {
	if value == "" {
		return true
	}
	if len(value) > maxDigits {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return false
	}
	return parsed >= 0 && parsed <= max
}

// Carry returns the hour after the minute field moved from oldMinute to
// newMinute. Only the 59->0 and 0->59 transitions roll the hour; the edit
// direction is not considered.
func Carry(oldMinute, newMinute, hour int) int {
	switch {
	case oldMinute == MaxMinute && newMinute == 0:
		return (hour + 1) % DayHours
	case oldMinute == 0 && newMinute == MaxMinute:
		return (hour - 1 + DayHours) % DayHours
	default:
		return hour
	}
}

// Picker holds the hour and minute edit buffers of a time-of-day input.
// Buffers may be blank or partial while editing but never hold a value
// outside their range or a non-digit string.
type Picker struct {
	hour       string
	minute     string
	lastMinute string
}

// New creates a picker preset to hour:minute.
func New(hour, minute int) (*Picker, error) {
	var messages []string
	if hour < 0 || hour > MaxHour {
		messages = append(messages, fmt.Sprintf("hour %d out of range 0-%d", hour, MaxHour))
	}
	if minute < 0 || minute > MaxMinute {
		messages = append(messages, fmt.Sprintf("minute %d out of range 0-%d", minute, MaxMinute))
	}
	if len(messages) > 0 {
		return nil, apperr.New(append([]string{"Datetime picker error"}, messages...)...)
	}

	minuteText := fmt.Sprintf(fieldFormat, minute)
	return &Picker{
		hour:       fmt.Sprintf(fieldFormat, hour),
		minute:     minuteText,
		lastMinute: minuteText,
	}, nil
}

// NewAt creates a picker preset to the hour and minute of moment.
func NewAt(moment time.Time) (*Picker, error) {
	return New(moment.Hour(), moment.Minute())
}

// Hour returns the hour buffer.
func (picker *Picker) Hour() string { return picker.hour }

// Minute returns the minute buffer.
func (picker *Picker) Minute() string { return picker.minute }

// SetHour commits value to the hour buffer if it is acceptable.
func (picker *Picker) SetHour(value string) bool {
	if !ValidField(value, MaxHour) {
		return false
	}
	picker.hour = value
	return true
}

// SetMinute commits value to the minute buffer if it is acceptable and
// applies the carry rule to the hour buffer.
func (picker *Picker) SetMinute(value string) bool {
	if !ValidField(value, MaxMinute) {
		return false
	}
	picker.minute = value
	picker.carry()
	picker.lastMinute = value
	return true
}

// StepHour moves the hour by delta, wrapping within 0-23.
func (picker *Picker) StepHour(delta int) {
	next := wrap(atoiOrZero(picker.hour)+delta, DayHours)
	picker.SetHour(fmt.Sprintf(fieldFormat, next))
}

// StepMinute moves the minute by delta, wrapping within 0-59.
// Wrapping past either end goes through the carry rule.
func (picker *Picker) StepMinute(delta int) {
	next := wrap(atoiOrZero(picker.minute)+delta, MaxMinute+1)
	picker.SetMinute(fmt.Sprintf(fieldFormat, next))
}

// ValidateTime reports whether both buffers hold a complete, in-range value.
func (picker *Picker) ValidateTime() bool {
	hour := strings.TrimSpace(picker.hour)
	if hour == "" || !ValidField(hour, MaxHour) {
		return false
	}
	minute := strings.TrimSpace(picker.minute)
	if minute == "" || !ValidField(minute, MaxMinute) {
		return false
	}
	return true
}

// Value returns the buffers as a TimeValue. It fails with ErrInvalidTime
// unless ValidateTime passes.
func (picker *Picker) Value() (TimeValue, error) {
	if !picker.ValidateTime() {
		return TimeValue{}, ErrInvalidTime
	}
	hour, _ := strconv.Atoi(strings.TrimSpace(picker.hour))
	minute, _ := strconv.Atoi(strings.TrimSpace(picker.minute))
	return TimeValue{Hour: hour, Minute: minute}, nil
}

func (picker *Picker) carry() {
	if picker.lastMinute == "" || picker.minute == "" || picker.hour == "" {
		return
	}
	oldMinute, _ := strconv.Atoi(picker.lastMinute)
	newMinute, _ := strconv.Atoi(picker.minute)
	hour, _ := strconv.Atoi(picker.hour)
	next := Carry(oldMinute, newMinute, hour)
	if next != hour {
		picker.hour = fmt.Sprintf(fieldFormat, next)
	}
}

func wrap(value, size int) int {
	return ((value % size) + size) % size
}

func atoiOrZero(value string) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return parsed
}
