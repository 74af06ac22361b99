package widgets

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"layoutkit/internal/core/layout"
	"layoutkit/internal/core/timepicker"
)

// DateTimePicker combines a DateField with a TimePicker.
type DateTimePicker struct {
	date     *DateField
	time     *TimePicker
	location *time.Location
	content  fyne.CanvasObject
}

// NewDateTimePicker creates a picker preset to moment. dateFormat is the
// time layout of the date field; blank uses layout.DefaultDateFormat.
func NewDateTimePicker(moment time.Time, dateFormat string) (*DateTimePicker, error) {
	timeInput, err := NewTimePicker(moment.Hour(), moment.Minute())
	if err != nil {
		return nil, err
	}

	date := NewDateField(dateFormat, moment.Location())
	date.SetDate(&moment)

	return &DateTimePicker{
		date:     date,
		time:     timeInput,
		location: moment.Location(),
		content:  container.NewBorder(nil, nil, nil, timeInput.Content(), date.Content()),
	}, nil
}

// Content returns the canvas object to place in a form.
func (picker *DateTimePicker) Content() fyne.CanvasObject {
	return picker.content
}

// Date returns the selected day, or nil when none is set.
func (picker *DateTimePicker) Date() *time.Time {
	return picker.date.Date()
}

// DateField returns the date part.
func (picker *DateTimePicker) DateField() *DateField {
	return picker.date
}

// TimePicker returns the time-of-day part.
func (picker *DateTimePicker) TimePicker() *TimePicker {
	return picker.time
}

// Validate reports whether a day is selected and the time is complete.
func (picker *DateTimePicker) Validate() bool {
	if picker.Date() == nil {
		return false
	}
	return picker.time.ValidateTime()
}

// DateTime combines the selected day with the entered time, in the
// location the picker was created with.
func (picker *DateTimePicker) DateTime() (time.Time, error) {
	value, err := picker.time.Time()
	if err != nil {
		return time.Time{}, err
	}
	date := picker.Date()
	if date == nil {
		return time.Time{}, timepicker.ErrInvalidTime
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, picker.location)
	return value.On(day), nil
}

// DateTimeString formats DateTime with layout.DateTimeFormat.
func (picker *DateTimePicker) DateTimeString() (string, error) {
	moment, err := picker.DateTime()
	if err != nil {
		return "", err
	}
	return moment.Format(layout.DateTimeFormat), nil
}
