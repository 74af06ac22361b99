package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"layoutkit/internal/core/timepicker"
)

// TimePicker renders an hour entry and a minute entry with spin buttons.
// Edits that the picker rejects are reverted immediately.
type TimePicker struct {
	picker  *timepicker.Picker
	hour    *widget.Entry
	minute  *widget.Entry
	content fyne.CanvasObject
	syncing bool
}

// NewTimePicker creates a time picker preset to hour:minute.
func NewTimePicker(hour, minute int) (*TimePicker, error) {
	picker, err := timepicker.New(hour, minute)
	if err != nil {
		return nil, err
	}

	timeInput := &TimePicker{
		picker: picker,
		hour:   widget.NewEntry(),
		minute: widget.NewEntry(),
	}
	timeInput.hour.SetText(picker.Hour())
	timeInput.minute.SetText(picker.Minute())
	timeInput.hour.OnChanged = timeInput.onHourChanged
	timeInput.minute.OnChanged = timeInput.onMinuteChanged

	timeInput.content = container.NewHBox(
		spin(timeInput.hour, func(delta int) { timeInput.step(picker.StepHour, delta) }),
		widget.NewLabel(":"),
		spin(timeInput.minute, func(delta int) { timeInput.step(picker.StepMinute, delta) }),
	)
	return timeInput, nil
}

// Content returns the canvas object to place in a form.
func (timeInput *TimePicker) Content() fyne.CanvasObject {
	return timeInput.content
}

// HourEntry returns the hour input.
func (timeInput *TimePicker) HourEntry() *widget.Entry {
	return timeInput.hour
}

// MinuteEntry returns the minute input.
func (timeInput *TimePicker) MinuteEntry() *widget.Entry {
	return timeInput.minute
}

// ValidateTime reports whether both fields hold a complete time.
func (timeInput *TimePicker) ValidateTime() bool {
	return timeInput.picker.ValidateTime()
}

// Time returns the entered time of day.
func (timeInput *TimePicker) Time() (timepicker.TimeValue, error) {
	return timeInput.picker.Value()
}

func (timeInput *TimePicker) onHourChanged(text string) {
	if timeInput.syncing {
		return
	}
	if !timeInput.picker.SetHour(text) {
		timeInput.sync()
	}
}

func (timeInput *TimePicker) onMinuteChanged(text string) {
	if timeInput.syncing {
		return
	}
	timeInput.picker.SetMinute(text)
	timeInput.sync()
}

func (timeInput *TimePicker) step(stepper func(int), delta int) {
	stepper(delta)
	timeInput.sync()
}

// sync copies the picker buffers back into the entries.
func (timeInput *TimePicker) sync() {
	timeInput.syncing = true
	defer func() { timeInput.syncing = false }()

	if timeInput.hour.Text != timeInput.picker.Hour() {
		timeInput.hour.SetText(timeInput.picker.Hour())
	}
	if timeInput.minute.Text != timeInput.picker.Minute() {
		timeInput.minute.SetText(timeInput.picker.Minute())
	}
}

func spin(entry *widget.Entry, step func(int)) fyne.CanvasObject {
	up := widget.NewButtonWithIcon("", theme.MoveUpIcon(), func() { step(1) })
	down := widget.NewButtonWithIcon("", theme.MoveDownIcon(), func() { step(-1) })
	return container.NewBorder(nil, nil, nil, container.NewVBox(up, down), entry)
}
