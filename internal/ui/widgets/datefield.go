package widgets

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"layoutkit/internal/core/layout"
)

// DateField is a text entry that reads and shows a day with a configurable
// time layout, plus a button that opens a calendar.
type DateField struct {
	entry    *widget.Entry
	format   string
	location *time.Location
	date     *time.Time
	popUp    *widget.PopUp
	content  fyne.CanvasObject
}

// NewDateField creates an empty field. An unusable format falls back to
// layout.DefaultDateFormat.
func NewDateField(format string, location *time.Location) *DateField {
	if !layout.ValidDateFormat(format) {
		format = layout.DefaultDateFormat
	}
	field := &DateField{format: format, location: location}

	field.entry = widget.NewEntry()
	field.entry.SetPlaceHolder(format)
	field.entry.OnChanged = field.parse

	calendarButton := widget.NewButtonWithIcon("", theme.MenuDropDownIcon(), field.showCalendar)
	field.content = container.NewBorder(nil, nil, nil, calendarButton, field.entry)
	return field
}

// Content returns the canvas object to place in a form.
func (field *DateField) Content() fyne.CanvasObject {
	return field.content
}

// Entry returns the text part of the field.
func (field *DateField) Entry() *widget.Entry {
	return field.entry
}

// Format returns the time layout in use.
func (field *DateField) Format() string {
	return field.format
}

// Date returns the day the text parses to, or nil.
func (field *DateField) Date() *time.Time {
	if field.date == nil {
		return nil
	}
	day := *field.date
	return &day
}

// SetDate shows date in the field. nil clears it.
func (field *DateField) SetDate(date *time.Time) {
	if date == nil {
		field.entry.SetText("")
		field.date = nil
		return
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, field.location)
	field.entry.SetText(day.Format(field.format))
	field.date = &day
}

func (field *DateField) parse(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		field.date = nil
		return
	}
	day, err := time.ParseInLocation(field.format, text, field.location)
	if err != nil {
		field.date = nil
		return
	}
	field.date = &day
}

func (field *DateField) showCalendar() {
	app := fyne.CurrentApp()
	if app == nil {
		return
	}
	canvas := app.Driver().CanvasForObject(field.entry)
	if canvas == nil {
		return
	}

	initial := time.Now().In(field.location)
	if field.date != nil {
		initial = *field.date
	}
	calendar := widget.NewCalendar(initial, func(chosen time.Time) {
		field.SetDate(&chosen)
		if field.popUp != nil {
			field.popUp.Hide()
		}
	})

	field.popUp = widget.NewPopUp(calendar, canvas)
	position := app.Driver().AbsolutePositionForObject(field.entry).Add(fyne.NewPos(0, field.entry.Size().Height))
	field.popUp.ShowAtPosition(position)
}
