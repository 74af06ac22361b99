package dialogs

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	corelayout "layoutkit/internal/core/layout"
	"layoutkit/internal/ui/chooser"
	"layoutkit/internal/ui/widgets"
	"layoutkit/resources"
)

var templateExtensions = []string{".kind", ".file"}

// LayoutDialog collects the data needed to create a project folder layout.
// Submitting an invalid form leaves the dialog open.
type LayoutDialog struct {
	dialog   *dialog.CustomDialog
	chooser  chooser.Chooser
	onSubmit func(corelayout.Request)
	visible  bool

	baseDir  *widget.Entry
	template *widget.Entry
	prefix   *widget.Entry
	body     *widget.Entry
	suffix   *widget.Entry
	when     *widgets.DateTimePicker
}

// NewLayoutDialog builds the dialog over parent, preset with defaults and now.
func NewLayoutDialog(parent fyne.Window, defaults corelayout.Form, now time.Time, pick chooser.Chooser, onSubmit func(corelayout.Request)) (*LayoutDialog, error) {
	when, err := widgets.NewDateTimePicker(now, defaults.DateFormat)
	if err != nil {
		return nil, fmt.Errorf("build layout dialog: %w", err)
	}

	baseDir := widget.NewEntry()
	baseDir.SetText(defaults.BaseDir)
	baseDir.Disable()

	template := widget.NewEntry()
	template.SetText(defaults.TemplatePath)
	template.Disable()

	prefix := widget.NewEntry()
	prefix.SetPlaceHolder("Prefix")
	prefix.SetText(defaults.Code.Prefix)
	body := widget.NewEntry()
	body.SetPlaceHolder("Project")
	body.SetText(defaults.Code.Body)
	suffix := widget.NewEntry()
	suffix.SetPlaceHolder("Suffix")
	suffix.SetText(defaults.Code.Suffix)

	layoutDialog := &LayoutDialog{
		chooser:  pick,
		onSubmit: onSubmit,
		baseDir:  baseDir,
		template: template,
		prefix:   prefix,
		body:     body,
		suffix:   suffix,
		when:     when,
	}

	projectsButton := widget.NewButtonWithIcon("Projects path", resources.MustIcon(resources.OpenFolder), layoutDialog.chooseBaseDir)
	templateButton := widget.NewButtonWithIcon("Select template", resources.MustIcon(resources.OpenFolder), layoutDialog.chooseTemplate)

	form := container.NewVBox(
		projectsButton,
		baseDir,
		container.NewBorder(nil, nil, widget.NewLabel("JIRA Code"), nil,
			container.NewGridWithColumns(3, prefix, body, suffix)),
		container.NewBorder(nil, nil, widget.NewLabel("Date"), nil, when.Content()),
		templateButton,
		template,
	)

	createButton := widget.NewButton("Create", func() { layoutDialog.Submit() })
	createButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton("Cancel", layoutDialog.Hide)

	layoutDialog.dialog = dialog.NewCustomWithoutButtons("Create layout", form, parent)
	layoutDialog.dialog.SetButtons([]fyne.CanvasObject{cancelButton, layout.NewSpacer(), createButton})
	return layoutDialog, nil
}

// Show displays the dialog.
func (layoutDialog *LayoutDialog) Show() {
	layoutDialog.visible = true
	layoutDialog.dialog.Show()
}

// Hide closes the dialog without submitting.
func (layoutDialog *LayoutDialog) Hide() {
	layoutDialog.visible = false
	layoutDialog.dialog.Hide()
}

// Visible reports whether the dialog is showing.
func (layoutDialog *LayoutDialog) Visible() bool {
	return layoutDialog.visible
}

// Form returns the current input.
func (layoutDialog *LayoutDialog) Form() corelayout.Form {
	return corelayout.Form{
		BaseDir:      layoutDialog.baseDir.Text,
		TemplatePath: layoutDialog.template.Text,
		Code: corelayout.Code{
			Prefix: layoutDialog.prefix.Text,
			Body:   layoutDialog.body.Text,
			Suffix: layoutDialog.suffix.Text,
		},
		DateFormat: layoutDialog.when.DateField().Format(),
	}
}

// DateTime returns the date and time part of the form.
func (layoutDialog *LayoutDialog) DateTime() *widgets.DateTimePicker {
	return layoutDialog.when
}

// Submit validates the form. On success the dialog closes and the request
// is handed to the submit callback.
func (layoutDialog *LayoutDialog) Submit() bool {
	form := layoutDialog.Form()
	if !corelayout.Validate(form, layoutDialog.when) {
		log.Printf("layout rejected: %v", corelayout.Problems(form, layoutDialog.when))
		return false
	}

	when, err := layoutDialog.when.DateTime()
	if err != nil {
		log.Printf("layout rejected: %v", err)
		return false
	}

	layoutDialog.Hide()
	if layoutDialog.onSubmit != nil {
		layoutDialog.onSubmit(corelayout.Request{Form: form, When: when})
	}
	return true
}

func (layoutDialog *LayoutDialog) chooseBaseDir() {
	layoutDialog.chooser.ChooseDir(layoutDialog.baseDir.Text, func(path string) {
		if path != "" {
			layoutDialog.baseDir.SetText(path)
		}
	})
}

func (layoutDialog *LayoutDialog) chooseTemplate() {
	layoutDialog.chooser.ChooseFile(layoutDialog.template.Text, templateExtensions, func(path string) {
		if path != "" {
			layoutDialog.template.SetText(path)
		}
	})
}
