package mainview

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"layoutkit/internal/controller"
	"layoutkit/internal/core/apperr"
	"layoutkit/internal/core/events"
	"layoutkit/internal/core/layout"
	"layoutkit/internal/core/model"
	"layoutkit/internal/ui/chooser"
	"layoutkit/internal/ui/dialogs"
	"layoutkit/internal/ui/preferences"
	"layoutkit/resources"
)

const title = "LayoutKit"

// Config defines the window's collaborators.
type Config struct {
	Settings   preferences.Settings
	NewChooser func(fyne.Window) chooser.Chooser
	Now        func() time.Time
	OnClose    func(preferences.Settings)
}

// Window is the desktop presentation surface.
type Window struct {
	window     fyne.Window
	controller *controller.Controller
	chooser    chooser.Chooser
	settings   preferences.Settings
	now        func() time.Time
	onClose    func(preferences.Settings)

	profile  *widget.Select
	destPath binding.String
	paths    []string
	selected int
	list     *widget.List
	output   *widget.Entry
	lines    []string
}

// Factory returns a view factory building the window on app.
func Factory(app fyne.App, config Config) controller.ViewFactory {
	return func(ctrl *controller.Controller) controller.View {
		return New(app, ctrl, config)
	}
}

// New creates the main window for ctrl.
func New(app fyne.App, ctrl *controller.Controller, config Config) *Window {
	if config.NewChooser == nil {
		config.NewChooser = func(parent fyne.Window) chooser.Chooser { return chooser.NewNative(parent) }
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	window := app.NewWindow(title)
	view := &Window{
		window:     window,
		controller: ctrl,
		chooser:    config.NewChooser(window),
		settings:   config.Settings,
		now:        config.Now,
		onClose:    config.OnClose,
		destPath:   binding.NewString(),
		selected:   -1,
	}
	_ = view.destPath.Set(config.Settings.DestinationPath)

	view.profile = widget.NewSelect(model.ComboOptions(), nil)
	if model.IsOption(config.Settings.Profile) {
		view.profile.SetSelected(config.Settings.Profile)
	}

	destEntry := widget.NewEntryWithData(view.destPath)
	destEntry.Disable()

	view.list = widget.NewList(
		func() int { return len(view.paths) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, item fyne.CanvasObject) {
			item.(*widget.Label).SetText(view.paths[id])
		},
	)
	view.list.OnSelected = func(id widget.ListItemID) { view.selected = id }
	view.list.OnUnselected = func(widget.ListItemID) { view.selected = -1 }

	view.output = widget.NewMultiLineEntry()
	view.output.Wrapping = fyne.TextWrapOff
	view.output.Disable()

	folderIcon := resources.MustIcon(resources.OpenFolder)
	binIcon := resources.MustIcon(resources.GarbageBin)

	createButton := widget.NewButtonWithIcon("Create layout", folderIcon, view.OpenLayoutDialog)
	saveButton := widget.NewButtonWithIcon("Save to", resources.MustIcon(resources.SaveDisk), view.chooseDestination)
	addButton := widget.NewButtonWithIcon("Add paths", folderIcon, view.chooseSecondaryPath)
	removeButton := widget.NewButtonWithIcon("Remove", binIcon, view.RemoveSelected)
	clearButton := widget.NewButtonWithIcon("Clear", binIcon, view.ClearPaths)
	collectButton := widget.NewButtonWithIcon("Collect", resources.MustIcon(resources.Metrics), view.Collect)

	header := container.NewVBox(
		createButton,
		container.NewBorder(nil, nil,
			container.NewHBox(widget.NewLabel("Profile"), view.profile),
			saveButton,
			destEntry),
	)
	pathsPanel := container.NewBorder(nil, collectButton,
		container.NewVBox(addButton, removeButton, clearButton), nil,
		view.list)
	split := container.NewVSplit(pathsPanel, view.output)
	split.Offset = 0.5

	window.SetContent(container.NewBorder(header, nil, nil, nil, split))
	window.Resize(fyne.NewSize(640, 520))
	window.SetOnClosed(view.saveSettings)
	return view
}

// Start shows the window and runs the application loop.
func (view *Window) Start() {
	view.window.ShowAndRun()
}

// Update renders a notification from the model.
func (view *Window) Update(value any) {
	switch typed := value.(type) {
	case string:
		view.appendLine(typed)
	case events.SetPathEvent:
		_ = view.destPath.Set(typed.Path)
	case events.EndTaskEvent:
		view.appendLine(fmt.Sprint(typed.Info()))
	case error:
		message := apperr.From(typed).First()
		view.appendLine(message)
		dialog.ShowError(errors.New(message), view.window)
	default:
		view.appendLine(fmt.Sprint(typed))
	}
}

// OpenLayoutDialog shows the layout creation dialog. A failure to build it
// is reported through the controller.
func (view *Window) OpenLayoutDialog() {
	layoutDialog, err := dialogs.NewLayoutDialog(view.window, view.settings.LayoutForm(), view.now(), view.chooser, view.submitLayout)
	if err != nil {
		view.controller.ReportError(err)
		return
	}
	layoutDialog.Show()
}

// Collect sends the destination, the secondary paths and the profile to the controller.
func (view *Window) Collect() {
	view.controller.CollectMetrics(view.DestinationPath(), view.Paths(), view.profile.Selected)
}

// AddPath appends a secondary path.
func (view *Window) AddPath(path string) {
	view.paths = append(view.paths, path)
	view.list.Refresh()
}

// RemoveSelected drops the selected secondary path.
func (view *Window) RemoveSelected() {
	if view.selected < 0 || view.selected >= len(view.paths) {
		return
	}
	view.paths = append(view.paths[:view.selected], view.paths[view.selected+1:]...)
	view.list.UnselectAll()
	view.selected = -1
	view.list.Refresh()
}

// ClearPaths drops every secondary path.
func (view *Window) ClearPaths() {
	view.paths = nil
	view.list.UnselectAll()
	view.selected = -1
	view.list.Refresh()
}

// Paths returns a copy of the secondary paths.
func (view *Window) Paths() []string {
	return append([]string(nil), view.paths...)
}

// DestinationPath returns the displayed destination path.
func (view *Window) DestinationPath() string {
	path, err := view.destPath.Get()
	if err != nil {
		return ""
	}
	return path
}

// Output returns the text shown in the output area.
func (view *Window) Output() string {
	return strings.Join(view.lines, "\n")
}

// Settings returns the current preferences.
func (view *Window) Settings() preferences.Settings {
	settings := view.settings
	settings.DestinationPath = view.DestinationPath()
	settings.Profile = view.profile.Selected
	return settings
}

func (view *Window) appendLine(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	view.lines = append(view.lines, line)
	view.output.SetText(view.Output())
}

func (view *Window) submitLayout(request layout.Request) {
	view.settings.ProjectsPath = request.BaseDir
	view.settings.TemplatePath = request.TemplatePath
	view.controller.SubmitLayout(request)
}

func (view *Window) chooseDestination() {
	view.chooser.ChooseDir(view.DestinationPath(), func(path string) {
		if path != "" {
			_ = view.destPath.Set(path)
		}
	})
}

func (view *Window) chooseSecondaryPath() {
	initial := ""
	if dest := strings.TrimSpace(view.DestinationPath()); dest != "" {
		initial = filepath.Dir(dest)
	}
	view.chooser.ChooseDir(initial, func(path string) {
		if path != "" {
			view.AddPath(path)
		}
	})
}

func (view *Window) saveSettings() {
	if view.onClose == nil {
		return
	}
	log.Printf("saving settings for %s", view.DestinationPath())
	view.onClose(view.Settings())
}
