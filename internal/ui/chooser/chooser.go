package chooser

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// Chooser asks the user for filesystem locations. Callbacks receive an
// empty string when the user cancels.
type Chooser interface {
	ChooseDir(initial string, onChosen func(string))
	ChooseFile(initial string, extensions []string, onChosen func(string))
}

// Native shows fyne's file dialogs attached to a parent window.
type Native struct {
	parent fyne.Window
}

// NewNative creates a chooser for parent.
func NewNative(parent fyne.Window) *Native {
	return &Native{parent: parent}
}

// ChooseDir opens a folder dialog.
func (native *Native) ChooseDir(initial string, onChosen func(string)) {
	folder := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			onChosen("")
			return
		}
		onChosen(uri.Path())
	}, native.parent)
	if location := listable(initial); location != nil {
		folder.SetLocation(location)
	}
	folder.Show()
}

// ChooseFile opens a file dialog filtered by extensions such as ".kind".
func (native *Native) ChooseFile(initial string, extensions []string, onChosen func(string)) {
	file := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			onChosen("")
			return
		}
		defer reader.Close()
		onChosen(reader.URI().Path())
	}, native.parent)
	if len(extensions) > 0 {
		file.SetFilter(storage.NewExtensionFileFilter(extensions))
	}
	if location := listable(initial); location != nil {
		file.SetLocation(location)
	}
	file.Show()
}

func listable(path string) fyne.ListableURI {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	location, err := storage.ListerForURI(storage.NewFileURI(path))
	if err != nil {
		return nil
	}
	return location
}
