package platform

import "errors"

// ErrNoDisplay indicates no graphical session is available for the desktop UI.
var ErrNoDisplay = errors.New("no graphical display available")

// CheckDisplay reports whether the desktop UI can be shown.
func CheckDisplay() error {
	return checkDisplay()
}
