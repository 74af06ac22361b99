package preferences

import (
	"os"

	"layoutkit/internal/core/layout"
)

// Settings defines user preferences remembered between runs.
type Settings struct {
	DestinationPath string
	ProjectsPath    string
	TemplatePath    string
	Profile         string
	DateFormat      string
}

// DefaultSettings returns default settings rooted at the user's home directory.
func DefaultSettings() Settings {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Settings{
		DestinationPath: home,
		ProjectsPath:    home,
		TemplatePath:    home,
		DateFormat:      layout.DefaultDateFormat,
	}
}

// LayoutForm converts settings to the initial layout dialog input.
func (settings Settings) LayoutForm() layout.Form {
	return layout.Form{
		BaseDir:      settings.ProjectsPath,
		TemplatePath: settings.TemplatePath,
		DateFormat:   settings.DateFormat,
	}
}
