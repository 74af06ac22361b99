package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"layoutkit/internal/core/layout"
	"layoutkit/internal/core/model"
	"layoutkit/internal/platform"
	"layoutkit/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	DestinationPath string `yaml:"destination_path"`
	ProjectsPath    string `yaml:"projects_path"`
	TemplatePath    string `yaml:"template_path"`
	Profile         string `yaml:"profile"`
	DateFormat      string `yaml:"date_format"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return settings, err
	}

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		DestinationPath: settings.DestinationPath,
		ProjectsPath:    settings.ProjectsPath,
		TemplatePath:    settings.TemplatePath,
		Profile:         settings.Profile,
		DateFormat:      settings.DateFormat,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := platform.AppConfigDir(appName)
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if strings.TrimSpace(fileData.DestinationPath) != "" {
		settings.DestinationPath = fileData.DestinationPath
	}
	if strings.TrimSpace(fileData.ProjectsPath) != "" {
		settings.ProjectsPath = fileData.ProjectsPath
	}
	if strings.TrimSpace(fileData.TemplatePath) != "" {
		settings.TemplatePath = fileData.TemplatePath
	}
	if model.IsOption(fileData.Profile) {
		settings.Profile = fileData.Profile
	}
	if layout.ValidDateFormat(fileData.DateFormat) {
		settings.DateFormat = fileData.DateFormat
	}
}
