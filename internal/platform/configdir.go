package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppConfigDir returns the directory that holds appName's settings, inside
// the OS config root or, without one, the per-OS default under the home
// directory.
func AppConfigDir(appName string) (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", fmt.Errorf("config dir for %s: %w", appName, err)
	}
	return filepath.Join(root, appName), nil
}

func configRoot() (string, error) {
	if root, err := os.UserConfigDir(); err == nil && root != "" {
		return root, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return fallbackConfigDir(home), nil
}
