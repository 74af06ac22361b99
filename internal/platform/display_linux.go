package platform

import (
	"os"
	"strings"
)

func checkDisplay() error {
	if strings.TrimSpace(os.Getenv("DISPLAY")) == "" && strings.TrimSpace(os.Getenv("WAYLAND_DISPLAY")) == "" {
		return ErrNoDisplay
	}
	return nil
}
