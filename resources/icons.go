package resources

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Icon keys used by the forms.
const (
	OpenFolder  = "open_folder"
	SaveDisk    = "save_disk"
	GarbageBin  = "garbage_bin"
	Metrics     = "metrics"
	AppIconName = "app"
)

var iconSources = map[string]func() fyne.Resource{
	OpenFolder:  theme.FolderOpenIcon,
	SaveDisk:    theme.DocumentSaveIcon,
	GarbageBin:  theme.DeleteIcon,
	Metrics:     theme.ListIcon,
	AppIconName: theme.FolderNewIcon,
}

// iconCache is filled on first use of each key and lives for the whole process.
var iconCache sync.Map

// Icon returns the resource registered for key.
func Icon(key string) (fyne.Resource, error) {
	if cached, ok := iconCache.Load(key); ok {
		return cached.(fyne.Resource), nil
	}

	source, ok := iconSources[key]
	if !ok {
		return nil, fmt.Errorf("load icon %s: unknown key", key)
	}

	resource, _ := iconCache.LoadOrStore(key, source())
	return resource.(fyne.Resource), nil
}

// MustIcon returns the resource for key or panics on error.
func MustIcon(key string) fyne.Resource {
	resource, err := Icon(key)
	if err != nil {
		panic(err)
	}
	return resource
}
