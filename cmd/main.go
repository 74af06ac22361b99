package main

import (
	"log"
	"os"

	"layoutkit/internal/controller"
	"layoutkit/internal/core/model"
	"layoutkit/internal/platform"
	"layoutkit/internal/storage"
	"layoutkit/internal/ui/mainview"
	"layoutkit/internal/ui/preferences"
	"layoutkit/internal/ui/textview"
	"layoutkit/resources"

	"fyne.io/fyne/v2/app"
)

const (
	appName = "LayoutKit"
	appID   = "com.layoutkit.app"

	exitMissingDependencies = 2
)

func main() {
	textMode := hasArg(os.Args[1:], "text")
	if !textMode {
		if err := platform.CheckDisplay(); err != nil {
			log.Printf("startup: %v (run with the text argument for the terminal interface)", err)
			os.Exit(exitMissingDependencies)
		}
	}

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	appModel := model.New()
	var factory controller.ViewFactory
	if textMode {
		factory = textview.Factory(os.Stdin, os.Stdout, settings)
	} else {
		fyneApp := app.NewWithID(appID)
		fyneApp.SetIcon(resources.MustIcon(resources.AppIconName))
		factory = mainview.Factory(fyneApp, mainview.Config{
			Settings: settings,
			OnClose:  saveSettings,
		})
	}

	controller.New(appModel, factory).Start()
}

func saveSettings(settings preferences.Settings) {
	if err := storage.SaveSettings(appName, settings); err != nil {
		log.Printf("save settings: %v", err)
	}
}

func hasArg(args []string, want string) bool {
	for _, arg := range args {
		if arg == want {
			return true
		}
	}
	return false
}
