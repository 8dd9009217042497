package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2/app"

	"github.com/lishuoqwq/MaltesePet/internal/config"
	"github.com/lishuoqwq/MaltesePet/internal/manager"
	"github.com/lishuoqwq/MaltesePet/internal/model"
	"github.com/lishuoqwq/MaltesePet/internal/platform"
	"github.com/lishuoqwq/MaltesePet/internal/store"
	"github.com/lishuoqwq/MaltesePet/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.lishuoqwq.maltesepet"
	AppName = "MaltesePet"
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Transparent background so the pet floats over the desktop
	myApp.Settings().SetTheme(ui.NewTransparentTheme())

	// Initialize services
	settings := config.NewSettings(myApp)
	loc := ui.NewLocalization()
	loc.SetLanguage(settings.GetLanguage())

	dataDir, err := platform.UserDataDir(AppName)
	if err != nil {
		log.Fatalf("Failed to resolve data directory: %v", err)
	}

	install := installRoot()
	builtinRoot := filepath.Join(install, "resources", "gifs")
	iconsDir := filepath.Join(install, "resources", "icons")
	userRoot := filepath.Join(dataDir, "gifs")
	configPath := filepath.Join(dataDir, store.ConfigFileName)

	st, err := store.New(builtinRoot, userRoot, configPath)
	if err != nil {
		log.Fatalf("Failed to initialize animation store: %v", err)
	}

	mgr := manager.New(st)

	// First run with no animations anywhere: seed the generated fallback
	if _, err := mgr.Default(); errors.Is(err, model.ErrEmptyCollection) {
		seedPath := filepath.Join(userRoot, ui.DefaultAnimationName)
		if err := ui.WriteDefaultAnimation(seedPath); err != nil {
			log.Printf("Failed to seed default animation: %v", err)
		}
	}

	// Create and setup UI
	surface := ui.NewPetSurface(myApp, mgr, settings, loc, userRoot)

	watcher, err := store.NewWatcher(st, surface.NotifyCollectionChanged)
	if err != nil {
		log.Printf("Failed to start filesystem watcher: %v", err)
	} else {
		defer watcher.Close()
	}

	ui.SetupTray(myApp, surface, settings, loc, iconsDir)

	// Show and run
	surface.ShowAndRun()
}

// installRoot returns the directory holding bundled resources, next to
// the executable. Falls back to the working directory when the
// executable path cannot be resolved.
func installRoot() string {
	exe, err := os.Executable()
	if err != nil {
		log.Printf("Failed to resolve executable path: %v", err)
		return "."
	}
	return filepath.Dir(exe)
}
