package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/lishuoqwq/MaltesePet/internal/config"
)

// SetupTray installs the system tray icon and menu when the platform
// supports one. On platforms without tray support the pet window is the
// only control surface, so this just logs and returns.
func SetupTray(a fyne.App, ps *PetSurface, settings *config.Settings, loc *Localization, iconsDir string) {
	desk, ok := a.(desktop.App)
	if !ok {
		log.Printf("System tray not supported on this platform")
		return
	}

	menu := fyne.NewMenu(loc.GetText(KeyAppTitle),
		fyne.NewMenuItem(loc.GetText(KeyShow), func() {
			ps.Dispatch(CmdShow)
		}),
		fyne.NewMenuItem(loc.GetText(KeyHide), func() {
			ps.Dispatch(CmdHide)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(loc.GetText(KeyQuit), func() {
			ps.Dispatch(CmdQuit)
		}),
	)

	desk.SetSystemTrayMenu(menu)
	desk.SetSystemTrayIcon(ResolveTrayIcon(settings.GetTrayIconPath(), iconsDir))
	log.Printf("System tray initialized")
}
