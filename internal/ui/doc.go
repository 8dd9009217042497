package ui

// Package ui contains the Fyne-based desktop surface for the pet: the
// frameless always-on-top window playing the active animation, the
// right-click command menu, the system tray controller, and fallback
// resources. All UI strings are localized via Localization.
