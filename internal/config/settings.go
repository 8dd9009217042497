package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyAutoAdvance         = "auto_advance_enabled"
	KeyAutoAdvanceInterval = "auto_advance_interval_sec"
	KeyPetSize             = "pet_size"
	KeyLanguage            = "app_language"
	KeyTrayIconPath        = "tray_icon_path"
)

// Default values
const (
	DefaultAutoAdvance            = false
	DefaultAutoAdvanceIntervalSec = 120
	DefaultPetSize                = 150
	DefaultLanguage               = "system"

	MinAutoAdvanceIntervalSec = 10
	MaxAutoAdvanceIntervalSec = 3600
)

// PetSizeOptions are the selectable pet window sizes, in pixels.
var PetSizeOptions = []int{50, 100, 150, 200}

// AutoAdvanceIntervalOptions are the selectable auto-switch intervals, in seconds.
var AutoAdvanceIntervalOptions = []int{30, 60, 120, 300}

// Settings manages application configuration. The animation display
// order is not here: it lives in the store-owned config file.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAutoAdvanceEnabled returns whether the pet switches animations on a timer
func (s *Settings) GetAutoAdvanceEnabled() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoAdvance, DefaultAutoAdvance)
}

// SetAutoAdvanceEnabled sets whether the pet switches animations on a timer
func (s *Settings) SetAutoAdvanceEnabled(enabled bool) {
	s.app.Preferences().SetBool(KeyAutoAdvance, enabled)
}

// GetAutoAdvanceIntervalSec returns the auto-switch interval in seconds
func (s *Settings) GetAutoAdvanceIntervalSec() int {
	value := s.app.Preferences().Int(KeyAutoAdvanceInterval)
	if value <= 0 {
		s.SetAutoAdvanceIntervalSec(DefaultAutoAdvanceIntervalSec)
		return DefaultAutoAdvanceIntervalSec
	}
	return clampInterval(value)
}

// SetAutoAdvanceIntervalSec sets the auto-switch interval in seconds
func (s *Settings) SetAutoAdvanceIntervalSec(seconds int) {
	s.app.Preferences().SetInt(KeyAutoAdvanceInterval, clampInterval(seconds))
}

func clampInterval(seconds int) int {
	if seconds < MinAutoAdvanceIntervalSec {
		return MinAutoAdvanceIntervalSec
	}
	if seconds > MaxAutoAdvanceIntervalSec {
		return MaxAutoAdvanceIntervalSec
	}
	return seconds
}

// GetPetSize returns the configured pet window size in pixels
func (s *Settings) GetPetSize() int {
	value := s.app.Preferences().Int(KeyPetSize)
	for _, option := range PetSizeOptions {
		if value == option {
			return value
		}
	}
	s.SetPetSize(DefaultPetSize)
	return DefaultPetSize
}

// SetPetSize sets the pet window size; unknown sizes fall back to the default
func (s *Settings) SetPetSize(size int) {
	for _, option := range PetSizeOptions {
		if size == option {
			s.app.Preferences().SetInt(KeyPetSize, size)
			return
		}
	}
	s.app.Preferences().SetInt(KeyPetSize, DefaultPetSize)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetTrayIconPath returns the explicitly configured tray icon path, if any
func (s *Settings) GetTrayIconPath() string {
	return s.app.Preferences().String(KeyTrayIconPath)
}

// SetTrayIconPath sets an explicit tray icon path
func (s *Settings) SetTrayIconPath(path string) {
	s.app.Preferences().SetString(KeyTrayIconPath, path)
}
