package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestAutoAdvanceEnabled(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetAutoAdvanceEnabled() != DefaultAutoAdvance {
		t.Errorf("Expected default auto-advance %v", DefaultAutoAdvance)
	}

	// Test setting custom value
	settings.SetAutoAdvanceEnabled(true)
	if !settings.GetAutoAdvanceEnabled() {
		t.Error("Expected auto-advance to be enabled")
	}
}

func TestAutoAdvanceInterval(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetAutoAdvanceIntervalSec(); got != DefaultAutoAdvanceIntervalSec {
		t.Errorf("Expected default interval %d, got %d", DefaultAutoAdvanceIntervalSec, got)
	}

	// Test setting custom value
	settings.SetAutoAdvanceIntervalSec(60)
	if got := settings.GetAutoAdvanceIntervalSec(); got != 60 {
		t.Errorf("Expected interval 60, got %d", got)
	}

	// Test boundary values
	settings.SetAutoAdvanceIntervalSec(1) // Should be clamped to minimum
	if got := settings.GetAutoAdvanceIntervalSec(); got != MinAutoAdvanceIntervalSec {
		t.Errorf("Expected interval clamped to %d, got %d", MinAutoAdvanceIntervalSec, got)
	}

	settings.SetAutoAdvanceIntervalSec(100000) // Should be clamped to maximum
	if got := settings.GetAutoAdvanceIntervalSec(); got != MaxAutoAdvanceIntervalSec {
		t.Errorf("Expected interval clamped to %d, got %d", MaxAutoAdvanceIntervalSec, got)
	}
}

func TestPetSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetPetSize(); got != DefaultPetSize {
		t.Errorf("Expected default pet size %d, got %d", DefaultPetSize, got)
	}

	// Test setting each supported option
	for _, size := range PetSizeOptions {
		settings.SetPetSize(size)
		if got := settings.GetPetSize(); got != size {
			t.Errorf("Expected pet size %d, got %d", size, got)
		}
	}

	// Unknown sizes fall back to the default
	settings.SetPetSize(123)
	if got := settings.GetPetSize(); got != DefaultPetSize {
		t.Errorf("Expected fallback to %d, got %d", DefaultPetSize, got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetLanguage(); got != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, got)
	}

	// Test setting custom value
	settings.SetLanguage("zh")
	if got := settings.GetLanguage(); got != "zh" {
		t.Errorf("Expected language 'zh', got %s", got)
	}
}

func TestTrayIconPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetTrayIconPath() != "" {
		t.Error("Expected empty tray icon path by default")
	}

	settings.SetTrayIconPath("/tmp/icon.png")
	if got := settings.GetTrayIconPath(); got != "/tmp/icon.png" {
		t.Errorf("Expected '/tmp/icon.png', got %s", got)
	}
}
