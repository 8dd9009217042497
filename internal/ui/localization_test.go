package ui

import "testing"

func TestLocalizationDefaultsToEnglish(t *testing.T) {
	loc := NewLocalization()

	if got := loc.GetCurrentLanguage(); got != "en" {
		t.Errorf("GetCurrentLanguage() = %q, want en", got)
	}
	if got := loc.GetText(KeyQuit); got != "Quit" {
		t.Errorf("GetText(KeyQuit) = %q, want Quit", got)
	}
}

func TestLocalizationSetLanguage(t *testing.T) {
	tests := []struct {
		name     string
		lang     string
		wantLang string
	}{
		{"switch to chinese", "zh", "zh"},
		{"system resolves to english", "system", "en"},
		{"unknown language keeps current", "fr", "en"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			loc := NewLocalization()
			loc.SetLanguage(test.lang)
			if got := loc.GetCurrentLanguage(); got != test.wantLang {
				t.Errorf("GetCurrentLanguage() = %q, want %q", got, test.wantLang)
			}
		})
	}
}

func TestLocalizationUnknownKeyFallsBackToKey(t *testing.T) {
	loc := NewLocalization()
	if got := loc.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("GetText(no_such_key) = %q, want the key itself", got)
	}
}

// Every English key must have a Chinese translation, or menus would mix
// languages.
func TestLocalizationChineseCoversAllKeys(t *testing.T) {
	loc := NewLocalization()
	for key := range loc.texts["en"] {
		if _, ok := loc.texts["zh"][key]; !ok {
			t.Errorf("missing zh translation for %q", key)
		}
	}
	for key := range loc.texts["zh"] {
		if _, ok := loc.texts["en"][key]; !ok {
			t.Errorf("missing en translation for %q", key)
		}
	}
}

func TestLocalizationAvailableLanguages(t *testing.T) {
	loc := NewLocalization()
	langs := loc.GetAvailableLanguages()
	for _, code := range []string{"en", "zh"} {
		if _, ok := langs[code]; !ok {
			t.Errorf("GetAvailableLanguages() missing %q", code)
		}
	}
}
