package ui

import "testing"

func TestInitThemeNoColorFlag(t *testing.T) {
	prev := GetCurrentTheme()
	defer SetCurrentTheme(prev)

	InitTheme(true)
	if GetCurrentTheme().Name != NoColorTheme.Name {
		t.Errorf("theme = %q, want %q", GetCurrentTheme().Name, NoColorTheme.Name)
	}
	if ColorRed() != "" || ColorReset() != "" {
		t.Error("no-color theme should yield empty escape codes")
	}
}

func TestInitThemeNoColorEnv(t *testing.T) {
	prev := GetCurrentTheme()
	defer SetCurrentTheme(prev)

	t.Setenv("NO_COLOR", "1")
	InitTheme(false)
	if GetCurrentTheme().Name != NoColorTheme.Name {
		t.Errorf("NO_COLOR env ignored: theme = %q", GetCurrentTheme().Name)
	}
}

func TestInitThemeDefault(t *testing.T) {
	prev := GetCurrentTheme()
	defer SetCurrentTheme(prev)

	t.Setenv("NO_COLOR", "")
	InitTheme(false)
	if GetCurrentTheme().Name != DefaultTheme.Name {
		t.Errorf("theme = %q, want %q", GetCurrentTheme().Name, DefaultTheme.Name)
	}
	if ColorGreen() == "" || ColorBold() == "" {
		t.Error("default theme should yield escape codes")
	}
}
