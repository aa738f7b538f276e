package ui

import (
	"testing"
)

func TestInitThemeRespectsNoColorFlag(t *testing.T) {
	defer SetCurrentTheme(DarkTheme)

	InitTheme(true)
	if got := GetCurrentTheme().Name; got != "none" {
		t.Errorf("theme after InitTheme(true) = %q, want \"none\"", got)
	}

	InitTheme(false)
	if got := GetCurrentTheme().Name; got != "dark" {
		t.Errorf("theme after InitTheme(false) = %q, want \"dark\"", got)
	}
}

func TestInitThemeRespectsNoColorEnv(t *testing.T) {
	defer SetCurrentTheme(DarkTheme)
	t.Setenv("NO_COLOR", "1")

	InitTheme(false)
	if got := GetCurrentTheme().Name; got != "none" {
		t.Errorf("theme with NO_COLOR set = %q, want \"none\"", got)
	}
	if ColorGreen() != "" || ColorReset() != "" {
		t.Error("color accessors should be empty with NoColorTheme")
	}
}

func TestColorAccessorsMatchTheme(t *testing.T) {
	defer SetCurrentTheme(DarkTheme)
	SetCurrentTheme(DarkTheme)

	if ColorRed() != DarkTheme.Error {
		t.Error("ColorRed does not match theme Error color")
	}
	if ColorBold() != DarkTheme.Bold || ColorUnderline() != DarkTheme.Underline {
		t.Error("style accessors do not match theme")
	}
}
