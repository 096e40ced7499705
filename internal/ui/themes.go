package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the lipgloss styles used for terminal output. Every
// presentation site renders through a Theme so that color handling stays in
// one place.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Title styles section headers, such as the result banner.
	Title lipgloss.Style
	// Accent styles the primary values the user asked for.
	Accent lipgloss.Style
	// Muted styles secondary detail like timings and counts.
	Muted lipgloss.Style
	// Success styles confirmation messages.
	Success lipgloss.Style
	// Warning styles non-fatal diagnostics.
	Warning lipgloss.Style
	// Error styles failure messages.
	Error lipgloss.Style
}

var (
	// DarkTheme uses bright colors for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:    "dark",
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}

	// LightTheme uses darker colors for light terminal backgrounds.
	LightTheme = Theme{
		Name:    "light",
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27")),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("54")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("124")),
	}

	// NoColorTheme renders everything unstyled. Used when NO_COLOR is set.
	NoColorTheme = Theme{
		Name:    "none",
		Title:   lipgloss.NewStyle(),
		Accent:  lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
		Success: lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the active theme directly. Primarily used by tests to
// restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// InitTheme picks the active theme from the environment. The NO_COLOR
// variable (https://no-color.org/) disables styling entirely; otherwise the
// terminal background luminance selects between the dark and light palettes.
func InitTheme() {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	if lipgloss.HasDarkBackground() {
		currentTheme = DarkTheme
		return
	}
	currentTheme = LightTheme
}
