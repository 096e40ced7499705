// Package ui provides theme and color support for terminal output. It
// defines lipgloss-based color schemes shared by the presentation layers,
// keeping styling decisions out of the computation packages.
package ui
