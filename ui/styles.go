// Copyright 2018 The ezgliding authors. All rights reserverd.

// Package ui is the interactive flight board.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	accent  = lipgloss.Color("#2196F3")
	danger  = lipgloss.Color("#e53935")
	muted   = lipgloss.Color("#8a8f98")
	heading = lipgloss.Color("#8BC34A")
)

// Styles used by the board.
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Error   lipgloss.Style
	Help    lipgloss.Style
	Summary lipgloss.Style
}

// DefaultStyles ...
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(heading),
		Header:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(danger),
		Help:    lipgloss.NewStyle().Foreground(muted),
		Summary: lipgloss.NewStyle().Foreground(muted),
	}
}
