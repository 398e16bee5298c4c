package main

import "github.com/charmbracelet/lipgloss"

var (
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
	styleValue   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
