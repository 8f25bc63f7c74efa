package cli

import "github.com/charmbracelet/lipgloss"

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

func styleFail(msg string) string { return errorStyle.Render("✖ " + msg) }
