package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	savedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#D97757")).Bold(true)
	pathStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func printSaved(w io.Writer, label, path string) {
	if label == "" {
		fmt.Fprintf(w, "%s %s\n", savedStyle.Render("Saved:"), pathStyle.Render(path))
		return
	}
	fmt.Fprintf(w, "%s %s %s\n", savedStyle.Render("Saved:"), pathStyle.Render(path), mutedStyle.Render("("+label+")"))
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("Error:"), err)
}
