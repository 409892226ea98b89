package picker

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme renders the picker's prompt and item text. The widget calls these
// and nothing else, so embedders can supply their own decoration.
type Theme interface {
	// FormatPrompt renders the prompt line.
	FormatPrompt(prompt string) string
	// FormatPromptSelection renders the confirmation line printed after a
	// selection when reporting is enabled.
	FormatPromptSelection(prompt, selection string) string
	// FormatItem renders one item line. active marks the highlighted entry.
	FormatItem(text string, active bool) string
}

// Simple is the undecorated default theme.
type Simple struct{}

func (Simple) FormatPrompt(prompt string) string {
	return prompt + ":"
}

func (Simple) FormatPromptSelection(prompt, selection string) string {
	return fmt.Sprintf("%s: %s", prompt, selection)
}

func (Simple) FormatItem(text string, active bool) string {
	if active {
		return "> " + text
	}
	return "  " + text
}

// Color decorates prompt and items with lipgloss styles.
type Color struct {
	Prompt   lipgloss.Style
	Active   lipgloss.Style
	Inactive lipgloss.Style
	Chosen   lipgloss.Style
}

// NewColorTheme returns the default colorized theme.
func NewColorTheme() *Color {
	return &Color{
		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7B61FF")),
		Active: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#73F59F")).
			Bold(true),
		Inactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")),
		Chosen: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5A9")),
	}
}

func (c *Color) FormatPrompt(prompt string) string {
	return c.Prompt.Render(prompt + ":")
}

func (c *Color) FormatPromptSelection(prompt, selection string) string {
	return c.Prompt.Render(prompt+":") + " " + c.Chosen.Render(selection)
}

func (c *Color) FormatItem(text string, active bool) string {
	if active {
		return c.Active.Render("> " + text)
	}
	return c.Inactive.Render("  " + text)
}
