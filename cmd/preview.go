package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/hookline/hookline/internal/event"
	"github.com/hookline/hookline/internal/render"
)

var (
	previewDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	previewLabelStyle = lipgloss.NewStyle().Bold(true)
)

var previewCmd = &cobra.Command{
	Use:   "preview <payload.json>",
	Short: "Render an event to the terminal without sending it",
	Long: `Classifies the given payload and prints the message that the relay would
deliver, styled with the embed's accent color. No network calls are made, so
this is safe to run against production payload captures while adjusting
templates.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading payload: %w", err)
	}

	p, err := event.Decode(raw)
	if err != nil {
		return fmt.Errorf("decoding event payload: %w", err)
	}

	t, shape := event.Classify(p)
	fmt.Printf("%s %s\n", previewLabelStyle.Render("Event type:"), t)
	fmt.Printf("%s %s\n", previewLabelStyle.Render("Shape:"), shape)
	if t == event.TypeUnknown {
		fmt.Println(previewDimStyle.Render("No rendering rule exists for UNKNOWN events; nothing to preview."))
		return nil
	}

	msg := render.Render(t, p)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#" + msg.Color))

	fmt.Println()
	fmt.Printf("%s %s\n", previewLabelStyle.Render("Color:"), titleStyle.Render("#"+msg.Color))
	fmt.Printf("%s %s\n", previewLabelStyle.Render("Author:"), msg.AuthorName)
	fmt.Printf("%s %s\n", previewLabelStyle.Render("Title:"), titleStyle.Render(msg.Title))
	fmt.Printf("%s %s\n", previewLabelStyle.Render("URL:"), previewDimStyle.Render(msg.URL))
	if msg.Description != "" {
		fmt.Println(previewLabelStyle.Render("Description:"))
		fmt.Println(msg.Description)
	}
	return nil
}
