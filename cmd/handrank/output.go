package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/handrank/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)

// printWinners writes one line per winning hand with its rank key.
func printWinners(w io.Writer, winners []string) {
	if len(winners) > 1 {
		fmt.Fprintln(w, tieStyle.Render(fmt.Sprintf("%d-way tie", len(winners))))
	}
	for _, text := range winners {
		h, err := poker.ParseHand(text)
		if err != nil {
			// A lone hand is returned without being parsed.
			fmt.Fprintln(w, handStyle.Render(text))
			continue
		}
		fmt.Fprintf(w, "%s  %s\n", handStyle.Render(text), categoryStyle.Render(poker.Classify(h).String()))
	}
}

func printClassification(w io.Writer, h poker.Hand, key poker.RankKey) {
	fmt.Fprintf(w, "%s %s\n", headerStyle.Render("hand    "), handStyle.Render(h.String()))
	fmt.Fprintf(w, "%s %s\n", headerStyle.Render("category"), categoryStyle.Render(key.Category.String()))
	fmt.Fprintf(w, "%s %s\n", headerStyle.Render("key     "), categoryStyle.Render(key.String()))
}
