package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/placera/placera/pkg/catalog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Define styles using lipgloss
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Background(lipgloss.Color("235")).
			Padding(0, 1).
			Margin(0, 0, 1, 0)

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	resultStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Margin(0, 0, 1, 2)

	summaryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("32")).
			Margin(1, 0, 0, 0)

	noResultsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			Margin(1, 0)
)

var titleCaser = cases.Title(language.English)

// formatSubject renders one subject as a bordered block.
func formatSubject(subject catalog.Subject) string {
	var b strings.Builder

	b.WriteString(nameStyle.Render(subject.Name))
	b.WriteString("\n")

	meta := titleCaser.String(subject.Type)
	if subject.City != "" {
		meta += " · " + titleCaser.String(subject.City)
	}
	if subject.Location != "" {
		meta += " · " + subject.Location
	}
	b.WriteString(meta)
	b.WriteString("\n")
	b.WriteString(metaStyle.Render(formatRating(subject.AverageRating, subject.ReviewCount)))

	return resultStyle.Render(b.String())
}

// formatRating renders an average rating with its review count.
func formatRating(rating float64, reviews int) string {
	if reviews == 0 {
		return "no reviews yet"
	}
	return fmt.Sprintf("★ %.1f (%s review%s)", rating, formatNumber(reviews), plural(reviews))
}

// formatNumber formats a number with K/M suffixes for readability
func formatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	} else if n < 1000000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	} else {
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
