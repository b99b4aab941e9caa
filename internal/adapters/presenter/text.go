package presenter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andrewshostak/team-lookup-service/internal/app/models"
	"github.com/charmbracelet/lipgloss"
)

const (
	textTeamNotFound = "Team not found"
	textFetchError   = "Error fetching data"
)

type fallbackTexts struct {
	loading string
	empty   string
}

var (
	upcomingTexts = fallbackTexts{loading: "Loading upcoming games...", empty: "No upcoming events found"}
	pastTexts     = fallbackTexts{loading: "Loading past games...", empty: "No past events found"}
	rosterTexts   = fallbackTexts{loading: "Loading roster...", empty: "No players found"}
)

var (
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	fallbackStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Text is a Board rendered as plain terminal lists.
type Text struct {
	*Board
}

func NewText() *Text {
	return &Text{Board: NewBoard()}
}

func (t *Text) Render() string {
	snapshot := t.Snapshot()

	var sb strings.Builder
	writeSection(&sb, "Upcoming games", renderList(snapshot.Upcoming, upcomingTexts, renderUpcoming))
	sb.WriteString("\n")
	writeSection(&sb, "Past games", renderList(snapshot.Past, pastTexts, renderPast))
	sb.WriteString("\n")
	writeSection(&sb, "Roster", renderList(snapshot.Roster, rosterTexts, renderPlayer))

	return sb.String()
}

func writeSection(sb *strings.Builder, title string, lines []string) {
	sb.WriteString(headingStyle.Render(title))
	sb.WriteString("\n")
	for _, line := range lines {
		sb.WriteString("  ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}

func renderList[T any](result models.LookupResult[T], texts fallbackTexts, render func(T) string) []string {
	switch result.Status {
	case models.StatusLoading:
		return []string{fallbackStyle.Render(texts.loading)}
	case models.StatusEmpty:
		return []string{fallbackStyle.Render(texts.empty)}
	case models.StatusNotFound:
		return []string{fallbackStyle.Render(textTeamNotFound)}
	case models.StatusFailed:
		return []string{errorStyle.Render(textFetchError)}
	case models.StatusItems:
		lines := make([]string, 0, len(result.Items))
		for _, item := range result.Items {
			lines = append(lines, render(item))
		}
		return lines
	default:
		return nil
	}
}

func renderUpcoming(event models.EventSummary) string {
	when := event.Date
	if event.Time != "" {
		when = fmt.Sprintf("%s at %s", event.Date, event.Time)
	}

	return fmt.Sprintf("%s | %s | %s", event.Name, when, event.Thumb)
}

func renderPast(event models.EventSummary) string {
	return fmt.Sprintf("%s | %s | Score: %s - %s | %s", event.Name, event.Date, renderScore(event.HomeScore), renderScore(event.AwayScore), event.Thumb)
}

func renderPlayer(player models.RosterEntry) string {
	return fmt.Sprintf("%s | %s, %s | %s", player.Name, player.Position, player.Nationality, player.Thumb)
}

func renderScore(score *int) string {
	if score == nil {
		return "?"
	}

	return strconv.Itoa(*score)
}
