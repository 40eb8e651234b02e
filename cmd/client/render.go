package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"notes-calendar/internal/client"
	"notes-calendar/internal/model"
	"notes-calendar/internal/query"
)

const previewLength = 60

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	dateStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	todayStyle   = lipgloss.NewStyle().Bold(true).Reverse(true)
	dotStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	cellStyle    = lipgloss.NewStyle().Width(6)
	noteBoxStyle = lipgloss.NewStyle().PaddingLeft(2)
)

// printList выводит текущее представление списка
func printList(w io.Writer, nb *client.Notebook, now time.Time) error {
	if err := nb.Err(); err != nil {
		fmt.Fprintln(w, errorStyle.Render("last refresh failed: "+err.Error()))
	}

	notes := nb.View(now)
	f := nb.Filter()
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%d notes · %s · %s", len(notes), f.Date, f.Sort)))

	if len(notes) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("nothing here"))
		return nil
	}

	for _, n := range notes {
		fmt.Fprintln(w, renderNote(n, nb.Location(), now))
	}
	return nil
}

func renderNote(n model.Note, loc *time.Location, now time.Time) string {
	head := lipgloss.JoinHorizontal(lipgloss.Top,
		dateStyle.Render(query.Resolve(n, loc).String()), " ",
		titleStyle.Render(n.DisplayTitle()), " ",
		mutedStyle.Render("edited "+humanize.RelTime(n.UpdatedAt, now, "ago", "from now")),
	)
	lines := []string{head, mutedStyle.Render(n.ID)}
	if p := preview(n.Content); p != "" {
		lines = append(lines, noteBoxStyle.Render(p))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func preview(content string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(content), "\n")
	r := []rune(line)
	if len(r) > previewLength {
		return string(r[:previewLength]) + "…"
	}
	return line
}

// printCalendar выводит сетку месяца, точки показывают число заметок
func printCalendar(w io.Writer, cal query.Calendar) error {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%s · %s notes", cal.Label(), humanize.Comma(int64(cal.Total())))))

	var header []string
	for _, d := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		header = append(header, cellStyle.Render(mutedStyle.Render(d)))
	}
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, header...))

	for _, week := range cal.Weeks() {
		row := make([]string, 0, len(week))
		for _, day := range week {
			row = append(row, cellStyle.Render(renderDay(day)))
		}
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return nil
}

func renderDay(day *query.Day) string {
	if day == nil {
		return ""
	}
	num := strconv.Itoa(day.Date.Day)
	if day.Today {
		num = todayStyle.Render(num)
	}
	return num + dotStyle.Render(strings.Repeat("•", day.Dots()))
}
