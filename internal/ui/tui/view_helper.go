package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/imperial/internal/domain"
	"github.com/aalvaropc/imperial/internal/usecase"
)

const maxNameLen = 32

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderDate(t Theme, id *domain.ImperialDate) string {
	d := id.RegularDate()
	imp := id.Imperial()

	var b strings.Builder
	b.WriteString(t.Title.Render(fmt.Sprintf("%s  %s", d, d.Time().Weekday())))
	b.WriteString("\n\n")
	b.WriteString(t.Imperial.Render(id.String()))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Date class:    %d\n", imp.DateClass))
	b.WriteString(fmt.Sprintf("Year fraction: %.3f  (day %d of %d)\n", imp.YearFraction, d.DayOfYear(), d.DaysInYear()))
	b.WriteString(fmt.Sprintf("Millennium:    %s", imp.Millennium))
	return b.String()
}

func renderListResult(t Theme, res usecase.ListResult) string {
	var b strings.Builder

	b.WriteString(t.Title.Render(res.Name))
	b.WriteString("\n")
	b.WriteString(t.Subtitle.Render(res.Path))
	b.WriteString("\n\n")

	if len(res.Entries) == 0 {
		b.WriteString("(no dates)")
		return b.String()
	}

	width := 0
	for _, e := range res.Entries {
		if n := utf8.RuneCountInString(clampString(e.Name, maxNameLen)); n > width {
			width = n
		}
	}

	for i, e := range res.Entries {
		name := clampString(e.Name, maxNameLen)
		pad := strings.Repeat(" ", width-utf8.RuneCountInString(name))
		b.WriteString(fmt.Sprintf("%s%s  %s  %s", name, pad, e.Date.RegularDate(), t.Imperial.Render(e.Date.String())))
		if i < len(res.Entries)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
