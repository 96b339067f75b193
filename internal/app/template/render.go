// Package template renders user-supplied output lines such as
// "{{imperial}} ({{date}})" for a converted date.
package template

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aalvaropc/imperial/internal/domain"
)

// Fields returns the placeholders available for id:
// date, year, month, day, weekday, day_of_year, class, fraction,
// fraction_floor, millennium and imperial.
func Fields(id *domain.ImperialDate) map[string]string {
	d := id.RegularDate()
	imp := id.Imperial()
	return map[string]string{
		"date":           d.String(),
		"year":           strconv.Itoa(d.Year),
		"month":          fmt.Sprintf("%02d", int(d.Month)),
		"day":            fmt.Sprintf("%02d", d.Day),
		"weekday":        d.Time().Weekday().String(),
		"day_of_year":    strconv.Itoa(d.DayOfYear()),
		"class":          strconv.Itoa(imp.DateClass),
		"fraction":       strconv.FormatFloat(imp.YearFraction, 'f', 3, 64),
		"fraction_floor": strconv.Itoa(int(math.Floor(imp.YearFraction))),
		"millennium":     imp.Millennium,
		"imperial":       id.String(),
	}
}

// Render fills tpl with the fields of id. Entries of extra (such as an
// input or entry name) are added on top.
func Render(tpl string, id *domain.ImperialDate, extra map[string]string) (string, error) {
	vars := Fields(id)
	for k, v := range extra {
		vars[k] = v
	}
	return RenderString(tpl, vars)
}

// RenderString replaces {{VAR}} placeholders with vars values.
// It returns an error if a variable is unknown or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", templateErr("unclosed template expression")
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", templateErr("empty template expression")
		}

		value, ok := vars[key]
		if !ok {
			return "", templateErr(fmt.Sprintf("unknown placeholder %q", key))
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

func templateErr(msg string) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindInvalidArgument,
		Err:  fmt.Errorf("%s: %w", msg, domain.ErrInvalidArgument),
	}
}
