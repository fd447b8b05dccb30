package datemath

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"task-prioritizer/pkg/wordnum"
)

// ErrUnrecognizedDate is returned when no strategy understands the input.
// The accompanying time is always the zero value.
var ErrUnrecognizedDate = errors.New("unrecognized due date")

var (
	errNotLiteral  = errors.New("not a date literal")
	errNotCalendar = errors.New("not an MM-DD[-YYYY] date")
	errNotRelative = errors.New("not a relative expression")
	errNotWeekday  = errors.New("not a next-weekday expression")
)

// maxRelativeYears bounds calendar shifts so AddDate stays well inside
// time.Time's range.
const maxRelativeYears = 10000

var calendarLayouts = []string{"01-02-2006", "1-2-2006"}

var relativePattern = regexp.MustCompile(
	`^(?:(in)\s+)?(\d+|a|an)\s+(second|minute|hour|day|week|month|year)s?(?:\s+(ago))?$`,
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser converts due-date expressions to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// An empty timezone or "Local" uses the process's local zone.
func NewParser(timezone string) (*Parser, error) {
	if timezone == "" || timezone == "Local" {
		return &Parser{location: time.Local}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the zone results are expressed in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a due-date expression to an absolute time, using now as
// the reference point. It returns ErrUnrecognizedDate and a zero time when
// the expression cannot be resolved.
func (p *Parser) Parse(text string, now time.Time) (time.Time, error) {
	res, err := p.Resolve(text, now)
	return res.AbsoluteTime, err
}

// Resolve is Parse plus the name of the strategy that matched. Strategies
// are tried in order: literals, MM-DD-YYYY, MM-DD (current year), relative
// expressions, next weekday.
func (p *Parser) Resolve(text string, now time.Time) (ParseResult, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	now = now.In(p.location)

	if t, err := p.parseLiteral(text, now); err == nil {
		return ParseResult{AbsoluteTime: t, Strategy: StrategyLiteral}, nil
	}
	if t, err := p.parseCalendar(text, now); err == nil {
		return ParseResult{AbsoluteTime: t, Strategy: StrategyCalendar}, nil
	}
	if t, err := p.parseRelative(text, now); err == nil {
		return ParseResult{AbsoluteTime: t, Strategy: StrategyRelative}, nil
	}
	if t, err := p.parseNextWeekday(text, now); err == nil {
		return ParseResult{AbsoluteTime: t, Strategy: StrategyWeekday}, nil
	}

	return ParseResult{}, fmt.Errorf("%w: %q", ErrUnrecognizedDate, text)
}

func (p *Parser) parseLiteral(text string, now time.Time) (time.Time, error) {
	switch text {
	case "today", "now":
		return now, nil
	case "tomorrow":
		return EndOfDay(now.AddDate(0, 0, 1)), nil
	case "yesterday":
		return EndOfDay(now.AddDate(0, 0, -1)), nil
	}
	return time.Time{}, errNotLiteral
}

// parseCalendar accepts MM-DD-YYYY, then retries with the current year
// appended so that "12-23" means December 23 of this year.
func (p *Parser) parseCalendar(text string, now time.Time) (time.Time, error) {
	if text == "" {
		return time.Time{}, errNotCalendar
	}
	candidates := []string{text, fmt.Sprintf("%s-%d", text, now.Year())}
	for _, c := range candidates {
		for _, layout := range calendarLayouts {
			if t, err := time.ParseInLocation(layout, c, p.location); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, errNotCalendar
}

// parseRelative handles "in 8 days", "in twelve days", "3 weeks ago" and
// bare "twelve days", which counts as future.
func (p *Parser) parseRelative(text string, now time.Time) (time.Time, error) {
	m := relativePattern.FindStringSubmatch(wordnum.Replace(text))
	if m == nil {
		return time.Time{}, errNotRelative
	}

	future, past := m[1] != "", m[4] != ""
	if future && past {
		return time.Time{}, errNotRelative
	}

	amount := 1
	if m[2] != "a" && m[2] != "an" {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return time.Time{}, errNotRelative
		}
		amount = n
	}
	if amount < 0 || !withinRange(amount, m[3]) {
		return time.Time{}, errNotRelative
	}
	if past {
		amount = -amount
	}

	switch m[3] {
	case "second":
		return now.Add(time.Duration(amount) * time.Second), nil
	case "minute":
		return now.Add(time.Duration(amount) * time.Minute), nil
	case "hour":
		return now.Add(time.Duration(amount) * time.Hour), nil
	case "day":
		return now.AddDate(0, 0, amount), nil
	case "week":
		return now.AddDate(0, 0, amount*7), nil
	case "month":
		return now.AddDate(0, amount, 0), nil
	case "year":
		return now.AddDate(amount, 0, 0), nil
	}

	return time.Time{}, errNotRelative
}

// withinRange reports whether amount units can be applied without
// overflowing a time.Duration or leaving the supported calendar span.
func withinRange(amount int, unit string) bool {
	switch unit {
	case "second":
		return int64(amount) <= math.MaxInt64/int64(time.Second)
	case "minute":
		return int64(amount) <= math.MaxInt64/int64(time.Minute)
	case "hour":
		return int64(amount) <= math.MaxInt64/int64(time.Hour)
	case "day":
		return amount <= maxRelativeYears*366
	case "week":
		return amount <= maxRelativeYears*53
	case "month":
		return amount <= maxRelativeYears*12
	case "year":
		return amount <= maxRelativeYears
	}
	return false
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(text string, now time.Time) (time.Time, error) {
	dayName, ok := strings.CutPrefix(text, "next ")
	if !ok {
		return time.Time{}, errNotWeekday
	}
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, errNotWeekday
	}

	daysUntil := int(targetWeekday - now.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return EndOfDay(now.AddDate(0, 0, daysUntil)), nil
}

// StartOfDay returns midnight at the start of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day in t's
// location, one nanosecond before the next midnight.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
