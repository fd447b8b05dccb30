package duration

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"task-prioritizer/pkg/wordnum"
)

var (
	errNoMatch      = errors.New("estimate does not match <quantity> <unit>")
	errBadQuantity  = errors.New("quantity is not a number, fraction or number word")
	errUnknownUnit  = errors.New("unknown unit")
	errZeroDivision = errors.New("fraction has a zero denominator")
)

var estimatePattern = regexp.MustCompile(`^(.+?)\s+([a-z]+)$`)

// Parse converts a free-text estimate such as "1/2 day", "20 mins",
// "twelve minutes" or "lifetime" into a duration. It never fails: input that
// cannot be understood resolves to Default, an unknown unit to minutes and an
// unreadable quantity to DefaultQuantity.
func Parse(text string) time.Duration {
	d, _ := ParseStrict(text)
	return d
}

// ParseStrict behaves like Parse but also reports the first fallback taken,
// so callers can log why an estimate was defaulted. The returned duration is
// always usable.
func ParseStrict(text string) (time.Duration, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == UnitLifetime {
		return Lifetime, nil
	}

	m := estimatePattern.FindStringSubmatch(text)
	if m == nil {
		return Default, errNoMatch
	}

	unitText, qtyText := m[2], strings.TrimSpace(m[1])
	if unitText == UnitLifetime || unitText == UnitLifetime+"s" {
		return Lifetime, nil
	}

	var fallback error

	qty, err := parseQuantity(qtyText)
	if err != nil {
		qty, fallback = DefaultQuantity, err
	}

	unit, err := parseUnit(unitText)
	if err != nil {
		unit = minUnit
		if fallback == nil {
			fallback = err
		}
	}

	f := qty * float64(unit)
	if !(f > 0) || f >= math.MaxInt64 {
		return Default, errBadQuantity
	}
	// sub-nanosecond quantities truncate to zero
	d := time.Duration(f)
	if d <= 0 {
		return Default, errBadQuantity
	}

	return d, fallback
}

// parseQuantity tries, in order: decimal, fraction, "a"/"an", number words.
func parseQuantity(s string) (float64, error) {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}

	if num, den, ok := strings.Cut(s, "/"); ok {
		n, nErr := strconv.ParseFloat(strings.TrimSpace(num), 64)
		d, dErr := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if nErr == nil && dErr == nil {
			if d == 0 {
				return 0, errZeroDivision
			}
			return n / d, nil
		}
	}

	if s == "a" || s == "an" {
		return 1, nil
	}

	if n, ok := wordnum.Parse(s); ok {
		return float64(n), nil
	}

	return 0, errBadQuantity
}

// parseUnit normalises the unit to its plural form before lookup.
func parseUnit(s string) (time.Duration, error) {
	if abbrev, ok := abbreviations[s]; ok {
		s = abbrev
	}
	if !strings.HasSuffix(s, "s") {
		s += "s"
	}
	unit, ok := unitsByPlural[s]
	if !ok {
		return 0, errUnknownUnit
	}
	return unit, nil
}
