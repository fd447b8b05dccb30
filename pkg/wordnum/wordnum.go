// Package wordnum converts English number words ("twelve", "twenty-five",
// "three hundred") into integers.
package wordnum

import (
	"strconv"
	"strings"
)

var units = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
}

var tens = map[string]int{
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

var scales = map[string]int{
	"hundred":  100,
	"thousand": 1000,
	"million":  1000000,
}

// IsWord reports whether w (case-insensitive) is a number word, including
// the connective "and" used in "one hundred and five".
func IsWord(w string) bool {
	w = strings.ToLower(w)
	if w == "and" {
		return true
	}
	_, u := units[w]
	_, t := tens[w]
	_, s := scales[w]
	return u || t || s
}

// Parse converts a whole phrase of number words into its value.
// Words may be separated by spaces or hyphens. It returns false when the
// phrase contains anything that is not a number word.
func Parse(phrase string) (int, bool) {
	words := split(phrase)
	if len(words) == 0 {
		return 0, false
	}
	return parseWords(words)
}

// Replace substitutes every run of number words inside s with its digits,
// leaving the remaining text untouched: "in twelve days" -> "in 12 days".
func Replace(s string) string {
	fields := strings.Fields(s)
	out := make([]string, 0, len(fields))

	for i := 0; i < len(fields); {
		j := i
		for j < len(fields) && allWords(strings.Split(strings.ToLower(fields[j]), "-")) {
			j++
		}
		// a leading or trailing "and" is prose, not part of the number
		for j > i && strings.EqualFold(fields[j-1], "and") {
			j--
		}
		if j > i && !strings.EqualFold(fields[i], "and") {
			var run []string
			for _, f := range fields[i:j] {
				run = append(run, strings.Split(strings.ToLower(f), "-")...)
			}
			if n, ok := parseWords(run); ok {
				out = append(out, strconv.Itoa(n))
				i = j
				continue
			}
		}
		out = append(out, fields[i])
		i++
	}

	return strings.Join(out, " ")
}

func parseWords(words []string) (int, bool) {
	total, current := 0, 0
	seen := false

	for _, w := range words {
		switch {
		case w == "and":
			continue
		case hasKey(units, w):
			current += units[w]
		case hasKey(tens, w):
			current += tens[w]
		case hasKey(scales, w):
			if current == 0 {
				current = 1
			}
			if scales[w] == 100 {
				current *= 100
			} else {
				total += current * scales[w]
				current = 0
			}
		default:
			return 0, false
		}
		seen = true
	}

	if !seen {
		return 0, false
	}
	return total + current, true
}

func split(phrase string) []string {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	return strings.FieldsFunc(phrase, func(r rune) bool {
		return r == ' ' || r == '-' || r == '\t'
	})
}

func allWords(parts []string) bool {
	for _, p := range parts {
		if p == "" || !IsWord(p) {
			return false
		}
	}
	return true
}

func hasKey(m map[string]int, k string) bool {
	_, ok := m[k]
	return ok
}
