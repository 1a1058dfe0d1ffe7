package ui

import (
	"strings"
	"unicode"
)

// truncate shortens s to max runes, ending with an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}

// truncateMiddle keeps both ends of s, which suits URLs and paths.
func truncateMiddle(s string, max int) string {
	s = strings.TrimSpace(s)
	if s == "" || max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	head := (max - 1) / 2
	tail := max - 1 - head
	return string(r[:head]) + "…" + string(r[len(r)-tail:])
}

// titleCase upper-cases the first letter of each hyphen or space separated
// word: "special-attack" -> "Special-Attack".
func titleCase(s string) string {
	r := []rune(s)
	upper := true
	for i, c := range r {
		if upper && unicode.IsLetter(c) {
			r[i] = unicode.ToUpper(c)
		}
		upper = c == '-' || c == ' '
	}
	return string(r)
}
