package styles

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCount formats n with thousands separators, e.g. 1234 -> "1,234".
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatPercent formats a likeness value with two decimals, e.g. "97.25%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// FormatBead renders a bead label as "name [code]".
func FormatBead(name, code string) string {
	name = strings.TrimSpace(name)
	code = strings.TrimSpace(code)
	if code == "" {
		return name
	}
	return fmt.Sprintf("%s [%s]", name, code)
}
