package cipher

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-caesar-cipher/models"
)

// Analyze counts the characters of text by class.
//
// TotalChars counts runes, not bytes. Letters outside ASCII are reported as
// non-alphabetic. Words are fields delimited by isWordSeparator, so an empty
// or whitespace-only text has zero words.
func Analyze(text string) models.TextStatistics {
	stats := models.TextStatistics{
		TotalChars: utf8.RuneCountInString(text),
		Words:      len(strings.FieldsFunc(text, isWordSeparator)),
	}

	for _, r := range text {
		switch {
		case r >= 'A' && r <= 'Z':
			stats.UppercaseChars++
		case r >= 'a' && r <= 'z':
			stats.LowercaseChars++
		}
	}

	stats.AlphabeticChars = stats.UppercaseChars + stats.LowercaseChars
	stats.NonAlphabeticChars = stats.TotalChars - stats.AlphabeticChars

	return stats
}

// isWordSeparator reports Unicode white space plus the ASCII file, group,
// record and unit separators (U+001C..U+001F), which also split words.
func isWordSeparator(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1C && r <= 0x1F)
}
