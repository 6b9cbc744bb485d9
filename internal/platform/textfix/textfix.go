// Package textfix repairs the encoding artifacts scraped Spanish text arrives
// with and folds names for accent-insensitive comparison.
package textfix

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// UTF-8 text that was decoded as Windows-1252 somewhere upstream.
var mojibake = strings.NewReplacer(
	"Ã¡", "á",
	"Ã©", "é",
	"Ã\u00ad", "í",
	"Ã³", "ó",
	"Ãº", "ú",
	"Ã±", "ñ",
	"Ã¼", "ü",
	"Ã\u0081", "Á",
	"Ã‰", "É",
	"Ã\u008d", "Í",
	"Ã“", "Ó",
	"Ãš", "Ú",
	"Ã‘", "Ñ",
	"Ãœ", "Ü",
	"Â¿", "¿",
	"Â¡", "¡",
)

// Single Latin-1 bytes that are not valid UTF-8 on their own.
var latin1 = map[byte]rune{
	0xe1: 'á', 0xe9: 'é', 0xed: 'í', 0xf3: 'ó', 0xfa: 'ú', 0xf1: 'ñ', 0xfc: 'ü',
	0xc1: 'Á', 0xc9: 'É', 0xcd: 'Í', 0xd3: 'Ó', 0xda: 'Ú', 0xd1: 'Ñ', 0xdc: 'Ü',
	0xbf: '¿', 0xa1: '¡',
}

// replacementLetter stands in for a U+FFFD glyph. The lost letter is
// unknown; á is the most frequent accented letter in the feeds.
const replacementLetter = "á"

// Repair fixes the known byte artifacts for accented vowels, ñ and ü, and
// turns bare U+FFFD glyphs into replacementLetter. Text without artifacts is
// returned unchanged.
func Repair(s string) string {
	if s == "" {
		return s
	}
	if !utf8.ValidString(s) {
		s = repairLatin1(s)
	}
	if strings.Contains(s, "Ã") || strings.Contains(s, "Â") {
		s = mojibake.Replace(s)
	}
	if strings.ContainsRune(s, utf8.RuneError) {
		s = strings.ReplaceAll(s, string(utf8.RuneError), replacementLetter)
	}
	return s
}

func repairLatin1(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			if fixed, ok := latin1[s[i]]; ok {
				b.WriteRune(fixed)
			} else {
				b.WriteRune(utf8.RuneError)
			}
			i++
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

// Clean repairs s and collapses runs of whitespace.
func Clean(s string) string {
	return strings.Join(strings.Fields(Repair(s)), " ")
}

// Fold lowercases, strips diacritics and collapses spaces so "Atlético" and
// "atletico" compare equal.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(Repair(s)))
	if err != nil {
		folded = strings.ToLower(s)
	}
	return strings.Join(strings.Fields(folded), " ")
}

// ContainsFold reports whether needle occurs in haystack ignoring case and
// accents.
func ContainsFold(haystack, needle string) bool {
	n := Fold(needle)
	if n == "" {
		return false
	}
	return strings.Contains(Fold(haystack), n)
}

// EqualFold compares two labels ignoring case and accents.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}
