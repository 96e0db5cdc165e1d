// Package translit renders Tamil-script text as an approximate Latin
// pronunciation guide using ISO 15919 letters.
//
// Latin is total: runes outside the Tamil block pass through unchanged, so it
// is safe to call on any text.
package translit

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const virama = '்'

var consonants = map[rune]string{
	'க': "k", 'ங': "ṅ", 'ச': "c", 'ஞ': "ñ", 'ட': "ṭ", 'ண': "ṇ",
	'த': "t", 'ந': "n", 'ப': "p", 'ம': "m", 'ய': "y", 'ர': "r",
	'ல': "l", 'வ': "v", 'ழ': "ḻ", 'ள': "ḷ", 'ற': "ṟ", 'ன': "ṉ",
	// Grantha consonants used for loanwords.
	'ஜ': "j", 'ஶ': "ś", 'ஷ': "ṣ", 'ஸ': "s", 'ஹ': "h",
}

var vowels = map[rune]string{
	'அ': "a", 'ஆ': "ā", 'இ': "i", 'ஈ': "ī", 'உ': "u", 'ஊ': "ū",
	'எ': "e", 'ஏ': "ē", 'ஐ': "ai", 'ஒ': "o", 'ஓ': "ō", 'ஔ': "au",
}

var vowelSigns = map[rune]string{
	'ா': "ā", 'ி': "i", 'ீ': "ī", 'ு': "u", 'ூ': "ū",
	'ெ': "e", 'ே': "ē", 'ை': "ai",
	'ொ': "o", 'ோ': "ō", 'ௌ': "au",
	'ௗ': "au", // length mark, only seen uncomposed
}

var others = map[rune]string{
	'ஃ': "ḵ",
	'ௐ': "ōm",
	'௦': "0", '௧': "1", '௨': "2", '௩': "3", '௪': "4",
	'௫': "5", '௬': "6", '௭': "7", '௮': "8", '௯': "9",
	'௰': "10", '௱': "100", '௲': "1000",
}

// Latin transliterates the Tamil runes in s and leaves everything else as is.
// Bytes that are not valid UTF-8 are copied through unchanged.
func Latin(s string) string {
	if s == "" {
		return s
	}

	// NFC composes split vowel signs (ெ + ா → ொ) before lookup.
	s = norm.NFC.String(s)

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			b.WriteByte(s[i])
			i++
			continue
		}
		i += size

		if c, ok := consonants[r]; ok {
			b.WriteString(c)
			next, nsize := utf8.DecodeRuneInString(s[i:])
			if next == virama {
				i += nsize
				continue
			}
			if v, ok := vowelSigns[next]; ok {
				b.WriteString(v)
				i += nsize
				continue
			}
			b.WriteByte('a')
			continue
		}

		if v, ok := vowels[r]; ok {
			b.WriteString(v)
			continue
		}
		if o, ok := others[r]; ok {
			b.WriteString(o)
			continue
		}
		// A stray sign or virama has no consonant to attach to.
		if v, ok := vowelSigns[r]; ok {
			b.WriteString(v)
			continue
		}
		if r == virama {
			continue
		}

		b.WriteString(s[i-size : i])
	}

	return b.String()
}
