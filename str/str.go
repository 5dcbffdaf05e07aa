package str

import (
	"strings"
	"unicode"

	"github.com/asaskevich/govalidator"
	"github.com/lithammer/dedent"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// letters that carry no combining mark and so survive NFD decomposition.
var ligatures = strings.NewReplacer(
	"Ø", "O", "ø", "o",
	"Ł", "L", "ł", "l",
	"Đ", "D", "đ", "d",
	"Ħ", "H", "ħ", "h",
	"ß", "ss",
	"Æ", "Ae", "æ", "ae",
	"Œ", "Oe", "œ", "oe",
	"Þ", "Th", "þ", "th",
	"Ð", "D", "ð", "d",
	"ĸ", "k",
	"ı", "i",
)

// RemoveDiacritics folds Latin letters with diacritics and the common Latin
// ligatures to their basic ASCII form. Other scripts pass through unchanged.
//
//	RemoveDiacritics("Øyvind Žofia Michał") // → "Oyvind Zofia Michal"
func RemoveDiacritics(s string) string {
	// Transformers hold state; build a fresh chain per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return ligatures.Replace(out)
}

// Dedent removes any common leading whitespace from every line of text.
// Lines consisting only of whitespace are normalised to a bare newline.
func Dedent(text string) string {
	return dedent.Dedent(text)
}

// Similarity returns the Sørensen–Dice coefficient of the character bigrams
// of a and b, between 0 (nothing in common) and 1 (identical). Whitespace is
// ignored and the comparison is case-sensitive.
func Similarity(a, b string) float64 {
	x, y := stripSpace(a), stripSpace(b)
	if string(x) == string(y) {
		return 1
	}
	if len(x) < 2 || len(y) < 2 {
		return 0
	}

	counts := make(map[[2]rune]int, len(x)-1)
	for i := 0; i < len(x)-1; i++ {
		counts[[2]rune{x[i], x[i+1]}]++
	}

	shared := 0
	for i := 0; i < len(y)-1; i++ {
		bg := [2]rune{y[i], y[i+1]}
		if counts[bg] > 0 {
			counts[bg]--
			shared++
		}
	}
	return 2 * float64(shared) / float64(len(x)+len(y)-2)
}

func stripSpace(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			out = append(out, r)
		}
	}
	return out
}

// IsEmail reports whether s looks like an e-mail address.
func IsEmail(s string) bool { return govalidator.IsEmail(s) }

// IsIPv4 reports whether s is a dotted-quad IPv4 address.
func IsIPv4(s string) bool { return govalidator.IsIPv4(s) }
