// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// transliterations covers Latin letters and signs with no canonical
// decomposition, so stripping marks alone would leave them untouched.
var transliterations = strings.NewReplacer(
	"ß", "ss",
	"ø", "o", "Ø", "O",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"đ", "d", "Đ", "D",
	"ł", "l", "Ł", "L",
	"ı", "i",
	"º", "o", "ª", "a", "°", "deg",
)

// Fold strips diacritics so "Matrícula" and "Matricula" compare equal, and
// spells out the Latin letters listed in transliterations. Other
// characters pass through unchanged.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return transliterations.Replace(out)
}
