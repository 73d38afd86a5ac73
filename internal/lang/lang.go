// Package lang provides stateless language-code utilities: normalisation of
// ISO 639 codes and text language detection.
package lang

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// iso639Map maps common ISO 639-2 codes to their ISO 639-1 equivalents.
var iso639Map = map[string]string{
	"eng": "en", "fra": "fr", "fre": "fr", "deu": "de", "ger": "de", "spa": "es",
	"ita": "it", "nld": "nl", "dut": "nl", "por": "pt", "rus": "ru", "jpn": "ja",
	"zho": "zh", "chi": "zh", "ara": "ar", "tur": "tr", "pol": "pl", "swe": "sv",
	"nor": "no", "fin": "fi", "dan": "da", "ces": "cs", "cze": "cs", "ell": "el",
	"gre": "el", "kor": "ko", "vie": "vi", "hin": "hi", "ukr": "uk", "ron": "ro",
	"rum": "ro", "hun": "hu", "tha": "th", "ind": "id", "heb": "he",
}

// Normalize converts a language code to ISO 639-1 when possible.
// Accepts 2-letter codes, 3-letter codes and IETF tags with region or
// script suffixes (en-US, eng-Latn). Returns "" when unrecognised.
func Normalize(code string) string {
	c := strings.ToLower(strings.TrimSpace(code))
	if c == "" {
		return ""
	}
	base, _, _ := strings.Cut(c, "-")

	switch len(base) {
	case 2:
		return base
	case 3:
		return iso639Map[base]
	}
	return ""
}

// Detect guesses the language of a text sample and returns its ISO 639-1
// code plus a reliability flag. An empty code means the detected language
// has no 639-1 mapping.
func Detect(sample string) (string, bool) {
	if strings.TrimSpace(sample) == "" {
		return "", false
	}
	info := whatlanggo.Detect(sample)
	return Normalize(whatlanggo.LangToString(info.Lang)), info.IsReliable()
}
