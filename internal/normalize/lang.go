package normalize

import "strings"

// Lang is a site language code.
type Lang string

const (
	LangEN Lang = "en"
	LangRU Lang = "ru"
	LangUZ Lang = "uz"

	DefaultLang = LangEN
)

var langs = []Lang{LangEN, LangRU, LangUZ}

// ParseLang accepts a supported language code in any case.
func ParseLang(s string) (Lang, bool) {
	l := Lang(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range langs {
		if l == known {
			return l, true
		}
	}
	return "", false
}

// DetectLang picks the submission language from the explicit form field, then
// from a /<lang>/ segment in the referring page URL, then the default.
func DetectLang(explicit, referer string) Lang {
	if l, ok := ParseLang(explicit); ok {
		return l
	}
	ref := strings.ToLower(referer)
	for _, l := range langs {
		if strings.Contains(ref, "/"+string(l)+"/") {
			return l
		}
	}
	return DefaultLang
}
