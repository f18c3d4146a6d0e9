// Package wordlist provides word list filtering helpers.
package wordlist

import "strings"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForLang returns a filter for a list name. English lists
// ("en", "english_200", "en-gb", ...) keep lowercase ASCII words only.
func FilterForLang(lang string) FilterFunc {
	lang = strings.ToLower(lang)
	switch {
	case lang == "en", strings.HasPrefix(lang, "en_"), strings.HasPrefix(lang, "en-"), strings.HasPrefix(lang, "english"):
		return filterEnglishASCII
	default:
		return filterNoSpace
	}
}

// Filter returns the words accepted by keep, preserving order.
func Filter(words []string, keep FilterFunc) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}

func filterEnglishASCII(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}

// Words feed a whitespace-delimited word count, so they must not contain spaces.
func filterNoSpace(word string) bool {
	return word != "" && !strings.ContainsAny(word, " \t")
}
