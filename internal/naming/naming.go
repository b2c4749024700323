// Package naming derives the grouping prefix that associates specific clips
// with background clips, and knows which file extensions count as clips.
package naming

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var supportedExtensions = map[string]struct{}{
	".mp4": {},
	".avi": {},
	".mov": {},
}

// SupportedExtension reports whether name carries one of the recognized clip
// container extensions. Comparison is case-insensitive.
func SupportedExtension(name string) bool {
	_, ok := supportedExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// Stem returns the base filename with its extension stripped.
func Stem(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Prefix returns the maximal leading run of non-digit characters of the base
// filename, extension stripped. The run may include spaces and punctuation;
// trailing spaces are kept. Names that are empty or start with a digit have
// no prefix and report ok=false.
//
// Names are NFC-normalized so composed and decomposed spellings of the same
// clip name produce the same prefix.
func Prefix(name string) (string, bool) {
	stem := norm.NFC.String(Stem(name))
	idx := strings.IndexFunc(stem, unicode.IsDigit)
	switch idx {
	case -1:
		if stem == "" {
			return "", false
		}
		return stem, true
	case 0:
		return "", false
	default:
		return stem[:idx], true
	}
}

// HasPrefix reports whether the base filename of candidate starts with
// prefix. Both sides are NFC-normalized before comparison.
func HasPrefix(candidate, prefix string) bool {
	if prefix == "" {
		return false
	}
	return strings.HasPrefix(norm.NFC.String(filepath.Base(candidate)), norm.NFC.String(prefix))
}

var titleCaser = cases.Title(language.Und)

// DisplayTitle renders a prefix for human-facing tables: trimmed and
// title-cased with language-neutral rules.
func DisplayTitle(prefix string) string {
	trimmed := strings.TrimSpace(prefix)
	if trimmed == "" {
		return ""
	}
	return titleCaser.String(strings.ToLower(trimmed))
}
