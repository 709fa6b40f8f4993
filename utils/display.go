package utils

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleLabel capitalizes the first letter of each word for display.
// Works on any script, unlike byte-wise capitalization.
func TitleLabel(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return cases.Title(language.Und, cases.NoLower).String(strings.Join(strings.Fields(s), " "))
}

// IsRemoteRef reports whether an image reference is an absolute http(s) URL
func IsRemoteRef(ref string) bool {
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
