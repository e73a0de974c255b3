package utils

import (
	"regexp"
	"strings"
)

var (
	markupTagPattern  = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// SanitizeTitle neutralizes user provided titles before they are used
// as identifiers: markup tags are stripped, whitespace runs collapsed
// and the result trimmed.
func SanitizeTitle(title string) string {
	title = markupTagPattern.ReplaceAllString(title, "")
	title = whitespacePattern.ReplaceAllString(title, " ")
	return strings.Trim(title, " \n\r")
}

func SanitizeEmail(email string) string {
	email = strings.ToLower(email)
	email = strings.Trim(email, " \n\r")
	return email
}
