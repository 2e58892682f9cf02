package sanitizer

import (
	"regexp"
	"strings"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

var (
	reNonSlug = regexp.MustCompile(`[^a-z0-9]+`)
)

func trimAndLower(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return s
}

func Slugify(input string) string {
	p := Pipeline{
		trimAndLower,
		func(s string) string { return reNonSlug.ReplaceAllString(s, "-") },
		func(s string) string { return strings.Trim(s, "-") },
	}
	return p.Apply(input)
}

func NormalizeEmail(email string) string {
	return trimAndLower(email)
}
