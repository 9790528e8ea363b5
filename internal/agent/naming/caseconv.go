package naming

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/variable-maker/server/internal/agent/model"
)

var (
	// camelSignal matches text that starts with lowercase letters directly
	// followed by an uppercase letter, e.g. "taxReduction".
	camelSignal = regexp.MustCompile(`^[a-z]+[A-Z]`)
	camelBreak  = regexp.MustCompile(`([a-z])([A-Z])`)
)

// Convert re-cases text into style. Upstream generators always emit
// camelCase, so camelCase-shaped input is split into words while bare tokens
// (db, intl, BTS) only change letter case. Unknown styles return text as is.
func Convert(text string, style model.CaseStyle) string {
	if camelSignal.MatchString(text) {
		return convertWords(text, SplitCamel(text), style)
	}
	return convertToken(text, style)
}

// SplitCamel breaks a camelCase string on every lower/upper boundary.
func SplitCamel(text string) []string {
	return strings.Fields(camelBreak.ReplaceAllString(text, "$1 $2"))
}

func convertWords(text string, words []string, style model.CaseStyle) string {
	switch style {
	case model.CamelCase:
		return text
	case model.SnakeCase:
		return joinMapped(words, strings.ToLower, "_")
	case model.PascalCase:
		return joinMapped(words, Capitalize, "")
	case model.KebabCase:
		return joinMapped(words, strings.ToLower, "-")
	case model.ConstantCase:
		return joinMapped(words, strings.ToUpper, "_")
	}
	return text
}

func convertToken(text string, style model.CaseStyle) string {
	switch style {
	case model.CamelCase, model.SnakeCase, model.KebabCase:
		return strings.ToLower(text)
	case model.PascalCase:
		return Capitalize(text)
	case model.ConstantCase:
		return strings.ToUpper(text)
	}
	return text
}

// Capitalize upper-cases the first rune and lower-cases the rest.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToTitle(r)) + strings.ToLower(s[size:])
}

// ConvertAll converts every candidate, keeping order.
func ConvertAll(items []string, style model.CaseStyle) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, Convert(it, style))
	}
	return out
}

func joinMapped(words []string, fn func(string) string, sep string) string {
	mapped := make([]string, len(words))
	for i, w := range words {
		mapped[i] = fn(w)
	}
	return strings.Join(mapped, sep)
}
