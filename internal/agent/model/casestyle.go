package model

import (
	"fmt"
	"strconv"
	"strings"

	errx "github.com/variable-maker/server/internal/core/error"
)

// CaseStyle is the identifier casing a result is rendered in.
type CaseStyle string

const (
	CamelCase    CaseStyle = "camelCase"
	SnakeCase    CaseStyle = "snake_case"
	PascalCase   CaseStyle = "PascalCase"
	KebabCase    CaseStyle = "kebab-case"
	ConstantCase CaseStyle = "CONSTANT_CASE"
)

// DefaultCaseStyle is used when neither the request nor the session picks one.
const DefaultCaseStyle = CamelCase

// CaseStyleOption is one entry of the case style selector. Number and Label
// map 1:1 onto Style.
type CaseStyleOption struct {
	Number  int       `json:"number"`
	Style   CaseStyle `json:"id"`
	Name    string    `json:"name"`
	Example string    `json:"example"`
}

// Label is the display text shown by selectors, e.g. "snake_case (예: user_name)".
func (o CaseStyleOption) Label() string {
	return fmt.Sprintf("%s (예: %s)", o.Name, o.Example)
}

var caseStyleOptions = []CaseStyleOption{
	{Number: 1, Style: CamelCase, Name: "camelCase", Example: "userName"},
	{Number: 2, Style: SnakeCase, Name: "snake_case", Example: "user_name"},
	{Number: 3, Style: PascalCase, Name: "PascalCase", Example: "UserName"},
	{Number: 4, Style: KebabCase, Name: "kebab-case", Example: "user-name"},
	{Number: 5, Style: ConstantCase, Name: "CONSTANT_CASE", Example: "USER_NAME"},
}

// CaseStyleOptions returns the selector options in menu order.
func CaseStyleOptions() []CaseStyleOption {
	out := make([]CaseStyleOption, len(caseStyleOptions))
	copy(out, caseStyleOptions)
	return out
}

func (s CaseStyle) String() string {
	return string(s)
}

// Valid reports whether s is one of the five known styles.
func (s CaseStyle) Valid() bool {
	switch s {
	case CamelCase, SnakeCase, PascalCase, KebabCase, ConstantCase:
		return true
	}
	return false
}

// ParseCaseStyle accepts a style value ("snake_case"), its menu number ("2"),
// a short alias ("snake") or a selector label. Matching is case-insensitive.
func ParseCaseStyle(v string) (CaseStyle, error) {
	v = strings.TrimSpace(v)
	if n, err := strconv.Atoi(v); err == nil {
		for _, o := range caseStyleOptions {
			if o.Number == n {
				return o.Style, nil
			}
		}
		return "", fmt.Errorf("%w: %q", errx.ErrInvalidCaseStyle, v)
	}

	key := strings.ToLower(v)
	for _, o := range caseStyleOptions {
		if key == strings.ToLower(string(o.Style)) || key == strings.ToLower(o.Label()) {
			return o.Style, nil
		}
	}
	switch key {
	case "camel":
		return CamelCase, nil
	case "snake":
		return SnakeCase, nil
	case "pascal":
		return PascalCase, nil
	case "kebab":
		return KebabCase, nil
	case "constant", "upper_snake", "screaming_snake":
		return ConstantCase, nil
	}
	return "", fmt.Errorf("%w: %q", errx.ErrInvalidCaseStyle, v)
}

// CaseStyleOrDefault parses v and falls back to def for empty or unknown input.
func CaseStyleOrDefault(v string, def CaseStyle) CaseStyle {
	if strings.TrimSpace(v) == "" {
		return def
	}
	s, err := ParseCaseStyle(v)
	if err != nil {
		return def
	}
	return s
}
