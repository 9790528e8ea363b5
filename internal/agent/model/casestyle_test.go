package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errx "github.com/variable-maker/server/internal/core/error"
)

func TestParseCaseStyle(t *testing.T) {
	t.Parallel()

	cases := map[string]CaseStyle{
		"camelCase":  CamelCase,
		"SNAKE_CASE": SnakeCase,
		"3":          PascalCase,
		" kebab ":    KebabCase,
		"constant":   ConstantCase,
	}
	cases["CONSTANT_CASE (예: USER_NAME)"] = ConstantCase
	for in, want := range cases {
		got, err := ParseCaseStyle(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	for _, bad := range []string{"", "0", "6", "train-case"} {
		_, err := ParseCaseStyle(bad)
		assert.ErrorIs(t, err, errx.ErrInvalidCaseStyle, "input %q", bad)
	}
}

func TestCaseStyleOptionsAreOneToOne(t *testing.T) {
	t.Parallel()

	opts := CaseStyleOptions()
	require.Len(t, opts, 5)

	labels := map[string]CaseStyle{}
	styles := map[CaseStyle]bool{}
	for i, o := range opts {
		assert.Equal(t, i+1, o.Number)
		assert.True(t, o.Style.Valid())
		labels[o.Label()] = o.Style
		styles[o.Style] = true

		parsed, err := ParseCaseStyle(o.Label())
		require.NoError(t, err)
		assert.Equal(t, o.Style, parsed)
	}
	assert.Len(t, labels, 5)
	assert.Len(t, styles, 5)

	opts[0].Style = "mutated"
	assert.Equal(t, CamelCase, CaseStyleOptions()[0].Style)
}

func TestCaseStyleOrDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, SnakeCase, CaseStyleOrDefault("", SnakeCase))
	assert.Equal(t, SnakeCase, CaseStyleOrDefault("bogus", SnakeCase))
	assert.Equal(t, KebabCase, CaseStyleOrDefault("kebab-case", SnakeCase))
	assert.False(t, CaseStyle("bogus").Valid())
}
