package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConceptLine(t *testing.T) {
	t.Parallel()

	line := ParseConceptLine("  tax reduction :  taxReduction, taxRed ,tr ")
	require.True(t, line.IsConcept)
	assert.Equal(t, "tax reduction", line.Label)
	assert.Equal(t, []string{"taxReduction", "taxRed", "tr"}, line.Variants)
	assert.Equal(t, "tax reduction: taxReduction, taxRed, tr", line.String())
}

func TestParseConceptLineFreeText(t *testing.T) {
	t.Parallel()

	line := ParseConceptLine("Here are the concepts")
	assert.False(t, line.IsConcept)
	assert.Equal(t, "Here are the concepts", line.String())

	mapped := line.MapVariants(strings.ToUpper)
	assert.Equal(t, "Here are the concepts", mapped.String())
}

func TestParseConceptLineSplitsAtFirstColon(t *testing.T) {
	t.Parallel()

	line := ParseConceptLine("time: 10:30, startTime")
	require.True(t, line.IsConcept)
	assert.Equal(t, "time", line.Label)
	assert.Equal(t, []string{"10:30", "startTime"}, line.Variants)
}

func TestParseConceptLineEmptyVariants(t *testing.T) {
	t.Parallel()

	line := ParseConceptLine("label:")
	require.True(t, line.IsConcept)
	assert.Equal(t, []string{""}, line.Variants)
	assert.Equal(t, "label: ", line.String())
}

func TestParseConceptTextRoundTrip(t *testing.T) {
	t.Parallel()

	content := "intro line\r\ntax: taxReduction, taxRed\n\nemployee: employee, emp"
	lines := ParseConceptText(content)
	require.Len(t, lines, 4)
	assert.False(t, lines[0].IsConcept)
	assert.True(t, lines[1].IsConcept)
	assert.False(t, lines[2].IsConcept)

	upper := make([]ConceptLine, len(lines))
	for i, l := range lines {
		upper[i] = l.MapVariants(strings.ToUpper)
	}
	assert.Equal(t, "intro line\ntax: TAXREDUCTION, TAXRED\n\nemployee: EMPLOYEE, EMP", JoinConceptLines(upper))
	// the source lines are untouched
	assert.Equal(t, "taxReduction", lines[1].Variants[0])
}

func TestParseConceptTextTruncatesHugeContent(t *testing.T) {
	t.Parallel()

	lines := ParseConceptText(strings.Repeat("a", maxContentLen+10))
	require.Len(t, lines, 1)
	assert.Len(t, lines[0].Raw, maxContentLen)
}
