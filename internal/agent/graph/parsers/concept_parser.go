package parsers

import (
	"strings"

	logx "github.com/variable-maker/server/pkg/logger"
)

const (
	conceptDelim = ":"
	variantDelim = ","
)

// basic safety limit to avoid pathological model output
const maxContentLen = 64 * 1024

// ConceptLine is one line of concept extraction output. Lines without a colon
// are free text: IsConcept is false and Raw holds the line verbatim.
type ConceptLine struct {
	Raw       string
	Label     string
	Variants  []string
	IsConcept bool
}

// ParseConceptLine splits "label: v1, v2" at the first colon. Labels cannot
// contain a colon; anything after the first one belongs to the variants.
func ParseConceptLine(line string) ConceptLine {
	label, variants, ok := strings.Cut(line, conceptDelim)
	if !ok {
		return ConceptLine{Raw: line}
	}

	parts := strings.Split(variants, variantDelim)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return ConceptLine{
		Raw:       line,
		Label:     strings.TrimSpace(label),
		Variants:  parts,
		IsConcept: true,
	}
}

// ParseConceptText parses every line of the extraction output in order.
func ParseConceptText(content string) []ConceptLine {
	if len(content) > maxContentLen {
		logx.Warn().
			Str("component", "concept_parser").
			Int("max_len", maxContentLen).
			Int("orig_len", len(content)).
			Msg("content truncated due to size limit")
		content = content[:maxContentLen]
	}

	rawLines := strings.Split(content, "\n")
	lines := make([]ConceptLine, 0, len(rawLines))
	for _, l := range rawLines {
		lines = append(lines, ParseConceptLine(strings.TrimSuffix(l, "\r")))
	}
	return lines
}

// String renders the line back, concept lines as "label: v1, v2".
func (c ConceptLine) String() string {
	if !c.IsConcept {
		return c.Raw
	}
	return c.Label + conceptDelim + " " + strings.Join(c.Variants, variantDelim+" ")
}

// MapVariants returns a copy of c with fn applied to every variant.
func (c ConceptLine) MapVariants(fn func(string) string) ConceptLine {
	if !c.IsConcept {
		return c
	}
	out := c
	out.Variants = make([]string, len(c.Variants))
	for i, v := range c.Variants {
		out.Variants[i] = fn(v)
	}
	return out
}

// JoinConceptLines renders lines joined by newlines.
func JoinConceptLines(lines []ConceptLine) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.String()
	}
	return strings.Join(parts, "\n")
}
