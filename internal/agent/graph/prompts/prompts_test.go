package prompts

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTranslation(t *testing.T) {
	t.Parallel()

	msgs, err := RenderTranslation(context.Background(), "고양이")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, schema.User, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "Translate '고양이' to English.")
	assert.NotContains(t, msgs[0].Content, "{{")
}

func TestRenderAbbreviation(t *testing.T) {
	t.Parallel()

	msgs, err := RenderAbbreviation(context.Background(), "tax reduction")
	require.NoError(t, err)
	assert.Contains(t, msgs[0].Content, "abbreviations for: 'tax reduction'")
	assert.Contains(t, msgs[0].Content, "space-separated camelCase")
}

func TestRenderConceptExtraction(t *testing.T) {
	t.Parallel()

	msgs, err := RenderConceptExtraction(context.Background(), "중소기업 취업자 감면")
	require.NoError(t, err)
	assert.Contains(t, msgs[0].Content, "Text: '중소기업 취업자 감면'")
	assert.Contains(t, msgs[0].Content, "Format: concept_name:")
}
