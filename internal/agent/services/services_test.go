package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errx "github.com/variable-maker/server/internal/core/error"
)

type fakeChatModel struct {
	reply string
	err   error
	seen  []*schema.Message
}

func (f *fakeChatModel) Generate(_ context.Context, input []*schema.Message, _ ...einomodel.Option) (*schema.Message, error) {
	f.seen = input
	if f.err != nil {
		return nil, f.err
	}
	msg := schema.AssistantMessage(f.reply, nil)
	msg.ResponseMeta = &schema.ResponseMeta{Usage: &schema.TokenUsage{PromptTokens: 10, CompletionTokens: 2, TotalTokens: 12}}
	return msg, nil
}

func (f *fakeChatModel) Stream(context.Context, []*schema.Message, ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("not supported")
}

func TestTranslationService(t *testing.T) {
	t.Parallel()

	chat := &fakeChatModel{reply: " 'cat'.\n"}
	svc := NewTranslationService(chat, "gemini-2.0-flash")

	got, err := svc.Translate(context.Background(), "고양이")
	require.NoError(t, err)
	assert.Equal(t, "cat", got)
	require.Len(t, chat.seen, 1)
	assert.Contains(t, chat.seen[0].Content, "'고양이'")
}

func TestTranslationServiceErrors(t *testing.T) {
	t.Parallel()

	_, err := NewTranslationService(&fakeChatModel{err: errors.New("quota")}, "m").Translate(context.Background(), "고양이")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, errx.StatusOf(err))

	_, err = NewTranslationService(&fakeChatModel{reply: "  "}, "m").Translate(context.Background(), "고양이")
	assert.ErrorIs(t, err, errEmptyReply)
}

func TestAbbreviationService(t *testing.T) {
	t.Parallel()

	svc := NewAbbreviationService(&fakeChatModel{reply: "taxReduction empTaxReduction . taxRed"}, "m")
	got, err := svc.Abbreviate(context.Background(), "Tax reduction for employees")
	require.NoError(t, err)
	assert.Equal(t, []string{"taxReduction", "empTaxReduction", "taxRed"}, got)

	_, err = NewAbbreviationService(&fakeChatModel{err: errors.New("down")}, "m").Abbreviate(context.Background(), "x")
	assert.Error(t, err)
}

func TestParseAbbreviations(t *testing.T) {
	t.Parallel()

	for _, none := range []string{"", "  ", "empty", "None", "No abbreviations"} {
		got := ParseAbbreviations(none)
		assert.NotNil(t, got)
		assert.Empty(t, got, "reply %q", none)
	}
	assert.Equal(t, []string{"db"}, ParseAbbreviations("db ."))
	assert.Equal(t, []string{"intl", "int"}, ParseAbbreviations("intl\nint"))
}

func TestConceptService(t *testing.T) {
	t.Parallel()

	chat := &fakeChatModel{reply: "tax: taxReduction, taxRed\n"}
	got, err := NewConceptService(chat, "m").Extract(context.Background(), "세금 감면 변수")
	require.NoError(t, err)
	assert.Equal(t, "tax: taxReduction, taxRed", got)
	assert.Contains(t, chat.seen[0].Content, "세금 감면 변수")
}
