package services

import (
	"context"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"

	"github.com/variable-maker/server/internal/agent/graph/prompts"
	"github.com/variable-maker/server/internal/agent/model"
	errx "github.com/variable-maker/server/internal/core/error"
)

// TranslationService translates Korean words through a chat model.
type TranslationService struct {
	chat      einomodel.BaseChatModel
	modelName string
}

func NewTranslationService(chat einomodel.BaseChatModel, modelName string) *TranslationService {
	return &TranslationService{chat: chat, modelName: modelName}
}

func (s *TranslationService) Translate(ctx context.Context, word string) (string, error) {
	msgs, err := prompts.RenderTranslation(ctx, word)
	if err != nil {
		return "", err
	}
	content, err := generate(ctx, s.chat, "translation", s.modelName, msgs)
	if err != nil {
		return "", err
	}
	// The model sometimes echoes the quoting used in the prompt.
	content = strings.Trim(content, "'\"` .")
	if content == "" {
		return "", errx.WrapLLM(errEmptyReply)
	}
	return content, nil
}

var _ model.Translator = (*TranslationService)(nil)
