package services

import (
	"context"

	einomodel "github.com/cloudwego/eino/components/model"

	"github.com/variable-maker/server/internal/agent/graph/prompts"
	"github.com/variable-maker/server/internal/agent/model"
)

// ConceptService extracts domain concepts and camelCase variants from free text.
type ConceptService struct {
	chat      einomodel.BaseChatModel
	modelName string
}

func NewConceptService(chat einomodel.BaseChatModel, modelName string) *ConceptService {
	return &ConceptService{chat: chat, modelName: modelName}
}

func (s *ConceptService) Extract(ctx context.Context, text string) (string, error) {
	msgs, err := prompts.RenderConceptExtraction(ctx, text)
	if err != nil {
		return "", err
	}
	return generate(ctx, s.chat, "concept", s.modelName, msgs)
}

var _ model.ConceptExtractor = (*ConceptService)(nil)
