package services

import (
	"context"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"

	"github.com/variable-maker/server/internal/agent/graph/prompts"
	"github.com/variable-maker/server/internal/agent/model"
)

// AbbreviationService asks a chat model for camelCase abbreviation candidates.
type AbbreviationService struct {
	chat      einomodel.BaseChatModel
	modelName string
}

func NewAbbreviationService(chat einomodel.BaseChatModel, modelName string) *AbbreviationService {
	return &AbbreviationService{chat: chat, modelName: modelName}
}

func (s *AbbreviationService) Abbreviate(ctx context.Context, word string) ([]string, error) {
	msgs, err := prompts.RenderAbbreviation(ctx, word)
	if err != nil {
		return nil, err
	}
	content, err := generate(ctx, s.chat, "abbreviation", s.modelName, msgs)
	if err != nil {
		return nil, err
	}
	return ParseAbbreviations(content), nil
}

// ParseAbbreviations splits a space-separated model reply. Replies meaning
// "nothing suitable" and stray "." tokens yield no candidates.
func ParseAbbreviations(content string) []string {
	content = strings.TrimSpace(content)
	switch strings.ToLower(content) {
	case "", "empty", "none", "no abbreviations":
		return []string{}
	}

	fields := strings.Fields(content)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == "." {
			continue
		}
		out = append(out, f)
	}
	return out
}

var _ model.Abbreviator = (*AbbreviationService)(nil)
