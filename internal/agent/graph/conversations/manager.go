package conversations

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"

	"github.com/variable-maker/server/internal/agent/model"
)

type MessagesManager struct {
	conversationRepo model.ConversationRepository
	historyLimit     int
}

func NewMessagesManager(conversationRepo model.ConversationRepository, config model.ConversationConfig) *MessagesManager {
	return &MessagesManager{
		conversationRepo: conversationRepo,
		historyLimit:     config.HistoryLimit,
	}
}

// SaveUserMessage stores the raw user input of one turn.
func (cm *MessagesManager) SaveUserMessage(ctx context.Context, conversationID string, content string) error {
	if conversationID == "" {
		return fmt.Errorf("conversation id is empty")
	}
	return cm.conversationRepo.AddMessage(ctx, conversationID, schema.UserMessage(content))
}

// SaveResponse stores the formatted assistant reply of one turn.
func (cm *MessagesManager) SaveResponse(ctx context.Context, conversationID string, content string) error {
	if conversationID == "" {
		return fmt.Errorf("conversation id is empty")
	}
	return cm.conversationRepo.AddMessage(ctx, conversationID, schema.AssistantMessage(content, nil))
}

// RecentHistory returns at most historyLimit trailing messages; a limit <= 0 returns everything.
func (cm *MessagesManager) RecentHistory(ctx context.Context, conversationID string) ([]*schema.Message, error) {
	history, err := cm.conversationRepo.LoadHistory(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	return trimTail(history.Messages, cm.historyLimit), nil
}

func (cm *MessagesManager) MessageCount(ctx context.Context, conversationID string) (int, error) {
	return cm.conversationRepo.GetMessageCount(ctx, conversationID)
}

func (cm *MessagesManager) Clear(ctx context.Context, conversationID string) error {
	return cm.conversationRepo.ClearHistory(ctx, conversationID)
}

// ====================== Helper function ======================
func trimTail(messages []*schema.Message, maxMessages int) []*schema.Message {
	if maxMessages <= 0 || len(messages) <= maxMessages {
		result := make([]*schema.Message, len(messages))
		copy(result, messages)
		return result
	}
	source := messages[len(messages)-maxMessages:]
	result := make([]*schema.Message, len(source))
	copy(result, source)
	return result
}
