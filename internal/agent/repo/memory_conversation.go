package repo

import (
	"context"
	"sync"

	"github.com/cloudwego/eino/schema"

	"github.com/variable-maker/server/internal/agent/model"
)

// MemoryConversationRepository keeps threads in process memory. It is used
// when no Redis URL is configured, e.g. for local REPL sessions.
type MemoryConversationRepository struct {
	mu      sync.RWMutex
	threads map[string][]*schema.Message
}

func NewMemoryConversationRepository() *MemoryConversationRepository {
	return &MemoryConversationRepository{threads: make(map[string][]*schema.Message)}
}

func (r *MemoryConversationRepository) AddMessage(_ context.Context, conversationID string, message *schema.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.threads[conversationID] = append(r.threads[conversationID], message)
	return nil
}

func (r *MemoryConversationRepository) LoadHistory(_ context.Context, conversationID string) (*model.ConversationHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	msgs := make([]*schema.Message, len(r.threads[conversationID]))
	copy(msgs, r.threads[conversationID])
	return &model.ConversationHistory{ConversationID: conversationID, Messages: msgs}, nil
}

func (r *MemoryConversationRepository) ClearHistory(_ context.Context, conversationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.threads, conversationID)
	return nil
}

func (r *MemoryConversationRepository) GetMessageCount(_ context.Context, conversationID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.threads[conversationID]), nil
}

var _ model.ConversationRepository = (*MemoryConversationRepository)(nil)
