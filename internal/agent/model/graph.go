package model

import (
	"github.com/cloudwego/eino/schema"
)

// AppState is the per-invocation processing state of the naming graph.
// Concurrency model:
//   - Registered as Graph Local State via compose.WithGenLocalState, so every
//     Invoke gets a fresh value.
//   - Reads and writes happen only inside Eino state handlers or
//     compose.ProcessState, which serialize access.
//   - Nothing here outlives the invocation; history is persisted through
//     MessagesManager and the case style is returned in ProcessResult.
type AppState struct {
	ConversationID string
	Input          string
	InputType      InputType
	IsKorean       bool
	TranslatedWord string   // word branch only
	Abbreviations  []string // word branch only, already case-converted
	ProcessedText  string   // text branch only
	CaseStyle      CaseStyle
	Messages       []*schema.Message // append-only
	Quit           bool
}

// QueryInput is one user input plus the session context it runs in.
type QueryInput struct {
	ConversationID string    `json:"conversation_id"`
	Query          string    `json:"query"`
	CaseStyle      CaseStyle `json:"case_style"`
}

// ClassifiedInput is the trimmed input tagged with its branch.
type ClassifiedInput struct {
	Text string
	Type InputType
}

// ProcessResult is returned by every invocation. CaseStyle carries the
// (possibly updated) session style back to the caller.
type ProcessResult struct {
	ConversationID string    `json:"thread_id"`
	InputType      InputType `json:"input_type"`
	Input          string    `json:"current_input"`
	IsKorean       bool      `json:"is_korean"`
	CaseStyle      CaseStyle `json:"case_style"`
	TranslatedWord string    `json:"translated_word,omitempty"`
	Abbreviations  []string  `json:"abbreviations,omitempty"`
	ProcessedText  string    `json:"processed_text,omitempty"`
	Response       string    `json:"formatted_response"`
	Quit           bool      `json:"quit,omitempty"`
}

// NewProcessResult snapshots the state after a branch has run.
func NewProcessResult(s *AppState, response string) *ProcessResult {
	return &ProcessResult{
		ConversationID: s.ConversationID,
		InputType:      s.InputType,
		Input:          s.Input,
		IsKorean:       s.IsKorean,
		CaseStyle:      s.CaseStyle,
		TranslatedWord: s.TranslatedWord,
		Abbreviations:  append([]string(nil), s.Abbreviations...),
		ProcessedText:  s.ProcessedText,
		Response:       response,
		Quit:           s.Quit,
	}
}
