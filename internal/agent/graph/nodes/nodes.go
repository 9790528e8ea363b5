package nodes

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/variable-maker/server/internal/agent/graph/conversations"
	"github.com/variable-maker/server/internal/agent/graph/parsers"
	"github.com/variable-maker/server/internal/agent/model"
	"github.com/variable-maker/server/internal/agent/naming"
	logx "github.com/variable-maker/server/pkg/logger"
)

// NewInputClassifierPreHandler seeds the fresh state with the session context.
func NewInputClassifierPreHandler(defaultStyle model.CaseStyle) func(context.Context, model.QueryInput, *model.AppState) (model.QueryInput, error) {
	return func(ctx context.Context, in model.QueryInput, s *model.AppState) (model.QueryInput, error) {
		s.ConversationID = in.ConversationID
		s.CaseStyle = in.CaseStyle
		if !s.CaseStyle.Valid() {
			s.CaseStyle = defaultStyle
		}
		s.Messages = append(s.Messages, schema.UserMessage(in.Query))
		return in, nil
	}
}

// NewInputClassifierNode trims and classifies the input and stores it in the thread history.
func NewInputClassifierNode(mm *conversations.MessagesManager) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, in model.QueryInput) (model.ClassifiedInput, error) {
		text := strings.TrimSpace(in.Query)
		if err := mm.SaveUserMessage(ctx, in.ConversationID, text); err != nil {
			logx.Error().Err(err).Str("conversation_id", in.ConversationID).Msg("Error saving user message")
		}
		return model.ClassifiedInput{Text: text, Type: naming.Classify(text)}, nil
	})
}

// NewInputClassifierPostHandler records the classification in the state.
func NewInputClassifierPostHandler() func(context.Context, model.ClassifiedInput, *model.AppState) (model.ClassifiedInput, error) {
	return func(ctx context.Context, out model.ClassifiedInput, s *model.AppState) (model.ClassifiedInput, error) {
		s.Input = out.Text
		s.InputType = out.Type
		logx.Debug().
			Str("conversation_id", s.ConversationID).
			Str("input_type", out.Type.String()).
			Str("case_style", s.CaseStyle.String()).
			Msg("Input classified")
		return out, nil
	}
}

// NewInputTypeCondition routes to the branch for the classified type.
func NewInputTypeCondition() func(context.Context, model.ClassifiedInput) (string, error) {
	return func(ctx context.Context, in model.ClassifiedInput) (string, error) {
		switch in.Type {
		case model.InputWord:
			return NodeWordProcessor, nil
		case model.InputText:
			return NodeTextProcessor, nil
		case model.InputCommand:
			return NodeCommandProcessor, nil
		}
		return "", fmt.Errorf("unroutable input type %q", in.Type)
	}
}

// NewWordProcessorNode translates Korean input, asks for abbreviations and
// re-cases them. Collaborator failures degrade the result instead of failing.
func NewWordProcessorNode(translator model.Translator, abbreviator model.Abbreviator) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, in model.ClassifiedInput) (*model.ProcessResult, error) {
		style, conversationID, err := sessionOf(ctx)
		if err != nil {
			return nil, err
		}

		isKorean := naming.IsKorean(in.Text)
		translated := in.Text
		if isKorean {
			translated, err = translator.Translate(ctx, in.Text)
			if err != nil {
				logx.Warn().Err(err).Str("conversation_id", conversationID).Msg("Translation failed, using sentinel")
				translated = TranslationErrorSentinel
			}
		}

		raw, err := abbreviator.Abbreviate(ctx, translated)
		if err != nil {
			logx.Warn().Err(err).Str("conversation_id", conversationID).Msg("Abbreviation failed, returning none")
			raw = nil
		}
		abbreviations := naming.ConvertAll(raw, style)

		response := FormatWordResult(in.Text, translated, abbreviations, isKorean, style)

		var result *model.ProcessResult
		err = compose.ProcessState(ctx, func(_ context.Context, s *model.AppState) error {
			s.IsKorean = isKorean
			s.TranslatedWord = translated
			s.Abbreviations = abbreviations
			result = model.NewProcessResult(s, response)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to access state: %w", err)
		}
		return result, nil
	})
}

// NewTextProcessorNode extracts concepts from free text and re-cases every
// variant of each "label: v1, v2" line. Other lines pass through.
func NewTextProcessorNode(extractor model.ConceptExtractor) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, in model.ClassifiedInput) (*model.ProcessResult, error) {
		style, conversationID, err := sessionOf(ctx)
		if err != nil {
			return nil, err
		}

		raw, err := extractor.Extract(ctx, in.Text)
		if err != nil {
			logx.Warn().Err(err).Str("conversation_id", conversationID).Msg("Concept extraction failed")
			raw = TextProcessingError
		}

		processed := ConvertConceptText(raw, style)
		response := FormatTextResult(processed)

		var result *model.ProcessResult
		err = compose.ProcessState(ctx, func(_ context.Context, s *model.AppState) error {
			s.IsKorean = naming.IsKorean(in.Text)
			s.ProcessedText = processed
			result = model.NewProcessResult(s, response)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to access state: %w", err)
		}
		return result, nil
	})
}

// ConvertConceptText re-cases the variants of every concept line of raw.
func ConvertConceptText(raw string, style model.CaseStyle) string {
	lines := parsers.ParseConceptText(raw)
	for i, l := range lines {
		lines[i] = l.MapVariants(func(v string) string {
			return naming.Convert(v, style)
		})
	}
	return parsers.JoinConceptLines(lines)
}

// NewCommandProcessorNode answers ":" commands. ":case" updates the session
// case style that is handed back to the caller.
func NewCommandProcessorNode(mm *conversations.MessagesManager) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, in model.ClassifiedInput) (*model.ProcessResult, error) {
		fields := strings.Fields(in.Text)
		name := strings.ToLower(fields[0])
		args := fields[1:]

		var result *model.ProcessResult
		err := compose.ProcessState(ctx, func(ctx context.Context, s *model.AppState) error {
			response := runCommand(ctx, mm, s, name, args)
			result = model.NewProcessResult(s, response)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to access state: %w", err)
		}
		return result, nil
	})
}

func runCommand(ctx context.Context, mm *conversations.MessagesManager, s *model.AppState, name string, args []string) string {
	switch name {
	case ":help":
		return HelpMessage()
	case ":quit":
		s.Quit = true
		return "프로그램을 종료합니다."
	case ":case":
		if len(args) == 0 {
			return CaseStyleMenu(s.CaseStyle)
		}
		style, err := model.ParseCaseStyle(strings.Join(args, " "))
		if err != nil {
			return "1부터 5까지의 번호나 케이스 스타일 이름을 입력해주세요.\n" + CaseStyleMenu(s.CaseStyle)
		}
		s.CaseStyle = style
		return fmt.Sprintf("케이스 스타일이 %s로 변경되었습니다.", style)
	case ":history":
		n, err := mm.MessageCount(ctx, s.ConversationID)
		if err != nil {
			logx.Error().Err(err).Str("conversation_id", s.ConversationID).Msg("Error counting messages")
			return "대화 기록을 불러오지 못했습니다."
		}
		return fmt.Sprintf("현재 대화에 저장된 메시지: %d개", n)
	case ":clear":
		if err := mm.Clear(ctx, s.ConversationID); err != nil {
			logx.Error().Err(err).Str("conversation_id", s.ConversationID).Msg("Error clearing history")
			return "대화 기록을 삭제하지 못했습니다."
		}
		return "대화 기록을 삭제했습니다."
	}
	return "알 수 없는 명령어입니다. :help로 도움말을 확인하세요."
}

// NewResponsePostHandler appends the branch reply to the state and persists it.
func NewResponsePostHandler(mm *conversations.MessagesManager, node string) func(context.Context, *model.ProcessResult, *model.AppState) (*model.ProcessResult, error) {
	return func(ctx context.Context, out *model.ProcessResult, s *model.AppState) (*model.ProcessResult, error) {
		if out == nil {
			return nil, fmt.Errorf("%s returned no result", node)
		}
		s.Messages = append(s.Messages, schema.AssistantMessage(out.Response, nil))

		if err := mm.SaveResponse(ctx, s.ConversationID, out.Response); err != nil {
			logx.Error().
				Str("conversation_id", s.ConversationID).
				Str("node", node).
				Err(err).
				Msg("Error saving assistant response")
		} else {
			logx.Debug().
				Str("conversation_id", s.ConversationID).
				Str("node", node).
				Msg("Saved assistant response")
		}
		return out, nil
	}
}

func sessionOf(ctx context.Context) (model.CaseStyle, string, error) {
	var (
		style          model.CaseStyle
		conversationID string
	)
	err := compose.ProcessState(ctx, func(_ context.Context, s *model.AppState) error {
		style = s.CaseStyle
		conversationID = s.ConversationID
		return nil
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to access state: %w", err)
	}
	return style, conversationID, nil
}
