package naming

import (
	"strings"
	"unicode"

	"github.com/variable-maker/server/internal/agent/model"
)

// CommandPrefix marks REPL/chat commands such as ":help".
const CommandPrefix = ":"

// Classify decides which branch handles the input. Blank input classifies as
// a word; callers that need to reject it do so before classification.
func Classify(text string) model.InputType {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, CommandPrefix) {
		return model.InputCommand
	}
	if strings.IndexFunc(text, unicode.IsSpace) >= 0 {
		return model.InputText
	}
	return model.InputWord
}
