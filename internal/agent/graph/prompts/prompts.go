package prompts

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

//go:embed template/translation_prompt.txt
var translationPrompt string

//go:embed template/abbreviation_prompt.txt
var abbreviationPrompt string

//go:embed template/concept_prompt.txt
var conceptPrompt string

// RenderTranslation renders the Korean→English translation request.
func RenderTranslation(ctx context.Context, word string) ([]*schema.Message, error) {
	return render(ctx, "translation", translationPrompt, map[string]any{"Word": word})
}

// RenderAbbreviation renders the camelCase abbreviation request.
func RenderAbbreviation(ctx context.Context, word string) ([]*schema.Message, error) {
	return render(ctx, "abbreviation", abbreviationPrompt, map[string]any{"Word": word})
}

// RenderConceptExtraction renders the concept extraction request for free text.
func RenderConceptExtraction(ctx context.Context, text string) ([]*schema.Message, error) {
	return render(ctx, "concept", conceptPrompt, map[string]any{"Text": text})
}

// render formats through the Eino prompt component so prompt callbacks fire.
func render(ctx context.Context, name, tpl string, vars map[string]any) ([]*schema.Message, error) {
	msgs, err := prompt.FromMessages(schema.GoTemplate, schema.UserMessage(tpl)).Format(ctx, vars)
	if err != nil {
		return nil, fmt.Errorf("%s prompt render: %w", name, err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return nil, fmt.Errorf("%s prompt render: empty result", name)
	}
	return msgs, nil
}
