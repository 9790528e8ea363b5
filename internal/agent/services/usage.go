package services

import (
	"context"
	"errors"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/variable-maker/server/internal/agent/model"
	errx "github.com/variable-maker/server/internal/core/error"
	logx "github.com/variable-maker/server/pkg/logger"
)

var errEmptyReply = errors.New("empty model reply")

// generate runs one chat completion and logs token usage and cost.
func generate(ctx context.Context, chat einomodel.BaseChatModel, component, modelName string, msgs []*schema.Message) (string, error) {
	out, err := chat.Generate(ctx, msgs)
	if err != nil {
		logx.Error().Err(err).Str("component", component).Str("model", modelName).Msg("model call failed")
		return "", errx.WrapLLM(err)
	}
	if out == nil {
		return "", errx.WrapLLM(errEmptyReply)
	}
	logUsage(component, modelName, out)
	return strings.TrimSpace(out.Content), nil
}

func logUsage(component, modelName string, out *schema.Message) {
	if out.ResponseMeta == nil || out.ResponseMeta.Usage == nil {
		return
	}
	usage := out.ResponseMeta.Usage
	inC, outC, totalC := model.ComputeCost(usage, model.ResolvePricing(modelName))
	logx.Debug().
		Str("component", component).
		Str("model", modelName).
		Int("prompt_tokens", usage.PromptTokens).
		Int("completion_tokens", usage.CompletionTokens).
		Int("total_tokens", usage.TotalTokens).
		Float64("input_cost_usd", inC).
		Float64("output_cost_usd", outC).
		Float64("total_cost_usd", totalC).
		Msg("LLM usage")
}
