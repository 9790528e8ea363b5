package nodes

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"google.golang.org/genai"

	"github.com/variable-maker/server/internal/agent/model"
	logx "github.com/variable-maker/server/pkg/logger"
)

// ChatModelConfig holds the configuration for chat model creation
type ChatModelConfig struct {
	APIKey             string
	BaseURL            string
	TranslationConfig  *model.TranslationModelConfig
	AbbreviationConfig *model.AbbreviationModelConfig
	ConceptConfig      *model.ConceptModelConfig
}

// ChatModels holds one Gemini chat model per naming role.
type ChatModels struct {
	Translation       *gemini.ChatModel
	Abbreviation      *gemini.ChatModel
	Concept           *gemini.ChatModel
	TranslationModel  string
	AbbreviationModel string
	ConceptModel      string
}

// NewChatModels creates the translation, abbreviation and concept models on a shared Gemini client.
func NewChatModels(ctx context.Context, config ChatModelConfig) (*ChatModels, error) {
	if config.TranslationConfig == nil || config.AbbreviationConfig == nil || config.ConceptConfig == nil {
		return nil, fmt.Errorf("chat model configs are not set")
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = config.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	newModel := func(role, name string, temperature float32, maxTokens int) (*gemini.ChatModel, error) {
		cm, err := gemini.NewChatModel(ctx, &gemini.Config{
			Client:      client,
			Model:       name,
			Temperature: &temperature,
			MaxTokens:   &maxTokens,
		})
		if err != nil {
			logx.Error().Err(err).Str("role", role).Str("model", name).Msg("Error creating chat model")
			return nil, fmt.Errorf("error creating %s model: %w", role, err)
		}
		return cm, nil
	}

	tc, ac, cc := config.TranslationConfig, config.AbbreviationConfig, config.ConceptConfig

	translation, err := newModel("translation", tc.Model, tc.Temperature, tc.MaxTokens)
	if err != nil {
		return nil, err
	}
	abbreviation, err := newModel("abbreviation", ac.Model, ac.Temperature, ac.MaxTokens)
	if err != nil {
		return nil, err
	}
	concept, err := newModel("concept", cc.Model, cc.Temperature, cc.MaxTokens)
	if err != nil {
		return nil, err
	}

	return &ChatModels{
		Translation:       translation,
		Abbreviation:      abbreviation,
		Concept:           concept,
		TranslationModel:  tc.Model,
		AbbreviationModel: ac.Model,
		ConceptModel:      cc.Model,
	}, nil
}
