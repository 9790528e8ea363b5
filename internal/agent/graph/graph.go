package graph

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/compose"

	"github.com/variable-maker/server/internal/agent/graph/conversations"
	"github.com/variable-maker/server/internal/agent/graph/nodes"
	"github.com/variable-maker/server/internal/agent/graph/observers"
	"github.com/variable-maker/server/internal/agent/model"
	"github.com/variable-maker/server/internal/agent/naming"
	"github.com/variable-maker/server/internal/agent/services"
	logx "github.com/variable-maker/server/pkg/logger"
)

// ErrMissingConversationID is returned when an input carries no thread id.
var ErrMissingConversationID = errors.New("conversation id is required")

// Runner executes the compiled naming graph for one user input.
// The returned result is never nil: on failure its Response holds the
// formatted error message that was appended to the conversation.
type Runner interface {
	Invoke(ctx context.Context, in model.QueryInput) (*model.ProcessResult, error)
}

// Config holds everything needed to compose the naming graph end-to-end.
// This is a convenience layer over GraphConfig that also constructs the
// Gemini chat models and the services backing the ports.
type Config struct {
	APIKey          string
	BaseURL         string
	Translation     model.TranslationModelConfig
	Abbreviation    model.AbbreviationModelConfig
	Concept         model.ConceptModelConfig
	Conversation    model.ConversationConfig
	MessagesManager *conversations.MessagesManager
}

// GraphConfig holds all configuration needed to build the graph
type GraphConfig struct {
	Translator       model.Translator
	Abbreviator      model.Abbreviator
	ConceptExtractor model.ConceptExtractor
	MessagesManager  *conversations.MessagesManager
	DefaultCaseStyle model.CaseStyle
}

// GraphBuilder handles the construction of the naming graph
type GraphBuilder struct {
	config *GraphConfig
	graph  *compose.Graph[model.QueryInput, *model.ProcessResult]
}

type graphRunner struct {
	runnable     compose.Runnable[model.QueryInput, *model.ProcessResult]
	mm           *conversations.MessagesManager
	defaultStyle model.CaseStyle
}

func (r *graphRunner) Invoke(ctx context.Context, in model.QueryInput) (res *model.ProcessResult, err error) {
	if strings.TrimSpace(in.ConversationID) == "" {
		return r.failure(ctx, in, ErrMissingConversationID), ErrMissingConversationID
	}

	defer func() {
		if p := recover(); p != nil {
			logx.Error().Str("conversation_id", in.ConversationID).Msgf("panic recovered: %v", p)
			err = fmt.Errorf("naming graph panic: %v", p)
			res = r.failure(ctx, in, err)
		}
	}()

	out, err := r.runnable.Invoke(ctx, in, compose.WithCallbacks(observers.NewAllCallbacks()))
	if err != nil {
		logx.Error().Err(err).Str("conversation_id", in.ConversationID).Msg("Naming graph failed")
		return r.failure(ctx, in, err), fmt.Errorf("invoke naming graph: %w", err)
	}
	if out == nil {
		err = errors.New("naming graph returned no result")
		return r.failure(ctx, in, err), err
	}
	return out, nil
}

// failure builds the error reply and appends it to the conversation.
func (r *graphRunner) failure(ctx context.Context, in model.QueryInput, cause error) *model.ProcessResult {
	style := in.CaseStyle
	if !style.Valid() {
		style = r.defaultStyle
	}
	text := strings.TrimSpace(in.Query)
	res := &model.ProcessResult{
		ConversationID: in.ConversationID,
		InputType:      naming.Classify(text),
		Input:          text,
		IsKorean:       naming.IsKorean(text),
		CaseStyle:      style,
		Response:       nodes.FormatError(cause),
	}
	if in.ConversationID != "" {
		if err := r.mm.SaveResponse(ctx, in.ConversationID, res.Response); err != nil {
			logx.Error().Err(err).Str("conversation_id", in.ConversationID).Msg("Error saving failure response")
		}
	}
	return res
}

// BuildNamingGraph creates the chat models and services, builds the graph and returns a Runner.
func BuildNamingGraph(ctx context.Context, cfg Config) (Runner, error) {
	if cfg.MessagesManager == nil {
		return nil, fmt.Errorf("messages manager is nil")
	}

	cms, err := nodes.NewChatModels(ctx, nodes.ChatModelConfig{
		APIKey:             cfg.APIKey,
		BaseURL:            cfg.BaseURL,
		TranslationConfig:  &cfg.Translation,
		AbbreviationConfig: &cfg.Abbreviation,
		ConceptConfig:      &cfg.Concept,
	})
	if err != nil {
		return nil, err
	}

	runner, err := NewRunner(ctx, &GraphConfig{
		Translator:       services.NewTranslationService(cms.Translation, cms.TranslationModel),
		Abbreviator:      services.NewAbbreviationService(cms.Abbreviation, cms.AbbreviationModel),
		ConceptExtractor: services.NewConceptService(cms.Concept, cms.ConceptModel),
		MessagesManager:  cfg.MessagesManager,
		DefaultCaseStyle: model.CaseStyleOrDefault(cfg.Conversation.DefaultCaseStyle, model.DefaultCaseStyle),
	})
	if err != nil {
		return nil, err
	}

	logx.Debug().Msg("Naming graph built successfully")
	return runner, nil
}

// NewRunner compiles the graph over already constructed ports.
func NewRunner(ctx context.Context, config *GraphConfig) (Runner, error) {
	runnable, err := BuildGraph(ctx, config)
	if err != nil {
		return nil, err
	}
	return &graphRunner{
		runnable:     runnable,
		mm:           config.MessagesManager,
		defaultStyle: config.DefaultCaseStyle,
	}, nil
}

// BuildGraph constructs and returns the compiled naming graph:
// START -> input_classifier -> {word|text|command}_processor -> END.
func BuildGraph(ctx context.Context, config *GraphConfig) (compose.Runnable[model.QueryInput, *model.ProcessResult], error) {
	if config == nil {
		return nil, fmt.Errorf("graph config is nil")
	}
	if config.Translator == nil || config.Abbreviator == nil || config.ConceptExtractor == nil {
		return nil, fmt.Errorf("naming ports are not properly initialized")
	}
	if config.MessagesManager == nil {
		return nil, fmt.Errorf("messages manager is nil")
	}
	if !config.DefaultCaseStyle.Valid() {
		config.DefaultCaseStyle = model.DefaultCaseStyle
	}

	builder := &GraphBuilder{
		config: config,
		graph: compose.NewGraph[model.QueryInput, *model.ProcessResult](
			compose.WithGenLocalState(func(ctx context.Context) *model.AppState {
				return &model.AppState{}
			}),
		),
	}

	if err := builder.addNodes(); err != nil {
		return nil, err
	}
	if err := builder.addEdges(); err != nil {
		return nil, err
	}
	if err := builder.addBranches(); err != nil {
		return nil, err
	}

	return builder.compile(ctx)
}

// addNodes adds all processing nodes to the graph
func (b *GraphBuilder) addNodes() error {
	mm := b.config.MessagesManager

	if err := b.graph.AddLambdaNode(nodes.NodeInputClassifier,
		nodes.NewInputClassifierNode(mm),
		compose.WithStatePreHandler(nodes.NewInputClassifierPreHandler(b.config.DefaultCaseStyle)),
		compose.WithStatePostHandler(nodes.NewInputClassifierPostHandler()),
	); err != nil {
		return fmt.Errorf("add %s node: %w", nodes.NodeInputClassifier, err)
	}

	if err := b.graph.AddLambdaNode(nodes.NodeWordProcessor,
		nodes.NewWordProcessorNode(b.config.Translator, b.config.Abbreviator),
		compose.WithStatePostHandler(nodes.NewResponsePostHandler(mm, nodes.NodeWordProcessor)),
	); err != nil {
		return fmt.Errorf("add %s node: %w", nodes.NodeWordProcessor, err)
	}

	if err := b.graph.AddLambdaNode(nodes.NodeTextProcessor,
		nodes.NewTextProcessorNode(b.config.ConceptExtractor),
		compose.WithStatePostHandler(nodes.NewResponsePostHandler(mm, nodes.NodeTextProcessor)),
	); err != nil {
		return fmt.Errorf("add %s node: %w", nodes.NodeTextProcessor, err)
	}

	if err := b.graph.AddLambdaNode(nodes.NodeCommandProcessor,
		nodes.NewCommandProcessorNode(mm),
		compose.WithStatePostHandler(nodes.NewResponsePostHandler(mm, nodes.NodeCommandProcessor)),
	); err != nil {
		return fmt.Errorf("add %s node: %w", nodes.NodeCommandProcessor, err)
	}

	return nil
}

// addEdges creates the main flow connections between nodes
func (b *GraphBuilder) addEdges() error {
	edges := [][2]string{
		{compose.START, nodes.NodeInputClassifier},
		{nodes.NodeWordProcessor, compose.END},
		{nodes.NodeTextProcessor, compose.END},
		{nodes.NodeCommandProcessor, compose.END},
	}

	for _, edge := range edges {
		if err := b.graph.AddEdge(edge[0], edge[1]); err != nil {
			return fmt.Errorf("add edge %s -> %s: %w", edge[0], edge[1], err)
		}
	}
	return nil
}

// addBranches creates the input type routing branch
func (b *GraphBuilder) addBranches() error {
	inputBranch := compose.NewGraphBranch(
		nodes.NewInputTypeCondition(),
		map[string]bool{
			nodes.NodeWordProcessor:    true,
			nodes.NodeTextProcessor:    true,
			nodes.NodeCommandProcessor: true,
		},
	)
	if err := b.graph.AddBranch(nodes.NodeInputClassifier, inputBranch); err != nil {
		logx.Error().Err(err).Msg("Error adding input type branch")
		return fmt.Errorf("error adding input type branch: %w", err)
	}
	return nil
}

// compile finalizes and compiles the graph
func (b *GraphBuilder) compile(ctx context.Context) (compose.Runnable[model.QueryInput, *model.ProcessResult], error) {
	runnable, err := b.graph.Compile(ctx,
		compose.WithGraphName("variable_maker"),
		compose.WithMaxRunSteps(10),
	)
	if err != nil {
		logx.Error().Err(err).Msg("Error compiling graph")
		return nil, fmt.Errorf("error compiling graph: %w", err)
	}

	logx.Debug().Msg("Graph compiled successfully")
	return runnable, nil
}
