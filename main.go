package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	goredis "github.com/redis/go-redis/v9"

	"github.com/variable-maker/server/internal/agent/graph"
	"github.com/variable-maker/server/internal/agent/graph/conversations"
	"github.com/variable-maker/server/internal/agent/model"
	"github.com/variable-maker/server/internal/agent/repo"
	"github.com/variable-maker/server/internal/api"
	"github.com/variable-maker/server/internal/cli"
	"github.com/variable-maker/server/internal/core"
	logx "github.com/variable-maker/server/pkg/logger"
	pkgredis "github.com/variable-maker/server/pkg/redis"
)

// Version is injected at build time (-ldflags="-X main.Version=1.0.0").
var Version = "dev"

// AppConfig defines all configurable parameters of the service,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Env      string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL"`

	// HTTP
	HTTPAddr          string        `envconfig:"HTTP_ADDR" default:":8000"`
	HTTPReadTimeout   time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"30s"`
	HTTPWriteTimeout  time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"60s"`
	HTTPShutdownGrace time.Duration `envconfig:"HTTP_SHUTDOWN_GRACE" default:"10s"`
	CORSAllowOrigins  []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`

	// Infrastructure
	Redis pkgredis.Config

	// LLM provider
	APIKey  string `envconfig:"GEMINI_API_KEY" required:"true"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Agent configs
	Translation  model.TranslationModelConfig
	Abbreviation model.AbbreviationModelConfig
	Concept      model.ConceptModelConfig
	Conversation model.ConversationConfig
}

func main() {
	mode := flag.String("mode", "server", "run mode: server or cli")
	thread := flag.String("thread", "", "thread id to resume in cli mode")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	envErr := godotenv.Load(".env")

	var envCfg AppConfig
	if err := envconfig.Process("", &envCfg); err != nil {
		logx.Fatal().Err(err).Msg("Failed to process environment config")
	}

	env := core.ParseEnvironment(envCfg.Env)
	logx.Init(logx.LoggerOpts{Environment: env, Level: envCfg.LogLevel})
	if envErr != nil {
		logx.Debug().Err(envErr).Msg("No .env file loaded")
	}

	conversationRepo, rdb := newConversationRepository(ctx, envCfg)
	if rdb != nil {
		defer rdb.Close()
	}
	mm := conversations.NewMessagesManager(conversationRepo, envCfg.Conversation)

	runner, err := graph.BuildNamingGraph(ctx, graph.Config{
		APIKey:          envCfg.APIKey,
		BaseURL:         envCfg.BaseURL,
		Translation:     envCfg.Translation,
		Abbreviation:    envCfg.Abbreviation,
		Concept:         envCfg.Concept,
		Conversation:    envCfg.Conversation,
		MessagesManager: mm,
	})
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to build graph")
	}

	defaultStyle := model.CaseStyleOrDefault(envCfg.Conversation.DefaultCaseStyle, model.DefaultCaseStyle)

	switch strings.ToLower(*mode) {
	case "cli":
		repl := cli.NewREPL(runner, os.Stdin, os.Stdout,
			cli.WithThreadID(*thread),
			cli.WithCaseStyle(defaultStyle),
		)
		if err := repl.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logx.Fatal().Err(err).Msg("REPL stopped")
		}
	case "server":
		checks := map[string]api.HealthCheck{}
		if rdb != nil {
			checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		}
		router := api.NewRouter(
			api.RouterConfig{Environment: env, AllowOrigins: envCfg.CORSAllowOrigins, Version: Version},
			api.NewHealthHandler(Version, checks),
			api.NewVariableHandler(runner, mm, defaultStyle),
		)
		serve(ctx, envCfg, router)
	default:
		logx.Fatal().Str("mode", *mode).Msg("Unknown run mode")
	}
}

// newConversationRepository picks Redis when REDIS_URL is set and falls back to process memory.
func newConversationRepository(ctx context.Context, cfg AppConfig) (model.ConversationRepository, *goredis.Client) {
	if !cfg.Redis.Enabled() {
		logx.Warn().Msg("REDIS_URL not set, conversations are kept in memory")
		return repo.NewMemoryConversationRepository(), nil
	}

	ttl, err := time.ParseDuration(cfg.Conversation.TTL)
	if err != nil {
		logx.Fatal().Err(err).Str("ttl", cfg.Conversation.TTL).Msg("Invalid CONVERSATION_TTL")
	}

	rdb, err := cfg.Redis.New(ctx)
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to initialise Redis client")
	}
	logx.Info().Msg("Connected to Redis successfully")

	return repo.NewRedisConversationRepository(rdb, ttl), rdb
}

func serve(ctx context.Context, cfg AppConfig, handler http.Handler) {
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		ReadHeaderTimeout: cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logx.Info().Str("addr", cfg.HTTPAddr).Str("version", Version).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			logx.Fatal().Err(err).Msg("HTTP server failed")
		}
		return
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logx.Error().Err(err).Msg("HTTP server shutdown failed")
		return
	}
	logx.Info().Msg("HTTP server stopped")
}
