package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/hqzhou/webchat/internal/ai"
	"github.com/hqzhou/webchat/internal/chat"
	"github.com/hqzhou/webchat/internal/config"
)

type Handler struct {
	Cfg     config.Config
	ChatSvc *chat.Service
}

func NewHandler(cfg config.Config) (*Handler, error) {
	reg := ai.NewRegistry()

	reg.Register("ollama", func(ctx context.Context, model string) (ai.Provider, error) {
		m := strings.TrimSpace(model)
		if m == "" {
			m = cfg.OllamaModel
		}
		return ai.NewOllamaProvider(cfg.OllamaBaseURL, m), nil
	})

	reg.Register("openrouter", func(ctx context.Context, model string) (ai.Provider, error) {
		m := strings.TrimSpace(model)
		if m == "" {
			m = cfg.OpenRouterModel
		}
		return ai.NewOpenRouterProvider(cfg.OpenRouterBaseURL, cfg.OpenRouterAPIKey, m, cfg.OpenRouterSiteURL, cfg.OpenRouterAppName), nil
	})

	provider, err := reg.Get(context.Background(), cfg.AIProvider, "")
	if err != nil {
		return nil, fmt.Errorf("resolve AI_PROVIDER=%q: %w", cfg.AIProvider, err)
	}

	return &Handler{
		Cfg:     cfg,
		ChatSvc: chat.NewService(provider),
	}, nil
}
