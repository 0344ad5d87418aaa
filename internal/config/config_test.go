package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "AI_PROVIDER", "OLLAMA_BASE_URL", "OLLAMA_MODEL"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	if cfg.HTTPAddr != ":8000" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.AIProvider != "ollama" {
		t.Fatalf("AIProvider = %q", cfg.AIProvider)
	}
	if cfg.OllamaBaseURL != "http://localhost:11434" {
		t.Fatalf("OllamaBaseURL = %q", cfg.OllamaBaseURL)
	}
	if cfg.OllamaModel != "mistral" {
		t.Fatalf("OllamaModel = %q", cfg.OllamaModel)
	}
	if cfg.OpenRouterBaseURL != "https://openrouter.ai/api/v1" {
		t.Fatalf("OpenRouterBaseURL = %q", cfg.OpenRouterBaseURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9100")
	t.Setenv("AI_PROVIDER", "openrouter")
	t.Setenv("OPENROUTER_API_KEY", "sk-test")
	t.Setenv("OLLAMA_MODEL", "llama3:latest")

	cfg := Load()

	if cfg.HTTPAddr != ":9100" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.AIProvider != "openrouter" {
		t.Fatalf("AIProvider = %q", cfg.AIProvider)
	}
	if cfg.OpenRouterAPIKey != "sk-test" {
		t.Fatalf("OpenRouterAPIKey = %q", cfg.OpenRouterAPIKey)
	}
	if cfg.OllamaModel != "llama3:latest" {
		t.Fatalf("OllamaModel = %q", cfg.OllamaModel)
	}
}
