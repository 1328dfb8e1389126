package infra

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("PLACEHOLDER_IMAGES", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q", cfg.Port)
	}
	if cfg.OpenAIAPIKey != "" {
		t.Fatalf("OpenAIAPIKey should default to empty, got %q", cfg.OpenAIAPIKey)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Fatalf("OpenAIModel = %q", cfg.OpenAIModel)
	}
	if cfg.PlaceholderImages {
		t.Fatal("placeholder images should be off by default")
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Fatalf("AllowedOrigins = %#v", cfg.AllowedOrigins)
	}
	if cfg.RateLimitPerMin != 30 {
		t.Fatalf("RateLimitPerMin = %d", cfg.RateLimitPerMin)
	}
}

func TestLoadConfigParsesOverrides(t *testing.T) {
	t.Setenv("PORT", "1919")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PLACEHOLDER_IMAGES", "1")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com ")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "90")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "1919" {
		t.Fatalf("Port = %q", cfg.Port)
	}
	if cfg.OpenAIAPIKey != "sk-test" {
		t.Fatalf("OpenAIAPIKey = %q", cfg.OpenAIAPIKey)
	}
	if !cfg.PlaceholderImages {
		t.Fatal("PLACEHOLDER_IMAGES=1 should enable placeholders")
	}
	expected := []string{"https://app.example.com", "https://staging.example.com"}
	if len(cfg.AllowedOrigins) != len(expected) {
		t.Fatalf("AllowedOrigins = %#v", cfg.AllowedOrigins)
	}
	for i, origin := range expected {
		if cfg.AllowedOrigins[i] != origin {
			t.Fatalf("AllowedOrigins[%d] = %q, want %q", i, cfg.AllowedOrigins[i], origin)
		}
	}
	if cfg.RateLimitPerMin != 90 {
		t.Fatalf("RateLimitPerMin = %d", cfg.RateLimitPerMin)
	}
}

func TestLoadConfigIgnoresMalformedInts(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.RateLimitPerMin != 30 {
		t.Fatalf("RateLimitPerMin = %d, want default 30", cfg.RateLimitPerMin)
	}
}
