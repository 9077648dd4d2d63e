package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"events": map[string]any{
			"topicId": "",
			"amqpUrl": "",
		},
		"redis": map[string]any{
			"cacheTtl": "10m",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "EVENTS_TOPICID", want: "events.topicId"},
		{envKey: "EVENTS_AMQPURL", want: "events.amqpUrl"},
		{envKey: "REDIS_CACHETTL", want: "redis.cacheTtl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	if cfg.Events.Provider != "none" {
		t.Fatalf("events provider = %q, want none", cfg.Events.Provider)
	}
	if cfg.Auth.AccessTokenTTL != defaultAccessTokenTTL || cfg.Auth.RefreshTokenTTL != defaultRefreshTokenTTL {
		t.Fatalf("unexpected token TTLs: %v / %v", cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
	}
	if cfg.RateLimit.Capacity != defaultRateLimitCapacity || cfg.RateLimit.Interval <= 0 {
		t.Fatalf("unexpected rate limit defaults: %+v", cfg.RateLimit)
	}
	if cfg.Metrics.Namespace != defaultMetricsNamespace {
		t.Fatalf("metrics namespace = %q", cfg.Metrics.Namespace)
	}
	if cfg.Database.SlowQueryThreshold != defaultSlowQueryThreshold {
		t.Fatalf("slow query threshold = %v", cfg.Database.SlowQueryThreshold)
	}
}
