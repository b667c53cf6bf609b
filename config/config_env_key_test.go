package config

import (
	"testing"
	"time"

	"bizcard/internal/domain/constants"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"card": map[string]any{
			"maxHeroImageBytes": 1024,
		},
		"auth": map[string]any{
			"accessTokenTTL": "1h",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "CARD_MAXHEROIMAGEBYTES", want: "card.maxHeroImageBytes"},
		{envKey: "AUTH_ACCESSTOKENTTL", want: "auth.accessTokenTTL"},
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

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, constants.EnvDevelop, cfg.Env.Env)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, constants.StoreDriverFirestore, cfg.Store.Driver)
	assert.Equal(t, constants.IdentityProviderFirebase, cfg.Auth.Provider)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "card-", cfg.Card.SlugPrefix)
	assert.Equal(t, 5, cfg.Card.SlugAttempts)
	assert.Equal(t, 1<<20, cfg.Card.MaxHeroImageBytes)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth: &AuthConfig{Provider: constants.IdentityProviderGoogle, AccessTokenTTL: time.Minute},
		Card: &CardConfig{SlugPrefix: "biz-", SlugAttempts: 2, MaxHeroImageBytes: 10},
	}
	cfg.Store.Driver = constants.StoreDriverMemory
	applyDefaults(cfg)

	assert.Equal(t, constants.StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, constants.IdentityProviderGoogle, cfg.Auth.Provider)
	assert.Equal(t, time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "biz-", cfg.Card.SlugPrefix)
	assert.Equal(t, 2, cfg.Card.SlugAttempts)
	assert.Equal(t, 10, cfg.Card.MaxHeroImageBytes)
}

func TestCheckProduction(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		secret  string
		driver  string
		wantErr bool
	}{
		{name: "develop allows defaults", env: constants.EnvDevelop, secret: developSecret, driver: constants.StoreDriverMemory},
		{name: "production with real secret", env: constants.EnvProduction, secret: "s3cret", driver: constants.StoreDriverFirestore},
		{name: "production with develop secret", env: constants.EnvProduction, secret: developSecret, driver: constants.StoreDriverFirestore, wantErr: true},
		{name: "production without secret", env: constants.EnvProduction, driver: constants.StoreDriverPostgres, wantErr: true},
		{name: "production on memory store", env: constants.EnvProduction, secret: "s3cret", driver: constants.StoreDriverMemory, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Env.Env = tt.env
			cfg.SecretKey.Access = tt.secret
			cfg.Store.Driver = tt.driver

			err := checkProduction(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
