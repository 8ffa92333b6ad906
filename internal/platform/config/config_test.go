package config

import (
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Addr:               ":8080",
		DatabaseURL:        "postgres://localhost/hummane",
		JWTSecret:          "secret",
		TokenTTL:           time.Hour,
		Environment:        "development",
		MaxBodyBytes:       1048576,
		RateLimitPerMinute: 120,
	}
}

func TestLoadSMTPUseTLS(t *testing.T) {
	t.Setenv("SMTP_USE_TLS", "")
	if !Load().SMTPUseTLS {
		t.Fatal("expected STARTTLS on by default")
	}

	t.Setenv("SMTP_USE_TLS", "false")
	if Load().SMTPUseTLS {
		t.Fatal("expected SMTP_USE_TLS=false to disable STARTTLS")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing database url", mutate: func(c *Config) { c.DatabaseURL = "" }, wantErr: true},
		{name: "production without jwt secret", mutate: func(c *Config) {
			c.Environment = "production"
			c.JWTSecret = ""
		}, wantErr: true},
		{name: "tiny token ttl", mutate: func(c *Config) { c.TokenTTL = time.Second }, wantErr: true},
		{name: "tiny body limit", mutate: func(c *Config) { c.MaxBodyBytes = 100 }, wantErr: true},
		{name: "zero rate limit", mutate: func(c *Config) { c.RateLimitPerMinute = 0 }, wantErr: true},
		{name: "email enabled without smtp host", mutate: func(c *Config) { c.EmailEnabled = true }, wantErr: true},
		{name: "seed without credentials", mutate: func(c *Config) { c.RunSeed = true }, wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
