package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"db": map[string]any{
			"host":         "mysql",
			"maxOpenConns": 25,
		},
		"openai": map[string]any{
			"apiKey":  "",
			"apiBase": "",
			"model":   "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DB_HOST", want: "db.host"},
		{envKey: "DB_MAXOPENCONNS", want: "db.maxOpenConns"},
		{envKey: "OPENAI_API_KEY", want: "openai.apiKey"},
		{envKey: "OPENAI_API_BASE", want: "openai.apiBase"},
		{envKey: "OPENAI_MODEL", want: "openai.model"},
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
