package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mysql": map[string]any{
			"maxOpenConns": 10,
			"database":     "forkcast",
		},
		"suggester": map[string]any{
			"baseUrl": "",
			"apiKey":  "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MYSQL_MAXOPENCONNS", want: "mysql.maxOpenConns"},
		{envKey: "MYSQL_DATABASE", want: "mysql.database"},
		{envKey: "SUGGESTER_APIKEY", want: "suggester.apiKey"},
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
