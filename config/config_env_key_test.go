package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"store": map[string]any{
			"bucketUrl": "file:///var/lib/estate",
			"inputKey":  "properties.json",
		},
		"http": map[string]any{
			"maxRequestBodySize": "100KB",
			"timeouts": map[string]any{
				"readTimeout": "10s",
			},
		},
		"env": map[string]any{
			"serviceName": "estate",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORE_BUCKETURL", want: "store.bucketUrl"},
		{envKey: "STORE_INPUTKEY", want: "store.inputKey"},
		{envKey: "HTTP_MAXREQUESTBODYSIZE", want: "http.maxRequestBodySize"},
		{envKey: "HTTP_TIMEOUTS_READTIMEOUT", want: "http.timeouts.readTimeout"},
		{envKey: "ENV_SERVICENAME", want: "env.serviceName"},
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
