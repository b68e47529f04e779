package logger

import "testing"

func TestSanitizeKVsRedactsSecretKeys(t *testing.T) {
	cases := []struct {
		key    string
		value  interface{}
		redact bool
	}{
		{"access_token", "eyJabc.def.ghi", true},
		{"password", "hunter2", true},
		{"jwt_secret_key", "s3cret", true},
		{"authorization", "Bearer abc", true},
		{"api_key", "k-123", true},
		{"account_id", "b7f1", false},
		{"tracking_code", "8A2FC901", false},
		{"weight_kg", 2.5, false},
	}
	for _, tc := range cases {
		out := sanitizeKVs([]interface{}{tc.key, tc.value})
		if len(out) != 2 {
			t.Fatalf("key %q: got %d elements", tc.key, len(out))
		}
		got := out[1]
		if tc.redact && got != "[REDACTED]" {
			t.Fatalf("key %q: value %v survived redaction", tc.key, got)
		}
		if !tc.redact && got == "[REDACTED]" {
			t.Fatalf("key %q: value redacted unexpectedly", tc.key)
		}
	}
}

// a JWT-shaped value is scrubbed even when the key looks harmless
func TestSanitizeKVsRedactsJWTValues(t *testing.T) {
	out := sanitizeKVs([]interface{}{"detail", "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJ4In0.sig"})
	if out[1] != "[REDACTED]" {
		t.Fatalf("jwt-shaped value survived: %v", out[1])
	}
	out = sanitizeKVs([]interface{}{"detail", "eyJ but not a jwt"})
	if out[1] == "[REDACTED]" {
		t.Fatal("non-jwt value redacted")
	}
}

func TestSanitizeKVsOddLength(t *testing.T) {
	out := sanitizeKVs([]interface{}{"password", "hunter2", "dangling"})
	if len(out) != 3 {
		t.Fatalf("got %d elements, want 3", len(out))
	}
	if out[1] != "[REDACTED]" {
		t.Fatal("password not redacted in odd-length slice")
	}
	if out[2] != "dangling" {
		t.Fatalf("dangling element altered: %v", out[2])
	}
}
