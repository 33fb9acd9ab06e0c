package llm

import (
	"errors"
	"strings"
	"testing"
)

func TestClassifyError(t *testing.T) {
	cases := []struct {
		msg      string
		category Category
		notice   string
	}{
		{"x509: certificate signed by unknown authority", CategorySSL, "SSL"},
		{"SSL handshake failed", CategorySSL, "SSL"},
		{"permission denied by proxy", CategoryPermission, "Permission"},
		{"context deadline exceeded (Client.Timeout)", CategoryTimeout, "timeout"},
		{"429: rate limit reached for requests", CategoryRateLimit, "Rate limit"},
		{"insufficient funds on account", CategoryInsufficientFunds, "credits"},
		{"dial tcp: connection refused", CategoryGeneric, "connection refused"},
	}

	for _, tc := range cases {
		cat, notice := ClassifyError(errors.New(tc.msg))
		if cat != tc.category {
			t.Errorf("ClassifyError(%q) category = %s, want %s", tc.msg, cat, tc.category)
		}
		if !strings.Contains(notice, tc.notice) {
			t.Errorf("ClassifyError(%q) notice %q does not mention %q", tc.msg, notice, tc.notice)
		}
	}
}

func TestClassifyErrorPriority(t *testing.T) {
	// SSL wins over timeout when both signals are present.
	cat, _ := ClassifyError(errors.New("timeout during ssl handshake"))
	if cat != CategorySSL {
		t.Fatalf("expected ssl to win, got %s", cat)
	}
}
