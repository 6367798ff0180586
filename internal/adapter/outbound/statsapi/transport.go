package statsapi

import (
	"net/http"
	"strings"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = DefaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveUserAgent(raw string) string {
	if raw == "" {
		return defaultUserAgent
	}
	return raw
}
