package netx

import (
	"fmt"
	"net/url"
	"strings"
)

// ServerURL validates raw as the root URL of an HTTP backend and returns it
// without a trailing slash. A bare host:port is taken as http.
func ServerURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty server url")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("server url %q has no host", raw)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", fmt.Errorf("server url %q must not carry a query or fragment", raw)
	}

	return strings.TrimRight(u.String(), "/"), nil
}
