package utils

import (
	"crypto/tls"
	"net/http"
	"time"
)

// UserAgent identifies outbound requests made by the backend.
const UserAgent = "CareerFuture/1.0"

const maxRedirects = 10

// NewHTTPClient returns the client used for calls to the Gemini Developer API.
// Requests that carry no User-Agent are sent with UserAgent.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:       timeout,
		Transport:     WithUserAgent(newTransport(), UserAgent),
		CheckRedirect: limitRedirects,
	}
}

func newTransport() *http.Transport {
	return &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		TLSClientConfig:     &tls.Config{MinVersion: tls.VersionTLS12},
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
}

func limitRedirects(_ *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return http.ErrUseLastResponse
	}
	return nil
}

// WithUserAgent wraps next so that requests without a User-Agent header get
// agent. The caller's request is cloned, never modified.
func WithUserAgent(next http.RoundTripper, agent string) http.RoundTripper {
	return agentTransport{next: next, agent: agent}
}

type agentTransport struct {
	next  http.RoundTripper
	agent string
}

func (t agentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.next.RoundTrip(req)
	}
	out := req.Clone(req.Context())
	out.Header.Set("User-Agent", t.agent)
	return t.next.RoundTrip(out)
}
