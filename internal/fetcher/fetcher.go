// Package fetcher retrieves listing pages over HTTP, one GET per call.
package fetcher

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/brogergvhs/langtally/internal/util"
)

const DefaultTimeout = 30 * time.Second

type Options struct {
	Timeout          time.Duration
	UserAgent        string
	Proxy            *ProxyConfig
	CloudflareBypass bool
	// Transport replaces the default transport; Proxy is then ignored.
	Transport   http.RoundTripper
	DebugLogger interface {
		Debugf(string, ...any)
	}
}

type Fetcher struct {
	client *http.Client
}

func New(opts Options) (*Fetcher, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	proxy, err := opts.Proxy.ProxyFunc()
	if err != nil {
		return nil, err
	}

	client, err := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:          opts.Timeout,
		UserAgent:        util.PickUserAgent(opts.UserAgent),
		Proxy:            proxy,
		CloudflareBypass: opts.CloudflareBypass,
		Transport:        opts.Transport,
		DebugLogger:      opts.DebugLogger,
	})
	if err != nil {
		return nil, err
	}

	return &Fetcher{client: client}, nil
}

// Fetch issues a single GET for target and returns the body of a 2xx
// response. Every failure is a *TransportError; nothing is retried.
func (f *Fetcher) Fetch(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &TransportError{URL: target, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &TransportError{URL: target, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &TransportError{URL: target, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: target, Err: err}
	}

	return body, nil
}
