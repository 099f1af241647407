package fetcher

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// ProxyConfig maps request schemes to proxy URLs. An empty entry means
// direct connections for that scheme.
type ProxyConfig struct {
	HTTP  string
	HTTPS string
}

// ProxyFromEnv reads HTTP_PROXY and HTTPS_PROXY through lookup. It returns
// nil when neither is set. HTTPS falls back to the HTTP proxy.
func ProxyFromEnv(lookup func(string) (string, bool)) *ProxyConfig {
	httpProxy, _ := lookup("HTTP_PROXY")
	httpsProxy, _ := lookup("HTTPS_PROXY")

	if httpProxy == "" && httpsProxy == "" {
		return nil
	}
	if httpsProxy == "" {
		httpsProxy = httpProxy
	}

	return &ProxyConfig{HTTP: httpProxy, HTTPS: httpsProxy}
}

// LoadProxyFromEnv loads the given env files (".env" when none) without
// overriding variables already set, then calls ProxyFromEnv. Missing files
// are not an error.
func LoadProxyFromEnv(files ...string) (*ProxyConfig, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	return ProxyFromEnv(os.LookupEnv), nil
}

// For returns the proxy configured for scheme.
func (p *ProxyConfig) For(scheme string) string {
	if p == nil {
		return ""
	}
	switch strings.ToLower(scheme) {
	case "http":
		return p.HTTP
	case "https":
		return p.HTTPS
	}
	return ""
}

// ProxyFunc validates the configured URLs and returns a function suitable
// for http.Transport.Proxy. A nil config yields a nil function.
func (p *ProxyConfig) ProxyFunc() (func(*http.Request) (*url.URL, error), error) {
	if p == nil {
		return nil, nil
	}

	byScheme := map[string]*url.URL{}
	for _, scheme := range []string{"http", "https"} {
		raw := p.For(scheme)
		if raw == "" {
			continue
		}
		u, err := parseProxyURL(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s proxy %q: %w", scheme, raw, err)
		}
		byScheme[scheme] = u
	}

	return func(req *http.Request) (*url.URL, error) {
		return byScheme[req.URL.Scheme], nil
	}, nil
}

func parseProxyURL(raw string) (*url.URL, error) {
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Host == "" {
		return nil, errors.New("missing host")
	}

	return u, nil
}
