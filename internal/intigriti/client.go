// Package intigriti is a client for the Intigriti Researcher REST API.
package intigriti

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/bobmcallan/intigriti-mcp/internal/common"
)

const (
	// DefaultBaseURL is the production Researcher API.
	DefaultBaseURL = "https://api.intigriti.com/external/researcher/"

	// TokenEnvVar holds the bearer token when none is passed explicitly.
	TokenEnvVar = "INTIGRITI_API_TOKEN"

	// UserAgent is sent on every request.
	UserAgent = "IntigritiMCPServer/1.0"

	requestTimeout    = 30 * time.Second
	maxIdleConns      = 5
	maxConnsPerHost   = 10
	idleConnTimeout   = 90 * time.Second
	maxResponseSize   = 50 << 20
	jsonContentType   = "application/json"
	retryAfterHeader  = "Retry-After"
	contentTypeHeader = "Content-Type"
	userAgentHeader   = "User-Agent"
)

// Options configures a Client.
type Options struct {
	// BaseURL defaults to DefaultBaseURL.
	BaseURL string
	// Token defaults to the INTIGRITI_API_TOKEN environment variable.
	Token  string
	Logger *common.Logger
}

// Request is one outbound call. Query and Body are optional.
type Request struct {
	Method   string
	Endpoint string
	Query    url.Values
	Body     any
}

// Client sends authenticated requests to the Researcher API. It owns one
// pooled transport for its lifetime; call Close to release it.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	transport  *http.Transport
	logger     *common.Logger
}

// New creates a Client. It fails with ErrMissingToken before any network
// activity when neither opts.Token nor the environment supplies a token.
func New(opts Options) (*Client, error) {
	token := opts.Token
	if token == "" {
		token = os.Getenv(TokenEnvVar)
	}
	if token == "" {
		return nil, ErrMissingToken
	}

	rawBase := opts.BaseURL
	if rawBase == "" {
		rawBase = DefaultBaseURL
	}
	base, err := url.Parse(strings.TrimRight(rawBase, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", rawBase, err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = common.NewSilentLogger()
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConns,
		MaxConnsPerHost:     maxConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
	}

	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: requestTimeout,
			Transport: &oauth2.Transport{
				Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
				Base:   transport,
			},
			// 3xx responses surface as status errors.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		transport: transport,
		logger:    logger,
	}, nil
}

// BaseURL returns the resolved base URL, always with a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Close releases pooled connections.
func (c *Client) Close() {
	c.transport.CloseIdleConnections()
}

// resolve joins endpoint onto the base URL with RFC 3986 reference
// resolution. Leading slashes are dropped so API paths stay under the base;
// an absolute URL replaces the base entirely.
func (c *Client) resolve(endpoint string, query url.Values) (*url.URL, error) {
	ref, err := url.Parse(strings.TrimLeft(endpoint, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	u := c.baseURL.ResolveReference(ref)
	if len(query) > 0 {
		q := u.Query()
		for key, vals := range query {
			for _, v := range vals {
				q.Add(key, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u, nil
}

// Do sends r and returns the decoded JSON body. Failures are classified as
// *APIError except for request construction and response decoding errors.
func (c *Client) Do(ctx context.Context, r Request) (any, error) {
	method := strings.ToUpper(r.Method)
	u, err := c.resolve(r.Endpoint, r.Query)
	if err != nil {
		return nil, err
	}

	var bodyReader io.Reader
	if r.Body != nil {
		data, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set(contentTypeHeader, jsonContentType)
	req.Header.Set(userAgentHeader, UserAgent)

	c.logger.Debug().Str("method", method).Str("path", u.Path).Msg("api request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Error().Str("method", method).Str("path", u.Path).Int64("duration_ms", duration.Milliseconds()).Str("error", err.Error()).Msg("api request failed")
		return nil, newNetworkError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, newNetworkError(fmt.Errorf("failed to read response: %w", err))
	}

	c.logger.Debug().Str("method", method).Str("path", u.Path).Int("status", resp.StatusCode).Int64("duration_ms", duration.Milliseconds()).Msg("api response")

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, newRateLimitError(resp.Header.Get(retryAfterHeader))
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, &APIError{Kind: KindUnauthorized, StatusCode: resp.StatusCode}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.logger.Error().Int("status", resp.StatusCode).Str("path", u.Path).Str("body", string(body)).Msg("api error response")
		return nil, newStatusError(resp.StatusCode, body)
	}

	return decodeJSON(body)
}

// decodeJSON decodes a single JSON value, keeping numbers as json.Number so
// re-encoding is lossless.
func decodeJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode response: unexpected data after JSON value")
	}
	return out, nil
}
