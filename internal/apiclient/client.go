// Package apiclient is the HTTP client every call to the posts API goes
// through. Requests are sent once: no retries, no timeout, no caching.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/debemdeboas/devlog/internal/config"
)

type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying transport, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// New builds a client rooted at baseURL. The base URL is fixed for the
// lifetime of the client.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

type Request struct {
	Path   string
	Method string
	Body   any

	// Credentialed requests carry the cookies attached with WithCookies.
	Credentialed bool
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}

// URL returns where a request for path is sent.
func (c *Client) URL(path string) string {
	if path == "" {
		return c.baseURL
	}
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (c *Client) Send(ctx context.Context, req Request) (*Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	url := c.URL(req.Path)
	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Accept", config.CTypeJSON)
	if body != nil {
		httpReq.Header.Set(config.HCType, config.CTypeJSON)
	}
	if req.Credentialed {
		for _, cookie := range cookiesFromContext(ctx) {
			httpReq.AddCookie(cookie)
		}
	}

	c.logger.Debug().Str("method", method).Str("url", url).Bool("credentialed", req.Credentialed).Msg("API request")

	res, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, req.Path, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: reading body: %w", method, req.Path, err)
	}

	c.logger.Debug().Str("method", method).Str("url", url).Int("status", res.StatusCode).Msg("API response")

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, newError(res.StatusCode, data)
	}

	return &Response{
		StatusCode: res.StatusCode,
		Header:     res.Header,
		Body:       data,
	}, nil
}
