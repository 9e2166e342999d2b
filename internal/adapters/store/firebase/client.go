// Package firebase talks to a Firebase Realtime Database style JSON tree:
// every slash-delimited path maps to "{base}{path}.json" and the four HTTP
// verbs read, create, overwrite, and remove subtrees.
package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/bnema/quotevault-cli/internal/domain"
	"github.com/bnema/quotevault-cli/internal/ports"
)

const (
	defaultTimeout  = 8 * time.Second
	maxResponseSize = 1 << 20
)

type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

var _ ports.RemoteStore = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("store base URL is empty")
	}

	client := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Fetch reads the subtree at path. A JSON null body means the store holds
// nothing there and yields domain.ErrPathNotFound.
func (c *Client) Fetch(ctx context.Context, path string, out any) error {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}

	if isJSONNull(body) {
		return fmt.Errorf("fetch %s: %w", path, domain.ErrPathNotFound)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("fetch %s: decode body: %w", path, err)
	}

	return nil
}

// Create posts payload to a collection path and returns the child id the
// store assigned, taken from the {"name": "<id>"} response.
func (c *Client) Create(ctx context.Context, path string, payload any) (string, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("create %s: encode payload: %w", path, err)
	}

	body, err := c.do(ctx, http.MethodPost, path, encoded)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	var result struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("create %s: decode response: %w", path, err)
	}
	if result.Name == "" {
		return "", fmt.Errorf("create %s: response missing generated id", path)
	}

	return result.Name, nil
}

// Set overwrites the exact path with value.
func (c *Client) Set(ctx context.Context, path string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("set %s: encode value: %w", path, err)
	}

	if _, err := c.do(ctx, http.MethodPut, path, encoded); err != nil {
		return fmt.Errorf("set %s: %w", path, err)
	}

	return nil
}

// Delete removes the subtree at path.
func (c *Client) Delete(ctx context.Context, path string) error {
	if _, err := c.do(ctx, http.MethodDelete, path, nil); err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}

	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	endpoint := c.baseURL + path + ".json"

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.http.Do(request)
	if err != nil {
		c.logger.Debug("store request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		c.logger.Debug("store request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", response.StatusCode))
		return nil, fmt.Errorf("status %d: %s", response.StatusCode, strings.TrimSpace(string(body)))
	}

	return body, nil
}

func isJSONNull(body []byte) bool {
	return len(bytes.TrimSpace(body)) == 0 || bytes.Equal(bytes.TrimSpace(body), []byte("null"))
}
