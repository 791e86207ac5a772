// Package nlpsvc implements pkg/nlp's Translator and Embedder against the
// external NLP service's REST API.
package nlpsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tridentsearch/trident/pkg/nlp"
)

const (
	// DefaultBaseURL is the default NLP service URL.
	DefaultBaseURL = "http://localhost:8000"

	// DefaultTimeout bounds each call to the service. Calls are attempted
	// at most once per request; a timeout is handled like any other
	// adapter failure.
	DefaultTimeout = 30 * time.Second
)

// Client wraps the NLP service's translation and embedding endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Config holds configuration for the NLP service client.
type Config struct {
	// BaseURL is the NLP service URL (e.g. "http://localhost:8000").
	// Defaults to DefaultBaseURL if empty.
	BaseURL string

	// Timeout bounds each request. Defaults to DefaultTimeout if zero.
	Timeout time.Duration
}

// textRequest is the request body shared by both endpoints.
type textRequest struct {
	Text string `json:"text"`
}

// translateResponse is the response from the /generate-mql endpoint.
type translateResponse struct {
	MQL map[string]any `json:"mql"`
}

// embedResponse is the response from the /embed endpoint.
type embedResponse struct {
	Embedding []float32 `json:"embedding"`
}

// NewClient creates a new NLP service client.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// TranslateQuery translates free text into a structured filter via the
// service's /generate-mql endpoint. A null or empty mql in the response is
// returned as a nil map.
func (c *Client) TranslateQuery(ctx context.Context, text string) (map[string]any, error) {
	var result translateResponse
	if err := c.post(ctx, "/generate-mql", text, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", nlp.ErrTranslation, err)
	}

	if len(result.MQL) == 0 {
		return nil, nil
	}
	return result.MQL, nil
}

// Embed converts text into a vector embedding via the /embed endpoint.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	var result embedResponse
	if err := c.post(ctx, "/embed", text, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", nlp.ErrEmbedding, err)
	}

	if len(result.Embedding) == 0 {
		return nil, fmt.Errorf("%w: no embedding returned", nlp.ErrEmbedding)
	}
	return result.Embedding, nil
}

func (c *Client) post(ctx context.Context, path, text string, out any) error {
	jsonBody, err := json.Marshal(textRequest{Text: text})
	if err != nil {
		return fmt.Errorf("marshaling request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("creating request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("nlp service returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %v", err)
	}
	return nil
}

var (
	_ nlp.Translator = (*Client)(nil)
	_ nlp.Embedder   = (*Client)(nil)
)
