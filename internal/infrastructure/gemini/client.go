// Package gemini implements ports.TextGenerator against the Gemini
// generateContent REST endpoint.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/folio/internal/ports"
	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

const (
	providerName = "gemini"

	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel    = "gemini-2.5-flash-lite-latest"
	DefaultTimeout  = 30 * time.Second
)

// ErrMissingAPIKey is returned by Generate when no API key is configured.
var ErrMissingAPIKey = errors.New("gemini: API key is not configured")

// Config configures a Client.
type Config struct {
	Endpoint string
	Model    string
	APIKey   string
	Timeout  time.Duration
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

// Client calls models/{model}:generateContent.
type Client struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
}

// New returns a Client, filling unset fields with the defaults.
func New(cfg Config) *Client {
	endpoint := strings.TrimRight(cfg.Endpoint, "/")
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		endpoint:   endpoint,
		model:      model,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c != nil && c.apiKey != ""
}

type part struct {
	Text string `json:"text"`
}

type contentBlock struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []contentBlock `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content contentBlock `json:"content"`
	} `json:"candidates"`
}

// Generate sends prompt as a single user turn and returns the text of the
// first candidate. An empty string means the model returned no text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", apperrors.NewProviderError(providerName, 0, ErrMissingAPIKey)
	}

	body, err := json.Marshal(generateRequest{
		Contents: []contentBlock{{Role: "user", Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("gemini: marshaling request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.endpoint, url.PathEscape(c.model), url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.NewProviderError(providerName, 0, redact(err, c.apiKey))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", readError(resp)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", apperrors.NewProviderError(providerName, resp.StatusCode, fmt.Errorf("decoding response: %w", err))
	}
	if len(decoded.Candidates) == 0 {
		return "", nil
	}

	var text strings.Builder
	for _, p := range decoded.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	return text.String(), nil
}

// readError turns {"error":{"message":...,"status":...}} into a
// ProviderError, falling back to the raw body.
func readError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var wire struct {
		Error struct {
			Message string `json:"message"`
			Status  string `json:"status"`
		} `json:"error"`
	}
	message := strings.TrimSpace(string(body))
	if json.Unmarshal(body, &wire) == nil && wire.Error.Message != "" {
		message = wire.Error.Message
		if wire.Error.Status != "" {
			message = wire.Error.Status + ": " + message
		}
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	return apperrors.NewProviderError(providerName, resp.StatusCode, errors.New(message))
}

// redact removes the API key from transport errors, which embed the URL.
func redact(err error, apiKey string) error {
	if apiKey == "" {
		return err
	}
	msg := err.Error()
	for _, form := range []string{apiKey, url.QueryEscape(apiKey)} {
		msg = strings.ReplaceAll(msg, form, "REDACTED")
	}
	return errors.New(msg)
}

var _ ports.TextGenerator = (*Client)(nil)
