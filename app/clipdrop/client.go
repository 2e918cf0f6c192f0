// Package clipdrop is a thin client for the Clipdrop text-to-image API.
// It is a stateless pass-through: no caching, no retries, each call is a
// fresh round trip to the provider.
package clipdrop

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

const defaultBaseURL = "https://clipdrop-api.co/text-to-image/v1"

// ErrUpstream marks any provider-side failure, including bad credentials.
var ErrUpstream = errors.New("image generation failed")

// Client calls the Clipdrop text-to-image endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
}

// NewClientWithURL creates a Client pointed at a custom endpoint, used in
// tests.
func NewClientWithURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// GenerateImage sends the prompt to the provider and returns the result
// as a PNG data URI, ready to use inline as an image source.
func (c *Client) GenerateImage(prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("%w: prompt is required", ErrUpstream)
	}
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: api key not configured", ErrUpstream)
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := form.WriteField("prompt", prompt); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL, &body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: provider returned status %d", ErrUpstream, resp.StatusCode)
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	return "data:image/png;base64," + encoded, nil
}
