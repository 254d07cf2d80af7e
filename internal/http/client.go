package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps HTTP operations for the release database and cover art
// archive.
//
// Client provides:
//   - A User-Agent header identifying the application and its contact,
//     as the release database's terms of use require
//   - Timeout handling, with a separate per-call timeout for
//     best-effort downloads
//   - JSON decoding of API responses
//
// Example usage:
//
//	client := NewClient("Metagify/1.0 (user@example.com)", 30*time.Second)
//
//	var payload releaseSearchResult
//	err := client.GetJSON(ctx, searchURL, &payload)
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client.
//
// The userAgent is sent on every request. Requests abort after the
// given timeout unless the per-request context ends sooner.
func NewClient(userAgent string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// Get performs a GET request and returns the response body as bytes.
//
// The request includes the configured User-Agent header.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 200 OK
//   - Reading the body fails
//
// Example:
//
//	data, err := client.Get(ctx, "https://example.com/image.jpg")
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// GetJSON performs a GET request and decodes the JSON response body
// into out.
//
// An Accept: application/json header is sent alongside the configured
// User-Agent.
//
// Example:
//
//	var result searchResult
//	err := client.GetJSON(ctx, url, &result)
func (c *Client) GetJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// DownloadBytes downloads a file into memory with its own deadline,
// independent of the client default.
//
// Use this for small best-effort fetches like cover art images, where
// a slow archive should not hold up a batch for the full client
// timeout.
//
// Example:
//
//	imageData, err := client.DownloadBytes(ctx, artworkURL, 15*time.Second)
func (c *Client) DownloadBytes(ctx context.Context, url string, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return c.Get(ctx, url)
}
