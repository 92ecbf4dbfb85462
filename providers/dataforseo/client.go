package dataforseo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/seoscope/seoscope/internal/utils"
)

const (
	defaultBaseURL   = "https://api.dataforseo.com"
	searchVolumePath = "/v3/keywords_data/google_ads/search_volume/live"

	// StatusOK is the API-level status code DataForSEO uses to signal a
	// successfully processed request.
	StatusOK = 20000
)

// Client is a DataForSEO REST API client authenticated with the account
// login/password pair.
type Client struct {
	login    string
	password string
	baseURL  string
	client   *http.Client
}

// NewClient creates a new DataForSEO client with default values.
func NewClient(login, password string) *Client {
	return &Client{
		login:    login,
		password: password,
		baseURL:  defaultBaseURL,
		client:   &http.Client{},
	}
}

// WithBaseURL sets the base URL for the API
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// WithHttpClient sets a custom HTTP client
func (c *Client) WithHttpClient(httpClient *http.Client) *Client {
	c.client = httpClient
	return c
}

// SearchVolumeLive posts a single batched search-volume task to the Google
// Ads live endpoint and returns the decoded response envelope.
//
// Transport failures, non-2xx HTTP statuses, and undecodable bodies are
// returned as errors. A successfully decoded envelope is returned even when
// its API-level status is not [StatusOK]; callers decide how to treat
// provider-reported failures.
func (c *Client) SearchVolumeLive(ctx context.Context, task SearchVolumeTask) (*SearchVolumeResponse, error) {
	if c.login == "" || c.password == "" {
		return nil, fmt.Errorf("DataForSEO credentials are not set")
	}

	jsonBody, err := json.Marshal([]SearchVolumeTask{task})
	if err != nil {
		return nil, fmt.Errorf("error marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+searchVolumePath, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.login, c.password)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer utils.CloseWithLog(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, utils.TruncateString(string(body), 500))
	}

	var apiResponse SearchVolumeResponse
	if err := json.Unmarshal(body, &apiResponse); err != nil {
		return nil, fmt.Errorf("error parsing response: %w", err)
	}

	return &apiResponse, nil
}
