package webfetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/seoscope/seoscope/internal/utils"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is the default User-Agent header value
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	// MaxBodySize is the maximum response body size (10MB)
	MaxBodySize = 10 * 1024 * 1024
	// DialTimeout is the maximum time to wait for a TCP connection
	DialTimeout = 10 * time.Second
	// TLSHandshakeTimeout is the maximum time to wait for TLS handshake
	TLSHandshakeTimeout = 10 * time.Second
	// ResponseHeaderTimeout is the maximum time to wait for response headers
	ResponseHeaderTimeout = 10 * time.Second
	// IdleConnTimeout is the maximum time an idle connection can be reused
	IdleConnTimeout = 90 * time.Second
)

// noiseSelector matches document subtrees that carry no analyzable text.
const noiseSelector = "script, style, noscript, iframe"

// Input holds the parameters for a page fetch. URL is the only required
// field; the other fields are optional overrides for the package defaults.
type Input struct {
	// URL is the web page URL to fetch (can be partial like "example.com" or full like "https://example.com")
	URL string

	// TimeoutSeconds is the request timeout in seconds (default: 30)
	TimeoutSeconds int

	// UserAgent is the User-Agent header to send with the request (optional)
	UserAgent string
}

// Output holds the result produced by [Fetch]. URL reflects the final
// destination after all HTTP redirects.
type Output struct {
	// URL is the final URL after following all redirects
	URL string

	// Text is the page content with markup stripped and whitespace collapsed
	Text string
}

// Fetch retrieves the web page at req.URL and returns its cleaned text.
//
// Partial URLs (e.g. "example.com") are normalised by prepending "https://".
// The request timeout is taken from req.TimeoutSeconds when set, otherwise
// [DefaultTimeout] is used. Up to ten HTTP redirects are followed; the final
// URL after all redirects is returned in [Output.URL]. The response body is
// capped at [MaxBodySize] bytes.
//
// Fetch returns an error when the URL is empty, the host is unreachable, the
// HTTP status code is not 200 OK, the body exceeds [MaxBodySize], or the
// context is cancelled or times out.
func Fetch(ctx context.Context, req Input) (Output, error) {
	// Validate and normalize URL
	url := strings.TrimSpace(req.URL)
	if url == "" {
		return Output{}, fmt.Errorf("URL cannot be empty")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}

	timeout := DefaultTimeout
	if req.TimeoutSeconds > 0 {
		timeout = time.Duration(req.TimeoutSeconds) * time.Second
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctxWithTimeout, "GET", url, nil)
	if err != nil {
		return Output{}, fmt.Errorf("failed to create request: %w", err)
	}

	userAgent := DefaultUserAgent
	if req.UserAgent != "" {
		userAgent = req.UserAgent
	}
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   DialTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   TLSHandshakeTimeout,
			ResponseHeaderTimeout: ResponseHeaderTimeout,
			IdleConnTimeout:       IdleConnTimeout,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			ForceAttemptHTTP2:     true,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return fmt.Errorf("too many redirects (>10)")
			}
			return nil
		},
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		if ctxWithTimeout.Err() != nil {
			return Output{}, fmt.Errorf("request timeout or canceled: %w", err)
		}
		return Output{}, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer utils.CloseWithLog(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return Output{}, fmt.Errorf("unexpected status code: %d %s", resp.StatusCode, resp.Status)
	}

	htmlBytes, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return Output{}, fmt.Errorf("failed to read response body: %w", err)
	}
	if len(htmlBytes) == MaxBodySize {
		return Output{}, fmt.Errorf("response body exceeds maximum size of %d bytes", MaxBodySize)
	}

	text, err := cleanHTML(htmlBytes)
	if err != nil {
		return Output{}, err
	}

	return Output{
		URL:  resp.Request.URL.String(),
		Text: text,
	}, nil
}

// cleanHTML strips non-content subtrees from the document, converts the rest
// to readable text, and collapses whitespace runs to single spaces.
func cleanHTML(htmlBytes []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlBytes))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find(noiseSelector).Remove()

	stripped, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("failed to serialize HTML: %w", err)
	}

	text, err := htmltomarkdown.ConvertString(stripped)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to text: %w", err)
	}

	return strings.Join(strings.Fields(text), " "), nil
}
