// Package fetch provides URL fetching and HTML-to-text processing.
// This package centralizes HTTP fetching logic used by discovery and crawling.
package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 15 * time.Second

// DefaultUserAgent identifies analyzer traffic to crawled sites.
const DefaultUserAgent = "Mozilla/5.0 (compatible; SiteIntelBot/1.0; +https://github.com/jonathan/site-intel)"

// MaxBodyBytes caps how much of a response body is read.
const MaxBodyBytes = 2 * 1024 * 1024

// ErrorKind distinguishes the ways a fetch can fail.
type ErrorKind string

const (
	// KindInvalidURL means the URL could not be parsed
	KindInvalidURL ErrorKind = "invalid_url"
	// KindTimeout means the request exceeded its time bound
	KindTimeout ErrorKind = "timeout"
	// KindNetwork means the request failed below HTTP (DNS, TCP, TLS)
	KindNetwork ErrorKind = "network"
	// KindStatus means the server answered with a non-success status
	KindStatus ErrorKind = "status"
)

// Error represents an error during URL fetching.
type Error struct {
	URL        string
	Kind       ErrorKind
	StatusCode int
	Message    string
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsFetchError reports whether err is (or wraps) a fetch Error.
func IsFetchError(err error) bool {
	var fe *Error
	return errors.As(err, &fe)
}

// Result holds the raw and processed content from a URL fetch.
type Result struct {
	URL         string
	HTML        string
	Text        string
	ContentType string
	StatusCode  int
	Elapsed     time.Duration
}

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// URL retrieves HTML content from a URL. A single attempt is made; retry
// policy belongs to callers. The response body is decoded to UTF-8 using
// the declared or sniffed charset.
func URL(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{
			URL:     urlStr,
			Kind:    KindInvalidURL,
			Message: "invalid URL",
			Cause:   err,
		}
	}

	client := &http.Client{
		Timeout: opts.Timeout,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Kind:    KindNetwork,
			Message: "failed to create request",
			Cause:   err,
		}
	}

	req.Header.Set("User-Agent", opts.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Kind:    classifyTransportError(err),
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Kind:    classifyTransportError(err),
			Message: "failed to read response body",
			Cause:   err,
		}
	}

	result := &Result{
		URL:         urlStr,
		HTML:        decodeToUTF8(bodyBytes, resp.Header.Get("Content-Type")),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
		Elapsed:     time.Since(start),
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return result, &Error{
			URL:        urlStr,
			Kind:       KindStatus,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	return result, nil
}

// classifyTransportError maps a transport-level failure onto an ErrorKind.
func classifyTransportError(err error) ErrorKind {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	return KindNetwork
}

// decodeToUTF8 converts a response body to UTF-8 using the charset declared
// in contentType, falling back to the raw bytes when they are already valid.
func decodeToUTF8(data []byte, contentType string) string {
	enc, _, _ := charset.DetermineEncoding(data, contentType)
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		if utf8.Valid(data) {
			return string(data)
		}
		return string(bytes.ToValidUTF8(data, []byte("�")))
	}
	return string(decoded)
}

// ExtractMainText parses HTML and returns the main body text.
// It removes noise elements using noiseSelectors, then finds content using
// contentSelectors. If no content selector matches, it falls back to body.
func ExtractMainText(html string, contentSelectors []string, noiseSelectors ...string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, iframe, .ad, .advertisement, .cookie-banner, .popup").Remove()

	if len(noiseSelectors) > 0 {
		noiseSelector := strings.Join(noiseSelectors, ", ")
		if noiseSelector != "" {
			doc.Find(noiseSelector).Remove()
		}
	}

	var mainContent *goquery.Selection
	for _, selector := range contentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			mainContent = selection.First()
			break
		}
	}

	if mainContent == nil {
		mainContent = doc.Find("body")
	}

	return CleanWhitespace(mainContent.Text()), nil
}

// CleanWhitespace normalizes whitespace in extracted text: lines are
// trimmed, blank lines dropped, and runs of spaces collapsed.
func CleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
