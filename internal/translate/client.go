// Package translate talks to the MyMemory translation API.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.mymemory.translated.net"

	rateBurst = 1
)

// Translator turns text from one language into another. Language arguments
// are ISO 639-1 / BCP 47 codes such as "de" or "en".
type Translator interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
}

// APIError is returned when the backend answers with a non-success status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("translation backend returned %d: %s", e.StatusCode, e.Message)
}

// MyMemoryClient calls GET /get?q=...&langpair=from|to. Requests are
// throttled by a token bucket and are never retried.
type MyMemoryClient struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

// NewClient creates a client for baseURL allowing requestsPerSecond calls.
func NewClient(baseURL string, timeout time.Duration, requestsPerSecond int) *MyMemoryClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &MyMemoryClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		rateLimiter: rate.NewLimiter(rate.Limit(requestsPerSecond), rateBurst),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	ResponseStatus  json.RawMessage `json:"responseStatus"`
	ResponseDetails string          `json:"responseDetails"`
}

// status decodes responseStatus, which the API sends either as a number or
// as a quoted number.
func (r *myMemoryResponse) status() int {
	raw := strings.Trim(string(r.ResponseStatus), `"`)
	code, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return code
}

// Translate sends text to the backend. Empty text is returned as is without
// a call.
func (c *MyMemoryClient) Translate(ctx context.Context, text, from, to string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error: %w", err)
	}

	params := url.Values{}
	params.Set("q", text)
	params.Set("langpair", from+"|"+to)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/get?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "jobboard/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	var payload myMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode translation response: %w", err)
	}

	if status := payload.status(); status != http.StatusOK {
		return "", &APIError{StatusCode: status, Message: payload.ResponseDetails}
	}

	translated := html.UnescapeString(payload.ResponseData.TranslatedText)
	// quota exhaustion comes back as a 200 with the warning in place of the text
	if strings.HasPrefix(translated, "MYMEMORY WARNING") {
		return "", &APIError{StatusCode: http.StatusTooManyRequests, Message: translated}
	}
	return translated, nil
}
