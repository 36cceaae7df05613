package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"
	"time"
)

// Client translates text through the unauthenticated Google Translate web
// endpoint (client=gtx). The source language is auto-detected.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

// Translate returns text rendered in the target language code (e.g. "fi").
func (c *Client) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	params := neturl.Values{}
	params.Set("client", "gtx")
	params.Set("sl", "auto")
	params.Set("tl", targetLanguage)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("translate request failed: %s", strings.TrimSpace(string(body)))
	}

	return parseSegments(body)
}

// parseSegments decodes the gtx response, a nested array whose first element
// lists translated segments: [[["<translated>","<original>",...],...],...].
func parseSegments(body []byte) (string, error) {
	var outer []json.RawMessage
	if err := json.Unmarshal(body, &outer); err != nil {
		return "", fmt.Errorf("unexpected translate response: %w", err)
	}
	if len(outer) == 0 {
		return "", errors.New("empty translate response")
	}

	var segments []json.RawMessage
	if err := json.Unmarshal(outer[0], &segments); err != nil {
		return "", fmt.Errorf("unexpected translate response: %w", err)
	}

	var full strings.Builder
	for _, segment := range segments {
		var parts []json.RawMessage
		if err := json.Unmarshal(segment, &parts); err != nil || len(parts) == 0 {
			continue
		}
		var translated string
		if err := json.Unmarshal(parts[0], &translated); err != nil {
			continue
		}
		full.WriteString(translated)
	}

	result := full.String()
	if strings.TrimSpace(result) == "" {
		return "", errors.New("empty translate response")
	}
	return result, nil
}
