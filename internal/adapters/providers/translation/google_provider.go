package translation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/providers"
)

const (
	googleTranslateURL = "https://translation.googleapis.com/language/translate/v2"
	defaultHTTPTimeout = 8 * time.Second
)

// GoogleTranslationProvider implements TranslationProvider against the
// Google Translate v2 REST API.
type GoogleTranslationProvider struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

// NewGoogleTranslationProvider creates a new Google translation provider.
func NewGoogleTranslationProvider(apiKey, baseURL string) providers.TranslationProvider {
	return NewGoogleTranslationProviderWithOptions(apiKey, baseURL, nil)
}

// NewGoogleTranslationProviderWithOptions allows overriding the HTTP client (used for tests).
func NewGoogleTranslationProviderWithOptions(apiKey, baseURL string, httpClient *http.Client) providers.TranslationProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = googleTranslateURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &GoogleTranslationProvider{
		apiKey:     apiKey,
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// Translate converts text from the source language to the target language.
func (g *GoogleTranslationProvider) Translate(ctx context.Context, text, source, target string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("translation api key is required")
	}

	payload := translateRequest{
		Q:      []string{text},
		Source: source,
		Target: target,
		Format: "text",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to build translate request: %w", err)
	}

	reqURL := fmt.Sprintf("%s?key=%s", g.baseURL, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build translate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("translate request returned status %d", resp.StatusCode)
	}

	var envelope translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", fmt.Errorf("failed to decode translate response: %w", err)
	}

	if len(envelope.Data.Translations) == 0 {
		return "", fmt.Errorf("translate response contained no translations")
	}

	return envelope.Data.Translations[0].TranslatedText, nil
}

type translateRequest struct {
	Q      []string `json:"q"`
	Source string   `json:"source,omitempty"`
	Target string   `json:"target"`
	Format string   `json:"format,omitempty"`
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}
