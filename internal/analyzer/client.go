// Package analyzer is the HTTP client for the external vision analysis
// service that turns a transcript image into the raw analysis payload.
// The service is an opaque upstream; retry policy, if any, belongs here
// at the transport boundary, never inside the engine.
package analyzer

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/config"
)

// ErrEmptyResponse is returned when the upstream answered but produced no
// usable analysis text.
var ErrEmptyResponse = errors.New("analyzer response is empty or invalid")

// Client calls the vision analysis API.
type Client struct {
	httpClient *http.Client
	url        string
	apiKey     string
	prompt     string
	log        zerolog.Logger
}

// New creates an analyzer Client from configuration.
func New(cfg *config.Config, log zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.AnalyzerTimeout},
		url:        cfg.AnalyzerURL,
		apiKey:     cfg.AnalyzerAPIKey,
		prompt:     cfg.AnalyzerPrompt,
		log:        log.With().Str("component", "analyzer_client").Logger(),
	}
}

// ─── Wire types (upstream contract) ──────────────────────────────────────

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMimeType string `json:"response_mime_type"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Analyze sends the image to the upstream and returns the raw analysis
// payload JSON exactly as the model emitted it. The caller owns decoding
// and any caching of the returned bytes.
func (c *Client) Analyze(ctx context.Context, image []byte, mimeType string) (json.RawMessage, error) {
	reqBody := generateRequest{
		Contents: []content{{
			Parts: []part{
				{Text: c.prompt},
				{InlineData: &inlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
			},
		}},
		GenerationConfig: generationConfig{ResponseMimeType: "application/json"},
	}

	encoded, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encode analyzer request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"?key="+c.apiKey, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("build analyzer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call analyzer: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read analyzer response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Error().
			Int("status", resp.StatusCode).
			Msg("Analyzer returned non-OK status")
		return nil, fmt.Errorf("analyzer status %d", resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode analyzer response: %w", err)
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return nil, ErrEmptyResponse
	}

	text := decoded.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return nil, ErrEmptyResponse
	}

	c.log.Debug().Int("payload_bytes", len(text)).Msg("Analyzer payload received")

	return json.RawMessage(text), nil
}
