package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Fallback replies. The recommendation boundary always resolves to a
// display-ready string; these cover the missing-credential, empty and
// failure paths.
const (
	offlineFallback = "I'm sorry, my olfactory senses are currently offline (API Key missing). However, I recommend exploring our 'Midnight Jasmine' for a mysterious vibe."
	emptyFallback   = "I recommend a scent with deep amber notes to match your intensity."
	errorFallback   = "I am having trouble connecting to the scent database. Please try again later."
)

const recommendationPrompt = `You are an expert master perfumer with a poetic soul. A customer has described their current mood or desire as: "%s".

Please provide a short, evocative recommendation (max 100 words).
Suggest olfactory notes that match this mood (e.g., woody, floral, citrus, amber).
Do not mention specific real-world brands other than "L'Essence".
Focus on the feeling and the sensory experience.`

// GeminiService wraps the generative-language API used for scent
// recommendations.
type GeminiService struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewGeminiService creates a GeminiService. baseURL and model fall
// back to the hosted endpoint and the default model when empty.
func NewGeminiService(apiKey, baseURL, model string) *GeminiService {
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	if model == "" {
		model = "gemini-3-flash-preview"
	}
	return &GeminiService{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiThinkingConfig struct {
	ThinkingBudget int `json:"thinkingBudget"`
}

type geminiGenerationConfig struct {
	ThinkingConfig *geminiThinkingConfig `json:"thinkingConfig,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Recommend turns a free-text mood description into a recommendation
// reply. It never returns an error: without an API key the fixed
// offline reply is returned with no network call, and any transport or
// payload failure degrades to a fixed apology string.
func (s *GeminiService) Recommend(ctx context.Context, mood string) string {
	if s.apiKey == "" {
		return offlineFallback
	}

	text, err := s.generate(ctx, fmt.Sprintf(recommendationPrompt, mood))
	if err != nil {
		log.Printf("[Gemini] recommendation failed: %v", err)
		return errorFallback
	}
	if strings.TrimSpace(text) == "" {
		return emptyFallback
	}
	return text
}

// generate performs a single generateContent call. No retries.
func (s *GeminiService) generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		// Low latency needed for the chat widget.
		GenerationConfig: &geminiGenerationConfig{
			ThinkingConfig: &geminiThinkingConfig{ThinkingBudget: 0},
		},
	})
	if err != nil {
		return "", fmt.Errorf("gemini request marshal: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", s.baseURL, s.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("gemini request build: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("gemini call failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("gemini response unmarshal: %w", err)
	}
	if len(parsed.Candidates) == 0 {
		return "", errors.New("gemini response: no candidates")
	}

	var sb strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}
