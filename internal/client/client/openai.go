package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/glasses-man/exampilot/internal/client/models"
)

const (
	completionsPath = "/v1/chat/completions"
	defaultModel    = "gpt-3.5-turbo"
)

// HTTPExplainer talks to an OpenAI-style chat-completions endpoint.
type HTTPExplainer struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewHTTPExplainer builds an explainer for the given endpoint. The API key
// must come from configuration; it is never embedded in the binary.
func NewHTTPExplainer(baseURL, apiKey string, timeout time.Duration) (*HTTPExplainer, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	return &HTTPExplainer{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      defaultModel,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Explain asks the service for a step-by-step explanation and returns the
// raw response text. The prompt requests the line-oriented STEP/FINAL ANSWER
// convention that ParseExplanation understands; the service's compliance is
// advisory only.
func (c *HTTPExplainer) Explain(ctx context.Context, question string, subject models.Subject, lang models.Language) (string, error) {
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt(lang)},
			{Role: "user", Content: userPrompt(question, subject, lang)},
		},
		Temperature: 0.7,
		MaxTokens:   1500,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", ErrUnavailable)
	}

	return parsed.Choices[0].Message.Content, nil
}

// Close releases client resources. The plain HTTP client has none.
func (c *HTTPExplainer) Close() error { return nil }

func systemPrompt(lang models.Language) string {
	s := "You are an expert IGCSE teacher who explains concepts clearly and encouragingly."
	if lang == models.LanguageArabic {
		s += " Respond in Arabic."
	}
	return s
}

func userPrompt(question string, subject models.Subject, lang models.Language) string {
	inArabic := ""
	entirely := ""
	if lang == models.LanguageArabic {
		inArabic = " in Arabic"
		entirely = " Write the entire response in Arabic."
	}
	return fmt.Sprintf(`You are an expert IGCSE %s teacher. Explain this problem step-by-step as you would to a student%s:

Question: %s

Provide:
1. A clear, step-by-step solution
2. Explain WHY each step is done
3. Highlight any formulas or rules used
4. Give a final answer

Format as:
STEP 1: [explanation]
STEP 2: [explanation]
...
FINAL ANSWER: [answer]

Make it encouraging and clear.%s`, subject, inArabic, question, entirely)
}
