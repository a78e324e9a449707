package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const openAIChatURL = "https://api.openai.com/v1/chat/completions"

const intentSystemPrompt = `You are an intent classifier for a customer support system.
Classify the user message into exactly one of these categories:
- greeting: greetings and salutations
- farewell: goodbyes and closings
- help: general requests for help or support
- account: account, login, password and profile questions
- order: orders, purchases, shipping and delivery
- product: product details, availability, features and warranty
- complaint: complaints and reports of problems
- urgent: anything urgent or time critical
- faq: general informational questions
- other: anything that fits none of the above
Respond with ONLY the category name, nothing else.`

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

// OpenAIClassifier labels messages through the OpenAI chat completions
// API. It satisfies the pipeline's intent model interface; the caller
// owns fallback behavior when a call fails.
type OpenAIClassifier struct {
	apiKey string
	model  string
	client *http.Client
}

func NewOpenAIClassifier(apiKey, model string) *OpenAIClassifier {
	return &OpenAIClassifier{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// ClassifyIntent asks the model for a single category name. The answer
// is lowercased and trimmed but not validated here.
func (o *OpenAIClassifier) ClassifyIntent(ctx context.Context, message string) (string, error) {
	payload := chatRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: intentSystemPrompt},
			{Role: "user", Content: message},
		},
		Temperature: 0.1,
		MaxTokens:   10,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openAIChatURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("openai returned status %d: %s", resp.StatusCode, string(detail))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	label := strings.ToLower(strings.TrimSpace(parsed.Choices[0].Message.Content))
	if label == "" {
		return "", fmt.Errorf("openai returned an empty label")
	}
	return label, nil
}
