package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const chatCompletionsURL = "https://api.openai.com/v1/chat/completions"

// The narrative layer is allowed to be slow; there is no retry, a single
// failure routes to the caller's static fallback.
const requestTimeout = 60 * time.Second

type OpenAIClient struct {
	apiKey string
	model  string
}

func NewOpenAIClient() *OpenAIClient {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o"
	}
	return &OpenAIClient{
		apiKey: os.Getenv("OPENAI_API_KEY"),
		model:  model,
	}
}

func (o *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	if o.apiKey == "" {
		return "", errors.New("missing OPENAI_API_KEY")
	}
	if prompt == "" {
		return "", errors.New("empty prompt")
	}

	payload := map[string]any{
		"model": o.model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		chatCompletionsURL,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	client := &http.Client{Timeout: requestTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai api error: %s", string(raw))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	if len(result.Choices) == 0 {
		return "", errors.New("empty openai response")
	}

	return result.Choices[0].Message.Content, nil
}
