package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "gemma2-9b-it"

	RoleUser = "user"

	ResponseFormatJsonObject = "json_object"
)

// Client talks to an OpenAI-compatible chat completions API.
type Client struct {
	HttpClient *http.Client
	ApiKey     string
	BaseURL    string
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ResponseFormat struct {
	Type string `json:"type"`
}

// ChatCompletionRequest always serializes temperature, including zero.
// MaxTokens is left out when nil so the service applies no output cap.
type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      *int            `json:"max_tokens,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

type ChatCompletionChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type ChatCompletionResponse struct {
	ID      string                 `json:"id"`
	Model   string                 `json:"model"`
	Choices []ChatCompletionChoice `json:"choices"`
}

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("completion request failed with status code %d: %s", e.StatusCode, e.Message)
}

func (c Client) baseURL() string {
	if c.BaseURL == "" {
		return DefaultBaseURL
	}
	return strings.TrimRight(c.BaseURL, "/")
}

func (c Client) httpClient() *http.Client {
	if c.HttpClient == nil {
		return http.DefaultClient
	}
	return c.HttpClient
}

func (c Client) CreateChatCompletion(ctx context.Context, in ChatCompletionRequest) (*ChatCompletionResponse, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal completion request: %w", err)
	}

	url := c.baseURL() + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.ApiKey)

	response, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send completion request: %w", err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		type errResponse struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		errJson := errResponse{}
		if err := json.Unmarshal(responseBytes, &errJson); err != nil || errJson.Error.Message == "" {
			return nil, &APIError{StatusCode: response.StatusCode, Message: strings.TrimSpace(string(responseBytes))}
		}
		return nil, &APIError{StatusCode: response.StatusCode, Message: errJson.Error.Message}
	}

	responseJson := ChatCompletionResponse{}
	err = json.Unmarshal(responseBytes, &responseJson)
	if err != nil {
		return nil, fmt.Errorf("failed to decode completion response: %w", err)
	}

	return &responseJson, nil
}
