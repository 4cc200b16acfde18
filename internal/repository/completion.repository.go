package repository

//go:generate mockgen -source=completion.repository.go -destination=mocks/mock_completion.repository.go

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"emailgenie/internal/domain"
	"emailgenie/pkg/completion"
)

// CompletionRepository sends a single instruction to the language model
// and returns the raw text of the first choice.
type CompletionRepository interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type completionRepositoryHandler struct {
	Client completion.Client
	Model  string
}

func NewCompletionRepository(apiKey, baseURL, model string) CompletionRepository {
	if model == "" {
		model = completion.DefaultModel
	}
	return completionRepositoryHandler{
		Client: completion.Client{
			HttpClient: http.DefaultClient,
			ApiKey:     apiKey,
			BaseURL:    baseURL,
		},
		Model: model,
	}
}

func (h completionRepositoryHandler) Complete(ctx context.Context, prompt string) (string, error) {
	response, err := h.Client.CreateChatCompletion(ctx, completion.ChatCompletionRequest{
		Model: h.Model,
		Messages: []completion.ChatMessage{
			{
				Role:    completion.RoleUser,
				Content: prompt,
			},
		},
		Temperature: 0,
		ResponseFormat: &completion.ResponseFormat{
			Type: completion.ResponseFormatJsonObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrService, err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("%w: completion response had no choices", domain.ErrParse)
	}

	return response.Choices[0].Message.Content, nil
}

// IsAuthError reports whether err came from a rejected API key.
func IsAuthError(err error) bool {
	apiErr := &completion.APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
	}
	return false
}
