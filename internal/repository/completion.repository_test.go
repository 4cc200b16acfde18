package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"emailgenie/internal/domain"
	"emailgenie/pkg/completion"

	"github.com/stretchr/testify/require"
)

func Test_completionRepositoryHandler_Complete(t *testing.T) {
	t.Run("returns first choice content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			in := completion.ChatCompletionRequest{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			require.Equal(t, "gemma2-9b-it", in.Model)
			require.Equal(t, []completion.ChatMessage{{Role: "user", Content: "write it"}}, in.Messages)
			require.Zero(t, in.Temperature)
			require.Nil(t, in.MaxTokens)
			require.Equal(t, "json_object", in.ResponseFormat.Type)

			w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"subject\":\"S\",\"body\":\"B\"}"}}]}`))
		}))
		defer server.Close()

		repo := NewCompletionRepository("key", server.URL, "")
		out, err := repo.Complete(context.Background(), "write it")
		require.NoError(t, err)
		require.Equal(t, `{"subject":"S","body":"B"}`, out)
	})

	t.Run("remote failure is a service error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"Invalid API Key"}}`))
		}))
		defer server.Close()

		repo := NewCompletionRepository("bad", server.URL, "")
		_, err := repo.Complete(context.Background(), "write it")
		require.ErrorIs(t, err, domain.ErrService)
		require.True(t, IsAuthError(err))
	})

	t.Run("no choices is a parse error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		repo := NewCompletionRepository("key", server.URL, "")
		_, err := repo.Complete(context.Background(), "write it")
		require.ErrorIs(t, err, domain.ErrParse)
	})
}
