package service

import (
	"context"
	"fmt"
	"testing"

	"emailgenie/internal/domain"
	mock_repository "emailgenie/internal/repository/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func Test_draftServiceHandler_GenerateDraft(t *testing.T) {
	setup := func(t *testing.T) (DraftService, *mock_repository.MockCompletionRepository) {
		ctrl := gomock.NewController(t)
		completionRepository := mock_repository.NewMockCompletionRepository(ctrl)
		return NewDraftService(completionRepository, zap.NewNop().Sugar()), completionRepository
	}

	t.Run("valid json", func(t *testing.T) {
		handler, completionRepository := setup(t)
		completionRepository.EXPECT().
			Complete(gomock.Any(), "prompt").
			Return(`{"subject":"S","body":"B"}`, nil)

		subject, body := handler.GenerateDraft(context.Background(), "prompt")
		require.Equal(t, "S", subject)
		require.Equal(t, "B", body)
	})

	fallbackCases := []struct {
		name    string
		content string
		err     error
	}{
		{name: "not json", content: "Subject: hi\n\nBody"},
		{name: "missing body", content: `{"subject":"S"}`},
		{name: "missing subject", content: `{"body":"B"}`},
		{name: "non string body", content: `{"subject":"S","body":42}`},
		{name: "service failure", err: fmt.Errorf("%w: quota exceeded", domain.ErrService)},
	}
	for _, tc := range fallbackCases {
		t.Run("fallback on "+tc.name, func(t *testing.T) {
			handler, completionRepository := setup(t)
			completionRepository.EXPECT().
				Complete(gomock.Any(), gomock.Any()).
				Return(tc.content, tc.err)

			var subject, body string
			require.NotPanics(t, func() {
				subject, body = handler.GenerateDraft(context.Background(), "prompt")
			})
			require.Equal(t, FallbackSubject, subject)
			require.Equal(t, FallbackBody, body)
		})
	}
}

func Test_draftServiceHandler_TryGenerateDraft(t *testing.T) {
	t.Run("parse errors are typed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		completionRepository := mock_repository.NewMockCompletionRepository(ctrl)
		handler := NewDraftService(completionRepository, zap.NewNop().Sugar())

		completionRepository.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return(`{"subject":"S"}`, nil)

		_, _, err := handler.TryGenerateDraft(context.Background(), "prompt")
		require.ErrorIs(t, err, domain.ErrParse)
	})

	t.Run("service errors are typed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		completionRepository := mock_repository.NewMockCompletionRepository(ctrl)
		handler := NewDraftService(completionRepository, zap.NewNop().Sugar())

		completionRepository.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return("", fmt.Errorf("%w: connection refused", domain.ErrService))

		_, _, err := handler.TryGenerateDraft(context.Background(), "prompt")
		require.ErrorIs(t, err, domain.ErrService)
	})
}
