package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"emailgenie/internal/app"
	"emailgenie/internal/db/models/postgres/public/model"
	"emailgenie/internal/domain"
	"emailgenie/internal/repository"
	mock_repository "emailgenie/internal/repository/mocks"
	"emailgenie/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type apiFixture struct {
	handler              ApiHandler
	router               *gin.Engine
	completionRepository *mock_repository.MockCompletionRepository
	emailRepository      *mock_repository.MockEmailRepository
	sentEmailRepository  *mock_repository.MockSentEmailRepository
}

func newApiFixture(t *testing.T) apiFixture {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	log := zap.NewNop().Sugar()

	completionRepository := mock_repository.NewMockCompletionRepository(ctrl)
	emailRepository := mock_repository.NewMockEmailRepository(ctrl)
	sentEmailRepository := mock_repository.NewMockSentEmailRepository(ctrl)
	templateRepository := mock_repository.NewMockEmailTemplateRepository(ctrl)

	handler := ApiHandler{
		SessionApp: app.NewSessionApp(
			repository.NewProfileRepository(filepath.Join(t.TempDir(), "user_profiles.csv")),
			templateRepository,
			sentEmailRepository,
			service.NewDraftService(completionRepository, log),
			service.NewDispatchService(emailRepository, sentEmailRepository, nil, log),
			log,
		),
		Session: domain.NewSession(),
		Logger:  log,
	}

	return apiFixture{
		handler:              handler,
		router:               handler.Router(),
		completionRepository: completionRepository,
		emailRepository:      emailRepository,
		sentEmailRepository:  sentEmailRepository,
	}
}

func (f apiFixture) do(t *testing.T, method string, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func testProfile() domain.Profile {
	return domain.Profile{
		Name:           "Acme-Sales",
		Industry:       "SaaS",
		TargetAudience: "CTOs",
		Background:     "5 yrs B2B",
		SenderName:     "Sam Lee",
		SenderCompany:  "Acme",
		SenderEmail:    "sam@acme.com",
	}
}

func TestApi_fullFlow(t *testing.T) {
	f := newApiFixture(t)

	w := f.do(t, http.MethodGet, "/session", nil)
	require.Equal(t, 200, w.Code)
	session := sessionResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	require.Equal(t, domain.TabProfileSetup, session.ActiveTab)
	require.Len(t, session.Purposes, 5)

	w = f.do(t, http.MethodPost, "/profiles", testProfile())
	require.Equal(t, 200, w.Code)

	w = f.do(t, http.MethodGet, "/profiles", nil)
	require.Equal(t, 200, w.Code)
	profiles := []domain.Profile{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profiles))
	require.Equal(t, []domain.Profile{testProfile()}, profiles)

	f.completionRepository.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		Return(`{"subject":"S","body":"B"}`, nil)
	w = f.do(t, http.MethodPost, "/generate", app.GenerateInput{
		ProfileName: "Acme-Sales",
		Purpose:     "Sales Pitch",
		Recipient: domain.Recipient{
			Name:        "Jane Doe",
			Company:     "Initech",
			Designation: "VP Eng",
			Email:       "jane@initech.com",
		},
	})
	require.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	require.Equal(t, domain.TabPreview, session.ActiveTab)
	require.Equal(t, "S", session.Draft.Subject)
	require.Equal(t, "B", session.Draft.Body)
	require.Equal(t, "Sam Lee (Acme) <sam@acme.com>", session.From)

	w = f.do(t, http.MethodPut, "/preview", map[string]string{"subject": "Edited"})
	require.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	require.Equal(t, "Edited", session.Draft.Subject)
	require.Equal(t, "B", session.Draft.Body)

	f.emailRepository.EXPECT().
		SendEmail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, in repository.SendEmailInput) (string, error) {
			require.Equal(t, "jane@initech.com", in.To)
			require.Equal(t, "Edited", in.Subject)
			return "em_1", nil
		})
	f.sentEmailRepository.EXPECT().
		Add(gomock.Any()).
		Return(&model.SentEmails{ID: 1}, nil)
	w = f.do(t, http.MethodPost, "/preview/send", nil)
	require.Equal(t, 200, w.Code)
	sent := sendResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sent))
	require.True(t, sent.Success)
	require.Equal(t, "em_1", sent.EmailID)
}

func TestApi_errors(t *testing.T) {
	t.Run("incomplete profile is a 400", func(t *testing.T) {
		f := newApiFixture(t)
		p := testProfile()
		p.SenderEmail = ""

		w := f.do(t, http.MethodPost, "/profiles", p)
		require.Equal(t, 400, w.Code)
		require.Contains(t, w.Body.String(), "error")
	})

	t.Run("unknown tab is a 400", func(t *testing.T) {
		f := newApiFixture(t)

		w := f.do(t, http.MethodPost, "/session/tab", navigateRequest{Tab: "Settings"})
		require.Equal(t, 400, w.Code)
	})

	t.Run("send with empty subject is a 400", func(t *testing.T) {
		f := newApiFixture(t)
		f.handler.Session.ActiveTab = domain.TabPreview
		f.handler.Session.Draft = domain.Draft{
			RecipientEmail: "jane@initech.com",
			Subject:        "",
			Body:           "B",
			SenderEmail:    "sam@acme.com",
		}

		w := f.do(t, http.MethodPost, "/preview/send", nil)
		require.Equal(t, 400, w.Code)
	})

	t.Run("delivery failure is a 200 with success false", func(t *testing.T) {
		f := newApiFixture(t)
		f.handler.Session.Draft = domain.Draft{
			RecipientEmail: "jane@initech.com",
			Subject:        "S",
			Body:           "B",
			SenderEmail:    "sam@acme.com",
		}
		f.emailRepository.EXPECT().
			SendEmail(gomock.Any(), gomock.Any()).
			Return("", fmt.Errorf("%w: invalid api key", domain.ErrService))

		w := f.do(t, http.MethodPost, "/preview/send", nil)
		require.Equal(t, 200, w.Code)
		sent := sendResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sent))
		require.False(t, sent.Success)
		require.Contains(t, sent.Message, "invalid api key")
	})
}

func TestApi_deleteProfile(t *testing.T) {
	f := newApiFixture(t)
	require.Equal(t, 200, f.do(t, http.MethodPost, "/profiles", testProfile()).Code)

	w := f.do(t, http.MethodDelete, "/profiles/Acme-Sales", nil)
	require.Equal(t, 200, w.Code)

	w = f.do(t, http.MethodGet, "/profiles", nil)
	require.JSONEq(t, "[]", w.Body.String())
}

func Test_newTemplateResponse(t *testing.T) {
	b, err := json.Marshal(testProfile())
	require.NoError(t, err)

	out := newTemplateResponse(model.EmailTemplates{
		ID:          1,
		Name:        "intro",
		Content:     "Hi",
		ProfileJSON: string(b),
	})
	require.NotNil(t, out.Profile)
	require.Equal(t, testProfile(), *out.Profile)
}

func TestApi_deleteProfileWithSlash(t *testing.T) {
	f := newApiFixture(t)
	p := testProfile()
	p.Name = "Acme / Sales"
	require.Equal(t, 200, f.do(t, http.MethodPost, "/profiles", p).Code)
	require.Equal(t, 200, f.do(t, http.MethodPost, "/profiles", testProfile()).Code)

	w := f.do(t, http.MethodDelete, "/profiles/Acme%20/%20Sales", nil)
	require.Equal(t, 200, w.Code)

	w = f.do(t, http.MethodGet, "/profiles", nil)
	profiles := []domain.Profile{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profiles))
	require.Equal(t, []domain.Profile{testProfile()}, profiles)
}

func TestApi_sessionReadDuringGenerate(t *testing.T) {
	f := newApiFixture(t)
	require.Equal(t, 200, f.do(t, http.MethodPost, "/profiles", testProfile()).Code)

	f.completionRepository.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, prompt string) (string, error) {
			time.Sleep(20 * time.Millisecond)
			return `{"subject":"S","body":"B"}`, nil
		})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		f.do(t, http.MethodPost, "/generate", app.GenerateInput{
			ProfileName: "Acme-Sales",
			Purpose:     "Sales Pitch",
			Recipient:   domain.Recipient{Name: "Jane Doe", Email: "jane@initech.com"},
		})
	}()

	codes := make(chan int, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			codes <- f.do(t, http.MethodGet, "/session", nil).Code
		}()
	}
	wg.Wait()
	close(codes)

	for code := range codes {
		require.Equal(t, 200, code)
	}

	session := sessionResponse{}
	require.NoError(t, json.Unmarshal(f.do(t, http.MethodGet, "/session", nil).Body.Bytes(), &session))
	require.Equal(t, domain.TabPreview, session.ActiveTab)
	require.Equal(t, "S", session.Draft.Subject)
}
