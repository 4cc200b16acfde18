package hubspot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient_UpsertContact(t *testing.T) {
	props := ContactProperties{
		Email:    "jane@initech.com",
		LastName: "Jane Doe",
		Company:  "Initech",
		Notes:    "Sent email: hello...",
	}

	t.Run("creates new contact", func(t *testing.T) {
		calls := []string{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls = append(calls, r.Method+" "+r.URL.Path)

			in := contactRequest{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			require.Equal(t, props, in.Properties)
			require.Equal(t, "Bearer pat", r.Header.Get("Authorization"))

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"101"}`))
		}))
		defer server.Close()

		c := Client{HttpClient: server.Client(), ApiKey: "pat", BaseURL: server.URL}
		contact, err := c.UpsertContact(context.Background(), props)
		require.NoError(t, err)
		require.Equal(t, "101", contact.ID)
		require.Equal(t, []string{"POST /crm/v3/objects/contacts"}, calls)
	})

	t.Run("conflict falls back to update by email", func(t *testing.T) {
		calls := []string{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls = append(calls, r.Method+" "+r.URL.Path)
			if r.Method == http.MethodPost {
				w.WriteHeader(http.StatusConflict)
				w.Write([]byte(`{"status":"error","message":"Contact already exists"}`))
				return
			}
			require.Equal(t, "email", r.URL.Query().Get("idProperty"))
			w.Write([]byte(`{"id":"55"}`))
		}))
		defer server.Close()

		c := Client{HttpClient: server.Client(), ApiKey: "pat", BaseURL: server.URL}
		contact, err := c.UpsertContact(context.Background(), props)
		require.NoError(t, err)
		require.Equal(t, "55", contact.ID)
		require.Equal(t, []string{
			"POST /crm/v3/objects/contacts",
			"PATCH /crm/v3/objects/contacts/jane@initech.com",
		}, calls)
	})

	t.Run("other failures are returned", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"status":"error","message":"Authentication credentials not found"}`))
		}))
		defer server.Close()

		c := Client{HttpClient: server.Client(), ApiKey: "bad", BaseURL: server.URL}
		_, err := c.UpsertContact(context.Background(), props)
		require.ErrorContains(t, err, "Authentication credentials not found")
	})
}
