package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const DefaultBaseURL = "https://api.hubapi.com"

// Client is a minimal HubSpot CRM client authenticated with a private
// app token.
type Client struct {
	HttpClient *http.Client
	ApiKey     string
	BaseURL    string
}

type ContactProperties struct {
	Email    string `json:"email"`
	LastName string `json:"lastname"`
	Company  string `json:"company"`
	Notes    string `json:"notes"`
}

type contactRequest struct {
	Properties ContactProperties `json:"properties"`
}

type Contact struct {
	ID string `json:"id"`
}

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hubspot request failed with status code %d: %s", e.StatusCode, e.Message)
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

// UpsertContact creates the contact, or updates the existing one keyed
// by email when HubSpot reports a conflict.
func (c Client) UpsertContact(ctx context.Context, props ContactProperties) (*Contact, error) {
	contact, err := c.do(ctx, http.MethodPost, "/crm/v3/objects/contacts", props)
	if err == nil {
		return contact, nil
	}

	apiErr, ok := err.(*APIError)
	if !ok || apiErr.StatusCode != http.StatusConflict {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	path := fmt.Sprintf("/crm/v3/objects/contacts/%s?idProperty=email", url.PathEscape(props.Email))
	contact, err = c.do(ctx, http.MethodPatch, path, props)
	if err != nil {
		return nil, fmt.Errorf("failed to update existing contact: %w", err)
	}
	return contact, nil
}

func (c Client) do(ctx context.Context, method, path string, props ContactProperties) (*Contact, error) {
	body, err := json.Marshal(contactRequest{Properties: props})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL()+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.ApiKey)

	response, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		type errResponse struct {
			Message string `json:"message"`
		}
		errJson := errResponse{}
		if err := json.Unmarshal(responseBytes, &errJson); err != nil || errJson.Message == "" {
			return nil, &APIError{StatusCode: response.StatusCode, Message: strings.TrimSpace(string(responseBytes))}
		}
		return nil, &APIError{StatusCode: response.StatusCode, Message: errJson.Message}
	}

	out := Contact{}
	if err := json.Unmarshal(responseBytes, &out); err != nil {
		return nil, fmt.Errorf("failed to decode contact response: %w", err)
	}
	return &out, nil
}
