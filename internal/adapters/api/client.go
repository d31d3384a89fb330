package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"uadm/internal/domain"
	"uadm/internal/ports"
)

const maxResponseBytes = 1 << 20

// TokenSource supplies the current bearer token, empty when unauthenticated.
// The session manager satisfies it.
type TokenSource interface {
	Token() string
}

// Client talks the backend's JSON contract and implements ports.AdminGateway.
// Every authenticated call carries `Authorization: Bearer <token>` read from
// the token source at request time.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	tokens     TokenSource
}

var _ ports.AdminGateway = (*Client)(nil)

func NewClient(baseURL string, httpClient *http.Client, tokens TokenSource) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return nil, errors.New("api base url host is required")
	}
	// Relative resolution drops the last path segment without this.
	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{baseURL: parsed, httpClient: httpClient, tokens: tokens}, nil
}

type messagePayload struct {
	Message string `json:"message"`
}

type tokenPayload struct {
	Token string `json:"token"`
}

type accountPayload struct {
	ID            json.Number `json:"id"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	LastLoginTime string      `json:"last_login_time"`
	Status        string      `json:"status"`
}

type credentialsBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type emailBody struct {
	Email string `json:"email"`
}

type bulkBody struct {
	UserIDs []domain.AccountID `json:"userIds"`
}

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var payload tokenPayload
	err := c.doJSON(ctx, http.MethodPost, "auth/login", credentialsBody{Email: email, Password: password}, &payload, false)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if payload.Token == "" {
		return "", errors.New("login: response missing token")
	}

	return payload.Token, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) (string, error) {
	var payload messagePayload
	err := c.doJSON(ctx, http.MethodPost, "auth/register", registerBody{Name: name, Email: email, Password: password}, &payload, false)
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}

	return payload.Message, nil
}

func (c *Client) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	var payload messagePayload
	err := c.doJSON(ctx, http.MethodPost, "auth/forgot-password", emailBody{Email: email}, &payload, false)
	if err != nil {
		return "", fmt.Errorf("request password reset: %w", err)
	}

	return payload.Message, nil
}

func (c *Client) FetchRoster(ctx context.Context) ([]domain.Account, error) {
	var payload []accountPayload
	if err := c.doJSON(ctx, http.MethodGet, "users", nil, &payload, true); err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(payload))
	for _, entry := range payload {
		accounts = append(accounts, fromAccountPayload(entry))
	}

	return accounts, nil
}

func (c *Client) ApplyBulk(ctx context.Context, kind domain.ActionKind, ids []domain.AccountID) (string, error) {
	var method, path string
	switch kind {
	case domain.ActionBlock:
		method, path = http.MethodPost, "users/block"
	case domain.ActionUnblock:
		method, path = http.MethodPost, "users/unblock"
	case domain.ActionDelete:
		method, path = http.MethodDelete, "users"
	default:
		return "", fmt.Errorf("unsupported bulk action kind %q", kind)
	}

	var payload messagePayload
	if err := c.doJSON(ctx, method, path, bulkBody{UserIDs: ids}, &payload, true); err != nil {
		return "", err
	}

	return payload.Message, nil
}

// doJSON performs one request against the backend. Non-2xx responses become
// errors carrying the server-provided message when one exists; 401/403 on
// authenticated calls additionally match domain.ErrAuthDenied. Login and the
// other public endpoints skip that classification so a rejected password is
// an ordinary failure, not a session event.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any, authenticated bool) error {
	endpoint, err := c.baseURL.Parse(strings.TrimLeft(path, "/"))
	if err != nil {
		return fmt.Errorf("parse api path: %w", err)
	}

	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if authenticated {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		message := serverMessage(resp.StatusCode, data)
		if authenticated && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
			return fmt.Errorf("%w: %s", domain.ErrAuthDenied, message)
		}
		return errors.New(message)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

func serverMessage(statusCode int, data []byte) string {
	var payload messagePayload
	if err := json.Unmarshal(data, &payload); err == nil && strings.TrimSpace(payload.Message) != "" {
		return strings.TrimSpace(payload.Message)
	}

	return fmt.Sprintf("request failed: status %d", statusCode)
}

func fromAccountPayload(entry accountPayload) domain.Account {
	status := domain.AccountStatus(strings.ToLower(entry.Status))
	if !status.Valid() {
		status = domain.StatusActive
	}

	return domain.Account{
		ID:        domain.AccountID(entry.ID.String()),
		Name:      entry.Name,
		Email:     entry.Email,
		LastLogin: parseTime(entry.LastLoginTime),
		Status:    status,
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}
