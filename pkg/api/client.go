// Package api is the typed client for the account-recovery endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Error is a failed API call. Message carries the server-provided text when
// the response body had one; callers fall back to a localized generic
// message when it is empty.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: unexpected status %d", e.Status)
}

// errorBody is the conventional error response shape. The backend puts the
// human-readable text in "message"; older endpoints only set "error".
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Client calls the recovery endpoints of the backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for the backend at baseURL. Outgoing requests carry
// a bearer token from tokens when one is stored.
func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: newAuthTransport(tokens, nil),
		},
	}
}

// RecoveryOptions looks up which recovery channels are available for the
// account identified by telegramID.
func (c *Client) RecoveryOptions(ctx context.Context, telegramID int64) (*RecoveryOptions, error) {
	var options RecoveryOptions
	err := c.postJSON(ctx, "/auth/recovery-options", RecoveryOptionsRequest{TelegramID: telegramID}, &options)
	if err != nil {
		return nil, err
	}
	return &options, nil
}

// RequestCode asks the backend to deliver a one-time code over the chosen
// channel.
func (c *Client) RequestCode(ctx context.Context, telegramID int64, method Channel) error {
	return c.postJSON(ctx, "/auth/forgot-password", ForgotPasswordRequest{TelegramID: telegramID, Method: method}, nil)
}

// ResetPassword sets a new password using a previously delivered code.
func (c *Client) ResetPassword(ctx context.Context, telegramID int64, code, newPassword string) error {
	return c.postJSON(ctx, "/auth/reset-password", ResetPasswordRequest{
		TelegramID:  telegramID,
		Code:        code,
		NewPassword: newPassword,
	}, nil)
}

// ResetPasswordWithOld sets a new password authenticated by the current one.
func (c *Client) ResetPasswordWithOld(ctx context.Context, telegramID int64, oldPassword, newPassword string) error {
	return c.postJSON(ctx, "/auth/reset-password-with-old", ResetPasswordWithOldRequest{
		TelegramID:  telegramID,
		OldPassword: oldPassword,
		NewPassword: newPassword,
	}, nil)
}

// postJSON posts body to path and decodes a 2xx response into out when out
// is non-nil. Non-2xx responses become *Error with the server message when
// the body carries one.
func (c *Client) postJSON(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		// Success payloads of the mutation endpoints are not part of the
		// contract; drain so the connection can be reused.
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode}

	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Code = body.Error
		apiErr.Message = body.Message
		if apiErr.Message == "" {
			// Some endpoints put the text under "error" with no code.
			apiErr.Message = body.Error
		}
	}
	return apiErr
}
