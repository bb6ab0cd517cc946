package tung_api_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/tungdeportes/tung-go/internal/auth"
)

type loginRequest struct {
	Documento   string `json:"documento"`
	Contrasenia string `json:"contrasenia"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type verifyEmailRequest struct {
	Correo string `json:"correo"`
	Codigo string `json:"codigo"`
}

type VerifyEmailResponse struct {
	Message  string `json:"message"`
	Verified bool   `json:"verified"`
}

func (c *TungApiClient) postJSON(ctx context.Context, endpoint string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return c.Post(ctx, endpoint, "application/json", bytes.NewReader(body))
}

// Login exchanges an identity document and password for a token pair.
func (c *TungApiClient) Login(ctx context.Context, document, password string) (auth.Tokens, error) {
	body, err := c.postJSON(ctx, LoginEndpoint, loginRequest{Documento: document, Contrasenia: password})
	if err != nil {
		return auth.Tokens{}, fmt.Errorf("login failed: %w", err)
	}

	var tokens auth.Tokens
	if err := json.Unmarshal(body, &tokens); err != nil {
		return auth.Tokens{}, fmt.Errorf("failed to unmarshal login response: %w", err)
	}
	return tokens, nil
}

// Refresh exchanges a refresh token for a fresh token pair.
func (c *TungApiClient) Refresh(ctx context.Context, refreshToken string) (auth.Tokens, error) {
	body, err := c.postJSON(ctx, RefreshEndpoint, refreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return auth.Tokens{}, fmt.Errorf("refresh failed: %w", err)
	}

	var tokens auth.Tokens
	if err := json.Unmarshal(body, &tokens); err != nil {
		return auth.Tokens{}, fmt.Errorf("failed to unmarshal refresh response: %w", err)
	}
	return tokens, nil
}

// Logout invalidates the current session server-side.
func (c *TungApiClient) Logout(ctx context.Context) error {
	if _, err := c.postJSON(ctx, LogoutEndpoint, struct{}{}); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	return nil
}

// VerifyEmail confirms an emailed verification code.
func (c *TungApiClient) VerifyEmail(ctx context.Context, email, code string) (*VerifyEmailResponse, error) {
	body, err := c.postJSON(ctx, VerifyEmailEndpoint, verifyEmailRequest{Correo: email, Codigo: code})
	if err != nil {
		return nil, fmt.Errorf("email verification failed: %w", err)
	}

	var response VerifyEmailResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal verification response: %w", err)
	}
	return &response, nil
}
