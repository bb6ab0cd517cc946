package tung_api_client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tungdeportes/tung-go/internal/registration"
)

type createAccountResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		ID     string `json:"id"`
		Correo string `json:"correo"`
	} `json:"data"`
}

// CreatePlayer registers a new player account.
func (c *TungApiClient) CreatePlayer(ctx context.Context, req *registration.CreatePlayerRequest) (*registration.CreatedAccount, error) {
	body, err := c.postJSON(ctx, CreatePlayerEndpoint, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return decodeCreatedAccount(body)
}

// CreateHost registers a new field-host account.
func (c *TungApiClient) CreateHost(ctx context.Context, req *registration.CreateHostRequest) (*registration.CreatedAccount, error) {
	body, err := c.postJSON(ctx, CreateHostEndpoint, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create host: %w", err)
	}
	return decodeCreatedAccount(body)
}

func decodeCreatedAccount(body []byte) (*registration.CreatedAccount, error) {
	var response createAccountResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}
	return &registration.CreatedAccount{
		ID:    response.Data.ID,
		Email: response.Data.Correo,
	}, nil
}
