package tung_api_client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

type Role struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// GetRoles fetches all role metadata.
func (c *TungApiClient) GetRoles(ctx context.Context) ([]Role, error) {
	body, err := c.Get(ctx, RolesEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get roles: %w", err)
	}

	var roles []Role
	if err := json.Unmarshal(body, &roles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roles: %w, raw response: %s", err, string(body))
	}
	return roles, nil
}

// GetRole fetches a single role by its identifier.
func (c *TungApiClient) GetRole(ctx context.Context, id string) (*Role, error) {
	body, err := c.Get(ctx, RoleByEndpoint+url.PathEscape(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get role %s: %w", id, err)
	}

	var role Role
	if err := json.Unmarshal(body, &role); err != nil {
		return nil, fmt.Errorf("failed to unmarshal role: %w, raw response: %s", err, string(body))
	}
	return &role, nil
}
