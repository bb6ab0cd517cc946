package tung_api_client

import (
	"github.com/tungdeportes/tung-go/clients"
)

// TungApiClient talks to the TUNG backend API. All bodies are JSON except the
// photo upload endpoint, which is multipart form data.
type TungApiClient struct {
	*clients.BaseClient
}

func NewTungApiClient(baseURL string) *TungApiClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := &TungApiClient{
		BaseClient: clients.NewBaseClient(baseURL),
	}

	client.SetHeader("Accept", "application/json")

	return client
}
