package tung_api_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
)

type uploadResponse struct {
	Success bool     `json:"success"`
	URLs    []string `json:"urls"`
	Message string   `json:"message"`
}

// UploadPhoto uploads a single image or document and returns the URL the
// backend stored it under.
func (c *TungApiClient) UploadPhoto(ctx context.Context, filename string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(UploadFieldName, filename)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("failed to write file content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	body, err := c.Post(ctx, UploadSingleEndpoint, writer.FormDataContentType(), &buf)
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	var response uploadResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to unmarshal upload response: %w, raw response: %s", err, string(body))
	}
	if !response.Success || len(response.URLs) == 0 {
		return "", fmt.Errorf("upload rejected: %s", response.Message)
	}

	return response.URLs[0], nil
}
