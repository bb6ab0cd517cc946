// Package uploads moves optional attachments to the backend before a
// registration is submitted. Failures here never fail a registration: a
// missing URL just means the corresponding field is left out of the payload.
package uploads

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// PhotoAPI is the single-file upload primitive, implemented by the TUNG API
// client.
type PhotoAPI interface {
	UploadPhoto(ctx context.Context, filename string, content io.Reader) (string, error)
}

type Service struct {
	api PhotoAPI
	log zerolog.Logger
}

func NewService(api PhotoAPI, log zerolog.Logger) *Service {
	return &Service{api: api, log: log}
}

// UploadImage uploads one local file and returns its backend URL, or nil on
// any failure. It never returns an error: callers treat "no URL" as "skip
// this optional attachment".
func (s *Service) UploadImage(ctx context.Context, path string) *string {
	if path == "" {
		return nil
	}

	file, err := os.Open(path)
	if err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("could not open attachment, skipping")
		return nil
	}
	defer file.Close()

	url, err := s.api.UploadPhoto(ctx, filepath.Base(path), file)
	if err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("attachment upload failed, skipping")
		return nil
	}
	if url == "" {
		s.log.Warn().Str("path", path).Msg("upload returned no URL, skipping")
		return nil
	}

	return &url
}

// UploadImages uploads a batch strictly one file at a time, skipping
// failures, and returns the URLs that succeeded in their original relative
// order. Files are never uploaded concurrently.
func (s *Service) UploadImages(ctx context.Context, paths []string) []string {
	urls := make([]string, 0, len(paths))
	for _, path := range paths {
		if url := s.UploadImage(ctx, path); url != nil {
			urls = append(urls, *url)
		}
	}
	return urls
}
