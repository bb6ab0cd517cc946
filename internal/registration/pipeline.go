package registration

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// Response is the uniform result shape handed back to the caller after a
// registration attempt. Message is always user-presentable.
type Response[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *T       `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// AttachmentUploader is what the pipeline needs from the uploads service.
// Both methods degrade gracefully: a failed upload yields a nil URL (or a
// shorter URL list) and never an error.
type AttachmentUploader interface {
	UploadImage(ctx context.Context, path string) *string
	UploadImages(ctx context.Context, paths []string) []string
}

// Pipeline drives one registration flow: validate, upload attachments, map
// to the backend shape, submit, classify failures. The player and host
// flows are the same machine with different rule sets and mappers, so the
// age logic and orchestration can never drift between them.
type Pipeline[F any, U any, R any] struct {
	role     string
	validate func(F, time.Time) ValidationResult
	upload   func(context.Context, F) U
	mapForm  func(F, U, time.Time) (R, error)
	submit   func(context.Context, R) (*CreatedAccount, error)
	clock    clockwork.Clock
	log      zerolog.Logger
}

// Register runs the flow end to end. Validation failures short-circuit
// before any network call; upload failures never abort the attempt; every
// later failure is terminal and classified into a user-facing message.
func (p *Pipeline[F, U, R]) Register(ctx context.Context, form F) Response[CreatedAccount] {
	now := p.clock.Now()

	result := p.validate(form, now)
	if !result.Valid {
		p.log.Warn().
			Str("role", p.role).
			Int("error_count", len(result.Errors)).
			Msg("registration form rejected")
		return Response[CreatedAccount]{Success: false, Message: MsgValidationFailed, Errors: result.Errors}
	}

	uploads := p.upload(ctx, form)

	req, err := p.mapForm(form, uploads, now)
	if err != nil {
		p.log.Error().Err(err).Str("role", p.role).Msg("form mapping failed after validation")
		return Response[CreatedAccount]{Success: false, Message: MsgInvalidData}
	}

	account, err := p.submit(ctx, req)
	if err != nil {
		p.log.Error().Err(err).Str("role", p.role).Msg("registration submit failed")
		return Response[CreatedAccount]{Success: false, Message: ClassifyError(err)}
	}

	p.log.Info().Str("role", p.role).Str("account_id", account.ID).Msg("registration completed")
	return Response[CreatedAccount]{Success: true, Message: MsgRegistered, Data: account}
}

// PlayerCreator and HostCreator are the two submit operations the pipelines
// need from the API client.
type PlayerCreator interface {
	CreatePlayer(ctx context.Context, req *CreatePlayerRequest) (*CreatedAccount, error)
}

type HostCreator interface {
	CreateHost(ctx context.Context, req *CreateHostRequest) (*CreatedAccount, error)
}

// NewPlayerPipeline wires the player rule set and mapper into a pipeline.
// roleID is the backend role identifier assigned to new players.
func NewPlayerPipeline(api PlayerCreator, uploader AttachmentUploader, roleID string, clock clockwork.Clock, log zerolog.Logger) *Pipeline[PlayerForm, PlayerUploads, *CreatePlayerRequest] {
	return &Pipeline[PlayerForm, PlayerUploads, *CreatePlayerRequest]{
		role:     "player",
		validate: ValidatePlayerForm,
		upload: func(ctx context.Context, f PlayerForm) PlayerUploads {
			return PlayerUploads{ProfilePictureURL: uploader.UploadImage(ctx, f.ProfileImagePath)}
		},
		mapForm: func(f PlayerForm, u PlayerUploads, now time.Time) (*CreatePlayerRequest, error) {
			return MapPlayerForm(f, u, roleID, now)
		},
		submit: api.CreatePlayer,
		clock:  clock,
		log:    log,
	}
}

// NewHostPipeline wires the host rule set and mapper into a pipeline.
// Host registrations upload the business documents one by one; the photo
// gallery goes through the sequential batch path.
func NewHostPipeline(api HostCreator, uploader AttachmentUploader, roleID string, clock clockwork.Clock, log zerolog.Logger) *Pipeline[HostForm, HostUploads, *CreateHostRequest] {
	return &Pipeline[HostForm, HostUploads, *CreateHostRequest]{
		role:     "host",
		validate: ValidateHostForm,
		upload: func(ctx context.Context, f HostForm) HostUploads {
			return HostUploads{
				ProfilePictureURL:      uploader.UploadImage(ctx, f.ProfileImagePath),
				RUTURL:                 uploader.UploadImage(ctx, f.RUTPath),
				ChamberCertURL:         uploader.UploadImage(ctx, f.ChamberCertPath),
				BankCertURL:            uploader.UploadImage(ctx, f.BankCertPath),
				LegalIDURL:             uploader.UploadImage(ctx, f.LegalIDPath),
				EstablishmentPhotoURLs: uploader.UploadImages(ctx, f.EstablishmentPhotoPaths),
			}
		},
		mapForm: func(f HostForm, u HostUploads, now time.Time) (*CreateHostRequest, error) {
			return MapHostForm(f, u, roleID, now)
		},
		submit: api.CreateHost,
		clock:  clock,
		log:    log,
	}
}
