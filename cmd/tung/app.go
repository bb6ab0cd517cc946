package main

import (
	"fmt"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/tungdeportes/tung-go/clients/tung_api_client"
	"github.com/tungdeportes/tung-go/internal/auth"
	"github.com/tungdeportes/tung-go/internal/config"
	"github.com/tungdeportes/tung-go/internal/registration"
	"github.com/tungdeportes/tung-go/internal/uploads"
)

// app wires the SDK together for the CLI: one client, one session, one
// pipeline per role.
type app struct {
	cfg     *config.Config
	client  *tung_api_client.TungApiClient
	session *auth.Session
	players *registration.Pipeline[registration.PlayerForm, registration.PlayerUploads, *registration.CreatePlayerRequest]
	hosts   *registration.Pipeline[registration.HostForm, registration.HostUploads, *registration.CreateHostRequest]
	log     zerolog.Logger
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	client := tung_api_client.NewTungApiClient(cfg.BaseURL)
	client.SetTimeout(cfg.HTTPTimeout)

	clock := clockwork.NewRealClock()
	session := auth.NewSession(client, auth.NewFileStore(cfg.TokenPath), clock, log)
	client.SetTokenSource(session)

	uploader := uploads.NewService(client, log)

	return &app{
		cfg:     cfg,
		client:  client,
		session: session,
		players: registration.NewPlayerPipeline(client, uploader, cfg.Roles.PlayerRoleID, clock, log),
		hosts:   registration.NewHostPipeline(client, uploader, cfg.Roles.HostRoleID, clock, log),
		log:     log,
	}, nil
}
