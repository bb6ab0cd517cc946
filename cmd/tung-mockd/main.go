// Command tung-mockd serves the in-memory mock of the TUNG backend, for
// local development against the SDK without the real API.
package main

import (
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/tungdeportes/tung-go/internal/mockapi"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	addr := os.Getenv("TUNG_MOCKD_ADDR")
	if addr == "" {
		addr = ":8081"
	}

	server := mockapi.New(log)
	log.Info().Str("addr", addr).Msg("mock TUNG backend listening")
	if err := http.ListenAndServe(addr, server.Handler()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
