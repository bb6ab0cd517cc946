// Package mockapi is an in-memory stand-in for the TUNG backend, covering
// the endpoints the SDK consumes. It exists so the CLI and the tests can
// run without the real backend; nothing is persisted.
package mockapi

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

type account struct {
	ID          string
	Correo      string
	Documento   string
	Contrasenia string
	RolID       string
}

type role struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

type Server struct {
	mu       sync.Mutex
	accounts []*account
	roles    []role
	secret   []byte
	log      zerolog.Logger
}

func New(log zerolog.Logger) *Server {
	return &Server{
		roles: []role{
			{ID: "1", Nombre: "ADMINISTRADOR", Descripcion: "Administrador de la plataforma"},
			{ID: "2", Nombre: "JUGADOR", Descripcion: "Jugador registrado"},
			{ID: "3", Nombre: "DUENIO_CANCHA", Descripcion: "Dueño de cancha"},
		},
		secret: []byte("tung-mock-secret"),
		log:    log,
	}
}

// Handler builds the full route table, CORS-wrapped like the real backend.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Post("/auth/login", s.handleLogin)
	r.Post("/auth/refresh", s.handleRefresh)
	r.Post("/auth/logout", s.handleLogout)
	r.Post("/auth/verification/verify-email", s.handleVerifyEmail)

	r.Post("/jugadores/usuario-jugador", s.handleCreatePlayer)
	r.Post("/duenios/usuario-duenio", s.handleCreateHost)

	r.Get("/roles/todos", s.handleListRoles)
	r.Get("/roles/{id}", s.handleGetRole)

	r.Post("/fotos/upload/single", s.handleUploadSingle)

	return cors.AllowAll().Handler(r)
}

func (s *Server) findByDocument(document string) *account {
	for _, a := range s.accounts {
		if a.Documento == document {
			return a
		}
	}
	return nil
}

func (s *Server) findByEmail(email string) *account {
	for _, a := range s.accounts {
		if a.Correo == email {
			return a
		}
	}
	return nil
}
