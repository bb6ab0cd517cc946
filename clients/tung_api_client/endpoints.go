package tung_api_client

const (
	// Base URL
	DefaultBaseURL = "https://back.tungdeportes.com/api"

	// Auth endpoints
	LoginEndpoint       = "/auth/login"
	RefreshEndpoint     = "/auth/refresh"
	LogoutEndpoint      = "/auth/logout"
	VerifyEmailEndpoint = "/auth/verification/verify-email"

	// Account creation endpoints
	CreatePlayerEndpoint = "/jugadores/usuario-jugador"
	CreateHostEndpoint   = "/duenios/usuario-duenio"

	// Role metadata endpoints
	RolesEndpoint  = "/roles/todos"
	RoleByEndpoint = "/roles/"

	// Photo upload
	UploadSingleEndpoint = "/fotos/upload/single"
	UploadFieldName      = "foto"
)
