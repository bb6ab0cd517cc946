package registration

import (
	"fmt"
	"strings"
	"time"
)

// Backend vocabulary tables. The form layer speaks English enum keys; the
// backend expects the Spanish vocabulary below.
var genderToBackend = map[Gender]string{
	GenderMale:   "MASCULINO",
	GenderFemale: "FEMENINO",
	GenderOther:  "OTRO",
}

var positionToBackend = map[Position]string{
	PositionGoalkeeper: "PORTERO",
	PositionDefender:   "DEFENSA",
	PositionMidfielder: "CENTROCAMPISTA",
	PositionForward:    "DELANTERO",
	// Known to the backend but not selectable in any form today.
	"shuttlecock": "VOLANTE",
}

// UsuarioRequest is the user sub-object shared by both creation payloads.
type UsuarioRequest struct {
	Nombre          string  `json:"nombre"`
	Apellido        string  `json:"apellido"`
	Correo          string  `json:"correo"`
	Contrasenia     string  `json:"contrasenia"`
	Documento       string  `json:"documento"`
	Celular         string  `json:"celular"`
	FechaNacimiento string  `json:"fechaNacimiento"`
	Edad            int     `json:"edad"`
	Genero          string  `json:"genero"`
	RolID           string  `json:"rolId"`
	FotoPerfil      *string `json:"fotoPerfil,omitempty"`
}

// JugadorRequest carries the player-specific fields. Exactly one of the two
// stat blocks is populated depending on position; nil fields are dropped
// from the serialized payload.
type JugadorRequest struct {
	Apodo    string   `json:"apodo"`
	Posicion string   `json:"posicion"`
	Estatura *float64 `json:"estatura,omitempty"`
	Peso     *float64 `json:"peso,omitempty"`

	// Outfield block.
	Ritmo   *int `json:"ritmo,omitempty"`
	Tiro    *int `json:"tiro,omitempty"`
	Pase    *int `json:"pase,omitempty"`
	Regates *int `json:"regates,omitempty"`
	Defensa *int `json:"defensa,omitempty"`
	Fisico  *int `json:"fisico,omitempty"`

	// Goalkeeper block.
	Estirada        *int `json:"estirada,omitempty"`
	Paradas         *int `json:"paradas,omitempty"`
	Reflejos        *int `json:"reflejos,omitempty"`
	Velocidad       *int `json:"velocidad,omitempty"`
	Saque           *int `json:"saque,omitempty"`
	Posicionamiento *int `json:"posicionamiento,omitempty"`
}

type CreatePlayerRequest struct {
	Usuario UsuarioRequest `json:"usuario"`
	Jugador JugadorRequest `json:"jugador"`
}

// DuenioCanchaRequest carries the field-host business fields. Document URLs
// are present only when the corresponding upload succeeded.
type DuenioCanchaRequest struct {
	NombreNegocio            string   `json:"nombreNegocio"`
	NIT                      string   `json:"nit"`
	Direccion                string   `json:"direccion"`
	Latitud                  float64  `json:"latitud"`
	Longitud                 float64  `json:"longitud"`
	RutURL                   *string  `json:"rutUrl,omitempty"`
	CamaraComercioURL        *string  `json:"camaraComercioUrl,omitempty"`
	CertificacionBancariaURL *string  `json:"certificacionBancariaUrl,omitempty"`
	CedulaRepresentanteURL   *string  `json:"cedulaRepresentanteUrl,omitempty"`
	FotosEstablecimiento     []string `json:"fotosEstablecimiento,omitempty"`
}

type CreateHostRequest struct {
	Usuario      UsuarioRequest      `json:"usuario"`
	DuenioCancha DuenioCanchaRequest `json:"duenioCancha"`
}

// CreatedAccount is what the backend reports after a successful creation.
type CreatedAccount struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// PlayerUploads holds the result of the optional attachment uploads for a
// player registration.
type PlayerUploads struct {
	ProfilePictureURL *string
}

// HostUploads holds the upload results for a host registration. Nil entries
// mean the upload failed or was never attempted.
type HostUploads struct {
	ProfilePictureURL      *string
	RUTURL                 *string
	ChamberCertURL         *string
	BankCertURL            *string
	LegalIDURL             *string
	EstablishmentPhotoURLs []string
}

// MapPlayerForm translates a validated player form into the backend payload.
// It re-checks the fields it cannot map without: callers are expected to
// have validated already, but whitespace-only values would otherwise slip
// through and produce a nonsense request.
func MapPlayerForm(f PlayerForm, uploads PlayerUploads, roleID string, now time.Time) (*CreatePlayerRequest, error) {
	usuario, err := mapUsuario(
		f.FirstName, f.LastName, f.Email, f.Password,
		f.DocumentNumber, f.Phone, f.BirthDate, f.Gender,
		roleID, now,
	)
	if err != nil {
		return nil, fmt.Errorf("map player: %w", err)
	}
	usuario.FotoPerfil = uploads.ProfilePictureURL

	nickname := strings.TrimSpace(f.Nickname)
	if nickname == "" {
		return nil, fmt.Errorf("map player: nickname is empty")
	}
	posicion, ok := positionToBackend[f.Position]
	if !ok {
		return nil, fmt.Errorf("map player: unmapped position %q", f.Position)
	}

	jugador := JugadorRequest{
		Apodo:    nickname,
		Posicion: posicion,
	}
	if f.Height > 0 {
		jugador.Estatura = &f.Height
	}
	if f.Weight > 0 {
		jugador.Peso = &f.Weight
	}

	stats := f.Stats.Clamped()
	if f.Position == PositionGoalkeeper {
		jugador.Estirada = intPtr(stats.Pace)
		jugador.Paradas = intPtr(stats.Shooting)
		jugador.Reflejos = intPtr(stats.Passing)
		jugador.Velocidad = intPtr(stats.Dribbling)
		jugador.Saque = intPtr(stats.Defense)
		jugador.Posicionamiento = intPtr(stats.Physical)
	} else {
		jugador.Ritmo = intPtr(stats.Pace)
		jugador.Tiro = intPtr(stats.Shooting)
		jugador.Pase = intPtr(stats.Passing)
		jugador.Regates = intPtr(stats.Dribbling)
		jugador.Defensa = intPtr(stats.Defense)
		jugador.Fisico = intPtr(stats.Physical)
	}

	return &CreatePlayerRequest{Usuario: *usuario, Jugador: jugador}, nil
}

// MapHostForm translates a validated host form into the backend payload.
func MapHostForm(f HostForm, uploads HostUploads, roleID string, now time.Time) (*CreateHostRequest, error) {
	usuario, err := mapUsuario(
		f.AdminFirstName, f.AdminLastName, f.AdminEmail, f.AdminPassword,
		f.AdminDocumentNumber, f.AdminPhone, f.AdminBirthDate, f.AdminGender,
		roleID, now,
	)
	if err != nil {
		return nil, fmt.Errorf("map host: %w", err)
	}
	usuario.FotoPerfil = uploads.ProfilePictureURL

	businessName := strings.TrimSpace(f.BusinessName)
	if businessName == "" {
		return nil, fmt.Errorf("map host: business name is empty")
	}
	nit := strings.TrimSpace(f.NIT)
	if nit == "" {
		return nil, fmt.Errorf("map host: NIT is empty")
	}
	address := strings.TrimSpace(f.Address)
	if address == "" {
		return nil, fmt.Errorf("map host: address is empty")
	}
	if f.Latitude == 0 && f.Longitude == 0 {
		return nil, fmt.Errorf("map host: coordinates are missing")
	}

	duenio := DuenioCanchaRequest{
		NombreNegocio:            businessName,
		NIT:                      nit,
		Direccion:                address,
		Latitud:                  f.Latitude,
		Longitud:                 f.Longitude,
		RutURL:                   uploads.RUTURL,
		CamaraComercioURL:        uploads.ChamberCertURL,
		CertificacionBancariaURL: uploads.BankCertURL,
		CedulaRepresentanteURL:   uploads.LegalIDURL,
		FotosEstablecimiento:     uploads.EstablishmentPhotoURLs,
	}

	return &CreateHostRequest{Usuario: *usuario, DuenioCancha: duenio}, nil
}

func mapUsuario(firstName, lastName, email, password, document, phone string, birth time.Time, gender Gender, roleID string, now time.Time) (*UsuarioRequest, error) {
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return nil, fmt.Errorf("first name is empty")
	}
	lastName = strings.TrimSpace(lastName)
	if lastName == "" {
		return nil, fmt.Errorf("last name is empty")
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("email is empty")
	}
	document = strings.TrimSpace(document)
	if document == "" {
		return nil, fmt.Errorf("document number is empty")
	}
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, fmt.Errorf("phone is empty")
	}
	if birth.IsZero() {
		return nil, fmt.Errorf("birth date is missing")
	}
	genero, ok := genderToBackend[gender]
	if !ok {
		return nil, fmt.Errorf("unmapped gender %q", gender)
	}
	if roleID == "" {
		return nil, fmt.Errorf("role identifier is not configured")
	}

	return &UsuarioRequest{
		Nombre:          firstName,
		Apellido:        lastName,
		Correo:          email,
		Contrasenia:     password,
		Documento:       document,
		Celular:         phone,
		FechaNacimiento: FormatBirthDate(birth),
		Edad:            Age(birth, now),
		Genero:          genero,
		RolID:           roleID,
	}, nil
}

func intPtr(v int) *int {
	return &v
}
