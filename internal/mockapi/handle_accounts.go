package mockapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type usuarioPayload struct {
	Nombre      string `json:"nombre"`
	Apellido    string `json:"apellido"`
	Correo      string `json:"correo"`
	Contrasenia string `json:"contrasenia"`
	Documento   string `json:"documento"`
	RolID       string `json:"rolId"`
}

type createPlayerPayload struct {
	Usuario usuarioPayload `json:"usuario"`
	Jugador struct {
		Apodo    string `json:"apodo"`
		Posicion string `json:"posicion"`
	} `json:"jugador"`
}

type createHostPayload struct {
	Usuario      usuarioPayload `json:"usuario"`
	DuenioCancha struct {
		NombreNegocio string `json:"nombreNegocio"`
		NIT           string `json:"nit"`
	} `json:"duenioCancha"`
}

func (s *Server) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req createPlayerPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Cuerpo inválido")
		return
	}
	if missingUsuarioFields(req.Usuario) || strings.TrimSpace(req.Jugador.Apodo) == "" || strings.TrimSpace(req.Jugador.Posicion) == "" {
		writeMessage(w, http.StatusBadRequest, "Datos incompletos")
		return
	}

	s.createAccount(w, req.Usuario)
}

func (s *Server) handleCreateHost(w http.ResponseWriter, r *http.Request) {
	var req createHostPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Cuerpo inválido")
		return
	}
	if missingUsuarioFields(req.Usuario) || strings.TrimSpace(req.DuenioCancha.NombreNegocio) == "" || strings.TrimSpace(req.DuenioCancha.NIT) == "" {
		writeMessage(w, http.StatusBadRequest, "Datos incompletos")
		return
	}

	s.createAccount(w, req.Usuario)
}

func missingUsuarioFields(u usuarioPayload) bool {
	return strings.TrimSpace(u.Nombre) == "" ||
		strings.TrimSpace(u.Correo) == "" ||
		strings.TrimSpace(u.Contrasenia) == "" ||
		strings.TrimSpace(u.Documento) == ""
}

func (s *Server) createAccount(w http.ResponseWriter, u usuarioPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findByEmail(u.Correo) != nil || s.findByDocument(u.Documento) != nil {
		writeMessage(w, http.StatusConflict, "Ya existe un usuario con este correo o documento")
		return
	}

	acct := &account{
		ID:          uuid.NewString(),
		Correo:      u.Correo,
		Documento:   u.Documento,
		Contrasenia: u.Contrasenia,
		RolID:       u.RolID,
	}
	s.accounts = append(s.accounts, acct)
	s.log.Info().Str("correo", acct.Correo).Str("rol", acct.RolID).Msg("mock account created")

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Usuario creado",
		"data":    map[string]string{"id": acct.ID, "correo": acct.Correo},
	})
}
