package mockapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type loginRequest struct {
	Documento   string `json:"documento"`
	Contrasenia string `json:"contrasenia"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type tokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type verifyEmailRequest struct {
	Correo string `json:"correo"`
	Codigo string `json:"codigo"`
}

// VerificationCode is the code the mock accepts for any email.
const VerificationCode = "000000"

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Cuerpo inválido")
		return
	}

	s.mu.Lock()
	acct := s.findByDocument(req.Documento)
	s.mu.Unlock()

	if acct == nil || acct.Contrasenia != req.Contrasenia {
		writeMessage(w, http.StatusUnauthorized, "Credenciales inválidas")
		return
	}

	s.log.Info().Str("documento", req.Documento).Msg("mock login")
	writeJSON(w, http.StatusOK, s.issueTokens(acct))
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Cuerpo inválido")
		return
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(req.RefreshToken, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || claims["typ"] != "refresh" {
		writeMessage(w, http.StatusUnauthorized, "Token de refresco inválido")
		return
	}

	sub, _ := claims.GetSubject()
	s.mu.Lock()
	var acct *account
	for _, a := range s.accounts {
		if a.ID == sub {
			acct = a
			break
		}
	}
	s.mu.Unlock()
	if acct == nil {
		writeMessage(w, http.StatusUnauthorized, "Sesión no encontrada")
		return
	}

	writeJSON(w, http.StatusOK, s.issueTokens(acct))
}

func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusOK, "Sesión cerrada")
}

func (s *Server) handleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req verifyEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Cuerpo inválido")
		return
	}

	verified := req.Codigo == VerificationCode
	message := "Correo verificado"
	if !verified {
		message = "Código incorrecto"
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": message, "verified": verified})
}

func (s *Server) issueTokens(acct *account) tokenResponse {
	now := time.Now()
	return tokenResponse{
		AccessToken:  s.signToken(acct, "access", now.Add(15*time.Minute)),
		RefreshToken: s.signToken(acct, "refresh", now.Add(7*24*time.Hour)),
	}
}

func (s *Server) signToken(acct *account, typ string, expires time.Time) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": acct.ID,
		"rol": acct.RolID,
		"typ": typ,
		"exp": expires.Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		// HS256 signing over in-memory data cannot realistically fail.
		s.log.Error().Err(err).Msg("token signing failed")
		return ""
	}
	return signed
}
