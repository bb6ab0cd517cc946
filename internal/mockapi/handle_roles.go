package mockapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListRoles(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.roles)
}

func (s *Server) handleGetRole(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, role := range s.roles {
		if role.ID == id {
			writeJSON(w, http.StatusOK, role)
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "Rol no encontrado")
}
