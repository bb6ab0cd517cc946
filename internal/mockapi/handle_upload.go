package mockapi

import (
	"net/http"

	"github.com/google/uuid"
)

const maxUploadBytes = 10 << 20

func (s *Server) handleUploadSingle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"urls":    []string{},
			"message": "Formulario inválido",
		})
		return
	}

	file, header, err := r.FormFile("foto")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"urls":    []string{},
			"message": "Falta el campo foto",
		})
		return
	}
	defer file.Close()

	// Content is discarded; only the URL matters to the SDK.
	url := "https://cdn.tungdeportes.com/fotos/" + uuid.NewString() + "_" + header.Filename
	s.log.Info().Str("filename", header.Filename).Msg("mock upload")

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"urls":    []string{url},
		"message": "Foto subida",
	})
}
