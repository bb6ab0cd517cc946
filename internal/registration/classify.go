package registration

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/tungdeportes/tung-go/clients"
)

// User-facing messages for the fixed error taxonomy. The backend returns
// inconsistent error bodies, so classification works from the HTTP status
// when available and falls back to message substrings.
const (
	MsgValidationFailed   = "Datos inválidos"
	MsgInvalidData        = "Los datos proporcionados no son válidos."
	MsgDuplicate          = "Ya existe un usuario con este correo o documento."
	MsgServerError        = "Error del servidor. Intenta más tarde."
	MsgNetworkError       = "Error de conexión. Verifica tu internet e intenta nuevamente."
	MsgTimeout            = "La solicitud tardó demasiado. Intenta nuevamente."
	MsgInvalidCredentials = "Credenciales inválidas."
	MsgUnknown            = "Ocurrió un error inesperado. Intenta nuevamente."
	MsgRegistered         = "Registro exitoso"
)

// ClassifyError maps any error from the submit phase to one of the fixed
// user-facing messages. It is deterministic: the same error text always
// lands in the same bucket.
func ClassifyError(err error) string {
	if err == nil {
		return MsgUnknown
	}

	var apiErr *clients.APIError
	if errors.As(err, &apiErr) {
		if msg, ok := classifyStatus(apiErr.StatusCode); ok {
			return msg
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return MsgTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return MsgTimeout
		}
		return MsgNetworkError
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "409"):
		return MsgDuplicate
	case strings.Contains(msg, "401"):
		return MsgInvalidCredentials
	case strings.Contains(msg, "400"):
		return MsgInvalidData
	case strings.Contains(msg, "500"):
		return MsgServerError
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline"):
		return MsgTimeout
	case strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "no such host"),
		strings.Contains(msg, "network"):
		return MsgNetworkError
	}

	// Short backend messages without transport noise are shown as-is;
	// anything else collapses to the generic fallback.
	if len(msg) <= 100 && !strings.Contains(msg, "HTTP") {
		return msg
	}
	return MsgUnknown
}

func classifyStatus(status int) (string, bool) {
	switch {
	case status == 400:
		return MsgInvalidData, true
	case status == 401:
		return MsgInvalidCredentials, true
	case status == 409:
		return MsgDuplicate, true
	case status == 408:
		return MsgTimeout, true
	case status >= 500:
		return MsgServerError, true
	}
	return "", false
}
