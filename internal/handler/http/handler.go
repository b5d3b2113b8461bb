package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/service"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/models"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// writeInternalError sends the catch-all 500 response. The cause is
// included in the body for diagnostics, mirroring the message/error
// envelope of every other failure response.
func writeInternalError(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.ErrorResponse{
		Message: "Something went wrong!",
		Error:   err.Error(),
	}, http.StatusInternalServerError)
}

// writeMessage sends a single-message JSON body with the given status.
func writeMessage(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}

// writeEmailConflict sends the 409 envelope shared by every write path
// that hits the email uniqueness constraint.
func writeEmailConflict(w http.ResponseWriter) {
	utils.WriteJSON(w, models.ConflictResponse{
		Error:   "Email already in use",
		Message: "The email you entered is already associated with an account.",
	}, http.StatusConflict)
}
