package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"compaexpress/lib/api"
	"compaexpress/lib/data"
	"compaexpress/lib/models"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
)

const (
	msgEmptyBody       = "El cuerpo de la solicitud está vacío"
	msgEmailRequired   = "El correo electrónico es requerido"
	msgUserNotFound    = "Usuario no encontrado"
	msgDeactivateError = "Error al desactivar el usuario"
)

// Handler disables the Cognito user that owns an email address
type Handler struct {
	Users  data.UserDirectoryRepository
	Logger *logrus.Logger
	NewID  func() string
}

func (h *Handler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	log := h.Logger.WithFields(logrus.Fields{
		"operation":      "DeactivateUser",
		"correlation_id": h.NewID(),
	})

	if strings.TrimSpace(request.Body) == "" {
		return api.ErrorResponse(http.StatusBadRequest, msgEmptyBody, h.Logger), nil
	}

	var req models.DeactivateUserRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		log.WithError(err).Error("Invalid request body")
		return api.ErrorDetailsResponse(http.StatusInternalServerError, msgDeactivateError, err.Error(), h.Logger), nil
	}
	if req.Email == "" {
		return api.ErrorResponse(http.StatusBadRequest, msgEmailRequired, h.Logger), nil
	}

	username, err := h.Users.DisableUserByEmail(ctx, req.Email)
	if errors.Is(err, data.ErrUserNotFound) {
		return api.ErrorResponse(http.StatusNotFound, msgUserNotFound, h.Logger), nil
	}
	if err != nil {
		log.WithError(err).Error("Error al desactivar el usuario")
		return api.ErrorDetailsResponse(http.StatusInternalServerError, msgDeactivateError, err.Error(), h.Logger), nil
	}

	log.WithField("username", username).Info("User deactivated")
	return api.SuccessResponse(http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("El usuario con correo %s ha sido desactivado", req.Email),
	}, h.Logger), nil
}
