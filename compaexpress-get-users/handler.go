package main

import (
	"context"
	"net/http"

	"compaexpress/lib/api"
	"compaexpress/lib/data"
	"compaexpress/lib/models"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
)

// Handler lists Cognito users, optionally narrowed by group and negocio
type Handler struct {
	Users  data.UserDirectoryRepository
	Logger *logrus.Logger
	NewID  func() string
}

func (h *Handler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	filter := models.UserFilter{
		GroupName: request.QueryStringParameters["groupName"],
		NegocioID: request.QueryStringParameters["negocioId"],
	}
	log := h.Logger.WithFields(logrus.Fields{
		"operation":      "GetUsers",
		"correlation_id": h.NewID(),
		"group_name":     filter.GroupName,
		"negocio_id":     filter.NegocioID,
	})

	users, err := h.Users.ListUsers(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Error listing users")
		return api.ErrorDetailsResponse(http.StatusInternalServerError, err.Error(), api.ErrorKind(err), h.Logger), nil
	}
	if users == nil {
		users = []models.UserSummary{}
	}

	log.WithField("user_count", len(users)).Debug("Listed users")
	return api.SuccessResponse(http.StatusOK, models.UserListResponse{Users: users}, h.Logger), nil
}
