package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"compaexpress/lib/api"
	"compaexpress/lib/data"
	"compaexpress/lib/models"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
)

const (
	msgRequiredFields = "username and groupName are required"
	msgAssignError    = "Error assigning user to group"
)

// Handler confirms a pending signup and adds the user to a Cognito group
type Handler struct {
	Users  data.UserDirectoryRepository
	Logger *logrus.Logger
	NewID  func() string
}

func (h *Handler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	log := h.Logger.WithFields(logrus.Fields{
		"operation":      "AdminAssign",
		"correlation_id": h.NewID(),
	})

	var req models.AssignGroupRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		log.WithError(err).Error("Invalid request body")
		return api.ErrorDetailsResponse(http.StatusInternalServerError, msgAssignError, err.Error(), h.Logger), nil
	}

	if req.Username == "" || req.GroupName == "" {
		log.Warn("Missing username or groupName")
		return api.ErrorResponse(http.StatusBadRequest, msgRequiredFields, h.Logger), nil
	}

	if err := h.Users.ConfirmAndAssignGroup(ctx, req.Username, req.GroupName); err != nil {
		log.WithError(err).WithField("username", req.Username).Error("Error assigning user to group")
		return api.ErrorDetailsResponse(http.StatusInternalServerError, msgAssignError, err.Error(), h.Logger), nil
	}

	return api.SuccessResponse(http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("User %s confirmed and added to %s", req.Username, req.GroupName),
	}, h.Logger), nil
}
