package main

import (
	"context"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
)

const (
	allowHeaders = "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token"
	allowMethods = "GET, POST, OPTIONS"
)

// Handler answers browser preflight requests for the invoice and user endpoints
type Handler struct {
	AllowedOrigins []string
	Logger         *logrus.Logger
}

// ParseOrigins splits a comma separated origin list, dropping blanks
func ParseOrigins(value string) []string {
	var origins []string
	for _, origin := range strings.Split(value, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func (h *Handler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	origin := requestOrigin(request.Headers)
	log := h.Logger.WithFields(logrus.Fields{
		"operation": "CorsPreflight",
		"origin":    origin,
	})

	if origin == "" {
		log.Warn("Origin is not present in the request headers")
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}

	for _, allowed := range h.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return events.APIGatewayProxyResponse{
				StatusCode: http.StatusOK,
				Headers: map[string]string{
					"Access-Control-Allow-Origin":  origin,
					"Access-Control-Allow-Headers": allowHeaders,
					"Access-Control-Allow-Methods": allowMethods,
				},
			}, nil
		}
	}

	log.Warn("Unauthorized origin")
	return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
}

// API Gateway does not normalise header case for REST APIs
func requestOrigin(headers map[string]string) string {
	for key, value := range headers {
		if strings.EqualFold(key, "origin") {
			return value
		}
	}
	return ""
}
