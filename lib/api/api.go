package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/smithy-go"
	"github.com/sirupsen/logrus"
)

// ErrorBody is the JSON error envelope returned by every handler
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

const fallbackErrorBody = `{"error":"Internal server error"}`

func headers() map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token",
		"Access-Control-Allow-Methods": "GET,POST,PUT,DELETE,OPTIONS",
	}
}

// SuccessResponse creates a successful API Gateway response
func SuccessResponse(statusCode int, data interface{}, logger *logrus.Logger) events.APIGatewayProxyResponse {
	body, err := json.Marshal(data)
	if err != nil {
		logger.WithError(err).Error("Failed to marshal response data")
		return ErrorResponse(http.StatusInternalServerError, "Internal server error", logger)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Body:       string(body),
		Headers:    headers(),
	}
}

// ErrorResponse creates an error API Gateway response with body {"error": message}
func ErrorResponse(statusCode int, message string, logger *logrus.Logger) events.APIGatewayProxyResponse {
	return ErrorDetailsResponse(statusCode, message, "", logger)
}

// ErrorDetailsResponse creates an error API Gateway response carrying an extra details field
func ErrorDetailsResponse(statusCode int, message, details string, logger *logrus.Logger) events.APIGatewayProxyResponse {
	body, err := json.Marshal(ErrorBody{Error: message, Details: details})
	if err != nil {
		logger.WithError(err).Error("Failed to marshal error response")
		body = []byte(fallbackErrorBody)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Body:       string(body),
		Headers:    headers(),
	}
}

// ErrorKind names the error for the details field: the AWS error code when the SDK
// reported one, otherwise "Error"
func ErrorKind(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return "Error"
}
