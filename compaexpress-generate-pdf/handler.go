package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"compaexpress/lib/api"
	"compaexpress/lib/invoice"
	"compaexpress/lib/models"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
)

const (
	msgMissingInput  = "Faltan datos de factura, ítems o negocio"
	msgGenerateError = "Error al generar el PDF"
)

// PDFGenerator renders a sales note and returns its storage key
type PDFGenerator interface {
	Generate(ctx context.Context, req *models.GeneratePDFRequest, correlationID string) (string, error)
}

// Handler contains the dependencies of the generate-pdf Lambda
type Handler struct {
	Generator PDFGenerator
	Logger    *logrus.Logger
	NewID     func() string
}

// HandleRequest never returns an error to the runtime; every failure is an HTTP response.
// Only a missing invoice, item list or negocio is reported as a client error.
func (h *Handler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	correlationID := h.NewID()
	log := h.Logger.WithFields(logrus.Fields{
		"operation":      "GeneratePDF",
		"correlation_id": correlationID,
		"request_id":     request.RequestContext.RequestID,
	})
	log.Info("Generate PDF request received")

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(request.Body), &fields); err != nil {
		log.WithError(err).Error("Invalid request body")
		return api.ErrorResponse(http.StatusInternalServerError, msgGenerateError, h.Logger), nil
	}
	// presence is checked before types so a malformed field that is also incomplete is a 400
	if missingTopLevel(fields) {
		log.Warn("Missing invoice data")
		return api.ErrorResponse(http.StatusBadRequest, msgMissingInput, h.Logger), nil
	}

	var req models.GeneratePDFRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		log.WithError(err).Error("Invalid request body")
		return api.ErrorResponse(http.StatusInternalServerError, msgGenerateError, h.Logger), nil
	}

	key, err := h.Generator.Generate(ctx, &req, correlationID)
	if errors.Is(err, invoice.ErrMissingInput) {
		log.WithError(err).Warn("Missing invoice data")
		return api.ErrorResponse(http.StatusBadRequest, msgMissingInput, h.Logger), nil
	}
	if err != nil {
		log.WithError(err).Error("Error generating PDF")
		return api.ErrorResponse(http.StatusInternalServerError, msgGenerateError, h.Logger), nil
	}

	return api.SuccessResponse(http.StatusOK, models.GeneratePDFResponse{PdfURL: key}, h.Logger), nil
}

var requiredFields = []string{"invoice", "invoiceItems", "negocio"}

// missingTopLevel reports whether a required field is absent or holds an empty value
// (null, false, 0 or "")
func missingTopLevel(fields map[string]json.RawMessage) bool {
	for _, name := range requiredFields {
		raw, ok := fields[name]
		if !ok {
			return true
		}
		switch string(bytes.TrimSpace(raw)) {
		case "null", "false", "0", `""`:
			return true
		}
	}
	return false
}
