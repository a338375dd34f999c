package main

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"compaexpress/lib/data"
	"compaexpress/lib/models"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockUserDirectory struct {
	Username string
	Err      error
	Email    string
	Calls    int
}

func (m *MockUserDirectory) ConfirmAndAssignGroup(ctx context.Context, username, groupName string) error {
	return errors.New("not used")
}

func (m *MockUserDirectory) DisableUserByEmail(ctx context.Context, email string) (string, error) {
	m.Calls++
	m.Email = email
	return m.Username, m.Err
}

func (m *MockUserDirectory) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.UserSummary, error) {
	return nil, errors.New("not used")
}

func newHandler(users *MockUserDirectory) *Handler {
	logger, _ := test.NewNullLogger()
	return &Handler{Users: users, Logger: logger, NewID: func() string { return "corr-id" }}
}

func Test_HandleRequest_Success(t *testing.T) {
	//Arrange
	users := &MockUserDirectory{Username: "maria"}
	h := newHandler(users)

	//Act
	resp, err := h.HandleRequest(context.Background(), events.APIGatewayProxyRequest{Body: `{"email":"maria@example.com"}`})

	//Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"El usuario con correo maria@example.com ha sido desactivado"}`, resp.Body)
	assert.Equal(t, "maria@example.com", users.Email)
}

func Test_HandleRequest_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"empty body", "", `{"error":"El cuerpo de la solicitud está vacío"}`},
		{"missing email", `{}`, `{"error":"El correo electrónico es requerido"}`},
		{"blank email", `{"email":""}`, `{"error":"El correo electrónico es requerido"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &MockUserDirectory{}
			h := newHandler(users)

			resp, err := h.HandleRequest(context.Background(), events.APIGatewayProxyRequest{Body: tt.body})

			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.JSONEq(t, tt.want, resp.Body)
			assert.Zero(t, users.Calls)
		})
	}
}

func Test_HandleRequest_NotFound(t *testing.T) {
	h := newHandler(&MockUserDirectory{Err: data.ErrUserNotFound})

	resp, err := h.HandleRequest(context.Background(), events.APIGatewayProxyRequest{Body: `{"email":"nadie@example.com"}`})

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Usuario no encontrado"}`, resp.Body)
}

func Test_HandleRequest_CognitoFailure(t *testing.T) {
	h := newHandler(&MockUserDirectory{Err: errors.New("failed to disable user maria: TooManyRequestsException")})

	resp, err := h.HandleRequest(context.Background(), events.APIGatewayProxyRequest{Body: `{"email":"maria@example.com"}`})

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Error al desactivar el usuario","details":"failed to disable user maria: TooManyRequestsException"}`, resp.Body)
}
