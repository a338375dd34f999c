package models

import (
	"time"
)

// UserSummary is the public shape of a Cognito user returned by the get-users endpoint
type UserSummary struct {
	ID        string     `json:"id"`        // Cognito sub attribute
	Username  string     `json:"username"`  // Cognito username
	Enabled   bool       `json:"enabled"`   // Whether sign-in is allowed
	Status    string     `json:"status"`    // Cognito UserStatus, "UNKNOWN" when absent
	CreatedAt *time.Time `json:"createdAt"` // Null when Cognito does not report it
	Email     string     `json:"email"`     // email attribute
	NegocioID *string    `json:"negocioId"` // custom:negocioid attribute, null when unset
}

// UserListResponse wraps the listed users
type UserListResponse struct {
	Users []UserSummary `json:"users"`
}

// UserFilter narrows the user listing. Empty fields do not filter.
type UserFilter struct {
	GroupName string
	NegocioID string
}

// AssignGroupRequest is the body of the admin-assign endpoint
type AssignGroupRequest struct {
	Username  string `json:"username"`
	GroupName string `json:"groupName"`
}

// DeactivateUserRequest is the body of the deactivate-user endpoint
type DeactivateUserRequest struct {
	Email string `json:"email"`
}

// MessageResponse is a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}
