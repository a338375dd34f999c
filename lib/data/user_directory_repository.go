package data

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"compaexpress/lib/constants"
	"compaexpress/lib/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/sirupsen/logrus"
)

// ErrUserNotFound is returned when no Cognito user matches the lookup
var ErrUserNotFound = errors.New("user not found")

// UserDirectoryRepository defines the Cognito user pool operations used by the admin handlers
type UserDirectoryRepository interface {
	// ConfirmAndAssignGroup confirms a pending signup and adds the user to a group
	ConfirmAndAssignGroup(ctx context.Context, username, groupName string) error

	// DisableUserByEmail finds the user with the email and disables it, returning its username
	DisableUserByEmail(ctx context.Context, email string) (string, error)

	// ListUsers lists every user matching the filter, following pagination to the end
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.UserSummary, error)
}

// CognitoClientInterface is the subset of the Cognito SDK client used by UserDirectoryDao
type CognitoClientInterface interface {
	AdminConfirmSignUp(ctx context.Context, params *cognitoidentityprovider.AdminConfirmSignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminConfirmSignUpOutput, error)
	AdminAddUserToGroup(ctx context.Context, params *cognitoidentityprovider.AdminAddUserToGroupInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminAddUserToGroupOutput, error)
	AdminDisableUser(ctx context.Context, params *cognitoidentityprovider.AdminDisableUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminDisableUserOutput, error)
	ListUsers(ctx context.Context, params *cognitoidentityprovider.ListUsersInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ListUsersOutput, error)
	ListUsersInGroup(ctx context.Context, params *cognitoidentityprovider.ListUsersInGroupInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ListUsersInGroupOutput, error)
}

// UserDirectoryDao implements UserDirectoryRepository against a Cognito user pool
type UserDirectoryDao struct {
	CognitoClient CognitoClientInterface
	UserPoolID    string
	Logger        *logrus.Logger
}

// ConfirmAndAssignGroup confirms the signup first, then adds the group membership
func (dao *UserDirectoryDao) ConfirmAndAssignGroup(ctx context.Context, username, groupName string) error {
	_, err := dao.CognitoClient.AdminConfirmSignUp(ctx, &cognitoidentityprovider.AdminConfirmSignUpInput{
		UserPoolId: aws.String(dao.UserPoolID),
		Username:   aws.String(username),
	})
	if err != nil {
		return fmt.Errorf("failed to confirm user %s: %w", username, err)
	}

	_, err = dao.CognitoClient.AdminAddUserToGroup(ctx, &cognitoidentityprovider.AdminAddUserToGroupInput{
		UserPoolId: aws.String(dao.UserPoolID),
		Username:   aws.String(username),
		GroupName:  aws.String(groupName),
	})
	if err != nil {
		return fmt.Errorf("failed to add user %s to group %s: %w", username, groupName, err)
	}

	dao.Logger.WithFields(logrus.Fields{
		"username":   username,
		"group_name": groupName,
	}).Info("Successfully confirmed user and added to group")

	return nil
}

// DisableUserByEmail disables the first user whose email attribute matches
func (dao *UserDirectoryDao) DisableUserByEmail(ctx context.Context, email string) (string, error) {
	output, err := dao.CognitoClient.ListUsers(ctx, &cognitoidentityprovider.ListUsersInput{
		UserPoolId: aws.String(dao.UserPoolID),
		Filter:     aws.String(EmailFilter(email)),
		Limit:      aws.Int32(1),
	})
	if err != nil {
		return "", fmt.Errorf("failed to look up user by email: %w", err)
	}

	if len(output.Users) == 0 {
		dao.Logger.WithField("email", email).Warn("User not found for deactivation")
		return "", ErrUserNotFound
	}

	username := aws.ToString(output.Users[0].Username)
	_, err = dao.CognitoClient.AdminDisableUser(ctx, &cognitoidentityprovider.AdminDisableUserInput{
		UserPoolId: aws.String(dao.UserPoolID),
		Username:   aws.String(username),
	})
	if err != nil {
		return "", fmt.Errorf("failed to disable user %s: %w", username, err)
	}

	dao.Logger.WithFields(logrus.Fields{
		"email":    email,
		"username": username,
	}).Info("Successfully disabled user")

	return username, nil
}

// ListUsers pages through the group membership when a group is given, otherwise through
// the whole pool. The negocio filter is applied in memory because Cognito cannot filter
// on custom attributes.
func (dao *UserDirectoryDao) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.UserSummary, error) {
	var (
		users []types.UserType
		err   error
	)

	if filter.GroupName != "" {
		users, err = dao.listUsersInGroup(ctx, filter.GroupName)
	} else {
		users, err = dao.listAllUsers(ctx)
	}
	if err != nil {
		return nil, err
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, user := range users {
		if filter.NegocioID != "" && attributeValue(user.Attributes, constants.ATTR_NEGOCIO_ID) != filter.NegocioID {
			continue
		}
		summaries = append(summaries, ToUserSummary(user))
	}

	dao.Logger.WithFields(logrus.Fields{
		"group_name": filter.GroupName,
		"negocio_id": filter.NegocioID,
		"count":      len(summaries),
	}).Debug("Successfully listed users")

	return summaries, nil
}

func (dao *UserDirectoryDao) listUsersInGroup(ctx context.Context, groupName string) ([]types.UserType, error) {
	var users []types.UserType
	input := &cognitoidentityprovider.ListUsersInGroupInput{
		UserPoolId: aws.String(dao.UserPoolID),
		GroupName:  aws.String(groupName),
		Limit:      aws.Int32(constants.COGNITO_PAGE_LIMIT),
	}

	for {
		output, err := dao.CognitoClient.ListUsersInGroup(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to list users in group %s: %w", groupName, err)
		}
		users = append(users, output.Users...)

		if aws.ToString(output.NextToken) == "" {
			break
		}
		input.NextToken = output.NextToken
	}
	return users, nil
}

func (dao *UserDirectoryDao) listAllUsers(ctx context.Context) ([]types.UserType, error) {
	var users []types.UserType
	input := &cognitoidentityprovider.ListUsersInput{
		UserPoolId: aws.String(dao.UserPoolID),
		Limit:      aws.Int32(constants.COGNITO_PAGE_LIMIT),
	}

	for {
		output, err := dao.CognitoClient.ListUsers(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		users = append(users, output.Users...)

		if aws.ToString(output.PaginationToken) == "" {
			break
		}
		input.PaginationToken = output.PaginationToken
	}
	return users, nil
}

// ToUserSummary maps a Cognito user record to its public shape
func ToUserSummary(user types.UserType) models.UserSummary {
	status := string(user.UserStatus)
	if status == "" {
		status = constants.USER_STATUS_NONE
	}

	var negocioID *string
	if value := attributeValue(user.Attributes, constants.ATTR_NEGOCIO_ID); value != "" {
		negocioID = aws.String(value)
	}

	return models.UserSummary{
		ID:        attributeValue(user.Attributes, constants.ATTR_SUB),
		Username:  aws.ToString(user.Username),
		Enabled:   user.Enabled,
		Status:    status,
		CreatedAt: user.UserCreateDate,
		Email:     attributeValue(user.Attributes, constants.ATTR_EMAIL),
		NegocioID: negocioID,
	}
}

// EmailFilter builds the Cognito ListUsers filter expression for an exact email match
func EmailFilter(email string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(email)
	return fmt.Sprintf(`email = "%s"`, escaped)
}

func findAttribute(attributes []types.AttributeType, name string) (string, bool) {
	for _, attribute := range attributes {
		if aws.ToString(attribute.Name) == name && attribute.Value != nil {
			return *attribute.Value, true
		}
	}
	return "", false
}

func attributeValue(attributes []types.AttributeType, name string) string {
	value, _ := findAttribute(attributes, name)
	return value
}
