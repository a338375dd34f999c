package main

import (
	"os"

	"compaexpress/lib/clients"
	"compaexpress/lib/constants"
	"compaexpress/lib/data"
	"compaexpress/lib/util"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func main() {
	settings := util.NewSettings(nil)
	isLocal := settings.IsLocal()
	region := settings.Region()
	logger := util.NewLogger(isLocal, os.Getenv(constants.ENV_LOG_LEVEL))

	ssmRepository := &data.SSMDao{
		SSM:    clients.NewSSMClient(isLocal, region),
		Logger: logger,
	}
	settings.Load = ssmRepository.GetParameters

	userPoolID, err := settings.Lookup(constants.COGNITO_USER_POOL_ID, constants.ENV_USER_POOL_ID, constants.ENV_AMPLIFY_USER_POOL_ID)
	if err != nil {
		logger.WithError(err).WithField("operation", "main").Fatal("Error while getting SSM params from parameter store")
	}
	if userPoolID == "" {
		logger.WithField("operation", "main").Fatal("Cognito user pool id is not configured")
	}

	handler := &Handler{
		Users: &data.UserDirectoryDao{
			CognitoClient: clients.NewCognitoIdentityProviderClient(isLocal, region),
			UserPoolID:    userPoolID,
			Logger:        logger,
		},
		Logger: logger,
		NewID:  uuid.NewString,
	}

	logger.WithFields(logrus.Fields{
		"operation": "main",
		"region":    region,
	}).Debug("Deactivate User Lambda initialization completed")

	lambda.Start(handler.HandleRequest)
}
