package main

import (
	"os"

	"compaexpress/lib/clients"
	"compaexpress/lib/constants"
	"compaexpress/lib/data"
	"compaexpress/lib/util"

	"github.com/aws/aws-lambda-go/lambda"
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

	origins, err := settings.Lookup(constants.ALLOWED_ORIGINS, constants.ENV_ALLOWED_ORIGINS)
	if err != nil {
		logger.WithError(err).WithField("operation", "main").Fatal("Error while getting SSM params from parameter store")
	}

	handler := &Handler{
		AllowedOrigins: ParseOrigins(origins),
		Logger:         logger,
	}
	lambda.Start(handler.HandleRequest)
}
