package main

import (
	"os"

	"compaexpress/lib/clients"
	"compaexpress/lib/constants"
	"compaexpress/lib/data"
	"compaexpress/lib/invoice"
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

	// SSM is only read when S3_BUCKET is not set on the function
	ssmRepository := &data.SSMDao{
		SSM:    clients.NewSSMClient(isLocal, region),
		Logger: logger,
	}
	settings.Load = ssmRepository.GetParameters

	bucket, err := settings.Lookup(constants.S3_BUCKET, constants.ENV_S3_BUCKET)
	if err != nil {
		logger.WithError(err).WithField("operation", "main").Fatal("Error while getting SSM params from parameter store")
	}
	if bucket == "" {
		logger.WithField("operation", "main").Fatal("S3 bucket is not configured")
	}

	store := clients.NewS3Client(isLocal, region, bucket)
	handler := &Handler{
		Generator: invoice.NewGenerator(store, logger),
		Logger:    logger,
		NewID:     uuid.NewString,
	}

	logger.WithFields(logrus.Fields{
		"operation": "main",
		"bucket":    bucket,
		"region":    region,
	}).Debug("Generate PDF Lambda initialization completed")

	lambda.Start(handler.HandleRequest)
}
