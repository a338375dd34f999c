package clients

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

// LoadAWSConfig loads the default AWS configuration for the region.
// It panics on failure because every client is created during Lambda cold start.
func LoadAWSConfig(region string) aws.Config {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(region),
	)
	if err != nil {
		panic("failed to load AWS configuration: " + err.Error())
	}
	return cfg
}
