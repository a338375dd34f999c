package clients

import (
	"compaexpress/lib/constants"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

func NewSSMClient(isLocal bool, region string) *ssm.Client {
	cfg := LoadAWSConfig(region)

	if isLocal {
		cfg.BaseEndpoint = aws.String(constants.LOCALSTACK_URL)
	}

	return ssm.NewFromConfig(cfg)
}
