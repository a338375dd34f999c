package clients

import (
	"compaexpress/lib/constants"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
)

// NewCognitoIdentityProviderClient creates the Cognito client reused across invocations
func NewCognitoIdentityProviderClient(isLocal bool, region string) *cognitoidentityprovider.Client {
	cfg := LoadAWSConfig(region)

	if isLocal {
		cfg.BaseEndpoint = aws.String(constants.LOCALSTACK_URL)
	}

	return cognitoidentityprovider.NewFromConfig(cfg)
}
