package constants

const (
	SSM_PARAMETER_PATH   = "/compaexpress"
	S3_BUCKET            = "/compaexpress/S3_BUCKET"
	COGNITO_USER_POOL_ID = "/compaexpress/COGNITO_USER_POOL_ID"
	ALLOWED_ORIGINS      = "/compaexpress/ALLOWED_ORIGINS"
)

// Environment variables
const (
	ENV_IS_LOCAL             = "IS_LOCAL"
	ENV_LOG_LEVEL            = "LOG_LEVEL"
	ENV_REGION               = "REGION"
	ENV_AWS_REGION           = "AWS_REGION"
	ENV_S3_BUCKET            = "S3_BUCKET"
	ENV_USER_POOL_ID         = "USER_POOL_ID"
	ENV_AMPLIFY_USER_POOL_ID = "AUTH_COMPAEXPRESS1BFC17D6_USERPOOLID"
	ENV_ALLOWED_ORIGINS      = "ALLOWED_ORIGINS"
)

const (
	DEFAULT_REGION     = "us-east-1"
	LOCALSTACK_URL     = "http://docker.for.mac.host.internal:4566"
	PDF_CONTENT_TYPE   = "application/pdf"
	COGNITO_PAGE_LIMIT = 60

	ATTR_SUB         = "sub"
	ATTR_EMAIL       = "email"
	ATTR_NEGOCIO_ID  = "custom:negocioid"
	USER_STATUS_NONE = "UNKNOWN"
)
