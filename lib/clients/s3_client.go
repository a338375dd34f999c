package clients

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"compaexpress/lib/constants"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3ClientInterface defines the object store operations used by the handlers
type S3ClientInterface interface {
	GetObject(ctx context.Context, key string) ([]byte, string, error)
	PutObject(ctx context.Context, key string, body []byte, contentType string) error
}

// S3API is the subset of the SDK client wrapped by S3Client
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Client wraps the AWS S3 client bound to a single bucket
type S3Client struct {
	svc    S3API
	bucket string
}

// NewS3Client creates a new S3 client instance
func NewS3Client(isLocal bool, region, bucket string) S3ClientInterface {
	cfg := LoadAWSConfig(region)

	var svc *s3.Client
	if isLocal {
		// LocalStack configuration
		svc = s3.NewFromConfig(cfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(constants.LOCALSTACK_URL)
			o.UsePathStyle = true
		})
	} else {
		svc = s3.NewFromConfig(cfg, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}

	return NewS3ClientWithAPI(svc, bucket)
}

// NewS3ClientWithAPI binds an existing SDK client to a bucket
func NewS3ClientWithAPI(svc S3API, bucket string) *S3Client {
	return &S3Client{
		svc:    svc,
		bucket: bucket,
	}
}

// GetObject downloads an object and returns its bytes and content type
func (client *S3Client) GetObject(ctx context.Context, key string) ([]byte, string, error) {
	output, err := client.svc.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(client.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to get object %s: %w", key, err)
	}
	defer output.Body.Close()

	body, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read object %s: %w", key, err)
	}

	return body, aws.ToString(output.ContentType), nil
}

// PutObject uploads body under key with the given content type
func (client *S3Client) PutObject(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := client.svc.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(client.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", key, err)
	}

	return nil
}
