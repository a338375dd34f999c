package clients

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockS3API struct {
	Objects     map[string]string
	ContentType string
	PutInput    *s3.PutObjectInput
	PutBody     []byte
	Fail        bool
}

func (m *MockS3API) GetObject(ctx context.Context, input *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if m.Fail {
		return nil, errors.New("NoSuchKey")
	}
	body, ok := m.Objects[aws.ToString(input.Key)]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{
		Body:        io.NopCloser(strings.NewReader(body)),
		ContentType: aws.String(m.ContentType),
	}, nil
}

func (m *MockS3API) PutObject(ctx context.Context, input *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if m.Fail {
		return nil, errors.New("AccessDenied")
	}
	m.PutInput = input
	m.PutBody, _ = io.ReadAll(input.Body)
	return &s3.PutObjectOutput{}, nil
}

func Test_GetObject_Success(t *testing.T) {
	//Arrange
	mock := &MockS3API{Objects: map[string]string{"logos/acme.png": "png-bytes"}, ContentType: "image/png"}
	client := NewS3ClientWithAPI(mock, "bucket")

	//Act
	body, contentType, err := client.GetObject(context.Background(), "logos/acme.png")

	//Assert
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(body))
	assert.Equal(t, "image/png", contentType)
}

func Test_GetObject_Failure(t *testing.T) {
	client := NewS3ClientWithAPI(&MockS3API{}, "bucket")

	_, _, err := client.GetObject(context.Background(), "missing")

	assert.EqualError(t, err, "failed to get object missing: NoSuchKey")
}

func Test_PutObject_Success(t *testing.T) {
	mock := &MockS3API{}
	client := NewS3ClientWithAPI(mock, "invoices-bucket")

	err := client.PutObject(context.Background(), "invoices/Acme/1/1700000000000.pdf", []byte("%PDF"), "application/pdf")

	require.NoError(t, err)
	assert.Equal(t, "invoices-bucket", aws.ToString(mock.PutInput.Bucket))
	assert.Equal(t, "invoices/Acme/1/1700000000000.pdf", aws.ToString(mock.PutInput.Key))
	assert.Equal(t, "application/pdf", aws.ToString(mock.PutInput.ContentType))
	assert.Equal(t, int64(4), aws.ToInt64(mock.PutInput.ContentLength))
	assert.Equal(t, "%PDF", string(mock.PutBody))
}

func Test_PutObject_Failure(t *testing.T) {
	client := NewS3ClientWithAPI(&MockS3API{Fail: true}, "bucket")

	err := client.PutObject(context.Background(), "k", []byte("x"), "application/pdf")

	assert.EqualError(t, err, "failed to put object k: AccessDenied")
}
