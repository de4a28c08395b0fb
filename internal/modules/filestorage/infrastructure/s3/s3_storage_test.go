package s3

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/stretchr/testify/require"
)

func TestNewS3Storage_ValidationAndConfig(t *testing.T) {
	_, err := NewS3Storage(context.Background(), S3Config{})
	require.Error(t, err)

	st, err := NewS3Storage(context.Background(), S3Config{
		BucketName:     "bucket",
		Region:         "us-east-1",
		Endpoint:       "localhost:9000",
		PublicEndpoint: "localhost:9000",
		UseSSL:         false,
		Credentials:    credentials.NewStaticCredentialsProvider("x", "y", ""),
	})
	require.NoError(t, err)
	require.NotNil(t, st)
	require.NotNil(t, st.client)
	require.NotNil(t, st.presignClient)
}

func TestNewS3Storage_DefaultCredentialChain(t *testing.T) {
	st, err := NewS3Storage(context.Background(), S3Config{BucketName: "bucket", Region: "us-east-1"})
	require.NoError(t, err)
	require.NotNil(t, st.client)
}

func TestHelpers(t *testing.T) {
	require.True(t, hasHTTPPrefix("http://x"))
	require.True(t, hasHTTPPrefix("https://x"))
	require.False(t, hasHTTPPrefix("x"))

	require.Equal(t, "http://minio:9000", normalizeEndpoint("minio:9000", false))
	require.Equal(t, "https://minio:9000", normalizeEndpoint("minio:9000", true))
	require.Equal(t, "http://already", normalizeEndpoint("http://already", true))
}
