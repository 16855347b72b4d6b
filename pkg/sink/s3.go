package sink

import (
	"bytes"
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/htmlnode/internal/errors"
)

// S3API is the subset of the S3 client used by S3Sink.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Config holds connection settings for NewS3Client.
type S3Config struct {
	Region string

	// Endpoint overrides the S3 endpoint, e.g. for MinIO. Path-style
	// addressing is used when set.
	Endpoint string
}

// NewS3Client creates an S3 client that reads credentials from
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN.
func NewS3Client(cfg S3Config) *s3.Client {
	opts := s3.Options{
		Region:      cfg.Region,
		Credentials: aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials)),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

func envCredentials(context.Context) (aws.Credentials, error) {
	creds := aws.Credentials{
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "EnvironmentVariables",
	}
	if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
		return aws.Credentials{}, errors.New("S200").WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set.")
	}
	return creds, nil
}

// S3Sink stores documents as objects in an S3 bucket.
//
// Example usage:
//
//	client := sink.NewS3Client(sink.S3Config{Region: "eu-central-1"})
//	out := sink.NewS3Sink(client, "my-site", "pages/")
//	err := out.Write(ctx, "index.html", html)
type S3Sink struct {
	client S3API
	bucket string
	prefix string
}

// NewS3Sink creates a new S3 sink.
//
// Parameters:
//   - client: S3 client from aws-sdk-go-v2 (or any S3API)
//   - bucket: S3 bucket name
//   - prefix: Key prefix for documents (e.g., "site/")
func NewS3Sink(client S3API, bucket, prefix string) *S3Sink {
	return &S3Sink{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Key returns the object key for name.
func (s *S3Sink) Key(name string) (string, error) {
	name, err := cleanName(name)
	if err != nil {
		return "", err
	}
	return s.prefix + name, nil
}

// Write implements Sink.
func (s *S3Sink) Write(ctx context.Context, name string, html []byte) error {
	key, err := s.Key(name)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(html),
		ContentType:   aws.String(ContentType),
		ContentLength: aws.Int64(int64(len(html))),
	})
	if err != nil {
		return errors.New("S200").
			WithDetail("Upload to s3://" + s.bucket + "/" + key + " failed.").
			Wrap(err)
	}
	return nil
}
