// Package objectstore presigns S3 upload and download URLs for report files.
// Clients talk to object storage directly; this API never proxies file bytes.
package objectstore

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const presignExpiry = 15 * time.Minute

// Options configures the S3 store. Endpoint is optional and used for
// S3-compatible storage such as MinIO.
type Options struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

// S3Store presigns object URLs against a single bucket.
type S3Store struct {
	opts Options
}

// New constructs an S3Store.
func New(opts Options) *S3Store {
	return &S3Store{opts: opts}
}

func (s *S3Store) presignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(s.opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.opts.AccessKey,
			s.opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return s3.NewPresignClient(client), nil
}

// PresignPut returns a time-limited URL for uploading the object at key.
func (s *S3Store) PresignPut(ctx context.Context, key string) (string, error) {
	client, err := s.presignClient(ctx)
	if err != nil {
		return "", err
	}

	req, err := client.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// PresignGet returns a time-limited URL for downloading the object at key.
func (s *S3Store) PresignGet(ctx context.Context, key string) (string, error) {
	client, err := s.presignClient(ctx)
	if err != nil {
		return "", err
	}

	req, err := client.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
