package pkgblob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/shandysiswandi/gocompare/internal/pkg/pkgerror"
)

// S3Config configures an S3 or S3-compatible bucket.
type S3Config struct {
	Region    string
	Endpoint  string // optional, e.g. http://localhost:9000 for MinIO
	Bucket    string
	Prefix    string
	AccessKey string
	SecretKey string
	PathStyle bool
}

// S3 keeps artifacts as objects in a single bucket.
type S3 struct {
	client *s3.Client
	bucket string
	prefix string
}

func NewS3(cfg S3Config) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("pkgblob: s3 bucket is required")
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}

	opts := s3.Options{
		Region:                     cfg.Region,
		UsePathStyle:               cfg.PathStyle,
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
		ResponseChecksumValidation: aws.ResponseChecksumValidationWhenRequired,
	}
	if cfg.AccessKey != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}

	return &S3{client: s3.New(opts), bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

func (s *S3) Location(dir string) string {
	return "s3://" + s.bucket + "/" + objectKey(s.prefix, dir, "")
}

func (s *S3) Put(ctx context.Context, dir, name string, data []byte) (string, error) {
	if err := checkName(dir, name); err != nil {
		return "", err
	}

	key := objectKey(s.prefix, dir, name)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return "", fmt.Errorf("pkgblob: put s3://%s/%s: %w", s.bucket, key, err)
	}

	return "s3://" + s.bucket + "/" + key, nil
}

func (s *S3) Open(ctx context.Context, dir, name string) (io.ReadCloser, error) {
	if err := checkName(dir, name); err != nil {
		return nil, err
	}

	key := objectKey(s.prefix, dir, name)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, pkgerror.ErrNotFound
		}
		return nil, fmt.Errorf("pkgblob: get s3://%s/%s: %w", s.bucket, key, err)
	}

	return out.Body, nil
}

func (s *S3) Close() error {
	return nil
}
