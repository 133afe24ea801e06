package publish

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config configures an S3Store.
type S3Config struct {
	Bucket    string
	Prefix    string
	Region    string
	Endpoint  string // For S3-compatible services; empty uses AWS.
	PathStyle bool
	AccessKey string
	SecretKey string
}

// PutObjectAPI is the part of the S3 client used by S3Store.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store publishes markup to an S3 bucket.
type S3Store struct {
	client PutObjectAPI
	bucket string
	prefix string
}

// NewS3Store creates an S3Store with a client built from cfg.
func NewS3Store(cfg S3Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("publish: s3 bucket is required")
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}

	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			if cfg.AccessKey != "" {
				o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
			}
		},
	}
	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		})
	}

	return NewS3StoreWithClient(s3.New(s3.Options{}, opts...), cfg.Bucket, cfg.Prefix), nil
}

// NewS3StoreWithClient creates an S3Store using an existing client.
// A non-empty prefix is treated as a directory: "v1" and "v1/" both
// place objects under "v1/".
func NewS3StoreWithClient(client PutObjectAPI, bucket, prefix string) *S3Store {
	prefix = strings.Trim(prefix, "/")
	if prefix != "" {
		prefix += "/"
	}
	return &S3Store{client: client, bucket: bucket, prefix: prefix}
}

// Put implements Store. The returned location is an s3:// URL.
func (s *S3Store) Put(ctx context.Context, key string, data []byte) (string, error) {
	rel, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	objectKey := s.prefix + rel

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(objectKey),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUploadFailed, objectKey, err)
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, objectKey), nil
}
