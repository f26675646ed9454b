package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/pest-control-api/internal/config"
)

// Location identifies an uploaded object.
type Location struct {
	Bucket string
	Key    string
}

type Uploader interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) (Location, error)
}

type putObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Uploader struct {
	client putObjectAPI
	bucket string
	prefix string
}

var _ Uploader = (*S3Uploader)(nil)

// NewS3Uploader builds a client from static settings. Without an access key
// the requests are sent unsigned, which suits public buckets on local
// S3-compatible servers. A custom endpoint switches to path-style URLs.
func NewS3Uploader(cfg config.S3Config) *S3Uploader {
	opts := s3.Options{
		Region: cfg.Region,
	}

	if cfg.AccessKeyID != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)
	}

	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	return &S3Uploader{
		client: s3.New(opts),
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
	}
}

// Key names an export file after the moment it was taken, under the
// configured prefix.
func (u *S3Uploader) Key(name string, at time.Time) string {
	prefix := strings.Trim(u.prefix, "/")
	file := fmt.Sprintf("%s-%s.csv", name, at.UTC().Format("20060102T150405Z"))
	if prefix == "" {
		return file
	}
	return prefix + "/" + file
}

func (u *S3Uploader) Upload(
	ctx context.Context,
	key string,
	body []byte,
	contentType string,
) (Location, error) {

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return Location{}, fmt.Errorf("put s3://%s/%s: %w", u.bucket, key, err)
	}

	return Location{Bucket: u.bucket, Key: key}, nil
}
