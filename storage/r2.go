package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// R2Config carries the Cloudflare R2 connection settings.
type R2Config struct {
	Bucket          string
	AccountID       string
	PublicBaseURL   string // e.g. https://<bucket>.<account_id>.r2.cloudflarestorage.com
	AccessKeyID     string
	SecretAccessKey string
}

// R2Store keeps attachment files in a Cloudflare R2 bucket via the S3 API.
type R2Store struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

var _ FileStore = (*R2Store)(nil)

func NewR2Store(ctx context.Context, cfg R2Config) (*R2Store, error) {
	if cfg.Bucket == "" || cfg.AccountID == "" || cfg.PublicBaseURL == "" {
		return nil, fmt.Errorf("missing required R2 configuration")
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)

	customResolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL:           endpoint,
			SigningRegion: "auto",
		}, nil
	})

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
		awsconfig.WithEndpointResolverWithOptions(customResolver),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load R2 config: %v", err)
	}

	return &R2Store{
		client:     s3.NewFromConfig(awsCfg),
		bucket:     cfg.Bucket,
		publicBase: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

func (s *R2Store) Save(filename, contentType string, r io.Reader) (string, error) {
	key := filepath.Base(filename)
	_, err := s.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to R2: %v", err)
	}
	return fmt.Sprintf("%s/%s", s.publicBase, url.PathEscape(key)), nil
}

func (s *R2Store) Remove(fileURL string) error {
	u, err := url.Parse(fileURL)
	if err != nil {
		return fmt.Errorf("invalid file URL: %v", err)
	}
	key := filepath.Base(u.Path)

	_, err = s.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete R2 object: %v", err)
	}
	return nil
}
