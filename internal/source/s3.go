package source

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/Paintersrp/qb/internal/config"
)

type S3Fetcher struct {
	downloader *manager.Downloader
}

// NewS3Fetcher builds an S3 client from the shared AWS configuration, letting
// the s3 section of the config pick the region, profile, endpoint and static
// keys.
func NewS3Fetcher(ctx context.Context, cfg config.S3Config) (*S3Fetcher, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Fetcher{downloader: manager.NewDownloader(client)}, nil
}

func (f *S3Fetcher) Fetch(ctx context.Context, bucket, key string) ([]byte, error) {
	buf := manager.NewWriteAtBuffer([]byte{})
	_, err := f.downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download s3://%s/%s: %w", bucket, key, err)
	}
	return buf.Bytes(), nil
}

// LazyS3 builds its S3 client on first use, so boards that never touch S3 do
// not resolve AWS credentials.
type LazyS3 struct {
	cfg config.S3Config

	once    sync.Once
	fetcher *S3Fetcher
	err     error
}

func NewLazyS3(cfg config.S3Config) *LazyS3 {
	return &LazyS3{cfg: cfg}
}

func (l *LazyS3) Fetch(ctx context.Context, bucket, key string) ([]byte, error) {
	l.once.Do(func() {
		l.fetcher, l.err = NewS3Fetcher(ctx, l.cfg)
	})
	if l.err != nil {
		return nil, l.err
	}
	return l.fetcher.Fetch(ctx, bucket, key)
}
