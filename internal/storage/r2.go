// Package storage uploads payment and supply proof documents to an
// S3-compatible bucket (Cloudflare R2 in production) and hands back public
// URLs that get stored on the records.
package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"hotel-backend/internal/config"
)

type Uploader struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewUploader builds the R2 client. Returns nil when storage is not
// configured; callers treat a nil uploader as "uploads disabled".
func NewUploader(ctx context.Context, cfg *config.Config) *Uploader {
	if cfg.Storage.Endpoint == "" || cfg.Storage.Bucket == "" {
		log.Printf("[Storage] Not configured, proof uploads disabled")
		return nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Storage.AccessKey,
			cfg.Storage.SecretKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Storage.Region),
	)
	if err != nil {
		log.Printf("[Storage] Failed to configure R2 client: %v", err)
		return nil
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
	})

	return &Uploader{
		client:        client,
		bucket:        cfg.Storage.Bucket,
		publicBaseURL: strings.TrimRight(cfg.Storage.PublicBaseURL, "/"),
	}
}

// Upload stores the file under proofs/<entity>/ and returns its public URL.
// Keys carry an upload timestamp so re-uploads never overwrite each other.
func (u *Uploader) Upload(ctx context.Context, entity, filename, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("proofs/%s/%s_%s", entity, time.Now().Format("20060102_150405"), sanitizeFilename(filename))

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	return u.publicBaseURL + "/" + key, nil
}

// sanitizeFilename strips path separators and spaces from uploaded names
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" {
		name = "file"
	}
	return name
}
