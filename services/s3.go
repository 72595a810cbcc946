package services

import (
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/mugeshkumards/resume-entity-extractor/config"
)

// S3Service downloads resume files stored in S3 so they can be parsed and
// extracted like direct uploads. Credentials come from the default AWS
// credential chain.
type S3Service struct {
	s3Client *s3.S3
	bucket   string
}

// NewS3Service creates an S3 client from config. Returns an error when the
// bucket or region is not configured; callers treat that as "endpoint
// disabled" rather than a fatal condition.
func NewS3Service(cfg config.S3Config) (*S3Service, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, fmt.Errorf("S3 not configured: bucket and region are required")
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &S3Service{
		s3Client: s3.New(sess),
		bucket:   cfg.Bucket,
	}, nil
}

// DownloadResume fetches the object at key and returns its raw bytes.
func (s *S3Service) DownloadResume(key string) ([]byte, error) {
	result, err := s.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download %q from S3: %w", key, err)
	}
	defer result.Body.Close()

	return io.ReadAll(result.Body)
}
