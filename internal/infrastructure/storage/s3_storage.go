package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"creovibe/internal/domain/repositories"
	"creovibe/pkg/file"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the subset of the s3 client the storage uses.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

type S3Storage struct {
	client     S3API
	bucketName string
	region     string
	publicURL  string
}

// NewS3Storage loads credentials from the default AWS chain. publicURL, when
// set, replaces the virtual-hosted bucket URL (e.g. a CDN in front of the bucket).
func NewS3Storage(ctx context.Context, bucketName, region, publicURL string) (*S3Storage, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	return NewS3StorageWithClient(s3.NewFromConfig(cfg), bucketName, region, publicURL), nil
}

func NewS3StorageWithClient(client S3API, bucketName, region, publicURL string) *S3Storage {
	return &S3Storage{
		client:     client,
		bucketName: bucketName,
		region:     region,
		publicURL:  strings.TrimRight(publicURL, "/"),
	}
}

func (s *S3Storage) Save(ctx context.Context, name string, content io.Reader) error {
	if err := file.ValidateStorageName(name); err != nil {
		return err
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(name),
		Body:        content,
		ContentType: aws.String(file.MimeTypeFromExtension(name)),
	})
	if err != nil {
		return fmt.Errorf("s3 upload: %w", err)
	}
	return nil
}

// Delete relies on S3 treating a missing key as a successful delete.
func (s *S3Storage) Delete(ctx context.Context, name string) error {
	if err := file.ValidateStorageName(name); err != nil {
		return err
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(name),
	})
	if err != nil {
		return fmt.Errorf("s3 delete: %w", err)
	}
	return nil
}

func (s *S3Storage) Exists(ctx context.Context, name string) (bool, error) {
	if err := file.ValidateStorageName(name); err != nil {
		return false, err
	}
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(name),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("s3 head: %w", err)
	}
	return true, nil
}

func (s *S3Storage) List(ctx context.Context) ([]repositories.StoredObject, error) {
	var (
		objects []repositories.StoredObject
		token   *string
	)
	for {
		out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(s.bucketName),
			ContinuationToken: token,
		})
		if err != nil {
			return nil, fmt.Errorf("s3 list: %w", err)
		}
		for _, obj := range out.Contents {
			key := aws.ToString(obj.Key)
			if file.ValidateStorageName(key) != nil {
				continue
			}
			objects = append(objects, repositories.StoredObject{
				Name:    key,
				Size:    aws.ToInt64(obj.Size),
				ModTime: aws.ToTime(obj.LastModified),
			})
		}
		if !aws.ToBool(out.IsTruncated) {
			return objects, nil
		}
		token = out.NextContinuationToken
	}
}

func (s *S3Storage) URL(name string) string {
	if s.publicURL != "" {
		return s.publicURL + "/" + name
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucketName, s.region, name)
}
