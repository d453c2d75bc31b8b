package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/dmitrijs2005/timevault/internal/logging"
)

// maxDeleteBatch is the DeleteObjects limit per request.
const maxDeleteBatch = 1000

// presignExpiry bounds the lifetime of URLs returned by S3Store.Put.
const presignExpiry = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// s3API is the part of *s3.Client used by S3Store.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObjects(ctx context.Context, in *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
}

// presignAPI is the part of *s3.PresignClient used by S3Store.
type presignAPI interface {
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Config holds the connection settings for an S3-compatible service such
// as MinIO.
type S3Config struct {
	AccessKeyID  string
	SecretKey    string
	Bucket       string
	Region       string
	BaseEndpoint string
}

// S3Store keeps blobs as objects in one bucket. Refs are object keys.
type S3Store struct {
	api     s3API
	presign presignAPI
	bucket  string
	log     logging.Logger
}

// NewS3Store builds an S3 client with static credentials and path-style
// addressing against cfg.BaseEndpoint.
func NewS3Store(ctx context.Context, cfg S3Config, l logging.Logger) (*S3Store, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
		}
		o.UsePathStyle = true
	})

	return newS3Store(client, s3.NewPresignClient(client), cfg.Bucket, l), nil
}

func newS3Store(api s3API, presign presignAPI, bucket string, l logging.Logger) *S3Store {
	if l == nil {
		l = logging.Nop()
	}
	return &S3Store{api: api, presign: presign, bucket: bucket, log: l.With("module", "s3_store")}
}

// Put uploads data under key and returns a presigned GET URL for it.
func (s *S3Store) Put(ctx context.Context, key string, data []byte) (*Object, error) {
	_, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		s.log.Error(ctx, "put object failed", "key", key, "code", apiErrorCode(err), "error", err)
		return nil, storageErr("s3 put "+key, err)
	}

	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return nil, storageErr("s3 presign "+key, err)
	}

	return &Object{Ref: key, URL: req.URL}, nil
}

// Remove deletes refs in batches. Keys that are already gone are not an
// error.
func (s *S3Store) Remove(ctx context.Context, refs []string) error {
	for start := 0; start < len(refs); start += maxDeleteBatch {
		end := min(start+maxDeleteBatch, len(refs))

		objects := make([]types.ObjectIdentifier, 0, end-start)
		for _, key := range refs[start:end] {
			objects = append(objects, types.ObjectIdentifier{Key: aws.String(key)})
		}

		out, err := s.api.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(s.bucket),
			Delete: &types.Delete{Objects: objects, Quiet: aws.Bool(true)},
		})
		if err != nil {
			s.log.Error(ctx, "delete objects failed", "count", len(objects), "code", apiErrorCode(err), "error", err)
			return storageErr("s3 delete", err)
		}

		var errs []error
		for _, e := range out.Errors {
			if aws.ToString(e.Code) == "NoSuchKey" {
				continue
			}
			errs = append(errs, fmt.Errorf("%s: %s: %s", aws.ToString(e.Key), aws.ToString(e.Code), aws.ToString(e.Message)))
		}
		if len(errs) > 0 {
			return storageErr("s3 delete", errors.Join(errs...))
		}
	}
	return nil
}

// apiErrorCode extracts the service error code, or "" for non-API errors.
func apiErrorCode(err error) string {
	var ae smithy.APIError
	if errors.As(err, &ae) {
		return ae.ErrorCode()
	}
	return ""
}
