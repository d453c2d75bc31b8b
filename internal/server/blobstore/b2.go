package blobstore

import (
	"context"
	"crypto/sha1"
	"errors"
	"fmt"
	"strings"

	"github.com/benbusby/b2"
	"github.com/dmitrijs2005/timevault/internal/filex"
	"github.com/dmitrijs2005/timevault/internal/logging"
)

// refSep separates the B2 file id from the object name inside a ref. B2
// deletes by (file id, name), so both are kept.
const refSep = "|"

// B2Config holds Backblaze B2 credentials. With LocalPath set, the library's
// dummy account stores files below that directory instead.
type B2Config struct {
	BucketID  string
	KeyID     string
	Key       string
	LocalPath string
}

// B2Store keeps blobs in a Backblaze B2 bucket. Refs are "<fileID>|<name>".
type B2Store struct {
	bucket string
	log    logging.Logger

	upload     func(ctx context.Context, name string, data []byte) (string, error)
	deleteFile func(ctx context.Context, fileID, name string) error
}

// NewB2Store authorizes against B2, or sets up local storage when
// cfg.LocalPath is not empty.
func NewB2Store(cfg B2Config, l logging.Logger) (*B2Store, error) {
	var (
		client *b2.Service
		err    error
	)

	bucket := cfg.BucketID
	if cfg.LocalPath != "" {
		var dir string
		if dir, err = filex.EnsureDir(cfg.LocalPath); err != nil {
			return nil, fmt.Errorf("b2 local storage: %w", err)
		}
		client, err = b2.AuthorizeDummyAccount(dir)
		if bucket == "" {
			bucket = "local"
		}
	} else {
		if cfg.BucketID == "" || cfg.KeyID == "" || cfg.Key == "" {
			return nil, errors.New("b2: bucket id, key id and key are required")
		}
		client, _, err = b2.AuthorizeAccount(cfg.KeyID, cfg.Key)
	}
	if err != nil {
		return nil, fmt.Errorf("b2 authorize: %w", err)
	}

	s := newB2Store(bucket, l)
	s.upload = func(_ context.Context, name string, data []byte) (string, error) {
		info, err := client.GetUploadURL(bucket)
		if err != nil {
			return "", err
		}

		file := b2.FileInfo{
			BucketID:           info.BucketID,
			AuthorizationToken: info.AuthorizationToken,
			UploadURL:          info.UploadURL,
			Dummy:              info.Dummy,
		}

		resp, err := b2.UploadFile(file, name, fmt.Sprintf("%x", sha1.Sum(data)), data)
		if err != nil {
			return "", err
		}
		return resp.FileID, nil
	}
	s.deleteFile = func(_ context.Context, fileID, name string) error {
		ok, err := client.DeleteFile(fileID, name)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("b2 refused to delete %s", name)
		}
		return nil
	}
	return s, nil
}

func newB2Store(bucket string, l logging.Logger) *B2Store {
	if l == nil {
		l = logging.Nop()
	}
	return &B2Store{bucket: bucket, log: l.With("module", "b2_store")}
}

// Put uploads data as a single-part file named key.
func (s *B2Store) Put(ctx context.Context, key string, data []byte) (*Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, storageErr("b2 put "+key, err)
	}

	fileID, err := s.upload(ctx, key, data)
	if err != nil {
		s.log.Error(ctx, "upload failed", "key", key, "error", err)
		return nil, storageErr("b2 put "+key, err)
	}

	return &Object{
		Ref: encodeB2Ref(fileID, key),
		URL: fmt.Sprintf("b2://%s/%s", s.bucket, key),
	}, nil
}

// Remove deletes every ref, continuing past failures, and reports all of
// them together.
func (s *B2Store) Remove(ctx context.Context, refs []string) error {
	var errs []error
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		fileID, name, err := decodeB2Ref(ref)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := s.deleteFile(ctx, fileID, name); err != nil {
			s.log.Error(ctx, "delete failed", "key", name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	if len(errs) > 0 {
		return storageErr("b2 delete", errors.Join(errs...))
	}
	return nil
}

func encodeB2Ref(fileID, name string) string {
	return fileID + refSep + name
}

func decodeB2Ref(ref string) (fileID, name string, err error) {
	fileID, name, ok := strings.Cut(ref, refSep)
	if !ok || fileID == "" || name == "" {
		return "", "", fmt.Errorf("malformed b2 ref %q", ref)
	}
	return fileID, name, nil
}
