// Package storage provides the MinIO-backed image store. Recipe images
// are seeded out of band (cmd/seed) and served read-only to clients.
package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/potluck/recipebook/internal/store"
)

type MinioImageStore struct {
	client *minio.Client
	bucket string
}

// NewMinioImageStore connects to MinIO and makes sure the image bucket
// exists.
func NewMinioImageStore(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinioImageStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	return &MinioImageStore{client: client, bucket: bucket}, nil
}

func (s *MinioImageStore) Put(ctx context.Context, id, contentType string, data []byte) error {
	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		id,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	return err
}

func (s *MinioImageStore) Get(ctx context.Context, id string) ([]byte, string, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, id, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
			return nil, "", store.ErrNotFound
		}
		return nil, "", err
	}

	stat, err := obj.Stat()
	if err != nil {
		return nil, "", err
	}
	return data, stat.ContentType, nil
}
