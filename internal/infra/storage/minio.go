package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Store archives exported reports in a MinIO bucket.
type Store struct {
	client     *minio.Client
	bucketName string
	prefix     string
	presign    time.Duration
}

// Options for New
type Options struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Prefix    string        // object key prefix, e.g. "reports"
	Presign   time.Duration // 0 returns a plain object URL
}

// New buat koneksi MinIO
func New(ctx context.Context, o Options) (*Store, error) {
	cli, err := minio.New(o.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(o.AccessKey, o.SecretKey, ""),
		Secure: o.UseSSL,
		Region: o.Region,
	})
	if err != nil {
		return nil, err
	}

	// pastikan bucket ada
	exists, err := cli.BucketExists(ctx, o.Bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := cli.MakeBucket(ctx, o.Bucket, minio.MakeBucketOptions{Region: o.Region}); err != nil {
			return nil, err
		}
	}

	return &Store{client: cli, bucketName: o.Bucket, prefix: o.Prefix, presign: o.Presign}, nil
}

// Archive uploads a rendered report and returns where it can be fetched.
func (s *Store) Archive(ctx context.Context, key string, body []byte) (string, error) {
	objectKey := key
	if s.prefix != "" {
		objectKey = path.Join(s.prefix, key)
	}

	_, err := s.client.PutObject(ctx, s.bucketName, objectKey, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType:        "text/html; charset=utf-8",
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", path.Base(key)),
	})
	if err != nil {
		return "", fmt.Errorf("put report %s: %w", objectKey, err)
	}

	if s.presign > 0 {
		u, err := s.client.PresignedGetObject(ctx, s.bucketName, objectKey, s.presign, nil)
		if err != nil {
			return "", fmt.Errorf("presign report %s: %w", objectKey, err)
		}
		return u.String(), nil
	}

	// URL publik (jika bucket public), kalau private pakai presign
	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), s.bucketName, objectKey), nil
}
