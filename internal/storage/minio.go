package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// requestTimeout caps every round trip to the object store so a hung
// backend surfaces as an error instead of a stuck request.
const requestTimeout = 30 * time.Second

type ClientMinio interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

type MinioBlobStore struct {
	endpoint   string
	bucketName string
	useSSL     bool
	client     ClientMinio
}

func NewMinioBlobStore(endpoint, accessKeyID, secretAccessKey, bucketName string, useSSL bool) (*MinioBlobStore, error) {
	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinioBlobStore{
		endpoint:   endpoint,
		bucketName: bucketName,
		useSSL:     useSSL,
		client:     minioClient,
	}, nil
}

func (s *MinioBlobStore) Upload(ctx context.Context, objectName string, data io.Reader, size int64, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	_, err := s.client.PutObject(ctx, s.bucketName, objectName, data, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", objectName, err)
	}

	return s.objectURL(objectName), nil
}

func (s *MinioBlobStore) Remove(ctx context.Context, objectName string) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	err := s.client.RemoveObject(ctx, s.bucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove object %s: %w", objectName, err)
	}

	return nil
}

func (s *MinioBlobStore) objectURL(objectName string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	u := url.URL{
		Scheme: scheme,
		Host:   s.endpoint,
		Path:   fmt.Sprintf("/%s/%s", s.bucketName, objectName),
	}
	return u.String()
}
