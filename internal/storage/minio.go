package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"formsapi/internal/config"
)

// minioStorage keeps CVs in an S3-compatible bucket (MinIO, AWS S3, etc.).
// Only keys produced by CVKey are accepted. Safe for concurrent use.
type minioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinIO creates a new S3-compatible storage client backed by MinIO.
// It validates connectivity and ensures the bucket exists (creates it if missing).
func NewMinIO(cfg config.MinIOConfig) (Storage, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required: %w", ErrNotConfigured)
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio credentials are required: %w", ErrNotConfigured)
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket is required: %w", ErrNotConfigured)
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return &minioStorage{client: cli, bucket: cfg.Bucket}, nil
}

// cvPutOptions stores CVs as downloads so a browser never renders them inline.
func cvPutOptions(key string, opt PutObjectOptions) minio.PutObjectOptions {
	ct := opt.ContentType
	if ct == "" {
		ct = defaultContentType
	}
	return minio.PutObjectOptions{
		ContentType:        ct,
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", path.Base(key)),
		UserMetadata:       opt.Metadata,
	}
}

// Put streams a CV to the bucket under key.
func (m *minioStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	if err := CheckCVKey(key); err != nil {
		return ObjectInfo{}, err
	}
	putOpts := cvPutOptions(key, opt)
	info, err := m.client.PutObject(ctx, m.bucket, key, r, opt.Size, putOpts)
	if err != nil {
		return ObjectInfo{}, err
	}
	return ObjectInfo{
		Key:          key,
		Size:         info.Size,
		ETag:         info.ETag,
		ContentType:  putOpts.ContentType,
		LastModified: time.Now(), // PutObject does not report it
		Metadata:     opt.Metadata,
	}, nil
}

// Get downloads an object content as a ReadCloser along with basic info.
func (m *minioStorage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	if err := CheckCVKey(key); err != nil {
		return nil, ObjectInfo{}, err
	}
	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	st, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, ObjectInfo{}, err
	}
	info := ObjectInfo{
		Key:          key,
		Size:         st.Size,
		ETag:         st.ETag,
		ContentType:  st.ContentType,
		LastModified: st.LastModified,
		Metadata:     st.UserMetadata,
	}
	return obj, info, nil
}

// Delete removes an object by key.
func (m *minioStorage) Delete(ctx context.Context, key string) error {
	if err := CheckCVKey(key); err != nil {
		return err
	}
	return m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
}

// PresignGet generates a pre-signed download URL. The response is forced to
// an attachment named after the stored file.
func (m *minioStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if err := CheckCVKey(key); err != nil {
		return "", err
	}
	params := url.Values{}
	params.Set("response-content-disposition", cvPutOptions(key, PutObjectOptions{}).ContentDisposition)
	u, err := m.client.PresignedGetObject(ctx, m.bucket, key, expiry, params)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
