package service

import (
	"context"
	"errors"
	"exam_quiz_backend/internal/config"
	"exam_quiz_backend/internal/util"
	"exam_quiz_backend/pkg/logger"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// BankStorage holds the question bank files. A missing file is reported as
// fs.ErrNotExist by every implementation.
type BankStorage interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Put(ctx context.Context, name string, reader io.Reader, size int64) error
	Location(name string) string
}

type LocalBankStorage struct {
	Dir string
}

func (p *LocalBankStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(p.Dir, name))
}

func (p *LocalBankStorage) Put(ctx context.Context, name string, reader io.Reader, size int64) error {
	dst := filepath.Join(p.Dir, name)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, reader)
	return err
}

func (p *LocalBankStorage) Location(name string) string {
	return filepath.Join(p.Dir, name)
}

type MinioBankStorage struct {
	Bucket string
	Client *minio.Client
}

func NewMinioBankStorage(cfg *config.StorageConfig) (*MinioBankStorage, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioSecure,
	})
	if err != nil {
		return nil, err
	}
	return &MinioBankStorage{Bucket: cfg.MinioBucket, Client: client}, nil
}

func (p *MinioBankStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	obj, err := p.Client.GetObject(ctx, p.Bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, minioErr(name, err)
	}
	// GetObject is lazy; Stat surfaces a missing key before the caller reads
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, minioErr(name, err)
	}
	return obj, nil
}

func (p *MinioBankStorage) Put(ctx context.Context, name string, reader io.Reader, size int64) error {
	_, err := p.Client.PutObject(ctx, p.Bucket, name, reader, size, minio.PutObjectOptions{
		ContentType: "application/json",
	})
	return err
}

func (p *MinioBankStorage) Location(name string) string {
	return "minio://" + p.Bucket + "/" + name
}

func minioErr(name string, err error) error {
	resp := minio.ToErrorResponse(err)
	if resp.StatusCode == http.StatusNotFound || resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
		return fmt.Errorf("%s: %w", name, fs.ErrNotExist)
	}
	return err
}

// NewBankStorage picks the configured backend. An unusable MinIO
// configuration falls back to the local directory.
func NewBankStorage(cfg *config.StorageConfig) BankStorage {
	if cfg.Type == util.StorageMinio {
		p, err := NewMinioBankStorage(cfg)
		if err == nil {
			return p
		}
		logger.Log.Error("Failed to create MinIO client, using local question banks", zap.Error(err))
	}
	return &LocalBankStorage{Dir: cfg.LocalPath}
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
