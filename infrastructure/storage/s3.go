package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/boraedu/bora-hub-api/internal/config"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

var (
	ErrDisabled   = errors.New("armazenamento de arquivos desabilitado")
	ErrMissingKey = errors.New("chave do objeto é obrigatória")
)

// ObjectStorage é o armazenamento de anexos e relatórios exportados
type ObjectStorage interface {
	Enabled() bool
	PresignUpload(ctx context.Context, key, contentType string) (string, time.Time, error)
	PresignDownload(ctx context.Context, key string) (string, time.Time, error)
	Upload(ctx context.Context, key, contentType string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// New devolve o armazenamento S3 quando habilitado; caso contrário todas as operações retornam ErrDisabled
func New(cfg *config.Config) (ObjectStorage, error) {
	if !cfg.Storage.Enabled {
		return disabled{}, nil
	}
	return NewS3Storage(cfg.Storage)
}

// S3Storage funciona com qualquer serviço compatível com S3 (AWS, MinIO)
type S3Storage struct {
	client            *s3.Client
	presignClient     *s3.PresignClient
	bucket            string
	presignExpiration time.Duration
	now               func() time.Time
}

func NewS3Storage(cfg config.Storage) (*S3Storage, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("bucket de armazenamento é obrigatório")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("credenciais de armazenamento são obrigatórias")
	}

	endpoint := cfg.Endpoint
	if endpoint != "" && !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar configuração da AWS: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	expiration := cfg.PresignExpiration
	if expiration <= 0 {
		expiration = 15 * time.Minute
	}

	return &S3Storage{
		client:            client,
		presignClient:     s3.NewPresignClient(client),
		bucket:            cfg.Bucket,
		presignExpiration: expiration,
		now:               time.Now,
	}, nil
}

func (s *S3Storage) Enabled() bool {
	return true
}

func (s *S3Storage) PresignUpload(ctx context.Context, key, contentType string) (string, time.Time, error) {
	if key == "" {
		return "", time.Time{}, ErrMissingKey
	}

	req, err := s.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(s.presignExpiration))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("erro ao gerar URL de upload: %w", err)
	}

	return req.URL, s.now().Add(s.presignExpiration), nil
}

func (s *S3Storage) PresignDownload(ctx context.Context, key string) (string, time.Time, error) {
	if key == "" {
		return "", time.Time{}, ErrMissingKey
	}

	req, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.presignExpiration))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("erro ao gerar URL de download: %w", err)
	}

	return req.URL, s.now().Add(s.presignExpiration), nil
}

func (s *S3Storage) Upload(ctx context.Context, key, contentType string, data []byte) error {
	if key == "" {
		return ErrMissingKey
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("erro ao enviar objeto: %w", err)
	}

	return nil
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrMissingKey
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("erro ao remover objeto: %w", err)
	}

	return nil
}

type disabled struct{}

func (disabled) Enabled() bool { return false }

func (disabled) PresignUpload(context.Context, string, string) (string, time.Time, error) {
	return "", time.Time{}, ErrDisabled
}

func (disabled) PresignDownload(context.Context, string) (string, time.Time, error) {
	return "", time.Time{}, ErrDisabled
}

func (disabled) Upload(context.Context, string, string, []byte) error { return ErrDisabled }

func (disabled) Delete(context.Context, string) error { return ErrDisabled }
