package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"todos/config"
	"todos/infras/otel"
	"todos/shared/constant"
	"todos/shared/timezone"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
)

var ErrEmptyObjectKey = errors.New("object key cannot be empty")

// Attachment is the result of issuing an upload URL for one todo.
type Attachment struct {
	Key           string
	UploadURL     string
	UploadMethod  string
	AttachmentURL string
	IssuedAt      time.Time
	ExpiresAt     time.Time
}

type S3 interface {
	IssueUploadURL(ctx context.Context, todoID string) (Attachment, error)
	AttachmentURL(todoID string) string
	DeleteObject(ctx context.Context, key string) error
}

type s3Impl struct {
	Client       *s3.Client
	presign      *s3.PresignClient
	signer       *v4.Signer
	bucket       string
	publicDomain string
	expiry       time.Duration
	now          func() time.Time
	otel         otel.Otel
}

// issuedAtSigner signs with the issuance time instead of the SDK clock, so the
// URL's X-Amz-Date and validity window follow the injected clock.
type issuedAtSigner struct {
	signer   *v4.Signer
	issuedAt time.Time
}

func (p issuedAtSigner) PresignHTTP(
	ctx context.Context, credentials aws.Credentials, r *http.Request,
	payloadHash string, service string, region string, _ time.Time,
	optFns ...func(*v4.SignerOptions),
) (string, http.Header, error) {
	return p.signer.PresignHTTP(ctx, credentials, r, payloadHash, service, region, p.issuedAt, optFns...)
}

// ObjectKey derives the blob key for a todo. Keys are the todo id itself so
// that the public attachment URL can be rebuilt from the id alone.
func ObjectKey(todoID string) string {
	return todoID
}

func (svc *s3Impl) IssueUploadURL(ctx context.Context, todoID string) (res Attachment, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".IssueUploadURL")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := ObjectKey(todoID)
	if key == "" {
		return res, ErrEmptyObjectKey
	}

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    svc.bucket,
	})

	issuedAt := svc.now()

	req, err := svc.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(svc.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(svc.expiry), func(o *s3.PresignOptions) {
		o.Presigner = issuedAtSigner{signer: svc.signer, issuedAt: issuedAt}
	})
	if err != nil {
		return res, fmt.Errorf("failed to presign upload url: %w", err)
	}

	return Attachment{
		Key:           key,
		UploadURL:     req.URL,
		UploadMethod:  req.Method,
		AttachmentURL: svc.AttachmentURL(todoID),
		IssuedAt:      issuedAt,
		ExpiresAt:     issuedAt.Add(svc.expiry),
	}, nil
}

// AttachmentURL is the unsigned read reference for a todo's blob.
func (svc *s3Impl) AttachmentURL(todoID string) string {
	key := url.PathEscape(ObjectKey(todoID))

	if svc.publicDomain != "" {
		return strings.TrimRight(svc.publicDomain, "/") + "/" + key
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", svc.bucket, key)
}

func (svc *s3Impl) DeleteObject(ctx context.Context, key string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".DeleteObject")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    svc.bucket,
	})

	_, err = svc.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(svc.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete file from S3")

		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

// New builds the attachment issuer on top of a shared AWS configuration.
func New(config *config.Config, awsCfg aws.Config, otel otel.Otel) S3 {
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if config.AWS.Endpoint != "" {
			o.BaseEndpoint = aws.String(config.AWS.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewWithClient(client, config, timezone.Now, otel)
}

// NewWithClient takes the client and the issuance clock explicitly.
func NewWithClient(client *s3.Client, config *config.Config, now func() time.Time, otel otel.Otel) S3 {
	return &s3Impl{
		Client:       client,
		presign:      s3.NewPresignClient(client),
		signer:       v4.NewSigner(),
		bucket:       config.Attachment.BucketName,
		publicDomain: config.Attachment.PublicDomain,
		expiry:       time.Duration(config.Attachment.URLExpirySeconds) * time.Second,
		now:          now,
		otel:         otel,
	}
}
