package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ObjectUploader is the slice of the S3 client the export needs.
type ObjectUploader interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type ExportResult struct {
	Bucket  string `json:"bucket"`
	Key     string `json:"key"`
	Records int    `json:"records"`
}

// ExportService writes a calendar range to object storage as one JSON document.
type ExportService struct {
	calendar *CalendarService
	s3       ObjectUploader
	bucket   string
	prefix   string
}

func NewExportService(calendar *CalendarService, up ObjectUploader, bucket, prefix string) *ExportService {
	return &ExportService{
		calendar: calendar,
		s3:       up,
		bucket:   bucket,
		prefix:   strings.Trim(prefix, "/"),
	}
}

func (s *ExportService) Export(ctx context.Context, owner, from, to string) (*ExportResult, error) {
	data, err := s.calendar.Range(ctx, owner, from, to)
	if err != nil {
		return nil, err
	}
	n := data.Records()
	if n == 0 {
		return nil, fmt.Errorf("%w: no records between %s and %s", ErrNotFound, data.From, data.To)
	}

	body, err := json.Marshal(data)
	if err != nil {
		return nil, internal("encode export", err)
	}

	key := s.objectKey(owner, data.From, data.To)
	_, err = s.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, internal("upload export", err)
	}

	return &ExportResult{Bucket: s.bucket, Key: key, Records: n}, nil
}

func (s *ExportService) objectKey(owner, from, to string) string {
	name := fmt.Sprintf("%s/%s_%s-%s.json", url.PathEscape(owner), from, to, uuid.NewString())
	if s.prefix == "" {
		return name
	}
	return s.prefix + "/" + name
}
