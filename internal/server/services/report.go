package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"fintrack/internal/common"
	sc "fintrack/internal/server/config"
	"fintrack/internal/server/repositories/repomanager"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Seams for testing the S3 plumbing without a live backend.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// ReportService renders period statements as CSV and stores them in an
// S3-compatible backend, handing download access out via presigned URLs.
type ReportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

// NewReportService constructs a ReportService.
func NewReportService(db *sql.DB, m repomanager.RepositoryManager, config *sc.Config) *ReportService {
	return &ReportService{db: db, repomanager: m, config: config}
}

// storageKey builds an object key partitioned by upload date.
func storageKey() string {
	d := time.Now()
	return fmt.Sprintf("statements/%d/%d/%d/%v.csv", d.Year(), int(d.Month()), d.Day(), uuid.New())
}

func (s *ReportService) getS3Client() (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return client, nil
}

// renderCSV writes the user's ledger entries for [from, to] as CSV rows.
func (s *ReportService) renderCSV(ctx context.Context, userID int64, from, to time.Time) ([]byte, int, error) {
	entries, err := s.repomanager.Transactions(s.db).ListForPeriod(ctx, userID, from, to)
	if err != nil {
		return nil, 0, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"date", "type", "category", "description", "amount"}); err != nil {
		return nil, 0, err
	}
	for _, e := range entries {
		record := []string{
			e.TransactionDate.Format("2006-01-02"),
			e.Type,
			e.Category,
			e.Description,
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, 0, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, 0, err
	}

	return buf.Bytes(), len(entries), nil
}

// ExportStatement renders the CSV statement for (month, year), uploads it to
// the configured bucket, and returns a presigned download URL valid for 15
// minutes together with the number of exported entries. Without a configured
// S3 endpoint it returns common.ErrorExportNotConfigured.
func (s *ReportService) ExportStatement(ctx context.Context, userID int64, month, year int) (string, int, error) {
	if s.config.S3BaseEndpoint == "" {
		return "", 0, common.ErrorExportNotConfigured
	}

	_, _, from, to := resolvePeriod(month, year)

	body, count, err := s.renderCSV(ctx, userID, from, to)
	if err != nil {
		return "", 0, err
	}

	client, err := s.getS3Client()
	if err != nil {
		return "", 0, err
	}

	bucket := s.config.S3Bucket
	key := storageKey()

	if _, err := putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: aws.String("text/csv"),
	}); err != nil {
		return "", 0, fmt.Errorf("statement upload error: %w", err)
	}

	req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", 0, fmt.Errorf("statement presign error: %w", err)
	}

	return req.URL, count, nil
}
