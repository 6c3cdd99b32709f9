package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"fieldforce/config"
	"fieldforce/internal/core"
	"fieldforce/internal/telemetry"

	gcstorage "cloud.google.com/go/storage"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const defaultPublicBaseURL = "https://storage.googleapis.com"

// GCSResumeStore 履歷存放於 GCS，物件路徑 resumes/{jobID}/{unix-ts}-{filename}
type GCSResumeStore struct {
	client        *gcstorage.Client
	bucket        string
	publicBaseURL string
	trace         *telemetry.Trace
	logger        *zap.Logger
}

func NewGCSResumeStore(logger *zap.Logger, trace *telemetry.Trace, conf *config.Configuration) (ResumeStore, func(), error) {
	var opts []option.ClientOption
	if conf.Identity.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(conf.Identity.CredentialsFile))
	}

	client, newClientError := gcstorage.NewClient(context.Background(), opts...)
	if newClientError != nil {
		logger.Error("failed to create GCS client", zap.Error(newClientError))
		return nil, nil, newClientError
	}

	publicBaseURL := conf.Storage.PublicBaseURL
	if publicBaseURL == "" {
		publicBaseURL = defaultPublicBaseURL
	}

	cleanup := func() {
		logger.Info("closing the GCS resources")
		if closeError := client.Close(); closeError != nil {
			logger.Error("failed to close GCS client", zap.Error(closeError))
		}
	}

	logger.Info("Connected to GCS", zap.String("bucket", conf.Storage.ResumeBucket))
	return &GCSResumeStore{
		client:        client,
		bucket:        conf.Storage.ResumeBucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		trace:         trace,
		logger:        logger,
	}, cleanup, nil
}

func (store *GCSResumeStore) Upload(contextValue context.Context, jobID string, filename string, contentType string, content io.Reader) (_ string, returnedError error) {
	contextValue, span, endSpan := store.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	objectName := fmt.Sprintf("resumes/%s/%d-%s", jobID, time.Now().Unix(), sanitizeFilename(filename))
	traceMetadata := core.TraceUploadMeta{Object: objectName}
	store.trace.ApplyTraceAttributes(span, traceMetadata)

	writer := store.client.Bucket(store.bucket).Object(objectName).NewWriter(contextValue)
	writer.ContentType = contentType

	written, copyError := io.Copy(writer, content)
	if copyError != nil {
		_ = writer.Close()
		returnedError = copyError
		return "", returnedError
	}
	if closeError := writer.Close(); closeError != nil {
		returnedError = closeError
		return "", returnedError
	}

	traceMetadata.Bytes = written
	store.trace.ApplyTraceAttributes(span, traceMetadata)

	return fmt.Sprintf("%s/%s/%s", store.publicBaseURL, store.bucket, objectName), nil
}

// sanitizeFilename 物件名稱不接受路徑分隔與空白
func sanitizeFilename(filename string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", " ", "_")
	return replacer.Replace(filename)
}
