package client

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MockImageStore implements ImageStore for testing without AWS credentials
type MockImageStore struct {
	Bucket   string
	Region   string
	Endpoint string

	// Optional function overrides for custom test behavior
	GenerateFileKeyFunc func(userID, fileExt string) string
	UploadFileFunc      func(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	DeleteFileFunc      func(ctx context.Context, key string) error
	GetFileURLFunc      func(key string) string
}

// NewMockImageStore creates a new mock image store for testing
func NewMockImageStore() *MockImageStore {
	return &MockImageStore{
		Bucket:   "test-bucket",
		Region:   "eu-central-1",
		Endpoint: "",
	}
}

// GenerateFileKey generates a unique file key for storage
func (m *MockImageStore) GenerateFileKey(userID, fileExt string) string {
	if m.GenerateFileKeyFunc != nil {
		return m.GenerateFileKeyFunc(userID, fileExt)
	}
	return fmt.Sprintf("profiles/%s/%s_%d%s", userID, uuid.New().String(), time.Now().UnixNano(), fileExt)
}

// UploadFile simulates file upload
func (m *MockImageStore) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, key, file, contentType)
	}
	return m.GetFileURL(key), nil
}

// DeleteFile simulates file deletion
func (m *MockImageStore) DeleteFile(ctx context.Context, key string) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, key)
	}
	return nil
}

// GetFileURL returns the public URL for a file
func (m *MockImageStore) GetFileURL(key string) string {
	if m.GetFileURLFunc != nil {
		return m.GetFileURLFunc(key)
	}
	if m.Endpoint != "" && !strings.Contains(m.Endpoint, "amazonaws.com") {
		return fmt.Sprintf("%s/%s/%s", m.Endpoint, m.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", m.Bucket, m.Region, key)
}

// Ensure MockImageStore implements ImageStore
var _ ImageStore = (*MockImageStore)(nil)
