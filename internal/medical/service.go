package medical

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Service struct {
	repo      *Repo
	uploadDir string
}

func NewService(repo *Repo, uploadDir string) *Service {
	return &Service{repo: repo, uploadDir: uploadDir}
}

// Upload stores the file content on disk under a generated name and
// records it. The original filename is kept only as display metadata,
// never as a path component.
func (s *Service) Upload(ctx context.Context, userID, fileName string, content io.Reader) (*File, error) {
	user, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}
	fileName = filepath.Base(strings.TrimSpace(fileName))
	if fileName == "" || fileName == "." || fileName == string(filepath.Separator) {
		return nil, fmt.Errorf("file name is required")
	}

	if err := os.MkdirAll(s.uploadDir, 0o700); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	stored := uuid.NewString() + strings.ToLower(filepath.Ext(fileName))
	dst, err := os.OpenFile(filepath.Join(s.uploadDir, stored), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(dst, content); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return nil, fmt.Errorf("write upload file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return nil, fmt.Errorf("close upload file: %w", err)
	}

	f := &File{
		User:     user,
		FileName: fileName,
		URL:      "/uploads/" + stored,
	}
	if err := s.repo.Insert(ctx, f); err != nil {
		os.Remove(dst.Name())
		return nil, err
	}
	return f, nil
}

// List retrieves one user's files
func (s *Service) List(ctx context.Context, userID string) ([]*File, error) {
	user, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}
	return s.repo.ListByUser(ctx, user)
}
