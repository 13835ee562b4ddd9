// Package archive keeps copies of exported documents in object storage.
package archive

import (
	"context"
	"path"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/lti-omt/internal/domain/entities"
	"github.com/johnquangdev/lti-omt/internal/domain/repositories"
	"github.com/johnquangdev/lti-omt/internal/usecase/export"
)

// DefaultListLimit bounds List when the caller passes no limit
const DefaultListLimit = 50

// ObjectStore is the storage capability the archive needs
type ObjectStore interface {
	Upload(ctx context.Context, objectName string, content []byte, contentType string) error
	PresignedURL(ctx context.Context, objectName string) (string, error)
}

// Service defines the archive use case
type Service interface {
	export.Archiver

	// List returns archived exports newest first, each with a download link
	List(ctx context.Context, limit int) ([]*entities.ArchiveRecord, error)
}

var _ Service = (*ArchiveService)(nil)

// ArchiveService implements Service
type ArchiveService struct {
	store  ObjectStore
	repo   repositories.ArchiveRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewArchiveService creates a new archive service
func NewArchiveService(store ObjectStore, repo repositories.ArchiveRepository, logger *zap.Logger) *ArchiveService {
	return &ArchiveService{store: store, repo: repo, logger: logger, now: time.Now}
}

// ObjectName builds the dated object key for an exported file
func ObjectName(fileName string, at time.Time) string {
	return path.Join("exports", at.UTC().Format("2006/01/02"), uuid.NewString()+"-"+fileName)
}

// Archive uploads an artifact and records it in the index
func (s *ArchiveService) Archive(ctx context.Context, artifact *export.Artifact) (*entities.ArchiveRecord, error) {
	objectName := ObjectName(artifact.Filename, s.now())
	if err := s.store.Upload(ctx, objectName, artifact.Content, artifact.ContentType); err != nil {
		return nil, err
	}

	record := entities.NewArchiveRecord(objectName, artifact.Filename, artifact.ContentType, int64(len(artifact.Content)), artifact.MeetingDate)
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("Export archived",
		zap.String("object", objectName),
		zap.Int64("size", record.SizeBytes),
	)
	return record, nil
}

// List implements Service. A record whose link cannot be signed is returned without one.
func (s *ArchiveService) List(ctx context.Context, limit int) ([]*entities.ArchiveRecord, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	records, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		url, err := s.store.PresignedURL(ctx, r.ObjectName)
		if err != nil {
			s.logger.Warn("Failed to sign archive URL", zap.String("object", r.ObjectName), zap.Error(err))
			continue
		}
		r.URL = url
	}
	return records, nil
}
