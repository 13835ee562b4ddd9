// Package backup snapshots and restores the persisted collections as a single
// JSON envelope.
package backup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.uber.org/zap"

	"github.com/johnquangdev/lti-omt/internal/domain/entities"
	"github.com/johnquangdev/lti-omt/internal/domain/repositories"
	"github.com/johnquangdev/lti-omt/internal/usecase/shape"
)

// TimestampLayout matches the millisecond UTC timestamps written by browsers
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Service defines the backup use case
type Service interface {
	// Create snapshots the backed-up collections; absent collections are recorded as null
	Create(ctx context.Context) (*entities.BackupEnvelope, error)

	// Encode renders an envelope with every snapshot byte-for-byte as stored
	Encode(env *entities.BackupEnvelope) ([]byte, error)

	// Restore validates an envelope and overwrites the collections it carries
	Restore(ctx context.Context, raw []byte) (*RestoreOutput, error)
}

// RestoreOutput lists what a restore touched
type RestoreOutput struct {
	Timestamp string               `json:"timestamp"`
	Version   string               `json:"version"`
	Restored  []entities.Collection `json:"restored"`
	Skipped   []entities.Collection `json:"skipped"`
}

// InvalidBackupError reports a structurally unusable envelope
type InvalidBackupError struct {
	Missing string
}

func (e *InvalidBackupError) Error() string {
	return "Invalid backup: missing " + e.Missing
}

func (e *InvalidBackupError) Unwrap() error {
	return entities.ErrInvalidBackup
}

var _ Service = (*BackupService)(nil)

// BackupService implements Service over a state repository
type BackupService struct {
	repo   repositories.StateRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewBackupService creates a new backup service
func NewBackupService(repo repositories.StateRepository, logger *zap.Logger) *BackupService {
	return &BackupService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Create implements Service
func (s *BackupService) Create(ctx context.Context) (*entities.BackupEnvelope, error) {
	env := &entities.BackupEnvelope{
		Timestamp: s.now().UTC().Format(TimestampLayout),
		Version:   entities.BackupVersion,
	}

	for _, c := range entities.BackupCollections {
		raw, err := s.repo.Load(ctx, c)
		switch {
		case errors.Is(err, entities.ErrCollectionNotFound):
			raw = []byte("null")
		case err != nil:
			return nil, fmt.Errorf("failed to snapshot %s: %w", c, err)
		}
		env.Data.Set(c, raw)
	}

	s.logger.Info("Backup created", zap.String("timestamp", env.Timestamp))
	return env, nil
}

// Encode implements Service
func (s *BackupService) Encode(env *entities.BackupEnvelope) ([]byte, error) {
	out := []byte(`{}`)
	var err error

	if out, err = sjson.SetBytes(out, "timestamp", env.Timestamp); err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	if out, err = sjson.SetBytes(out, "version", env.Version); err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	for _, c := range entities.BackupCollections {
		raw := []byte(env.Data.Get(c))
		if entities.IsAbsent(raw) {
			raw = []byte("null")
		}
		if out, err = sjson.SetRawBytes(out, "data."+string(c), raw); err != nil {
			return nil, fmt.Errorf("failed to encode backup %s: %w", c, err)
		}
	}
	return out, nil
}

// Restore implements Service. Collections whose key is missing or null are left untouched.
func (s *BackupService) Restore(ctx context.Context, raw []byte) (*RestoreOutput, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: not valid JSON", entities.ErrInvalidBackup)
	}
	doc := gjson.ParseBytes(raw)

	timestamp := shape.Lookup(doc, "timestamp")
	if !filled(timestamp) {
		return nil, &InvalidBackupError{Missing: "timestamp"}
	}
	version := shape.Lookup(doc, "version")
	if !filled(version) {
		return nil, &InvalidBackupError{Missing: "version"}
	}
	data := shape.Lookup(doc, "data")
	if !data.IsObject() {
		return nil, &InvalidBackupError{Missing: "data"}
	}

	out := &RestoreOutput{
		Timestamp: timestamp.String(),
		Version:   version.String(),
		Restored:  []entities.Collection{},
		Skipped:   []entities.Collection{},
	}
	for _, c := range entities.BackupCollections {
		snapshot := shape.Lookup(data, string(c))
		if !snapshot.Exists() || snapshot.Type == gjson.Null {
			out.Skipped = append(out.Skipped, c)
			continue
		}
		if err := s.repo.Save(ctx, c, []byte(snapshot.Raw)); err != nil {
			return nil, fmt.Errorf("failed to restore %s: %w", c, err)
		}
		out.Restored = append(out.Restored, c)
	}

	s.logger.Info("Backup restored",
		zap.String("timestamp", out.Timestamp),
		zap.String("version", out.Version),
		zap.Int("restored", len(out.Restored)),
	)
	return out, nil
}

func filled(v gjson.Result) bool {
	switch v.Type {
	case gjson.Null:
		return false
	case gjson.String:
		return v.Str != ""
	case gjson.False:
		return false
	}
	return v.Exists()
}
