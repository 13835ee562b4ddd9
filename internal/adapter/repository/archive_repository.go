package repository

import (
	"context"
	"sort"
	"sync"

	"gorm.io/gorm"

	"github.com/johnquangdev/lti-omt/internal/domain/entities"
	"github.com/johnquangdev/lti-omt/internal/domain/repositories"
)

// archiveRepository implements ArchiveRepository on the export_archive table
type archiveRepository struct {
	db *gorm.DB
}

// NewArchiveRepository creates a new relational archive index
func NewArchiveRepository(db *gorm.DB) repositories.ArchiveRepository {
	return &archiveRepository{db: db}
}

// Create inserts a record
func (r *archiveRepository) Create(ctx context.Context, record *entities.ArchiveRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// List returns the newest records first
func (r *archiveRepository) List(ctx context.Context, limit int) ([]*entities.ArchiveRecord, error) {
	var records []*entities.ArchiveRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

// memoryArchiveRepository keeps the archive index in process memory
type memoryArchiveRepository struct {
	mu      sync.RWMutex
	records []*entities.ArchiveRecord
}

// NewMemoryArchiveRepository creates an in-memory archive index
func NewMemoryArchiveRepository() repositories.ArchiveRepository {
	return &memoryArchiveRepository{}
}

// Create appends a record
func (r *memoryArchiveRepository) Create(_ context.Context, record *entities.ArchiveRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	return nil
}

// List returns the newest records first
func (r *memoryArchiveRepository) List(_ context.Context, limit int) ([]*entities.ArchiveRecord, error) {
	r.mu.RLock()
	out := make([]*entities.ArchiveRecord, len(r.records))
	copy(out, r.records)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
