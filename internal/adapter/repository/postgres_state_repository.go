package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/lti-omt/internal/domain/entities"
	"github.com/johnquangdev/lti-omt/internal/domain/repositories"
)

// stateRepository implements StateRepository on the persisted_state table
type stateRepository struct {
	db *gorm.DB
}

// NewStateRepository creates a new relational state repository
func NewStateRepository(db *gorm.DB) repositories.StateRepository {
	return &stateRepository{db: db}
}

// Load returns the stored document
func (r *stateRepository) Load(ctx context.Context, collection entities.Collection) ([]byte, error) {
	var record entities.StateRecord
	err := r.db.WithContext(ctx).
		Where("collection = ?", string(collection)).
		First(&record).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrCollectionNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(record.Payload), nil
}

// Save upserts the document of a collection
func (r *stateRepository) Save(ctx context.Context, collection entities.Collection, payload []byte) error {
	record := entities.StateRecord{
		Collection: string(collection),
		Payload:    datatypes.JSON(payload),
		UpdatedAt:  time.Now().UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "collection"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&record).Error
}

// Delete removes a collection
func (r *stateRepository) Delete(ctx context.Context, collection entities.Collection) error {
	return r.db.WithContext(ctx).
		Where("collection = ?", string(collection)).
		Delete(&entities.StateRecord{}).Error
}
