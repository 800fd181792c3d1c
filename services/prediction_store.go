package services

import (
	"fmt"

	"github.com/mazyaa/API-ML-RFC/models"

	"gorm.io/gorm"
)

// BulkLoadMode selects how imported rows land in the predictions table.
type BulkLoadMode string

const (
	// BulkLoadReplace drops and recreates the table before inserting.
	BulkLoadReplace BulkLoadMode = "replace"
	// BulkLoadAppend inserts into the existing table.
	BulkLoadAppend BulkLoadMode = "append"

	insertBatchSize = 200
)

// PredictionStore owns the predictions table. The schema is created lazily
// so the first prediction (or an explicit create-table call) brings it up.
type PredictionStore struct {
	db *gorm.DB
}

func NewPredictionStore(db *gorm.DB) *PredictionStore {
	return &PredictionStore{db: db}
}

// EnsureSchema creates the predictions table if it does not exist yet.
// Safe to call repeatedly.
func (s *PredictionStore) EnsureSchema() error {
	return s.db.AutoMigrate(&models.Prediction{})
}

// Insert appends one prediction row and assigns its id.
func (s *PredictionStore) Insert(rec *models.Prediction) error {
	if err := s.EnsureSchema(); err != nil {
		return err
	}
	return s.db.Create(rec).Error
}

// ListAll returns every stored prediction in insertion order.
func (s *PredictionStore) ListAll() ([]models.Prediction, error) {
	if err := s.EnsureSchema(); err != nil {
		return nil, err
	}
	var rows []models.Prediction
	if err := s.db.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// BulkLoad imports rows either by recreating the table (replace) or by
// adding to it (append). Ids are assigned by the store in both modes.
func (s *PredictionStore) BulkLoad(rows []models.Prediction, mode BulkLoadMode) error {
	switch mode {
	case BulkLoadReplace:
		migrator := s.db.Migrator()
		if migrator.HasTable(&models.Prediction{}) {
			if err := migrator.DropTable(&models.Prediction{}); err != nil {
				return err
			}
		}
	case BulkLoadAppend:
		// table created below if missing
	default:
		return fmt.Errorf("unknown bulk load mode %q", mode)
	}

	if err := s.EnsureSchema(); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return s.db.CreateInBatches(rows, insertBatchSize).Error
}

// DeleteAll removes every row but keeps the table and its id sequence, so
// ids are never reused after a wipe.
func (s *PredictionStore) DeleteAll() error {
	if err := s.EnsureSchema(); err != nil {
		return err
	}
	return s.db.Exec("DELETE FROM predictions").Error
}

// Count returns the number of stored predictions.
func (s *PredictionStore) Count() (int64, error) {
	if err := s.EnsureSchema(); err != nil {
		return 0, err
	}
	var n int64
	if err := s.db.Model(&models.Prediction{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
