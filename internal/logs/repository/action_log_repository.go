package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jarvis-backend/internal/logs/domain"
)

// actionLogRepository implements ActionLogRepository using GORM
type actionLogRepository struct {
	db *gorm.DB
}

// NewActionLogRepository creates a new instance of actionLogRepository
func NewActionLogRepository(db *gorm.DB) ActionLogRepository {
	return &actionLogRepository{db: db}
}

func (r *actionLogRepository) Create(log *domain.ActionLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	return r.db.Create(log).Error
}

func (r *actionLogRepository) FindByUserID(userID string, limit int) ([]*domain.ActionLog, error) {
	var logs []*domain.ActionLog
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

func (r *actionLogRepository) FindByID(userID, logID string) (*domain.ActionLog, error) {
	var log domain.ActionLog
	err := r.db.Where("id = ? AND user_id = ?", logID, userID).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}
