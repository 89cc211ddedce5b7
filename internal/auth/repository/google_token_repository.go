package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authdomain "jarvis-backend/internal/auth/domain"
)

// ErrNoGoogleToken is returned when a user has not granted Gmail access.
var ErrNoGoogleToken = errors.New("no Google token stored for user")

// GoogleTokenRepository defines the interface for refresh token storage.
// It also satisfies the mail gateway's TokenStore contract.
type GoogleTokenRepository interface {
	Upsert(token *authdomain.GoogleToken) error
	RefreshTokenForUser(userID string) (string, error)
}

// googleTokenRepository implements GoogleTokenRepository using GORM
type googleTokenRepository struct {
	db *gorm.DB
}

func NewGoogleTokenRepository(db *gorm.DB) GoogleTokenRepository {
	return &googleTokenRepository{db: db}
}

func (r *googleTokenRepository) Upsert(token *authdomain.GoogleToken) error {
	now := time.Now()
	if token.CreatedAt.IsZero() {
		token.CreatedAt = now
	}
	token.UpdatedAt = now
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"refresh_token", "scope", "updated_at"}),
	}).Create(token).Error
}

func (r *googleTokenRepository) RefreshTokenForUser(userID string) (string, error) {
	var token authdomain.GoogleToken
	err := r.db.Where("user_id = ?", userID).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNoGoogleToken
		}
		return "", err
	}
	return token.RefreshToken, nil
}
