package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mdekker/Goal-Planner-Backend/internal/apperrors"
)

// SettingsRepository provides data access methods for the app_setting
// key-value table. Values are stored as given; encryption of secrets happens
// in the settings service before they reach this layer.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository with the provided database connection.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetSetting retrieves a setting value by key.
func (r *SettingsRepository) GetSetting(key string) (string, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM app_setting WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", apperrors.ErrSettingNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("failed to scan app_setting table results: %w", err)
	}
	return value, nil
}

// SetSetting stores a setting value, replacing any previous one.
func (r *SettingsRepository) SetSetting(key, value string) error {
	_, err := r.db.Exec(`
		INSERT INTO app_setting (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to store setting: %w", err)
	}
	return nil
}
