package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fernet/fernet-go"

	"github.com/mdekker/Goal-Planner-Backend/internal/apperrors"
	"github.com/mdekker/Goal-Planner-Backend/internal/repository"
)

// assistantTokenKey is the app_setting key the encrypted assistant API token
// is stored under.
const assistantTokenKey = "assistant_api_token"

// SettingsService manages application settings, encrypting secret values at
// rest with a fernet key supplied through configuration. When no key is
// configured the secret-bearing operations are disabled rather than falling
// back to plaintext storage.
type SettingsService struct {
	settingsRepo *repository.SettingsRepository
	keys         []*fernet.Key
}

// NewSettingsService creates a new SettingsService. encryptionKey is a
// base64-encoded fernet key; pass an empty string to run without secret
// storage.
func NewSettingsService(settingsRepo *repository.SettingsRepository, encryptionKey string) (*SettingsService, error) {
	s := &SettingsService{settingsRepo: settingsRepo}
	if encryptionKey == "" {
		return s, nil
	}

	keys, err := fernet.DecodeKeys(encryptionKey)
	if err != nil {
		return nil, fmt.Errorf("invalid settings encryption key: %w", err)
	}
	s.keys = keys
	return s, nil
}

// SetAssistantToken encrypts and stores the assistant API token.
func (s *SettingsService) SetAssistantToken(token string) error {
	if s.keys == nil {
		return apperrors.ErrEncryptionKeyNotSet
	}
	if strings.TrimSpace(token) == "" {
		return apperrors.ErrMissingRequiredField
	}

	encrypted, err := fernet.EncryptAndSign([]byte(token), s.keys[0])
	if err != nil {
		return fmt.Errorf("failed to encrypt assistant token: %w", err)
	}
	return s.settingsRepo.SetSetting(assistantTokenKey, string(encrypted))
}

// GetAssistantToken returns the decrypted assistant API token.
func (s *SettingsService) GetAssistantToken() (string, error) {
	if s.keys == nil {
		return "", apperrors.ErrEncryptionKeyNotSet
	}

	stored, err := s.settingsRepo.GetSetting(assistantTokenKey)
	if err != nil {
		return "", err
	}

	decrypted := fernet.VerifyAndDecrypt([]byte(stored), 0, s.keys)
	if decrypted == nil {
		return "", errors.New("failed to decrypt assistant token")
	}
	return string(decrypted), nil
}

// GetMaskedAssistantToken returns the stored token with all but the last four
// characters obscured, for display in settings screens. A missing token is
// reported as apperrors.ErrSettingNotFound.
func (s *SettingsService) GetMaskedAssistantToken() (string, error) {
	token, err := s.GetAssistantToken()
	if err != nil {
		return "", err
	}
	if len(token) <= 4 {
		return strings.Repeat("*", len(token)), nil
	}
	return strings.Repeat("*", len(token)-4) + token[len(token)-4:], nil
}
