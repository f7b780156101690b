package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/0929smj/chun2/internal/model"

	"gorm.io/gorm"
)

const keyEndpointURL = "sheet_endpoint_url"

// SettingsService persists the endpoint URL in the local sqlite store. A
// stored row wins over the config bootstrap value; an empty result means no
// remote is configured.
type SettingsService struct {
	db       *gorm.DB
	fallback string
}

func NewSettingsService(db *gorm.DB, fallback string) *SettingsService {
	return &SettingsService{db: db, fallback: fallback}
}

func (s *SettingsService) EndpointURL() string {
	var row model.Setting
	err := s.db.Where("key = ?", keyEndpointURL).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.fallback
	}
	if err != nil {
		return s.fallback
	}
	return row.Value
}

func (s *SettingsService) SetEndpointURL(ctx context.Context, url string) error {
	row := model.Setting{Key: keyEndpointURL, Value: url}
	err := s.db.WithContext(ctx).Save(&row).Error
	if err != nil {
		return fmt.Errorf("save endpoint url: %w", err)
	}
	return nil
}
