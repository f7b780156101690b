package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/0929smj/chun2/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

// EnsureAdmin seeds the configured admin account on first run. An existing
// account is left alone so password changes survive restarts.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	var existing model.AdminAccount
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("query admin: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.db.WithContext(ctx).Create(&model.AdminAccount{
		Username: username, Password: string(hash), Name: username,
	}).Error
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*model.AdminAccount, error) {
	var a model.AdminAccount
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&a).Error; err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)) != nil {
		return nil, fmt.Errorf("wrong password")
	}
	return &a, nil
}
