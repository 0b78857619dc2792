package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Dan9191/waste-service/internal/apperr"
	"github.com/Dan9191/waste-service/internal/models"
)

// NewUser is the input for creating an account
type NewUser struct {
	Username    string
	Email       string
	Password    string
	FullName    string
	Role        string
	Preferences map[string]any
}

// hashPassword rejects passwords bcrypt cannot take as invalid input for field
func hashPassword(password, field string) ([]byte, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, apperr.Validation("Invalid password",
			apperr.FieldError{Field: field, Message: field + " must be at most 72 bytes"})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return hashed, nil
}

// CreateUser hashes the password and stores a new user
func (s *Service) CreateUser(ctx context.Context, in NewUser) (*models.User, error) {
	hashedPassword, err := hashPassword(in.Password, "password")
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     strings.TrimSpace(in.Username),
		Email:        strings.TrimSpace(in.Email),
		FullName:     strings.TrimSpace(in.FullName),
		PasswordHash: string(hashedPassword),
		Role:         in.Role,
		Preferences:  models.MergePreferences(nil, in.Preferences),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.log.Infof("User created: %s", user.Email)
	return user, nil
}

// GetUser retrieves a user by id
func (s *Service) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, notFound(err, "User not found")
	}
	return user, nil
}

// UpdateUser changes profile fields
func (s *Service) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	if patch.Email != nil {
		e := strings.TrimSpace(*patch.Email)
		patch.Email = &e
	}
	if patch.Username != nil {
		u := strings.TrimSpace(*patch.Username)
		patch.Username = &u
	}
	user, err := s.store.UpdateUser(ctx, id, patch)
	if err != nil {
		return nil, notFound(err, "User not found")
	}
	s.log.Infof("User updated: %d", id)
	return user, nil
}

// UpdatePreferences merges prefs into the user's preferences and returns the result
func (s *Service) UpdatePreferences(ctx context.Context, id int64, prefs map[string]any) (map[string]any, error) {
	if prefs == nil {
		return nil, apperr.Validation("Preferences must be an object")
	}
	user, err := s.store.MergePreferences(ctx, id, prefs)
	if err != nil {
		return nil, notFound(err, "User not found")
	}
	return user.Preferences, nil
}
