package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fadilmartias/recruit-assistant/internal/config"
	"github.com/fadilmartias/recruit-assistant/internal/model"
	"github.com/fadilmartias/recruit-assistant/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase struct {
	users *repository.UserRepository
	cost  int
}

func NewAuthUsecase(users *repository.UserRepository) *AuthUsecase {
	return &AuthUsecase{users: users, cost: bcrypt.DefaultCost}
}

func (uc *AuthUsecase) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, &ValidationError{Message: "name, email and password are required"}
	}

	if _, err := uc.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !repository.IsNotFound(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), uc.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &model.User{Name: name, Email: email, PasswordHash: string(hash)}
	if err := uc.users.Create(ctx, user); err != nil {
		if repository.IsDuplicate(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (uc *AuthUsecase) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (uc *AuthUsecase) User(ctx context.Context, id uint) (*model.User, error) {
	return uc.users.FindByID(ctx, id)
}

// SeedAdmin creates the configured admin account on first start.
func (uc *AuthUsecase) SeedAdmin(ctx context.Context, authConfig *config.AuthConfig) error {
	if authConfig.AdminEmail == "" || authConfig.AdminPassword == "" {
		return nil
	}
	_, err := uc.Register(ctx, authConfig.AdminName, authConfig.AdminEmail, authConfig.AdminPassword)
	if errors.Is(err, ErrEmailTaken) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	slog.Info("admin user created", "email", authConfig.AdminEmail)
	return nil
}
