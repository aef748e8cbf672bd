package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"vocal-feed/internal/entity"
	"vocal-feed/internal/repo/persistent"
	"vocal-feed/pkg/jwt"
	"vocal-feed/pkg/logger"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 8
	MinPseudoLength   = 3
	MaxPseudoLength   = 30
)

type AuthUseCase interface {
	Register(ctx context.Context, email, password, pseudo string) (*entity.User, string, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	GetUser(ctx context.Context, userID string) (*entity.User, error)
	UpdatePseudo(ctx context.Context, userID, pseudo string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	validate   *validator.Validate
	logger     *logger.Logger
}

func NewAuthUseCase(userRepo persistent.UserRepository, jwtService *jwt.Service, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		validate:   validator.New(),
		logger:     logger,
	}
}

func validatePseudo(v *entity.ValidationError, pseudo string) {
	n := utf8.RuneCountInString(pseudo)
	if n < MinPseudoLength || n > MaxPseudoLength {
		v.Add("pseudo", fmt.Sprintf("pseudo must be between %d and %d characters", MinPseudoLength, MaxPseudoLength))
	}
}

func (uc *authUseCase) Register(ctx context.Context, email, password, pseudo string) (*entity.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	pseudo = strings.TrimSpace(pseudo)

	v := &entity.ValidationError{}
	if err := uc.validate.Var(email, "required,email"); err != nil {
		v.Add("email", "a valid email is required")
	}
	if len(password) < MinPasswordLength {
		v.Add("password", fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}
	validatePseudo(v, pseudo)
	if err := v.Err(); err != nil {
		return nil, "", err
	}

	if _, err := uc.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", entity.ErrConflict
	} else if !errors.Is(err, entity.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration: %w", err)
	}

	user := &entity.User{
		Email:        email,
		Pseudo:       pseudo,
		PasswordHash: string(hashedPassword),
	}
	// The unique index still catches a concurrent registration.
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, entity.ErrConflict) {
			return nil, "", entity.ErrConflict
		}
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	uc.logger.Info("User %s registered", user.ID)
	return user, token, nil
}

func (uc *authUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, "", entity.ErrUnauthorized
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", entity.ErrUnauthorized
	}

	token, err := uc.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

func (uc *authUseCase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

func (uc *authUseCase) UpdatePseudo(ctx context.Context, userID, pseudo string) (*entity.User, error) {
	pseudo = strings.TrimSpace(pseudo)

	v := &entity.ValidationError{}
	validatePseudo(v, pseudo)
	if err := v.Err(); err != nil {
		return nil, err
	}

	ok, err := uc.userRepo.UpdatePseudo(ctx, userID, pseudo)
	if err != nil {
		return nil, fmt.Errorf("failed to update pseudo: %w", err)
	}
	if !ok {
		return nil, entity.ErrNotFound
	}
	return uc.userRepo.GetByID(ctx, userID)
}
