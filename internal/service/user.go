package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"

	"github.com/tickethub-io/tickethub/internal/domain"
	"github.com/tickethub-io/tickethub/internal/service/ports"
	"github.com/tickethub-io/tickethub/internal/token"
)

const minPasswordLength = 8

type UserService struct {
	repo   ports.UserRepo
	tokens *token.Manager
	logger logger.Logger
}

func NewUserService(repo ports.UserRepo, tokens *token.Manager, log logger.Logger) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
		logger: log,
	}
}

func (s *UserService) Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	}
	if len(input.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Email:          email,
		PasswordHash:   string(hash),
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		IsActive:       true,
		TelegramChatID: input.TelegramChatID,
	}

	if err = s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		logger.String("user_id", user.ID),
		logger.String("email", user.Email),
	)

	return user, nil
}

// Login verifies the credentials and issues an access token. Not-found
// and wrong-password both map to the same error so the endpoint does
// not leak which emails are registered.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, "", domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, signed, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	return s.repo.List(ctx, limit, offset)
}
