package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tickethub-io/tickethub/internal/domain"
	"github.com/tickethub-io/tickethub/internal/service/ports/mocks"
	"github.com/tickethub-io/tickethub/internal/token"
)

func newUserService(t *testing.T) (*UserService, *mocks.MockUserRepo) {
	repo := mocks.NewMockUserRepo(t)
	tokens := token.NewManager("test-secret", time.Hour)
	svc := NewUserService(repo, tokens, newTestLogger(t))
	return svc, repo
}

func TestUserService_Register_Success(t *testing.T) {
	svc, repo := newUserService(t)

	var created *domain.User
	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, u *domain.User) {
		created = u
	}).Return(nil)

	user, err := svc.Register(context.Background(), domain.CreateUserInput{
		Email:     "Alice@Example.com",
		Password:  "correct horse",
		FirstName: "Alice",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsAdmin)
	require.NotNil(t, created)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("correct horse")))
}

func TestUserService_Register_ShortPassword(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Register(context.Background(), domain.CreateUserInput{
		Email:    "alice@example.com",
		Password: "short",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Register_InvalidEmail(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Register(context.Background(), domain.CreateUserInput{
		Email:    "not-an-email",
		Password: "correct horse",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Register(context.Background(), domain.CreateUserInput{
		Email:    "alice@example.com",
		Password: "correct horse",
	})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_Login_Success(t *testing.T) {
	svc, repo := newUserService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{
		ID:           "u1",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		IsActive:     true,
	}
	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil)

	got, signed, err := svc.Login(context.Background(), " Alice@Example.com ", "correct horse")

	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
	assert.NotEmpty(t, signed)

	principal, err := token.NewManager("test-secret", time.Hour).Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "u1", principal.UserID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, repo := newUserService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{ID: "u1", Email: "alice@example.com", PasswordHash: string(hash), IsActive: true}
	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrong")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Login_InactiveUser(t *testing.T) {
	svc, repo := newUserService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{ID: "u1", Email: "alice@example.com", PasswordHash: string(hash), IsActive: false}
	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "correct horse")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
