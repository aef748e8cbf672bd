package usecase

import (
	"context"
	"errors"
	"testing"

	"vocal-feed/internal/entity"
	"vocal-feed/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUseCase() (AuthUseCase, *MockUserRepository, *jwt.Service) {
	repo := new(MockUserRepository)
	jwtService := jwt.NewService("test-secret")
	return NewAuthUseCase(repo, jwtService, quietLogger()), repo, jwtService
}

func TestRegister_Success(t *testing.T) {
	uc, repo, jwtService := newAuthUseCase()

	repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, entity.ErrNotFound)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "alice@example.com" &&
			u.Pseudo == "alice" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")) == nil
	})).Return(nil)

	user, token, err := uc.Register(context.Background(), "  Alice@Example.com ", "password123", " alice ")

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	repo.AssertExpectations(t)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		pseudo   string
		field    string
	}{
		{"bad email", "not-an-email", "password123", "alice", "email"},
		{"empty email", "", "password123", "alice", "email"},
		{"short password", "a@example.com", "short", "alice", "password"},
		{"short pseudo", "a@example.com", "password123", "al", "pseudo"},
		{"long pseudo", "a@example.com", "password123", "abcdefghijklmnopqrstuvwxyz12345", "pseudo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, _ := newAuthUseCase()

			_, _, err := uc.Register(context.Background(), tt.email, tt.password, tt.pseudo)

			var verr *entity.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, repo, _ := newAuthUseCase()

	repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(&entity.User{ID: "u1"}, nil)

	_, _, err := uc.Register(context.Background(), "alice@example.com", "password123", "alice")

	assert.ErrorIs(t, err, entity.ErrConflict)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_ConcurrentDuplicateCaughtByIndex(t *testing.T) {
	uc, repo, _ := newAuthUseCase()

	repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, entity.ErrNotFound)
	repo.On("Create", mock.Anything, mock.Anything).Return(entity.ErrConflict)

	_, _, err := uc.Register(context.Background(), "alice@example.com", "password123", "alice")

	assert.ErrorIs(t, err, entity.ErrConflict)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &entity.User{ID: "u1", Email: "alice@example.com", Pseudo: "alice", PasswordHash: string(hash)}

	t.Run("success", func(t *testing.T) {
		uc, repo, _ := newAuthUseCase()
		repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(stored, nil)

		user, token, err := uc.Login(context.Background(), "ALICE@example.com", "password123")

		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, repo, _ := newAuthUseCase()
		repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(stored, nil)

		_, _, err := uc.Login(context.Background(), "alice@example.com", "wrong-password")

		assert.ErrorIs(t, err, entity.ErrUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		uc, repo, _ := newAuthUseCase()
		repo.On("GetByEmail", mock.Anything, "bob@example.com").Return(nil, entity.ErrNotFound)

		_, _, err := uc.Login(context.Background(), "bob@example.com", "password123")

		assert.ErrorIs(t, err, entity.ErrUnauthorized)
	})

	t.Run("store failure is not unauthorized", func(t *testing.T) {
		uc, repo, _ := newAuthUseCase()
		repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, errors.New("db down"))

		_, _, err := uc.Login(context.Background(), "alice@example.com", "password123")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, entity.ErrUnauthorized)
	})
}

func TestUpdatePseudo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc, repo, _ := newAuthUseCase()
		repo.On("UpdatePseudo", mock.Anything, "u1", "newname").Return(true, nil)
		repo.On("GetByID", mock.Anything, "u1").Return(&entity.User{ID: "u1", Pseudo: "newname"}, nil)

		user, err := uc.UpdatePseudo(context.Background(), "u1", " newname ")

		require.NoError(t, err)
		assert.Equal(t, "newname", user.Pseudo)
	})

	t.Run("invalid", func(t *testing.T) {
		uc, repo, _ := newAuthUseCase()

		_, err := uc.UpdatePseudo(context.Background(), "u1", "x")

		var verr *entity.ValidationError
		assert.ErrorAs(t, err, &verr)
		repo.AssertNotCalled(t, "UpdatePseudo", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing user", func(t *testing.T) {
		uc, repo, _ := newAuthUseCase()
		repo.On("UpdatePseudo", mock.Anything, "ghost", "newname").Return(false, nil)

		_, err := uc.UpdatePseudo(context.Background(), "ghost", "newname")

		assert.ErrorIs(t, err, entity.ErrNotFound)
	})
}
