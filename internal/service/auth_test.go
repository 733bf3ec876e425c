package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"forklift-rental-backend/internal/domain"
	"forklift-rental-backend/internal/security"
)

const authTestSecret = "auth-test-secret-0123456789abcdefgh"

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(authTestSecret, 60)

	t.Run("New accounts start as customers", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "new@test.com").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.User).ID = "user-1"
			}).Return(nil)

		user, token, err := svc.Register(ctx, "New", "Customer", "new@test.com", "", "", "hunter22")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, domain.UserRoleUser, user.Role)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")))
	})

	t.Run("Duplicate email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "taken@test.com").Return(&domain.User{ID: "user-1", Email: "taken@test.com"}, nil)

		user, token, err := svc.Register(ctx, "A", "B", "taken@test.com", "", "", "pw")
		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.Nil(t, user)
		assert.Empty(t, token)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(authTestSecret, 60)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	existing := &domain.User{ID: "user-1", Email: "u1@test.com", PasswordHash: string(hash), Role: domain.UserRoleUser}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "u1@test.com").Return(existing, nil)

		user, token, err := svc.Login(ctx, "u1@test.com", "hunter22")
		assert.NoError(t, err)
		assert.Equal(t, existing, user)

		claims, err := tokens.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
	})

	t.Run("Wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "u1@test.com").Return(existing, nil)

		_, _, err := svc.Login(ctx, "u1@test.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "nobody@test.com").Return(nil, domain.ErrNotFound)

		_, _, err := svc.Login(ctx, "nobody@test.com", "pw")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
