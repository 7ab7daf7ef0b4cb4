package impl

import (
	"context"
	"testing"

	"notes/internal/domain/entity"
	domainerrors "notes/internal/domain/errors"
	"notes/internal/domain/repository"
	"notes/internal/errors"
	"notes/internal/infra/auth"
	mockRepo "notes/internal/mocks/repository"
	mockSvc "notes/internal/mocks/service"
	"notes/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("s3cret").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.NotEqual(t, uuid.Nil, user.ID)
			assert.Equal(t, "alice@example.com", user.Email)
			assert.Equal(t, "hashed", user.PasswordHash)
		}).
		Return(nil)
	fx.tokenService.EXPECT().Issue(mock.AnythingOfType("*entity.User")).Return("token", nil)

	out, err := fx.service.Signup(ctx, usecase.SignupInput{Email: "  Alice@Example.com ", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "token", out.Token)
	assert.Equal(t, "alice@example.com", out.User.Email)
}

func TestAuthService_Signup_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.SignupInput
	}{
		{name: "missing email", input: usecase.SignupInput{Password: "pw"}},
		{name: "blank password", input: usecase.SignupInput{Email: "a@b.c", Password: "   "}},
		{name: "password too long", input: usecase.SignupInput{Email: "a@b.c", Password: string(make([]byte, 73))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			_, err := fx.service.Signup(context.Background(), tt.input)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "alice@example.com"}, nil)

	// No Hash, Create or Issue expectation: a second record must never be written.
	out, err := fx.service.Signup(ctx, usecase.SignupInput{Email: "alice@example.com", Password: "pw"})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Signup_ConcurrentDuplicate(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pw").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrUserAlreadyExists)

	_, err := fx.service.Signup(ctx, usecase.SignupInput{Email: "alice@example.com", Password: "pw"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Signup_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pw").Return("", errors.New("boom"))

	_, err := fx.service.Signup(ctx, usecase.SignupInput{Email: "alice@example.com", Password: "pw"})
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "bob@example.com", PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "bob@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("pw", "hashed").Return(true)
	fx.tokenService.EXPECT().Issue(user).Return("token", nil)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "BOB@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "token", out.Token)
	assert.Equal(t, user, out.User)
}

func TestAuthService_Login_UnknownEmailMatchesWrongPassword(t *testing.T) {
	ctx := context.Background()

	unknown := createTestAuthService(t)
	unknown.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
	unknown.hasher.EXPECT().Hash(dummyPassword).Return("dummy-hash", nil).Once()
	unknown.hasher.EXPECT().Check("pw", "dummy-hash").Return(false)

	_, unknownErr := unknown.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "pw"})

	wrong := createTestAuthService(t)
	wrong.userRepo.EXPECT().
		FindByEmail(ctx, "bob@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "bob@example.com", PasswordHash: "hashed"}, nil)
	wrong.hasher.EXPECT().Check("pw", "hashed").Return(false)

	_, wrongErr := wrong.service.Login(ctx, usecase.LoginInput{Email: "bob@example.com", Password: "pw"})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, unknownErr, wrongErr)
	assert.True(t, errors.Is(wrongErr, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_DummyHashComputedOnce(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound).Twice()
	fx.hasher.EXPECT().Hash(dummyPassword).Return("dummy-hash", nil).Once()
	fx.hasher.EXPECT().Check("pw", "dummy-hash").Return(false).Twice()

	for range 2 {
		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "pw"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	}
}

func TestAuthService_Login_RepositoryFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	fx.userRepo.EXPECT().FindByEmail(ctx, "bob@example.com").Return(nil, dbErr)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "bob@example.com", Password: "pw"})
	assert.True(t, errors.Is(err, dbErr))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Me(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "bob@example.com"}
	deleted := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().FindByID(ctx, deleted).Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.Me(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = fx.service.Me(ctx, deleted)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

// TestAuthService_SignupThenLogin runs the real hasher and token service
// against an in-memory user store.
func TestAuthService_SignupThenLogin(t *testing.T) {
	cfg := newTestConfig()
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	users := map[string]*entity.User{}
	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().
		FindByEmail(mock.Anything, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, email string) (*entity.User, error) {
			if user, ok := users[email]; ok {
				return user, nil
			}

			return nil, repository.ErrUserNotFound
		})
	userRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			users[user.Email] = user

			return nil
		})

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokens,
		Logger:       newDiscardLogger(),
	})

	credentials := []usecase.SignupInput{
		{Email: "carol@example.com", Password: "correct horse"},
		{Email: "Dave@Example.org", Password: " spaces around "},
		{Email: "erin@example.net", Password: "ünïcödé-πάσσ"},
	}

	for _, c := range credentials {
		signedUp, err := service.Signup(context.Background(), c)
		require.NoError(t, err)

		loggedIn, err := service.Login(context.Background(), usecase.LoginInput{Email: c.Email, Password: c.Password})
		require.NoError(t, err)

		claims, err := tokens.Verify(loggedIn.Token)
		require.NoError(t, err)

		subject, err := claims.UserID()
		require.NoError(t, err)
		assert.Equal(t, signedUp.User.ID, subject)
		assert.Equal(t, entity.NormalizeEmail(c.Email), claims.Email)
	}

	assert.Len(t, users, len(credentials))
}
