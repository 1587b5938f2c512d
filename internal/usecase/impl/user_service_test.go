package impl

import (
	"context"
	"testing"

	"terrasense/internal/domain/entity"
	domainerrors "terrasense/internal/domain/errors"
	"terrasense/internal/domain/repository"
	mockRepo "terrasense/internal/mocks/repository"
	mockService "terrasense/internal/mocks/service"
	"terrasense/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// passthroughTx makes the transaction manager invoke the callback with a
// factory handing out the given user repository.
func passthroughTx(t *testing.T, fx userServiceFixtures) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(fx.userRepo).Maybe()

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
	}

	fx.hasher.EXPECT().Hash("s3cretpass").Return("hashed", nil)
	passthroughTx(t, fx)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(nil, repository.ErrUserNotFound)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = 1
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hashed", user.PasswordHash)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
	}

	fx.hasher.EXPECT().Hash("s3cretpass").Return("hashed", nil)
	passthroughTx(t, fx)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(&entity.User{ID: 7, Email: "alice@example.com"}, nil)

	user, err := fx.service.Register(ctx, input)
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestUserService_Register_DuplicateRace(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
	}

	fx.hasher.EXPECT().Hash("s3cretpass").Return("hashed", nil)
	passthroughTx(t, fx)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(nil, repository.ErrUserNotFound)

	// The unique constraint backstops a concurrent registration that slipped
	// between the pre-check and the insert.
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: 1, Email: "alice@example.com", PasswordHash: "hashed"}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(user, nil)

	fx.hasher.EXPECT().Check("s3cretpass", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateToken(user).Return("signed-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: 1, Email: "alice@example.com", PasswordHash: "hashed"}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(user, nil)

	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Nil(t, output)

	// Unknown email and wrong password surface as the same error.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_GetByID_Self(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: 1, Email: "alice@example.com"}

	fx.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(user, nil)

	got, err := fx.service.GetByID(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_GetByID_OtherUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	got, err := fx.service.GetByID(ctx, 1, 2)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_GetByID_Missing(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, int64(5)).Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.GetByID(ctx, 5, 5)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("s3cretpass").Return("", errors.New("bcrypt failure"))

	user, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
	})
	require.Error(t, err)
	assert.Nil(t, user)
}
