package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/domain"
	"github.com/masterbruh1993/mining-trade-finance-sub001/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockWalletService, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	walletService := NewMockWalletService(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, walletService, hashService, jwtService, 24*time.Hour)
	defer ctrl.Finish()
	return service, repo, walletService, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, walletService, passwordHasher, _ := NewMock(t)
	referrerID := 7

	tests := []struct {
		name          string
		login         string
		password      string
		referralCode  string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful registration",
			login:    "miner",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "miner").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
				walletService.EXPECT().CreateWallets(context.Background(), 1).Return(nil)
			},
			expectedUser: &domain.User{
				ID:           1,
				Login:        "miner",
				PasswordHash: "hashedpassword",
			},
			expectedError: nil,
		},
		{
			name:         "Registration with referral code",
			login:        "referee",
			password:     "testpassword",
			referralCode: "miner",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "referee").Return(nil, nil)
				userRepo.EXPECT().FindByLogin(context.Background(), "miner").Return(&domain.User{ID: referrerID, Login: "miner"}, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					assert.NotNil(t, user.ReferrerID)
					assert.Equal(t, referrerID, *user.ReferrerID)
					user.ID = 2
					return user, nil
				})
				walletService.EXPECT().CreateWallets(context.Background(), 2).Return(nil)
			},
			expectedUser: &domain.User{
				ID:           2,
				Login:        "referee",
				PasswordHash: "hashedpassword",
				ReferrerID:   &referrerID,
			},
			expectedError: nil,
		},
		{
			name:         "Unknown referral code",
			login:        "referee",
			password:     "testpassword",
			referralCode: "nobody",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "referee").Return(nil, nil)
				userRepo.EXPECT().FindByLogin(context.Background(), "nobody").Return(nil, nil)
			},
			expectedUser:  nil,
			expectedError: ErrUnknownReferrer,
		},
		{
			name:     "User already exists",
			login:    "miner",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "miner").Return(&domain.User{Login: "miner"}, nil)
			},
			expectedUser:  nil,
			expectedError: ErrLoginTaken,
		},
		{
			name:     "Error finding user",
			login:    "miner",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "miner").Return(nil, errors.New("database error"))
			},
			expectedUser:  nil,
			expectedError: errors.New("database error"),
		},
		{
			name:     "Error hashing password",
			login:    "miner",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "miner").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hash error"))
			},
			expectedUser:  nil,
			expectedError: errors.New("hash error"),
		},
		{
			name:     "Error creating wallets",
			login:    "miner",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "miner").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
				walletService.EXPECT().CreateWallets(context.Background(), 1).Return(errors.New("wallet error"))
			},
			expectedUser:  nil,
			expectedError: errors.New("wallet error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			user, err := service.Register(context.Background(), tt.login, tt.password, tt.referralCode)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, _, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Successful authentication",
			login:    "miner",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "miner").Return(&domain.User{ID: 1, Login: "miner", PasswordHash: "hashedpassword"}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedError: nil,
		},
		{
			name:     "Unknown login",
			login:    "ghost",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "ghost").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Wrong password",
			login:    "miner",
			password: "wrong",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "miner").Return(&domain.User{ID: 1, Login: "miner", PasswordHash: "hashedpassword"}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrong").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			user, err := service.Authenticate(context.Background(), tt.login, tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, _, jwtService := NewMock(t)
	user := &domain.User{ID: 1, Login: "miner", IsAdmin: true}

	t.Run("Successful generation", func(t *testing.T) {
		jwtService.EXPECT().GenerateJWT(1, true, gomock.Any()).Return("token", nil)

		token, err := service.GenerateToken(user)
		assert.NoError(t, err)
		assert.Equal(t, "token", token)
	})

	t.Run("Generation failure", func(t *testing.T) {
		jwtService.EXPECT().GenerateJWT(1, true, gomock.Any()).Return("", errors.New("sign error"))

		_, err := service.GenerateToken(user)
		assert.Error(t, err)
	})
}
