package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/momentu-app/momentu-backend/internal/models"
	"github.com/momentu-app/momentu-backend/internal/service"
	"github.com/momentu-app/momentu-backend/pkg/bcrypt"
	"github.com/momentu-app/momentu-backend/pkg/devicestore"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *mockUserStore) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserStore) EmailExists(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserStore) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendWelcomeEmail(to, displayName string) error {
	args := m.Called(to, displayName)
	return args.Error(0)
}

func (m *mockMailer) SendVerificationEmail(to, displayName, token string) error {
	args := m.Called(to, displayName, token)
	return args.Error(0)
}

func newAuthFixture(t *testing.T) (*mockUserStore, *mockMailer, *devicestore.Store, *service.AuthService) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	users := new(mockUserStore)
	mailer := new(mockMailer)
	store := devicestore.NewStore()
	return users, mailer, store, service.NewAuthService(users, mailer, store)
}

func TestAuthService_Register_SendsVerificationEmail(t *testing.T) {
	users, mailer, store, svc := newAuthFixture(t)

	users.On("EmailExists", "ana@example.com").Return(false, nil)
	users.On("Create", mock.Anything).Return(nil)

	// Email gönderimleri goroutine'de koşar; kanalla senkronlanır.
	verificationSent := make(chan string, 1)
	mailer.On("SendVerificationEmail", "ana@example.com", "Ana", mock.Anything).
		Run(func(args mock.Arguments) { verificationSent <- args.String(2) }).
		Return(nil)
	welcomeSent := make(chan struct{}, 1)
	mailer.On("SendWelcomeEmail", "ana@example.com", "Ana").
		Run(func(mock.Arguments) { welcomeSent <- struct{}{} }).
		Return(nil)

	resp, err := svc.Register(models.RegisterRequest{
		DisplayName: "Ana",
		Email:       "ana@example.com",
		Password:    "secret123",
	}, "device-1")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.False(t, resp.User.IsVerified)

	select {
	case token := <-verificationSent:
		assert.NotEmpty(t, token)
	case <-time.After(2 * time.Second):
		t.Fatal("expected verification email to be sent")
	}
	select {
	case <-welcomeSent:
	case <-time.After(2 * time.Second):
		t.Fatal("expected welcome email to be sent")
	}

	// Cihaz anlık görüntüsü yazılır.
	snapshot, ok := store.GetSnapshot("device-1")
	assert.True(t, ok)
	assert.Equal(t, "Ana", snapshot.DisplayName)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	users, mailer, _, svc := newAuthFixture(t)

	users.On("EmailExists", "ana@example.com").Return(true, nil)

	_, err := svc.Register(models.RegisterRequest{
		DisplayName: "Ana",
		Email:       "ana@example.com",
		Password:    "secret123",
	}, "")
	require.Error(t, err)

	users.AssertNotCalled(t, "Create", mock.Anything)
	mailer.AssertNotCalled(t, "SendVerificationEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_VerifyEmail_MarksUserVerified(t *testing.T) {
	users, mailer, _, svc := newAuthFixture(t)

	users.On("EmailExists", "ana@example.com").Return(false, nil)
	users.On("Create", mock.Anything).Return(nil)

	verificationSent := make(chan string, 1)
	mailer.On("SendVerificationEmail", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { verificationSent <- args.String(2) }).
		Return(nil)
	mailer.On("SendWelcomeEmail", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Register(models.RegisterRequest{
		DisplayName: "Ana",
		Email:       "ana@example.com",
		Password:    "secret123",
	}, "")
	require.NoError(t, err)

	var token string
	select {
	case token = <-verificationSent:
	case <-time.After(2 * time.Second):
		t.Fatal("expected verification email to be sent")
	}

	users.On("GetByEmail", "ana@example.com").Return(&models.User{
		ID:          "u1",
		DisplayName: "Ana",
		Email:       "ana@example.com",
		IsVerified:  false,
	}, nil)
	users.On("Update", mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "ana@example.com" && u.IsVerified
	})).Return(nil).Once()

	require.NoError(t, svc.VerifyEmail(token))
	users.AssertExpectations(t)
}

func TestAuthService_VerifyEmail_RejectsBadTokens(t *testing.T) {
	users, mailer, _, svc := newAuthFixture(t)

	// Bozuk token
	assert.Error(t, svc.VerifyEmail("not-a-token"))

	// Login tokeni doğrulama tokeni değildir.
	users.On("EmailExists", mock.Anything).Return(false, nil)
	users.On("Create", mock.Anything).Return(nil)
	mailer.On("SendVerificationEmail", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendWelcomeEmail", mock.Anything, mock.Anything).Return(nil)

	resp, err := svc.Register(models.RegisterRequest{
		DisplayName: "Ana",
		Email:       "ana2@example.com",
		Password:    "secret123",
	}, "")
	require.NoError(t, err)
	assert.Error(t, svc.VerifyEmail(resp.Token))

	users.AssertNotCalled(t, "Update", mock.Anything)
}

func TestAuthService_VerifyEmail_AlreadyVerified(t *testing.T) {
	users, mailer, _, svc := newAuthFixture(t)

	users.On("EmailExists", "ana@example.com").Return(false, nil)
	users.On("Create", mock.Anything).Return(nil)

	verificationSent := make(chan string, 1)
	mailer.On("SendVerificationEmail", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { verificationSent <- args.String(2) }).
		Return(nil)
	mailer.On("SendWelcomeEmail", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Register(models.RegisterRequest{
		DisplayName: "Ana",
		Email:       "ana@example.com",
		Password:    "secret123",
	}, "")
	require.NoError(t, err)

	var token string
	select {
	case token = <-verificationSent:
	case <-time.After(2 * time.Second):
		t.Fatal("expected verification email to be sent")
	}

	users.On("GetByEmail", "ana@example.com").Return(&models.User{
		Email:      "ana@example.com",
		IsVerified: true,
	}, nil)

	assert.Error(t, svc.VerifyEmail(token))
	users.AssertNotCalled(t, "Update", mock.Anything)
}

func TestAuthService_ResendVerification(t *testing.T) {
	users, mailer, _, svc := newAuthFixture(t)

	users.On("GetByEmail", "ana@example.com").Return(&models.User{
		DisplayName: "Ana",
		Email:       "ana@example.com",
		IsVerified:  false,
	}, nil)
	mailer.On("SendVerificationEmail", "ana@example.com", "Ana", mock.Anything).Return(nil)

	require.NoError(t, svc.ResendVerificationEmail("ana@example.com"))
	mailer.AssertExpectations(t)

	// Doğrulanmış hesaba tekrar gönderilmez.
	verified, _, _, svc2 := newAuthFixture(t)
	verified.On("GetByEmail", "ana@example.com").Return(&models.User{
		Email:      "ana@example.com",
		IsVerified: true,
	}, nil)
	assert.Error(t, svc2.ResendVerificationEmail("ana@example.com"))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	users, _, _, svc := newAuthFixture(t)

	hashed, err := bcrypt.HashPassword("right-password")
	require.NoError(t, err)

	users.On("GetByEmail", "ana@example.com").Return(&models.User{
		Email:    "ana@example.com",
		Password: hashed,
	}, nil)

	_, err = svc.Login(models.LoginRequest{Email: "ana@example.com", Password: "wrong"}, "")
	require.Error(t, err)
	assert.EqualError(t, err, "invalid email or password")
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	users, _, _, svc := newAuthFixture(t)

	users.On("GetByEmail", "ghost@example.com").Return(nil, errors.New("record not found"))

	_, err := svc.Login(models.LoginRequest{Email: "ghost@example.com", Password: "x"}, "")
	require.Error(t, err)

	// Bilinmeyen email ile yanlış şifre aynı mesajı verir.
	assert.EqualError(t, err, "invalid email or password")
}
