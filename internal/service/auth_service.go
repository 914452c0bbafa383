package service

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/momentu-app/momentu-backend/internal/models"
	"github.com/momentu-app/momentu-backend/pkg/bcrypt"
	"github.com/momentu-app/momentu-backend/pkg/devicestore"
	jwtPkg "github.com/momentu-app/momentu-backend/pkg/jwt"
)

// Email doğrulama tokeni 24 saat geçerlidir.
const TokenExpiryEmailVerify = 24 * time.Hour

// UserStore, auth akışının kullanıcı deposu işbirlikçisi.
type UserStore interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	EmailExists(email string) (bool, error)
	Update(user *models.User) error
}

// Mailer, kayıt ve doğrulama postalarını gönderen işbirlikçi.
type Mailer interface {
	SendWelcomeEmail(to, displayName string) error
	SendVerificationEmail(to, displayName, token string) error
}

type AuthService struct {
	users       UserStore
	mailer      Mailer
	deviceStore *devicestore.Store
	jwtSecret   []byte
}

func NewAuthService(users UserStore, mailer Mailer, deviceStore *devicestore.Store) *AuthService {
	return &AuthService{
		users:       users,
		mailer:      mailer,
		deviceStore: deviceStore,
		jwtSecret:   []byte(os.Getenv("JWT_SECRET")),
	}
}

func (s *AuthService) Register(req models.RegisterRequest, deviceID string) (*models.AuthResponse, error) {
	// Email kontrolü
	exists, err := s.users.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.New("email already exists")
	}

	// Şifreyi hashle
	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:          uuid.NewString(),
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Password:    hashedPassword,
		IsVerified:  false, // doğrulama emaili onaylanana kadar
		CreatedAt:   time.Now(),
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	// Email doğrulama tokeni oluştur
	verificationToken, err := s.generateVerificationToken(user.Email)
	if err != nil {
		return nil, err
	}

	// Email gönderimleri kaydı bekletmesin
	go s.mailer.SendVerificationEmail(user.Email, user.DisplayName, verificationToken)
	go s.mailer.SendWelcomeEmail(user.Email, user.DisplayName)

	token, err := jwtPkg.GenerateToken(user.Email, user.ID)
	if err != nil {
		return nil, err
	}

	// Cihazın anlık görüntüsünü güncelle
	if deviceID != "" {
		s.deviceStore.PutSnapshot(deviceID, user.Snapshot())
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *AuthService) Login(req models.LoginRequest, deviceID string) (*models.AuthResponse, error) {
	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, errors.New("invalid email or password")
	}

	token, err := jwtPkg.GenerateToken(user.Email, user.ID)
	if err != nil {
		return nil, err
	}

	if deviceID != "" {
		s.deviceStore.PutSnapshot(deviceID, user.Snapshot())
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

// VerifyEmail, doğrulama tokenini çözüp kullanıcıyı doğrulanmış işaretler.
func (s *AuthService) VerifyEmail(token string) error {
	claims, err := jwtPkg.ValidateToken(token)
	if err != nil {
		return errors.New("invalid or expired token")
	}

	// Login tokeni doğrulama ucunda kabul edilmez.
	if tokenType, _ := claims["type"].(string); tokenType != "email_verification" {
		return errors.New("invalid token claims")
	}

	email, ok := claims["email"].(string)
	if !ok {
		return errors.New("invalid token claims")
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		return errors.New("user not found")
	}

	if user.IsVerified {
		return errors.New("email already verified")
	}

	user.IsVerified = true
	if err := s.users.Update(user); err != nil {
		return errors.New("failed to verify email")
	}

	return nil
}

// ResendVerificationEmail, doğrulanmamış hesaba yeni token üretip postalar.
func (s *AuthService) ResendVerificationEmail(email string) error {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return errors.New("user not found")
	}

	if user.IsVerified {
		return errors.New("email already verified")
	}

	verificationToken, err := s.generateVerificationToken(email)
	if err != nil {
		return err
	}

	return s.mailer.SendVerificationEmail(user.Email, user.DisplayName, verificationToken)
}

func (s *AuthService) generateVerificationToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(TokenExpiryEmailVerify).Unix(),
		"iat":   time.Now().Unix(),
		"type":  "email_verification",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
