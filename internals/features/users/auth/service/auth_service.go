package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authModel "schoolku_backend/internals/features/users/auth/model"
	userModel "schoolku_backend/internals/features/users/user/model"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is deactivated")
)

const accessTokenTTL = 24 * time.Hour

type AuthService struct {
	DB        *gorm.DB
	JWTSecret string
}

func NewAuthService(db *gorm.DB, secret string) *AuthService {
	return &AuthService{DB: db, JWTSecret: secret}
}

// Register creates an account. schoolID comes from the resolved tenant
// context (uuid.Nil leaves the account unbound — super-admin provisioning).
func (s *AuthService) Register(ctx context.Context, m *userModel.UserModel, plainPassword string, schoolID uuid.UUID) error {
	db := s.DB.WithContext(ctx)

	m.UserEmail = strings.ToLower(strings.TrimSpace(m.UserEmail))

	var n int64
	if err := db.Model(&userModel.UserModel{}).Where("user_email = ?", m.UserEmail).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	m.UserPassword = string(hash)
	if schoolID != uuid.Nil {
		m.SetSchoolID(schoolID)
	}

	return db.Create(m).Error
}

// Login verifies credentials and issues an access token carrying the
// identity claims the tenant pipeline consumes: id, role, school_id.
func (s *AuthService) Login(ctx context.Context, email, plainPassword string) (string, *userModel.UserModel, error) {
	db := s.DB.WithContext(ctx)

	var m userModel.UserModel
	err := db.First(&m, "user_email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !m.UserIsActive {
		return "", nil, ErrAccountInactive
	}
	if bcrypt.CompareHashAndPassword([]byte(m.UserPassword), []byte(plainPassword)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(&m)
	if err != nil {
		return "", nil, err
	}
	return token, &m, nil
}

// IssueToken signs the HS256 access token for a user.
func (s *AuthService) IssueToken(m *userModel.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":   m.UserID.String(),
		"role": m.UserRole,
		"iat":  now.Unix(),
		"exp":  now.Add(accessTokenTTL).Unix(),
	}
	if m.UserSchoolID != nil {
		claims["school_id"] = m.UserSchoolID.String()
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.JWTSecret))
}

// Logout blacklists the raw token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	expiredAt := time.Now().Add(accessTokenTTL)
	if claims := s.peekClaims(rawToken); claims != nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}
	return s.DB.WithContext(ctx).Create(&authModel.TokenBlacklist{
		Token:     rawToken,
		ExpiredAt: expiredAt,
	}).Error
}

// IsTokenBlacklisted is plugged into the auth middleware.
func (s *AuthService) IsTokenBlacklisted(rawToken string) (bool, error) {
	var n int64
	err := s.DB.Model(&authModel.TokenBlacklist{}).
		Where("token = ? AND deleted_at IS NULL", rawToken).
		Count(&n).Error
	return n > 0, err
}

func (s *AuthService) peekClaims(rawToken string) jwt.MapClaims {
	tok, err := jwt.Parse(rawToken, func(t *jwt.Token) (any, error) {
		return []byte(s.JWTSecret), nil
	})
	if err != nil || !tok.Valid {
		return nil
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	return claims
}
