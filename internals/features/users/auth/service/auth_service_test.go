package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userModel "schoolku_backend/internals/features/users/user/model"
)

func TestIssueTokenCarriesTenantClaims(t *testing.T) {
	s := &AuthService{JWTSecret: "test-secret"}

	schoolID := uuid.New()
	u := &userModel.UserModel{
		UserID:       uuid.New(),
		UserRole:     "teacher",
		UserSchoolID: &schoolID,
	}

	raw, err := s.IssueToken(u)
	require.NoError(t, err)

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, u.UserID.String(), claims["id"])
	assert.Equal(t, "teacher", claims["role"])
	assert.Equal(t, schoolID.String(), claims["school_id"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.Greater(t, int64(exp), time.Now().Unix())
}

func TestIssueTokenOmitsSchoolClaimWhenUnbound(t *testing.T) {
	s := &AuthService{JWTSecret: "test-secret"}

	u := &userModel.UserModel{UserID: uuid.New(), UserRole: "super_admin"}
	raw, err := s.IssueToken(u)
	require.NoError(t, err)

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	claims := tok.Claims.(jwt.MapClaims)
	_, present := claims["school_id"]
	assert.False(t, present, "unbound accounts must not carry a school claim")
}

func TestIssueTokenRejectedWithWrongSecret(t *testing.T) {
	s := &AuthService{JWTSecret: "right-secret"}
	raw, err := s.IssueToken(&userModel.UserModel{UserID: uuid.New(), UserRole: "student"})
	require.NoError(t, err)

	_, err = jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return []byte("wrong-secret"), nil
	})
	assert.Error(t, err)
}
