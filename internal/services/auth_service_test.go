package services_test

import (
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(db, testConfig())

	resp, err := svc.Register(&dto.RegisterRequest{Phone: "+79998882233", Username: "cook", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "+79998882233", resp.User.Phone)
	assert.Equal(t, "cook", resp.User.Username)

	// The stored hash must verify against the password and never equal it.
	var user models.User
	require.NoError(t, db.First(&user, "phone = ?", "+79998882233").Error)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))
}

func TestRegisterDuplicatePhone(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(db, testConfig())

	_, err := svc.Register(&dto.RegisterRequest{Phone: "+79998882233", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{Phone: "+79998882233", Password: "another1"})
	assert.ErrorIs(t, err, services.ErrPhoneTaken)

	// The first account is unaffected.
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegisterShortPassword(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(db, testConfig())

	_, err := svc.Register(&dto.RegisterRequest{Phone: "+79998882233", Password: "12345"})
	assert.ErrorIs(t, err, services.ErrPasswordTooShort)

	// Rejected before any row is written.
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestRegisterMissingFields(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(db, testConfig())

	_, err := svc.Register(&dto.RegisterRequest{Phone: "", Password: "secret1"})
	assert.ErrorIs(t, err, services.ErrMissingCredentials)

	_, err = svc.Register(&dto.RegisterRequest{Phone: "+79998882233", Password: ""})
	assert.ErrorIs(t, err, services.ErrMissingCredentials)
}

func TestLoginDoesNotRevealWhichCheckFailed(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(db, testConfig())

	_, err := svc.Register(&dto.RegisterRequest{Phone: "+79998882233", Password: "secret1"})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(&dto.LoginRequest{Phone: "+79998882233", Password: "wrong-pass"})
	_, unknownPhone := svc.Login(&dto.LoginRequest{Phone: "+70000000000", Password: "secret1"})

	assert.ErrorIs(t, wrongPassword, services.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownPhone, services.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownPhone.Error())
}

func TestLoginIssuesValidToken(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	svc := services.NewAuthService(db, cfg)

	reg, err := svc.Register(&dto.RegisterRequest{Phone: "+79998882233", Password: "secret1"})
	require.NoError(t, err)

	resp, err := svc.Login(&dto.LoginRequest{Phone: "+79998882233", Password: "secret1"})
	require.NoError(t, err)

	token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, reg.User.ID.String(), claims["sub"])
	assert.Equal(t, "+79998882233", claims["phone"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(720*time.Hour), exp.Time, time.Minute)
}
