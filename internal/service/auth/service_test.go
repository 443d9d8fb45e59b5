package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gondola-rental/internal/service/auth"
)

func TestIssueAndValidate(t *testing.T) {
	svc := auth.NewService("test-secret", time.Hour)
	userID := uuid.New()

	token, err := svc.IssueToken(userID, "ops@example.com", auth.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ops@example.com", claims.Email)
	assert.True(t, claims.HasRole(auth.RoleViewer))
}

func TestValidateRejectsForeignSignature(t *testing.T) {
	token, err := auth.NewService("other-secret", time.Hour).IssueToken(uuid.New(), "a@example.com", auth.RoleViewer)
	require.NoError(t, err)

	_, err = auth.NewService("test-secret", time.Hour).ValidateAccessToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := auth.NewService("test-secret", -time.Minute)

	token, err := svc.IssueToken(uuid.New(), "a@example.com", auth.RoleViewer)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestMissingSecret(t *testing.T) {
	svc := auth.NewService("", time.Hour)

	_, err := svc.IssueToken(uuid.New(), "a@example.com", auth.RoleAdmin)
	assert.ErrorIs(t, err, auth.ErrMissingSecret)

	_, err = svc.ValidateAccessToken("anything")
	assert.ErrorIs(t, err, auth.ErrMissingSecret)
}

func TestViewerIsNotAdmin(t *testing.T) {
	claims := &auth.Claims{Role: auth.RoleViewer}
	assert.False(t, claims.HasRole(auth.RoleAdmin))
	assert.True(t, claims.HasRole(auth.RoleViewer))
}
