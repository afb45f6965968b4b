package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService("test-secret")
	userID := primitive.NewObjectID().Hex()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID, claims.Subject)
	assert.NotEmpty(t, claims.ID)

	expiry := claims.ExpiresAt.Time
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), expiry, time.Minute)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").GenerateToken(primitive.NewObjectID().Hex())
	require.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := NewJWTService("test-secret").ValidateToken("not.a.token")
	assert.Error(t, err)
}
