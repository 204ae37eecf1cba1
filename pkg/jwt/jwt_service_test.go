package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipebox/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	service := NewJWTService()

	userID := uuid.NewString()
	token := service.GenerateTokenUser(userID, string(domain.RoleContributor))
	require.NotEmpty(t, token)

	gotID, gotRole, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, string(domain.RoleContributor), gotRole)
}

func TestInvalidToken(t *testing.T) {
	service := NewJWTService()

	_, _, err := service.GetUserIDByToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, _, err = service.GetUserIDByToken("")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
