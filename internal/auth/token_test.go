package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spencer4792/jwt-pizza-service/internal/auth"
	"github.com/Spencer4792/jwt-pizza-service/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    "user-1",
		Name:  "Test User",
		Email: "test@test.com",
		Roles: []domain.Role{domain.RoleDiner, domain.RoleFranchisee},
	}
}

func TestTokenRoundTrip(t *testing.T) {
	codec := auth.NewTokenCodec("test-secret")

	token, err := codec.Encode(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "Test User", claims.Name)
	assert.Equal(t, "test@test.com", claims.Email)
	assert.True(t, claims.HasRole(domain.RoleDiner))
	assert.True(t, claims.HasRole(domain.RoleFranchisee))
	assert.False(t, claims.HasRole(domain.RoleAdmin))
}

func TestDecodeTamperedToken(t *testing.T) {
	codec := auth.NewTokenCodec("test-secret")

	token, err := codec.Encode(testUser())
	require.NoError(t, err)

	// Flipping any single character must break signature verification.
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	_, err = codec.Decode(string(tampered))
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestDecodeWrongSecret(t *testing.T) {
	token, err := auth.NewTokenCodec("secret-one").Encode(testUser())
	require.NoError(t, err)

	_, err = auth.NewTokenCodec("secret-two").Decode(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestDecodeMalformedToken(t *testing.T) {
	codec := auth.NewTokenCodec("test-secret")

	for _, token := range []string{"", "garbage", "invalid.token.format", "a.b"} {
		_, err := codec.Decode(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken, "token %q", token)
	}
}

func TestDistinctTokensPerMint(t *testing.T) {
	codec := auth.NewTokenCodec("test-secret")
	user := testUser()

	first, err := codec.Encode(user)
	require.NoError(t, err)
	second, err := codec.Encode(user)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
