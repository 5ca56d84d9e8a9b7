package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"github.com/anonto42/inko/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	ok, rehash := h.Verify(hash, "secret1")
	assert.True(t, ok)
	assert.False(t, rehash)

	ok, _ = h.Verify(hash, "secret2")
	assert.False(t, ok)

	other, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "hashes must be salted")
}

func TestPasswordHasher_LegacyDigest(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)
	sum := sha256.Sum256([]byte("secret1"))
	legacy := hex.EncodeToString(sum[:])

	ok, rehash := h.Verify(legacy, "secret1")
	assert.True(t, ok)
	assert.True(t, rehash)

	ok, rehash = h.Verify(legacy, "nope")
	assert.False(t, ok)
	assert.False(t, rehash)
}

func TestPasswordHasher_RehashOnLowerCost(t *testing.T) {
	low := NewPasswordHasher(bcrypt.MinCost)
	hash, err := low.Hash("secret1")
	require.NoError(t, err)

	high := NewPasswordHasher(bcrypt.MinCost + 1)
	ok, rehash := high.Verify(hash, "secret1")
	assert.True(t, ok)
	assert.True(t, rehash)
}

func TestPasswordHasher_TooLong(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)
	_, err := h.Hash(strings.Repeat("x", 73))
	require.Error(t, err)
	assert.True(t, IsTooLong(err))
}

func TestPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(0).Cost)
	h := NewPasswordHasher(bcrypt.MinCost)
	h.Burn("anything")
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("k", time.Hour)
	token, err := issuer.Generate(&models.User{ID: 42, Username: "alice"})
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "42", claims.Subject)
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuer := NewTokenIssuer("k", time.Hour)
	token, err := issuer.Generate(&models.User{ID: 1, Username: "alice"})
	require.NoError(t, err)

	_, err = NewTokenIssuer("other", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := NewTokenIssuer("k", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	old, err := expired.Generate(&models.User{ID: 1, Username: "alice"})
	require.NoError(t, err)
	_, err = expired.Parse(old)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
