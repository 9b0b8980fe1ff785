package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestProvider_SignVerify(t *testing.T) {
	p := NewProvider(testSecret, time.Hour)

	signed, expiresAt, err := p.Sign(7, "rector", "admin")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := p.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.AdminID)
	assert.Equal(t, "rector", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "7", claims.Subject)
}

func TestProvider_Expired(t *testing.T) {
	p := NewProvider(testSecret, time.Hour)
	p.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	signed, _, err := p.Sign(1, "rector", "admin")
	require.NoError(t, err)

	p.now = time.Now
	_, err = p.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestProvider_WrongSecret(t *testing.T) {
	signed, _, err := NewProvider(testSecret, time.Hour).Sign(1, "rector", "admin")
	require.NoError(t, err)

	_, err = NewProvider("another-secret-another-secret!!", time.Hour).Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestProvider_RejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{
		AdminID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewProvider(testSecret, time.Hour).Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestProvider_Garbage(t *testing.T) {
	_, err := NewProvider(testSecret, time.Hour).Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
