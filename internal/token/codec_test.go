package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranayama-studio/pranayama-api/internal/token"
	_ "github.com/pranayama-studio/pranayama-api/testing"
)

func TestMintVerifyRoundTrip(t *testing.T) {
	codec := token.NewCodec([]byte("test-secret"), time.Hour)

	signed, err := codec.Mint(token.Claims{
		Email: "alice@x.com",
		Extra: map[string]any{"name": "Alice"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := codec.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", claims.Email)
	assert.Equal(t, "Alice", claims.Extra["name"])
}

func TestVerifyExpiredToken(t *testing.T) {
	codec := token.NewCodec([]byte("test-secret"), -time.Minute)

	signed, err := codec.Mint(token.Claims{Email: "alice@x.com"})
	require.NoError(t, err)

	_, err = codec.Verify(signed)
	assert.ErrorIs(t, err, token.ErrExpiredToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	minter := token.NewCodec([]byte("secret-a"), time.Hour)
	verifier := token.NewCodec([]byte("secret-b"), time.Hour)

	signed, err := minter.Mint(token.Claims{Email: "alice@x.com"})
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestVerifyMalformedToken(t *testing.T) {
	codec := token.NewCodec([]byte("test-secret"), time.Hour)

	_, err := codec.Verify("not-a-token")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}
