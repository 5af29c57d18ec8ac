package signing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betbot/exrest/rest/types"
)

const (
	vectorPath      = "private/TradeBalance"
	vectorBody      = "asset=ZUSD"
	vectorNonce     = "1693294932349"
	vectorSecret    = "c2VjcmV0"
	vectorSignature = "VYpAzfn/HF9VfX1vYtWhctBx9Q0mIeVLXPpEPyDOHS6oPZXGe9NMSdVwShCYLI5IngUgUlmpFmRqol7++CGPBw=="
)

func TestBuildSignature_KnownVector(t *testing.T) {
	sig, err := BuildSignature(vectorPath, vectorBody, vectorNonce, vectorSecret)
	require.NoError(t, err)
	assert.Equal(t, vectorSignature, sig)
}

func TestBuildSignature_Deterministic(t *testing.T) {
	first, err := BuildSignature(vectorPath, vectorBody, vectorNonce, vectorSecret)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		sig, err := BuildSignature(vectorPath, vectorBody, vectorNonce, vectorSecret)
		require.NoError(t, err)
		require.Equal(t, first, sig)
	}
}

func TestBuildSignature_InvalidSecret(t *testing.T) {
	sig, err := BuildSignature("public/Ticker", "pair=XBTUSD", vectorNonce, "secret")
	require.Error(t, err)
	assert.Empty(t, sig)
	assert.True(t, errors.Is(err, ErrInvalidSecret))
	assert.True(t, types.IsConfigError(err))
	assert.False(t, types.IsTransportError(err))
}

func TestBuildSignature_BindsAllInputs(t *testing.T) {
	base, err := BuildSignature(vectorPath, vectorBody, vectorNonce, vectorSecret)
	require.NoError(t, err)

	tests := []struct {
		name  string
		path  string
		body  string
		nonce string
	}{
		{name: "path changed", path: "private/Balance", body: vectorBody, nonce: vectorNonce},
		{name: "body changed", path: vectorPath, body: "asset=XXBT", nonce: vectorNonce},
		{name: "nonce changed", path: vectorPath, body: vectorBody, nonce: "1693294932350"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, err := BuildSignature(tt.path, tt.body, tt.nonce, vectorSecret)
			require.NoError(t, err)
			assert.NotEqual(t, base, sig)
		})
	}
}

func TestVerifySignature(t *testing.T) {
	ok, err := VerifySignature(vectorPath, vectorBody, vectorNonce, vectorSecret, vectorSignature)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifySignature(vectorPath, "asset=XXBT", vectorNonce, vectorSecret, vectorSignature)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = VerifySignature(vectorPath, vectorBody, vectorNonce, vectorSecret, "%%%")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = VerifySignature(vectorPath, vectorBody, vectorNonce, "secret", vectorSignature)
	assert.ErrorIs(t, err, ErrInvalidSecret)
}
