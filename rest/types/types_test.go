package types

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndpointPath(t *testing.T) {
	creds := NewApiCredentials("key", "c2VjcmV0")
	names := []string{"Time", "TradeBalance", "get_order_book", "", "a/b"}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, "public/"+name, PublicEndpoint(name).Path())
			assert.Equal(t, "private/"+name, PrivateEndpoint(name, creds).Path())
			assert.False(t, PublicEndpoint(name).IsPrivate())
			assert.True(t, PrivateEndpoint(name, creds).IsPrivate())
		})
	}
}

func TestPrivateEndpointSharesCredentials(t *testing.T) {
	creds := NewApiCredentials("key", "c2VjcmV0")
	assert.Same(t, creds, PrivateEndpoint("Balance", creds).Credentials)
	assert.Nil(t, PublicEndpoint("Time").Credentials)
}

func TestDefaultApiParams(t *testing.T) {
	p := DefaultApiParams()
	assert.Equal(t, "https://api.kraken.com", p.BaseURL)
	assert.Equal(t, "0", p.Version)
}

func TestCredentialsRedacted(t *testing.T) {
	creds := NewApiCredentials("abcdefgh", "c2VjcmV0")

	for _, s := range []string{
		creds.String(),
		fmt.Sprintf("%v", creds),
		fmt.Sprintf("%+v", creds),
		fmt.Sprintf("%#v", creds),
	} {
		assert.NotContains(t, s, "c2VjcmV0")
		assert.NotContains(t, s, "abcdefgh")
	}
	assert.Equal(t, "abcdefgh", creds.APIKey())
	assert.Equal(t, "c2VjcmV0", creds.APISecret())
}
