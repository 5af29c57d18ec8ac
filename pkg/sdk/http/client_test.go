package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoRaw_ReturnsBodyForAnyStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":["EGeneral:Invalid arguments"]}`+"\n")
	}))
	defer srv.Close()

	c, err := NewClient(Options{})
	require.NoError(t, err)

	resp, err := c.DoRaw(context.Background(), http.MethodGet, srv.URL+"/x", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, resp.IsSuccess())
	assert.Equal(t, `{"error":["EGeneral:Invalid arguments"]}`+"\n", resp.Body)
}

func TestDoRaw_PostSendsHeadersAndBody(t *testing.T) {
	var (
		gotBody   string
		gotHeader string
		gotUA     string
		gotQuery  string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotHeader = r.Header.Get("X-Test")
		gotUA = r.Header.Get("User-Agent")
		gotQuery = r.URL.RawQuery
		_, _ = io.WriteString(w, "ok")
	}))
	defer srv.Close()

	c, err := NewClient(Options{UserAgent: "unit-test"})
	require.NoError(t, err)

	resp, err := c.DoRaw(context.Background(), http.MethodPost, srv.URL+"/p?a=1&b=%2F", &RequestOptions{
		Headers: map[string]string{"X-Test": "yes"},
		Body:    "nonce=1&x=2",
	})
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())
	assert.Equal(t, "ok", resp.Body)
	assert.Equal(t, "nonce=1&x=2", gotBody)
	assert.Equal(t, "yes", gotHeader)
	assert.Equal(t, "unit-test", gotUA)
	assert.Equal(t, "a=1&b=%2F", gotQuery)
}

func TestDoRaw_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	c, err := NewClient(Options{Timeout: time.Second})
	require.NoError(t, err)

	_, err = c.DoRaw(context.Background(), http.MethodGet, addr, nil)
	assert.Error(t, err)
}

func TestDoRaw_UnsupportedMethod(t *testing.T) {
	c, err := NewClient(Options{})
	require.NoError(t, err)

	_, err = c.DoRaw(context.Background(), http.MethodDelete, "http://127.0.0.1", nil)
	assert.Error(t, err)
}

func TestNewClient_InvalidProxy(t *testing.T) {
	_, err := NewClient(Options{Proxy: "http://[::1"})
	assert.Error(t, err)
}
