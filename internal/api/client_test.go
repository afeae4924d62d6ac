// ABOUTME: Tests for the HTTP core: auth headers, envelope decode, error taxonomy
// ABOUTME: Uses httptest servers standing in for the marketplace backend

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Get_SetsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "tok-123", time.Second)
	_, err := c.ListVehicles(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_Get_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "", time.Second)
	_, err := c.ListVehicles(context.Background())

	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_Mutation_CarriesIdempotencyKey(t *testing.T) {
	keys := map[string]bool{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keys[r.Header.Get("Idempotency-Key")] = true
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "", time.Second)
	require.NoError(t, c.ResolveLostFound(context.Background(), "lf-1"))
	require.NoError(t, c.ResolveLostFound(context.Background(), "lf-1"))

	delete(keys, "")
	assert.Len(t, keys, 2, "each mutation gets its own key")
}

func TestClient_Get_NoIdempotencyKey(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Idempotency-Key")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "", time.Second)
	_, err := c.ListUsers(context.Background())

	require.NoError(t, err)
	assert.Empty(t, gotKey)
}

func TestDecodePayload_BareArray(t *testing.T) {
	var out []string
	require.NoError(t, decodePayload([]byte(`["a","b"]`), &out))
	assert.Equal(t, []string{"a", "b"}, out)
}

func TestDecodePayload_DataEnvelope(t *testing.T) {
	var out []string
	require.NoError(t, decodePayload([]byte(`{"data":["a"]}`), &out))
	assert.Equal(t, []string{"a"}, out)
}

func TestDecodePayload_MsgEnvelope(t *testing.T) {
	var out []string
	require.NoError(t, decodePayload([]byte(`{"msg":["a"]}`), &out))
	assert.Equal(t, []string{"a"}, out)
}

func TestDecodePayload_NoRecognizablePayload(t *testing.T) {
	var out []string
	err := decodePayload([]byte(`{"other":1}`), &out)
	assert.Error(t, err)
}

func TestClient_NonOKBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"no such vehicle"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "", time.Second)
	_, err := c.GetActiveVehicle(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "no such vehicle")
}

func TestClient_NonOKWithoutErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, "", time.Second)
	_, err := c.ListVehicles(context.Background())

	require.Error(t, err)
	assert.False(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "500")
}

func TestClient_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := New(srv.URL, "", time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListVehicles(ctx)
	assert.Error(t, err)
}

func TestClient_TimeoutBoundsHungBackend(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := New(srv.URL, "", 50*time.Millisecond)
	start := time.Now()
	_, err := c.ListVehicles(context.Background())

	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", "", time.Second)
	_, err := c.ListVehicles(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/vehicles/all", gotPath)
}
