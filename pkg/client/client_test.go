package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := New("")
	assert.True(t, errors.Is(err, ErrNoBaseURL))

	_, err = New("   ")
	assert.True(t, errors.Is(err, ErrNoBaseURL))
}

func TestNewTrimsTrailingSlash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ping", r.URL.Path)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	c, err := New(server.URL + "/")
	require.NoError(t, err)

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, c.Get(context.Background(), "/ping", &out))
	assert.True(t, out.OK)
}

func TestErrorMessageFromTopLevelField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"course not found"}`))
	}))
	defer server.Close()

	c, err := New(server.URL)
	require.NoError(t, err)

	err = c.Get(context.Background(), "/courses/C99", nil)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "course not found", apiErr.Message)
}

func TestErrorMessageFromNestedDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":"VAL_001","message":"score must be between 0 and 10"}}`))
	}))
	defer server.Close()

	c, err := New(server.URL)
	require.NoError(t, err)

	err = c.Post(context.Background(), "/grades", map[string]any{}, nil)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "score must be between 0 and 10", apiErr.Message)
}

func TestErrorMessageFallsBackToStatusText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	c, err := New(server.URL)
	require.NoError(t, err)

	err = c.Get(context.Background(), "/anything", nil)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}

func TestNoContentIsSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c, err := New(server.URL)
	require.NoError(t, err)

	var out struct{}
	assert.NoError(t, c.Delete(context.Background(), "/notifications/N001", &out))
}

func TestRequestCarriesJSONHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c, err := New(server.URL)
	require.NoError(t, err)

	assert.NoError(t, c.Post(context.Background(), "/courses", map[string]string{"Name": "x"}, nil))
}

func TestContextCancellationPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	c, err := New(server.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = c.Get(ctx, "/courses", nil)
	assert.True(t, errors.Is(err, context.Canceled))
}
