package utils

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhqb1010/qb-cli/internal/logger"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_Options(t *testing.T) {
	var gotHeaders http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		assert.Equal(t, "/ping", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(
		WithBaseURL(srv.URL),
		WithTimeout(2*time.Second),
		WithHeaders(map[string]string{"X-Test": "yes", "X-Empty": ""}),
	)

	resp, err := client.R().Get("/ping")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "yes", gotHeaders.Get("X-Test"))
	_, hasEmpty := gotHeaders["X-Empty"]
	assert.False(t, hasEmpty)
	assert.Equal(t, 2*time.Second, client.GetClient().Timeout)
}

func TestNewHTTPClient_RequestLogging(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	client := NewHTTPClient(WithBaseURL(srv.URL), WithRequestLogging(log))
	_, err := client.R().SetBody(`{"secret":"hunter2"}`).Post("/things")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "github request finished")
	assert.Contains(t, out, `"status":418`)
	assert.False(t, strings.Contains(out, "hunter2"))
}
