package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPI_Get(t *testing.T) {
	var gotPath, gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte("<html>ok</html>"))
	}))
	defer server.Close()

	api := NewAPI(server.URL + "/").WithUserAgent("fictions-test").WithTimeout(time.Second)

	body, err := api.Get("/fiction/1")
	require.NoError(t, err)

	assert.Equal(t, "<html>ok</html>", string(body))
	assert.Equal(t, "/fiction/1", gotPath)
	assert.Equal(t, "fictions-test", gotAgent)
	assert.Equal(t, server.URL, api.BaseURL())
}

func TestAPI_GetBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := NewAPI(server.URL).Get("/fiction/0")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestAPI_GetUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewAPI(url).Get("/")
	assert.Error(t, err)
}
