package provider

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subwatch/subwatch/internal/subtitles"
)

func testRequest(t *testing.T) Request {
	t.Helper()
	he, err := subtitles.FromCode("he")
	require.NoError(t, err)
	return Request{
		Video: Video{
			OriginalName: "/downloads/Show.Name.S02E03.720p.mkv",
			Name:         "/media/TV/Show Name/Season 02/Show Name - S02E03.mkv",
		},
		Language:  he,
		Providers: []string{"wizdom", "ktuvit"},
	}
}

func TestHTTPSearcher_Search(t *testing.T) {
	content := []byte("1\n00:00:01,000 --> 00:00:02,000\nshalom\n")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/search", r.URL.Path)
		assert.Equal(t, "he", r.URL.Query().Get("lang"))
		assert.Equal(t, "wizdom,ktuvit", r.URL.Query().Get("providers"))
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))

		_ = json.NewEncoder(w).Encode(searchResponse{
			Provider: "wizdom",
			Language: "he",
			Content:  base64.StdEncoding.EncodeToString(content),
		})
	}))
	defer srv.Close()

	s := NewHTTPSearcher(srv.URL, "secret", 0, nil)
	result, err := s.Search(context.Background(), testRequest(t))
	require.NoError(t, err)
	assert.Equal(t, "wizdom", result.Provider)
	assert.Equal(t, content, result.Content)
}

func TestHTTPSearcher_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	s := NewHTTPSearcher(srv.URL, "", 0, nil)
	_, err := s.Search(context.Background(), testRequest(t))
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestHTTPSearcher_NotVideo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	s := NewHTTPSearcher(srv.URL, "", 0, nil)
	_, err := s.Search(context.Background(), testRequest(t))
	assert.ErrorIs(t, err, ErrNotVideo)
}

func TestHTTPSearcher_Unavailable(t *testing.T) {
	s := NewHTTPSearcher("http://127.0.0.1:1", "", 0, nil)
	_, err := s.Search(context.Background(), testRequest(t))
	assert.ErrorIs(t, err, ErrUnavailable)
}
