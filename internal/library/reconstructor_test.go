package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReconstructor(shows *ShowNamer) *Reconstructor {
	return NewReconstructor(Config{
		Root:         "/media",
		MovieSubtree: "Movies",
		TVSubtree:    "TV",
	}, shows)
}

func TestReconstruct_Episode(t *testing.T) {
	r := testReconstructor(nil)

	got, err := r.Reconstruct("/downloads/Show Name/Show.Name.S02E03.mkv")
	require.NoError(t, err)
	assert.Equal(t, "/media/TV/Show Name/Season 02/Show Name - S02E03.mkv", got)
}

func TestReconstruct_Movie(t *testing.T) {
	r := testReconstructor(nil)

	got, err := r.Reconstruct("/downloads/Some.Movie.2019.mp4")
	require.NoError(t, err)
	assert.Equal(t, "/media/Movies/Some Movie (2019)/Some Movie (2019).mp4", got)
}

func TestReconstruct_MovieTitleCased(t *testing.T) {
	r := testReconstructor(nil)

	// Lowercase guesses are rendered in title case for the movie layout.
	got := r.MoviePath("some movie", 2019, ".mp4")
	assert.Equal(t, "/media/Movies/Some Movie (2019)/Some Movie (2019).mp4", got)
}

func TestReconstruct_Deterministic(t *testing.T) {
	r := testReconstructor(nil)

	raw := "/downloads/Show.Name.S02E03.720p.mkv"
	a, err := r.Reconstruct(raw)
	require.NoError(t, err)
	b, err := r.Reconstruct(raw)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEpisodePath_ZeroPadding(t *testing.T) {
	r := testReconstructor(nil)

	tests := []struct {
		season  int
		episode int
		want    string
	}{
		{1, 5, "/media/TV/Show/Season 01/Show - S01E05.mkv"},
		{15, 20, "/media/TV/Show/Season 15/Show - S15E20.mkv"},
		{9, 100, "/media/TV/Show/Season 09/Show - S09E100.mkv"},
	}

	for _, tt := range tests {
		got := r.EpisodePath("Show", tt.season, tt.episode, ".mkv")
		assert.Equal(t, tt.want, got)
	}
}

func TestEpisodePath_ShowNameNormalized(t *testing.T) {
	shows := NewShowNamer(map[string]string{
		"Ha-Shir Shelanu": "Our Song",
	})
	r := testReconstructor(shows)

	got := r.EpisodePath("Ha-Shir Shelanu", 1, 2, ".mkv")
	assert.Equal(t, "/media/TV/Our Song/Season 01/Our Song - S01E02.mkv", got)
}

func TestReconstruct_NoTitle(t *testing.T) {
	r := testReconstructor(nil)

	_, err := r.Reconstruct("/downloads/2019.mkv")
	assert.ErrorIs(t, err, ErrNoTitle)
}

func TestMoviePath_SanitizesIllegalChars(t *testing.T) {
	r := testReconstructor(nil)

	got := r.MoviePath("What If...?", 2024, ".mp4")
	assert.Equal(t, "/media/Movies/What If (2024)/What If (2024).mp4", got)
}
