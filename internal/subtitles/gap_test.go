package subtitles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLanguages(t *testing.T) []Language {
	t.Helper()
	he, err := FromCode("he")
	require.NoError(t, err)
	en, err := FromCode("en")
	require.NoError(t, err)
	return []Language{he, en}
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestFromCode(t *testing.T) {
	he, err := FromCode("he")
	require.NoError(t, err)
	assert.Equal(t, "he", he.Code)
	assert.Equal(t, "Hebrew", he.Name())

	// Leading dot from configured extensions is tolerated.
	en, err := FromCode(".en")
	require.NoError(t, err)
	assert.Equal(t, "en", en.Code)
	assert.Equal(t, "English", en.Name())

	_, err = FromCode("nope")
	assert.Error(t, err)
}

func TestSidecarNaming(t *testing.T) {
	he, err := FromCode("he")
	require.NoError(t, err)

	video := "/media/Movies/Some Movie (2019)/Some Movie (2019).mp4"
	assert.Equal(t, "Some Movie (2019).he.srt", SidecarName(video, he))
	assert.Equal(t, "/media/Movies/Some Movie (2019)/Some Movie (2019).he.srt", SidecarPath(video, he))
}

func TestFindGaps_NoneMissing(t *testing.T) {
	langs := testLanguages(t)
	dir := t.TempDir()
	video := filepath.Join(dir, "Some Movie (2019).mp4")
	writeFile(t, video)
	writeFile(t, filepath.Join(dir, "Some Movie (2019).he.srt"))
	writeFile(t, filepath.Join(dir, "Some Movie (2019).en.srt"))

	d := NewDetector(langs, nil)
	assert.Empty(t, d.FindGaps(video))
}

func TestFindGaps_AllMissing(t *testing.T) {
	langs := testLanguages(t)
	dir := t.TempDir()
	video := filepath.Join(dir, "Some Movie (2019).mp4")
	writeFile(t, video)

	d := NewDetector(langs, nil)
	gaps := d.FindGaps(video)
	require.Len(t, gaps, 2)
	assert.Equal(t, "he", gaps[0].Code)
	assert.Equal(t, "en", gaps[1].Code)
}

func TestFindGaps_OneMissing(t *testing.T) {
	langs := testLanguages(t)
	dir := t.TempDir()
	video := filepath.Join(dir, "Show Name - S02E03.mkv")
	writeFile(t, video)
	writeFile(t, filepath.Join(dir, "Show Name - S02E03.en.srt"))

	d := NewDetector(langs, nil)
	gaps := d.FindGaps(video)
	require.Len(t, gaps, 1)
	assert.Equal(t, "Hebrew", gaps[0].Name())
}
