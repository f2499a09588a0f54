package palette

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/customizer/internal/domain/customization"
)

type mapSource map[string]string

func (m mapSource) PropertyValue(key string) string { return m[key] }

type countingSource struct {
	values map[string]string
	reads  map[string]int
}

func (c *countingSource) PropertyValue(key string) string {
	c.reads[key]++
	return c.values[key]
}

func TestCaptureSkipsEmptyValues(t *testing.T) {
	t.Parallel()

	got := Capture(mapSource{"--a": "#fff", "--b": ""}, []string{"--a", "--b"})
	require.Equal(t, customization.Palette{{Key: "--a", Value: "#fff"}}, got)
}

func TestCapturePreservesInputOrder(t *testing.T) {
	t.Parallel()

	src := mapSource{"--a": "1", "--b": "2", "--c": "3"}
	got := Capture(src, []string{"--c", "--missing", "--a", "--b"})
	require.Equal(t, customization.Palette{
		{Key: "--c", Value: "3"},
		{Key: "--a", Value: "1"},
		{Key: "--b", Value: "2"},
	}, got)
}

func TestCaptureWithoutSource(t *testing.T) {
	t.Parallel()

	got := Capture(nil, Keys(AvailableColorTitles))
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestCaptureKeepsValueVerbatim(t *testing.T) {
	t.Parallel()

	got := Capture(mapSource{"--a": " rgb(1, 2, 3)"}, []string{"--a"})
	require.Equal(t, " rgb(1, 2, 3)", got[0].Value)
}

func TestCaptureReadsEachKeyOncePerCall(t *testing.T) {
	t.Parallel()

	src := &countingSource{values: map[string]string{"--a": "1"}, reads: map[string]int{}}
	Capture(src, []string{"--a", "--b"})
	Capture(src, []string{"--a", "--b"})
	require.Equal(t, 2, src.reads["--a"])
	require.Equal(t, 2, src.reads["--b"])
}

func TestKeysFollowTitles(t *testing.T) {
	t.Parallel()

	keys := Keys(AvailableColorTitles)
	require.Len(t, keys, len(AvailableColorTitles))
	require.Equal(t, "--main-background-color", keys[0])
	for _, key := range keys {
		require.NotEmpty(t, key)
	}
}
