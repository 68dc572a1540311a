package ffmpeg

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateZip(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"frame-000001.jpg", "frame-000002.jpg"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("data-"+name), 0644))
		paths = append(paths, p)
	}

	outPath := filepath.Join(t.TempDir(), "frames.zip")
	z := NewZipCreator()
	require.NoError(t, z.CreateZip(context.Background(), paths, outPath))

	reader, err := zip.OpenReader(outPath)
	require.NoError(t, err)
	defer reader.Close()

	var names []string
	for _, f := range reader.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"frame-000001.jpg", "frame-000002.jpg"}, names)

	// no leftover temp file
	_, err = os.Stat(outPath + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestCreateZipMissingInput(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "frames.zip")
	z := NewZipCreator()

	err := z.CreateZip(context.Background(), []string{"/does/not/exist.jpg"}, outPath)
	require.Error(t, err)

	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr), "failed build must not publish an archive")
	_, statErr = os.Stat(outPath + ".tmp")
	assert.True(t, os.IsNotExist(statErr))
}

func TestCreateZipOverwrites(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "frame-000001.jpg")
	require.NoError(t, os.WriteFile(p, []byte("v1"), 0644))

	outPath := filepath.Join(t.TempDir(), "frames.zip")
	z := NewZipCreator()
	require.NoError(t, z.CreateZip(context.Background(), []string{p}, outPath))
	first, err := os.ReadFile(outPath)
	require.NoError(t, err)

	require.NoError(t, z.CreateZip(context.Background(), []string{p}, outPath))
	second, err := os.ReadFile(outPath)
	require.NoError(t, err)

	assert.Equal(t, first, second, "rebuild from unchanged inputs must be byte-identical")
}
