package usecase

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/JiqiSun/frame-extractor/internal/domain/entity"
	"github.com/JiqiSun/frame-extractor/internal/infra/ffmpeg"
	"github.com/JiqiSun/frame-extractor/internal/infra/fsstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newArchiveFixture(t *testing.T) (*BuildArchiveUseCase, *fsstore.Store) {
	t.Helper()
	store, err := fsstore.New(filepath.Join(t.TempDir(), "output"))
	require.NoError(t, err)
	return NewBuildArchiveUseCase(store, ffmpeg.NewZipCreator(), zap.NewNop()), store
}

func TestBuildArchive(t *testing.T) {
	uc, store := newArchiveFixture(t)

	dir, err := store.CreateJobDir("job1")
	require.NoError(t, err)
	for _, name := range []string{"frame-000001.jpg", "frame-000002.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("jpeg-"+name), 0644))
	}

	path, err := uc.Execute(context.Background(), "job1")
	require.NoError(t, err)
	assert.Equal(t, store.ArchivePath("job1"), path)

	reader, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer reader.Close()
	require.Len(t, reader.File, 2)
	assert.Equal(t, "frame-000001.jpg", reader.File[0].Name)
	assert.Equal(t, "frame-000002.jpg", reader.File[1].Name)
}

func TestBuildArchiveIdempotent(t *testing.T) {
	uc, store := newArchiveFixture(t)

	dir, err := store.CreateJobDir("job1")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "frame-000001.jpg"), []byte("jpeg"), 0644))

	path, err := uc.Execute(context.Background(), "job1")
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	path2, err := uc.Execute(context.Background(), "job1")
	require.NoError(t, err)
	second, err := os.ReadFile(path2)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildArchiveEmptyJob(t *testing.T) {
	uc, store := newArchiveFixture(t)
	_, err := store.CreateJobDir("job1")
	require.NoError(t, err)

	path, err := uc.Execute(context.Background(), "job1")
	require.NoError(t, err)

	reader, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer reader.Close()
	assert.Empty(t, reader.File)
}

func TestBuildArchiveUnknownJob(t *testing.T) {
	uc, _ := newArchiveFixture(t)

	_, err := uc.Execute(context.Background(), "ghost")
	assert.ErrorIs(t, err, entity.ErrJobNotFound)
}
